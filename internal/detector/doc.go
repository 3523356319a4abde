// Package detector implements the compliance detectors that inspect a
// loaded page: cookie classification, script and tracking-pixel
// classification, privacy-policy link discovery and content analysis,
// consent-banner discovery and quality analysis, user-rights affordances,
// and the additional regulation-specific sweeps.
//
// Every detector receives a read-only Page handle and performs at most one
// JavaScript evaluation against it; all classification and scoring logic
// is pure Go over the extracted data, so detectors are testable with a
// synthetic page and a synthetic knowledge base.
//
// Detector-internal errors (an evaluation that throws, a page that went
// away) never abort a scan. Each detector logs the error and returns its
// safe default, which reads as "feature not detected".
package detector
