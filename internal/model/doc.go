// Package model defines the data structures shared across the scan pipeline.
//
// The central type is ScanResult, the single immutable artifact a scan
// produces. Every DetectedCookie, DetectedScript, and Finding belongs to
// exactly one ScanResult and is never shared between scans: each scan
// re-derives everything from a fresh browser session because site content
// can change between runs.
//
// # Severity Model
//
// Findings carry one of three severities (info, warning, error). Error
// findings feed directly into the score penalty, so detectors must only
// use SeverityError for genuine compliance violations rather than advisory
// observations.
//
// # Finding Catalog
//
// The findingInfoMapping table centralizes default severity and remediation
// text per finding type. Detectors construct findings through NewFinding so
// that recommendations stay consistent across the application.
package model
