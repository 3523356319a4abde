// Package scanner orchestrates a compliance scan: it owns the browser
// session lifecycle, runs the read-only detectors concurrently against
// the landing page, sequences the analyzers that depend on it, performs
// the single outward navigation to the privacy policy, and reduces all
// detector outputs to one ScanResult.
//
// Scan never returns an error. Navigation and session-lifecycle failures
// produce a result with Success set to false; detector-internal failures
// degrade to "not detected" inside the detectors themselves.
package scanner
