package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate() and identify the first problem
// found with the run configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic handling while keeping human-readable
// messages.
var (
	// ErrNoTarget is returned when no target URL is specified.
	ErrNoTarget = errors.New("no target specified: provide at least one page URL")

	// ErrInvalidTarget is returned when a target does not parse as an
	// absolute http or https URL.
	ErrInvalidTarget = errors.New("invalid target: must be an absolute http(s) URL")

	// ErrInvalidTimeout is returned when the scan timeout is not positive.
	// A zero or negative timeout would fail every navigation immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// Zero concurrent scans would make multi-target runs impossible.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format is allowed.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
