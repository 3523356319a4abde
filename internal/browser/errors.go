package browser

import "errors"

// Session lifecycle errors.
//
// Design decision: We define sentinel errors for the two failure classes
// the orchestrator treats as fatal, so it can distinguish them from
// recoverable detector errors with errors.Is().
var (
	// ErrLaunch is returned when the headless browser process cannot be
	// started. Typically Chrome is not installed or the sandbox cannot
	// be set up in the current environment.
	ErrLaunch = errors.New("browser launch failed")

	// ErrNavigation is returned when navigating to a URL fails: DNS
	// resolution, connection refusal, TLS errors, or the scan timeout
	// expiring mid-navigation.
	ErrNavigation = errors.New("navigation failed")
)
