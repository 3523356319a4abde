// Package log provides secure logging built on the standard slog package.
//
// The scanner reads entire cookie jars of third-party websites during every
// scan. Cookie values frequently contain session tokens, consent strings,
// and pseudonymous visitor identifiers, none of which belong in log output
// that may be shared or stored. The SecureHandler wraps any slog.Handler
// and masks attribute values that look like they carry such data before
// the record reaches the sink.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("cookie observed",
//	    "name", "_ga",
//	    "cookie_value", "GA1.2.1234",  // masked before output
//	)
//
// Detectors log cookie and script names freely; values go through the
// handler's redaction and never appear in clear text.
package log
