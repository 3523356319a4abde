package model

// Severity represents how serious a compliance finding is.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed. Unlike vulnerability scanners that need
// a five-level scale, GDPR audit findings map naturally onto three levels:
// informational observations, issues that need attention, and violations.
type Severity int

const (
	// SeverityInfo indicates informational findings with no direct scoring impact.
	// Examples: tracking scripts disclosed alongside a consent banner, advisory
	// notes for sites without user accounts.
	SeverityInfo Severity = iota

	// SeverityWarning indicates issues that likely need attention but are not
	// outright violations. Examples: a privacy policy missing several important
	// disclosure elements, a consent banner with mediocre quality.
	SeverityWarning

	// SeverityError indicates violations of GDPR requirements.
	// Examples: no consent banner while third-party cookies are set, pre-ticked
	// consent checkboxes, a privacy policy without a legal-basis statement.
	// Each error finding subtracts from the final compliance score.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
