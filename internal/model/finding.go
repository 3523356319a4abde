package model

// FindingType identifies the compliance area a finding belongs to.
// The values are stable identifiers used in reports and in the record store.
type FindingType string

const (
	// FindingCookieBanner covers consent-banner presence and quality issues.
	FindingCookieBanner FindingType = "cookie_banner"

	// FindingPrivacyPolicy covers privacy-policy presence and content issues.
	FindingPrivacyPolicy FindingType = "privacy_policy"

	// FindingTrackingScript covers detected analytics/marketing scripts.
	FindingTrackingScript FindingType = "tracking_script"

	// FindingThirdPartyCookie covers cookies set by foreign domains.
	FindingThirdPartyCookie FindingType = "third_party_cookie"

	// FindingConsentManagement covers consent-mechanism issues such as
	// missing reject options or pre-ticked checkboxes.
	FindingConsentManagement FindingType = "consent_management"

	// FindingDataRectification covers missing data-correction affordances.
	FindingDataRectification FindingType = "data_rectification"

	// FindingAccountDeletion covers missing account-deletion affordances.
	FindingAccountDeletion FindingType = "account_deletion"

	// FindingUserProfileSettings covers missing profile-management affordances.
	FindingUserProfileSettings FindingType = "user_profile_settings"

	// FindingInformational covers advisory observations without a dedicated area.
	FindingInformational FindingType = "informational"
)

// Finding represents a single detected compliance issue or observation.
// Findings are append-only within a ScanResult; their order reflects
// detection order, not severity.
type Finding struct {
	// Type is the compliance area this finding belongs to.
	Type FindingType `json:"type"`

	// Severity is the seriousness of the finding.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity for serialization.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Description provides detail about what was (or was not) detected.
	Description string `json:"description,omitempty"`

	// Recommendation provides guidance on how to address the finding.
	// Populated from the finding catalog when available.
	Recommendation string `json:"recommendation,omitempty"`
}

// FindingInfo contains catalog metadata for a finding type: the default
// recommendation text attached to findings of that type.
//
// Design decision: We centralize remediation text in a catalog rather than
// embedding strings in each detector because:
//  1. It provides a single source of truth for user-facing guidance
//  2. Detector code stays focused on detection logic
//  3. Wording can be revised without touching nine detectors
type FindingInfo struct {
	Recommendation string
}

// findingInfoMapping maps finding types to their catalog metadata.
var findingInfoMapping = map[FindingType]FindingInfo{
	FindingCookieBanner: {
		Recommendation: "Display a consent banner before setting non-essential cookies, with equally prominent accept and reject options.",
	},
	FindingPrivacyPolicy: {
		Recommendation: "Publish a privacy policy covering the disclosures required by GDPR Articles 13 and 14, and link it from every page.",
	},
	FindingTrackingScript: {
		Recommendation: "Load analytics and marketing scripts only after the visitor has given consent, and disclose each provider in the privacy policy.",
	},
	FindingThirdPartyCookie: {
		Recommendation: "Do not set third-party cookies before consent. Audit embedded widgets and ad tags for cookies they set on page load.",
	},
	FindingConsentManagement: {
		Recommendation: "Offer granular per-category consent, never pre-tick non-essential categories, and make withdrawal as easy as giving consent.",
	},
	FindingDataRectification: {
		Recommendation: "Provide a way for users to export or correct the personal data held about them (GDPR Articles 15 and 16).",
	},
	FindingAccountDeletion: {
		Recommendation: "Provide a self-service account-deletion path or a documented erasure request process (GDPR Article 17).",
	},
	FindingUserProfileSettings: {
		Recommendation: "Let users review and manage their profile data from their account settings.",
	},
	FindingInformational: {},
}

// NewFinding creates a Finding of the given type with catalog-backed
// recommendation text. The severity text is derived from the severity.
func NewFinding(ft FindingType, severity Severity, title, description string) Finding {
	return Finding{
		Type:           ft,
		Severity:       severity,
		SeverityText:   severity.String(),
		Title:          title,
		Description:    description,
		Recommendation: findingInfoMapping[ft].Recommendation,
	}
}

// Recommendation returns the catalog recommendation for a finding type.
// Returns an empty string for types without catalog guidance.
func Recommendation(ft FindingType) string {
	return findingInfoMapping[ft].Recommendation
}
