package model

import "testing"

// TestNewFinding tests finding construction with catalog metadata.
func TestNewFinding(t *testing.T) {
	t.Parallel()

	f := NewFinding(FindingCookieBanner, SeverityError, "No consent banner", "No cookie consent banner was detected on the page.")

	if f.Type != FindingCookieBanner {
		t.Errorf("Type = %q, expected %q", f.Type, FindingCookieBanner)
	}
	if f.Severity != SeverityError {
		t.Errorf("Severity = %v, expected %v", f.Severity, SeverityError)
	}
	if f.SeverityText != "ERROR" {
		t.Errorf("SeverityText = %q, expected %q", f.SeverityText, "ERROR")
	}
	if f.Recommendation == "" {
		t.Error("expected catalog recommendation to be attached")
	}
}

// TestNewFindingInformational tests that informational findings carry no
// remediation text.
func TestNewFindingInformational(t *testing.T) {
	t.Parallel()

	f := NewFinding(FindingInformational, SeverityInfo, "Tracking scripts detected", "")
	if f.Recommendation != "" {
		t.Errorf("informational findings should have no recommendation, got %q", f.Recommendation)
	}
}

// TestRecommendationCoverage tests that every cataloged finding type except
// the informational one has remediation guidance.
func TestRecommendationCoverage(t *testing.T) {
	t.Parallel()

	types := []FindingType{
		FindingCookieBanner,
		FindingPrivacyPolicy,
		FindingTrackingScript,
		FindingThirdPartyCookie,
		FindingConsentManagement,
		FindingDataRectification,
		FindingAccountDeletion,
		FindingUserProfileSettings,
	}

	for _, ft := range types {
		ft := ft
		t.Run(string(ft), func(t *testing.T) {
			t.Parallel()
			if Recommendation(ft) == "" {
				t.Errorf("finding type %q has no recommendation", ft)
			}
		})
	}
}
