package score

import (
	"testing"

	"github.com/leroux1606/compliancekit/internal/model"
)

func intPtr(v int) *int { return &v }

func TestCalculateCleanSiteWithPolicyAndBanner(t *testing.T) {
	t.Parallel()

	got := Calculate(Input{
		PolicyFound: true,
		PolicyScore: intPtr(90),
		BannerFound: true,
		BannerScore: intPtr(90),
	})

	want := model.ScoreBreakdown{
		PrivacyPolicy:        18,
		CookieBanner:         18,
		CookieCategorization: 20,
		TrackingDisclosure:   20,
		UserRights:           0,
		Penalty:              0,
		Total:                76,
	}
	if got != want {
		t.Errorf("Calculate() = %+v, want %+v", got, want)
	}
}

func TestCalculateTrackedSiteWithoutConsent(t *testing.T) {
	t.Parallel()

	errFinding := model.NewFinding(model.FindingThirdPartyCookie, model.SeverityError, "t", "d")
	got := Calculate(Input{
		Cookies: []model.DetectedCookie{
			{Name: "a", Category: model.CategoryAnalytics, ThirdParty: true},
			{Name: "b", Category: model.CategoryAnalytics, ThirdParty: true},
			{Name: "c", Category: model.CategoryAnalytics, ThirdParty: true},
		},
		Findings: []model.Finding{errFinding, errFinding, errFinding},
	})

	if got.Penalty != 15 {
		t.Errorf("Penalty = %d, want 15", got.Penalty)
	}
	if got.TrackingDisclosure != 0 {
		t.Errorf("TrackingDisclosure = %d, want 0 with trackers and no consent surface", got.TrackingDisclosure)
	}
	if got.Total >= 50 {
		t.Errorf("Total = %d, want materially below 50", got.Total)
	}
}

func TestCalculateFloor(t *testing.T) {
	t.Parallel()

	t.Run("applies to clean low-signal site", func(t *testing.T) {
		t.Parallel()
		got := Calculate(Input{})
		if got.Total != 30 {
			t.Errorf("Total = %d, want floor of 30", got.Total)
		}
	})

	t.Run("not applied with error findings", func(t *testing.T) {
		t.Parallel()
		got := Calculate(Input{
			Findings: []model.Finding{
				model.NewFinding(model.FindingCookieBanner, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingPrivacyPolicy, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingPrivacyPolicy, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingConsentManagement, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingConsentManagement, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingConsentManagement, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingConsentManagement, model.SeverityError, "t", "d"),
				model.NewFinding(model.FindingConsentManagement, model.SeverityError, "t", "d"),
			},
		})
		// Buckets: 0+0+20+20+0 = 40, penalty 40, no floor.
		if got.Total != 0 {
			t.Errorf("Total = %d, want 0", got.Total)
		}
	})

	t.Run("not applied with tracking signals", func(t *testing.T) {
		t.Parallel()
		got := Calculate(Input{
			Scripts: []model.DetectedScript{
				{URL: "https://t.example/x.js", Category: model.ScriptMarketing},
			},
		})
		// Buckets: 0+0+20+0+0 = 20 and the floor must not lift it.
		if got.Total != 20 {
			t.Errorf("Total = %d, want 20 without floor", got.Total)
		}
	})
}

func TestCalculateRange(t *testing.T) {
	t.Parallel()

	inputs := []Input{
		{},
		{PolicyFound: true, PolicyScore: intPtr(100), BannerFound: true, BannerScore: intPtr(100),
			HasAccountFeatures: true, RightsDetected: 4},
		{Findings: make([]model.Finding, 0)},
		{Cookies: []model.DetectedCookie{{Category: model.CategoryUnknown}}},
	}
	for _, in := range inputs {
		got := Calculate(in)
		if got.Total < 0 || got.Total > 100 {
			t.Errorf("Total = %d out of range for %+v", got.Total, in)
		}
	}
}

func TestPresenceBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		found   bool
		quality *int
		want    int
	}{
		{"not found", false, nil, 0},
		{"found without analysis", true, nil, 10},
		{"found with perfect quality", true, intPtr(100), 20},
		{"found with low quality", true, intPtr(25), 5},
		{"rounds to nearest", true, intPtr(88), 18},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := presenceBucket(tt.found, tt.quality); got != tt.want {
				t.Errorf("presenceBucket(%v, %v) = %d, want %d", tt.found, tt.quality, got, tt.want)
			}
		})
	}
}

func TestCategorizationBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cookies []model.DetectedCookie
		want    int
	}{
		{"no cookies", nil, 20},
		{"all classified", []model.DetectedCookie{
			{Category: model.CategoryNecessary},
			{Category: model.CategoryAnalytics},
		}, 20},
		{"half classified", []model.DetectedCookie{
			{Category: model.CategoryNecessary},
			{Category: model.CategoryUnknown},
		}, 10},
		{"none classified", []model.DetectedCookie{
			{Category: model.CategoryUnknown},
		}, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := categorizationBucket(tt.cookies); got != tt.want {
				t.Errorf("categorizationBucket() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRightsBucket(t *testing.T) {
	t.Parallel()

	if got := rightsBucket(Input{HasAccountFeatures: false, RightsDetected: 0}); got != 0 {
		t.Errorf("rightsBucket(no accounts) = %d, want 0", got)
	}
	if got := rightsBucket(Input{HasAccountFeatures: true, RightsDetected: 2}); got != 10 {
		t.Errorf("rightsBucket(2 features) = %d, want 10", got)
	}
	if got := rightsBucket(Input{HasAccountFeatures: true, RightsDetected: 4}); got != 20 {
		t.Errorf("rightsBucket(4 features) = %d, want 20", got)
	}
}
