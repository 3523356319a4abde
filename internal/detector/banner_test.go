package detector

import (
	"context"
	"errors"
	"testing"

	"github.com/leroux1606/compliancekit/internal/model"
)

func TestBannerDetectorCascade(t *testing.T) {
	t.Parallel()

	d := NewBannerDetector(discardLogger())

	tests := []struct {
		name         string
		extract      bannerExtract
		wantFound    bool
		wantStrategy string
	}{
		{
			name: "selector strategy",
			extract: bannerExtract{
				Selector:   "#onetrust-banner-sdk",
				BannerText: "We use cookies to improve your experience.",
			},
			wantFound:    true,
			wantStrategy: BannerStrategySelector,
		},
		{
			name: "visible text strategy",
			extract: bannerExtract{
				Candidates: []string{
					"Navigation menu",
					"Diese Website verwendet Cookies. Mehr erfahren.",
				},
			},
			wantFound:    true,
			wantStrategy: BannerStrategyText,
		},
		{
			name: "platform signature in page source",
			extract: bannerExtract{
				HTML: `<html><head><script src="https://cdn.cookielaw.org/onetrust.js"></script></head></html>`,
			},
			wantFound:    true,
			wantStrategy: BannerStrategyPlatform,
		},
		{
			name: "consent button with cookie mention",
			extract: bannerExtract{
				Buttons: []string{"Search", "Alle akzeptieren"},
				HTML:    `<html><body><div class="notice">cookie settings</div></body></html>`,
			},
			wantFound:    true,
			wantStrategy: BannerStrategyPlatform,
		},
		{
			name: "no banner",
			extract: bannerExtract{
				Candidates: []string{"Subscribe to our newsletter"},
				Buttons:    []string{"Subscribe"},
				HTML:       `<html><body><p>Welcome</p></body></html>`,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := d.Detect(context.Background(), &fakePage{payload: tt.extract})
			if got.Found != tt.wantFound {
				t.Fatalf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if got.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %q, want %q", got.Strategy, tt.wantStrategy)
			}
			if !tt.wantFound {
				if len(got.Findings) != 1 {
					t.Fatalf("absence yielded %d findings, want 1", len(got.Findings))
				}
				f := got.Findings[0]
				if f.Type != model.FindingCookieBanner || f.Severity != model.SeverityError {
					t.Errorf("finding = %q/%q, want cookie_banner/error", f.Type, f.SeverityText)
				}
			}
		})
	}
}

func TestBannerDetectorEvaluationFailure(t *testing.T) {
	t.Parallel()

	d := NewBannerDetector(discardLogger())
	got := d.Detect(context.Background(), &fakePage{err: errors.New("target closed")})
	if got.Found {
		t.Error("Found = true after evaluation failure")
	}
	if len(got.Findings) != 1 {
		t.Errorf("findings = %d, want 1", len(got.Findings))
	}
}
