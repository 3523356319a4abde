package detector

import (
	"context"
	"errors"
	"testing"

	"github.com/leroux1606/compliancekit/internal/model"
)

func TestPolicyLinkDetector(t *testing.T) {
	t.Parallel()

	d := NewPolicyLinkDetector(discardLogger())

	tests := []struct {
		name    string
		extract policyExtract
		want    bool
		wantURL string
	}{
		{
			name: "match by link text",
			extract: policyExtract{Anchors: []anchorEntry{
				{Text: "Home", Href: "https://example.com/"},
				{Text: "Privacy Policy", Href: "https://example.com/legal"},
			}},
			want:    true,
			wantURL: "https://example.com/legal",
		},
		{
			name: "match by href",
			extract: policyExtract{Anchors: []anchorEntry{
				{Text: "Mehr erfahren", Href: "https://example.de/datenschutz"},
			}},
			want:    true,
			wantURL: "https://example.de/datenschutz",
		},
		{
			name: "footer fallback",
			extract: policyExtract{
				Anchors: []anchorEntry{{Text: "Shop", Href: "https://example.com/shop"}},
				Footer:  []anchorEntry{{Text: "Politique de confidentialité", Href: "https://example.com/legal/p"}},
			},
			want:    true,
			wantURL: "https://example.com/legal/p",
		},
		{
			name: "first match wins",
			extract: policyExtract{Anchors: []anchorEntry{
				{Text: "Privacy", Href: "https://example.com/privacy-1"},
				{Text: "Privacy Policy", Href: "https://example.com/privacy-2"},
			}},
			want:    true,
			wantURL: "https://example.com/privacy-1",
		},
		{
			name: "no policy link",
			extract: policyExtract{Anchors: []anchorEntry{
				{Text: "About us", Href: "https://example.com/about"},
				{Text: "Contact", Href: "https://example.com/contact"},
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page := &fakePage{payload: tt.extract}
			got := d.Detect(context.Background(), page)
			if got.Found != tt.want {
				t.Fatalf("Found = %v, want %v", got.Found, tt.want)
			}
			if got.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if !tt.want {
				if len(got.Findings) != 1 {
					t.Fatalf("absence yielded %d findings, want 1", len(got.Findings))
				}
				f := got.Findings[0]
				if f.Type != model.FindingPrivacyPolicy || f.Severity != model.SeverityError {
					t.Errorf("finding = %q/%q, want privacy_policy/error", f.Type, f.SeverityText)
				}
			}
		})
	}
}

func TestPolicyLinkDetectorEvaluationFailure(t *testing.T) {
	t.Parallel()

	d := NewPolicyLinkDetector(discardLogger())
	page := &fakePage{err: errors.New("target closed")}
	got := d.Detect(context.Background(), page)
	if got.Found {
		t.Error("Found = true after evaluation failure")
	}
	if len(got.Findings) != 1 {
		t.Errorf("findings = %d, want 1", len(got.Findings))
	}
}

func TestIsSamePageAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		link    string
		pageURL string
		want    bool
	}{
		{"bare fragment", "#privacy", "https://example.com/", true},
		{"same page with fragment", "https://example.com/#privacy", "https://example.com/", true},
		{"different page with fragment", "https://example.com/legal#privacy", "https://example.com/", false},
		{"different page", "https://example.com/legal", "https://example.com/", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsSamePageAnchor(tt.link, tt.pageURL); got != tt.want {
				t.Errorf("IsSamePageAnchor(%q, %q) = %v, want %v", tt.link, tt.pageURL, got, tt.want)
			}
		})
	}
}
