package main

import (
	"testing"

	"github.com/leroux1606/compliancekit/internal/model"
)

func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history [host]" {
			t.Errorf("expected use 'history [host]', got %q", cmd.Use)
		}
	})

	t.Run("has compare flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("compare")
		if flag == nil {
			t.Fatal("expected compare flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})

	t.Run("has list-hosts flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("list-hosts")
		if flag == nil {
			t.Fatal("expected list-hosts flag")
		}
		if flag.Shorthand != "L" {
			t.Errorf("expected shorthand 'L', got %q", flag.Shorthand)
		}
	})
}

func TestNormalizeHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		want   string
	}{
		{"example.com", "example.com"},
		{"https://example.com/page?q=1", "example.com"},
		{"http://shop.example.com:8443/", "shop.example.com"},
		{"example.com/", "example.com"},
	}

	for _, tt := range tests {
		if got := normalizeHost(tt.target); got != tt.want {
			t.Errorf("normalizeHost(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestScoreDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delta int
		want  string
	}{
		{12, scoreDirectionImproved},
		{-5, scoreDirectionWorsened},
		{0, scoreDirectionUnchanged},
	}

	for _, tt := range tests {
		if got := scoreDirection(tt.delta); got != tt.want {
			t.Errorf("scoreDirection(%d) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestDiffFindings(t *testing.T) {
	t.Parallel()

	banner := model.NewFinding(model.FindingCookieBanner, model.SeverityError, "No consent banner", "")
	policy := model.NewFinding(model.FindingPrivacyPolicy, model.SeverityError, "No privacy policy found", "")
	tracking := model.NewFinding(model.FindingTrackingScript, model.SeverityInfo, "Tracking scripts detected", "")

	previous := []model.Finding{banner, policy}
	current := []model.Finding{policy, tracking}

	newFindings, resolved := diffFindings(previous, current)

	if len(newFindings) != 1 || newFindings[0].Type != model.FindingTrackingScript {
		t.Errorf("newFindings = %+v, want only tracking", newFindings)
	}
	if len(resolved) != 1 || resolved[0].Type != model.FindingCookieBanner {
		t.Errorf("resolved = %+v, want only banner", resolved)
	}

	t.Run("identical sets produce no diff", func(t *testing.T) {
		t.Parallel()

		newFindings, resolved := diffFindings(previous, previous)
		if len(newFindings) != 0 || len(resolved) != 0 {
			t.Errorf("expected empty diff, got new=%d resolved=%d", len(newFindings), len(resolved))
		}
	})
}
