package knowledge

import "testing"

// TestPolicyLinkTextLanguages tests multilingual policy-link matching.
func TestPolicyLinkTextLanguages(t *testing.T) {
	t.Parallel()

	set := PolicyLinkText()

	testCases := []struct {
		lang string
		text string
	}{
		{"en", "Privacy Policy"},
		{"en", "Data Protection"},
		{"de", "Datenschutzerklärung"},
		{"fr", "Politique de confidentialité"},
		{"es", "Política de privacidad"},
		{"it", "Informativa sulla privacy"},
		{"pt", "Política de Privacidade"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.lang+"_"+tc.text, func(t *testing.T) {
			t.Parallel()
			if !set.Match(tc.text) {
				t.Errorf("PolicyLinkText should match %q (%s)", tc.text, tc.lang)
			}
		})
	}

	if set.Match("Contact us") {
		t.Error("PolicyLinkText should not match unrelated anchor text")
	}
}

// TestBannerPhrasesLanguages tests multilingual banner phrase matching.
func TestBannerPhrasesLanguages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		lang string
		text string
	}{
		{"en", "We use cookies to improve your experience."},
		{"de", "Diese Website verwendet Cookies."},
		{"fr", "Nous utilisons des cookies pour personnaliser le contenu."},
		{"es", "Utilizamos cookies propias y de terceros."},
		{"it", "Questo sito utilizza i cookie."},
	}

	set := BannerPhrases()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.lang, func(t *testing.T) {
			t.Parallel()
			if !set.Match(tc.text) {
				t.Errorf("BannerPhrases should match %q (%s)", tc.text, tc.lang)
			}
		})
	}
}

// TestRejectWords tests reject-control label matching, including the
// "only necessary" phrasing used instead of an explicit reject button.
func TestRejectWords(t *testing.T) {
	t.Parallel()

	set := RejectWords()

	for _, text := range []string{
		"Reject all",
		"Decline",
		"Only necessary cookies",
		"Alle ablehnen",
		"Continuer sans accepter",
		"Rechazar todo",
	} {
		if !set.Match(text) {
			t.Errorf("RejectWords should match %q", text)
		}
	}

	for _, text := range []string{"Accept all", "Save settings"} {
		if set.Match(text) {
			t.Errorf("RejectWords should not match %q", text)
		}
	}
}

// TestPatternSetLanguages tests the per-language audit helper.
func TestPatternSetLanguages(t *testing.T) {
	t.Parallel()

	langs := PolicyLinkText().Languages()
	if len(langs) < 5 {
		t.Errorf("PolicyLinkText covers %d languages, expected at least 5", len(langs))
	}

	seen := make(map[string]bool)
	for _, l := range langs {
		if seen[l] {
			t.Errorf("Languages() returned duplicate tag %q", l)
		}
		seen[l] = true
	}
}

// TestDisclosureGroups tests the shape of the policy disclosure table.
func TestDisclosureGroups(t *testing.T) {
	t.Parallel()

	groups := PolicyDisclosureGroups()
	if len(groups) != 12 {
		t.Fatalf("PolicyDisclosureGroups() returned %d groups, expected 12", len(groups))
	}

	var critical int
	for _, g := range groups {
		if g.Critical {
			critical++
		}
		if g.ID == "" || g.Name == "" {
			t.Errorf("group %+v missing ID or Name", g)
		}
		if len(g.Patterns.Patterns) == 0 {
			t.Errorf("group %q has no patterns", g.ID)
		}
	}
	if critical != 5 {
		t.Errorf("expected 5 critical groups, got %d", critical)
	}
}

// TestDisclosureGroupMatching tests a few representative disclosure matches.
func TestDisclosureGroupMatching(t *testing.T) {
	t.Parallel()

	groups := PolicyDisclosureGroups()
	byID := make(map[string]DisclosureGroup, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	testCases := []struct {
		id   string
		text string
	}{
		{"controller_identity", "The data controller of this website is Example GmbH."},
		{"legal_basis", "We process data on the legal basis of Article 6(1)(f) GDPR."},
		{"user_rights", "You have the right of access and the right to erasure."},
		{"retention", "Wir speichern Ihre Daten nur für die Dauer der Speicherung erforderlich."},
		{"complaint_right", "Vous pouvez adresser une réclamation à l'autorité de contrôle."},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			g, ok := byID[tc.id]
			if !ok {
				t.Fatalf("no disclosure group %q", tc.id)
			}
			if !g.Patterns.Match(tc.text) {
				t.Errorf("group %q should match %q", tc.id, tc.text)
			}
		})
	}
}

// TestBannerSelectors tests the selector table shape.
func TestBannerSelectors(t *testing.T) {
	t.Parallel()

	selectors := BannerSelectors()
	if len(selectors) < 30 {
		t.Errorf("expected at least 30 banner selectors, got %d", len(selectors))
	}

	seen := make(map[string]bool)
	for _, s := range selectors {
		if seen[s] {
			t.Errorf("duplicate selector %q", s)
		}
		seen[s] = true
	}
}
