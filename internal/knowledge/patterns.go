package knowledge

import "regexp"

// Pattern is one language-tagged regular expression for a concept.
//
// Design decision: We keep the language tag on every pattern rather than
// flattening all languages into one alternation so that per-language
// coverage is auditable and adding a language never touches existing
// patterns.
type Pattern struct {
	// Lang is the ISO 639-1 code of the language the pattern covers.
	Lang string

	// Regex is the compiled case-insensitive pattern.
	Regex *regexp.Regexp
}

// PatternSet groups all language variants of one concept.
type PatternSet struct {
	// Concept names what the set detects, for logging and audits.
	Concept string

	// Patterns holds the per-language patterns.
	Patterns []Pattern
}

// Match reports whether any language variant matches the text.
func (s PatternSet) Match(text string) bool {
	for _, p := range s.Patterns {
		if p.Regex.MatchString(text) {
			return true
		}
	}
	return false
}

// Languages returns the distinct language tags in the set, in table order.
func (s PatternSet) Languages() []string {
	seen := make(map[string]bool, len(s.Patterns))
	langs := make([]string, 0, len(s.Patterns))
	for _, p := range s.Patterns {
		if !seen[p.Lang] {
			seen[p.Lang] = true
			langs = append(langs, p.Lang)
		}
	}
	return langs
}

// pat builds a language-tagged case-insensitive pattern.
// The expression must compile; the tables are static data, so a bad
// expression is a programming error caught at init.
func pat(lang, expr string) Pattern {
	return Pattern{Lang: lang, Regex: regexp.MustCompile(`(?i)` + expr)}
}
