package detector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// policyAnchorsExpr extracts every anchor on the page, plus the footer
// anchors separately so the detector can fall back to the region where
// policy links conventionally live.
const policyAnchorsExpr = `(() => {
	const pick = a => ({
		text: (a.textContent || '').trim().slice(0, 200),
		href: a.href || '',
	});
	return {
		anchors: Array.from(document.querySelectorAll('a[href]')).map(pick).slice(0, 3000),
		footer: Array.from(document.querySelectorAll('footer a[href], [role="contentinfo"] a[href]')).map(pick).slice(0, 500),
	};
})()`

type policyExtract struct {
	Anchors []anchorEntry `json:"anchors"`
	Footer  []anchorEntry `json:"footer"`
}

type anchorEntry struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PolicyLinkResult is the outcome of privacy-policy link discovery.
type PolicyLinkResult struct {
	// Found is true when a policy link was located.
	Found bool

	// URL is the absolute link target when Found.
	URL string

	// Findings holds the error finding raised when no link was found.
	Findings []model.Finding
}

// PolicyLinkDetector searches page anchors for a privacy-policy link.
type PolicyLinkDetector struct {
	textPatterns knowledge.PatternSet
	hrefPatterns knowledge.PatternSet
	logger       *slog.Logger
}

// NewPolicyLinkDetector creates a policy-link detector using the default
// multilingual link patterns.
func NewPolicyLinkDetector(logger *slog.Logger) *PolicyLinkDetector {
	return &PolicyLinkDetector{
		textPatterns: knowledge.PolicyLinkText(),
		hrefPatterns: knowledge.PolicyLinkHref(),
		logger:       logger,
	}
}

// Detect scans all anchors, then footer anchors, for link text or href
// matching the policy patterns. The first match wins. Absence is an
// error-severity finding.
func (d *PolicyLinkDetector) Detect(ctx context.Context, page Page) PolicyLinkResult {
	var extract policyExtract
	if err := page.Evaluate(ctx, policyAnchorsExpr, &extract); err != nil {
		d.logger.Warn("anchor extraction failed", "url", page.URL(), "error", err)
		return d.notFound()
	}

	for _, group := range [][]anchorEntry{extract.Anchors, extract.Footer} {
		for _, a := range group {
			if a.Href == "" {
				continue
			}
			if d.textPatterns.Match(a.Text) || d.hrefPatterns.Match(a.Href) {
				d.logger.Debug("privacy policy link found", "href", a.Href, "text", a.Text)
				return PolicyLinkResult{Found: true, URL: a.Href}
			}
		}
	}
	return d.notFound()
}

func (d *PolicyLinkDetector) notFound() PolicyLinkResult {
	return PolicyLinkResult{
		Findings: []model.Finding{
			model.NewFinding(model.FindingPrivacyPolicy, model.SeverityError,
				"No privacy policy link found",
				"No link with privacy-policy text or address was found anywhere on the page, including the footer."),
		},
	}
}

// IsSamePageAnchor reports whether the policy link merely targets a
// fragment of the page it was found on. Such links carry no separate
// policy document, so the content analyzer skips navigation for them.
func IsSamePageAnchor(linkURL, pageURL string) bool {
	if strings.HasPrefix(linkURL, "#") {
		return true
	}
	link, _, hasFrag := strings.Cut(linkURL, "#")
	if !hasFrag {
		return false
	}
	base, _, _ := strings.Cut(pageURL, "#")
	return link == base || link == ""
}
