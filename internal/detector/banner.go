package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// bannerExtractExprFmt probes the known banner selectors inside the page,
// collects visible fixed/sticky/dialog elements, button labels, and a
// bounded slice of the page source. Selector probing happens in the page
// so the whole extraction stays a single evaluation.
const bannerExtractExprFmt = `((selectors) => {
	const visible = el => {
		if (!el) return false;
		const r = el.getBoundingClientRect();
		if (r.width === 0 || r.height === 0) return false;
		const st = getComputedStyle(el);
		return st.display !== 'none' && st.visibility !== 'hidden' && st.opacity !== '0';
	};
	let selector = '', bannerText = '';
	for (const sel of selectors) {
		let el = null;
		try { el = document.querySelector(sel); } catch (e) { continue; }
		if (visible(el)) {
			selector = sel;
			bannerText = (el.innerText || '').trim().slice(0, 2000);
			break;
		}
	}
	const candidates = [];
	for (const el of document.querySelectorAll('div, section, aside, dialog, [role="dialog"], [role="alertdialog"]')) {
		if (candidates.length >= 40) break;
		const st = getComputedStyle(el);
		const positioned = st.position === 'fixed' || st.position === 'sticky';
		const role = el.getAttribute('role');
		const dialog = el.tagName === 'DIALOG' || role === 'dialog' || role === 'alertdialog';
		if ((positioned || dialog) && visible(el)) {
			const t = (el.innerText || '').trim();
			if (t) candidates.push(t.slice(0, 2000));
		}
	}
	const buttons = Array.from(document.querySelectorAll('button, [role="button"], input[type="button"], input[type="submit"]'))
		.map(b => (b.innerText || b.value || '').trim().slice(0, 120))
		.filter(Boolean)
		.slice(0, 300);
	const html = document.documentElement.outerHTML.slice(0, 250000);
	return {selector, bannerText, candidates, buttons, html};
})(%s)`

type bannerExtract struct {
	Selector   string   `json:"selector"`
	BannerText string   `json:"bannerText"`
	Candidates []string `json:"candidates"`
	Buttons    []string `json:"buttons"`
	HTML       string   `json:"html"`
}

// Banner detection strategies, in cascade order.
const (
	BannerStrategySelector = "selector"
	BannerStrategyText     = "visible_text"
	BannerStrategyPlatform = "platform_signature"
)

// BannerResult is the outcome of consent-banner discovery.
type BannerResult struct {
	// Found is true when a banner was detected by any strategy.
	Found bool

	// Strategy names the cascade step that succeeded.
	Strategy string

	// Selector is the matched CSS selector, for the selector strategy.
	Selector string

	// Text is the banner's visible text, when a concrete element matched.
	Text string

	// Findings holds the error finding raised when no banner was found.
	Findings []model.Finding
}

// BannerDetector locates the cookie consent banner by cascading through
// selector probing, visible-text heuristics, and platform signatures.
type BannerDetector struct {
	selectors []string
	platforms []string
	phrases   knowledge.PatternSet
	accept    knowledge.PatternSet
	reject    knowledge.PatternSet
	logger    *slog.Logger
}

// NewBannerDetector creates a banner detector using the default selector
// and platform tables.
func NewBannerDetector(logger *slog.Logger) *BannerDetector {
	return &BannerDetector{
		selectors: knowledge.BannerSelectors(),
		platforms: knowledge.ConsentPlatformNames(),
		phrases:   knowledge.BannerPhrases(),
		accept:    knowledge.AcceptWords(),
		reject:    knowledge.RejectWords(),
		logger:    logger,
	}
}

// Detect runs the three-strategy cascade, stopping at the first success.
// Absence is an error-severity finding.
func (d *BannerDetector) Detect(ctx context.Context, page Page) BannerResult {
	selectorJSON, err := json.Marshal(d.selectors)
	if err != nil {
		d.logger.Warn("selector table marshal failed", "error", err)
		return d.notFound()
	}

	var extract bannerExtract
	expr := fmt.Sprintf(bannerExtractExprFmt, selectorJSON)
	if err := page.Evaluate(ctx, expr, &extract); err != nil {
		d.logger.Warn("banner extraction failed", "url", page.URL(), "error", err)
		return d.notFound()
	}

	result := d.analyze(extract)
	if result.Found {
		d.logger.Debug("consent banner found", "strategy", result.Strategy, "selector", result.Selector)
	}
	return result
}

// analyze applies the cascade to the extracted data.
func (d *BannerDetector) analyze(extract bannerExtract) BannerResult {
	if extract.Selector != "" {
		return BannerResult{
			Found:    true,
			Strategy: BannerStrategySelector,
			Selector: extract.Selector,
			Text:     extract.BannerText,
		}
	}

	for _, text := range extract.Candidates {
		if d.phrases.Match(text) {
			return BannerResult{
				Found:    true,
				Strategy: BannerStrategyText,
				Text:     text,
			}
		}
	}

	htmlLower := strings.ToLower(extract.HTML)
	for _, platform := range d.platforms {
		if strings.Contains(htmlLower, strings.ToLower(platform)) {
			return BannerResult{
				Found:    true,
				Strategy: BannerStrategyPlatform,
				Text:     platform,
			}
		}
	}
	if strings.Contains(htmlLower, "cookie") {
		for _, label := range extract.Buttons {
			if d.accept.Match(label) || d.reject.Match(label) {
				return BannerResult{
					Found:    true,
					Strategy: BannerStrategyPlatform,
					Text:     label,
				}
			}
		}
	}

	return d.notFound()
}

func (d *BannerDetector) notFound() BannerResult {
	return BannerResult{
		Findings: []model.Finding{
			model.NewFinding(model.FindingCookieBanner, model.SeverityError,
				"No cookie consent banner found",
				"No consent banner was detected by selector probing, visible-text heuristics, or consent-platform signatures."),
		},
	}
}
