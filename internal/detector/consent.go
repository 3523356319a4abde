package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// consentExtractExprFmt relocates the banner by the same selector cascade
// the detector used, then extracts its controls with their computed
// styles, its checkboxes with their labels, the banner text, and the page
// text for the withdrawal check.
const consentExtractExprFmt = `((selectors) => {
	const visible = el => {
		if (!el) return false;
		const r = el.getBoundingClientRect();
		if (r.width === 0 || r.height === 0) return false;
		const st = getComputedStyle(el);
		return st.display !== 'none' && st.visibility !== 'hidden' && st.opacity !== '0';
	};
	let banner = null;
	for (const sel of selectors) {
		let el = null;
		try { el = document.querySelector(sel); } catch (e) { continue; }
		if (visible(el)) { banner = el; break; }
	}
	if (!banner) {
		for (const el of document.querySelectorAll('div, section, aside, dialog, [role="dialog"], [role="alertdialog"]')) {
			const st = getComputedStyle(el);
			const role = el.getAttribute('role');
			const positioned = st.position === 'fixed' || st.position === 'sticky' ||
				el.tagName === 'DIALOG' || role === 'dialog' || role === 'alertdialog';
			if (positioned && visible(el) && /cookie/i.test(el.innerText || '')) { banner = el; break; }
		}
	}
	if (!banner) return {found: false};
	const controls = Array.from(banner.querySelectorAll('button, [role="button"], a, input[type="button"], input[type="submit"]'))
		.map(b => {
			const st = getComputedStyle(b);
			return {
				text: (b.innerText || b.value || '').trim().slice(0, 120),
				fontSize: parseFloat(st.fontSize) || 0,
				padding: (parseFloat(st.paddingTop) || 0) + (parseFloat(st.paddingBottom) || 0),
			};
		})
		.filter(c => c.text)
		.slice(0, 60);
	const labelOf = cb => {
		if (cb.labels && cb.labels.length) return (cb.labels[0].innerText || '').trim().slice(0, 120);
		const aria = cb.getAttribute('aria-label');
		if (aria) return aria.slice(0, 120);
		const wrap = cb.closest('label');
		if (wrap) return (wrap.innerText || '').trim().slice(0, 120);
		return '';
	};
	const checkboxes = Array.from(banner.querySelectorAll('input[type="checkbox"]'))
		.map(cb => ({checked: cb.checked, label: labelOf(cb)}))
		.slice(0, 40);
	return {
		found: true,
		controls,
		checkboxes,
		text: (banner.innerText || '').trim().slice(0, 4000),
		pageText: (document.body.innerText || '').slice(0, 200000),
	};
})(%s)`

type consentExtract struct {
	Found      bool             `json:"found"`
	Controls   []consentControl `json:"controls"`
	Checkboxes []consentBox     `json:"checkboxes"`
	Text       string           `json:"text"`
	PageText   string           `json:"pageText"`
}

type consentControl struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize"`
	Padding  float64 `json:"padding"`
}

type consentBox struct {
	Checked bool   `json:"checked"`
	Label   string `json:"label"`
}

// Consent quality check weights. They sum to 100.
const (
	weightReject      = 25
	weightParity      = 20
	weightGranularity = 20
	weightNoPreTicked = 15
	weightClarity     = 10
	weightWithdrawal  = 10

	consentErrorThreshold   = 50
	consentWarningThreshold = 80

	// Accept and reject controls count as visually equal when their font
	// sizes differ by less than 4px and their combined vertical padding
	// differs by less than 10px.
	parityFontDelta    = 4.0
	parityPaddingDelta = 10.0
)

// Names of the individual quality checks, used in finding descriptions.
const (
	checkReject      = "reject option"
	checkParity      = "accept/reject visual parity"
	checkGranularity = "granular category controls"
	checkNoPreTicked = "no pre-ticked categories"
	checkClarity     = "clear consent language"
	checkWithdrawal  = "consent withdrawal path"
)

// ConsentQualityResult is the outcome of banner quality analysis.
type ConsentQualityResult struct {
	// Analyzed is false when the banner element could not be relocated.
	Analyzed bool

	// Score is the 0-100 consent quality score. Valid only when Analyzed.
	Score int

	// FailedChecks names the quality checks that did not pass.
	FailedChecks []string

	// Findings holds the quality and dedicated-violation findings.
	Findings []model.Finding
}

// ConsentQualityAnalyzer inspects a detected banner's DOM for the
// mechanics that make consent valid: a real choice, granularity, no
// pre-ticked boxes, clear language, and a withdrawal path.
type ConsentQualityAnalyzer struct {
	selectors  []string
	accept     knowledge.PatternSet
	reject     knowledge.PatternSet
	necessary  knowledge.PatternSet
	clarity    knowledge.PatternSet
	withdrawal knowledge.PatternSet
	logger     *slog.Logger
}

// NewConsentQualityAnalyzer creates an analyzer using the default
// selector and phrase tables.
func NewConsentQualityAnalyzer(logger *slog.Logger) *ConsentQualityAnalyzer {
	return &ConsentQualityAnalyzer{
		selectors:  knowledge.BannerSelectors(),
		accept:     knowledge.AcceptWords(),
		reject:     knowledge.RejectWords(),
		necessary:  knowledge.NecessaryLabels(),
		clarity:    knowledge.ClarityVocabulary(),
		withdrawal: knowledge.WithdrawalAffordance(),
		logger:     logger,
	}
}

// Analyze relocates the banner and scores its consent mechanics.
// When the banner cannot be relocated (it was detected by a platform
// signature rather than a concrete element, or the page has changed), the
// result is unanalyzed and carries no findings.
func (a *ConsentQualityAnalyzer) Analyze(ctx context.Context, page Page) ConsentQualityResult {
	selectorJSON, err := json.Marshal(a.selectors)
	if err != nil {
		a.logger.Warn("selector table marshal failed", "error", err)
		return ConsentQualityResult{}
	}

	var extract consentExtract
	expr := fmt.Sprintf(consentExtractExprFmt, selectorJSON)
	if err := page.Evaluate(ctx, expr, &extract); err != nil {
		a.logger.Warn("consent extraction failed", "url", page.URL(), "error", err)
		return ConsentQualityResult{}
	}
	if !extract.Found {
		a.logger.Debug("banner element not relocatable, skipping quality analysis")
		return ConsentQualityResult{}
	}

	result := a.score(extract)
	a.logger.Debug("consent quality analyzed", "score", result.Score, "failed", result.FailedChecks)
	return result
}

// score is the pure quality calculation over the extracted banner data.
func (a *ConsentQualityAnalyzer) score(extract consentExtract) ConsentQualityResult {
	result := ConsentQualityResult{Analyzed: true}

	var acceptCtl, rejectCtl *consentControl
	for i := range extract.Controls {
		c := &extract.Controls[i]
		switch {
		case rejectCtl == nil && a.reject.Match(c.Text):
			rejectCtl = c
		case acceptCtl == nil && a.accept.Match(c.Text):
			acceptCtl = c
		}
	}

	preTicked := false
	for _, cb := range extract.Checkboxes {
		if cb.Checked && !a.necessary.Match(cb.Label) {
			preTicked = true
			break
		}
	}

	total := 0
	pass := func(ok bool, weight int, name string) {
		if ok {
			total += weight
			return
		}
		result.FailedChecks = append(result.FailedChecks, name)
	}

	pass(rejectCtl != nil, weightReject, checkReject)
	pass(acceptCtl != nil && rejectCtl != nil &&
		math.Abs(acceptCtl.FontSize-rejectCtl.FontSize) < parityFontDelta &&
		math.Abs(acceptCtl.Padding-rejectCtl.Padding) < parityPaddingDelta,
		weightParity, checkParity)
	pass(len(extract.Checkboxes) >= 2, weightGranularity, checkGranularity)
	pass(!preTicked, weightNoPreTicked, checkNoPreTicked)
	pass(a.clarity.Match(extract.Text), weightClarity, checkClarity)
	pass(a.withdrawal.Match(extract.PageText), weightWithdrawal, checkWithdrawal)
	result.Score = total

	switch {
	case total < consentErrorThreshold:
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingConsentManagement, model.SeverityError,
			"Consent banner is non-compliant",
			fmt.Sprintf("The banner fails most consent requirements (quality %d/100). Failed checks: %s.",
				total, strings.Join(result.FailedChecks, ", ")),
		))
	case total < consentWarningThreshold:
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingConsentManagement, model.SeverityWarning,
			"Consent banner has quality issues",
			fmt.Sprintf("The banner fails some consent requirements (quality %d/100). Failed checks: %s.",
				total, strings.Join(result.FailedChecks, ", ")),
		))
	}

	// The two violations that invalidate collected consent outright get
	// dedicated findings regardless of the aggregate score.
	if rejectCtl == nil {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingConsentManagement, model.SeverityError,
			"Consent banner has no reject option",
			"The banner offers no control to refuse non-essential cookies. Refusing must be as easy as accepting.",
		))
	}
	if preTicked {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingConsentManagement, model.SeverityError,
			"Consent banner has pre-ticked categories",
			"One or more non-essential consent categories are pre-selected. Pre-ticked boxes do not constitute valid consent.",
		))
	}

	return result
}
