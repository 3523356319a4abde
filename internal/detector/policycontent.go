package detector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// policyTextExpr pulls the policy page's main content region text,
// falling back to the whole body when the page has no landmark element.
const policyTextExpr = `(() => {
	const main = document.querySelector('main, article, [role="main"], #content, .content');
	const text = ((main && main.innerText) || document.body.innerText || '');
	return text.slice(0, 300000);
})()`

const (
	criticalDisclosurePoints  = 10
	importantDisclosurePoints = 5

	policyErrorThreshold   = 50
	policyWarningThreshold = 80
)

// PolicyContentResult is the outcome of policy completeness analysis.
type PolicyContentResult struct {
	// Analyzed is false when the policy text could not be read.
	Analyzed bool

	// Score is the 0-100 completeness score. Valid only when Analyzed.
	Score int

	// MissingGroups lists the IDs of required disclosures not found.
	MissingGroups []string

	// Findings holds completeness and dedicated-disclosure findings.
	Findings []model.Finding
}

// PolicyContentAnalyzer scores a privacy policy page's text against the
// required-disclosure pattern groups.
type PolicyContentAnalyzer struct {
	groups []knowledge.DisclosureGroup
	logger *slog.Logger
}

// NewPolicyContentAnalyzer creates an analyzer over the default
// disclosure groups.
func NewPolicyContentAnalyzer(logger *slog.Logger) *PolicyContentAnalyzer {
	return &PolicyContentAnalyzer{
		groups: knowledge.PolicyDisclosureGroups(),
		logger: logger,
	}
}

// Analyze reads the policy page's text and scores its completeness.
// The caller has already navigated the session to the policy URL; the
// handle passed here is the policy page.
func (a *PolicyContentAnalyzer) Analyze(ctx context.Context, page Page) PolicyContentResult {
	var text string
	if err := page.Evaluate(ctx, policyTextExpr, &text); err != nil {
		a.logger.Warn("policy text extraction failed", "url", page.URL(), "error", err)
		return PolicyContentResult{}
	}
	return a.score(text)
}

// score is the pure completeness calculation over the policy text.
// Critical disclosures are worth 10 points, the rest 5, clamped to 100.
func (a *PolicyContentAnalyzer) score(text string) PolicyContentResult {
	result := PolicyContentResult{Analyzed: true}

	total := 0
	missingCritical := map[string]bool{}
	for _, g := range a.groups {
		if g.Patterns.Match(text) {
			if g.Critical {
				total += criticalDisclosurePoints
			} else {
				total += importantDisclosurePoints
			}
			continue
		}
		result.MissingGroups = append(result.MissingGroups, g.ID)
		if g.Critical {
			missingCritical[g.ID] = true
		}
	}
	if total > 100 {
		total = 100
	}
	result.Score = total

	switch {
	case total < policyErrorThreshold:
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingPrivacyPolicy, model.SeverityError,
			"Privacy policy is substantially incomplete",
			fmt.Sprintf("The policy covers too few of the required disclosure elements (completeness %d/100). Missing: %s.",
				total, strings.Join(result.MissingGroups, ", ")),
		))
	case total < policyWarningThreshold:
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingPrivacyPolicy, model.SeverityWarning,
			"Privacy policy is missing required disclosures",
			fmt.Sprintf("The policy covers most but not all required disclosure elements (completeness %d/100). Missing: %s.",
				total, strings.Join(result.MissingGroups, ", ")),
		))
	}

	// The two disclosures regulators examine first get dedicated findings
	// regardless of the aggregate score.
	if missingCritical["legal_basis"] {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingPrivacyPolicy, model.SeverityError,
			"Privacy policy does not state a legal basis for processing",
			"No legal-basis language (consent, contract, legitimate interest) was found in the policy text.",
		))
	}
	if missingCritical["user_rights"] {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingPrivacyPolicy, model.SeverityError,
			"Privacy policy does not describe data-subject rights",
			"No description of access, rectification, erasure, or objection rights was found in the policy text.",
		))
	}

	a.logger.Debug("policy content analyzed", "score", total, "missing", len(result.MissingGroups))
	return result
}
