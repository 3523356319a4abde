package detector

import (
	"context"
	"log/slog"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// pageTextExpr pulls the visible page text for the regulation sweeps.
const pageTextExpr = `(document.body.innerText || '').slice(0, 200000)`

// ComplianceResult is the outcome of the additional regulation sweeps.
type ComplianceResult struct {
	// AgeVerification is true when age-gate or parental-consent language
	// was found (Article 8).
	AgeVerification bool

	// SensitiveData and ExplicitConsent report special-category data
	// vocabulary and the explicit-consent language that must accompany it
	// (Article 9).
	SensitiveData   bool
	ExplicitConsent bool

	// AutomatedDecision and AutomatedDisclosure report profiling
	// vocabulary and its required disclosure language (Article 22).
	AutomatedDecision   bool
	AutomatedDisclosure bool

	// LegalBasis is true when legal-basis vocabulary appears anywhere on
	// the page (Article 6).
	LegalBasis bool

	// Findings holds the sweep findings.
	Findings []model.Finding
}

// ComplianceDetector runs the four regulation-specific vocabulary sweeps
// over the visible page text.
type ComplianceDetector struct {
	age                 knowledge.PatternSet
	sensitive           knowledge.PatternSet
	explicitConsent     knowledge.PatternSet
	automatedDecision   knowledge.PatternSet
	automatedDisclosure knowledge.PatternSet
	legalBasis          knowledge.PatternSet
	logger              *slog.Logger
}

// NewComplianceDetector creates a detector using the default sweep
// patterns.
func NewComplianceDetector(logger *slog.Logger) *ComplianceDetector {
	return &ComplianceDetector{
		age:                 knowledge.AgeVerification(),
		sensitive:           knowledge.SensitiveData(),
		explicitConsent:     knowledge.ExplicitConsent(),
		automatedDecision:   knowledge.AutomatedDecision(),
		automatedDisclosure: knowledge.AutomatedDisclosure(),
		legalBasis:          knowledge.LegalBasis(),
		logger:              logger,
	}
}

// Detect sweeps the current page's text. The orchestrator runs it on the
// landing page before navigating to the policy page, so the vocabulary it
// looks for must be visible on the page itself, not only in the policy.
func (d *ComplianceDetector) Detect(ctx context.Context, page Page) ComplianceResult {
	var text string
	if err := page.Evaluate(ctx, pageTextExpr, &text); err != nil {
		d.logger.Warn("page text extraction failed", "url", page.URL(), "error", err)
		return ComplianceResult{}
	}
	return d.analyze(text)
}

// analyze applies the sweeps to the page text.
func (d *ComplianceDetector) analyze(text string) ComplianceResult {
	result := ComplianceResult{
		AgeVerification:     d.age.Match(text),
		SensitiveData:       d.sensitive.Match(text),
		ExplicitConsent:     d.explicitConsent.Match(text),
		AutomatedDecision:   d.automatedDecision.Match(text),
		AutomatedDisclosure: d.automatedDisclosure.Match(text),
		LegalBasis:          d.legalBasis.Match(text),
	}

	if !result.AgeVerification {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingInformational, model.SeverityInfo,
			"No age verification mechanism found",
			"No age-gate or parental-consent language was found. Required only if the service is offered directly to children."))
	}
	if result.SensitiveData && !result.ExplicitConsent {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingInformational, model.SeverityError,
			"Special-category data mentioned without explicit consent language",
			"The page mentions special categories of personal data (health, beliefs, biometrics) without accompanying explicit-consent language."))
	}
	if result.AutomatedDecision && !result.AutomatedDisclosure {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingInformational, model.SeverityWarning,
			"Automated decision-making mentioned without disclosure",
			"The page mentions automated decision-making or profiling without disclosing the logic involved or the right to human intervention."))
	}
	if !result.LegalBasis {
		result.Findings = append(result.Findings, model.NewFinding(
			model.FindingInformational, model.SeverityWarning,
			"No legal basis statement found",
			"No legal-basis vocabulary (consent, contract, legitimate interest) appears anywhere on the page."))
	}

	d.logger.Debug("compliance sweeps complete", "findings", len(result.Findings))
	return result
}
