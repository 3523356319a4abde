package detector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// rightsExtractExpr collects the text of every link, button, and submit
// control, plus link targets and form actions, which together carry the
// affordances the rights checks look for.
const rightsExtractExpr = `(() => {
	const texts = [];
	document.querySelectorAll('a, button, [role="button"], input[type="submit"], input[type="button"]').forEach(el => {
		const t = (el.innerText || el.value || '').trim();
		if (t) texts.push(t.slice(0, 160));
	});
	return {
		texts: texts.slice(0, 3000),
		hrefs: Array.from(document.querySelectorAll('a[href]')).map(a => a.href).slice(0, 3000),
		actions: Array.from(document.querySelectorAll('form[action]')).map(f => f.action).slice(0, 200),
	};
})()`

type rightsExtract struct {
	Texts   []string `json:"texts"`
	Hrefs   []string `json:"hrefs"`
	Actions []string `json:"actions"`
}

// UserRightsResult is the outcome of the user-rights affordance scan.
type UserRightsResult struct {
	// HasAccounts is true when any rights or auth signal matched, meaning
	// the site appears to offer user accounts.
	HasAccounts bool

	// HasAuth is true when a login/registration affordance was found.
	HasAuth bool

	// ProfileSettings, DataExport, AccountDeletion, and DSAR report the
	// four independent rights affordances.
	ProfileSettings bool
	DataExport      bool
	AccountDeletion bool
	DSAR            bool

	// Findings holds the conditional rights findings.
	Findings []model.Finding
}

// DetectedCount returns how many of the four rights affordances matched.
func (r UserRightsResult) DetectedCount() int {
	n := 0
	for _, ok := range []bool{r.ProfileSettings, r.DataExport, r.AccountDeletion, r.DSAR} {
		if ok {
			n++
		}
	}
	return n
}

// UserRightsDetector scans links, buttons, and form actions for the
// affordances through which users exercise their data-protection rights.
// The obligation is conditional: a site without user accounts is never
// penalized for lacking account-management features.
type UserRightsDetector struct {
	profile  knowledge.PatternSet
	export   knowledge.PatternSet
	deletion knowledge.PatternSet
	dsar     knowledge.PatternSet
	auth     knowledge.PatternSet
	logger   *slog.Logger
}

// NewUserRightsDetector creates a detector using the default multilingual
// affordance patterns.
func NewUserRightsDetector(logger *slog.Logger) *UserRightsDetector {
	return &UserRightsDetector{
		profile:  knowledge.ProfileSettings(),
		export:   knowledge.DataExport(),
		deletion: knowledge.AccountDeletion(),
		dsar:     knowledge.DSARAffordance(),
		auth:     knowledge.AuthSignals(),
		logger:   logger,
	}
}

// Detect scans the page for rights and auth affordances and derives the
// conditional findings.
func (d *UserRightsDetector) Detect(ctx context.Context, page Page) UserRightsResult {
	var extract rightsExtract
	if err := page.Evaluate(ctx, rightsExtractExpr, &extract); err != nil {
		d.logger.Warn("rights extraction failed", "url", page.URL(), "error", err)
		return UserRightsResult{}
	}

	haystack := strings.Join(extract.Texts, "\n") + "\n" +
		strings.Join(extract.Hrefs, "\n") + "\n" +
		strings.Join(extract.Actions, "\n")

	result := UserRightsResult{
		HasAuth:         d.auth.Match(haystack),
		ProfileSettings: d.profile.Match(haystack),
		DataExport:      d.export.Match(haystack),
		AccountDeletion: d.deletion.Match(haystack),
		DSAR:            d.dsar.Match(haystack),
	}
	result.HasAccounts = result.HasAuth || result.DetectedCount() > 0
	result.Findings = d.findings(result)

	d.logger.Debug("user rights scanned",
		"has_accounts", result.HasAccounts,
		"detected", result.DetectedCount(),
	)
	return result
}

// findings derives the severity ladder from the missing-affordance count.
// All missing findings of one scan share the ladder severity; each names
// the specific affordance.
func (d *UserRightsDetector) findings(r UserRightsResult) []model.Finding {
	if !r.HasAccounts {
		return []model.Finding{
			model.NewFinding(model.FindingInformational, model.SeverityInfo,
				"No user account features detected",
				"The page shows no login, registration, or account-management affordances, so account-related data-subject rights do not apply."),
		}
	}

	missing := 4 - r.DetectedCount()
	var severity model.Severity
	switch {
	case missing == 4:
		severity = model.SeverityError
	case missing == 3:
		severity = model.SeverityWarning
	case missing >= 1:
		severity = model.SeverityInfo
	default:
		return nil
	}

	var findings []model.Finding
	if !r.ProfileSettings {
		findings = append(findings, model.NewFinding(
			model.FindingUserProfileSettings, severity,
			"No profile management affordance found",
			"No link or control for reviewing or editing account or profile settings was found."))
	}
	if !r.DataExport {
		findings = append(findings, model.NewFinding(
			model.FindingDataRectification, severity,
			"No data export affordance found",
			"No link or control for downloading or exporting personal data was found."))
	}
	if !r.AccountDeletion {
		findings = append(findings, model.NewFinding(
			model.FindingAccountDeletion, severity,
			"No account deletion affordance found",
			"No link or control for deleting or closing the account was found."))
	}
	if !r.DSAR {
		findings = append(findings, model.NewFinding(
			model.FindingDataRectification, severity,
			"No data subject access request path found",
			"No affordance for submitting a data subject access request was found."))
	}
	return findings
}
