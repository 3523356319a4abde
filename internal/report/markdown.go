package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/leroux1606/compliancekit/internal/model"
)

// MarkdownWriter outputs scan results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one scan result in Markdown format.
func (w *MarkdownWriter) Write(result *model.ScanResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	if result.Success {
		w.writeScore(md, result)
		w.writeObservations(md, result)
		w.writeFindings(md, result)
	}

	return len(md.String()), md.Build()
}

// WriteBatch outputs a summary table followed by each result.
func (w *MarkdownWriter) WriteBatch(results []*model.ScanResult) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Compliance Scan Batch Report")
	md.PlainText("")

	rows := make([][]string, len(results))
	for i, r := range results {
		scoreText := strconv.Itoa(r.Score)
		if !r.Success {
			scoreText = "failed"
		}
		rows[i] = []string{r.URL, scoreText, strconv.Itoa(len(r.Findings))}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Target", "Score", "Findings"},
		Rows:   rows,
	})
	md.PlainText("")

	total := len(md.String())
	if err := md.Build(); err != nil {
		return total, err
	}

	for _, r := range results {
		n, err := w.Write(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.ScanResult) {
	md.H1("Compliance Scan Report")
	md.PlainText("")

	status := "✅ Complete"
	if !result.Success {
		status = "❌ Failed - " + result.Error
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Target", "`" + result.URL + "`"},
			{"Scan Date", result.ScannedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", result.Elapsed.Round(timeRounding).String()},
			{"Status", status},
		},
	})
	md.PlainText("")
}

// writeScore writes the compliance score section with its breakdown and
// an alert matched to the overall outcome.
func (w *MarkdownWriter) writeScore(md *markdown.Markdown, result *model.ScanResult) {
	b := result.Breakdown
	md.H2(fmt.Sprintf("Compliance Score: %d/100", result.Score))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Area", "Score"},
		Rows: [][]string{
			{"Privacy policy", strconv.Itoa(b.PrivacyPolicy) + "/20"},
			{"Cookie banner", strconv.Itoa(b.CookieBanner) + "/20"},
			{"Cookie categorization", strconv.Itoa(b.CookieCategorization) + "/20"},
			{"Tracking disclosure", strconv.Itoa(b.TrackingDisclosure) + "/20"},
			{"User rights", strconv.Itoa(b.UserRights) + "/20"},
			{"Penalty", "-" + strconv.Itoa(b.Penalty)},
		},
	})
	md.PlainText("")

	errors, warnings, infos := severityCounts(result.Findings)
	switch {
	case errors > 0:
		md.Cautionf(
			"Compliance violations detected! %d error-severity finding(s) require attention.",
			errors,
		)
	case warnings > 0:
		md.Warningf(
			"%d warning-severity finding(s) should be reviewed.",
			warnings,
		)
	case infos > 0:
		md.Note("Only informational findings detected.")
	default:
		md.Tip("No compliance issues detected.")
	}
	md.PlainText("")

	if len(result.Findings) > 0 {
		w.writePieChart(md, errors, warnings, infos)
	}
}

// writePieChart writes a mermaid pie chart for severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, errors, warnings, infos int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Finding Severity Distribution"),
		piechart.WithShowData(true),
	)

	if errors > 0 {
		chart.LabelAndIntValue("Error", uint64(errors))
	}
	if warnings > 0 {
		chart.LabelAndIntValue("Warning", uint64(warnings))
	}
	if infos > 0 {
		chart.LabelAndIntValue("Info", uint64(infos))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeObservations writes the cookie and script tables.
func (w *MarkdownWriter) writeObservations(md *markdown.Markdown, result *model.ScanResult) {
	md.H2("Cookies")
	md.PlainText("")
	if len(result.Cookies) == 0 {
		md.PlainText("No cookies observed.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(result.Cookies))
		for i, c := range result.Cookies {
			party := "first-party"
			if c.ThirdParty {
				party = "third-party"
			}
			rows[i] = []string{"`" + c.Name + "`", c.Domain, string(c.Category), party}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Name", "Domain", "Category", "Party"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.H2("Scripts and Pixels")
	md.PlainText("")
	if len(result.Scripts) == 0 {
		md.PlainText("No classifiable scripts observed.")
		md.PlainText("")
		return
	}
	rows := make([][]string, len(result.Scripts))
	for i, s := range result.Scripts {
		name := s.Name
		if name == "" {
			name = "-"
		}
		rows[i] = []string{name, string(s.Category), string(s.Delivery), truncateString(s.URL, 60)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Provider", "Category", "Delivery", "Source"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFindings writes all findings grouped by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, result *model.ScanResult) {
	md.H2("Findings")
	md.PlainText("")

	if len(result.Findings) == 0 {
		md.PlainText("No findings.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityError, "### 🔴 Error"},
		{model.SeverityWarning, "### 🟡 Warning"},
		{model.SeverityInfo, "### ⚪ Info"},
	}

	for _, sev := range severities {
		var findings []model.Finding
		for _, f := range result.Findings {
			if f.Severity == sev.level {
				findings = append(findings, f)
			}
		}
		if len(findings) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeFindingsTable(md, findings)
	}
}

// writeFindingsTable writes a table of findings with details.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	rows := make([][]string, len(findings))
	for i, f := range findings {
		rec := f.Recommendation
		if rec == "" {
			rec = "-"
		}
		rows[i] = []string{
			f.Title,
			string(f.Type),
			truncateString(f.Description, 80),
			truncateString(rec, 80),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Title", "Area", "Details", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")
}

// severityCounts tallies findings per severity level.
func severityCounts(findings []model.Finding) (errors, warnings, infos int) {
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityError:
			errors++
		case model.SeverityWarning:
			warnings++
		case model.SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}

// truncateString shortens s to max runes, appending an ellipsis when
// content was cut.
func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
