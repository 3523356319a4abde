package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/leroux1606/compliancekit/internal/model"
)

// timeRounding keeps elapsed durations readable in report output.
const timeRounding = 10 * time.Millisecond

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output: cookie and script
	// listings, and remediation text for each finding.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one scan result in human-readable format.
func (w *SimpleWriter) Write(result *model.ScanResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	if result.Success {
		w.writeScore(&sb, result)
		w.writeObservations(&sb, result)
		w.writeFindings(&sb, result)
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteBatch outputs every result followed by a one-line-per-site summary.
func (w *SimpleWriter) WriteBatch(results []*model.ScanResult) (int, error) {
	var total int
	for _, r := range results {
		n, err := w.Write(r)
		total += n
		if err != nil {
			return total, err
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\nBATCH SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(&sb, "  %3d/100  %s\n", r.Score, r.URL)
		} else {
			fmt.Fprintf(&sb, "   failed  %s (%s)\n", r.URL, r.Error)
		}
	}

	n, err := w.output.Write([]byte(sb.String()))
	return total + n, err
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.ScanResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\nCOMPLIANCE SCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Target:    %s\n", result.URL)
	fmt.Fprintf(sb, "Scanned:   %s\n", result.ScannedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Duration:  %s\n", result.Elapsed.Round(timeRounding))
	if !result.Success {
		fmt.Fprintf(sb, "Status:    FAILED - %s\n", result.Error)
	}
}

// writeScore writes the score and its breakdown.
func (w *SimpleWriter) writeScore(sb *strings.Builder, result *model.ScanResult) {
	b := result.Breakdown
	fmt.Fprintf(sb, "\nCompliance score: %d/100\n\n", result.Score)
	fmt.Fprintf(sb, "  Privacy policy         %2d/20\n", b.PrivacyPolicy)
	fmt.Fprintf(sb, "  Cookie banner          %2d/20\n", b.CookieBanner)
	fmt.Fprintf(sb, "  Cookie categorization  %2d/20\n", b.CookieCategorization)
	fmt.Fprintf(sb, "  Tracking disclosure    %2d/20\n", b.TrackingDisclosure)
	fmt.Fprintf(sb, "  User rights            %2d/20\n", b.UserRights)
	if b.Penalty > 0 {
		fmt.Fprintf(sb, "  Penalty                 -%d\n", b.Penalty)
	}
}

// writeObservations writes the cookie and script observations.
func (w *SimpleWriter) writeObservations(sb *strings.Builder, result *model.ScanResult) {
	fmt.Fprintf(sb, "\nCookies: %d observed (%d tracking)\n",
		len(result.Cookies), result.TrackingCookieCount())
	if w.verbose {
		for _, c := range result.Cookies {
			marker := " "
			if c.ThirdParty {
				marker = "*"
			}
			fmt.Fprintf(sb, "  %s %-30s %-12s %s\n", marker, c.Name, c.Category, c.Domain)
		}
	}

	fmt.Fprintf(sb, "Scripts: %d classified (%d tracking)\n",
		len(result.Scripts), result.TrackingScriptCount())
	if w.verbose {
		for _, s := range result.Scripts {
			name := s.Name
			if name == "" {
				name = "(unidentified)"
			}
			fmt.Fprintf(sb, "    %-30s %-12s %s\n", name, s.Category, s.URL)
		}
	}
}

// writeFindings writes the findings grouped by severity.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, result *model.ScanResult) {
	if len(result.Findings) == 0 {
		sb.WriteString("\nNo findings.\n")
		return
	}

	fmt.Fprintf(sb, "\nFindings (%d):\n", len(result.Findings))
	for _, severity := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		for _, f := range result.Findings {
			if f.Severity != severity {
				continue
			}
			fmt.Fprintf(sb, "  [%s] %s\n", strings.ToUpper(f.SeverityText), f.Title)
			if f.Description != "" {
				fmt.Fprintf(sb, "      %s\n", f.Description)
			}
			if w.verbose && f.Recommendation != "" {
				fmt.Fprintf(sb, "      -> %s\n", f.Recommendation)
			}
		}
	}
}
