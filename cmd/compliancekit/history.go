package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leroux1606/compliancekit/internal/model"
	"github.com/leroux1606/compliancekit/internal/storage"
)

// Score direction labels for the comparison summary.
const (
	scoreDirectionImproved  = "improved"
	scoreDirectionWorsened  = "worsened"
	scoreDirectionUnchanged = "unchanged"
)

// NewHistoryCmd creates the history command.
// This command inspects past scan results stored in the record store.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [host]",
		Short: "Show stored scan history for a host",
		Long: `History lists past scan results for a host from the local record store
and can compare the two most recent scans.

Scores over time reveal whether a site's compliance posture is improving;
the comparison shows which findings appeared or were resolved since the
previous scan.

Examples:
  # List all stored scans for a host
  compliancekit history example.com

  # Compare the two most recent scans
  compliancekit history --compare example.com

  # List all hosts in the record store
  compliancekit history --list-hosts`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("compare", "d", false,
		"Compare the two most recent scans of the host")
	cmd.Flags().BoolP("list-hosts", "L", false,
		"List all hosts in the record store")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listHosts, err := cmd.Flags().GetBool("list-hosts")
	if err != nil {
		return err
	}

	// Validate arguments before opening the store so validation failures
	// don't contend for the database lock.
	var host string
	if !listHosts {
		if len(args) == 0 {
			return errors.New("host is required (use --list-hosts to see stored hosts)")
		}
		host = normalizeHost(args[0])
	}

	// The store must already exist; history is read-only.
	opts := storage.DefaultOptions()
	opts.CreateIfNotExists = false
	store, err := storage.Open(storage.DefaultDir(), opts)
	if err != nil {
		return fmt.Errorf("failed to open record store (run a scan first): %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if listHosts {
		return listStoredHosts(ctx, cmd, store)
	}

	compare, err := cmd.Flags().GetBool("compare")
	if err != nil {
		return err
	}
	if compare {
		return compareLatestScans(ctx, cmd, store, host)
	}

	return listScanHistory(ctx, cmd, store, host)
}

// normalizeHost reduces a target argument to a bare hostname so both
// "example.com" and "https://example.com/page" address the same history.
func normalizeHost(target string) string {
	if u, err := url.Parse(target); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return strings.TrimSuffix(target, "/")
}

// listStoredHosts prints every host in the record store.
func listStoredHosts(ctx context.Context, cmd *cobra.Command, store *storage.Store) error {
	hosts, err := store.ListHosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list hosts: %w", err)
	}

	if len(hosts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scans stored yet.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored hosts (%d):\n", len(hosts))
	for _, host := range hosts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", host)
	}
	return nil
}

// listScanHistory prints the stored scans for a host, newest first.
func listScanHistory(ctx context.Context, cmd *cobra.Command, store *storage.Store, host string) error {
	history, err := store.History(ctx, host)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(history) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No scans stored for %s.\n", host)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scan history for %s (%d scans):\n\n", host, len(history))
	fmt.Fprintf(cmd.OutOrStdout(), "  %-6s %-20s %-9s %s\n", "ID", "SCANNED", "SCORE", "URL")
	for _, sum := range history {
		score := fmt.Sprintf("%d/100", sum.Score)
		if !sum.Success {
			score = "failed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-6d %-20s %-9s %s\n",
			sum.ID, sum.ScannedAt.Format("2006-01-02 15:04"), score, sum.URL)
	}
	return nil
}

// compareLatestScans diffs the two most recent scans of a host.
func compareLatestScans(ctx context.Context, cmd *cobra.Command, store *storage.Store, host string) error {
	history, err := store.History(ctx, host)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(history) < 2 {
		return fmt.Errorf("comparison requires at least two stored scans for %s (found %d)", host, len(history))
	}

	current, err := store.ResultByID(ctx, history[0].ID)
	if err != nil {
		return fmt.Errorf("failed to load current scan: %w", err)
	}
	previous, err := store.ResultByID(ctx, history[1].ID)
	if err != nil {
		return fmt.Errorf("failed to load previous scan: %w", err)
	}
	if current == nil || previous == nil {
		return errors.New("stored scan disappeared during comparison")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Comparing scans of %s:\n", host)
	fmt.Fprintf(out, "  previous: %s (score %d/100)\n", previous.ScannedAt.Format("2006-01-02 15:04"), previous.Score)
	fmt.Fprintf(out, "  current:  %s (score %d/100)\n\n", current.ScannedAt.Format("2006-01-02 15:04"), current.Score)

	delta := current.Score - previous.Score
	fmt.Fprintf(out, "Score %s: %+d points\n\n", scoreDirection(delta), delta)

	newFindings, resolved := diffFindings(previous.Findings, current.Findings)

	fmt.Fprintf(out, "New findings (%d):\n", len(newFindings))
	printFindingTitles(out, newFindings)
	fmt.Fprintf(out, "\nResolved findings (%d):\n", len(resolved))
	printFindingTitles(out, resolved)

	return nil
}

// scoreDirection maps a score delta to a direction label.
func scoreDirection(delta int) string {
	switch {
	case delta > 0:
		return scoreDirectionImproved
	case delta < 0:
		return scoreDirectionWorsened
	default:
		return scoreDirectionUnchanged
	}
}

// diffFindings returns findings present only in current (new) and only in
// previous (resolved). Findings are matched by type and title.
func diffFindings(previous, current []model.Finding) (newFindings, resolved []model.Finding) {
	key := func(f model.Finding) string {
		return string(f.Type) + "\x00" + f.Title
	}

	prevSet := make(map[string]bool, len(previous))
	for _, f := range previous {
		prevSet[key(f)] = true
	}
	currSet := make(map[string]bool, len(current))
	for _, f := range current {
		currSet[key(f)] = true
	}

	for _, f := range current {
		if !prevSet[key(f)] {
			newFindings = append(newFindings, f)
		}
	}
	for _, f := range previous {
		if !currSet[key(f)] {
			resolved = append(resolved, f)
		}
	}
	return newFindings, resolved
}

// printFindingTitles prints one line per finding, or a placeholder.
func printFindingTitles(out io.Writer, findings []model.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, f := range findings {
		fmt.Fprintf(out, "  [%s] %s\n", f.SeverityText, f.Title)
	}
}
