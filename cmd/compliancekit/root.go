// Package main provides the entry point for the ComplianceKit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ComplianceKit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliancekit",
		Short: "GDPR compliance scanner for websites",
		Long: `ComplianceKit audits websites for GDPR compliance. It loads each page
in a headless Chrome browser, inspects cookies, scripts, consent banners,
privacy policies, and user-rights affordances, and produces a weighted
0-100 compliance score with actionable findings.

A Chrome or Chromium binary must be installed; the scanner launches it
headlessly and closes it when the scan finishes.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
