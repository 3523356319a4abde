package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/compliancekit.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".compliancekit"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ComplianceKit configuration file",
		Long: `Initialize creates a new .compliancekit configuration file in the current directory.

The generated file includes:
- Default settings for timeouts and network-idle waiting
- Commented examples for site-specific configurations
- Documentation for all available options

Examples:
  # Create .compliancekit in current directory
  compliancekit init

  # Create config file at a specific path
  compliancekit init -o myconfig.yaml

  # Force overwrite existing file
  compliancekit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/compliancekit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure site-specific settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Custom user agents and HTTP headers")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Per-site scan timeouts")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Network-idle waiting for slow sites")

	return nil
}
