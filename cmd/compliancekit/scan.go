package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leroux1606/compliancekit/internal/config"
	"github.com/leroux1606/compliancekit/internal/log"
	"github.com/leroux1606/compliancekit/internal/model"
	"github.com/leroux1606/compliancekit/internal/report"
	"github.com/leroux1606/compliancekit/internal/scanner"
	"github.com/leroux1606/compliancekit/internal/storage"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url]",
		Short: "Scan a website for GDPR compliance issues",
		Long: `Scan loads each page in a headless browser and audits it for GDPR compliance.

It inspects the page for:
- Cookies and their purpose categories (necessary, analytics, marketing, ...)
- Tracking scripts and pixels from known providers
- Consent banner presence and consent quality (reject parity, granularity)
- Privacy policy presence and content completeness
- User rights affordances (profile settings, data export, account deletion)

Examples:
  # Scan a single page
  compliancekit scan https://example.com

  # Scan multiple pages concurrently
  compliancekit scan --batch 5 https://a.example https://b.example

  # Wait for late-injected banners on script-heavy sites
  compliancekit scan --wait-network-idle https://example.com

  # Output a Markdown report to a file
  compliancekit scan --markdown -o report.md https://example.com

  # Use a custom configuration file
  compliancekit scan -c myconfig.yaml https://example.com

Configuration file (.compliancekit) example:
  sites:
    shop.example.com:
      headers:
        Authorization: "Basic dXNlcjpwYXNz"
      timeout: 120s
    slow-cms.example.org:
      waitNetworkIdle: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Scan behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each scan, navigation included")
	cmd.Flags().StringP("user-agent", "u", "",
		"Override the browser user-agent string")
	cmd.Flags().BoolP("wait-network-idle", "w", false,
		"Wait for network quiescence after load (catches late-injected banners)")

	// Batch scanning flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent scans")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .compliancekit in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Record store
	cmd.Flags().Bool("store", true,
		"Save results to the local record store (use --store=false to disable)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	userAgent, err := cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		cfg.UserAgent = userAgent
	}

	cfg.WaitNetworkIdle, err = cmd.Flags().GetBool("wait-network-idle")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Store, err = cmd.Flags().GetBool("store")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the target page URLs
	cfg.Targets = args

	return cfg, nil
}

// buildRequest creates a ScanRequest for a target, merging the global
// configuration with any per-hostname overrides from the config file.
func buildRequest(cfg *config.Config, target string) model.ScanRequest {
	req := model.ScanRequest{
		URL:             target,
		Timeout:         cfg.Timeout,
		UserAgent:       cfg.UserAgent,
		WaitNetworkIdle: cfg.WaitNetworkIdle,
	}

	if cfg.SiteConfigs == nil {
		return req
	}

	hostname := target
	if u, err := url.Parse(target); err == nil && u.Hostname() != "" {
		hostname = u.Hostname()
	}

	siteCfg := cfg.SiteConfigs.GetSiteConfig(hostname)
	if siteCfg.UserAgent != "" {
		req.UserAgent = siteCfg.UserAgent
	}
	if siteCfg.Timeout != 0 {
		req.Timeout = siteCfg.Timeout.Std()
	}
	if siteCfg.WaitNetworkIdle != nil {
		req.WaitNetworkIdle = *siteCfg.WaitNetworkIdle
	}
	if len(siteCfg.Headers) > 0 {
		req.Headers = siteCfg.Headers
	}

	return req
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Targets) == 0 {
		return errors.New("no targets provided (specify one or more page URLs as arguments)")
	}

	logger.Info("starting scan",
		"targets", cfg.Targets,
		"batchSize", cfg.BatchSize,
		"store", cfg.Store,
	)

	// Open the record store if saving is enabled
	var store *storage.Store
	if cfg.Store {
		var err error
		store, err = storage.Open(storage.DefaultDir(), storage.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open record store: %w", err)
		}
		defer store.Close()
		logger.Info("record store opened", "dir", storage.DefaultDir())
	}

	scn := scanner.NewScanner(scanner.WithLogger(logger))

	requests := make([]model.ScanRequest, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		requests = append(requests, buildRequest(cfg, target))
	}

	var results []*model.ScanResult
	if len(requests) > 1 && cfg.BatchSize > 1 {
		fmt.Printf("Starting batch scan of %d targets (concurrency: %d)...\n\n",
			len(requests), cfg.BatchSize)
		startTime := time.Now()

		results = scn.ScanBatch(ctx, requests, scanner.BatchOptions{
			Concurrency: cfg.BatchSize,
		})

		fmt.Printf("Batch scan completed in %s\n\n", time.Since(startTime).Round(time.Millisecond))
	} else {
		for _, req := range requests {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fmt.Printf("Scanning %s...\n", req.URL)
			result := scn.Scan(ctx, req)
			fmt.Printf("Scan completed in %s\n\n", result.Elapsed.Round(time.Millisecond))

			results = append(results, result)
		}
	}

	// Save to the record store before reporting so a report failure
	// doesn't lose the scan.
	for _, result := range results {
		if err := saveResult(ctx, store, result, logger); err != nil {
			logger.Error("failed to save scan result", "target", result.URL, "error", err)
		}
	}

	return outputReport(cfg, results)
}

// outputReport writes the scan results in the requested format.
func outputReport(cfg *config.Config, results []*model.ScanResult) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // reports are not sensitive
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	var err error
	if len(results) == 1 {
		_, err = writer.Write(results[0])
	} else {
		_, err = writer.WriteBatch(results)
	}
	return err
}

// saveResult saves the scan result to the record store if enabled.
// If store is nil, this function is a no-op.
func saveResult(ctx context.Context, store *storage.Store, result *model.ScanResult, logger *slog.Logger) error {
	if store == nil {
		return nil
	}

	id, err := store.SaveResult(ctx, result)
	if err != nil {
		return err
	}

	logger.Info("scan result saved", "target", result.URL, "id", id)
	return nil
}
