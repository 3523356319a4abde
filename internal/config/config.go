package config

import (
	"net/url"
	"strings"
	"time"
)

// Default configuration values.
const (
	// DefaultTimeout bounds a whole scan including navigation and detector
	// evaluation. 60 seconds accommodates slow sites and late-loading
	// consent banners; a shorter timeout would fail scans of heavy pages
	// that are perfectly reachable.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is a realistic desktop browser string. Consent
	// banners and tag managers frequently serve different markup to
	// obvious bots, so the scanner should look like an ordinary visitor.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

	// DefaultSettleDelay is the pause after page load before detectors
	// run. Many consent banners are injected by deferred scripts; probing
	// the DOM immediately after load misses them.
	DefaultSettleDelay = 2 * time.Second

	// DefaultNetworkIdleDelay is the additional settle time when the
	// caller asks to wait for network quiescence. chromedp has no native
	// network-idle condition, so the scanner approximates it with a
	// longer post-load pause.
	DefaultNetworkIdleDelay = 4 * time.Second

	// DefaultBatchSize of 3 concurrent scans balances throughput with
	// resource usage: each scan owns a full headless browser process,
	// which is far heavier than a socket.
	DefaultBatchSize = 3

	// DefaultScanRate limits how many scans per second the batch runner
	// may launch, independent of concurrency. Browser launches are
	// CPU-spiky; spacing them out keeps the host responsive.
	DefaultScanRate = 0.5

	// DefaultViewportWidth and DefaultViewportHeight describe a common
	// desktop viewport. Banner visibility heuristics depend on elements
	// actually rendering, so the viewport must be realistic.
	DefaultViewportWidth  = 1366
	DefaultViewportHeight = 900

	// AppName is the application name used for XDG directory paths.
	AppName = "compliancekit"
)

// Config holds all options for a ComplianceKit run.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
type Config struct {
	// Targets is the list of page URLs to scan.
	// Each must parse as an absolute http or https URL.
	Targets []string

	// Timeout bounds each individual scan.
	Timeout time.Duration

	// UserAgent overrides the default browser user-agent string.
	UserAgent string

	// WaitNetworkIdle makes each scan wait longer after load so that
	// slow third-party scripts get a chance to inject their banners.
	WaitNetworkIdle bool

	// Verbose enables debug-level log output.
	Verbose bool

	// BatchSize is the number of concurrent scans for multi-target runs.
	BatchSize int

	// ConfigFilePath is the path to the YAML overrides file. If empty,
	// .compliancekit is searched for in the current and home directories.
	ConfigFilePath string

	// SiteConfigs holds per-hostname overrides loaded from the config file.
	SiteConfigs *File

	// JSONReport selects JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path for the report. Empty means stdout.
	ReportFile string

	// Store enables writing results into the local record store.
	Store bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		BatchSize: DefaultBatchSize,
	}
}

// Validate checks the configuration for consistency.
// It returns a sentinel error describing the first problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	for _, target := range c.Targets {
		if !isValidTarget(target) {
			return ErrInvalidTarget
		}
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// isValidTarget reports whether the target parses as an absolute
// http or https URL with a host.
func isValidTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
