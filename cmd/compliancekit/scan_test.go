package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leroux1606/compliancekit/internal/config"
	"github.com/leroux1606/compliancekit/internal/model"
)

// TestNewScanCmd tests the scan command creation.
func TestNewScanCmd(t *testing.T) {
	t.Parallel()

	cmd := NewScanCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "scan [url]" {
			t.Errorf("expected use 'scan [url]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	flagTests := []struct {
		name      string
		shorthand string
	}{
		{"timeout", "t"},
		{"user-agent", "u"},
		{"wait-network-idle", "w"},
		{"batch", "b"},
		{"config", "c"},
		{"json", "j"},
		{"markdown", "m"},
		{"output", "o"},
		{"store", ""},
	}
	for _, tt := range flagTests {
		tt := tt
		t.Run("has "+tt.name+" flag", func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
		})
	}

	t.Run("store defaults to true", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("store")
		if flag == nil {
			t.Fatal("expected store flag")
		}
		if flag.DefValue != "true" {
			t.Errorf("expected default 'true', got %q", flag.DefValue)
		}
	})
}

// TestBuildConfig tests config construction from flags.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("Timeout = %v, want %v", cfg.Timeout, config.DefaultTimeout)
		}
		if cfg.UserAgent != config.DefaultUserAgent {
			t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
		}
		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, config.DefaultBatchSize)
		}
		if !cfg.Store {
			t.Error("Store = false, want true")
		}
		if len(cfg.Targets) != 1 || cfg.Targets[0] != "https://example.com/" {
			t.Errorf("Targets = %v", cfg.Targets)
		}
	})

	t.Run("flag overrides", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		args := []string{
			"--timeout", "90s",
			"--user-agent", "TestAgent/1.0",
			"--wait-network-idle",
			"--batch", "5",
			"--json",
			"--store=false",
		}
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Timeout != 90*time.Second {
			t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
		}
		if cfg.UserAgent != "TestAgent/1.0" {
			t.Errorf("UserAgent = %q", cfg.UserAgent)
		}
		if !cfg.WaitNetworkIdle {
			t.Error("WaitNetworkIdle = false, want true")
		}
		if cfg.BatchSize != 5 {
			t.Errorf("BatchSize = %d, want 5", cfg.BatchSize)
		}
		if !cfg.JSONReport {
			t.Error("JSONReport = false, want true")
		}
		if cfg.Store {
			t.Error("Store = true, want false")
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{"-c", "/nonexistent/config.yaml"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd, []string{"https://example.com/"}); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("loads site configs from file", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "config.yaml")
		content := `
defaults:
  waitNetworkIdle: true
sites:
  shop.example.com:
    userAgent: "SiteAgent/2.0"
    timeout: 120s
    headers:
      X-Test: "1"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewScanCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://shop.example.com/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.SiteConfigs == nil {
			t.Fatal("expected site configs to be loaded")
		}
		if _, ok := cfg.SiteConfigs.Sites["shop.example.com"]; !ok {
			t.Error("expected shop.example.com site entry")
		}
	})
}

// TestBuildRequest tests site override merging into scan requests.
func TestBuildRequest(t *testing.T) {
	t.Parallel()

	wait := true
	cfg := config.NewConfig()
	cfg.SiteConfigs = &config.File{
		Defaults: config.SiteConfig{WaitNetworkIdle: &wait},
		Sites: map[string]config.SiteConfig{
			"shop.example.com": {
				UserAgent: "SiteAgent/2.0",
				Timeout:   config.Duration(120 * time.Second),
				Headers:   map[string]string{"X-Test": "1"},
			},
		},
	}

	t.Run("site entry overrides global config", func(t *testing.T) {
		t.Parallel()

		req := buildRequest(cfg, "https://shop.example.com/checkout")
		if req.URL != "https://shop.example.com/checkout" {
			t.Errorf("URL = %q", req.URL)
		}
		if req.UserAgent != "SiteAgent/2.0" {
			t.Errorf("UserAgent = %q, want site override", req.UserAgent)
		}
		if req.Timeout != 120*time.Second {
			t.Errorf("Timeout = %v, want 120s", req.Timeout)
		}
		if !req.WaitNetworkIdle {
			t.Error("WaitNetworkIdle = false, want true (from defaults)")
		}
		if req.Headers["X-Test"] != "1" {
			t.Errorf("Headers = %v", req.Headers)
		}
	})

	t.Run("unknown host gets defaults only", func(t *testing.T) {
		t.Parallel()

		req := buildRequest(cfg, "https://other.example/")
		if req.UserAgent != config.DefaultUserAgent {
			t.Errorf("UserAgent = %q, want global default", req.UserAgent)
		}
		if req.Timeout != config.DefaultTimeout {
			t.Errorf("Timeout = %v, want global default", req.Timeout)
		}
		if !req.WaitNetworkIdle {
			t.Error("WaitNetworkIdle = false, want true (from defaults)")
		}
		if req.Headers != nil {
			t.Errorf("Headers = %v, want nil", req.Headers)
		}
	})

	t.Run("nil site configs", func(t *testing.T) {
		t.Parallel()

		bare := config.NewConfig()
		req := buildRequest(bare, "https://example.com/")
		if req.UserAgent != config.DefaultUserAgent {
			t.Errorf("UserAgent = %q", req.UserAgent)
		}
		if req.WaitNetworkIdle {
			t.Error("WaitNetworkIdle = true, want false")
		}
	})
}

// TestOutputReport tests report format selection and file output.
func TestOutputReport(t *testing.T) {
	t.Parallel()

	results := []*model.ScanResult{
		{
			Success:   true,
			URL:       "https://example.com/",
			Score:     67,
			ScannedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
			Elapsed:   3 * time.Second,
		},
	}

	t.Run("writes JSON report to file", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.JSONReport = true
		cfg.ReportFile = filepath.Join(t.TempDir(), "out", "report.json")

		if err := outputReport(cfg, results); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		var decoded model.ScanResult
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if decoded.Score != 67 {
			t.Errorf("Score = %d, want 67", decoded.Score)
		}
	})

	t.Run("writes Markdown report to file", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.MarkdownReport = true
		cfg.ReportFile = filepath.Join(t.TempDir(), "report.md")

		if err := outputReport(cfg, results); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "# ") {
			t.Error("expected Markdown heading in report")
		}
	})

	t.Run("writes human-readable report to file", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.ReportFile = filepath.Join(t.TempDir(), "report.txt")

		if err := outputReport(cfg, results); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "COMPLIANCE SCAN REPORT") {
			t.Error("expected report header")
		}
	})
}
