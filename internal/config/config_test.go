package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfigValidate tests configuration validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		c := NewConfig()
		c.Targets = []string{"https://example.com"}
		return c
	}

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "valid config",
			mutate:   func(*Config) {},
			expected: nil,
		},
		{
			name:     "no targets",
			mutate:   func(c *Config) { c.Targets = nil },
			expected: ErrNoTarget,
		},
		{
			name:     "relative target",
			mutate:   func(c *Config) { c.Targets = []string{"example.com/page"} },
			expected: ErrInvalidTarget,
		},
		{
			name:     "unsupported scheme",
			mutate:   func(c *Config) { c.Targets = []string{"ftp://example.com"} },
			expected: ErrInvalidTarget,
		},
		{
			name:     "zero timeout",
			mutate:   func(c *Config) { c.Timeout = 0 },
			expected: ErrInvalidTimeout,
		},
		{
			name:     "negative batch size",
			mutate:   func(c *Config) { c.BatchSize = -1 },
			expected: ErrInvalidBatchSize,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			expected: ErrConflictingReportFormats,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			tc.mutate(c)
			if err := c.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

// TestNewConfigDefaults tests default values.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	if c.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, expected %v", c.Timeout, DefaultTimeout)
	}
	if c.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, expected default", c.UserAgent)
	}
	if c.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, expected %d", c.BatchSize, DefaultBatchSize)
	}
}

// TestLoadConfigFile tests YAML loading and the not-found sentinel.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `
defaults:
  waitNetworkIdle: true
sites:
  shop.example.com:
    userAgent: "custom-agent"
    timeout: 90s
    headers:
      Authorization: "Basic abc"
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error: %v", err)
		}

		site := cf.GetSiteConfig("shop.example.com")
		if site.UserAgent != "custom-agent" {
			t.Errorf("UserAgent = %q, expected %q", site.UserAgent, "custom-agent")
		}
		if site.Timeout.Std() != 90*time.Second {
			t.Errorf("Timeout = %v, expected 90s", site.Timeout)
		}
		if site.Headers["Authorization"] == "" {
			t.Error("expected Authorization header from site config")
		}
		if site.WaitNetworkIdle == nil || !*site.WaitNetworkIdle {
			t.Error("expected waitNetworkIdle default to survive the merge")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})
}

// TestGetSiteConfigUnknownHost tests that unknown hosts get the defaults.
func TestGetSiteConfigUnknownHost(t *testing.T) {
	t.Parallel()

	cf := &File{
		Defaults: SiteConfig{UserAgent: "default-agent"},
		Sites:    map[string]SiteConfig{},
	}
	site := cf.GetSiteConfig("unknown.example.com")
	if site.UserAgent != "default-agent" {
		t.Errorf("UserAgent = %q, expected defaults for unknown host", site.UserAgent)
	}
}
