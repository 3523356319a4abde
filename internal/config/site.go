package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "90s" parse with
// time.ParseDuration semantics instead of as raw nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// SiteConfig holds per-hostname overrides for scanning a specific site.
type SiteConfig struct {
	// UserAgent overrides the browser user-agent for this site.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are custom HTTP headers to send to this site, typically
	// for staging environments behind basic auth.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Timeout overrides the global scan timeout for this site.
	// Zero means use the global value.
	Timeout Duration `yaml:"timeout,omitempty"`

	// WaitNetworkIdle overrides the global network-idle setting when set.
	WaitNetworkIdle *bool `yaml:"waitNetworkIdle,omitempty"`
}

// File represents the structure of the .compliancekit configuration file.
type File struct {
	// Sites maps hostnames to their overrides. Keys are bare hostnames
	// without scheme or path (e.g. "shop.example.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains overrides applied to every site unless the
	// site-specific entry overrides them again.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the merged configuration for a hostname:
// defaults first, then the site-specific entry on top.
func (cf *File) GetSiteConfig(hostname string) SiteConfig {
	result := cf.Defaults

	siteConfig, ok := cf.Sites[hostname]
	if !ok {
		return result
	}

	if siteConfig.UserAgent != "" {
		result.UserAgent = siteConfig.UserAgent
	}
	if siteConfig.Timeout != 0 {
		result.Timeout = siteConfig.Timeout
	}
	if siteConfig.WaitNetworkIdle != nil {
		result.WaitNetworkIdle = siteConfig.WaitNetworkIdle
	}
	if len(siteConfig.Headers) > 0 {
		merged := make(map[string]string, len(result.Headers)+len(siteConfig.Headers))
		for k, v := range result.Headers {
			merged[k] = v
		}
		for k, v := range siteConfig.Headers {
			merged[k] = v
		}
		result.Headers = merged
	}

	return result
}
