package detector

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// CookieDetector reads the browser's cookie jar and classifies every
// cookie by purpose.
type CookieDetector struct {
	registry *knowledge.CookieRegistry
	logger   *slog.Logger
}

// NewCookieDetector creates a cookie detector over the given registry.
func NewCookieDetector(registry *knowledge.CookieRegistry, logger *slog.Logger) *CookieDetector {
	return &CookieDetector{registry: registry, logger: logger}
}

// Detect reads and classifies every cookie visible to the session.
// Output preserves the browser's enumeration order without deduplication;
// duplicates with the same name and domain may represent distinct paths.
// On evaluation failure it returns an empty list.
func (d *CookieDetector) Detect(ctx context.Context, page Page) []model.DetectedCookie {
	raw, err := page.Cookies(ctx)
	if err != nil {
		d.logger.Warn("cookie enumeration failed", "url", page.URL(), "error", err)
		return nil
	}

	host := hostOf(page.URL())
	detected := make([]model.DetectedCookie, 0, len(raw))
	for _, c := range raw {
		detected = append(detected, d.classify(c, host))
	}

	d.logger.Debug("cookies classified", "count", len(detected))
	return detected
}

// classify resolves one cookie's category and third-party status.
// Classification is a pure function of the cookie's name and domain, so
// reclassifying the same cookie always yields the same category.
func (d *CookieDetector) classify(c *network.Cookie, targetHost string) model.DetectedCookie {
	dc := model.DetectedCookie{
		Name:       c.Name,
		Domain:     c.Domain,
		Path:       c.Path,
		Secure:     c.Secure,
		HTTPOnly:   c.HTTPOnly,
		SameSite:   string(c.SameSite),
		ThirdParty: isThirdParty(c.Domain, targetHost),
	}
	if c.Expires > 0 {
		sec, frac := math.Modf(c.Expires)
		t := time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
		dc.Expires = &t
	}

	if info, ok := d.registry.Lookup(c.Name); ok {
		dc.Category = info.Category
		dc.Description = info.Description
		return dc
	}

	dc.Category = heuristicCookieCategory(c.Name)

	// A cross-domain cookie nobody can explain is overwhelmingly an
	// advertising or retargeting cookie in practice.
	if dc.Category == model.CategoryUnknown && dc.ThirdParty {
		dc.Category = model.CategoryMarketing
		dc.Description = "Unrecognized third-party cookie set by " + providerDisplayName(c.Domain)
	}
	return dc
}

// heuristicCookieCategory applies substring rules to cookie names the
// knowledge base does not cover.
func heuristicCookieCategory(name string) model.CookieCategory {
	lower := strings.ToLower(name)

	switch {
	case containsAny(lower, "session", "sess", "csrf", "xsrf", "auth", "login", "token"):
		return model.CategoryNecessary
	case containsAny(lower, "analytics", "track", "stat", "measure"):
		return model.CategoryAnalytics
	case containsAny(lower, "marketing", "pixel", "ads", "_ad", "ad_", "campaign", "banner_click"):
		return model.CategoryMarketing
	case containsAny(lower, "pref", "setting", "lang", "locale", "theme", "consent"):
		return model.CategoryFunctional
	}
	return model.CategoryUnknown
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isThirdParty reports whether a cookie domain belongs to a different
// registrable domain (eTLD+1) than the scanned host. A cookie on the
// target's parent or sibling subdomain is first-party.
func isThirdParty(cookieDomain, targetHost string) bool {
	if targetHost == "" {
		return false
	}
	cd := strings.TrimPrefix(strings.ToLower(cookieDomain), ".")
	th := strings.ToLower(targetHost)
	if cd == "" || cd == th {
		return false
	}

	cdSite, cdErr := publicsuffix.EffectiveTLDPlusOne(cd)
	thSite, thErr := publicsuffix.EffectiveTLDPlusOne(th)
	if cdErr != nil || thErr != nil {
		// Unlistable hosts (IP literals, single labels). Fall back to a
		// suffix comparison.
		return cd != th && !strings.HasSuffix(th, "."+cd) && !strings.HasSuffix(cd, "."+th)
	}
	return cdSite != thSite
}

// providerDisplayName derives a human-readable provider name from a
// cookie domain ("track.doubleclick.net" becomes "Doubleclick").
func providerDisplayName(domain string) string {
	d := strings.TrimPrefix(strings.ToLower(domain), ".")
	if site, err := publicsuffix.EffectiveTLDPlusOne(d); err == nil {
		d = site
	}
	label, _, _ := strings.Cut(d, ".")
	if label == "" {
		return domain
	}
	return cases.Title(language.English).String(label)
}
