package knowledge

import (
	"strings"

	"github.com/leroux1606/compliancekit/internal/model"
)

// CookieInfo describes a known cookie: who sets it, what it does, and
// which consent category it falls into.
type CookieInfo struct {
	// Provider is the service that sets the cookie.
	Provider string

	// Category is the consent category the cookie belongs to.
	Category model.CookieCategory

	// Description is human-readable text explaining the cookie's purpose.
	Description string
}

// CookieRegistry maps cookie names to their known classification.
//
// Lookup resolution follows the order the cookie detector relies on:
// exact name match first, then the name's prefix before the first
// underscore (so "_ga_1XKQW2M" resolves through "_ga").
type CookieRegistry struct {
	entries map[string]CookieInfo
}

// NewCookieRegistry creates a registry preloaded with the default
// known-cookie table.
func NewCookieRegistry() *CookieRegistry {
	return &CookieRegistry{entries: defaultCookieEntries()}
}

// NewCookieRegistryFrom creates a registry over the given entries.
// Intended for tests that need a small synthetic table.
func NewCookieRegistryFrom(entries map[string]CookieInfo) *CookieRegistry {
	copied := make(map[string]CookieInfo, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &CookieRegistry{entries: copied}
}

// Lookup resolves a cookie name to its known classification.
// It tries an exact match, then the prefix before the first underscore.
// Names that start with an underscore keep the leading underscore in the
// prefix ("_ga_1XKQW2M" -> "_ga"), since analytics cookies conventionally
// start with one.
func (r *CookieRegistry) Lookup(name string) (CookieInfo, bool) {
	if info, ok := r.entries[name]; ok {
		return info, true
	}

	prefix := cookiePrefix(name)
	if prefix == "" || prefix == name {
		return CookieInfo{}, false
	}
	info, ok := r.entries[prefix]
	return info, ok
}

// Len returns the number of known cookie entries.
func (r *CookieRegistry) Len() int {
	return len(r.entries)
}

// cookiePrefix returns the name's prefix before the first underscore.
// A leading underscore is treated as part of the prefix, not a separator.
func cookiePrefix(name string) string {
	start := 0
	if strings.HasPrefix(name, "_") {
		start = 1
	}
	idx := strings.Index(name[start:], "_")
	if idx < 0 {
		return name
	}
	return name[:start+idx]
}

// defaultCookieEntries returns the built-in known-cookie table.
// Sources: consent-platform documentation and the public Open Cookie Database.
func defaultCookieEntries() map[string]CookieInfo {
	return map[string]CookieInfo{
		// Google Analytics
		"_ga": {
			Provider:    "Google Analytics",
			Category:    model.CategoryAnalytics,
			Description: "Distinguishes unique visitors for audience measurement.",
		},
		"_gid": {
			Provider:    "Google Analytics",
			Category:    model.CategoryAnalytics,
			Description: "Distinguishes visitors over a 24-hour window.",
		},
		"_gat": {
			Provider:    "Google Analytics",
			Category:    model.CategoryAnalytics,
			Description: "Throttles the request rate to Google Analytics.",
		},
		"__utma": {
			Provider:    "Google Analytics (legacy)",
			Category:    model.CategoryAnalytics,
			Description: "Legacy Urchin visitor cookie.",
		},
		"__utmz": {
			Provider:    "Google Analytics (legacy)",
			Category:    model.CategoryAnalytics,
			Description: "Legacy Urchin traffic-source cookie.",
		},

		// Google advertising
		"_gcl_au": {
			Provider:    "Google Ads",
			Category:    model.CategoryMarketing,
			Description: "Stores ad-click information for conversion measurement.",
		},
		"IDE": {
			Provider:    "Google DoubleClick",
			Category:    model.CategoryMarketing,
			Description: "Profiles visitor interests to serve targeted ads.",
		},
		"NID": {
			Provider:    "Google",
			Category:    model.CategoryMarketing,
			Description: "Stores preferences and ad personalization data.",
		},
		"1P_JAR": {
			Provider:    "Google",
			Category:    model.CategoryMarketing,
			Description: "Collects site statistics and tracks conversion rates.",
		},

		// Meta
		"_fbp": {
			Provider:    "Meta Pixel",
			Category:    model.CategoryMarketing,
			Description: "Identifies browsers for ad delivery and measurement.",
		},
		"_fbc": {
			Provider:    "Meta Pixel",
			Category:    model.CategoryMarketing,
			Description: "Stores the last Facebook ad click.",
		},
		"fr": {
			Provider:    "Facebook",
			Category:    model.CategoryMarketing,
			Description: "Delivers and measures Facebook advertising.",
		},

		// Microsoft
		"MUID": {
			Provider:    "Microsoft",
			Category:    model.CategoryMarketing,
			Description: "Identifies unique browsers across Microsoft sites for advertising.",
		},
		"_clck": {
			Provider:    "Microsoft Clarity",
			Category:    model.CategoryAnalytics,
			Description: "Persists the Clarity user ID across pages.",
		},
		"_clsk": {
			Provider:    "Microsoft Clarity",
			Category:    model.CategoryAnalytics,
			Description: "Connects page views into a single session recording.",
		},

		// Other analytics
		"_hjSessionUser": {
			Provider:    "Hotjar",
			Category:    model.CategoryAnalytics,
			Description: "Persists the Hotjar user ID.",
		},
		"_hjSession": {
			Provider:    "Hotjar",
			Category:    model.CategoryAnalytics,
			Description: "Holds current Hotjar session data.",
		},
		"_pk": {
			Provider:    "Matomo",
			Category:    model.CategoryAnalytics,
			Description: "Stores Matomo visitor and session state.",
		},
		"ajs_anonymous_id": {
			Provider:    "Segment",
			Category:    model.CategoryAnalytics,
			Description: "Stores an anonymous visitor ID for event tracking.",
		},
		"amplitude_id": {
			Provider:    "Amplitude",
			Category:    model.CategoryAnalytics,
			Description: "Stores the Amplitude device ID for product analytics.",
		},
		"mp": {
			Provider:    "Mixpanel",
			Category:    model.CategoryAnalytics,
			Description: "Stores Mixpanel visitor state for event tracking.",
		},
		"_yandex_metrica": {
			Provider:    "Yandex Metrica",
			Category:    model.CategoryAnalytics,
			Description: "Identifies visitors for Yandex audience measurement.",
		},
		"_ym_uid": {
			Provider:    "Yandex Metrica",
			Category:    model.CategoryAnalytics,
			Description: "Stores the Yandex Metrica user ID.",
		},

		// Session / security
		"PHPSESSID": {
			Provider:    "PHP",
			Category:    model.CategoryNecessary,
			Description: "Standard PHP session identifier.",
		},
		"JSESSIONID": {
			Provider:    "Java servlet containers",
			Category:    model.CategoryNecessary,
			Description: "Standard Java session identifier.",
		},
		"ASP.NET_SessionId": {
			Provider:    "ASP.NET",
			Category:    model.CategoryNecessary,
			Description: "Standard ASP.NET session identifier.",
		},
		"csrftoken": {
			Provider:    "Django",
			Category:    model.CategoryNecessary,
			Description: "Protects forms against cross-site request forgery.",
		},
		"XSRF-TOKEN": {
			Provider:    "Angular / Laravel",
			Category:    model.CategoryNecessary,
			Description: "Protects requests against cross-site request forgery.",
		},
		"__cf_bm": {
			Provider:    "Cloudflare",
			Category:    model.CategoryNecessary,
			Description: "Distinguishes humans from bots for site protection.",
		},
		"cf_clearance": {
			Provider:    "Cloudflare",
			Category:    model.CategoryNecessary,
			Description: "Stores proof of a passed Cloudflare challenge.",
		},
		"AWSALB": {
			Provider:    "AWS Elastic Load Balancing",
			Category:    model.CategoryNecessary,
			Description: "Routes the session to the same backend target.",
		},

		// Consent platforms (proof of consent is itself necessary)
		"OptanonConsent": {
			Provider:    "OneTrust",
			Category:    model.CategoryNecessary,
			Description: "Stores the visitor's consent choices.",
		},
		"CookieConsent": {
			Provider:    "Cookiebot",
			Category:    model.CategoryNecessary,
			Description: "Stores the visitor's consent choices.",
		},
		"cookieyes-consent": {
			Provider:    "CookieYes",
			Category:    model.CategoryNecessary,
			Description: "Stores the visitor's consent choices.",
		},
		"euconsent-v2": {
			Provider:    "IAB TCF",
			Category:    model.CategoryNecessary,
			Description: "Stores the IAB Transparency and Consent Framework string.",
		},

		// Functional
		"wp-settings": {
			Provider:    "WordPress",
			Category:    model.CategoryFunctional,
			Description: "Persists WordPress interface preferences.",
		},
		"wordpress_logged_in": {
			Provider:    "WordPress",
			Category:    model.CategoryNecessary,
			Description: "Keeps WordPress users logged in.",
		},
		"_icl_current_language": {
			Provider:    "WPML",
			Category:    model.CategoryFunctional,
			Description: "Remembers the selected site language.",
		},
		"sb": {
			Provider:    "Facebook",
			Category:    model.CategoryMarketing,
			Description: "Identifies browsers for Facebook features and ads.",
		},
		"datr": {
			Provider:    "Facebook",
			Category:    model.CategoryMarketing,
			Description: "Identifies browsers for security and ad delivery.",
		},
		"personalization_id": {
			Provider:    "X (Twitter)",
			Category:    model.CategoryMarketing,
			Description: "Personalizes content and ads across X integrations.",
		},
		"li_gc": {
			Provider:    "LinkedIn",
			Category:    model.CategoryNecessary,
			Description: "Stores consent for LinkedIn non-essential cookies.",
		},
		"bcookie": {
			Provider:    "LinkedIn",
			Category:    model.CategoryMarketing,
			Description: "Identifies browsers for LinkedIn ads and analytics.",
		},
		"YSC": {
			Provider:    "YouTube",
			Category:    model.CategoryMarketing,
			Description: "Tracks views of embedded YouTube videos.",
		},
		"VISITOR_INFO1_LIVE": {
			Provider:    "YouTube",
			Category:    model.CategoryMarketing,
			Description: "Estimates bandwidth and tracks embedded video views.",
		},
		"_pin_unauth": {
			Provider:    "Pinterest",
			Category:    model.CategoryMarketing,
			Description: "Groups actions for Pinterest ad conversion tracking.",
		},
		"_ttp": {
			Provider:    "TikTok",
			Category:    model.CategoryMarketing,
			Description: "Measures and improves TikTok ad performance.",
		},
		"hubspotutk": {
			Provider:    "HubSpot",
			Category:    model.CategoryMarketing,
			Description: "Tracks visitor identity for HubSpot form submissions.",
		},
		"__hssc": {
			Provider:    "HubSpot",
			Category:    model.CategoryAnalytics,
			Description: "Tracks HubSpot session state.",
		},
		"intercom-session": {
			Provider:    "Intercom",
			Category:    model.CategoryFunctional,
			Description: "Keeps the Intercom messenger conversation available.",
		},
	}
}
