package model

import "time"

// CookieCategory classifies a cookie by its purpose.
type CookieCategory string

const (
	// CategoryNecessary marks cookies required for the site to function
	// (sessions, CSRF tokens, authentication). Exempt from consent.
	CategoryNecessary CookieCategory = "necessary"

	// CategoryAnalytics marks cookies used for audience measurement.
	CategoryAnalytics CookieCategory = "analytics"

	// CategoryMarketing marks cookies used for advertising and retargeting.
	CategoryMarketing CookieCategory = "marketing"

	// CategoryFunctional marks cookies storing user preferences.
	CategoryFunctional CookieCategory = "functional"

	// CategoryUnknown marks cookies the knowledge base and heuristics
	// could not classify.
	CategoryUnknown CookieCategory = "unknown"
)

// DetectedCookie is one cookie observed in the browser's jar during a scan.
// It is produced once per scan and never mutated afterward.
//
// Duplicates with the same name and domain are both retained because they
// may represent distinct paths; the detector preserves the browser's
// enumeration order without deduplication or sorting.
type DetectedCookie struct {
	// Name is the cookie name as set by the site.
	Name string `json:"name"`

	// Domain is the domain the cookie is scoped to.
	Domain string `json:"domain"`

	// Path is the path the cookie is scoped to.
	Path string `json:"path"`

	// Secure indicates the cookie is only sent over HTTPS.
	Secure bool `json:"secure"`

	// HTTPOnly indicates the cookie is inaccessible to page scripts.
	HTTPOnly bool `json:"http_only"`

	// SameSite is the cookie's SameSite policy (Strict, Lax, None, or empty).
	SameSite string `json:"same_site,omitempty"`

	// Expires is when the cookie expires. Nil for session cookies.
	Expires *time.Time `json:"expires,omitempty"`

	// ThirdParty is true when the cookie's domain is not the scanned host
	// or a parent/subdomain of it.
	ThirdParty bool `json:"third_party"`

	// Category is the assigned purpose classification.
	Category CookieCategory `json:"category"`

	// Description is optional human-readable text from the knowledge base.
	Description string `json:"description,omitempty"`
}
