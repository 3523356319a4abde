package model

// ScriptDelivery describes how a detected script is delivered to the page.
type ScriptDelivery string

const (
	// DeliveryExternal marks scripts loaded from a URL via the src attribute.
	DeliveryExternal ScriptDelivery = "external"

	// DeliveryInline marks scripts embedded directly in the document.
	DeliveryInline ScriptDelivery = "inline"
)

// ScriptCategory classifies a detected script or tracking pixel by purpose.
type ScriptCategory string

const (
	// ScriptAnalytics marks audience-measurement scripts.
	ScriptAnalytics ScriptCategory = "analytics"

	// ScriptMarketing marks advertising and retargeting scripts.
	ScriptMarketing ScriptCategory = "marketing"

	// ScriptFunctional marks scripts providing site functionality
	// (tag managers, chat widgets, embeds).
	ScriptFunctional ScriptCategory = "functional"

	// ScriptSocial marks social-network integration scripts.
	ScriptSocial ScriptCategory = "social"

	// ScriptUnknown marks scripts that matched no known signature.
	ScriptUnknown ScriptCategory = "unknown"
)

// DetectedScript is one script or tracking pixel observed during a scan.
// Exactly one of URL and InlineSnippet is set, depending on Delivery.
type DetectedScript struct {
	// URL is the external script (or pixel) source. Empty for inline scripts.
	URL string `json:"url,omitempty"`

	// InlineSnippet is the truncated content of an inline script.
	// Empty for external scripts.
	InlineSnippet string `json:"inline_snippet,omitempty"`

	// Delivery indicates whether the script is inline or external.
	Delivery ScriptDelivery `json:"delivery"`

	// Category is the assigned purpose classification.
	Category ScriptCategory `json:"category"`

	// Name is the optional display name of the provider (e.g. "Google Analytics").
	Name string `json:"name,omitempty"`
}

// IsTracking reports whether the script belongs to a category that tracks
// visitors. Functional and unknown scripts are not considered tracking.
func (s DetectedScript) IsTracking() bool {
	return s.Category == ScriptAnalytics || s.Category == ScriptMarketing || s.Category == ScriptSocial
}
