package knowledge

import (
	"strings"

	"github.com/leroux1606/compliancekit/internal/model"
)

// TrackerSignature identifies a known tracking script or pixel provider.
type TrackerSignature struct {
	// Substring is the fragment to look for in a script URL or, for
	// inline signatures, in the script's source text.
	Substring string

	// Name is the provider display name.
	Name string

	// Category is the consent category of scripts from this provider.
	Category model.ScriptCategory
}

// TrackerRegistry holds the known-tracker signature tables.
// URL signatures classify externally loaded scripts and tracking pixels;
// inline signatures classify embedded script content by SDK fingerprint.
type TrackerRegistry struct {
	urlSignatures    []TrackerSignature
	inlineSignatures []TrackerSignature
}

// NewTrackerRegistry creates a registry with the default signature tables.
func NewTrackerRegistry() *TrackerRegistry {
	return &TrackerRegistry{
		urlSignatures:    defaultURLSignatures(),
		inlineSignatures: defaultInlineSignatures(),
	}
}

// NewTrackerRegistryFrom creates a registry over the given tables.
// Intended for tests that need small synthetic tables.
func NewTrackerRegistryFrom(urls, inline []TrackerSignature) *TrackerRegistry {
	return &TrackerRegistry{
		urlSignatures:    append([]TrackerSignature(nil), urls...),
		inlineSignatures: append([]TrackerSignature(nil), inline...),
	}
}

// MatchURL classifies an external script or pixel URL by substring match.
// The first matching signature wins; table order goes from specific to
// generic so CDN-hosted variants resolve to the right provider.
func (r *TrackerRegistry) MatchURL(url string) (TrackerSignature, bool) {
	lower := strings.ToLower(url)
	for _, sig := range r.urlSignatures {
		if strings.Contains(lower, sig.Substring) {
			return sig, true
		}
	}
	return TrackerSignature{}, false
}

// MatchInline classifies inline script content by SDK fingerprint.
// Content that matches no fingerprint is not classifiable; callers drop it
// rather than report it, trading recall for precision.
func (r *TrackerRegistry) MatchInline(content string) (TrackerSignature, bool) {
	for _, sig := range r.inlineSignatures {
		if strings.Contains(content, sig.Substring) {
			return sig, true
		}
	}
	return TrackerSignature{}, false
}

// defaultURLSignatures returns the built-in URL signature table.
func defaultURLSignatures() []TrackerSignature {
	return []TrackerSignature{
		// Analytics
		{Substring: "google-analytics.com", Name: "Google Analytics", Category: model.ScriptAnalytics},
		{Substring: "googletagmanager.com/gtag", Name: "Google Analytics 4", Category: model.ScriptAnalytics},
		{Substring: "googletagmanager.com", Name: "Google Tag Manager", Category: model.ScriptFunctional},
		{Substring: "clarity.ms", Name: "Microsoft Clarity", Category: model.ScriptAnalytics},
		{Substring: "hotjar.com", Name: "Hotjar", Category: model.ScriptAnalytics},
		{Substring: "matomo", Name: "Matomo", Category: model.ScriptAnalytics},
		{Substring: "piwik", Name: "Matomo (Piwik)", Category: model.ScriptAnalytics},
		{Substring: "plausible.io", Name: "Plausible", Category: model.ScriptAnalytics},
		{Substring: "cdn.segment.com", Name: "Segment", Category: model.ScriptAnalytics},
		{Substring: "cdn.amplitude.com", Name: "Amplitude", Category: model.ScriptAnalytics},
		{Substring: "cdn.mxpnl.com", Name: "Mixpanel", Category: model.ScriptAnalytics},
		{Substring: "mc.yandex.ru", Name: "Yandex Metrica", Category: model.ScriptAnalytics},
		{Substring: "script.crazyegg.com", Name: "Crazy Egg", Category: model.ScriptAnalytics},
		{Substring: "fullstory.com", Name: "FullStory", Category: model.ScriptAnalytics},
		{Substring: "heapanalytics.com", Name: "Heap", Category: model.ScriptAnalytics},
		{Substring: "cloudflareinsights.com", Name: "Cloudflare Web Analytics", Category: model.ScriptAnalytics},

		// Marketing / advertising
		{Substring: "doubleclick.net", Name: "Google DoubleClick", Category: model.ScriptMarketing},
		{Substring: "googleadservices.com", Name: "Google Ads", Category: model.ScriptMarketing},
		{Substring: "googlesyndication.com", Name: "Google AdSense", Category: model.ScriptMarketing},
		{Substring: "connect.facebook.net", Name: "Meta Pixel", Category: model.ScriptMarketing},
		{Substring: "facebook.com/tr", Name: "Meta Pixel", Category: model.ScriptMarketing},
		{Substring: "ads-twitter.com", Name: "X Ads", Category: model.ScriptMarketing},
		{Substring: "static.ads-twitter.com", Name: "X Ads", Category: model.ScriptMarketing},
		{Substring: "snap.licdn.com", Name: "LinkedIn Insight Tag", Category: model.ScriptMarketing},
		{Substring: "analytics.tiktok.com", Name: "TikTok Pixel", Category: model.ScriptMarketing},
		{Substring: "ct.pinterest.com", Name: "Pinterest Tag", Category: model.ScriptMarketing},
		{Substring: "bat.bing.com", Name: "Microsoft Advertising", Category: model.ScriptMarketing},
		{Substring: "amazon-adsystem.com", Name: "Amazon Advertising", Category: model.ScriptMarketing},
		{Substring: "criteo", Name: "Criteo", Category: model.ScriptMarketing},
		{Substring: "taboola.com", Name: "Taboola", Category: model.ScriptMarketing},
		{Substring: "outbrain.com", Name: "Outbrain", Category: model.ScriptMarketing},
		{Substring: "hubspot.com", Name: "HubSpot", Category: model.ScriptMarketing},
		{Substring: "js.hs-scripts.com", Name: "HubSpot", Category: model.ScriptMarketing},

		// Social
		{Substring: "platform.twitter.com", Name: "X Widgets", Category: model.ScriptSocial},
		{Substring: "apis.google.com/js/platform", Name: "Google Social", Category: model.ScriptSocial},
		{Substring: "platform.linkedin.com", Name: "LinkedIn Widgets", Category: model.ScriptSocial},
		{Substring: "assets.pinterest.com", Name: "Pinterest Widgets", Category: model.ScriptSocial},
		{Substring: "instagram.com/embed", Name: "Instagram Embed", Category: model.ScriptSocial},

		// Functional
		{Substring: "widget.intercom.io", Name: "Intercom", Category: model.ScriptFunctional},
		{Substring: "js.driftt.com", Name: "Drift", Category: model.ScriptFunctional},
		{Substring: "embed.tawk.to", Name: "Tawk.to", Category: model.ScriptFunctional},
		{Substring: "static.zdassets.com", Name: "Zendesk", Category: model.ScriptFunctional},
		{Substring: "js.stripe.com", Name: "Stripe", Category: model.ScriptFunctional},
		{Substring: "maps.googleapis.com", Name: "Google Maps", Category: model.ScriptFunctional},
		{Substring: "recaptcha", Name: "reCAPTCHA", Category: model.ScriptFunctional},
	}
}

// defaultInlineSignatures returns the built-in inline SDK fingerprint table.
func defaultInlineSignatures() []TrackerSignature {
	return []TrackerSignature{
		{Substring: "gtag(", Name: "Google Analytics 4", Category: model.ScriptAnalytics},
		{Substring: "ga('create'", Name: "Google Analytics", Category: model.ScriptAnalytics},
		{Substring: "_gaq.push", Name: "Google Analytics (legacy)", Category: model.ScriptAnalytics},
		{Substring: "GoogleAnalyticsObject", Name: "Google Analytics", Category: model.ScriptAnalytics},
		{Substring: "dataLayer.push", Name: "Google Tag Manager", Category: model.ScriptFunctional},
		{Substring: "gtm.start", Name: "Google Tag Manager", Category: model.ScriptFunctional},
		{Substring: "fbq('init'", Name: "Meta Pixel", Category: model.ScriptMarketing},
		{Substring: "fbq(\"init\"", Name: "Meta Pixel", Category: model.ScriptMarketing},
		{Substring: "_paq.push", Name: "Matomo", Category: model.ScriptAnalytics},
		{Substring: "hjid:", Name: "Hotjar", Category: model.ScriptAnalytics},
		{Substring: "clarity(", Name: "Microsoft Clarity", Category: model.ScriptAnalytics},
		{Substring: "ym(", Name: "Yandex Metrica", Category: model.ScriptAnalytics},
		{Substring: "mixpanel.init", Name: "Mixpanel", Category: model.ScriptAnalytics},
		{Substring: "amplitude.getInstance", Name: "Amplitude", Category: model.ScriptAnalytics},
		{Substring: "analytics.load", Name: "Segment", Category: model.ScriptAnalytics},
		{Substring: "ttq.load", Name: "TikTok Pixel", Category: model.ScriptMarketing},
		{Substring: "pintrk(", Name: "Pinterest Tag", Category: model.ScriptMarketing},
		{Substring: "twq(", Name: "X Ads", Category: model.ScriptMarketing},
		{Substring: "_linkedin_partner_id", Name: "LinkedIn Insight Tag", Category: model.ScriptMarketing},
		{Substring: "intercomSettings", Name: "Intercom", Category: model.ScriptFunctional},
		{Substring: "drift.load", Name: "Drift", Category: model.ScriptFunctional},
	}
}
