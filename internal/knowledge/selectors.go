package knowledge

// BannerSelectors returns the CSS selectors used by common consent
// management platforms and hand-rolled banners. The banner detector probes
// them in order and stops at the first visible match, so platform-specific
// selectors come before the generic ID/class patterns.
func BannerSelectors() []string {
	return []string{
		// OneTrust
		"#onetrust-banner-sdk",
		"#onetrust-consent-sdk",
		// Cookiebot
		"#CybotCookiebotDialog",
		"#cookiebanner",
		// Usercentrics
		"#usercentrics-root",
		"#uc-banner-modal",
		// Quantcast
		".qc-cmp2-container",
		"#qc-cmp2-ui",
		// TrustArc
		"#truste-consent-track",
		".truste_box_overlay",
		// Didomi
		"#didomi-host",
		".didomi-popup-container",
		// CookieYes
		".cky-consent-container",
		"#cookie-law-info-bar",
		// Complianz
		"#cmplz-cookiebanner-container",
		".cmplz-cookiebanner",
		// Borlabs
		"#BorlabsCookieBox",
		// Osano
		".osano-cm-dialog",
		// Termly
		"#termly-code-snippet-support",
		// Iubenda
		"#iubenda-cs-banner",
		// Klaro
		".klaro .cookie-notice",
		// CookieFirst
		"#cookiefirst-root",
		// tarteaucitron
		"#tarteaucitronRoot",
		// Orejime
		".orejime-Notice",
		// Generic IDs
		"#cookie-banner",
		"#cookie-consent",
		"#cookie-notice",
		"#cookie-popup",
		"#cookieConsent",
		"#gdpr-banner",
		"#gdpr-consent",
		// Generic classes
		".cookie-banner",
		".cookie-consent",
		".cookie-notice",
		".consent-banner",
		".gdpr-banner",
		// Attribute patterns
		"[aria-label*='cookie' i]",
		"[data-testid*='cookie-banner']",
		"[class*='cookieconsent']",
	}
}

// ConsentPlatformNames returns product names of consent management
// platforms. Finding one in the page source is treated as banner presence
// even when the banner element itself could not be located, since these
// platforms render their UI from scripts at unpredictable DOM positions.
func ConsentPlatformNames() []string {
	return []string{
		"OneTrust",
		"Cookiebot",
		"Usercentrics",
		"Quantcast Choice",
		"TrustArc",
		"Didomi",
		"CookieYes",
		"Complianz",
		"Borlabs Cookie",
		"Osano",
		"Termly",
		"iubenda",
		"Klaro",
		"CookieFirst",
		"tarteaucitron",
		"Cookie Information",
		"consentmanager",
	}
}
