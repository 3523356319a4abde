package model

import "time"

// ScanRequest describes one scan of a single page.
// It is constructed once per scan and not modified afterward.
type ScanRequest struct {
	// URL is the target page to audit.
	URL string `json:"url"`

	// Timeout bounds the whole scan, navigation included.
	// Zero means use the configured default.
	Timeout time.Duration `json:"timeout,omitempty"`

	// UserAgent overrides the browser's user-agent string when non-empty.
	UserAgent string `json:"user_agent,omitempty"`

	// WaitNetworkIdle makes navigation wait for network quiescence instead
	// of basic DOM readiness. Slower but catches late-injected banners.
	WaitNetworkIdle bool `json:"wait_network_idle,omitempty"`

	// Headers are extra HTTP headers to send with every request, typically
	// from a per-site override in the configuration file.
	Headers map[string]string `json:"headers,omitempty"`
}

// ScoreBreakdown contains the five compliance sub-scores, each 0-20,
// plus the penalty applied for error findings and the floor-adjusted total.
type ScoreBreakdown struct {
	// PrivacyPolicy reflects policy presence and content completeness.
	PrivacyPolicy int `json:"privacy_policy"`

	// CookieBanner reflects banner presence and consent quality.
	CookieBanner int `json:"cookie_banner"`

	// CookieCategorization reflects how many observed cookies could be
	// classified into a known purpose category.
	CookieCategorization int `json:"cookie_categorization"`

	// TrackingDisclosure reflects whether detected trackers are paired
	// with consent and disclosure mechanisms.
	TrackingDisclosure int `json:"tracking_disclosure"`

	// UserRights reflects the presence of user-rights affordances on
	// sites that have user accounts.
	UserRights int `json:"user_rights"`

	// Penalty is 5 points per error-severity finding.
	Penalty int `json:"penalty"`

	// Total is the floor-adjusted final score, clamped to 0-100.
	Total int `json:"total"`
}

// ScanResult is the sole artifact a scan produces. It is handed to the
// external record store as a whole: either the full result or a failure
// record exists, never a partial one.
type ScanResult struct {
	// Success is false when navigation or the browser session failed.
	Success bool `json:"success"`

	// URL echoes the requested target.
	URL string `json:"url"`

	// Cookies lists every cookie observed, in browser enumeration order.
	Cookies []DetectedCookie `json:"cookies,omitempty"`

	// Scripts lists every classified script and tracking pixel.
	Scripts []DetectedScript `json:"scripts,omitempty"`

	// Findings is the append-only list of compliance findings, in
	// detection order.
	Findings []Finding `json:"findings,omitempty"`

	// PrivacyPolicyFound is true when a policy link was detected.
	PrivacyPolicyFound bool `json:"privacy_policy_found"`

	// PrivacyPolicyURL is the detected policy link target, if any.
	PrivacyPolicyURL string `json:"privacy_policy_url,omitempty"`

	// PolicyScore is the 0-100 policy content completeness score.
	// Nil when the policy page was not analyzed.
	PolicyScore *int `json:"policy_score,omitempty"`

	// CookieBannerFound is true when a consent banner was detected.
	CookieBannerFound bool `json:"cookie_banner_found"`

	// BannerScore is the 0-100 consent quality score.
	// Nil when no banner was found or quality analysis failed.
	BannerScore *int `json:"banner_score,omitempty"`

	// Breakdown contains the per-area sub-scores behind Score.
	Breakdown ScoreBreakdown `json:"breakdown"`

	// Score is the final 0-100 compliance score. Zero for failed scans.
	Score int `json:"score"`

	// Error is the failure message for unsuccessful scans.
	Error string `json:"error,omitempty"`

	// ScannedAt is when the scan started.
	ScannedAt time.Time `json:"scanned_at"`

	// Elapsed is the total scan duration, populated on every exit path.
	Elapsed time.Duration `json:"elapsed"`
}

// NewScanResult creates a result shell for the given target URL with the
// scan start time set.
func NewScanResult(url string) *ScanResult {
	return &ScanResult{
		URL:       url,
		ScannedAt: time.Now(),
	}
}

// AddFinding appends a finding to the result.
func (r *ScanResult) AddFinding(f Finding) {
	r.Findings = append(r.Findings, f)
}

// ErrorFindingCount returns the number of error-severity findings.
func (r *ScanResult) ErrorFindingCount() int {
	var n int
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// TrackingScriptCount returns the number of tracking-category scripts.
func (r *ScanResult) TrackingScriptCount() int {
	var n int
	for _, s := range r.Scripts {
		if s.IsTracking() {
			n++
		}
	}
	return n
}

// TrackingCookieCount returns the number of analytics or marketing cookies.
func (r *ScanResult) TrackingCookieCount() int {
	var n int
	for _, c := range r.Cookies {
		if c.Category == CategoryAnalytics || c.Category == CategoryMarketing {
			n++
		}
	}
	return n
}
