package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leroux1606/compliancekit/internal/browser"
	"github.com/leroux1606/compliancekit/internal/config"
	"github.com/leroux1606/compliancekit/internal/detector"
	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
	"github.com/leroux1606/compliancekit/internal/score"
)

// Scanner runs compliance scans. It is safe for concurrent use; every
// scan gets its own browser session and derives everything from it.
type Scanner struct {
	logger     *slog.Logger
	newSession SessionFactory

	cookies    *detector.CookieDetector
	scripts    *detector.ScriptDetector
	policy     *detector.PolicyLinkDetector
	content    *detector.PolicyContentAnalyzer
	banner     *detector.BannerDetector
	consent    *detector.ConsentQualityAnalyzer
	rights     *detector.UserRightsDetector
	compliance *detector.ComplianceDetector
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) { s.logger = logger }
}

// WithSessionFactory overrides how browser sessions are launched.
// Intended for tests.
func WithSessionFactory(factory SessionFactory) Option {
	return func(s *Scanner) { s.newSession = factory }
}

// WithCookieRegistry substitutes the known-cookie registry.
func WithCookieRegistry(registry *knowledge.CookieRegistry) Option {
	return func(s *Scanner) {
		s.cookies = detector.NewCookieDetector(registry, s.logger)
	}
}

// WithTrackerRegistry substitutes the known-tracker registry.
func WithTrackerRegistry(registry *knowledge.TrackerRegistry) Option {
	return func(s *Scanner) {
		s.scripts = detector.NewScriptDetector(registry, s.logger)
	}
}

// NewScanner creates a Scanner with the default knowledge bases.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		logger:     slog.Default(),
		newSession: newBrowserSession,
	}
	// Apply the logger option first so detectors built by later options
	// and by the defaults below all share it.
	for _, opt := range opts {
		opt(s)
	}
	if s.cookies == nil {
		s.cookies = detector.NewCookieDetector(knowledge.NewCookieRegistry(), s.logger)
	}
	if s.scripts == nil {
		s.scripts = detector.NewScriptDetector(knowledge.NewTrackerRegistry(), s.logger)
	}
	s.policy = detector.NewPolicyLinkDetector(s.logger)
	s.content = detector.NewPolicyContentAnalyzer(s.logger)
	s.banner = detector.NewBannerDetector(s.logger)
	s.consent = detector.NewConsentQualityAnalyzer(s.logger)
	s.rights = detector.NewUserRightsDetector(s.logger)
	s.compliance = detector.NewComplianceDetector(s.logger)
	return s
}

// Scan audits one page and returns its result. It never returns an
// error: launch and navigation failures are captured in the result with
// Success set to false, and the browser session is torn down on every
// exit path.
func (s *Scanner) Scan(ctx context.Context, req model.ScanRequest) *model.ScanResult {
	result := model.NewScanResult(req.URL)
	defer func() {
		result.Elapsed = time.Since(result.ScannedAt)
	}()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.logger.Info("scan started", "url", req.URL, "timeout", timeout)

	session, err := s.newSession(ctx, browser.Options{
		UserAgent: req.UserAgent,
		Headers:   req.Headers,
		Logger:    s.logger,
	})
	if err != nil {
		return s.fail(result, err)
	}
	defer session.Close()

	page, err := session.Navigate(ctx, req.URL, req.WaitNetworkIdle)
	if err != nil {
		return s.fail(result, err)
	}

	// The read-only detectors share the landing-page snapshot and are
	// safe to run concurrently. They must all finish before anything
	// navigates the session.
	var (
		policyRes detector.PolicyLinkResult
		bannerRes detector.BannerResult
		rightsRes detector.UserRightsResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Cookies = s.cookies.Detect(gctx, page)
		return nil
	})
	g.Go(func() error {
		result.Scripts = s.scripts.Detect(gctx, page)
		return nil
	})
	g.Go(func() error {
		policyRes = s.policy.Detect(gctx, page)
		return nil
	})
	g.Go(func() error {
		bannerRes = s.banner.Detect(gctx, page)
		return nil
	})
	g.Go(func() error {
		rightsRes = s.rights.Detect(gctx, page)
		return nil
	})
	_ = g.Wait() // detectors degrade internally and never return errors

	result.PrivacyPolicyFound = policyRes.Found
	result.PrivacyPolicyURL = policyRes.URL
	result.CookieBannerFound = bannerRes.Found
	for _, findings := range [][]model.Finding{policyRes.Findings, bannerRes.Findings, rightsRes.Findings} {
		for _, f := range findings {
			result.AddFinding(f)
		}
	}
	s.addCrossCuttingFindings(result, bannerRes.Found)

	// The consent-quality analyzer and the regulation sweeps read the
	// landing page, so they run before the policy navigation discards it.
	var consentRes detector.ConsentQualityResult
	if bannerRes.Found {
		consentRes = s.consent.Analyze(ctx, page)
		if consentRes.Analyzed {
			bannerScore := consentRes.Score
			result.BannerScore = &bannerScore
		}
		for _, f := range consentRes.Findings {
			result.AddFinding(f)
		}
	}

	complianceRes := s.compliance.Detect(ctx, page)
	for _, f := range complianceRes.Findings {
		result.AddFinding(f)
	}

	// Single outward navigation. A failure here degrades to an
	// unanalyzed policy rather than failing the scan.
	if policyRes.Found {
		contentRes := s.analyzePolicy(ctx, session, page, policyRes.URL)
		if contentRes.Analyzed {
			policyScore := contentRes.Score
			result.PolicyScore = &policyScore
		}
		for _, f := range contentRes.Findings {
			result.AddFinding(f)
		}
	}

	result.Breakdown = score.Calculate(score.Input{
		PolicyFound:        result.PrivacyPolicyFound,
		PolicyScore:        result.PolicyScore,
		BannerFound:        result.CookieBannerFound,
		BannerScore:        result.BannerScore,
		Cookies:            result.Cookies,
		Scripts:            result.Scripts,
		Findings:           result.Findings,
		HasAccountFeatures: rightsRes.HasAccounts,
		RightsDetected:     rightsRes.DetectedCount(),
	})
	result.Score = result.Breakdown.Total
	result.Success = true

	s.logger.Info("scan complete",
		"url", req.URL,
		"score", result.Score,
		"findings", len(result.Findings),
	)
	return result
}

// analyzePolicy runs the content analyzer against the policy page,
// navigating there unless the link is a same-page anchor.
func (s *Scanner) analyzePolicy(ctx context.Context, session Session, landing detector.Page, policyURL string) detector.PolicyContentResult {
	target := landing
	if !detector.IsSamePageAnchor(policyURL, landing.URL()) {
		page, err := session.Navigate(ctx, policyURL, false)
		if err != nil {
			s.logger.Warn("policy page navigation failed", "url", policyURL, "error", err)
			return detector.PolicyContentResult{}
		}
		target = page
	}
	return s.content.Analyze(ctx, target)
}

// addCrossCuttingFindings derives the findings that need more than one
// detector's output.
func (s *Scanner) addCrossCuttingFindings(result *model.ScanResult, bannerFound bool) {
	if !bannerFound {
		thirdParty := 0
		for _, c := range result.Cookies {
			if c.ThirdParty {
				thirdParty++
			}
		}
		if thirdParty > 0 || result.TrackingCookieCount() > 0 {
			result.AddFinding(model.NewFinding(
				model.FindingThirdPartyCookie, model.SeverityError,
				"Tracking cookies set without consent banner",
				fmt.Sprintf("%d third-party and %d tracking cookies are set on page load with no consent banner present.",
					thirdParty, result.TrackingCookieCount()),
			))
		}
	}

	if names := distinctTrackerNames(result.Scripts); len(names) > 0 {
		result.AddFinding(model.NewFinding(
			model.FindingTrackingScript, model.SeverityInfo,
			"Tracking scripts detected",
			"Trackers loaded by the page: "+strings.Join(names, ", ")+".",
		))
	}
}

// distinctTrackerNames lists the tracking providers in first-seen order.
func distinctTrackerNames(scripts []model.DetectedScript) []string {
	seen := make(map[string]bool)
	var names []string
	for _, sc := range scripts {
		if !sc.IsTracking() {
			continue
		}
		name := sc.Name
		if name == "" {
			name = sc.URL
		}
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// fail finalizes a result for a terminal launch or navigation error.
func (s *Scanner) fail(result *model.ScanResult, err error) *model.ScanResult {
	result.Success = false
	result.Error = err.Error()
	s.logger.Error("scan failed", "url", result.URL, "error", err)
	return result
}
