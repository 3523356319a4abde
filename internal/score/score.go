package score

import (
	"math"

	"github.com/leroux1606/compliancekit/internal/model"
)

const (
	bucketMax = 20

	// presenceOnlyPoints is the half-credit bucket value for a policy or
	// banner that was found but whose quality could not be analyzed.
	presenceOnlyPoints = 10

	// pointsPerRightsFeature converts the detected rights-affordance
	// count into the user-rights bucket.
	pointsPerRightsFeature = 5

	// errorPenalty is deducted per error-severity finding.
	errorPenalty = 5

	// cleanSiteFloor is the minimum score for a site with no trackers and
	// no error findings. Sparse detection signal alone must not push a
	// clean site toward zero.
	cleanSiteFloor = 30
)

// Input carries the aggregated detector outputs the calculator consumes.
type Input struct {
	// PolicyFound indicates a privacy-policy link was detected.
	// PolicyScore is the 0-100 completeness score, nil when the policy
	// page was not analyzed.
	PolicyFound bool
	PolicyScore *int

	// BannerFound indicates a consent banner was detected. BannerScore
	// is the 0-100 quality score, nil when quality analysis did not run.
	BannerFound bool
	BannerScore *int

	// Cookies and Scripts are the full classified lists.
	Cookies []model.DetectedCookie
	Scripts []model.DetectedScript

	// Findings is the complete finding list, used for the penalty term.
	Findings []model.Finding

	// HasAccountFeatures and RightsDetected come from the user-rights
	// detector: whether the site appears to offer accounts, and how many
	// of the four rights affordances were found.
	HasAccountFeatures bool
	RightsDetected     int
}

// Calculate computes the score breakdown from the detector outputs.
func Calculate(in Input) model.ScoreBreakdown {
	b := model.ScoreBreakdown{
		PrivacyPolicy:        presenceBucket(in.PolicyFound, in.PolicyScore),
		CookieBanner:         presenceBucket(in.BannerFound, in.BannerScore),
		CookieCategorization: categorizationBucket(in.Cookies),
		TrackingDisclosure:   trackingBucket(in),
		UserRights:           rightsBucket(in),
	}

	for _, f := range in.Findings {
		if f.Severity == model.SeverityError {
			b.Penalty += errorPenalty
		}
	}

	total := b.PrivacyPolicy + b.CookieBanner + b.CookieCategorization +
		b.TrackingDisclosure + b.UserRights - b.Penalty
	if b.Penalty == 0 && trackingSignals(in) == 0 && total < cleanSiteFloor {
		total = cleanSiteFloor
	}
	b.Total = clamp(total, 0, 100)
	return b
}

// presenceBucket scales a 0-100 quality score into a 0-20 bucket.
// Presence without an analyzed quality score earns half credit.
func presenceBucket(found bool, quality *int) int {
	switch {
	case !found:
		return 0
	case quality == nil:
		return presenceOnlyPoints
	default:
		return clamp(int(math.Round(float64(*quality)*bucketMax/100)), 0, bucketMax)
	}
}

// categorizationBucket scores how much of the observed cookie population
// could be classified. A site with no cookies at all has nothing left
// unexplained and earns the full bucket.
func categorizationBucket(cookies []model.DetectedCookie) int {
	if len(cookies) == 0 {
		return bucketMax
	}
	classified := 0
	for _, c := range cookies {
		if c.Category != model.CategoryUnknown {
			classified++
		}
	}
	return int(math.Round(float64(classified) * bucketMax / float64(len(cookies))))
}

// trackingBucket scores tracker disclosure. No trackers means nothing to
// disclose; with trackers present, the banner and the policy each carry
// half the bucket, since together they are how tracking becomes lawful.
func trackingBucket(in Input) int {
	if trackingSignals(in) == 0 {
		return bucketMax
	}
	points := 0
	if in.BannerFound {
		points += bucketMax / 2
	}
	if in.PolicyFound {
		points += bucketMax / 2
	}
	return points
}

// rightsBucket scores the user-rights affordances. Sites without account
// features are out of the obligation's scope and score zero without being
// penalized elsewhere.
func rightsBucket(in Input) int {
	if !in.HasAccountFeatures {
		return 0
	}
	return clamp(in.RightsDetected*pointsPerRightsFeature, 0, bucketMax)
}

// trackingSignals counts tracking-category cookies and scripts.
func trackingSignals(in Input) int {
	n := 0
	for _, c := range in.Cookies {
		if c.Category == model.CategoryAnalytics || c.Category == model.CategoryMarketing {
			n++
		}
	}
	for _, s := range in.Scripts {
		if s.IsTracking() {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
