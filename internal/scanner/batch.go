package scanner

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/leroux1606/compliancekit/internal/config"
	"github.com/leroux1606/compliancekit/internal/model"
)

// BatchOptions bounds a multi-target scan run.
type BatchOptions struct {
	// Concurrency caps how many browser sessions run at once.
	// Zero means config.DefaultBatchSize.
	Concurrency int

	// ScansPerSecond throttles scan starts across all workers, so a
	// large batch does not hammer targets hosted on shared
	// infrastructure. Zero means config.DefaultScanRate.
	ScansPerSecond float64
}

func (o BatchOptions) normalize() BatchOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = config.DefaultBatchSize
	}
	if o.ScansPerSecond <= 0 {
		o.ScansPerSecond = config.DefaultScanRate
	}
	return o
}

// ScanBatch scans every request and returns the results in request
// order. Each target gets its own browser session; failures are captured
// per result, so one unreachable site never aborts the batch. A
// cancelled context stops launching new scans and marks the remaining
// targets as failed.
func (s *Scanner) ScanBatch(ctx context.Context, reqs []model.ScanRequest, opts BatchOptions) []*model.ScanResult {
	opts = opts.normalize()
	results := make([]*model.ScanResult, len(reqs))

	limiter := rate.NewLimiter(rate.Limit(opts.ScansPerSecond), 1)
	g := new(errgroup.Group)
	g.SetLimit(opts.Concurrency)

	s.logger.Info("batch scan started",
		"targets", len(reqs),
		"concurrency", opts.Concurrency,
		"rate", opts.ScansPerSecond,
	)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				result := model.NewScanResult(req.URL)
				result.Error = err.Error()
				results[i] = result
				return nil
			}
			results[i] = s.Scan(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
