package scanner

import (
	"context"

	"github.com/leroux1606/compliancekit/internal/browser"
	"github.com/leroux1606/compliancekit/internal/detector"
)

// Session is the browser capability the orchestrator consumes: one
// navigation at a time, each returning a fresh page handle that
// invalidates the previous one.
type Session interface {
	// Navigate loads a URL and returns the handle for the loaded page.
	Navigate(ctx context.Context, url string, waitNetworkIdle bool) (detector.Page, error)

	// Close force-terminates the underlying browser process.
	Close()
}

// SessionFactory launches a Session. The production factory starts a
// headless browser; tests substitute a synthetic one.
type SessionFactory func(ctx context.Context, opts browser.Options) (Session, error)

// browserSession adapts *browser.Session to the Session interface.
type browserSession struct {
	s *browser.Session
}

func (b browserSession) Navigate(ctx context.Context, url string, waitNetworkIdle bool) (detector.Page, error) {
	page, err := b.s.Navigate(ctx, url, waitNetworkIdle)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (b browserSession) Close() {
	b.s.Close()
}

// newBrowserSession is the production SessionFactory.
func newBrowserSession(ctx context.Context, opts browser.Options) (Session, error) {
	s, err := browser.NewSession(ctx, opts)
	if err != nil {
		return nil, err
	}
	return browserSession{s: s}, nil
}
