package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"

	"github.com/leroux1606/compliancekit/internal/config"
)

// Options configures a browser Session.
type Options struct {
	// UserAgent is the user-agent string the browser reports.
	// Empty means config.DefaultUserAgent.
	UserAgent string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// SettleDelay is the pause after DOM readiness before Navigate
	// returns, giving deferred scripts time to inject banners.
	// Zero means config.DefaultSettleDelay.
	SettleDelay time.Duration

	// NetworkIdleDelay is added to SettleDelay when a navigation asks to
	// wait for network quiescence. Zero means config.DefaultNetworkIdleDelay.
	NetworkIdleDelay time.Duration

	// ViewportWidth and ViewportHeight size the emulated viewport.
	// Zero means the config defaults.
	ViewportWidth  int64
	ViewportHeight int64

	// Logger receives session lifecycle events. Nil means slog.Default().
	Logger *slog.Logger
}

// normalize fills zero values with defaults.
func (o Options) normalize() Options {
	if o.UserAgent == "" {
		o.UserAgent = config.DefaultUserAgent
	}
	if o.SettleDelay == 0 {
		o.SettleDelay = config.DefaultSettleDelay
	}
	if o.NetworkIdleDelay == 0 {
		o.NetworkIdleDelay = config.DefaultNetworkIdleDelay
	}
	if o.ViewportWidth == 0 {
		o.ViewportWidth = config.DefaultViewportWidth
	}
	if o.ViewportHeight == 0 {
		o.ViewportHeight = config.DefaultViewportHeight
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Session is one isolated headless browser process.
// It is not safe to share a Session between scans; create one per scan
// and Close it when the scan ends, success or failure.
type Session struct {
	browserCtx    context.Context
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
	opts          Options
	logger        *slog.Logger
}

// NewSession launches a sandboxed headless browser.
// The parent context bounds the whole session: when it is cancelled or
// times out, every in-flight browser command fails and the process is
// torn down.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	opts = opts.normalize()

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.Headless,
		chromedp.UserAgent(opts.UserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		browserCtx:    browserCtx,
		allocCancel:   allocCancel,
		browserCancel: browserCancel,
		opts:          opts,
		logger:        opts.Logger,
	}

	// Launch eagerly so a missing Chrome binary fails here rather than
	// surfacing as a confusing navigation error later.
	startup := chromedp.Tasks{
		chromedp.EmulateViewport(opts.ViewportWidth, opts.ViewportHeight),
	}
	if len(opts.Headers) > 0 {
		headers := make(network.Headers, len(opts.Headers))
		for k, v := range opts.Headers {
			headers[k] = v
		}
		startup = append(startup, network.Enable(), network.SetExtraHTTPHeaders(headers))
	}

	if err := chromedp.Run(browserCtx, startup); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	s.logger.Debug("browser session started",
		"viewport_width", opts.ViewportWidth,
		"viewport_height", opts.ViewportHeight,
	)

	return s, nil
}

// Close force-terminates the browser process. Safe to call multiple times.
func (s *Session) Close() {
	s.browserCancel()
	s.allocCancel()
}

// Navigate loads the given URL and returns a handle for the page that
// ended up loaded (after redirects). The previous handle, if any, is
// invalid from this point on.
func (s *Session) Navigate(ctx context.Context, url string, waitNetworkIdle bool) (*PageHandle, error) {
	settle := s.opts.SettleDelay
	if waitNetworkIdle {
		settle += s.opts.NetworkIdleDelay
	}

	var location string
	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
		chromedp.Location(&location),
	}

	if err := s.run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, url, err)
	}

	s.logger.Debug("navigated", "requested_url", url, "location", location)

	return &PageHandle{session: s, url: location}, nil
}

// run executes browser actions on the session while honoring the caller's
// context. chromedp actions must run on the session's context chain, so
// the caller's deadline and cancellation are bridged onto a derived
// context.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.browserCtx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(runCtx, deadline)
		defer cancel()
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		}
	}()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		// Report the caller's cancellation cause when it was the trigger.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// PageHandle is a read-only capability for one loaded page.
// Handles are invalidated by the next Session.Navigate call.
type PageHandle struct {
	session *Session
	url     string
}

// URL returns the page's final location, after redirects.
func (p *PageHandle) URL() string {
	return p.url
}

// Evaluate runs a JavaScript expression on the page and unmarshals its
// JSON result into out.
func (p *PageHandle) Evaluate(ctx context.Context, expr string, out any) error {
	return p.session.run(ctx, chromedp.Evaluate(expr, out))
}

// Cookies returns every cookie visible to the browser session, in the
// browser's enumeration order.
func (p *PageHandle) Cookies(ctx context.Context) ([]*network.Cookie, error) {
	var cookies []*network.Cookie
	err := p.session.run(ctx, chromedp.ActionFunc(func(cdpCtx context.Context) error {
		var err error
		cookies, err = storage.GetCookies().Do(cdpCtx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return cookies, nil
}
