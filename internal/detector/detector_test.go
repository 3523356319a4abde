package detector

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/chromedp/cdproto/network"
)

// fakePage satisfies Page for tests. Evaluate ignores the expression and
// round-trips the canned payload through JSON, the same way a real
// evaluation result arrives from the browser.
type fakePage struct {
	url     string
	payload any
	cookies []*network.Cookie
	err     error
}

func (p *fakePage) URL() string {
	if p.url == "" {
		return "https://example.com/"
	}
	return p.url
}

func (p *fakePage) Evaluate(_ context.Context, _ string, out any) error {
	if p.err != nil {
		return p.err
	}
	data, err := json.Marshal(p.payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (p *fakePage) Cookies(_ context.Context) ([]*network.Cookie, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.cookies, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
