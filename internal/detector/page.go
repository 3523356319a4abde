package detector

import (
	"context"

	"github.com/chromedp/cdproto/network"
)

// Page is the read-only capability a detector gets for one loaded page.
// It is satisfied by *browser.PageHandle in production and by synthetic
// pages in tests.
//
// Detectors never navigate; a Page always refers to the same document for
// the lifetime of the detector call.
type Page interface {
	// URL returns the page's final location, after redirects.
	URL() string

	// Evaluate runs a JavaScript expression on the page and unmarshals
	// its JSON result into out.
	Evaluate(ctx context.Context, expr string, out any) error

	// Cookies returns every cookie visible to the browser session.
	Cookies(ctx context.Context) ([]*network.Cookie, error)
}
