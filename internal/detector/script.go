package detector

import (
	"context"
	"log/slog"

	"github.com/leroux1606/compliancekit/internal/knowledge"
	"github.com/leroux1606/compliancekit/internal/model"
)

// scriptExtractExpr enumerates script elements and tiny image elements in
// one pass. Inline content is truncated at extraction time so a page with
// megabytes of bundled JavaScript does not balloon the evaluation result.
const scriptExtractExpr = `(() => {
	const scripts = Array.from(document.querySelectorAll('script')).map(s => ({
		src: s.src || '',
		content: s.src ? '' : (s.textContent || '').slice(0, 4000),
	}));
	const pixels = Array.from(document.querySelectorAll('img'))
		.filter(i => i.width <= 3 && i.height <= 3 && i.src)
		.map(i => i.src);
	return {scripts, pixels};
})()`

type scriptExtract struct {
	Scripts []scriptEntry `json:"scripts"`
	Pixels  []string      `json:"pixels"`
}

type scriptEntry struct {
	Src     string `json:"src"`
	Content string `json:"content"`
}

// inlineSnippetLen bounds the inline content carried into the result.
const inlineSnippetLen = 200

// ScriptDetector enumerates script tags and tracking pixels and
// classifies them against the known-tracker signature tables.
type ScriptDetector struct {
	registry *knowledge.TrackerRegistry
	logger   *slog.Logger
}

// NewScriptDetector creates a script detector over the given registry.
func NewScriptDetector(registry *knowledge.TrackerRegistry, logger *slog.Logger) *ScriptDetector {
	return &ScriptDetector{registry: registry, logger: logger}
}

// Detect extracts and classifies the page's scripts and tracking pixels.
//
// External scripts that match no signature are still reported with
// category unknown. Inline scripts and pixels that match no signature are
// dropped entirely, trading recall for precision: an unmatched inline
// script is far more often an application bundle than a tracker.
func (d *ScriptDetector) Detect(ctx context.Context, page Page) []model.DetectedScript {
	var extract scriptExtract
	if err := page.Evaluate(ctx, scriptExtractExpr, &extract); err != nil {
		d.logger.Warn("script extraction failed", "url", page.URL(), "error", err)
		return nil
	}

	var detected []model.DetectedScript
	for _, s := range extract.Scripts {
		if s.Src != "" {
			detected = append(detected, d.classifyExternal(s.Src))
			continue
		}
		if ds, ok := d.classifyInline(s.Content); ok {
			detected = append(detected, ds)
		}
	}
	for _, px := range extract.Pixels {
		if ds, ok := d.classifyPixel(px); ok {
			detected = append(detected, ds)
		}
	}

	d.logger.Debug("scripts classified",
		"total", len(detected),
		"scripts", len(extract.Scripts),
		"pixels", len(extract.Pixels),
	)
	return detected
}

func (d *ScriptDetector) classifyExternal(src string) model.DetectedScript {
	ds := model.DetectedScript{
		URL:      src,
		Delivery: model.DeliveryExternal,
		Category: model.ScriptUnknown,
	}
	if sig, ok := d.registry.MatchURL(src); ok {
		ds.Category = sig.Category
		ds.Name = sig.Name
	}
	return ds
}

func (d *ScriptDetector) classifyInline(content string) (model.DetectedScript, bool) {
	sig, ok := d.registry.MatchInline(content)
	if !ok {
		return model.DetectedScript{}, false
	}
	snippet := content
	if len(snippet) > inlineSnippetLen {
		snippet = snippet[:inlineSnippetLen]
	}
	return model.DetectedScript{
		InlineSnippet: snippet,
		Delivery:      model.DeliveryInline,
		Category:      sig.Category,
		Name:          sig.Name,
	}, true
}

// classifyPixel classifies an image of 3x3 CSS pixels or smaller by the
// URL signature table. Unmatched pixels are dropped; tiny images are also
// spacers and lazy-loading placeholders.
func (d *ScriptDetector) classifyPixel(src string) (model.DetectedScript, bool) {
	sig, ok := d.registry.MatchURL(src)
	if !ok {
		return model.DetectedScript{}, false
	}
	return model.DetectedScript{
		URL:      src,
		Delivery: model.DeliveryExternal,
		Category: sig.Category,
		Name:     sig.Name,
	}, true
}
