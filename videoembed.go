// Package videoembed is a goldmark extension that turns annotated fenced
// code blocks into privacy-respecting video embeds.
//
// A block tagged `video source=<provider>` is rewritten in place to the
// provider's embed HTML, and the script/style resources the rewritten
// blocks need are injected once at the top of the document. Anything the
// pipeline cannot handle (an unknown provider, a malformed marker, an
// empty or invalid block body) is left untouched and renders as ordinary
// code; the only hard failure is an invalid attach-time configuration.
package videoembed

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/halostatue/mdex-video-embed/internal/mdrender"
	"github.com/halostatue/mdex-video-embed/provider"
	"github.com/halostatue/mdex-video-embed/provider/youtube"
)

// FenceTag is the reserved fence marker that opens an embed block, as in
// `video source=youtube`.
const FenceTag = "video"

// Config is the attach-time configuration for the extension.
type Config struct {
	// Providers maps source identifiers to raw provider options. Entries
	// for identifiers absent from the registry are silently skipped, so a
	// configuration written for a build with more providers keeps loading.
	Providers map[string]any

	// Registry resolves source identifiers to providers. Nil selects
	// DefaultRegistry().
	Registry *provider.Registry

	// Logger receives debug-level diagnostics for skipped blocks. Nil
	// selects slog.Default().
	Logger *slog.Logger
}

// DefaultRegistry builds the provider table compiled into this module:
// the youtube provider wired to the default markdown-fragment renderer.
func DefaultRegistry() *provider.Registry {
	r := provider.NewRegistry()
	r.Register("youtube", youtube.New(mdrender.New()))
	return r
}

// Extension implements goldmark.Extender. It is immutable once created;
// one Extension may serve concurrent conversions of distinct documents
// without coordination.
type Extension struct {
	registry *provider.Registry
	configs  map[string]any
	logger   *slog.Logger
}

// New validates the attach configuration and returns the extension.
//
// Validation happens exactly once, here: every recognized provider named
// in cfg.Providers has its options validated, and every registered
// provider without options gets its defaults from an empty option map. A
// validation failure fails the whole attach; no partially configured
// extension is ever returned.
func New(cfg Config) (*Extension, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make(map[string]any)
	for _, name := range names {
		p, ok := reg.Lookup(name)
		if !ok {
			logger.Debug("Skipping configuration entry for unknown provider.", "provider", name)
			continue
		}
		validated, err := p.Config(cfg.Providers[name])
		if err != nil {
			return nil, fmt.Errorf("invalid configuration for %s: %s", name, err)
		}
		configs[name] = validated
	}

	for _, name := range reg.Names() {
		if _, ok := configs[name]; ok {
			continue
		}
		p, _ := reg.Lookup(name)
		validated, err := p.Config(map[string]any{})
		if err != nil {
			return nil, fmt.Errorf("invalid configuration for %s: %s", name, err)
		}
		configs[name] = validated
	}

	return &Extension{registry: reg, configs: configs, logger: logger}, nil
}

// Extend implements goldmark.Extender, wiring the document transformer and
// the raw-fragment node renderer into md.
func (e *Extension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{ext: e}, 500),
	))
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&htmlFragmentRenderer{}, 500),
	))
}
