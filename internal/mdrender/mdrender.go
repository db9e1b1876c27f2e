// Package mdrender provides the default markdown-fragment renderer used by
// providers for consent messages and button text.
//
// Fragments are rendered by a dedicated goldmark instance and then passed
// through bluemonday's UGC policy, so links and emphasis survive while
// script and event-handler constructs do not.
package mdrender

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer converts inline markdown fragments to sanitized HTML. It is
// safe for concurrent use.
type Renderer struct {
	mu     sync.Mutex
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with a default goldmark instance and the UGC
// sanitization policy.
func New() *Renderer {
	return &Renderer{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

// RenderInlineFragment renders a markdown fragment to HTML. The single
// paragraph wrapper goldmark adds around inline content is unwrapped so the
// result can be placed inside buttons and spans.
func (r *Renderer) RenderInlineFragment(markdown string) (string, error) {
	var buf bytes.Buffer
	r.mu.Lock()
	err := r.md.Convert([]byte(markdown), &buf)
	r.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("rendering markdown fragment: %w", err)
	}

	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}

	return r.policy.Sanitize(out), nil
}
