package videoembed

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/halostatue/mdex-video-embed/provider"
)

// transformer is the per-extension AST transformer. It carries no state of
// its own; all per-document state lives in the docFlags accumulator local
// to one Transform call.
type transformer struct {
	ext *Extension
}

// docFlags accumulates per-provider resource flags across one document.
// Providers are remembered in first-appearance order so that resource
// injection is a deterministic function of document order.
type docFlags struct {
	order []string
	flags map[string]provider.Flags
}

func newDocFlags() *docFlags {
	return &docFlags{flags: make(map[string]provider.Flags)}
}

// fold merges the flags of one rendered block into the accumulator using
// the provider's own merge function.
func (d *docFlags) fold(name string, p provider.Provider, incoming provider.Flags) {
	existing, ok := d.flags[name]
	if !ok {
		d.order = append(d.order, name)
		d.flags[name] = incoming
		return
	}
	d.flags[name] = p.MergeFlags(existing, incoming)
}

// Transform implements parser.ASTTransformer. It makes a single forward
// pass rewriting matching blocks and folding their flags, then injects the
// per-provider resource fragments at the top of the document. The first
// provider encountered ends up topmost.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var blocks []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok {
			blocks = append(blocks, fcb)
		}
		return ast.WalkContinue, nil
	})

	acc := newDocFlags()
	for _, fcb := range blocks {
		t.rewrite(fcb, source, acc)
	}

	var fragments []*HTMLFragment
	for _, name := range acc.order {
		p, _ := t.ext.registry.Lookup(name)
		html := p.DocumentHTML(acc.flags[name])
		if html == "" {
			continue
		}
		fragments = append(fragments, NewHTMLFragment(html))
	}
	for i := len(fragments) - 1; i >= 0; i-- {
		if first := doc.FirstChild(); first != nil {
			doc.InsertBefore(doc, first, fragments[i])
		} else {
			doc.AppendChild(doc, fragments[i])
		}
	}
}

// rewrite replaces one matching code block with its embed HTML and folds
// the returned flags into acc. Every failure (unknown provider, malformed
// marker, provider refusal) leaves the node untouched so it renders as
// ordinary code.
func (t *transformer) rewrite(fcb *ast.FencedCodeBlock, source []byte, acc *docFlags) {
	name, ok := sourceProvider(fcb, source)
	if !ok {
		return
	}

	p, ok := t.ext.registry.Lookup(name)
	if !ok {
		t.ext.logger.Debug("Leaving block untouched.", "provider", name, "reason", "no provider registered")
		return
	}

	html, flags, err := p.EmbedHTML(blockText(fcb, source), t.ext.configs[name])
	if err != nil {
		t.ext.logger.Debug("Leaving block untouched.", "provider", name, "reason", err)
		return
	}

	parent := fcb.Parent()
	if parent == nil {
		return
	}

	replacement := NewHTMLFragment(html)
	// Replacement keeps the node's position and any children it carried.
	for child := fcb.FirstChild(); child != nil; {
		next := child.NextSibling()
		replacement.AppendChild(replacement, child)
		child = next
	}
	parent.ReplaceChild(parent, fcb, replacement)

	acc.fold(name, p, flags)
}

// sourceProvider extracts the provider identifier from an info string of
// the shape "video source=<id>". The remainder after the fence tag is
// split on the first '=' only; anything that does not match the
// source=<id> shape reports no match.
func sourceProvider(fcb *ast.FencedCodeBlock, source []byte) (string, bool) {
	if fcb.Info == nil {
		return "", false
	}
	info := strings.TrimSpace(string(fcb.Info.Segment.Value(source)))

	tag, rest, found := strings.Cut(info, " ")
	if tag != FenceTag || !found {
		return "", false
	}
	key, value, ok := strings.Cut(strings.TrimSpace(rest), "=")
	if !ok || key != "source" || value == "" {
		return "", false
	}
	return value, true
}

// blockText concatenates the literal body lines of a fenced code block.
func blockText(fcb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
