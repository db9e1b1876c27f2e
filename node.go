package videoembed

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// KindHTMLFragment identifies the raw HTML nodes produced by the pipeline.
var KindHTMLFragment = ast.NewNodeKind("VideoEmbedHTMLFragment")

// HTMLFragment is a block node carrying pre-rendered HTML that is written
// to the output verbatim. The pipeline uses it both for in-place block
// replacements and for document-level resource fragments.
type HTMLFragment struct {
	ast.BaseBlock
	HTML []byte
}

// NewHTMLFragment creates an HTMLFragment holding the given HTML.
func NewHTMLFragment(html string) *HTMLFragment {
	return &HTMLFragment{HTML: []byte(html)}
}

// Kind implements ast.Node.
func (n *HTMLFragment) Kind() ast.NodeKind {
	return KindHTMLFragment
}

// Dump implements ast.Node.
func (n *HTMLFragment) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"HTML": string(n.HTML)}, nil)
}

// IsRaw implements ast.Node: the carried HTML is never re-parsed.
func (n *HTMLFragment) IsRaw() bool {
	return true
}

// htmlFragmentRenderer renders HTMLFragment nodes.
type htmlFragmentRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *htmlFragmentRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindHTMLFragment, r.render)
}

func (r *htmlFragmentRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*HTMLFragment)
		_, _ = w.Write(n.HTML)
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}
