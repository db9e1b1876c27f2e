package youtube

import (
	_ "embed"
	"strings"

	"github.com/halostatue/mdex-video-embed/provider"
)

// Static asset bodies, loaded once at process initialization and treated
// as immutable afterwards.
var (
	//go:embed assets/player.js
	playerJS string

	//go:embed assets/player.css
	playerCSS string
)

// DocumentHTML renders the document-level resource fragments: the player
// bootstrap script when any block asked for it, followed by the default
// stylesheet when any block asked for that. An empty result means nothing
// is injected.
func (p *Provider) DocumentHTML(merged provider.Flags) string {
	var b strings.Builder
	if merged.Script {
		b.WriteString("<script>\n")
		b.WriteString(playerJS)
		b.WriteString("</script>\n")
	}
	if merged.Style {
		b.WriteString("<style>\n")
		b.WriteString(playerCSS)
		b.WriteString("</style>\n")
	}
	return b.String()
}
