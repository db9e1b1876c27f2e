package youtube

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"text/template"

	"github.com/halostatue/mdex-video-embed/provider"
)

// Embed hosts. The nocookie host keeps the direct iframe mode from setting
// tracking cookies before playback.
const (
	embedBaseURL = "https://www.youtube-nocookie.com/embed/"
	thumbBaseURL = "https://i.ytimg.com/vi/"
)

// iframeAllow is the fixed capability list for the embedlite iframe.
// Sensor capabilities (accelerometer, gyroscope, magnetometer) are
// deliberately absent and must stay so.
const iframeAllow = "clipboard-write; encrypted-media; picture-in-picture; web-share"

// Block parameters consumed structurally rather than passed through to the
// player query string.
var structuralParams = map[string]bool{
	"title":             true,
	"button-text":       true,
	"button-aria-label": true,
	"autoplay":          true,
	"mode":              true,
}

// titlePlaceholder matches {{title}} with optional whitespace inside the
// braces.
var titlePlaceholder = regexp.MustCompile(`\{\{\s*title\s*\}\}`)

var localTmpl = template.Must(template.New("local").Parse(
	`<div class="video-embed video-embed-youtube" data-video-embed-id="{{.ID}}"` +
		`{{if .Params}} data-video-embed-params="{{.Params}}"{{end}}` +
		`{{if .Autoplay}} data-video-embed-allow="true"{{end}}>
{{if .Consent}}<div class="video-embed-consent">{{.Consent}}</div>
{{end}}<button type="button" class="video-embed-play" aria-label="{{.AriaLabel}}">{{.Button}}</button>
<img class="video-embed-thumbnail" src="{{.ThumbBase}}/hqdefault.jpg" srcset="{{.ThumbBase}}/mqdefault.jpg 320w, {{.ThumbBase}}/hqdefault.jpg 480w, {{.ThumbBase}}/sddefault.jpg 640w, {{.ThumbBase}}/maxresdefault.jpg 1280w" alt="{{.Alt}}" loading="lazy">
</div>`))

var embedLiteTmpl = template.Must(template.New("embedlite").Parse(
	`<iframe class="video-embed-frame" src="{{.Src}}" title="{{.Title}}" allow="{{.Allow}}" allowfullscreen loading="lazy"></iframe>`))

// EmbedHTML renders one block body. Any malformed input (empty body,
// invalid per-block mode) is an error result; the pipeline then leaves the
// block as ordinary code.
func (p *Provider) EmbedHTML(content string, config any) (string, provider.Flags, error) {
	cfg, ok := config.(Config)
	if !ok {
		return "", provider.Flags{}, fmt.Errorf("config is %T, want youtube.Config", config)
	}

	id, params, err := provider.ParseBlock(content)
	if err != nil {
		return "", provider.Flags{}, err
	}

	mode := cfg.Mode
	if blockMode, ok := params.Get("mode"); ok {
		if blockMode != ModeLocal && blockMode != ModeEmbedLite {
			return "", provider.Flags{}, fmt.Errorf("invalid mode %q: must be %q or %q", blockMode, ModeLocal, ModeEmbedLite)
		}
		mode = blockMode
	}

	title := defaultTitle
	if t, ok := params.Get("title"); ok && strings.TrimSpace(t) != "" {
		title = strings.TrimSpace(t)
	}

	autoplay := false
	if v, ok := params.Get("autoplay"); ok && v == "true" {
		autoplay = true
	}

	query := buildQuery(params)

	if mode == ModeEmbedLite {
		return p.renderEmbedLite(id, title, query, autoplay, cfg)
	}
	return p.renderLocal(id, title, query, autoplay, params, cfg)
}

// renderLocal emits the consent-gated placeholder: no request leaves the
// page until the visitor clicks play.
func (p *Provider) renderLocal(id, title, query string, autoplay bool, params *provider.Params, cfg Config) (string, provider.Flags, error) {
	buttonText := cfg.ButtonText
	if v, ok := params.Get("button-text"); ok {
		buttonText = v
	}
	ariaLabel := cfg.ButtonAriaLabel
	if v, ok := params.Get("button-aria-label"); ok {
		ariaLabel = v
	}

	button, err := p.fragments.RenderInlineFragment(expandTitle(buttonText, title))
	if err != nil {
		return "", provider.Flags{}, fmt.Errorf("rendering button text: %w", err)
	}

	consent := ""
	if cfg.ConsentMessage != "" {
		consent, err = p.fragments.RenderInlineFragment(expandTitle(cfg.ConsentMessage, title))
		if err != nil {
			return "", provider.Flags{}, fmt.Errorf("rendering consent message: %w", err)
		}
	}

	var b strings.Builder
	err = localTmpl.Execute(&b, struct {
		ID        string
		Params    string
		Autoplay  bool
		Consent   string
		Button    string
		AriaLabel string
		Alt       string
		ThumbBase string
	}{
		ID:        html.EscapeString(id),
		Params:    html.EscapeString(query),
		Autoplay:  autoplay,
		Consent:   consent,
		Button:    button,
		AriaLabel: html.EscapeString(expandTitle(ariaLabel, title)),
		Alt:       html.EscapeString(title),
		ThumbBase: thumbBaseURL + url.PathEscape(id),
	})
	if err != nil {
		return "", provider.Flags{}, err
	}

	return b.String(), provider.Flags{Script: true, Style: cfg.UseDefaultCSS}, nil
}

// renderEmbedLite emits a direct iframe against the nocookie embed host.
func (p *Provider) renderEmbedLite(id, title, query string, autoplay bool, cfg Config) (string, provider.Flags, error) {
	src := embedBaseURL + url.PathEscape(id)
	if query != "" {
		src += "?" + query
	}

	allow := iframeAllow
	if autoplay {
		allow += "; autoplay"
	}

	var b strings.Builder
	err := embedLiteTmpl.Execute(&b, struct {
		Src   string
		Title string
		Allow string
	}{
		Src:   html.EscapeString(src),
		Title: html.EscapeString(title),
		Allow: allow,
	})
	if err != nil {
		return "", provider.Flags{}, err
	}

	return b.String(), provider.Flags{Style: cfg.UseDefaultCSS}, nil
}

// expandTitle replaces every {{ title }} placeholder with the resolved
// title, verbatim. Literal replacement keeps the operation idempotent: no
// placeholder syntax is reintroduced by the substitution itself.
func expandTitle(text, title string) string {
	return titlePlaceholder.ReplaceAllLiteralString(text, title)
}

// buildQuery serializes pass-through block parameters in first-occurrence
// order. Structural parameters never appear; controls=show/hide are
// translated to the player's 1/0 values, any other controls value passes
// through unchanged.
func buildQuery(params *provider.Params) string {
	var parts []string
	params.Each(func(key, value string) {
		if structuralParams[key] {
			return
		}
		if key == "controls" {
			switch value {
			case "show":
				value = "1"
			case "hide":
				value = "0"
			}
		}
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	})
	return strings.Join(parts, "&")
}
