// Package youtube implements the reference video provider.
//
// It renders blocks in one of two modes: "local", a consent-gated
// placeholder that defers any contact with YouTube until the visitor
// clicks play, and "embedlite", a direct iframe against the
// youtube-nocookie.com embed host.
package youtube

import (
	"fmt"

	"github.com/halostatue/mdex-video-embed/provider"
)

// Rendering modes.
const (
	ModeLocal     = "local"
	ModeEmbedLite = "embedlite"
)

// Built-in defaults for the templated strings.
const (
	defaultTitle           = "YouTube video"
	defaultButtonText      = "Play {{ title }}"
	defaultButtonAriaLabel = "Play video: {{ title }}"
	defaultConsentMessage  = "Clicking the button loads the video from " +
		"[YouTube](https://www.youtube.com) and applies YouTube's " +
		"[privacy policy](https://policies.google.com/privacy)."
)

// Config is the validated provider configuration produced by
// (*Provider).Config. It is immutable after validation.
type Config struct {
	Mode            string
	ConsentMessage  string
	UseDefaultCSS   bool
	ButtonText      string
	ButtonAriaLabel string
}

// Provider implements provider.Provider for YouTube.
type Provider struct {
	fragments provider.FragmentRenderer
}

// New creates the provider with the given fragment renderer, used for the
// consent message and button text.
func New(fragments provider.FragmentRenderer) *Provider {
	return &Provider{fragments: fragments}
}

// Config validates raw attach options and applies defaults. Unknown option
// keys are ignored so that configurations written for newer versions keep
// loading.
func (p *Provider) Config(raw any) (any, error) {
	opts, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("options must be a mapping, got %T", raw)
	}

	cfg := Config{
		Mode:            ModeLocal,
		ConsentMessage:  defaultConsentMessage,
		ButtonText:      defaultButtonText,
		ButtonAriaLabel: defaultButtonAriaLabel,
	}

	for key, value := range opts {
		switch key {
		case "mode":
			mode, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("option %q must be a string, got %T", key, value)
			}
			if mode != ModeLocal && mode != ModeEmbedLite {
				return nil, fmt.Errorf("invalid mode %q: must be %q or %q", mode, ModeLocal, ModeEmbedLite)
			}
			cfg.Mode = mode
		case "consent_message":
			msg, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("option %q must be a string, got %T", key, value)
			}
			cfg.ConsentMessage = msg
		case "use_default_css":
			use, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("option %q must be a bool, got %T", key, value)
			}
			cfg.UseDefaultCSS = use
		case "button_text":
			text, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("option %q must be a string, got %T", key, value)
			}
			cfg.ButtonText = text
		case "button_aria_label":
			label, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("option %q must be a string, got %T", key, value)
			}
			cfg.ButtonAriaLabel = label
		}
	}

	return cfg, nil
}

// MergeFlags combines block flags sticky-true: a resource requested by any
// block in the document stays requested.
func (p *Provider) MergeFlags(existing, incoming provider.Flags) provider.Flags {
	return provider.Flags{
		Script: existing.Script || incoming.Script,
		Style:  existing.Style || incoming.Style,
	}
}
