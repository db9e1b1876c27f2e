package provider

// Flags records the document-level resources a rendered block depends on.
// Boolean flags merge sticky-true: once a flag is set anywhere in a
// document, it stays set for that document.
type Flags struct {
	// Script is set when the rendered HTML needs the provider's script
	// fragment injected into the document.
	Script bool
	// Style is set when the rendered HTML needs the provider's style
	// fragment injected into the document.
	Style bool
}

// Provider is the capability set every video provider implements.
//
// All four operations are pure: they never touch I/O and never panic on
// malformed input. Malformed attach options or block content are reported
// as error results; the pipeline treats a block-level error as "leave the
// original block unchanged".
type Provider interface {
	// Config validates and defaults raw attach-time options, returning the
	// provider's normalized configuration. It is called once per provider
	// per attach. Non-mapping input and out-of-range option values are
	// rejected with a human-readable reason in the error message.
	Config(raw any) (any, error)

	// EmbedHTML renders one block body to embed HTML using a configuration
	// previously returned by Config, together with the resource flags that
	// rendering requires.
	EmbedHTML(content string, config any) (string, Flags, error)

	// MergeFlags folds the flags of a later block into the accumulated
	// flags of earlier blocks. The operation is associative and
	// order-independent: boolean flags combine with logical OR.
	MergeFlags(existing, incoming Flags) Flags

	// DocumentHTML renders the document-level resource fragments for the
	// flags merged across all of this provider's blocks. An empty result
	// means no fragment is injected. Called exactly once per provider per
	// document, after every block has been processed.
	DocumentHTML(merged Flags) string
}

// FragmentRenderer renders a small inline markdown fragment (a consent
// message, a button label) to HTML. It is an injected collaborator so that
// templating logic can be unit-tested against a stub.
type FragmentRenderer interface {
	RenderInlineFragment(markdown string) (string, error)
}
