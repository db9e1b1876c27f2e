package videoembed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/halostatue/mdex-video-embed/provider"
)

// stubProvider is a self-contained provider for pipeline tests. It renders
// a fixed marker per block and a fixed resource fragment per document.
type stubProvider struct {
	marker    string
	flags     provider.Flags
	resource  string
	configErr error
}

func (s *stubProvider) Config(raw any) (any, error) {
	if s.configErr != nil {
		return nil, s.configErr
	}
	return nil, nil
}

func (s *stubProvider) EmbedHTML(content string, _ any) (string, provider.Flags, error) {
	id, _, err := provider.ParseBlock(content)
	if err != nil {
		return "", provider.Flags{}, err
	}
	return fmt.Sprintf(`<div data-stub=%q data-id=%q></div>`, s.marker, id), s.flags, nil
}

func (s *stubProvider) MergeFlags(existing, incoming provider.Flags) provider.Flags {
	return provider.Flags{
		Script: existing.Script || incoming.Script,
		Style:  existing.Style || incoming.Style,
	}
}

func (s *stubProvider) DocumentHTML(merged provider.Flags) string {
	if !merged.Script && !merged.Style {
		return ""
	}
	return s.resource
}

func TestTransform_InjectionFollowsFirstAppearance(t *testing.T) {
	// --- Arrange ---
	reg := provider.NewRegistry()
	reg.Register("alpha", &stubProvider{
		marker:   "alpha",
		flags:    provider.Flags{Script: true},
		resource: `<script data-resource="alpha"></script>`,
	})
	reg.Register("beta", &stubProvider{
		marker:   "beta",
		flags:    provider.Flags{Script: true},
		resource: `<script data-resource="beta"></script>`,
	})

	ext, err := New(Config{Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// --- Act ---
	// beta appears first in the document, so its resource must end up
	// topmost even though registry order is alphabetical.
	out := render(t, ext, `
~~~video source=beta
vid1
~~~

~~~video source=alpha
vid2
~~~
`)

	// --- Assert ---
	betaAt := strings.Index(out, `data-resource="beta"`)
	alphaAt := strings.Index(out, `data-resource="alpha"`)
	if betaAt == -1 || alphaAt == -1 {
		t.Fatalf("missing resource fragments:\n%s", out)
	}
	if betaAt > alphaAt {
		t.Errorf("first-appearing provider is not topmost:\n%s", out)
	}
	if bodyAt := strings.Index(out, "data-stub"); alphaAt > bodyAt {
		t.Errorf("resource fragments do not precede document content:\n%s", out)
	}
}

func TestTransform_EmptyResourceReservesNoSlot(t *testing.T) {
	reg := provider.NewRegistry()
	reg.Register("quiet", &stubProvider{
		marker: "quiet",
		flags:  provider.Flags{}, // no resources requested
	})

	ext, err := New(Config{Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := render(t, ext, `
~~~video source=quiet
vid1
~~~
`)

	if !strings.Contains(out, `data-stub="quiet"`) {
		t.Fatalf("block was not transformed:\n%s", out)
	}
	if strings.Contains(out, "<script") {
		t.Errorf("empty resource still injected a fragment:\n%s", out)
	}
}

func TestTransform_ReplacementKeepsDocumentPosition(t *testing.T) {
	reg := provider.NewRegistry()
	reg.Register("stub", &stubProvider{marker: "stub"})

	ext, err := New(Config{Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := render(t, ext, `
before paragraph

~~~video source=stub
vid1
~~~

after paragraph
`)

	beforeAt := strings.Index(out, "before paragraph")
	embedAt := strings.Index(out, "data-stub")
	afterAt := strings.Index(out, "after paragraph")
	if !(beforeAt < embedAt && embedAt < afterAt) {
		t.Errorf("embed not rendered at the block's original position:\n%s", out)
	}
}

func TestTransform_BlockInsideBlockquote(t *testing.T) {
	reg := provider.NewRegistry()
	reg.Register("stub", &stubProvider{marker: "stub"})

	ext, err := New(Config{Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := render(t, ext, `> quoted
>
> ~~~video source=stub
> vid1
> ~~~
`)

	if !strings.Contains(out, `data-id="vid1"`) {
		t.Errorf("nested block was not transformed:\n%s", out)
	}
	if strings.Index(out, "<blockquote>") > strings.Index(out, "data-stub") {
		t.Errorf("embed escaped its blockquote:\n%s", out)
	}
}

func TestNew_FailFastStopsAllProviders(t *testing.T) {
	reg := provider.NewRegistry()
	reg.Register("bad", &stubProvider{configErr: fmt.Errorf("broken option")})
	reg.Register("good", &stubProvider{marker: "good"})

	_, err := New(Config{Registry: reg, Providers: map[string]any{
		"bad": map[string]any{},
	}})

	if err == nil {
		t.Fatal("New() did not fail fast on a bad provider configuration")
	}
	if !strings.Contains(err.Error(), "invalid configuration for bad: broken option") {
		t.Errorf("error = %q, want provider and reason named", err)
	}
}

func TestSourceProviderShapes(t *testing.T) {
	reg := provider.NewRegistry()
	reg.Register("stub", &stubProvider{marker: "stub"})

	ext, err := New(Config{Registry: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name    string
		info    string
		handled bool
	}{
		{"canonical", "video source=stub", true},
		{"extra spaces", "video  source=stub", true},
		{"wrong tag", "clip source=stub", false},
		{"missing marker", "video", false},
		{"wrong key", "video src=stub", false},
		{"empty value", "video source=", false},
		{"trailing junk joins the value", "video source=stub extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, ext, "~~~"+tt.info+"\nvid1\n~~~\n")

			got := strings.Contains(out, "data-stub")
			if got != tt.handled {
				t.Errorf("info %q handled = %v, want %v:\n%s", tt.info, got, tt.handled, out)
			}
		})
	}
}
