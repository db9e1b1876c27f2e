package provider

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// nopProvider is a minimal Provider for registry tests.
type nopProvider struct{}

func (nopProvider) Config(raw any) (any, error) { return nil, nil }
func (nopProvider) EmbedHTML(content string, config any) (string, Flags, error) {
	return "", Flags{}, nil
}
func (nopProvider) MergeFlags(existing, incoming Flags) Flags { return existing }
func (nopProvider) DocumentHTML(merged Flags) string          { return "" }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	p := nopProvider{}
	r.Register("youtube", p)

	if _, ok := r.Lookup("youtube"); !ok {
		t.Error("Lookup(youtube) = miss, want hit")
	}
	if _, ok := r.Lookup("vimeo"); ok {
		t.Error("Lookup(vimeo) = hit, want miss")
	}
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := NewRegistry()
	r.Register("youtube", nopProvider{})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	r.Register("youtube", nopProvider{})
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("vimeo", nopProvider{})
	r.Register("youtube", nopProvider{})
	r.Register("peertube", nopProvider{})

	want := []string{"peertube", "vimeo", "youtube"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
