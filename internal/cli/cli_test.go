package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/halostatue/mdex-video-embed/internal/app"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"doc.md"}, out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if shouldExit {
		t.Fatal("Parse() requested exit for a valid invocation")
	}

	want := &app.Config{
		InputPath: "doc.md",
		LogFormat: "text",
		LogLevel:  "info",
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AllFlags(t *testing.T) {
	out := &bytes.Buffer{}

	config, _, err := Parse([]string{
		"-config", "embed.hcl",
		"-o", "out.html",
		"-serve-port", "8080",
		"-minify",
		"-log-format", "json",
		"-log-level", "debug",
		"doc.md",
	}, out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &app.Config{
		InputPath:  "doc.md",
		ConfigPath: "embed.hcl",
		OutputPath: "out.html",
		ServePort:  8080,
		Minify:     true,
		LogFormat:  "json",
		LogLevel:   "debug",
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	_, shouldExit, err := Parse(nil, out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !shouldExit {
		t.Error("Parse() without input did not request a clean exit")
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Errorf("usage text not printed:\n%s", out.String())
	}
}

func TestParse_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too many inputs", []string{"a.md", "b.md"}, "exactly one input path"},
		{"bad log format", []string{"-log-format", "xml", "doc.md"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "verbose", "doc.md"}, "invalid log-level"},
		{"negative serve port", []string{"-serve-port", "-1", "doc.md"}, "invalid serve-port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			_, _, err := Parse(tt.args, out)
			exitErr, ok := err.(*ExitError)
			if !ok {
				t.Fatalf("Parse(%v) error = %v, want *ExitError", tt.args, err)
			}
			if exitErr.Code != 2 {
				t.Errorf("exit code = %d, want 2", exitErr.Code)
			}
			if !strings.Contains(exitErr.Message, tt.want) {
				t.Errorf("message = %q, want it to contain %q", exitErr.Message, tt.want)
			}
		})
	}
}
