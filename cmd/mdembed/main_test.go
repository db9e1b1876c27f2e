package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	outW := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(outW, errW, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() with -h should exit cleanly")
	require.Contains(t, errW.String(), "Usage:", "help output should be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	outW := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(outW, errW, []string{"--non-existent-flag"})

	// --- Assert ---
	require.Error(t, err, "run() with an unknown flag should fail")
	require.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_ConvertsDocument(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	inputPath := filepath.Join(t.TempDir(), "doc.md")
	input := "~~~video source=youtube\ndQw4w9WgXcQ\n~~~\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0o644))
	outW := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(outW, errW, []string{inputPath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, outW.String(), `data-video-embed-id="dQw4w9WgXcQ"`)
}
