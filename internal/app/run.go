package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/halostatue/mdex-video-embed/internal/ctxlog"
)

// Run executes the application: the preview server when a serve port is
// configured, otherwise a one-shot conversion of the input document.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.ServePort > 0 {
		return a.serve(ctx)
	}

	html, err := a.renderInput()
	if err != nil {
		return err
	}

	if a.config.OutputPath == "" {
		_, err := a.outW.Write(html)
		return err
	}

	// Atomic write: readers never observe a half-written document.
	if err := atomic.WriteFile(a.config.OutputPath, bytes.NewReader(html)); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.config.OutputPath, err)
	}
	a.logger.Info("Rendered document written.", "path", a.config.OutputPath, "bytes", len(html))
	return nil
}

// renderInput reads the input document, converts it, and optionally
// minifies the result.
func (a *App) renderInput() ([]byte, error) {
	source, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.config.InputPath, err)
	}

	var buf bytes.Buffer
	if err := a.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", a.config.InputPath, err)
	}

	out := buf.Bytes()
	if a.config.Minify {
		out, err = minifyHTML(out)
		if err != nil {
			return nil, fmt.Errorf("failed to minify output: %w", err)
		}
	}
	return out, nil
}
