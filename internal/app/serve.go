package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/halostatue/mdex-video-embed/internal/ctxlog"
)

// serve runs the HTTP preview server until ctx is cancelled or the server
// fails. Each request re-renders the input document, so edits show up on
// refresh.
func (a *App) serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/", a.previewHandler)

	addr := fmt.Sprintf(":%d", a.config.ServePort)
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
		// Requests inherit the run context, logger included.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Preview server starting", "address", fmt.Sprintf("http://localhost%s/", addr), "input", a.config.InputPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
		a.logger.Info("Preview server shutting down.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// previewHandler renders the input document for the browser.
func (a *App) previewHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())
	logger.Debug("Preview request.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)

	html, err := a.renderInput()
	if err != nil {
		logger.Error("Preview render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

// healthHandler reports liveness.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
