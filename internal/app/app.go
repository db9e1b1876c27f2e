package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuin/goldmark"

	videoembed "github.com/halostatue/mdex-video-embed"
	"github.com/halostatue/mdex-video-embed/internal/ctxlog"
	"github.com/halostatue/mdex-video-embed/internal/hclcfg"
)

// Config holds everything an App instance needs to run.
type Config struct {
	InputPath  string
	ConfigPath string
	OutputPath string
	ServePort  int
	Minify     bool
	LogFormat  string
	LogLevel   string
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	md     goldmark.Markdown
	config *Config
}

// NewApp constructs the application: logger, attach configuration, and the
// goldmark instance. A configuration that fails provider validation is a
// startup failure; nothing partially configured is returned.
func NewApp(outW, errW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	providers := map[string]any{}
	if config.ConfigPath != "" {
		var err error
		providers, err = hclcfg.Load(ctx, config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	ext, err := videoembed.New(videoembed.Config{
		Providers: providers,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Attach configuration validated.", "providers", len(providers))

	return &App{
		outW:   outW,
		logger: logger,
		md:     goldmark.New(goldmark.WithExtensions(ext)),
		config: config,
	}, nil
}
