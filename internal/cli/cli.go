package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/halostatue/mdex-video-embed/internal/app"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// requested or no input given), or an ExitError for invalid arguments.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("mdembed", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mdembed - render markdown with privacy-respecting video embeds.

Usage:
  mdembed [options] INPUT.md

Arguments:
  INPUT.md
    Path to the markdown document to convert.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL file of provider configuration blocks.")
	outputFlag := flagSet.String("o", "", "Output path for the rendered HTML. Empty writes to stdout.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP preview server. 0 is disabled.")
	minifyFlag := flagSet.Bool("minify", false, "Minify the rendered HTML output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "exactly one input path expected"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *servePortFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid serve-port: must not be negative"}
	}

	return &app.Config{
		InputPath:  flagSet.Arg(0),
		ConfigPath: *configFlag,
		OutputPath: *outputFlag,
		ServePort:  *servePortFlag,
		Minify:     *minifyFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}
