// Package cli parses command-line arguments for mdembed and translates
// them into an app.Config. It owns the usage text and the ExitError type
// that carries process exit codes out of the run function.
package cli
