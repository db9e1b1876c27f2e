// Package app wires the mdembed application together: it builds the
// logger, loads the attach configuration, constructs the goldmark instance
// with the videoembed extension, and runs either a one-shot conversion or
// the HTTP preview server.
package app
