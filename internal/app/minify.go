package app

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// minifier is configured once at initialization and immutable afterwards.
var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	return m
}()

// minifyHTML minifies a rendered HTML document.
func minifyHTML(in []byte) ([]byte, error) {
	return minifier.Bytes("text/html", in)
}
