// Package minify shrinks inline scripts and rendered pages before they are
// written out.
package minify

import (
	"io"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// Media types registered on every Minifier.
const (
	MediaJS   = "text/javascript"
	MediaCSS  = "text/css"
	MediaHTML = "text/html"
)

// Minifier is safe for concurrent use once constructed.
type Minifier struct {
	m *minify.M
}

// New returns a Minifier for JavaScript, CSS and HTML.
// HTML minification keeps document, end tags and quotes so the output stays
// a well-formed page that other tools can parse again.
func New() *Minifier {
	m := minify.New()
	m.Add(MediaHTML, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc(MediaCSS, css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return &Minifier{m: m}
}

// JS minifies JavaScript source.
func (m *Minifier) JS(src string) (string, error) {
	return m.m.String(MediaJS, src)
}

// HTML copies r to w, minifying the page and any inline scripts or styles.
func (m *Minifier) HTML(w io.Writer, r io.Reader) error {
	return m.m.Minify(MediaHTML, w, r)
}
