package iinject

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/wpsmith/iinject/internal/document"
	"github.com/wpsmith/iinject/internal/minify"
)

// Compile-time interface check.
var _ Host = (*Page)(nil)

// Page is a Host backed by a static HTML document. Globals are whatever the
// caller declares; appended elements are rendered into the page markup.
//
// A static page has no network: an appended element counts as loaded as soon
// as it is inserted, so OnLoad fires synchronously from Append.
type Page struct {
	mu       sync.Mutex
	doc      *document.Document
	symbols  map[string]bool
	members  map[string]map[string]bool
	minifier *minify.Minifier
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithMinifiedOutput minifies the page on Render.
func WithMinifiedOutput() PageOption {
	return func(p *Page) {
		p.minifier = minify.New()
	}
}

// NewPage returns an empty HTML5 page.
func NewPage(opts ...PageOption) *Page {
	return newPage(document.New(), opts)
}

// ParsePage reads an HTML document. Missing <head> or <body> elements are
// synthesized by the HTML5 parser.
func ParsePage(r io.Reader, opts ...PageOption) (*Page, error) {
	doc, err := document.Parse(r)
	if err != nil {
		return nil, err
	}
	return newPage(doc, opts), nil
}

func newPage(doc *document.Document, opts []PageOption) *Page {
	p := &Page{
		doc:     doc,
		symbols: make(map[string]bool),
		members: make(map[string]map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Declare marks symbols as defined in the page's global scope.
func (p *Page) Declare(symbols ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range symbols {
		if s = strings.TrimSpace(s); s != "" {
			p.symbols[s] = true
		}
	}
}

// DeclareMember marks member as present on object's call result.
// The object itself is declared too.
func (p *Page) DeclareMember(object, member string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.symbols[object] = true
	if p.members[object] == nil {
		p.members[object] = make(map[string]bool)
	}
	p.members[object][member] = true
}

// Defined reports whether symbol was declared.
func (p *Page) Defined(symbol string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.symbols[symbol]
}

// HasMember reports whether member was declared on object.
func (p *Page) HasMember(object, member string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.symbols[object] && p.members[object][member]
}

// Append inserts el into the page and fires el.OnLoad.
func (p *Page) Append(ctx context.Context, el *Element, target Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	err := p.doc.Append(el, target)
	p.mu.Unlock()
	if err != nil {
		return err
	}

	el.Loaded()
	return nil
}

// Render writes the page markup to w.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.minifier == nil {
		return p.doc.Render(w)
	}

	var buf bytes.Buffer
	if err := p.doc.Render(&buf); err != nil {
		return err
	}
	if err := p.minifier.HTML(w, &buf); err != nil {
		return fmt.Errorf("minifying page: %w", err)
	}
	return nil
}

// String renders the page, returning "" on failure.
func (p *Page) String() string {
	var sb strings.Builder
	if err := p.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}
