// Package document wraps a parsed HTML page so elements can be appended to
// its head or body and the result rendered back out.
package document

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wpsmith/iinject/internal/element"
)

// Sentinel errors for document operations.
var (
	ErrParse     = errors.New("failed to parse HTML")
	ErrNoHead    = errors.New("document has no head element")
	ErrNoBody    = errors.New("document has no body element")
	ErrNoTag     = errors.New("element has no tag name")
	ErrNilTarget = errors.New("nil element")
)

// emptyPage is the skeleton used by New.
const emptyPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is a mutable HTML tree. Not safe for concurrent use.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document. The HTML5 parsing algorithm always
// synthesizes <head> and <body>, so fragments become complete pages.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Document{root: root}, nil
}

// New returns an empty HTML5 document.
func New() *Document {
	d, err := Parse(strings.NewReader(emptyPage))
	if err != nil {
		panic("parsing empty page: " + err.Error()) // constant input
	}
	return d
}

// Head returns the first <head> element, or nil.
func (d *Document) Head() *html.Node {
	return findFirst(d.root, atom.Head)
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *html.Node {
	return findFirst(d.root, atom.Body)
}

// Append converts el into a node and appends it to the chosen container.
func (d *Document) Append(el *element.Element, target element.Target) error {
	if el == nil {
		return ErrNilTarget
	}
	if el.Tag == "" {
		return ErrNoTag
	}

	var parent *html.Node
	switch target {
	case element.Body:
		if parent = d.Body(); parent == nil {
			return ErrNoBody
		}
	default:
		if parent = d.Head(); parent == nil {
			return ErrNoHead
		}
	}

	parent.AppendChild(newNode(el))
	return nil
}

// FindAll returns every element with the given tag in document order.
func (d *Document) FindAll(tag string) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" on write failure.
func (d *Document) String() string {
	var buf strings.Builder
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// AttrValue returns the value of key on n.
func AttrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// newNode builds an element node, with a raw text child for inline bodies.
func newNode(el *element.Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(el.Tag)),
		Data:     el.Tag,
	}
	for _, a := range el.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if el.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: sanitizeRawText(el.Text)})
	}
	return n
}

// sanitizeRawText escapes closing-tag sequences that would end a raw text
// element (<script>, <style>) early. Script and style are rendered unescaped.
func sanitizeRawText(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}

// findFirst returns the first element node with the given atom, depth-first.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}
