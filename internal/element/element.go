// Package element describes the nodes a loader asks a host to append.
// It is shared by the HTML page host and the browser host so both receive
// exactly the same request.
package element

// Target selects where an element is appended.
type Target int

const (
	// Head appends to the document's first <head> element.
	Head Target = iota
	// Body appends to the document's <body> element.
	Body
)

// String returns the tag name of the target container.
func (t Target) String() string {
	if t == Body {
		return "body"
	}
	return "head"
}

// Attr is a single element attribute. Order is preserved on render.
type Attr struct {
	Key string
	Val string
}

// Element is a host-agnostic description of a <script> or <link> node.
type Element struct {
	Tag   string
	Attrs []Attr
	Text  string // inline body; empty for external resources

	// OnLoad fires once the host considers the element loaded.
	OnLoad func()
	// OnError fires when the host observes a load failure.
	OnError func(error)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Tracked reports whether anyone listens for the element's completion.
func (e *Element) Tracked() bool {
	return e.OnLoad != nil || e.OnError != nil
}

// Loaded invokes OnLoad if set.
func (e *Element) Loaded() {
	if e.OnLoad != nil {
		e.OnLoad()
	}
}

// Failed invokes OnError if set.
func (e *Element) Failed(err error) {
	if e.OnError != nil {
		e.OnError(err)
	}
}
