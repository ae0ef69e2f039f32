package iinject

import (
	"fmt"

	"github.com/wpsmith/iinject/internal/minify"
)

// injector builds the element for each injection strategy.
type injector struct {
	minifier *minify.Minifier // nil disables inline minification
}

// element returns the node to append for d.
func (i *injector) element(d *Descriptor) (*Element, error) {
	switch d.Method {
	case ExternalScript:
		return &Element{
			Tag: "script",
			Attrs: []Attr{
				{Key: "type", Val: "text/javascript"},
				{Key: "src", Val: d.Src},
			},
			OnLoad:  d.OnLoad,
			OnError: loadFailure(d),
		}, nil

	case ExternalStylesheet:
		return &Element{
			Tag: "link",
			Attrs: []Attr{
				{Key: "rel", Val: "stylesheet"},
				{Key: "type", Val: "text/css"},
				{Key: "href", Val: d.Src},
			},
		}, nil

	case InlineScript:
		body := d.Inline
		if i.minifier != nil {
			minified, err := i.minifier.JS(body)
			if err != nil {
				return nil, fmt.Errorf("%w: minifying %q: %v", ErrInvalidSource, d.Name, err)
			}
			body = minified
		}
		return &Element{
			Tag:     "script",
			Attrs:   []Attr{{Key: "type", Val: "text/javascript"}},
			Text:    body,
			OnLoad:  d.OnLoad,
			OnError: loadFailure(d),
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, d.Method)
}

// loadFailure wraps d.OnError so callbacks receive ErrLoadFailed.
func loadFailure(d *Descriptor) func(error) {
	if d.OnError == nil {
		return nil
	}
	onError, name := d.OnError, d.Name
	return func(err error) {
		onError(fmt.Errorf("%w: %s: %w", ErrLoadFailed, name, err))
	}
}
