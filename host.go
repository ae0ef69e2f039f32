package iinject

import (
	"context"

	"github.com/wpsmith/iinject/internal/element"
)

// Element is the node a loader asks a host to append.
type Element = element.Element

// Attr is one element attribute.
type Attr = element.Attr

// Target selects the container an element is appended to.
type Target = element.Target

// Injection targets.
const (
	Head = element.Head
	Body = element.Body
)

// Globals is the host's read-only symbol lookup surface.
type Globals interface {
	// Defined reports whether symbol is defined in the global scope.
	Defined(symbol string) bool
	// HasMember reports whether the value object yields when called
	// (or object itself, if not callable) carries member.
	HasMember(object, member string) bool
}

// Document is the host's mutation surface.
type Document interface {
	// Append adds el to the head or body. Hosts fire el.OnLoad or
	// el.OnError once they know the outcome, possibly on another goroutine.
	Append(ctx context.Context, el *Element, target Target) error
}

// Host is everything a Loader needs from its environment.
type Host interface {
	Globals
	Document
}
