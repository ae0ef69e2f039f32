package iinject

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// fakeHost records every probe and append in call order.
type fakeHost struct {
	mu        sync.Mutex
	defined   map[string]bool
	members   map[string]bool // "object.member"
	calls     []string
	appended  []appended
	appendErr error
	loadErr   error // when set, every appended element fails to load
}

type appended struct {
	el     *Element
	target Target
}

func newFakeHost(symbols ...string) *fakeHost {
	h := &fakeHost{defined: make(map[string]bool), members: make(map[string]bool)}
	for _, s := range symbols {
		h.defined[s] = true
	}
	return h
}

func (h *fakeHost) Defined(symbol string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "defined:"+symbol)
	return h.defined[symbol]
}

func (h *fakeHost) HasMember(object, member string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "member:"+object+"."+member)
	return h.members[object+"."+member]
}

func (h *fakeHost) Append(_ context.Context, el *Element, target Target) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.appendErr != nil {
		return h.appendErr
	}
	src, _ := el.Attr("src")
	if src == "" {
		src, _ = el.Attr("href")
	}
	h.calls = append(h.calls, fmt.Sprintf("append:%s:%s", target, src))
	h.appended = append(h.appended, appended{el: el, target: target})
	if h.loadErr != nil {
		el.Failed(h.loadErr)
	}
	return nil
}

func (h *fakeHost) appendCalls() []string {
	var out []string
	for _, c := range h.calls {
		if len(c) > 7 && c[:7] == "append:" {
			out = append(out, c)
		}
	}
	return out
}

var errHostFailure = errors.New("host failure")

// Registry URLs used across tests.
const (
	jquerySrc     = "//ajax.googleapis.com/ajax/libs/jquery/1.11.1/jquery.min.js"
	spservicesSrc = "//cdnjs.cloudflare.com/ajax/libs/jquery.SPServices/2014.01/jquery.SPServices.min.js"
	headjsSrc     = "//cdnjs.cloudflare.com/ajax/libs/headjs/1.0.3/head.load.min.js"
)
