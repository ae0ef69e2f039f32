package iinject

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wpsmith/iinject/internal/browser"
)

// Compile-time interface check.
var _ Host = (*Tab)(nil)

// BrowserOptions configures LaunchBrowser.
type BrowserOptions struct {
	Bin       string        // Chrome binary; default $ROD_BROWSER_BIN, else a managed download
	NoSandbox bool          // also enabled by ROD_NO_SANDBOX=1 or CI=true
	Timeout   time.Duration // page load and probe timeout; default 30s
}

// Browser is a headless Chrome process whose tabs act as hosts.
type Browser struct {
	b *browser.Browser
}

// LaunchBrowser starts Chrome.
func LaunchBrowser(ctx context.Context, opts BrowserOptions) (*Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := browser.Launch(browser.Options{
		Bin:       opts.Bin,
		NoSandbox: opts.NoSandbox,
		Timeout:   opts.Timeout,
	})
	if err != nil {
		return nil, mapBrowserError(err)
	}
	return &Browser{b: b}, nil
}

// Open navigates a new tab to url.
func (b *Browser) Open(ctx context.Context, url string) (*Tab, error) {
	t, err := b.b.Open(ctx, url)
	if err != nil {
		return nil, mapBrowserError(err)
	}
	return &Tab{t: t}, nil
}

// Close shuts Chrome down.
func (b *Browser) Close() error {
	return b.b.Close()
}

// Tab is a Host backed by a live page. OnLoad and OnError fire on a
// separate goroutine once the page reports the element's load or error
// event; OnError receives an error wrapping ErrLoadFailed.
type Tab struct {
	t *browser.Tab
}

// Defined reports whether window[symbol] is defined.
func (t *Tab) Defined(symbol string) bool {
	return t.t.Defined(symbol)
}

// HasMember reports whether window[object]() carries member.
func (t *Tab) HasMember(object, member string) bool {
	return t.t.HasMember(object, member)
}

// Append inserts el into the live document.
func (t *Tab) Append(ctx context.Context, el *Element, target Target) error {
	return t.t.Append(ctx, el, target)
}

// Close closes the tab.
func (t *Tab) Close() error {
	return t.t.Close()
}

// mapBrowserError rewraps internal browser errors with the package sentinels.
func mapBrowserError(err error) error {
	switch {
	case errors.Is(err, browser.ErrConnect):
		return fmt.Errorf("%w: %w", ErrBrowserConnect, err)
	case errors.Is(err, browser.ErrPageCreate):
		return fmt.Errorf("%w: %w", ErrPageCreate, err)
	case errors.Is(err, browser.ErrPageLoad):
		return fmt.Errorf("%w: %w", ErrPageLoad, err)
	}
	return err
}
