package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/wpsmith/iinject"
)

const (
	jquerySrc     = "//ajax.googleapis.com/ajax/libs/jquery/1.11.1/jquery.min.js"
	spservicesSrc = "//cdnjs.cloudflare.com/ajax/libs/jquery.SPServices/2014.01/jquery.SPServices.min.js"
)

// testEnv returns an Environment writing to buffers, with launch as the
// browser factory.
func testEnv(launch LaunchFunc) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Launch: launch,
	}, &stdout, &stderr
}

// writeTestFile writes content under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake browser
// ---------------------------------------------------------------------------

// pageTab is a Tab backed by a static page: appends load immediately.
type pageTab struct {
	*iinject.Page
	closed bool
}

func (p *pageTab) Close() error {
	p.closed = true
	return nil
}

// failingTab reports every tracked element as failed.
type failingTab struct {
	*iinject.Page
}

func (f *failingTab) Append(_ context.Context, el *iinject.Element, _ iinject.Target) error {
	go el.Failed(errFakeNetwork)
	return nil
}

func (f *failingTab) Close() error { return nil }

// silentTab never fires completion callbacks.
type silentTab struct {
	*iinject.Page
}

func (s *silentTab) Append(context.Context, *iinject.Element, iinject.Target) error { return nil }
func (s *silentTab) Close() error                                                 { return nil }

var errFakeNetwork = &fakeError{"net::ERR_ABORTED 404"}

type fakeError struct{ msg string }

func (e *fakeError) Error() string { return e.msg }

// fakeBrowser hands out one tab and records what was asked of it.
type fakeBrowser struct {
	mu      sync.Mutex
	tab     Tab
	openErr error
	urls    []string
	opts    iinject.BrowserOptions
	closed  bool
}

func (b *fakeBrowser) Open(_ context.Context, url string) (Tab, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.urls = append(b.urls, url)
	if b.openErr != nil {
		return nil, b.openErr
	}
	return b.tab, nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

// launcher returns a LaunchFunc that hands out b, or fails with err.
func (b *fakeBrowser) launcher(err error) LaunchFunc {
	return func(_ context.Context, opts iinject.BrowserOptions) (Browser, error) {
		if err != nil {
			return nil, err
		}
		b.opts = opts
		return b, nil
	}
}

// Compile-time interface checks.
var (
	_ Tab     = (*pageTab)(nil)
	_ Tab     = (*failingTab)(nil)
	_ Tab     = (*silentTab)(nil)
	_ Browser = (*fakeBrowser)(nil)
)
