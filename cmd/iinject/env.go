package main

import (
	"context"
	"io"
	"os"

	"github.com/wpsmith/iinject"
)

// Tab is a live page the browse command loads into.
type Tab interface {
	iinject.Host
	Close() error
}

// Browser opens tabs.
type Browser interface {
	Open(ctx context.Context, url string) (Tab, error)
	Close() error
}

// LaunchFunc starts a browser.
type LaunchFunc func(ctx context.Context, opts iinject.BrowserOptions) (Browser, error)

// Environment holds injectable dependencies for testability.
// Includes I/O and the browser launcher.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Launch LaunchFunc
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Launch: launchChrome,
	}
}

// chromeBrowser adapts *iinject.Browser to Browser.
type chromeBrowser struct {
	b *iinject.Browser
}

func launchChrome(ctx context.Context, opts iinject.BrowserOptions) (Browser, error) {
	b, err := iinject.LaunchBrowser(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &chromeBrowser{b: b}, nil
}

func (c *chromeBrowser) Open(ctx context.Context, url string) (Tab, error) {
	return c.b.Open(ctx, url)
}

func (c *chromeBrowser) Close() error {
	return c.b.Close()
}

// Compile-time interface checks.
var (
	_ Tab     = (*iinject.Tab)(nil)
	_ Browser = (*chromeBrowser)(nil)
)
