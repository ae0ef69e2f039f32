package iinject

import "errors"

// Sentinel errors for loader operations.
var (
	// ErrMissingName indicates Load or Resolve was called without an asset name.
	ErrMissingName = errors.New("asset name is required")

	// ErrUnknownMethod indicates a method name that is not js, css or inlineJS.
	ErrUnknownMethod = errors.New("unknown injection method")

	// ErrInvalidSource indicates an external asset without a URL or an
	// inline script without a body.
	ErrInvalidSource = errors.New("invalid asset source")

	// ErrLoadFailed is passed to OnError when the host observes a failed load.
	ErrLoadFailed = errors.New("asset failed to load")

	ErrNilHost         = errors.New("host cannot be nil")
	ErrNilDescriptor   = errors.New("descriptor cannot be nil")
	ErrAppend          = errors.New("failed to append element")
	ErrInvalidRegistry = errors.New("invalid registry")

	// Browser host errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
