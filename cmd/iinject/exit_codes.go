package main

import (
	"context"
	"errors"
	"os"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/config"
)

// Exit codes for the iinject CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All assets handled
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, registry, or asset options
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors and failed loads
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, iinject.ErrBrowserConnect) ||
		errors.Is(err, iinject.ErrPageCreate) ||
		errors.Is(err, iinject.ErrPageLoad) ||
		errors.Is(err, iinject.ErrLoadFailed) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadPage) ||
		errors.Is(err, ErrReadInline) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, iinject.ErrMissingName) ||
		errors.Is(err, iinject.ErrUnknownMethod) ||
		errors.Is(err, iinject.ErrInvalidSource) ||
		errors.Is(err, iinject.ErrInvalidRegistry) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoAssets) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
