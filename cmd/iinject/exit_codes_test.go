package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},

		{"browser connect", iinject.ErrBrowserConnect, ExitBrowser},
		{"page create", iinject.ErrPageCreate, ExitBrowser},
		{"page load", fmt.Errorf("opening: %w", iinject.ErrPageLoad), ExitBrowser},
		{"load failed", fmt.Errorf("%w: jquery: 404", iinject.ErrLoadFailed), ExitBrowser},
		{"deadline", context.DeadlineExceeded, ExitBrowser},

		{"not exist", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read page", ErrReadPage, ExitIO},
		{"read inline", ErrReadInline, ExitIO},
		{"write output", fmt.Errorf("%w: out.html", ErrWriteOutput), ExitIO},

		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"field required", config.ErrFieldRequired, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"missing name", iinject.ErrMissingName, ExitUsage},
		{"unknown method", iinject.ErrUnknownMethod, ExitUsage},
		{"invalid source", iinject.ErrInvalidSource, ExitUsage},
		{"invalid registry", iinject.ErrInvalidRegistry, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"no assets", ErrNoAssets, ExitUsage},
		{"invalid url", ErrInvalidURL, ExitUsage},
		{"invalid format", ErrInvalidFormat, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_BrowserWinsOverIO(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %w", iinject.ErrLoadFailed, os.ErrNotExist)
	if got := exitCodeFor(err); got != ExitBrowser {
		t.Errorf("exitCodeFor() = %d, want %d", got, ExitBrowser)
	}
}
