package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wpsmith/iinject/internal/yamlutil"
)

// FilesystemLoader loads a registry from a YAML file on disk.
// Implements Loader interface.
type FilesystemLoader struct {
	path string
}

// NewFilesystemLoader creates a FilesystemLoader for the given file.
// Returns ErrInvalidPath if the path is empty, missing, or a directory.
func NewFilesystemLoader(path string) (*FilesystemLoader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	// Resolve symlinks so error messages name the real file
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file does not exist: %s", ErrInvalidPath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: is a directory: %s", ErrInvalidPath, absPath)
	}

	return &FilesystemLoader{path: absPath}, nil
}

// Path returns the resolved absolute path of the registry file.
func (f *FilesystemLoader) Path() string {
	return f.path
}

// LoadRegistry reads and parses the registry file.
func (f *FilesystemLoader) LoadRegistry() (*Registry, error) {
	var doc file
	if err := yamlutil.ReadFileStrict(f.path, &doc); err != nil {
		if errors.Is(err, yamlutil.ErrReadFile) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, f.path, err)
	}
	return New(doc.Assets)
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
