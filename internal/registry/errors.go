package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrInvalidName indicates an asset name is empty or contains whitespace.
	ErrInvalidName = errors.New("invalid asset name")

	// ErrDuplicateName indicates two keys collapse to the same lower-cased name.
	ErrDuplicateName = errors.New("duplicate asset name")

	// ErrInvalidPath indicates the registry file path is not a readable file.
	ErrInvalidPath = errors.New("invalid registry path")

	// ErrParse indicates the registry file is not valid YAML or has unknown fields.
	ErrParse = errors.New("failed to parse registry")
)
