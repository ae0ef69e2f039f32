package iinject

import (
	"fmt"
	"strings"
)

// Method selects how an asset is injected.
type Method int

const (
	// ExternalScript appends <script src=...>.
	ExternalScript Method = iota
	// ExternalStylesheet appends <link rel="stylesheet" href=...>.
	ExternalStylesheet
	// InlineScript appends <script> with a literal body.
	InlineScript
)

// methodNames maps accepted spellings (lower-cased) to methods.
// The short names match the registry file format.
var methodNames = map[string]Method{
	"js":         ExternalScript,
	"script":     ExternalScript,
	"css":        ExternalStylesheet,
	"stylesheet": ExternalStylesheet,
	"inlinejs":   InlineScript,
	"inline":     InlineScript,
}

// ParseMethod resolves a method by name, case-insensitively.
func ParseMethod(name string) (Method, error) {
	m, ok := methodNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMethod, name, strings.Join(MethodNames(), ", "))
	}
	return m, nil
}

// MethodNames returns the canonical method names.
func MethodNames() []string {
	return []string{ExternalScript.String(), ExternalStylesheet.String(), InlineScript.String()}
}

// String returns the canonical name used in registry files.
func (m Method) String() string {
	switch m {
	case ExternalScript:
		return "js"
	case ExternalStylesheet:
		return "css"
	case InlineScript:
		return "inlineJS"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
