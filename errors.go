// FILE: lixenwraith/registry/errors.go
package registry

import "errors"

// Construction and translation errors. Query-time operations never return these.
var (
	// ErrConfigPathNotFound is returned when a loader root is not a directory
	ErrConfigPathNotFound = errors.New("config path not found")
	// ErrParse wraps format-specific parser failures for a single file
	ErrParse = errors.New("config file parse error")
	// ErrFileTooLarge is returned when a file exceeds TreeOptions.MaxFileSize
	ErrFileTooLarge = errors.New("config file exceeds maximum size")

	ErrMissingArrayKeyName   = errors.New("A_key element without name attribute")
	ErrUndefinedConstant     = errors.New("undefined constant")
	ErrInvalidBooleanLiteral = errors.New("invalid boolean literal")
	ErrDisallowedType        = errors.New("disallowed value type")
	ErrUnknownType           = errors.New("unknown value type")

	// ErrNotImplemented is carried by the stub backend's panics
	ErrNotImplemented = errors.New("backend operation not implemented")
)

var (
	// ErrCLIParse is returned by ParseArgs for malformed arguments
	ErrCLIParse = errors.New("failed to parse command-line arguments")
	// ErrKeyNotFound is returned by typed accessors when no backend has the key
	ErrKeyNotFound = errors.New("config key not found")
)
