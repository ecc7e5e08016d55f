package modern

import (
	"context"
	"errors"
)

// Flags controls encoding policy.
type Flags uint8

const (
	// UnescapedUnicode leaves non-ASCII text as UTF-8; otherwise it is written as \uXXXX.
	UnescapedUnicode Flags = 1 << iota
	// InvalidUTF8Substitute replaces invalid byte sequences with U+FFFD.
	InvalidUTF8Substitute
	// PartialOutputOnError substitutes a placeholder for values that cannot be encoded.
	PartialOutputOnError

	DefaultFlags = UnescapedUnicode | InvalidUTF8Substitute | PartialOutputOnError
)

// Has returns true if all bits of f are set.
func (f Flags) Has(flag Flags) bool { return f&flag == flag }

// Backend names a JSON library used to write output.
type Backend string

const (
	BackendJsoniter Backend = "jsoniter"
	BackendGojay    Backend = "gojay"
	BackendSonic    Backend = "sonic"
	BackendGoccy    Backend = "goccy"
	BackendStdlib   Backend = "stdlib"
)

var (
	ErrInvalidUTF8     = errors.New("malformed UTF-8 characters")
	ErrNonFinite       = errors.New("inf and nan cannot be JSON encoded")
	ErrUnrepresentable = errors.New("type is not supported")
	ErrUnknownBackend  = errors.New("unknown backend")
)

// Option mutates runtime options.
type Option interface{ apply(*Options) }

// Options defines runtime behavior.
type Options struct {
	Ctx     context.Context
	Flags   Flags
	Backend Backend
}
