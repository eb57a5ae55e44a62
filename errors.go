package jsonval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a DecodeError. The set is stable; callers may branch
// on it for diagnostics.
type ErrorKind string

const (
	// KeyAbsent marks a required field missing from an object. A key that is
	// present with a null value is not absent.
	KeyAbsent ErrorKind = "key_absent"
	// InvalidType marks a value that is present but not coercible to the
	// requested type, including a non-object handed to NewDecoder.
	InvalidType ErrorKind = "invalid_type"
	// Unknown is the defensive catch-all for internal invariant violations.
	Unknown ErrorKind = "unknown"
)

// DecodeError is the single error surface of the decode engine. Path locates
// the first failing field relative to the decode root in dotted/bracketed
// form (for example "leafs[1].timestamp"); it is built bottom-up, each
// enclosing frame prefixing exactly one segment.
type DecodeError struct {
	Kind  ErrorKind
	Path  string
	Cause error
}

func (e DecodeError) Error() string {
	if e.Path == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Path)
}

func (e DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a DecodeError from err using errors.As.
func AsDecodeError(err error) (DecodeError, bool) {
	var de DecodeError
	if err == nil {
		return de, false
	}
	if errors.As(err, &de) {
		return de, true
	}
	return DecodeError{}, false
}

// PrefixKey returns a copy of e with the field name prepended to its path.
func (e DecodeError) PrefixKey(key string) DecodeError {
	e.Path = joinPath(key, e.Path)
	return e
}

// PrefixIndex returns a copy of e with a positional [i] segment prepended to
// its path.
func (e DecodeError) PrefixIndex(i int) DecodeError {
	e.Path = joinPath(fmt.Sprintf("[%d]", i), e.Path)
	return e
}

// joinPath prepends a segment to an existing path. Segments join with "."
// unless the tail opens with an array index bracket: "a" + "[1].v" renders
// "a[1].v", never "a.[1].v".
func joinPath(prefix, rest string) string {
	if rest == "" {
		return prefix
	}
	if strings.HasPrefix(rest, "[") {
		return prefix + rest
	}
	return prefix + "." + rest
}

// prefixError folds a converter failure into the enclosing frame: a
// DecodeError keeps its kind and gains the prefix; any other error is
// classified InvalidType at the prefix with the cause retained.
func prefixError(prefix string, err error) DecodeError {
	if de, ok := AsDecodeError(err); ok {
		de.Path = joinPath(prefix, de.Path)
		return de
	}
	return DecodeError{Kind: InvalidType, Path: prefix, Cause: err}
}
