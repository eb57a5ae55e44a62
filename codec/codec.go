// Package codec provides reusable field converters for jsonval binding
// chains. Every converter has the shape func(jsonval.Value) (T, error) and
// reports coercion failure as an InvalidType DecodeError with an empty path;
// the enclosing bind or collection frame supplies the location.
package codec

import (
	jsonval "github.com/hikarin-io/jsonval"
)

// Identity returns the Value unchanged.
func Identity(v jsonval.Value) (jsonval.Value, error) { return v, nil }

// String decodes a string-coercible Value (strings, or numbers via their
// canonical lexical form).
func String(v jsonval.Value) (string, error) {
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	return "", jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Int64 decodes an integral number or numeric string.
func Int64(v jsonval.Value) (int64, error) {
	if i, ok := v.AsInt64(); ok {
		return i, nil
	}
	return 0, jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Uint64 decodes a non-negative integral number or numeric string.
func Uint64(v jsonval.Value) (uint64, error) {
	if u, ok := v.AsUint64(); ok {
		return u, nil
	}
	return 0, jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Float64 decodes a number or numeric string.
func Float64(v jsonval.Value) (float64, error) {
	if f, ok := v.AsFloat64(); ok {
		return f, nil
	}
	return 0, jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Float32 decodes a number or numeric string within float32 range.
func Float32(v jsonval.Value) (float32, error) {
	if f, ok := v.AsFloat32(); ok {
		return f, nil
	}
	return 0, jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Bool decodes truthiness: numbers by zero/nonzero, strings by parsing as an
// integer first.
func Bool(v jsonval.Value) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, jsonval.DecodeError{Kind: jsonval.InvalidType}
}

// Nullable lifts a converter to accept Null, which decodes to a nil pointer.
// This is how a required bind admits a present-but-null field.
func Nullable[T any](elem func(jsonval.Value) (T, error)) func(jsonval.Value) (*T, error) {
	return func(v jsonval.Value) (*T, error) {
		if v.Kind() == jsonval.KindNull {
			return nil, nil
		}
		t, err := elem(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// Slice lifts an element converter to arrays, fail-fast with [index]
// prefixes.
func Slice[T any](elem func(jsonval.Value) (T, error)) func(jsonval.Value) ([]T, error) {
	return func(v jsonval.Value) ([]T, error) {
		return jsonval.DecodeSlice(v, elem)
	}
}

// Map lifts an element converter to objects, retaining keys.
func Map[T any](elem func(jsonval.Value) (T, error)) func(jsonval.Value) (map[string]T, error) {
	return func(v jsonval.Value) (map[string]T, error) {
		return jsonval.DecodeStringMap(v, elem)
	}
}

// Of adapts a Decodable type into a converter, so nested aggregates plug
// straight into a bind.
func Of[T jsonval.Decodable[T]](v jsonval.Value) (T, error) {
	return jsonval.Decode[T](v)
}
