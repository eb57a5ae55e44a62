package jsonval

import "strconv"

// DecodeSlice decodes an array Value element by element, in order, fail-fast:
// the first element failure aborts the remainder and carries the element's
// error path prefixed with its 0-based [index]. A non-array input yields
// InvalidType with an empty path for the enclosing frame to locate.
func DecodeSlice[T any](v Value, elem func(Value) (T, error)) ([]T, error) {
	arr, ok := v.AsArray()
	if !ok {
		return nil, DecodeError{Kind: InvalidType}
	}
	out := make([]T, 0, len(arr))
	for i, ev := range arr {
		t, err := elem(ev)
		if err != nil {
			return nil, prefixError("["+strconv.Itoa(i)+"]", err)
		}
		out = append(out, t)
	}
	return out, nil
}

// DecodeStringMap decodes an object Value entry by entry into a key-to-value
// map. The first entry failure aborts with the entry's error path prefixed
// by its key.
func DecodeStringMap[T any](v Value, elem func(Value) (T, error)) (map[string]T, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, DecodeError{Kind: InvalidType}
	}
	out := make(map[string]T, obj.Len())
	for _, k := range obj.Keys() {
		t, err := elem(obj.Value(k))
		if err != nil {
			return nil, prefixError(k, err)
		}
		out[k] = t
	}
	return out, nil
}

// DecodeValues decodes an object Value into a list of its entry values,
// discarding keys. Entries are visited in the object's preserved key order;
// the first failure aborts with the key prefixed.
func DecodeValues[T any](v Value, elem func(Value) (T, error)) ([]T, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, DecodeError{Kind: InvalidType}
	}
	out := make([]T, 0, obj.Len())
	for _, k := range obj.Keys() {
		t, err := elem(obj.Value(k))
		if err != nil {
			return nil, prefixError(k, err)
		}
		out = append(out, t)
	}
	return out, nil
}
