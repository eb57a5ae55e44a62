package jsonval

// Decodable is the immutable-construction capability: the type builds a brand
// new instance of itself from a Value, typically by running a Decoder chain
// over its own fields. Implement it on the value type; the receiver is a
// zero value and only v matters.
type Decodable[T any] interface {
	DecodeValue(v Value) (T, error)
}

// MutableDecodable is the in-place mutation capability: the receiver updates
// itself from a Value, preserving reference identity across repeated
// refreshes. Implement it on the pointer type.
type MutableDecodable interface {
	MutateValue(v Value) error
}

// Decode constructs a T from v via its Decodable capability.
func Decode[T Decodable[T]](v Value) (T, error) {
	var zero T
	return zero.DecodeValue(v)
}

// DecodeArray decodes an array of T, preserving element order and failing
// fast with an [index]-prefixed path.
func DecodeArray[T Decodable[T]](v Value) ([]T, error) {
	return DecodeSlice(v, func(ev Value) (T, error) {
		var zero T
		return zero.DecodeValue(ev)
	})
}

// DecodeMap decodes an object into a map of T keyed by the entry keys.
func DecodeMap[T Decodable[T]](v Value) (map[string]T, error) {
	return DecodeStringMap(v, func(ev Value) (T, error) {
		var zero T
		return zero.DecodeValue(ev)
	})
}

// DecodeInto refreshes dst in place from v via its MutableDecodable
// capability.
func DecodeInto(v Value, dst MutableDecodable) error {
	if dst == nil {
		return DecodeError{Kind: Unknown}
	}
	return dst.MutateValue(v)
}

// DecodeArrayInto decodes an array of default-constructed T elements whose
// pointer type implements MutableDecodable.
func DecodeArrayInto[T any, P interface {
	*T
	MutableDecodable
}](v Value) ([]T, error) {
	return DecodeSlice(v, func(ev Value) (T, error) {
		var t T
		if err := P(&t).MutateValue(ev); err != nil {
			var zero T
			return zero, err
		}
		return t, nil
	})
}

// DecodeMapInto is DecodeArrayInto for object-shaped input, retaining keys.
func DecodeMapInto[T any, P interface {
	*T
	MutableDecodable
}](v Value) (map[string]T, error) {
	return DecodeStringMap(v, func(ev Value) (T, error) {
		var t T
		if err := P(&t).MutateValue(ev); err != nil {
			var zero T
			return zero, err
		}
		return t, nil
	})
}
