package jsonval

// Decoder is a binding-chain descriptor over an object-shaped Value. It is
// logically immutable: every bind operation returns a new Decoder, either
// still clean (field stored) or condemned (terminal error set). Once
// condemned, every later operation is a passthrough, so a chain reports
// exactly one error, path-prefixed by each enclosing frame.
//
// Bind, BindDefault, BindOptional and Result are free generic functions
// because Go methods cannot carry type parameters.
type Decoder struct {
	src Object
	err *DecodeError
}

// NewDecoder wraps an object-shaped Value. Any other shape yields a decoder
// over an empty object that is already condemned with InvalidType, so the
// first Result or Err call surfaces the mismatch.
func NewDecoder(v Value) Decoder {
	obj, ok := v.AsObject()
	if !ok {
		return Decoder{err: &DecodeError{Kind: InvalidType}}
	}
	return Decoder{src: obj}
}

// Err returns the terminal error of the chain, or nil while it is clean.
func (d Decoder) Err() error {
	if d.err == nil {
		return nil
	}
	return *d.err
}

// Source returns the object the decoder reads from.
func (d Decoder) Source() Object { return d.src }

func (d Decoder) fail(e DecodeError) Decoder {
	return Decoder{src: d.src, err: &e}
}

// Bind extracts the required field key, converts it and stores the result in
// dst. A missing key condemns the chain with KeyAbsent at the key; a
// converter failure condemns it with the inner error path prefixed by the
// key. A key present with a null value is present: it succeeds only if conv
// accepts Null. Rebinding a key later in the same chain is permitted and the
// last write wins.
func Bind[T any](d Decoder, dst *T, key string, conv func(Value) (T, error)) Decoder {
	if d.err != nil {
		return d
	}
	v, ok := d.src.Get(key)
	if !ok {
		return d.fail(DecodeError{Kind: KeyAbsent, Path: key})
	}
	t, err := conv(v)
	if err != nil {
		return d.fail(prefixError(key, err))
	}
	*dst = t
	return d
}

// BindDefault is Bind with a fallback: a missing key stores fallback and
// keeps the chain clean. A present value that fails conversion still
// condemns the chain; optional means the key may be absent, not that the
// type may be wrong.
func BindDefault[T any](d Decoder, dst *T, key string, fallback T, conv func(Value) (T, error)) Decoder {
	if d.err != nil {
		return d
	}
	v, ok := d.src.Get(key)
	if !ok {
		*dst = fallback
		return d
	}
	t, err := conv(v)
	if err != nil {
		return d.fail(prefixError(key, err))
	}
	*dst = t
	return d
}

// BindOptional is Bind without a fallback: a missing key leaves dst nil,
// recording plain absence rather than an error. Conversion failures behave
// as in BindDefault.
func BindOptional[T any](d Decoder, dst **T, key string, conv func(Value) (T, error)) Decoder {
	if d.err != nil {
		return d
	}
	v, ok := d.src.Get(key)
	if !ok {
		*dst = nil
		return d
	}
	t, err := conv(v)
	if err != nil {
		return d.fail(prefixError(key, err))
	}
	*dst = &t
	return d
}

// Result terminates a chain: the accumulated error if one exists, otherwise
// the value produced by build.
func Result[T any](d Decoder, build func() T) (T, error) {
	if d.err != nil {
		var zero T
		return zero, *d.err
	}
	return build(), nil
}
