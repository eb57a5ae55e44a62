package jsonval

import (
	"encoding/json"
	"strconv"
)

// Kind enumerates the variants of the Value tagged union.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged union over a JSON document fragment.
// The zero value is Null. Accessors are total: a shape mismatch yields the
// type's absence form (Null for navigation, ok=false for coercion), never an
// error. Failure classification belongs to the Decoder layer, which has path
// context.
//
// JSON booleans are represented as numbers (numeric text "1"/"0") whose
// boolean origin is retained, so serialization round-trips true/false
// losslessly while all numeric coercions see 1/0.
type Value struct {
	kind   Kind
	str    string
	num    json.Number
	isBool bool
	arr    []Value
	obj    *object
}

type object struct {
	keys []string
	m    map[string]Value
}

// Null returns the null Value. A key mapped to Null is a present entry and is
// never conflated with a missing key.
func Null() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a number Value from its lexical JSON form.
func Number(n json.Number) Value {
	if n == "" {
		n = "0"
	}
	return Value{kind: KindNumber, num: n}
}

// Int returns a number Value holding i.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}
}

// Uint returns a number Value holding u.
func Uint(u uint64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatUint(u, 10))}
}

// Float returns a number Value holding f, using the shortest JSON-compatible
// representation.
func Float(f float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// Bool returns a number Value carrying boolean truthiness (1 or 0) with its
// boolean origin retained for serialization.
func Bool(b bool) Value {
	n := json.Number("0")
	if b {
		n = "1"
	}
	return Value{kind: KindNumber, num: n, isBool: true}
}

// Array returns an array Value over a copy of elems.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// Field is a single key/value entry used by ObjectOf.
type Field struct {
	Key   string
	Value Value
}

// F is shorthand for constructing a Field.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// ObjectOf returns an object Value whose keys keep the given order. A repeated
// key overwrites the earlier value but keeps its original position.
func ObjectOf(fields ...Field) Value {
	o := &object{m: make(map[string]Value, len(fields))}
	for _, f := range fields {
		if _, dup := o.m[f.Key]; !dup {
			o.keys = append(o.keys, f.Key)
		}
		o.m[f.Key] = f.Value
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsBool reports whether v is a number that originated from a boolean.
func (v Value) IsBool() bool { return v.kind == KindNumber && v.isBool }

// Get returns the child Value under key. Non-objects and missing keys yield
// Null; use Lookup when absence must be distinguished from a null entry.
func (v Value) Get(key string) Value {
	child, _ := v.Lookup(key)
	return child
}

// Lookup returns the child Value under key and whether the key is present.
// Non-objects report absence.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindObject || v.obj == nil {
		return Value{}, false
	}
	child, ok := v.obj.m[key]
	return child, ok
}

// Index returns the i-th element of an array Value. Out-of-range indexes and
// non-arrays yield Null.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Len reports the number of entries for objects and arrays, 0 for Null and 1
// for any other scalar.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		if v.obj == nil {
			return 0
		}
		return len(v.obj.keys)
	case KindArray:
		return len(v.arr)
	case KindNull:
		return 0
	default:
		return 1
	}
}

// Equal reports structural equality: objects by key/value set, arrays by
// order, numbers by numeric value (boolean origin must match).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		if v.isBool != o.isBool {
			return false
		}
		if v.num == o.num {
			return true
		}
		a, aok := v.AsFloat64()
		b, bok := o.AsFloat64()
		return aok && bok && a == b
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.Len() != o.Len() {
			return false
		}
		if v.obj == nil {
			return true
		}
		for _, k := range v.obj.keys {
			ov, ok := o.Lookup(k)
			if !ok || !v.obj.m[k].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Object is a read-only, order-preserving view of an object Value. The zero
// Object is empty.
type Object struct {
	o *object
}

// Len reports the number of entries.
func (o Object) Len() int {
	if o.o == nil {
		return 0
	}
	return len(o.o.keys)
}

// Keys returns the entry keys in their preserved order.
func (o Object) Keys() []string {
	if o.o == nil {
		return nil
	}
	return append([]string(nil), o.o.keys...)
}

// Get returns the Value under key and whether the key is present.
func (o Object) Get(key string) (Value, bool) {
	if o.o == nil {
		return Value{}, false
	}
	v, ok := o.o.m[key]
	return v, ok
}

// Value returns the Value under key, or Null when absent.
func (o Object) Value(key string) Value {
	v, _ := o.Get(key)
	return v
}

// Map returns a fresh key-to-Value map of the entries.
func (o Object) Map() map[string]Value {
	if o.o == nil {
		return map[string]Value{}
	}
	out := make(map[string]Value, len(o.o.m))
	for k, v := range o.o.m {
		out[k] = v
	}
	return out
}
