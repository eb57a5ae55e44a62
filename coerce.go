package jsonval

import (
	"math"
	"strconv"
)

// AsString coerces v to a string. Strings return themselves; numbers format
// to their canonical lexical form (booleans as "1"/"0"). Other shapes report
// absence.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return string(v.num), true
	}
	return "", false
}

// AsInt64 coerces v to an int64. Numbers and numeric strings parse when the
// value is integral and representable; everything else reports absence.
func (v Value) AsInt64() (int64, bool) {
	s, ok := v.numericText()
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsUint64 coerces v to a uint64 under the same rules as AsInt64, rejecting
// negative values.
func (v Value) AsUint64() (uint64, bool) {
	s, ok := v.numericText()
	if !ok {
		return 0, false
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

// AsFloat64 coerces v to a float64. Numbers and numeric strings parse;
// everything else reports absence.
func (v Value) AsFloat64() (float64, bool) {
	s, ok := v.numericText()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsFloat32 coerces v to a float32, rejecting finite values that overflow the
// float32 range.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.AsFloat64()
	if !ok {
		return 0, false
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

// AsBool coerces v to a bool. Numbers apply zero/nonzero truthiness; strings
// must parse as an integer and apply the same rule. Other shapes report
// absence.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindNumber:
		f, ok := v.AsFloat64()
		if !ok {
			return false, false
		}
		return f != 0, true
	case KindString:
		i, err := strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return false, false
		}
		return i != 0, true
	}
	return false, false
}

// AsArray returns the elements of an array Value. The returned slice is
// shared and must be treated as read-only.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns an order-preserving read-only view of an object Value.
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return Object{}, false
	}
	return Object{o: v.obj}, true
}

func (v Value) numericText() (string, bool) {
	switch v.kind {
	case KindNumber:
		return string(v.num), true
	case KindString:
		return v.str, true
	}
	return "", false
}
