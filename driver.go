package jsonval

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// JSONDriver converts JSON text into the generic any tree consumed by
// ValueOf. The default implementation is backed by goccy/go-json and may be
// swapped with SetJSONDriver (for example to use encoding/json or json/v2).
//
// The any tree carries objects as unordered maps, so parsed documents come
// out with sorted keys; document key order survives only through hand-built
// ObjectOf values.
type JSONDriver interface {
	Name() string
	Decode(data []byte) (any, error)
	DecodeReader(r io.Reader) (any, error)
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the goccy/go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) Name() string { return "go-json" }

func (d goJSONDriver) Decode(data []byte) (any, error) {
	return d.DecodeReader(bytes.NewReader(data))
}

func (goJSONDriver) DecodeReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber() // preserve lexical numbers; precision loss is the caller's call
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseJSON decodes JSON text into a Value using the current driver.
func ParseJSON(data []byte) (Value, error) {
	v, err := getJSONDriver().Decode(data)
	if err != nil {
		return Value{}, err
	}
	return ValueOf(v), nil
}

// ParseJSONReader decodes a JSON stream into a Value using the current
// driver.
func ParseJSONReader(r io.Reader) (Value, error) {
	v, err := getJSONDriver().DecodeReader(r)
	if err != nil {
		return Value{}, err
	}
	return ValueOf(v), nil
}

// EncodeJSON renders a Value as JSON text, preserving object key order.
func EncodeJSON(v Value) ([]byte, error) {
	return v.MarshalJSON()
}

// MarshalJSON implements json.Marshaler. Objects serialize their keys in the
// preserved order; boolean-origin numbers serialize as true/false.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := appendJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler using the current driver.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func appendJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		b, err := gojson.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindNumber:
		if v.isBool {
			if v.num != "0" {
				buf.WriteString("true")
			} else {
				buf.WriteString("false")
			}
			return nil
		}
		if v.num == "" {
			buf.WriteString("0")
			return nil
		}
		buf.WriteString(string(v.num))
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		if v.obj != nil {
			for i, k := range v.obj.keys {
				if i > 0 {
					buf.WriteByte(',')
				}
				kb, err := gojson.Marshal(k)
				if err != nil {
					return err
				}
				buf.Write(kb)
				buf.WriteByte(':')
				if err := appendJSON(buf, v.obj.m[k]); err != nil {
					return err
				}
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
