package jsonval

import (
	"encoding/json"
	"sort"
)

// ValueOf classifies a parser-produced generic tree (nested maps, slices,
// scalars, nil) into the Value tagged union. The classification is total:
// unrecognized native types become Null. Map entries are sorted by key so
// that serialization of map-built objects is deterministic.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case json.Number:
		return Number(t)
	case float64:
		return Float(t)
	case float32:
		return Float(float64(t))
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Uint(uint64(t))
	case uint16:
		return Uint(uint64(t))
	case uint32:
		return Uint(uint64(t))
	case uint64:
		return Uint(t)
	case []Value:
		return Array(t...)
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = ValueOf(e)
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]Value:
		return objectFromValueMap(t)
	case map[string]any:
		return objectFromAnyMap(t)
	case map[any]any:
		// Some binary decoders produce interface-keyed maps; keep the
		// string-keyed entries and drop the rest.
		m := make(map[string]any, len(t))
		for k, val := range t {
			if ks, ok := k.(string); ok {
				m[ks] = val
			}
		}
		return objectFromAnyMap(m)
	default:
		return Value{}
	}
}

func objectFromAnyMap(m map[string]any) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := &object{keys: keys, m: make(map[string]Value, len(m))}
	for _, k := range keys {
		o.m[k] = ValueOf(m[k])
	}
	return Value{kind: KindObject, obj: o}
}

func objectFromValueMap(m map[string]Value) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := &object{keys: keys, m: make(map[string]Value, len(m))}
	for _, k := range keys {
		o.m[k] = m[k]
	}
	return Value{kind: KindObject, obj: o}
}

// Interface projects v back into the generic tree shape consumed by JSON
// writers: nil, string, json.Number, bool, []any and map[string]any. Object
// key order is not representable in a Go map; use MarshalJSON when order
// matters.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindString:
		return v.str
	case KindNumber:
		if v.isBool {
			return v.num != "0"
		}
		return v.num
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		if v.obj == nil {
			return map[string]any{}
		}
		out := make(map[string]any, len(v.obj.m))
		for k, e := range v.obj.m {
			out[k] = e.Interface()
		}
		return out
	}
	return nil
}

// Native is like Interface but materializes numbers as int64 or float64 and
// boolean-origin numbers as bool, which suits writers that do not understand
// json.Number (YAML, CBOR, MessagePack).
func (v Value) Native() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindString:
		return v.str
	case KindNumber:
		if v.isBool {
			return v.num != "0"
		}
		if i, ok := v.AsInt64(); ok {
			return i
		}
		f, _ := v.AsFloat64()
		return f
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Native()
		}
		return out
	case KindObject:
		if v.obj == nil {
			return map[string]any{}
		}
		out := make(map[string]any, len(v.obj.m))
		for k, e := range v.obj.m {
			out[k] = e.Native()
		}
		return out
	}
	return nil
}
