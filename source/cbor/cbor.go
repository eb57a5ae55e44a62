// Package cbor converts CBOR payloads to and from jsonval Values.
package cbor

import (
	"reflect"

	cborv2 "github.com/fxamacker/cbor/v2"
	jsonval "github.com/hikarin-io/jsonval"
)

// decMode decodes untyped maps as map[string]any so the generic tree matches
// what the JSON and YAML front ends produce.
var decMode cborv2.DecMode

func init() {
	dm, err := (cborv2.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}).DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// Parse decodes a CBOR payload into a Value. Scalars a JSON tree cannot
// carry (byte strings, tags) classify as Null per the total-classification
// rule.
func Parse(data []byte) (jsonval.Value, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.ValueOf(v), nil
}

// Encode renders a Value as CBOR using the library's preferred encoding.
func Encode(v jsonval.Value) ([]byte, error) {
	return cborv2.Marshal(v.Native())
}
