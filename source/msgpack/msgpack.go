// Package msgpack converts MessagePack payloads to and from jsonval Values.
package msgpack

import (
	jsonval "github.com/hikarin-io/jsonval"
	msgpackv5 "github.com/vmihailenco/msgpack/v5"
)

// Parse decodes a MessagePack payload into a Value.
func Parse(data []byte) (jsonval.Value, error) {
	var v any
	if err := msgpackv5.Unmarshal(data, &v); err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.ValueOf(v), nil
}

// Encode renders a Value as MessagePack.
func Encode(v jsonval.Value) ([]byte, error) {
	return msgpackv5.Marshal(v.Native())
}
