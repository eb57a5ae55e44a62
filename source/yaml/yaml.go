// Package yaml converts YAML documents to and from jsonval Values through
// the same generic-tree boundary the JSON driver uses.
package yaml

import (
	"bytes"
	"errors"
	"io"

	jsonval "github.com/hikarin-io/jsonval"
	yamlv3 "gopkg.in/yaml.v3"
)

// Parse decodes a single YAML document into a Value.
func Parse(data []byte) (jsonval.Value, error) {
	var node any
	if err := yamlv3.Unmarshal(data, &node); err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.ValueOf(node), nil
}

// ParseAll decodes a multi-document YAML stream into one Value per document.
func ParseAll(data []byte) ([]jsonval.Value, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	var out []jsonval.Value
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		out = append(out, jsonval.ValueOf(node))
	}
	return out, nil
}

// Encode renders a Value as YAML. Numbers materialize as int64/float64 and
// boolean-origin numbers as bool so the emitter does not quote them.
func Encode(v jsonval.Value) ([]byte, error) {
	return yamlv3.Marshal(v.Native())
}
