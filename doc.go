// Package jsonval provides a JSON value model and a declarative
// decode-binding engine.
//
// Value is an immutable tagged union over a parsed JSON tree with total,
// type-coercing accessors: a shape mismatch yields absence, never an error.
// Decoder chains field bindings over an object-shaped Value; each bind
// extracts, converts and stores one field, and the first failure condemns
// the chain, carrying a DecodeError whose path pinpoints the offending field
// ("leafs[1].timestamp") no matter how deeply binds nest.
//
// Target types participate through one of two capabilities: Decodable
// constructs a fresh instance from a Value, MutableDecodable refreshes an
// existing one in place. Generic entry points (Decode, DecodeArray,
// DecodeMap and the *Into forms) compose either capability with the
// collection helpers.
//
// Parsing bytes is delegated to a pluggable JSON driver (goccy/go-json by
// default); YAML, CBOR and MessagePack front ends live under source/.
// Decoding is a pure tree transform with no I/O, logging or shared state;
// independent decodes are safe to run concurrently.
package jsonval
