package cbor_test

import (
	"testing"

	cborv2 "github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	jsonval "github.com/hikarin-io/jsonval"
	cborsrc "github.com/hikarin-io/jsonval/source/cbor"
)

func TestParse(t *testing.T) {
	raw, err := cborv2.Marshal(map[string]any{
		"title": "s",
		"count": 3,
		"ratio": 1.5,
		"ok":    true,
		"items": []any{"a", "b"},
	})
	require.NoError(t, err)

	v, err := cborsrc.Parse(raw)
	require.NoError(t, err)

	title, _ := v.Get("title").AsString()
	require.Equal(t, "s", title)
	count, _ := v.Get("count").AsInt64()
	require.Equal(t, int64(3), count)
	ratio, _ := v.Get("ratio").AsFloat64()
	require.Equal(t, 1.5, ratio)
	ok, _ := v.Get("ok").AsBool()
	require.True(t, ok)
	require.Equal(t, 2, v.Get("items").Len())
}

func TestParse_Malformed(t *testing.T) {
	_, err := cborsrc.Parse([]byte{0xff, 0x00})
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	v := jsonval.ObjectOf(
		jsonval.F("name", jsonval.String("x")),
		jsonval.F("n", jsonval.Int(-9)),
		jsonval.F("u", jsonval.Uint(9)),
		jsonval.F("f", jsonval.Float(2.5)),
		jsonval.F("ok", jsonval.Bool(false)),
		jsonval.F("nul", jsonval.Null()),
		jsonval.F("arr", jsonval.Array(jsonval.Int(1), jsonval.String("2"))),
	)
	raw, err := cborsrc.Encode(v)
	require.NoError(t, err)

	again, err := cborsrc.Parse(raw)
	require.NoError(t, err)
	require.True(t, v.Equal(again))
}

func TestByteStringsClassifyAsNull(t *testing.T) {
	raw, err := cborv2.Marshal(map[string]any{"blob": []byte{1, 2, 3}})
	require.NoError(t, err)

	v, err := cborsrc.Parse(raw)
	require.NoError(t, err)

	blob, present := v.Lookup("blob")
	require.True(t, present)
	require.Equal(t, jsonval.KindNull, blob.Kind())
}
