package msgpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	msgpackv5 "github.com/vmihailenco/msgpack/v5"

	jsonval "github.com/hikarin-io/jsonval"
	msgpacksrc "github.com/hikarin-io/jsonval/source/msgpack"
)

func TestParse(t *testing.T) {
	raw, err := msgpackv5.Marshal(map[string]any{
		"title": "s",
		"count": 3,
		"ratio": 1.5,
		"ok":    true,
		"items": []any{"a", "b"},
	})
	require.NoError(t, err)

	v, err := msgpacksrc.Parse(raw)
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
	_, err := msgpacksrc.Parse([]byte{0xc1})
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	v := jsonval.ObjectOf(
		jsonval.F("name", jsonval.String("x")),
		jsonval.F("n", jsonval.Int(-9)),
		jsonval.F("f", jsonval.Float(2.5)),
		jsonval.F("ok", jsonval.Bool(true)),
		jsonval.F("nul", jsonval.Null()),
		jsonval.F("arr", jsonval.Array(jsonval.Int(1), jsonval.String("2"))),
	)
	raw, err := msgpacksrc.Encode(v)
	require.NoError(t, err)

	again, err := msgpacksrc.Parse(raw)
	require.NoError(t, err)
	require.True(t, v.Equal(again))
}
