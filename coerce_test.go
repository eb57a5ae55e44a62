package jsonval_test

import (
	"testing"

	jsonval "github.com/hikarin-io/jsonval"
)

func TestCoerce_StringNumberInterchange(t *testing.T) {
	// numeric string parses to a number
	if i, ok := jsonval.String("42").AsInt64(); !ok || i != 42 {
		t.Fatalf(`AsInt64("42") = %d, %v`, i, ok)
	}
	if f, ok := jsonval.String("2.5").AsFloat64(); !ok || f != 2.5 {
		t.Fatalf(`AsFloat64("2.5") = %v, %v`, f, ok)
	}
	// a number formats to its canonical string
	if s, ok := jsonval.Int(42).AsString(); !ok || s != "42" {
		t.Fatalf(`AsString(42) = %q, %v`, s, ok)
	}
	if s, ok := jsonval.Float(2.5).AsString(); !ok || s != "2.5" {
		t.Fatalf(`AsString(2.5) = %q, %v`, s, ok)
	}
	// non-numeric strings do not parse
	if _, ok := jsonval.String("nope").AsInt64(); ok {
		t.Fatalf(`AsInt64("nope") should report absence`)
	}
}

func TestCoerce_IntegralFloatsAndRanges(t *testing.T) {
	if i, ok := jsonval.Float(3).AsInt64(); !ok || i != 3 {
		t.Fatalf("AsInt64(3.0) = %d, %v", i, ok)
	}
	if _, ok := jsonval.Float(3.5).AsInt64(); ok {
		t.Fatalf("AsInt64(3.5) should report absence")
	}
	if _, ok := jsonval.Int(-1).AsUint64(); ok {
		t.Fatalf("AsUint64(-1) should report absence")
	}
	if u, ok := jsonval.Uint(18446744073709551615).AsUint64(); !ok || u != 18446744073709551615 {
		t.Fatalf("AsUint64(max) = %d, %v", u, ok)
	}
	if _, ok := jsonval.Float(1e40).AsFloat32(); ok {
		t.Fatalf("AsFloat32(1e40) should report absence")
	}
	if f, ok := jsonval.Float(1.5).AsFloat32(); !ok || f != 1.5 {
		t.Fatalf("AsFloat32(1.5) = %v, %v", f, ok)
	}
}

func TestCoerce_BoolTruthiness(t *testing.T) {
	cases := []struct {
		v    jsonval.Value
		want bool
		ok   bool
	}{
		{jsonval.Int(0), false, true},
		{jsonval.Int(7), true, true},
		{jsonval.Float(0.5), true, true},
		{jsonval.Bool(true), true, true},
		{jsonval.Bool(false), false, true},
		{jsonval.String("0"), false, true},
		{jsonval.String("-3"), true, true},
		{jsonval.String("true"), false, false}, // strings must parse as integers
		{jsonval.Null(), false, false},
		{jsonval.Array(), false, false},
	}
	for i, tc := range cases {
		got, ok := tc.v.AsBool()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("case %d: AsBool = %v, %v; want %v, %v", i, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerce_BoolAsNumber(t *testing.T) {
	if i, ok := jsonval.Bool(true).AsInt64(); !ok || i != 1 {
		t.Fatalf("AsInt64(true) = %d, %v", i, ok)
	}
	if f, ok := jsonval.Bool(false).AsFloat64(); !ok || f != 0 {
		t.Fatalf("AsFloat64(false) = %v, %v", f, ok)
	}
	if s, ok := jsonval.Bool(true).AsString(); !ok || s != "1" {
		t.Fatalf("AsString(true) = %q, %v", s, ok)
	}
}

func TestCoerce_ShapeMismatchIsAbsenceNotError(t *testing.T) {
	v := jsonval.Array(jsonval.Int(1))
	if _, ok := v.AsString(); ok {
		t.Fatalf("array should not coerce to string")
	}
	if _, ok := v.AsObject(); ok {
		t.Fatalf("array should not coerce to object")
	}
	if _, ok := jsonval.Null().AsInt64(); ok {
		t.Fatalf("null should not coerce to int")
	}
	if arr, ok := v.AsArray(); !ok || len(arr) != 1 {
		t.Fatalf("AsArray = %v, %v", arr, ok)
	}
}
