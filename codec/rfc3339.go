package codec

import (
	"time"

	jsonval "github.com/hikarin-io/jsonval"
)

// TimeRFC3339 decodes an RFC3339 timestamp string into a time.Time.
// RFC3339Nano is accepted first so sub-second precision survives.
func TimeRFC3339(v jsonval.Value) (time.Time, error) {
	s, ok := v.AsString()
	if !ok {
		return time.Time{}, jsonval.DecodeError{Kind: jsonval.InvalidType}
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, jsonval.DecodeError{Kind: jsonval.InvalidType, Cause: err}
	}
	return t, nil
}

// FormatRFC3339 renders t in the canonical form emitted by this package:
// UTC, RFC3339Nano (Go trims trailing zeros).
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
