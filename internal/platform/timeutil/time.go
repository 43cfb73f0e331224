package timeutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

const (
	// RFC3339Millis is RFC 3339 with fixed millisecond precision.
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
	// RFC3339Micros is RFC 3339 with fixed microsecond precision.
	RFC3339Micros = "2006-01-02T15:04:05.000000Z07:00"
)

// tagDateTime is CBOR tag 0, a standard date/time text string (RFC 8949 3.4.1).
const tagDateTime = 0

// Time serializes as a UTC RFC 3339 string with millisecond precision in
// both JSON and CBOR.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func Now() Time {
	return Time{Time: time.Now()}
}

func (t Time) String() string {
	return t.UTC().Format(RFC3339Millis)
}

func parse(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return ts, nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts any RFC 3339 string. JSON null leaves t unchanged.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	ts, err := parse(s)
	if err != nil {
		return err
	}
	t.Time = ts
	return nil
}

// MarshalCBOR writes tag 0 wrapping the text form.
func (t Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{Number: tagDateTime, Content: t.String()})
}

// UnmarshalCBOR accepts a tag 0 date/time string or a bare text string.
func (t *Time) UnmarshalCBOR(data []byte) error {
	var raw cbor.RawTag
	if err := cbor.Unmarshal(data, &raw); err == nil {
		if raw.Number != tagDateTime {
			return fmt.Errorf("unexpected CBOR tag %d for time", raw.Number)
		}
		data = raw.Content
	}

	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a CBOR text string: %w", err)
	}
	ts, err := parse(s)
	if err != nil {
		return err
	}
	t.Time = ts
	return nil
}
