// Package jsonval adapts JSON values to the nonfinite host cursor
// contracts, backed by github.com/goccy/go-json.
package jsonval

import (
	gojson "github.com/goccy/go-json"
)

// Decoder reads one raw JSON value as a nonfinite.Decoder.
type Decoder struct {
	data []byte
	path string
}

// NewDecoder positions a cursor over a single raw JSON value. path is
// reported in decode errors and may be empty.
func NewDecoder(data []byte, path string) *Decoder {
	return &Decoder{data: data, path: path}
}

func (d *Decoder) ReadString() (string, bool) {
	b, ok := firstToken(d.data)
	if !ok || b != '"' {
		return "", false
	}
	var s string
	if err := gojson.Unmarshal(d.data, &s); err != nil {
		return "", false
	}
	return s, true
}

func (d *Decoder) ReadFloat(bitSize int) (float64, error) {
	if bitSize == 32 {
		var f float32
		err := gojson.Unmarshal(d.data, &f)
		return float64(f), err
	}
	var f float64
	err := gojson.Unmarshal(d.data, &f)
	return f, err
}

func (d *Decoder) Path() string {
	return d.path
}

func firstToken(data []byte) (byte, bool) {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, true
	}
	return 0, false
}

// Encoder appends one JSON value to a buffer, as a nonfinite.Encoder.
type Encoder struct {
	buf []byte
}

func (e *Encoder) WriteString(s string) error {
	b, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

func (e *Encoder) WriteFloat(f float64, bitSize int) error {
	var v any = f
	if bitSize == 32 {
		v = float32(f)
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

// Bytes returns the value written so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}
