// Package msgpackval adapts MessagePack streams to the nonfinite host
// cursor contracts, for schemas that carry sentinel strings through
// msgpack (typically data transcoded from JSON).
package msgpackval

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Decoder reads the next msgpack value as a nonfinite.Decoder.
type Decoder struct {
	dec  *msgpack.Decoder
	path string
}

// NewDecoder positions a cursor over the next value of dec. path is
// reported in decode errors and may be empty.
func NewDecoder(dec *msgpack.Decoder, path string) *Decoder {
	return &Decoder{dec: dec, path: path}
}

// ReadString reports false when the next value is not a msgpack string.
// An unreadable stream also reports false; its error surfaces unchanged
// from the ReadFloat call that follows.
func (d *Decoder) ReadString() (string, bool) {
	c, err := d.dec.PeekCode()
	if err != nil || !msgpcode.IsString(c) {
		return "", false
	}
	s, err := d.dec.DecodeString()
	if err != nil {
		return "", false
	}
	return s, true
}

func (d *Decoder) ReadFloat(bitSize int) (float64, error) {
	if bitSize == 32 {
		f, err := d.dec.DecodeFloat32()
		return float64(f), err
	}
	return d.dec.DecodeFloat64()
}

func (d *Decoder) Path() string {
	return d.path
}

// Encoder writes one msgpack value, as a nonfinite.Encoder.
type Encoder struct {
	enc *msgpack.Encoder
}

func NewEncoder(enc *msgpack.Encoder) *Encoder {
	return &Encoder{enc: enc}
}

func (e *Encoder) WriteString(s string) error {
	return e.enc.EncodeString(s)
}

func (e *Encoder) WriteFloat(f float64, bitSize int) error {
	if bitSize == 32 {
		return e.enc.EncodeFloat32(float32(f))
	}
	return e.enc.EncodeFloat64(f)
}
