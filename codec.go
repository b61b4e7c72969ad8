package nonfinite

import (
	"math"
	"strconv"
)

type FloatValue interface {
	float32 | float64
}

// Decoder is the host format's read cursor, positioned at a single value.
type Decoder interface {
	// ReadString probes the current token as a string. It reports false
	// when the token is not string-shaped; a type mismatch must not be
	// fatal.
	ReadString() (string, bool)

	// ReadFloat reads the current token as a native numeric literal.
	// bitSize is 32 or 64, as in strconv.
	ReadFloat(bitSize int) (float64, error)

	// Path identifies the cursor position; used in error messages only.
	Path() string
}

// Encoder is the host format's write cursor, positioned at a single value.
type Encoder interface {
	WriteString(s string) error
	WriteFloat(f float64, bitSize int) error
}

func floatBitSize[W FloatValue]() int {
	if _, ok := any(W(0)).(float32); ok {
		return 32
	}
	return 64
}

func floatName[W FloatValue]() string {
	if floatBitSize[W]() == 32 {
		return "float32"
	}
	return "float64"
}

// FloatDecoder reads a float of width W, recognizing P's sentinel strings
// as the non-finite values they stand in for.
type FloatDecoder[W FloatValue, P Sentinels] struct{}

func (FloatDecoder[W, P]) DecodeValue(dec Decoder) (W, error) {
	s, ok := dec.ReadString()
	if !ok {
		f, err := dec.ReadFloat(floatBitSize[W]())
		return W(f), err
	}
	var p P
	switch s {
	case p.PositiveInfinity():
		return W(math.Inf(1)), nil
	case p.NegativeInfinity():
		return W(math.Inf(-1)), nil
	case p.NaN():
		return W(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(s, floatBitSize[W]())
	if err != nil {
		return 0, valueNotFoundErrf(dec.Path(), "expected %s, got unparseable string %q", floatName[W](), s)
	}
	return W(f), nil
}

// FloatEncoder writes a float of width W, substituting P's sentinel strings
// for non-finite values.
type FloatEncoder[W FloatValue, P Sentinels] struct{}

func (FloatEncoder[W, P]) EncodeValue(enc Encoder, value W) error {
	var p P
	f := float64(value)
	switch {
	case math.IsNaN(f):
		return enc.WriteString(p.NaN())
	case math.IsInf(f, 1):
		return enc.WriteString(p.PositiveInfinity())
	case math.IsInf(f, -1):
		return enc.WriteString(p.NegativeInfinity())
	default:
		return enc.WriteFloat(f, floatBitSize[W]())
	}
}

// FloatCodec combines the two strategies behind one name, for hosts that
// bind a single symbol per field.
type FloatCodec[W FloatValue, P Sentinels] struct {
	FloatDecoder[W, P]
	FloatEncoder[W, P]
}
