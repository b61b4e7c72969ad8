package jsonval

import (
	gojson "github.com/goccy/go-json"

	"github.com/andreyvit/nonfinite"
)

var (
	_ gojson.Marshaler   = Float64[nonfinite.StandardSentinels](0)
	_ gojson.Unmarshaler = (*Float64[nonfinite.StandardSentinels])(nil)
	_ gojson.Marshaler   = Float32[nonfinite.StandardSentinels](0)
	_ gojson.Unmarshaler = (*Float32[nonfinite.StandardSentinels])(nil)
)

// Float64 is a float64 struct field that serializes non-finite values using
// P's sentinel strings. Declaring the field type is the entire opt-in.
type Float64[P nonfinite.Sentinels] float64

func (f Float64[P]) MarshalJSON() ([]byte, error) {
	var enc Encoder
	if err := (nonfinite.FloatCodec[float64, P]{}).EncodeValue(&enc, float64(f)); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

func (f *Float64[P]) UnmarshalJSON(data []byte) error {
	v, err := (nonfinite.FloatCodec[float64, P]{}).DecodeValue(NewDecoder(data, ""))
	if err != nil {
		return err
	}
	*f = Float64[P](v)
	return nil
}

// Float32 is the single-precision counterpart of Float64.
type Float32[P nonfinite.Sentinels] float32

func (f Float32[P]) MarshalJSON() ([]byte, error) {
	var enc Encoder
	if err := (nonfinite.FloatCodec[float32, P]{}).EncodeValue(&enc, float32(f)); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

func (f *Float32[P]) UnmarshalJSON(data []byte) error {
	v, err := (nonfinite.FloatCodec[float32, P]{}).DecodeValue(NewDecoder(data, ""))
	if err != nil {
		return err
	}
	*f = Float32[P](v)
	return nil
}
