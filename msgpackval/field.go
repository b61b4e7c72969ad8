package msgpackval

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/andreyvit/nonfinite"
)

var (
	_ msgpack.CustomEncoder = Float64[nonfinite.StandardSentinels](0)
	_ msgpack.CustomDecoder = (*Float64[nonfinite.StandardSentinels])(nil)
	_ msgpack.CustomEncoder = Float32[nonfinite.StandardSentinels](0)
	_ msgpack.CustomDecoder = (*Float32[nonfinite.StandardSentinels])(nil)
)

// Float64 is a float64 struct field that serializes non-finite values using
// P's sentinel strings. Declaring the field type is the entire opt-in.
type Float64[P nonfinite.Sentinels] float64

func (f Float64[P]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return (nonfinite.FloatCodec[float64, P]{}).EncodeValue(NewEncoder(enc), float64(f))
}

func (f *Float64[P]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := (nonfinite.FloatCodec[float64, P]{}).DecodeValue(NewDecoder(dec, ""))
	if err != nil {
		return err
	}
	*f = Float64[P](v)
	return nil
}

// Float32 is the single-precision counterpart of Float64.
type Float32[P nonfinite.Sentinels] float32

func (f Float32[P]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return (nonfinite.FloatCodec[float32, P]{}).EncodeValue(NewEncoder(enc), float32(f))
}

func (f *Float32[P]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := (nonfinite.FloatCodec[float32, P]{}).DecodeValue(NewDecoder(dec, ""))
	if err != nil {
		return err
	}
	*f = Float32[P](v)
	return nil
}
