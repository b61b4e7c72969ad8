package nonfinite

// Sentinels supplies the three strings that stand in for non-finite float
// values in a format without native tokens for them. Implementations are
// zero-sized structs selected as a type parameter on the codec, so the
// strings are fixed at compile time and read with no runtime indirection.
//
// The three strings are expected to be distinct and to never collide with
// valid numeric text in the host format; neither is validated. If two
// accessors return the same string, decoding resolves it as the earlier
// kind in the order positive infinity, negative infinity, NaN.
type Sentinels interface {
	PositiveInfinity() string
	NegativeInfinity() string
	NaN() string
}

// StandardSentinels is the convention most JSON ecosystems use.
type StandardSentinels struct{}

func (StandardSentinels) PositiveInfinity() string { return "Infinity" }
func (StandardSentinels) NegativeInfinity() string { return "-Infinity" }
func (StandardSentinels) NaN() string              { return "NaN" }

// GoSentinels matches the text strconv.FormatFloat produces for non-finite
// values.
type GoSentinels struct{}

func (GoSentinels) PositiveInfinity() string { return "+Inf" }
func (GoSentinels) NegativeInfinity() string { return "-Inf" }
func (GoSentinels) NaN() string              { return "NaN" }
