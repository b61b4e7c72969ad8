/*
Package nonfinite reads and writes floating-point values through structured
formats whose grammar has no token for NaN, +Inf or -Inf.

Formats like JSON only have numeric literals, so producers substitute fixed
strings for the three non-finite states, but the exact strings vary by
ecosystem (“Infinity” vs “+Inf” vs “inf”). This package lets the schema
owner declare which strings a given schema uses, and substitutes between
those strings and the in-memory values transparently in both directions.

We implement:

1. Sentinels, a compile-time contract supplying the three strings for a
schema. Built-in sets cover the common JSON convention (StandardSentinels)
and Go's strconv text (GoSentinels); declare your own zero-sized struct for
anything else.

2. FloatDecoder and FloatEncoder, the per-direction strategies, generic over
the float width and the sentinel set.

3. FloatCodec, combining both strategies behind one name so a host framework
can bind a single symbol per field.

Host formats plug in through the small Decoder and Encoder cursor contracts.
The jsonval and msgpackval subpackages adapt JSON and MessagePack, including
field wrapper types that hook into the respective frameworks' marshaling
interfaces.

# Technical Details

**Decoding.**
A string token is first compared against the three sentinels (positive
infinity, then negative infinity, then NaN); a match short-circuits. A
non-sentinel string falls back to standard numeric parsing at the field's
width, and a string that parses as neither fails with ValueNotFoundError.
A token that is not a string at all is read as a native number, with the
host's errors passed through untouched.

**Encoding.**
NaN, +Inf and -Inf (in that order) are written as their sentinel strings;
every finite value, including negative zero, goes through the host's native
numeric encoding.

**No state.**
Codec values are zero-sized and sentinel strings are fixed at compile time,
so any number of calls may run concurrently without synchronization.
*/
package nonfinite
