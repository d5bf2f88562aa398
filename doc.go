/*
Package n64 provides a 64-bit integer type (N64) that carries its value as a
pair of 32-bit words and a signedness tag. Every operation is defined in terms
of 32-bit word arithmetic, so results are bit-for-bit identical to Go's native
int64 and uint64 arithmetic (wrapping on overflow) while never relying on a
64-bit intermediate.

N64 is a value type; all operations return new values. Each operation also has
an *Assign form that mutates its receiver and returns it, for chaining:

	var n = n64.U64FromInt32(10)
	n.MulAssign(n64.U64FromInt32(3)).AddNAssign(1)
	fmt.Println(n)
	// Output: 31

The signedness tag decides how a bit pattern is interpreted: the same
pattern 0xffffffffffffffff is -1 when signed and 18446744073709551615 when
unsigned. The tag affects division, modulo, right shifts, comparison,
stringification and float conversion. Binary operations always produce a
result with the receiver's tag.

N64 values can be created from a variety of sources:

	U64FromBits(hi, lo uint32) N64
	U64FromInt32(v int32) N64
	U64From64(v uint64) N64
	U64From[T constraints.Integer](v T) N64
	U64FromFloat64(f float64) (N64, error)
	U64FromString(s string, base int) (out N64, accurate bool, err error)
	U64FromLittleEndian(b []byte) (N64, error)
	U64FromBigEndian(b []byte) (N64, error)

Each has a signed I64... counterpart.

N64 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

The default build emulates the word operations. Building with '-tags
n64native' swaps the word primitives for native uint64 arithmetic; the two
backends are interchangeable.
*/
package n64
