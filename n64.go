package n64

import (
	"fmt"
)

// N64 is a 64-bit integer held as two 32-bit words and a signedness tag. The
// zero value is an unsigned 0.
//
// When signed, the words are read as a two's-complement int64; otherwise as a
// uint64.
type N64 struct {
	hi, lo uint32
	signed bool
}

// Bits is the plain word pair behind an N64, for interchange with code that
// stores the two halves separately.
type Bits struct {
	Hi, Lo uint32
}

func U64FromBits(hi, lo uint32) N64 { return N64{hi: hi, lo: lo} }
func I64FromBits(hi, lo uint32) N64 { return N64{hi: hi, lo: lo, signed: true} }

// FromBits builds an N64 from b with the requested tag.
func FromBits(b Bits, signed bool) N64 { return N64{hi: b.Hi, lo: b.Lo, signed: signed} }

// U64FromInt32 reinterprets v as a uint32; the high word is always zero.
func U64FromInt32(v int32) N64 { return N64{lo: uint32(v)} }

// I64FromInt32 sign-extends v.
func I64FromInt32(v int32) N64 { return N64{hi: uint32(v >> 31), lo: uint32(v), signed: true} }

func U64From64(v uint64) N64 { return N64{hi: uint32(v >> 32), lo: uint32(v)} }
func I64From64(v int64) N64  { return N64{hi: uint32(uint64(v) >> 32), lo: uint32(v), signed: true} }

// small widens an int32 operand for the receiver's tag: sign-extended when
// the receiver is signed, zero-extended otherwise.
func (n N64) small(v int32) N64 {
	if n.signed {
		return I64FromInt32(v)
	}
	return U64FromInt32(v)
}

func (n N64) Raw() (hi, lo uint32) { return n.hi, n.lo }
func (n N64) Bits() Bits           { return Bits{Hi: n.hi, Lo: n.lo} }
func (n N64) Signed() bool         { return n.signed }

// AsSigned reinterprets the bit pattern as a signed value.
func (n N64) AsSigned() N64 { n.signed = true; return n }

// AsUnsigned reinterprets the bit pattern as an unsigned value.
func (n N64) AsUnsigned() N64 { n.signed = false; return n }

func (n N64) AsUint64() uint64 { return uint64(n.hi)<<32 | uint64(n.lo) }
func (n N64) AsInt64() int64   { return int64(n.AsUint64()) }

// AsInt returns the low word only, as an int32 when n is signed or a uint32
// otherwise.
func (n N64) AsInt() int64 {
	if n.signed {
		return int64(int32(n.lo))
	}
	return int64(n.lo)
}

// Set copies the bits and the tag of b into n.
func (n *N64) Set(b N64) *N64 {
	*n = b
	return n
}

// SetBits replaces the words of n, keeping its tag.
func (n *N64) SetBits(hi, lo uint32) *N64 {
	n.hi, n.lo = hi, lo
	return n
}

func (n N64) GoString() string {
	if n.signed {
		return fmt.Sprintf("n64.I64FromBits(%#x, %#x)", n.hi, n.lo)
	}
	return fmt.Sprintf("n64.U64FromBits(%#x, %#x)", n.hi, n.lo)
}

func (n N64) IsZero() bool { return n.hi == 0 && n.lo == 0 }
func (n N64) IsNeg() bool  { return n.signed && n.hi&signBit != 0 }
func (n N64) IsOdd() bool  { return n.lo&1 == 1 }
func (n N64) IsEven() bool { return n.lo&1 == 0 }

// isMin reports whether the pattern is 1<<63, regardless of tag.
func (n N64) isMin() bool { return n.hi == signBit && n.lo == 0 }

// Sign returns -1 if n < 0, 0 if n == 0 and 1 if n > 0.
func (n N64) Sign() int {
	if n.IsZero() {
		return 0
	} else if n.IsNeg() {
		return -1
	}
	return 1
}

// BitLen returns the number of bits required to represent the magnitude of n.
// The signed minimum needs all 64.
func (n N64) BitLen() int {
	a := n.Abs()
	return int(bitLenWords(a.hi, a.lo))
}

func (n N64) ByteLen() int { return (n.BitLen() + 7) / 8 }

// IsSafe reports whether n can be converted to a float64 and back without
// loss, i.e. whether its magnitude is at most MaxSafeInteger.
func (n N64) IsSafe() bool {
	hi := n.hi
	if n.IsNeg() {
		hi = ^hi
		if n.lo == 0 {
			hi++
		}
	}
	return hi&safeHiMask == 0
}

// isSafeMul reports whether the magnitude of n is small enough that any
// product with another such value is exact in a float64.
func isSafeMul(n N64) bool {
	a := n.Abs()
	return a.hi == 0 && a.lo < safeMulLimit
}

func (n *N64) AddAssign(b N64) *N64 {
	n.hi, n.lo = add64(n.hi, n.lo, b.hi, b.lo)
	return n
}

func (n *N64) SubAssign(b N64) *N64 {
	n.hi, n.lo = sub64(n.hi, n.lo, b.hi, b.lo)
	return n
}

func (n *N64) IncAssign() *N64 { return n.AddAssign(N64{lo: 1}) }
func (n *N64) DecAssign() *N64 { return n.SubAssign(N64{lo: 1}) }

func (n *N64) AddNAssign(v int32) *N64 { return n.AddAssign(n.small(v)) }
func (n *N64) SubNAssign(v int32) *N64 { return n.SubAssign(n.small(v)) }

func (n N64) Add(b N64) N64    { return *n.AddAssign(b) }
func (n N64) Sub(b N64) N64    { return *n.SubAssign(b) }
func (n N64) Inc() N64         { return *n.IncAssign() }
func (n N64) Dec() N64         { return *n.DecAssign() }
func (n N64) AddN(v int32) N64 { return *n.AddNAssign(v) }
func (n N64) SubN(v int32) N64 { return *n.SubNAssign(v) }

func (n *N64) MulAssign(b N64) *N64 {
	if !nativeBackend && isSafeMul(*n) && isSafeMul(b) {
		n.setSafeFloat(n.AsFloat64() * b.AsFloat64())
		return n
	}
	n.hi, n.lo = mul64(n.hi, n.lo, b.hi, b.lo)
	return n
}

func (n *N64) MulNAssign(v int32) *N64 { return n.MulAssign(n.small(v)) }
func (n *N64) SqrAssign() *N64         { return n.MulAssign(*n) }

func (n N64) Mul(b N64) N64    { return *n.MulAssign(b) }
func (n N64) MulN(v int32) N64 { return *n.MulNAssign(v) }
func (n N64) Sqr() N64         { return *n.SqrAssign() }

// NegAssign sets n to its two's complement. The signed minimum has no
// positive counterpart and is left as it is.
func (n *N64) NegAssign() *N64 {
	if n.signed && n.isMin() {
		return n
	}
	n.hi, n.lo = negWords(n.hi, n.lo)
	return n
}

func (n *N64) AbsAssign() *N64 {
	if n.IsNeg() {
		n.NegAssign()
	}
	return n
}

func (n N64) Neg() N64 { return *n.NegAssign() }
func (n N64) Abs() N64 { return *n.AbsAssign() }

func (n *N64) AndAssign(b N64) *N64    { n.hi &= b.hi; n.lo &= b.lo; return n }
func (n *N64) OrAssign(b N64) *N64     { n.hi |= b.hi; n.lo |= b.lo; return n }
func (n *N64) XorAssign(b N64) *N64    { n.hi ^= b.hi; n.lo ^= b.lo; return n }
func (n *N64) AndNotAssign(b N64) *N64 { n.hi &^= b.hi; n.lo &^= b.lo; return n }
func (n *N64) NotAssign() *N64         { n.hi, n.lo = ^n.hi, ^n.lo; return n }

func (n *N64) AndNAssign(v int32) *N64 { return n.AndAssign(n.small(v)) }
func (n *N64) OrNAssign(v int32) *N64  { return n.OrAssign(n.small(v)) }
func (n *N64) XorNAssign(v int32) *N64 { return n.XorAssign(n.small(v)) }

func (n N64) And(b N64) N64    { return *n.AndAssign(b) }
func (n N64) Or(b N64) N64     { return *n.OrAssign(b) }
func (n N64) Xor(b N64) N64    { return *n.XorAssign(b) }
func (n N64) AndNot(b N64) N64 { return *n.AndNotAssign(b) }
func (n N64) Not() N64         { return *n.NotAssign() }
func (n N64) AndN(v int32) N64 { return *n.AndNAssign(v) }
func (n N64) OrN(v int32) N64  { return *n.OrNAssign(v) }
func (n N64) XorN(v int32) N64 { return *n.XorNAssign(v) }

// Bit returns the value of the i'th bit of the pattern. i is taken modulo 64.
func (n N64) Bit(i uint) uint {
	return uint(bitWords(n.hi, n.lo, i&63))
}

// SetBitAssign sets the i'th bit of n to 1 if v is non-zero, or clears it
// otherwise. i is taken modulo 64.
func (n *N64) SetBitAssign(i uint, v uint) *N64 {
	mhi, mlo := lshWords(0, 1, i)
	if v != 0 {
		n.hi, n.lo = n.hi|mhi, n.lo|mlo
	} else {
		n.hi, n.lo = n.hi&^mhi, n.lo&^mlo
	}
	return n
}

func (n N64) SetBit(i uint, v uint) N64 { return *n.SetBitAssign(i, v) }

// MaskAssign keeps the low 'bits' bits of n and clears the rest. bits is taken
// modulo 64, so a mask of 0 clears everything.
func (n *N64) MaskAssign(bits uint) *N64 {
	bits &= 63
	if bits == 0 {
		n.hi, n.lo = 0, 0
		return n
	}
	mhi, mlo := urshWords(wordMask, wordMask, 64-bits)
	n.hi, n.lo = n.hi&mhi, n.lo&mlo
	return n
}

func (n N64) Mask(bits uint) N64 { return *n.MaskAssign(bits) }

// AndLow returns the low word of n masked with v.
func (n N64) AndLow(v uint32) uint32 { return n.lo & v }

func (n *N64) LshAssign(bits uint) *N64 {
	n.hi, n.lo = lshWords(n.hi, n.lo, bits)
	return n
}

// RshAssign is an arithmetic shift for signed values and a logical shift for
// unsigned values.
func (n *N64) RshAssign(bits uint) *N64 {
	if !n.signed {
		return n.URshAssign(bits)
	}
	n.hi, n.lo = rshWords(n.hi, n.lo, bits)
	return n
}

// URshAssign is a logical shift regardless of the tag.
func (n *N64) URshAssign(bits uint) *N64 {
	n.hi, n.lo = urshWords(n.hi, n.lo, bits)
	return n
}

func (n N64) Lsh(bits uint) N64  { return *n.LshAssign(bits) }
func (n N64) Rsh(bits uint) N64  { return *n.RshAssign(bits) }
func (n N64) URsh(bits uint) N64 { return *n.URshAssign(bits) }

// Cmp compares the values represented by n and b, each read with its own tag,
// and returns:
//
//	-1 if n <  b
//	 0 if n == b
//	+1 if n >  b
//
// A signed -1 and an unsigned MaxU64 share a bit pattern but are not equal.
func (n N64) Cmp(b N64) int {
	nneg, bneg := n.IsNeg(), b.IsNeg()
	if nneg != bneg {
		if nneg {
			return -1
		}
		return 1
	}
	if n.hi == b.hi && n.lo == b.lo {
		return 0
	} else if lessWords(n.hi, n.lo, b.hi, b.lo) {
		return -1
	}
	return 1
}

func (n N64) Equal(b N64) bool {
	if n.hi != b.hi || n.lo != b.lo {
		return false
	}
	return n.signed == b.signed || n.hi&signBit == 0
}

func (n N64) LessThan(b N64) bool         { return n.Cmp(b) < 0 }
func (n N64) LessOrEqualTo(b N64) bool    { return n.Cmp(b) <= 0 }
func (n N64) GreaterThan(b N64) bool      { return n.Cmp(b) > 0 }
func (n N64) GreaterOrEqualTo(b N64) bool { return n.Cmp(b) >= 0 }

func (n N64) CmpN(v int32) int               { return n.Cmp(n.small(v)) }
func (n N64) EqualN(v int32) bool            { return n.Equal(n.small(v)) }
func (n N64) LessThanN(v int32) bool         { return n.CmpN(v) < 0 }
func (n N64) LessOrEqualToN(v int32) bool    { return n.CmpN(v) <= 0 }
func (n N64) GreaterThanN(v int32) bool      { return n.CmpN(v) > 0 }
func (n N64) GreaterOrEqualToN(v int32) bool { return n.CmpN(v) >= 0 }
