package n64

import "math/bits"

// addWords adds two 64-bit patterns held as word pairs. The carry out of the
// low word is recovered from the top bits of both addends and of the sum.
func addWords(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	lo = alo + blo
	as, bs, s := alo>>31, blo>>31, lo>>31
	c := ((as & bs) | (^s & (as ^ bs))) & 1
	return ahi + bhi + c, lo
}

// negWords returns the two's complement of the pattern.
func negWords(hi, lo uint32) (uint32, uint32) {
	hi, lo = ^hi, ^lo
	if lo == wordMask {
		return hi + 1, 0
	}
	return hi, lo + 1
}

func subWords(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	bhi, blo = negWords(bhi, blo)
	return addWords(ahi, alo, bhi, blo)
}

// mulWords multiplies two patterns truncated to 64 bits. The operands are
// split into 16-bit half-words so no partial product can exceed 32 bits.
func mulWords(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	var (
		a48, a32 = ahi >> 16, ahi & 0xffff
		a16, a00 = alo >> 16, alo & 0xffff
		b48, b32 = bhi >> 16, bhi & 0xffff
		b16, b00 = blo >> 16, blo & 0xffff

		c48, c32, c16, c00 uint32
	)

	c00 += a00 * b00
	c16 += c00 >> 16
	c00 &= 0xffff

	c16 += a16 * b00
	c32 += c16 >> 16
	c16 &= 0xffff

	c16 += a00 * b16
	c32 += c16 >> 16
	c16 &= 0xffff

	c32 += a32 * b00
	c48 += c32 >> 16
	c32 &= 0xffff

	c32 += a16 * b16
	c48 += c32 >> 16
	c32 &= 0xffff

	c32 += a00 * b32
	c48 += c32 >> 16
	c32 &= 0xffff

	// Only the low 16 bits of c48 survive, so these may wrap freely:
	c48 += a48*b00 + a32*b16 + a16*b32 + a00*b48
	c48 &= 0xffff

	return c48<<16 | c32, c16<<16 | c00
}

func lessWords(ahi, alo, bhi, blo uint32) bool {
	return ahi < bhi || (ahi == bhi && alo < blo)
}

// bitLenWords is the number of bits needed to hold the unsigned pattern.
func bitLenWords(hi, lo uint32) uint {
	if hi != 0 {
		return uint(bits.Len32(hi)) + 32
	}
	return uint(bits.Len32(lo))
}

func bitWords(hi, lo uint32, i uint) uint32 {
	if i >= 32 {
		return (hi >> (i - 32)) & 1
	}
	return (lo >> i) & 1
}

// quoRemWords performs unsigned restoring division, one bit of the dividend
// at a time. The divisor must not be zero.
func quoRemWords(nhi, nlo, dhi, dlo uint32) (qhi, qlo, rhi, rlo uint32) {
	if lessWords(nhi, nlo, dhi, dlo) {
		return 0, 0, nhi, nlo
	}

	// If n>>1 < d then the quotient must be 1. This also guarantees d < 1<<63
	// below, so the shifted remainder can never lose its top bit.
	hhi, hlo := urshWords(nhi, nlo, 1)
	if lessWords(hhi, hlo, dhi, dlo) {
		rhi, rlo = subWords(nhi, nlo, dhi, dlo)
		return 0, 1, rhi, rlo
	}

	for i := bitLenWords(nhi, nlo); i > 0; i-- {
		// {{{ r = r<<1 | n.bit(i-1)
		rhi = rhi<<1 | rlo>>31
		rlo = rlo<<1 | bitWords(nhi, nlo, i-1)
		// }}}

		// {{{ q = q<<1
		qhi = qhi<<1 | qlo>>31
		qlo = qlo << 1
		// }}}

		if !lessWords(rhi, rlo, dhi, dlo) {
			rhi, rlo = subWords(rhi, rlo, dhi, dlo)
			qlo |= 1
		}
	}
	return qhi, qlo, rhi, rlo
}

// Shift amounts are taken modulo 64.

func lshWords(hi, lo uint32, n uint) (uint32, uint32) {
	n &= 63
	switch {
	case n == 0:
		return hi, lo
	case n < 32:
		return hi<<n | lo>>(32-n), lo << n
	default:
		return lo << (n - 32), 0
	}
}

func urshWords(hi, lo uint32, n uint) (uint32, uint32) {
	n &= 63
	switch {
	case n == 0:
		return hi, lo
	case n < 32:
		return hi >> n, lo>>n | hi<<(32-n)
	default:
		return 0, hi >> (n - 32)
	}
}

// rshWords is an arithmetic shift: vacated bits are copies of the sign bit.
func rshWords(hi, lo uint32, n uint) (uint32, uint32) {
	n &= 63
	switch {
	case n == 0:
		return hi, lo
	case n < 32:
		return uint32(int32(hi) >> n), lo>>n | hi<<(32-n)
	default:
		return uint32(int32(hi) >> 31), uint32(int32(hi) >> (n - 32))
	}
}
