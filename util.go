package n64

// RandSource supplies random words; *math/rand.Rand satisfies it.
type RandSource interface {
	Uint32() uint32
}

func RandU64(source RandSource) (out N64) {
	out.hi, out.lo = source.Uint32(), source.Uint32()
	return out
}

func RandI64(source RandSource) (out N64) {
	out = RandU64(source)
	out.signed = true
	return out
}

// Larger returns whichever of a and b represents the larger value, or a if
// they are equal.
func Larger(a, b N64) N64 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Smaller returns whichever of a and b represents the smaller value, or a if
// they are equal.
func Smaller(a, b N64) N64 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// Difference subtracts the smaller of a and b from the larger. The result is
// always unsigned, so the distance between MinI64 and MaxI64 is representable.
// Only a signed and an unsigned operand can be more than MaxU64 apart; that
// distance wraps.
func Difference(a, b N64) N64 {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	return a.Sub(b).AsUnsigned()
}
