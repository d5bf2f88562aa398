package n64

import "math"

// Division always produces a result with the dividend's tag; the divisor is
// read with the dividend's tag too, so an unsigned value divided by
// I64FromInt32(-1) divides by MaxU64.

func (n N64) divByZero(op string, by N64) *Error {
	return newError(op, n.GoString(), by.String(), ErrDivisionByZero)
}

// QuoAssign sets n to n/by, truncated toward zero, and returns n. It panics
// with an *Error wrapping ErrDivisionByZero if by is zero, leaving n
// untouched.
func (n *N64) QuoAssign(by N64) *N64 {
	if by.IsZero() {
		panic(n.divByZero("quo", by))
	}
	*n = quo(*n, by)
	return n
}

// RemAssign sets n to the remainder of n/by, which takes the sign of n. It
// panics like QuoAssign.
func (n *N64) RemAssign(by N64) *N64 {
	if by.IsZero() {
		panic(n.divByZero("rem", by))
	}
	*n = rem(*n, by)
	return n
}

func (n *N64) QuoNAssign(v int32) *N64 { return n.QuoAssign(n.small(v)) }
func (n *N64) RemNAssign(v int32) *N64 { return n.RemAssign(n.small(v)) }

func (n N64) Quo(by N64) N64   { return *n.QuoAssign(by) }
func (n N64) Rem(by N64) N64   { return *n.RemAssign(by) }
func (n N64) QuoN(v int32) N64 { return *n.QuoNAssign(v) }
func (n N64) RemN(v int32) N64 { return *n.RemNAssign(v) }

// QuoRem returns the quotient and remainder of n/by, such that
// q*by + r == n. It panics like QuoAssign.
func (n N64) QuoRem(by N64) (q, r N64) {
	if by.IsZero() {
		panic(n.divByZero("quorem", by))
	}
	return quoRem(n, by)
}

func (n N64) TryQuo(by N64) (N64, error) {
	if by.IsZero() {
		return n, n.divByZero("quo", by)
	}
	return quo(n, by), nil
}

func (n N64) TryRem(by N64) (N64, error) {
	if by.IsZero() {
		return n, n.divByZero("rem", by)
	}
	return rem(n, by), nil
}

func (n N64) TryQuoRem(by N64) (q, r N64, err error) {
	if by.IsZero() {
		return n, n, n.divByZero("quorem", by)
	}
	q, r = quoRem(n, by)
	return q, r, nil
}

// quo divides a by the non-zero b.
func quo(a, b N64) N64 {
	b.signed = a.signed

	if a.IsZero() {
		return a
	}

	// Both magnitudes fit in 53 bits, so the float quotient truncates to the
	// exact integer quotient.
	if !nativeBackend && a.IsSafe() && b.IsSafe() {
		q := N64{signed: a.signed}
		q.setSafeFloat(math.Trunc(a.AsFloat64() / b.AsFloat64()))
		return q
	}

	if a.signed {
		return quoSigned(a, b)
	}
	return quoUnsigned(a, b)
}

func quoUnsigned(a, b N64) N64 {
	qhi, qlo, _, _ := quoRem64(a.hi, a.lo, b.hi, b.lo)
	return N64{hi: qhi, lo: qlo, signed: a.signed}
}

func quoSigned(a, b N64) N64 {
	one := N64{lo: 1, signed: true}

	if a.isMin() {
		if b.EqualN(1) || b.EqualN(-1) {
			return a
		} else if b.isMin() {
			return one
		}

		// The minimum cannot be negated, so divide half of it and double the
		// result, then divide whatever is left over.
		approx := quo(a.Rsh(1), b).Lsh(1)
		if approx.IsZero() {
			if b.IsNeg() {
				return one
			}
			return one.Neg()
		}
		r := a.Sub(b.Mul(approx))
		return approx.Add(quo(r, b))
	}

	if b.isMin() {
		return N64{signed: true}
	}

	neg := false
	if a.IsNeg() {
		a, neg = a.Neg(), !neg
	}
	if b.IsNeg() {
		b, neg = b.Neg(), !neg
	}

	q := quoUnsigned(a.AsUnsigned(), b.AsUnsigned()).AsSigned()
	if neg {
		q.NegAssign()
	}
	return q
}

// rem is a - (a/b)*b for the non-zero b.
func rem(a, b N64) N64 {
	b.signed = a.signed

	if a.IsZero() {
		return a
	}

	if !nativeBackend && a.IsSafe() && b.IsSafe() {
		r := N64{signed: a.signed}
		r.setSafeFloat(fmod(a.AsFloat64(), b.AsFloat64()))
		return r
	}

	return a.Sub(quo(a, b).Mul(b))
}

func quoRem(a, b N64) (q, r N64) {
	b.signed = a.signed
	q = quo(a, b)
	return q, a.Sub(q.Mul(b))
}

// PowNAssign raises n to the power exp by repeated squaring. Overflow wraps.
// A zero n stays zero, including for exp == 0.
func (n *N64) PowNAssign(exp uint32) *N64 {
	if n.IsZero() {
		return n
	}

	x := *n
	n.hi, n.lo = 0, 1
	for exp > 0 {
		if exp&1 == 1 {
			n.MulAssign(x)
		}
		exp >>= 1
		x.SqrAssign()
	}
	return n
}

// PowAssign is PowNAssign for an N64 exponent. It panics with an *Error
// wrapping ErrInvalidOperand if exp is negative or does not fit in 32 bits.
func (n *N64) PowAssign(exp N64) *N64 {
	if err := n.checkExp(exp); err != nil {
		panic(err)
	}
	return n.PowNAssign(exp.lo)
}

func (n N64) PowN(exp uint32) N64 { return *n.PowNAssign(exp) }
func (n N64) Pow(exp N64) N64     { return *n.PowAssign(exp) }

func (n N64) TryPow(exp N64) (N64, error) {
	if err := n.checkExp(exp); err != nil {
		return n, err
	}
	return *n.PowNAssign(exp.lo), nil
}

func (n N64) checkExp(exp N64) error {
	if exp.IsNeg() || exp.hi != 0 {
		return newError("pow", n.GoString(), exp.String(), ErrInvalidOperand)
	}
	return nil
}
