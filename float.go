// This file contains a heavily modified version of math.Mod
// that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package n64

import (
	"math"
	"strconv"
)

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}

// fmod is x % y truncated toward zero, taking the sign of x. x and y must be
// integral, finite, and y must be non-zero.
func fmod(x, y float64) float64 {
	neg := x < 0
	x, y = math.Abs(x), math.Abs(y)
	r := modpos(x, y)
	if neg {
		return -r
	}
	return r
}

// setSafeFloat stores the integral f, with |f| <= MaxSafeInteger, into the
// words of n. The tag is left alone.
func (n *N64) setSafeFloat(f float64) {
	neg := f < 0
	if neg {
		f = -f
	}
	lo := modpos(f, wrapUint32Float)
	n.hi, n.lo = uint32((f-lo)/wrapUint32Float), uint32(lo)
	if neg {
		n.hi, n.lo = negWords(n.hi, n.lo)
	}
}

// truncFloat truncates f toward zero, rejecting values that cannot be held
// exactly.
func truncFloat(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidOperand
	}
	f = math.Trunc(f)
	if f > maxSafeFloat || f < minSafeFloat {
		return 0, ErrMagnitudeOverflow
	}
	return f, nil
}

// U64FromFloat64 truncates f toward zero. A negative f wraps, so
// U64FromFloat64(-1) is MaxU64. f must be finite and its magnitude must not
// exceed MaxSafeInteger.
func U64FromFloat64(f float64) (out N64, err error) {
	return fromFloat64(f, false)
}

// I64FromFloat64 truncates f toward zero. f must be finite and its magnitude
// must not exceed MaxSafeInteger.
func I64FromFloat64(f float64) (out N64, err error) {
	return fromFloat64(f, true)
}

func fromFloat64(f float64, signed bool) (out N64, err error) {
	out.signed = signed
	t, err := truncFloat(f)
	if err != nil {
		return out, newError("fromfloat64", "", strconv.FormatFloat(f, 'g', -1, 64), err)
	}
	out.setSafeFloat(t)
	return out, nil
}

// SetFloat64 replaces the value of n with f truncated toward zero, keeping the
// tag. n is not modified if f is rejected.
func (n *N64) SetFloat64(f float64) error {
	t, err := truncFloat(f)
	if err != nil {
		return newError("setfloat64", n.GoString(), strconv.FormatFloat(f, 'g', -1, 64), err)
	}
	n.setSafeFloat(t)
	return nil
}

// AsFloat64 returns the nearest float64 to n. Values beyond MaxSafeInteger
// lose precision.
func (n N64) AsFloat64() float64 {
	if n.signed {
		return float64(int32(n.hi))*wrapUint32Float + float64(n.lo)
	}
	return float64(n.hi)*wrapUint32Float + float64(n.lo)
}

// Float64 returns n as a float64 if the conversion is exact, or
// ErrMagnitudeOverflow otherwise.
func (n N64) Float64() (float64, error) {
	if !n.IsSafe() {
		return 0, newError("float64", n.GoString(), "", ErrMagnitudeOverflow)
	}
	return n.AsFloat64(), nil
}
