package n64

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestN64FromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f      float64
		signed bool
		out    N64
		err    error
	}{
		{0, false, u64(0), nil},
		{1.9, false, u64(1), nil},
		{-1.9, true, i64(-1), nil},
		{-0.5, true, i64(0), nil},
		{math.Copysign(0, -1), true, i64(0), nil},
		{-1, false, MaxU64, nil}, // Negative input wraps
		{4294967296, false, u64(1 << 32), nil},
		{4294967297.5, true, i64(1<<32 + 1), nil},
		{MaxSafeInteger, true, MaxSafe, nil},
		{MinSafeInteger, true, MinSafe, nil},
		{MaxSafeInteger, false, u64(MaxSafeInteger), nil},

		{MaxSafeInteger + 1, true, i64(0), ErrMagnitudeOverflow},
		{MinSafeInteger - 1, true, i64(0), ErrMagnitudeOverflow},
		{1e300, false, u64(0), ErrMagnitudeOverflow},
		{math.NaN(), true, i64(0), ErrInvalidOperand},
		{math.Inf(1), false, u64(0), ErrInvalidOperand},
		{math.Inf(-1), true, i64(0), ErrInvalidOperand},
	} {
		t.Run(fmt.Sprintf("%d/%f", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var out N64
			var err error
			if tc.signed {
				out, err = I64FromFloat64(tc.f)
			} else {
				out, err = U64FromFloat64(tc.f)
			}
			if tc.err != nil {
				tt.MustAssert(errors.Is(err, tc.err), "%v", err)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestN64SetFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	n := i64(99)
	tt.MustOK(n.SetFloat64(-12.75))
	tt.MustEqual(i64(-12), n)

	// A rejected float leaves the receiver alone:
	err := n.SetFloat64(math.NaN())
	tt.MustAssert(errors.Is(err, ErrInvalidOperand))
	tt.MustEqual(i64(-12), n)

	var u N64
	tt.MustOK(u.SetFloat64(3))
	tt.MustEqual(u64(3), u)
}

func TestN64Float64(t *testing.T) {
	for idx, tc := range []struct {
		a   N64
		out float64
		ok  bool
	}{
		{u64(0), 0, true},
		{i64(-1), -1, true},
		{u64(1 << 32), 4294967296, true},
		{MaxSafe, MaxSafeInteger, true},
		{MinSafe, MinSafeInteger, true},
		{MaxSafe.Inc(), 0, false},
		{MinSafe.Dec(), 0, false},
		{MaxU64, 0, false},
		{MinI64, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			f, err := tc.a.Float64()
			if !tc.ok {
				tt.MustAssert(errors.Is(err, ErrMagnitudeOverflow))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, f)
		})
	}
}

func TestN64AsFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float64(1<<64), MaxU64.AsFloat64())
	tt.MustEqual(float64(-1), MaxU64.AsSigned().AsFloat64())
	tt.MustEqual(float64(-(1 << 63)), MinI64.AsFloat64())
	tt.MustEqual(float64(1<<63), MinI64.AsUnsigned().AsFloat64())
	tt.MustEqual(float64(MaxSafeInteger+1), MaxSafe.Inc().AsFloat64())
}

func TestModpos(t *testing.T) {
	for idx, tc := range []struct {
		x, y float64
	}{
		{5, 3},
		{3, 5},
		{MaxSafeInteger, 4294967296},
		{MaxSafeInteger, 3},
		{MaxSafeInteger, MaxSafeInteger - 1},
		{429496729600, 2415919104},
	} {
		t.Run(fmt.Sprintf("%d/%f%%%f", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(math.Mod(tc.x, tc.y), modpos(tc.x, tc.y))
			tt.MustEqual(math.Mod(-tc.x, tc.y), fmod(-tc.x, tc.y))
			tt.MustEqual(math.Mod(tc.x, -tc.y), fmod(tc.x, -tc.y))
		})
	}
}
