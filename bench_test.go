package n64

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchFloatResult  float64
	BenchIntResult    int
	BenchN64Result    N64
	BenchStringResult string
	BenchUint64Result uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	BenchN641, BenchN642 = u64(12093749018), u64(18927348917)
	BenchI641, BenchI642 = i64(-12093749018), i64(1892734)
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkUint64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchUint641 == BenchUint642
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(BenchUint642)
	by := new(big.Int).SetUint64(BenchUint641)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Div(u, by)
	}
}

func BenchmarkN64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = BenchN641.Add(BenchN642)
	}
}

func BenchmarkN64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = BenchN641.Mul(BenchN642)
	}
}

func BenchmarkN64MulSmall(b *testing.B) {
	x, y := u64(12345), u64(54321)
	for i := 0; i < b.N; i++ {
		BenchN64Result = x.Mul(y)
	}
}

func BenchmarkN64Quo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = BenchN642.Quo(BenchN641)
	}
}

func BenchmarkN64QuoLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = MaxU64.Quo(BenchN641)
	}
}

func BenchmarkN64QuoMinI64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = MinI64.Quo(BenchI642)
	}
}

func BenchmarkN64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchN641.Equal(BenchN642)
	}
}

func BenchmarkN64Cmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchI641.Cmp(BenchN642)
	}
}

func BenchmarkN64String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = MaxU64.String()
	}
}

func BenchmarkN64FromString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result, _, _ = U64FromString("18446744073709551615", 10)
	}
}

func BenchmarkN64AsFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchI641.AsFloat64()
	}
}

func BenchmarkN64PowN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchN64Result = BenchI642.PowN(7)
	}
}
