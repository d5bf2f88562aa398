package n64

import "golang.org/x/exp/constraints"

// U64From converts any Go integer to an unsigned N64 with the usual two's
// complement conversion, so U64From(int8(-1)) is MaxU64.
func U64From[T constraints.Integer](v T) N64 { return U64From64(uint64(v)) }

// I64From converts any Go integer to a signed N64 with the usual two's
// complement conversion, so I64From(uint64(math.MaxUint64)) is -1.
func I64From[T constraints.Integer](v T) N64 { return I64From64(int64(v)) }
