//go:build n64native

package n64

const (
	nativeBackend = true
	backendName   = "native"
)

func joinWords(hi, lo uint32) uint64 { return uint64(hi)<<32 | uint64(lo) }

func splitWords(v uint64) (hi, lo uint32) { return uint32(v >> 32), uint32(v) }

func add64(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	return splitWords(joinWords(ahi, alo) + joinWords(bhi, blo))
}

func sub64(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	return splitWords(joinWords(ahi, alo) - joinWords(bhi, blo))
}

func mul64(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	return splitWords(joinWords(ahi, alo) * joinWords(bhi, blo))
}

func quoRem64(nhi, nlo, dhi, dlo uint32) (qhi, qlo, rhi, rlo uint32) {
	n, d := joinWords(nhi, nlo), joinWords(dhi, dlo)
	qhi, qlo = splitWords(n / d)
	rhi, rlo = splitWords(n % d)
	return qhi, qlo, rhi, rlo
}
