//go:build !n64native

package n64

// The emulated backend never forms a 64-bit intermediate. The float64 fast
// paths in Mul, Quo and Rem are only taken on this backend.
const (
	nativeBackend = false
	backendName   = "emulated"
)

func add64(ahi, alo, bhi, blo uint32) (hi, lo uint32) { return addWords(ahi, alo, bhi, blo) }
func sub64(ahi, alo, bhi, blo uint32) (hi, lo uint32) { return subWords(ahi, alo, bhi, blo) }
func mul64(ahi, alo, bhi, blo uint32) (hi, lo uint32) { return mulWords(ahi, alo, bhi, blo) }

func quoRem64(nhi, nlo, dhi, dlo uint32) (qhi, qlo, rhi, rlo uint32) {
	return quoRemWords(nhi, nlo, dhi, dlo)
}
