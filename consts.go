package n64

const (
	// MaxSafeInteger is the largest integer a float64 represents exactly
	// along with all of its neighbours.
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger

	signBit  = 0x80000000
	wordMask = 0xffffffff

	// Any magnitude whose high word has a bit in this mask needs more than 53
	// bits.
	safeHiMask = 0xffe00000

	// Both operands of a multiplication must be below this for the float
	// product to be exact.
	safeMulLimit = 1 << 24

	wrapUint32Float = float64(1 << 32)
	maxSafeFloat    = float64(MaxSafeInteger)
	minSafeFloat    = float64(MinSafeInteger)

	maxDigits = 64
)

var (
	MinU32 = N64{}
	MaxU32 = N64{lo: wordMask}
	MinI32 = N64{hi: wordMask, lo: signBit, signed: true}
	MaxI32 = N64{lo: signBit - 1, signed: true}

	MinU64 = N64{}
	MaxU64 = N64{hi: wordMask, lo: wordMask}
	MinI64 = N64{hi: signBit, signed: true}
	MaxI64 = N64{hi: signBit - 1, lo: wordMask, signed: true}

	MaxSafe = N64{hi: 0x001fffff, lo: wordMask, signed: true}
	MinSafe = N64{hi: safeHiMask, lo: 1, signed: true}
)
