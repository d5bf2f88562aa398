package n64

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const digits = "0123456789abcdef"

// chunkDigits is the number of digits peeled off per 64-bit division while
// formatting. base**chunkDigits must fit in a uint32 for every base up to 16.
const chunkDigits = 6

func (n N64) String() string { return n.format(10) }

// Text returns the representation of n in the given base, which must be
// between 2 and 16. Digits above 9 are lowercase; negative values are
// prefixed with '-'.
func (n N64) Text(base int) (string, error) {
	if base < 2 || base > 16 {
		return "", newError("text", n.GoString(), strconv.Itoa(base), ErrInvalidRadix)
	}
	return n.format(base), nil
}

// format expects a valid base.
func (n N64) format(base int) string {
	if n.IsZero() {
		return "0"
	}

	// The signed minimum survives Neg unchanged and reads as 1<<63 once
	// untagged, which is its magnitude.
	neg := n.IsNeg()
	m := n.Abs().AsUnsigned()

	chunk := uint32(1)
	for i := 0; i < chunkDigits; i++ {
		chunk *= uint32(base)
	}

	var buf [maxDigits + 1]byte
	i := len(buf)
	b := uint32(base)
	for {
		qhi, qlo, _, r := quoRem64(m.hi, m.lo, 0, chunk)
		m.hi, m.lo = qhi, qlo
		last := m.IsZero()

		// Inner chunks are zero-padded to their full width; the leading chunk
		// stops at its most significant non-zero digit.
		for j := 0; j < chunkDigits && (!last || r > 0); j++ {
			i--
			buf[i] = digits[r%b]
			r /= b
		}
		if last {
			break
		}
	}

	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func U64FromString(s string, base int) (out N64, accurate bool, err error) {
	return parse(s, base, false)
}

func I64FromString(s string, base int) (out N64, accurate bool, err error) {
	return parse(s, base, true)
}

// parse reads an optionally '-' prefixed string of digits in base. Values
// that do not fit the tag wrap around like any other arithmetic, and
// accurate is set to false.
func parse(s string, base int, signed bool) (out N64, accurate bool, err error) {
	out.signed = signed

	if base < 2 || base > 16 {
		return out, false, newError("parse", "", strconv.Itoa(base), ErrInvalidRadix)
	}

	str := s
	neg := len(str) > 0 && str[0] == '-'
	if neg {
		str = str[1:]
	}
	if len(str) == 0 || len(str) > maxDigits {
		return out, false, newError("parse", "", s, ErrMalformedString)
	}

	// Any accumulator above cutoff overflows when multiplied by base.
	chi, clo, _, _ := quoRem64(wordMask, wordMask, 0, uint32(base))
	cutoff := N64{hi: chi, lo: clo}
	radix := N64{lo: uint32(base)}

	var acc N64
	accurate = true
	for i := 0; i < len(str); i++ {
		d := digitValue(str[i])
		if d >= uint32(base) {
			return out, false, newError("parse", "", s, ErrMalformedString)
		}
		if acc.GreaterThan(cutoff) {
			accurate = false
		}
		acc.MulAssign(radix)
		sum := acc.Add(N64{lo: d})
		if sum.LessThan(acc) {
			accurate = false
		}
		acc = sum
	}

	if accurate {
		if signed {
			limit := MaxI64.AsUnsigned()
			if neg {
				limit = limit.Inc()
			}
			accurate = acc.LessOrEqualTo(limit)
		} else if neg && !acc.IsZero() {
			accurate = false
		}
	}

	if neg {
		acc.NegAssign()
	}
	out.hi, out.lo = acc.hi, acc.lo
	return out, accurate, nil
}

// digitValue returns a value >= 16 for anything that is not a digit.
func digitValue(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint32(c-'A') + 10
	}
	return 0xff
}

// Format implements fmt.Formatter. It supports the verbs %d, %v and %s
// (decimal), %x and %X (hex), %o and %O (octal) and %b (binary), with the
// '#', '+', ' ', '-' and '0' flags, width and precision (minimum digits).
// %#v prints the Go syntax from GoString.
func (n N64) Format(s fmt.State, c rune) {
	var base int
	switch c {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, n.GoString())
			return
		}
		base = 10
	case 'd', 's':
		base = 10
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b':
		base = 2
	default:
		fmt.Fprintf(s, "%%!%c(n64.N64=%s)", c, n.String())
		return
	}

	num := n.format(base)
	var sign string
	if num[0] == '-' {
		sign, num = "-", num[1:]
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}
	if c == 'X' {
		num = strings.ToUpper(num)
	}

	var prefix string
	if c == 'O' {
		prefix = "0o"
	} else if s.Flag('#') {
		switch c {
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		case 'o':
			prefix = "0"
		case 'b':
			prefix = "0b"
		}
	}

	prec, hasPrec := s.Precision()
	if hasPrec && len(num) < prec {
		num = strings.Repeat("0", prec-len(num)) + num
	}

	out := sign + prefix + num
	if width, ok := s.Width(); ok && len(out) < width {
		pad := width - len(out)
		switch {
		case s.Flag('-'):
			out += strings.Repeat(" ", pad)
		case s.Flag('0') && !hasPrec:
			out = sign + prefix + strings.Repeat("0", pad) + num
		default:
			out = strings.Repeat(" ", pad) + out
		}
	}
	io.WriteString(s, out)
}
