package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/xyproto/env/v2"

	n64 "github.com/shabbyrobe/go-n64"
)

// n64calc evaluates a single expression with the emulated 64-bit integers,
// optionally checking the answer against Go's native integer types. It is
// handy for reproducing fuzzer failures by hand.

const usage = `n64 calculator

Usage: n64calc [options] [--] <a> <op> [<b>]

Use "--" before a negative first operand. Operands and shift amounts are
read in -base.

Binary ops: + - * / % ** & | ^ &^ << >> >>> cmp
Unary ops:  neg not abs bitlen

Set N64CALC_LOG to a zerolog level (debug, info, warn...) to change logging.

Options:
`

func main() {
	log := newLogger(os.Stderr, env.Str("N64CALC_LOG", "info"))
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("n64calc failed")
	}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

type config struct {
	signed bool
	base   int
	dump   bool
	comma  bool
	check  bool
}

func run(args []string, out io.Writer, log zerolog.Logger) error {
	var cfg config

	fs := flag.NewFlagSet("n64calc", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.signed, "signed", false, "Treat operands as signed 64-bit integers")
	fs.IntVar(&cfg.base, "base", 10, "Base of the operands and the result (2-16)")
	fs.BoolVar(&cfg.dump, "dump", false, "Dump the operands and the result")
	fs.BoolVar(&cfg.comma, "comma", false, "Group the digits of a decimal result with commas")
	fs.BoolVar(&cfg.check, "check", false, "Cross-check the result against native 64-bit arithmetic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return fmt.Errorf("missing args")
	}

	a, err := parseOperand(rest[0], cfg, log)
	if err != nil {
		return err
	}

	op := rest[1]
	var b n64.N64
	if binaryOps[op] {
		if len(rest) < 3 {
			return fmt.Errorf("op %q needs two operands", op)
		}
		if b, err = parseOperand(rest[2], cfg, log); err != nil {
			return err
		}
	} else if !unaryOps[op] {
		return fmt.Errorf("unknown op %q", op)
	}

	result, err := eval(a, op, b)
	if err != nil {
		return err
	}
	log.Debug().Str("op", op).Stringer("a", a).Stringer("b", b).Stringer("result", result).Msg("evaluated")

	if cfg.check {
		if want, ok := native(a, op, b); !ok {
			log.Warn().Str("op", op).Msg("no native equivalent, check skipped")
		} else if !want.Equal(result) {
			log.Error().Str("op", op).Stringer("a", a).Stringer("b", b).
				Stringer("n64", result).Stringer("native", want).Msg("result mismatch")
			return fmt.Errorf("n64 result %s != native %s", result, want)
		}
	}

	if cfg.dump {
		spew.Fdump(out, a, b, result)
	}

	s, err := result.Text(cfg.base)
	if err != nil {
		return err
	}
	if cfg.comma && cfg.base == 10 {
		if result.Signed() {
			s = humanize.Comma(result.AsInt64())
		} else {
			s = humanize.BigComma(new(big.Int).SetUint64(result.AsUint64()))
		}
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func parseOperand(s string, cfg config, log zerolog.Logger) (n n64.N64, err error) {
	var acc bool
	if cfg.signed {
		n, acc, err = n64.I64FromString(s, cfg.base)
	} else {
		n, acc, err = n64.U64FromString(s, cfg.base)
	}
	if err != nil {
		return n, err
	}
	if !acc {
		log.Warn().Str("operand", s).Stringer("value", n).Msg("operand out of range, wrapped")
	}
	return n, nil
}

var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"&": true, "|": true, "^": true, "&^": true,
	"<<": true, ">>": true, ">>>": true, "cmp": true,
}

var unaryOps = map[string]bool{
	"neg": true, "not": true, "abs": true, "bitlen": true,
}

func shiftAmount(b n64.N64) uint { return uint(b.AndLow(0xffffffff)) }

func eval(a n64.N64, op string, b n64.N64) (n64.N64, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.TryQuo(b)
	case "%":
		return a.TryRem(b)
	case "**":
		return a.TryPow(b)
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "<<":
		return a.Lsh(shiftAmount(b)), nil
	case ">>":
		return a.Rsh(shiftAmount(b)), nil
	case ">>>":
		return a.URsh(shiftAmount(b)), nil
	case "cmp":
		return n64.I64FromInt32(int32(a.Cmp(b))), nil
	case "neg":
		return a.Neg(), nil
	case "not":
		return a.Not(), nil
	case "abs":
		return a.Abs(), nil
	case "bitlen":
		return n64.I64From(a.BitLen()), nil
	}
	return n64.N64{}, fmt.Errorf("unknown op %q", op)
}

// native evaluates op with Go's own integer types. ok is false when there is
// nothing to compare against.
func native(a n64.N64, op string, b n64.N64) (out n64.N64, ok bool) {
	if a.Signed() {
		return nativeSigned(a.AsInt64(), op, b.AsInt64(), shiftAmount(b)&63)
	}
	return nativeUnsigned(a.AsUint64(), op, b.AsUint64(), shiftAmount(b)&63)
}

func nativeUnsigned(x uint64, op string, y uint64, s uint) (n64.N64, bool) {
	var r uint64
	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/", "%":
		if y == 0 {
			return n64.N64{}, false
		} else if op == "/" {
			r = x / y
		} else {
			r = x % y
		}
	case "&":
		r = x & y
	case "|":
		r = x | y
	case "^":
		r = x ^ y
	case "&^":
		r = x &^ y
	case "<<":
		r = x << s
	case ">>", ">>>":
		r = x >> s
	case "neg":
		r = -x
	case "not":
		r = ^x
	case "abs":
		r = x
	case "bitlen":
		return n64.I64From(bits.Len64(x)), true
	default:
		return n64.N64{}, false
	}
	return n64.U64From64(r), true
}

func nativeSigned(x int64, op string, y int64, s uint) (n64.N64, bool) {
	var r int64
	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/", "%":
		if y == 0 {
			return n64.N64{}, false
		} else if op == "/" {
			r = x / y
		} else {
			r = x % y
		}
	case "&":
		r = x & y
	case "|":
		r = x | y
	case "^":
		r = x ^ y
	case "&^":
		r = x &^ y
	case "<<":
		r = x << s
	case ">>":
		r = x >> s
	case ">>>":
		r = int64(uint64(x) >> s)
	case "neg":
		r = -x
	case "not":
		r = ^x
	case "abs":
		r = x
		if x < 0 {
			r = -x
		}
	default:
		return n64.N64{}, false
	}
	return n64.I64From64(r), true
}
