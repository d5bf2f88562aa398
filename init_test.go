package n64

import (
	"flag"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xyproto/env/v2"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	// Defaults come from the environment; flags override them.
	fuzzIterations = env.Int("N64_FUZZ_ITER", fuzzIterations)
	if seed := env.Str("N64_FUZZ_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			log.Fatalf("N64_FUZZ_SEED %q invalid: %v", seed, err)
		}
		fuzzSeed = v
	}

	flag.IntVar(&fuzzIterations, "n64.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "n64.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "n64.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "n64.fuzztype", "Fuzz type (u64, i64) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("backend:   ", backendName)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// bigOf returns the value n represents, reading it with its own tag.
func bigOf(n N64) *big.Int {
	if n.Signed() {
		return new(big.Int).SetInt64(n.AsInt64())
	}
	return new(big.Int).SetUint64(n.AsUint64())
}

func u64(v uint64) N64 { return U64From64(v) }
func i64(v int64) N64  { return I64From64(v) }

func u64s(s string) N64 {
	n, acc, err := U64FromString(s, 10)
	if err != nil {
		panic(err)
	} else if !acc {
		panic("inaccurate u64 literal " + s)
	}
	return n
}

func i64s(s string) N64 {
	n, acc, err := I64FromString(s, 10)
	if err != nil {
		panic(err)
	} else if !acc {
		panic("inaccurate i64 literal " + s)
	}
	return n
}
