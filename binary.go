package n64

import (
	"encoding/binary"
	"strconv"
)

// Byte forms are exactly 8 bytes long and carry the raw two's-complement
// pattern; the tag is not stored.
const byteLen = 8

// PutLittleEndian writes n to b, which must be at least 8 bytes long.
func (n N64) PutLittleEndian(b []byte) {
	_ = b[byteLen-1]
	binary.LittleEndian.PutUint32(b, n.lo)
	binary.LittleEndian.PutUint32(b[4:], n.hi)
}

// PutBigEndian writes n to b, which must be at least 8 bytes long.
func (n N64) PutBigEndian(b []byte) {
	_ = b[byteLen-1]
	binary.BigEndian.PutUint32(b, n.hi)
	binary.BigEndian.PutUint32(b[4:], n.lo)
}

func (n N64) AppendLittleEndian(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, n.lo)
	return binary.LittleEndian.AppendUint32(b, n.hi)
}

func (n N64) AppendBigEndian(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, n.hi)
	return binary.BigEndian.AppendUint32(b, n.lo)
}

func U64FromLittleEndian(b []byte) (N64, error) { return fromBytes(b, false, false) }
func I64FromLittleEndian(b []byte) (N64, error) { return fromBytes(b, true, false) }
func U64FromBigEndian(b []byte) (N64, error)    { return fromBytes(b, false, true) }
func I64FromBigEndian(b []byte) (N64, error)    { return fromBytes(b, true, true) }

func MustU64FromLittleEndian(b []byte) N64 { return must(U64FromLittleEndian(b)) }
func MustI64FromLittleEndian(b []byte) N64 { return must(I64FromLittleEndian(b)) }
func MustU64FromBigEndian(b []byte) N64    { return must(U64FromBigEndian(b)) }
func MustI64FromBigEndian(b []byte) N64    { return must(I64FromBigEndian(b)) }

func fromBytes(b []byte, signed bool, bigEndian bool) (out N64, err error) {
	out.signed = signed
	if len(b) != byteLen {
		return out, newError("frombytes", "", strconv.Itoa(len(b))+" bytes", ErrInvalidOperand)
	}
	if bigEndian {
		out.hi, out.lo = binary.BigEndian.Uint32(b), binary.BigEndian.Uint32(b[4:])
	} else {
		out.lo, out.hi = binary.LittleEndian.Uint32(b), binary.LittleEndian.Uint32(b[4:])
	}
	return out, nil
}

func must(n N64, err error) N64 {
	if err != nil {
		panic(err)
	}
	return n
}
