package n64

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidRadix      = errors.New("invalid radix")
	ErrMalformedString   = errors.New("malformed string")
	ErrMagnitudeOverflow = errors.New("magnitude exceeds 53 bits")
	ErrInvalidOperand    = errors.New("invalid operand")
)

// Error describes a failed operation. Err is always one of the Err* sentinels
// in this package, so callers can match with errors.Is.
type Error struct {
	Op    string // Operation that failed, e.g. "quo" or "parse"
	Value string // Receiver in Go syntax, empty for constructors
	Input string // Offending input
	Err   error
}

func newError(op string, value string, input string, err error) *Error {
	return &Error{Op: op, Value: value, Input: input, Err: err}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("n64: ")
	sb.WriteString(e.Op)
	if e.Value != "" {
		sb.WriteString(" on ")
		sb.WriteString(e.Value)
	}
	if e.Input != "" {
		sb.WriteString(" with ")
		sb.WriteString(strconv.Quote(e.Input))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Err }
