package cpu

import (
	"github.com/ezrec/turing/translate"
)

var f = translate.From

// ErrMessage is a sentinel error, translated when it is rendered.
type ErrMessage string

func (err ErrMessage) Error() string {
	return f(string(err))
}

var (
	// Assembler errors
	ErrEquateSyntax       error = ErrMessage(".equ syntax")
	ErrEquateDuplicate    error = ErrMessage(".equ duplicated")
	ErrLabelDuplicate     error = ErrMessage("label duplicated")
	ErrLabelInvalid       error = ErrMessage("label invalid")
	ErrOpcodeExtraArgs    error = ErrMessage("excessive arguments")
	ErrOpcodeValueMissing error = ErrMessage("value missing")
)

// ErrProgramSize is returned when a program does not fit below PROGRAM_LIMIT.
type ErrProgramSize int

func (err ErrProgramSize) Error() string {
	return f("program size %d exceeds maximum %d", int(err), PROGRAM_LIMIT-1)
}

func (err ErrProgramSize) Is(target error) (ok bool) {
	_, ok = target.(ErrProgramSize)
	return
}

type ErrOpcodeInvalid string

func (err ErrOpcodeInvalid) Error() string {
	return f("'%v' is not an opcode", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange int64

func (err ErrValueRange) Error() string {
	return f("value %d does not fit in a byte", int64(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
