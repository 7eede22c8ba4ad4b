package emulator

import (
	"github.com/ezrec/turing/translate"
)

var f = translate.From

// ErrProgram indicates the source line of a program load error.
type ErrProgram struct {
	LineNo int
	Err    error
}

func (err *ErrProgram) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}
