package asm

import (
	"errors"

	"github.com/ezrec/asm4004/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrEquWithoutLabel = errors.New(f("EQU without label"))
	ErrValueMissing    = errors.New(f("value missing"))

	// Operand errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrPairInvalid     = errors.New(f("register pair invalid"))
	ErrIszOperands     = errors.New(f("ISZ requires register and address"))
	ErrFimOperands     = errors.New(f("FIM requires pair,data or pair,hi,lo"))
	ErrJcnOperands     = errors.New(f("JCN requires condition and address"))
)

// ErrUnresolved is a token that is neither a literal, a register, a known
// symbol, nor a resolvable additive expression.
type ErrUnresolved string

func (err ErrUnresolved) Error() string {
	return f("unknown symbol or invalid number '%v'", string(err))
}

func (err ErrUnresolved) Is(target error) (ok bool) {
	_, ok = target.(ErrUnresolved)
	return
}

// ErrUnknownMnemonic is a mnemonic that is neither a directive nor in the
// instruction table. Pass 1 only warns about one; reaching it again in
// pass 2 is fatal.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown instruction '%v'", string(err))
}

func (err ErrUnknownMnemonic) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownMnemonic)
	return
}

// ErrLine wraps an error with the source line that caused it. Every fatal
// assembly error surfaces wrapped in one.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
