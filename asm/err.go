package asm

import (
	"errors"

	"github.com/n2t/hackasm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrValueMissing = errors.New(f("value missing"))
	ErrLabelSyntax  = errors.New(f("label syntax"))
	ErrDestInvalid  = errors.New(f("destination invalid"))
	ErrCompInvalid  = errors.New(f("computation invalid"))
	ErrJumpInvalid  = errors.New(f("jump invalid"))

	// Capacity errors
	ErrTooManyInstructions = errors.New(f("instruction memory full"))
	ErrTooManyVariables    = errors.New(f("variable memory full"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("'%v' out of range", string(err))
}

type ErrSymbolInvalid string

func (err ErrSymbolInvalid) Error() string {
	return f("'%v' is not a symbol", string(err))
}

type ErrNotDefined string

func (err ErrNotDefined) Error() string {
	return f("symbol %v undefined", string(err))
}

type ErrRedefined string

func (err ErrRedefined) Error() string {
	return f("symbol %v redefined", string(err))
}

type ErrRedefinedBuiltIn string

func (err ErrRedefinedBuiltIn) Error() string {
	return f("symbol %v is predefined", string(err))
}

type ErrSource struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSource) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSource) Unwrap() error {
	return err.Err
}
