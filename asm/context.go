package asm

import (
	"errors"
	"log"
	"slices"
)

// Context is the mutable state of one assembly run: the symbol table and
// the machine words emitted so far. Labels must all be registered before
// the first instruction is fed, so that forward references resolve.
type Context struct {
	symbols *SymbolTable
	output  []uint16
	verbose bool
}

// NewContext returns a Context with an empty program and only the built-in
// symbols defined.
func NewContext() *Context {
	return &Context{symbols: NewSymbolTable()}
}

// RegisterLabel binds a label to its instruction index.
func (ctx *Context) RegisterLabel(label Label) (err error) {
	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: label.LineNo, Line: label.Text, Err: err}
		}
	}()

	value, err := NewHackInt(label.Index)
	if err != nil {
		return err
	}

	return ctx.symbols.Set(label.Name, value)
}

// FeedInstruction encodes one instruction and appends its machine word to
// the program.
func (ctx *Context) FeedInstruction(inst Instruction) (err error) {
	lineno, line := inst.pos()
	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if len(ctx.output) >= ROM_SIZE {
		return ErrTooManyInstructions
	}

	word, err := inst.encode(ctx)
	if err != nil {
		return err
	}

	if ctx.verbose {
		log.Printf("%5d: %016b  %v\n", len(ctx.output), word, line)
	}
	ctx.output = append(ctx.output, word)

	return nil
}

// Output returns a copy of the assembled machine words.
func (ctx *Context) Output() []uint16 {
	return slices.Clone(ctx.output)
}

// resolve returns the address bound to name, allocating a fresh variable
// address when name is not defined. Any other lookup failure is passed
// through untouched.
func (ctx *Context) resolve(name string) (HackInt, error) {
	value, err := ctx.symbols.Get(name)
	if err == nil {
		return value, nil
	}

	var undefined ErrNotDefined
	if !errors.As(err, &undefined) {
		return 0, err
	}

	return ctx.symbols.AllocateVariable(name)
}
