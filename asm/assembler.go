package asm

import (
	"io"
)

// Assembler turns Hack assembly source into machine words.
type Assembler struct {
	Verbose bool // If set, log a listing of each encoded word.
}

// Assemble runs both passes over input: the first binds every label, the
// second encodes each instruction in source order. On any error no words
// are returned.
func (asm *Assembler) Assemble(input io.Reader) ([]uint16, error) {
	parsed, err := Parse(input)
	if err != nil {
		return nil, err
	}

	ctx := NewContext()
	ctx.verbose = asm.Verbose

	for _, label := range parsed.Labels {
		if err = ctx.RegisterLabel(label); err != nil {
			return nil, err
		}
	}

	for _, inst := range parsed.Instructions {
		if err = ctx.FeedInstruction(inst); err != nil {
			return nil, err
		}
	}

	return ctx.Output(), nil
}

// Assemble assembles input with default options.
func Assemble(input io.Reader) ([]uint16, error) {
	return (&Assembler{}).Assemble(input)
}
