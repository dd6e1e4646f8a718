package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"// Computes R0 = 2 + 3.",
		"@2",
		"D=A",
		"@3",
		"D=D+A",
		"@0",
		"M=D",
	}

	words, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []uint16{
		0b0000000000000010, // @2
		0b1110110000010000, // D=A
		0b0000000000000011, // @3
		0b1110000010010000, // D=D+A
		0b0000000000000000, // @0
		0b1110001100001000, // M=D
	}
	assert.Equal(expected, words)
}

func TestAssembleLoop(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// Spin until i goes to zero.",
		"@i",
		"M=1",
		"(LOOP)",
		"@i",
		"D=M",
		"@END // forward reference",
		"D;JEQ",
		"@LOOP",
		"0;JMP",
		"(END)",
	}

	words, err := Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []uint16{
		0b0000000000010000, // @i -> 16
		0b1110111111001000, // M=1
		0b0000000000010000, // @i
		0b1111110000010000, // D=M
		0b0000000000001000, // @END -> 8
		0b1110001100000010, // D;JEQ
		0b0000000000000010, // @LOOP -> 2
		0b1110101010000111, // 0;JMP
	}
	assert.Equal(expected, words)
}

func TestAssembleForwardLabel(t *testing.T) {
	assert := assert.New(t)

	// END is referenced before its label line; it must resolve to the
	// label index, not to a fresh variable address.
	program := []string{
		"@END",
		"0;JMP",
		"(END)",
	}

	words, err := Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]uint16{0b0000000000000010, 0b1110101010000111}, words)
}

func TestAssembleVariables(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@first",
		"@second",
		"@first",
		"@R5",
		"@SCREEN",
	}

	words, err := Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]uint16{16, 17, 16, 5, 16384}, words)
}

func TestAssembleEmpty(t *testing.T) {
	assert := assert.New(t)

	words, err := Assemble(strings.NewReader("// nothing to do\n\n"))
	assert.NoError(err)
	assert.Equal(0, len(words))
}

func TestAssembleAllOrNothing(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@2",
		"D=A",
		"bogus",
	}

	words, err := Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(words)
	var se *ErrSource
	if assert.ErrorAs(err, &se) {
		assert.Equal(3, se.LineNo)
		assert.Equal("bogus", se.Line)
	}
	assert.ErrorIs(err, ErrCompInvalid)

	// A failure in label registration also yields nothing.
	program = []string{
		"(DUP)",
		"@DUP",
		"(DUP)",
	}

	words, err = Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(words)
	var redefined ErrRedefined
	assert.ErrorAs(err, &redefined)
}

func TestAssembleLabelRedefinesVariable(t *testing.T) {
	assert := assert.New(t)

	// All labels bind before any variable allocates, so a symbol used
	// both ways resolves to the label.
	program := []string{
		"@value",
		"D=A",
		"(value)",
		"0;JMP",
	}

	words, err := Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(uint16(2), words[0])
}
