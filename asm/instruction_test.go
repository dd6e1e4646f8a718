package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCInstructionEncode(t *testing.T) {
	assert := assert.New(t)

	ctx := NewContext()

	table := [](struct {
		inst CInstruction
		word uint16
	}){
		{CInstruction{Comp: COMP_ZERO, Jump: JUMP_JMP}, 0b1110101010000111},
		{CInstruction{Dest: DEST_D, Comp: COMP_A}, 0b1110110000010000},
		{CInstruction{Dest: DEST_D, Comp: COMP_D_PLUS_A}, 0b1110000010010000},
		{CInstruction{Dest: DEST_M, Comp: COMP_D}, 0b1110001100001000},
		{CInstruction{Dest: DEST_M, Comp: COMP_ONE}, 0b1110111111001000},
		{CInstruction{Dest: DEST_D, Comp: COMP_M}, 0b1111110000010000},
		{CInstruction{Comp: COMP_D, Jump: JUMP_JEQ}, 0b1110001100000010},
		{CInstruction{Dest: DEST_A | DEST_M | DEST_D, Comp: COMP_M_PLUS_ONE}, 0b1111110111111000},
		{CInstruction{Dest: DEST_D, Comp: COMP_D_MINUS_M}, 0b1111010011010000},
		{CInstruction{Comp: COMP_A_MINUS_D}, 0b1110000111000000},
		{CInstruction{Comp: COMP_NOT_M, Jump: JUMP_JLT}, 0b1111110001000100},
		{CInstruction{Dest: DEST_A, Comp: COMP_NEG_ONE}, 0b1110111010100000},
	}

	for _, entry := range table {
		word, err := entry.inst.encode(ctx)
		assert.NoError(err)
		assert.Equal(entry.word, word, "%016b != %016b", entry.word, word)
	}
}

func TestCompMask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(28, len(compMask))

	// Every mask stays within the a and c bits, and no two computations
	// share an encoding.
	seen := map[uint16]Comp{}
	for comp, mask := range compMask {
		assert.Zero(mask&^uint16(0b000_1111111_000000), "comp %d", comp)
		prev, dup := seen[mask]
		assert.False(dup, "comp %d and %d share mask %07b", comp, prev, mask>>6)
		seen[mask] = comp
	}
}

func TestAInstructionEncode(t *testing.T) {
	assert := assert.New(t)

	ctx := NewContext()

	inst := &AInstruction{Value: 2}
	word, err := inst.encode(ctx)
	assert.NoError(err)
	assert.Equal(uint16(2), word)

	// The top bit is always clear.
	inst = &AInstruction{Value: HACKINT_MAX}
	word, err = inst.encode(ctx)
	assert.NoError(err)
	assert.Equal(uint16(0x7fff), word)

	inst = &AInstruction{Symbol: "KBD"}
	word, err = inst.encode(ctx)
	assert.NoError(err)
	assert.Equal(uint16(24576), word)

	// Unknown symbols allocate a variable address, stable across uses.
	inst = &AInstruction{Symbol: "counter"}
	word, err = inst.encode(ctx)
	assert.NoError(err)
	assert.Equal(uint16(VARIABLE_BASE), word)

	word, err = inst.encode(ctx)
	assert.NoError(err)
	assert.Equal(uint16(VARIABLE_BASE), word)
}
