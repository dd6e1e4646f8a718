package asm

// C_PREFIX marks a machine word as a C-instruction.
const C_PREFIX = uint16(0b111_0000000_000000)

// Comp selects one of the ALU computations of a C-instruction.
type Comp int

const (
	COMP_ZERO        = Comp(0)  // 0
	COMP_ONE         = Comp(1)  // 1
	COMP_NEG_ONE     = Comp(2)  // -1
	COMP_D           = Comp(3)  // D
	COMP_A           = Comp(4)  // A
	COMP_M           = Comp(5)  // M
	COMP_NOT_D       = Comp(6)  // !D
	COMP_NOT_A       = Comp(7)  // !A
	COMP_NOT_M       = Comp(8)  // !M
	COMP_NEG_D       = Comp(9)  // -D
	COMP_NEG_A       = Comp(10) // -A
	COMP_NEG_M       = Comp(11) // -M
	COMP_D_PLUS_ONE  = Comp(12) // D+1
	COMP_A_PLUS_ONE  = Comp(13) // A+1
	COMP_M_PLUS_ONE  = Comp(14) // M+1
	COMP_D_MINUS_ONE = Comp(15) // D-1
	COMP_A_MINUS_ONE = Comp(16) // A-1
	COMP_M_MINUS_ONE = Comp(17) // M-1
	COMP_D_PLUS_A    = Comp(18) // D+A
	COMP_D_PLUS_M    = Comp(19) // D+M
	COMP_D_MINUS_A   = Comp(20) // D-A
	COMP_D_MINUS_M   = Comp(21) // D-M
	COMP_A_MINUS_D   = Comp(22) // A-D
	COMP_M_MINUS_D   = Comp(23) // M-D
	COMP_D_AND_A     = Comp(24) // D&A
	COMP_D_AND_M     = Comp(25) // D&M
	COMP_D_OR_A      = Comp(26) // D|A
	COMP_D_OR_M      = Comp(27) // D|M
)

// compMask gives the a and c bits (word bits 12..6) of each computation.
var compMask = map[Comp]uint16{
	COMP_ZERO:        0b000_0101010_000000,
	COMP_ONE:         0b000_0111111_000000,
	COMP_NEG_ONE:     0b000_0111010_000000,
	COMP_D:           0b000_0001100_000000,
	COMP_A:           0b000_0110000_000000,
	COMP_M:           0b000_1110000_000000,
	COMP_NOT_D:       0b000_0001101_000000,
	COMP_NOT_A:       0b000_0110001_000000,
	COMP_NOT_M:       0b000_1110001_000000,
	COMP_NEG_D:       0b000_0001111_000000,
	COMP_NEG_A:       0b000_0110011_000000,
	COMP_NEG_M:       0b000_1110011_000000,
	COMP_D_PLUS_ONE:  0b000_0011111_000000,
	COMP_A_PLUS_ONE:  0b000_0110111_000000,
	COMP_M_PLUS_ONE:  0b000_1110111_000000,
	COMP_D_MINUS_ONE: 0b000_0001110_000000,
	COMP_A_MINUS_ONE: 0b000_0110010_000000,
	COMP_M_MINUS_ONE: 0b000_1110010_000000,
	COMP_D_PLUS_A:    0b000_0000010_000000,
	COMP_D_PLUS_M:    0b000_1000010_000000,
	COMP_D_MINUS_A:   0b000_0010011_000000,
	COMP_D_MINUS_M:   0b000_1010011_000000,
	COMP_A_MINUS_D:   0b000_0000111_000000,
	COMP_M_MINUS_D:   0b000_1000111_000000,
	COMP_D_AND_A:     0b000_0000000_000000,
	COMP_D_AND_M:     0b000_1000000_000000,
	COMP_D_OR_A:      0b000_0010101_000000,
	COMP_D_OR_M:      0b000_1010101_000000,
}

// Dest is the register set a C-instruction stores to, as word bits 5..3.
// Destinations combine by OR.
type Dest uint16

const (
	DEST_NONE = Dest(0b000_000)
	DEST_M    = Dest(0b001_000) // M
	DEST_D    = Dest(0b010_000) // D
	DEST_A    = Dest(0b100_000) // A
)

// Jump is the branch condition of a C-instruction, as word bits 2..0.
type Jump uint16

const (
	JUMP_NONE = Jump(0b000)
	JUMP_JGT  = Jump(0b001) // JGT
	JUMP_JEQ  = Jump(0b010) // JEQ
	JUMP_JGE  = Jump(0b011) // JGE
	JUMP_JLT  = Jump(0b100) // JLT
	JUMP_JNE  = Jump(0b101) // JNE
	JUMP_JLE  = Jump(0b110) // JLE
	JUMP_JMP  = Jump(0b111) // JMP
)

// Instruction is one assembled source line: an AInstruction or a
// CInstruction. Instructions encode themselves against a Context, which
// supplies symbol resolution.
type Instruction interface {
	// encode renders the instruction as a machine word.
	encode(ctx *Context) (uint16, error)
	// pos reports the source line number and trimmed text.
	pos() (lineno int, line string)
}

// AInstruction loads a value into the A register: "@21" or "@sum".
// Symbol is empty when the value is a literal.
type AInstruction struct {
	LineNo int
	Text   string
	Symbol string
	Value  HackInt
}

func (inst *AInstruction) pos() (int, string) {
	return inst.LineNo, inst.Text
}

func (inst *AInstruction) encode(ctx *Context) (uint16, error) {
	value := inst.Value
	if inst.Symbol != "" {
		var err error
		value, err = ctx.resolve(inst.Symbol)
		if err != nil {
			return 0, err
		}
	}

	return uint16(value), nil
}

// CInstruction computes an ALU function and optionally stores the result
// and/or jumps: "dest=comp;jump" with dest and jump optional.
type CInstruction struct {
	LineNo int
	Text   string
	Dest   Dest
	Comp   Comp
	Jump   Jump
}

func (inst *CInstruction) pos() (int, string) {
	return inst.LineNo, inst.Text
}

func (inst *CInstruction) encode(ctx *Context) (uint16, error) {
	mask, ok := compMask[inst.Comp]
	if !ok {
		panic("unknown comp")
	}

	return C_PREFIX | mask | uint16(inst.Dest) | uint16(inst.Jump), nil
}
