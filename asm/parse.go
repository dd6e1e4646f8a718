package asm

import (
	"bufio"
	"io"
	"strings"
)

// Label binds a name to the index of the instruction that follows it.
type Label struct {
	LineNo int    // Source line of the label.
	Text   string // Trimmed source text.
	Name   string // Symbol name between the parentheses.
	Index  int    // Instruction index the label points at.
}

// Parsed is the instruction stream and label list of one source text, both
// in source order. Labels do not occupy instruction indexes.
type Parsed struct {
	Instructions []Instruction
	Labels       []Label
}

// compOf maps computation spellings to their canonical Comp. Commutative
// operators fold both operand orders onto one computation; subtraction
// keeps each order distinct.
var compOf = map[string]Comp{
	"0":   COMP_ZERO,
	"1":   COMP_ONE,
	"-1":  COMP_NEG_ONE,
	"D":   COMP_D,
	"A":   COMP_A,
	"M":   COMP_M,
	"!D":  COMP_NOT_D,
	"!A":  COMP_NOT_A,
	"!M":  COMP_NOT_M,
	"-D":  COMP_NEG_D,
	"-A":  COMP_NEG_A,
	"-M":  COMP_NEG_M,
	"D+1": COMP_D_PLUS_ONE,
	"A+1": COMP_A_PLUS_ONE,
	"M+1": COMP_M_PLUS_ONE,
	"D-1": COMP_D_MINUS_ONE,
	"A-1": COMP_A_MINUS_ONE,
	"M-1": COMP_M_MINUS_ONE,
	"D+A": COMP_D_PLUS_A,
	"A+D": COMP_D_PLUS_A,
	"D+M": COMP_D_PLUS_M,
	"M+D": COMP_D_PLUS_M,
	"D-A": COMP_D_MINUS_A,
	"D-M": COMP_D_MINUS_M,
	"A-D": COMP_A_MINUS_D,
	"M-D": COMP_M_MINUS_D,
	"D&A": COMP_D_AND_A,
	"A&D": COMP_D_AND_A,
	"D&M": COMP_D_AND_M,
	"M&D": COMP_D_AND_M,
	"D|A": COMP_D_OR_A,
	"A|D": COMP_D_OR_A,
	"D|M": COMP_D_OR_M,
	"M|D": COMP_D_OR_M,
}

// jumpOf maps jump mnemonics.
var jumpOf = map[string]Jump{
	"JGT": JUMP_JGT,
	"JEQ": JUMP_JEQ,
	"JGE": JUMP_JGE,
	"JLT": JUMP_JLT,
	"JNE": JUMP_JNE,
	"JLE": JUMP_JLE,
	"JMP": JUMP_JMP,
}

// Parse reads Hack assembly from input. Blank lines and '//' comments are
// discarded; every remaining line must be an A-instruction, a C-instruction,
// or a label. Errors identify the offending line.
func Parse(input io.Reader) (parsed *Parsed, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: lineno, Line: line, Err: err}
			parsed = nil
		}
	}()

	parsed = &Parsed{}
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line, _, _ = strings.Cut(text, "//")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line[0] {
		case '@':
			var inst *AInstruction
			inst, err = parseA(line, lineno)
			if err != nil {
				return
			}
			parsed.Instructions = append(parsed.Instructions, inst)
		case '(':
			var label Label
			label, err = parseLabel(line, lineno, len(parsed.Instructions))
			if err != nil {
				return
			}
			parsed.Labels = append(parsed.Labels, label)
		default:
			var inst *CInstruction
			inst, err = parseC(line, lineno)
			if err != nil {
				return
			}
			parsed.Instructions = append(parsed.Instructions, inst)
		}
	}
	err = scanner.Err()

	return
}

// parseA parses "@value", where value is a decimal literal or a symbol.
func parseA(line string, lineno int) (*AInstruction, error) {
	value := line[1:]
	if value == "" {
		return nil, ErrValueMissing
	}

	inst := &AInstruction{LineNo: lineno, Text: line}

	if value[0] >= '0' && value[0] <= '9' {
		number, err := ParseHackInt(value)
		if err != nil {
			return nil, err
		}
		inst.Value = number
		return inst, nil
	}

	if !isSymbolName(value) {
		return nil, ErrSymbolInvalid(value)
	}
	inst.Symbol = value

	return inst, nil
}

// parseLabel parses "(NAME)". index is the position the next instruction
// will occupy.
func parseLabel(line string, lineno int, index int) (Label, error) {
	name, ok := strings.CutSuffix(line[1:], ")")
	if !ok {
		return Label{}, ErrLabelSyntax
	}

	if !isSymbolName(name) {
		return Label{}, ErrSymbolInvalid(name)
	}

	return Label{LineNo: lineno, Text: line, Name: name, Index: index}, nil
}

// parseC parses "dest=comp;jump", dest and jump optional.
func parseC(line string, lineno int) (*CInstruction, error) {
	inst := &CInstruction{LineNo: lineno, Text: line}

	comp := line
	if dest, after, found := strings.Cut(comp, "="); found {
		var err error
		inst.Dest, err = parseDest(dest)
		if err != nil {
			return nil, err
		}
		comp = after
	}

	if before, jump, found := strings.Cut(comp, ";"); found {
		var ok bool
		inst.Jump, ok = jumpOf[jump]
		if !ok {
			return nil, ErrJumpInvalid
		}
		comp = before
	}

	var ok bool
	inst.Comp, ok = compOf[comp]
	if !ok {
		return nil, ErrCompInvalid
	}

	return inst, nil
}

// parseDest parses a destination register set: at most one each of A, D,
// and M, in any order.
func parseDest(text string) (dest Dest, err error) {
	if text == "" {
		return DEST_NONE, ErrDestInvalid
	}

	for _, c := range []byte(text) {
		var bit Dest
		switch c {
		case 'A':
			bit = DEST_A
		case 'D':
			bit = DEST_D
		case 'M':
			bit = DEST_M
		default:
			return DEST_NONE, ErrDestInvalid
		}
		if dest&bit != 0 {
			return DEST_NONE, ErrDestInvalid
		}
		dest |= bit
	}

	return dest, nil
}

// isSymbolName reports whether text is a valid symbol name: a letter
// followed by letters, digits, '_', '.', '$', or ':'.
func isSymbolName(text string) bool {
	if text == "" {
		return false
	}

	for n, c := range []byte(text) {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case n > 0 && c >= '0' && c <= '9':
		case n > 0 && (c == '_' || c == '.' || c == '$' || c == ':'):
		default:
			return false
		}
	}

	return true
}
