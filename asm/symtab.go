package asm

// builtinSymbols are the predefined symbols every program starts with.
// They shadow user symbols and can never be reassigned.
var builtinSymbols = map[string]HackInt{
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": SCREEN_BASE,
	"KBD":    KEYBOARD_REG,
}

// SymbolTable binds case-sensitive symbol names to addresses. User symbols
// are set-once; variable addresses are handed out in sequence starting at
// VARIABLE_BASE.
type SymbolTable struct {
	symbols  map[string]HackInt
	variable HackInt // Next address for AllocateVariable.
}

// NewSymbolTable returns a table holding only the built-in symbols.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols:  map[string]HackInt{},
		variable: VARIABLE_BASE,
	}
}

// Get returns the address bound to name, checking built-ins before user
// symbols.
func (st *SymbolTable) Get(name string) (HackInt, error) {
	if value, ok := builtinSymbols[name]; ok {
		return value, nil
	}

	if value, ok := st.symbols[name]; ok {
		return value, nil
	}

	return 0, ErrNotDefined(name)
}

// Set binds name to value. Built-in names and names already bound fail.
func (st *SymbolTable) Set(name string, value HackInt) error {
	if _, ok := builtinSymbols[name]; ok {
		return ErrRedefinedBuiltIn(name)
	}

	if _, ok := st.symbols[name]; ok {
		return ErrRedefined(name)
	}

	st.symbols[name] = value

	return nil
}

// AllocateVariable binds name to the next free variable address and
// advances the cursor.
func (st *SymbolTable) AllocateVariable(name string) (HackInt, error) {
	if st.variable > VARIABLE_TOP {
		return 0, ErrTooManyVariables
	}

	value := st.variable
	if err := st.Set(name, value); err != nil {
		return 0, err
	}
	st.variable += 1

	return value, nil
}
