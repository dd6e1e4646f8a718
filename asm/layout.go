package asm

const (
	ROM_SIZE      = 32767 // Instruction memory capacity, in words.
	VARIABLE_BASE = 16    // First RAM address handed to an unbound symbol.
	VARIABLE_TOP  = 16383 // Last RAM address available to unbound symbols.
	SCREEN_BASE   = 16384 // Start of the memory-mapped screen.
	KEYBOARD_REG  = 24576 // Memory-mapped keyboard register.
)
