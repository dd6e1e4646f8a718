// Package asm implements a two-pass assembler for the Hack computer.
//
// Hack source is plain text with one instruction per line. A-instructions
// (@value) load a 15-bit constant or symbol address into the A register,
// C-instructions (dest=comp;jump) run one of the fixed ALU computations,
// and labels ((NAME)) bind a symbol to the address of the instruction that
// follows them.
//
// The first pass registers every label, so jumps may reference labels
// defined later in the source. The second pass encodes each instruction
// into a 16-bit machine word, handing out fresh RAM addresses to symbols
// that never matched a label or a built-in. Assembly is all-or-nothing:
// any error yields no code.
package asm
