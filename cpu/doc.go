// Package cpu implements the processor and assembler for the Turing system.
//
// The CPU has two 8-bit registers (X and Y), a stack pointer that addresses
// the operand of load, store and jump instructions, a program counter, and
// sticky overflow and underflow flags. Instructions are single bytes fetched
// from a ram.Ram; eight opcodes are defined, all others execute as NOP.
//
// The assembler provides a small line-oriented language for building
// programs, supporting labels, equates, and compile-time expression
// evaluation.
package cpu
