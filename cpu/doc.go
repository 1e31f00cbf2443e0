// Package cpu implements the byte-code microprocessor of the tinycpu system.
//
// The CPU consists of a 16-bit program counter (PC), four 8-bit registers
// (A, S, H, L), carry and zero flags, and a 512 byte memory which holds the
// program, its data and its stack. Every memory address is reduced modulo
// the memory size, so no access can ever fall outside of the buffer.
//
// Each instruction is a single byte: the low six bits select the opcode and
// the upper two bits select a register, or a jump condition for JIC. Some
// opcodes consume one or two immediate bytes that follow the opcode.
//
// The CPU performs exactly one instruction per Tick, and stops forever once
// it executes HLT.
package cpu
