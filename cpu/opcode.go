package cpu

import (
	"fmt"
)

// Opcode is the 6-bit operation field of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,Reg,Cond -output=opcode_string.go
const (
	OP_LD_A  = Opcode(0)  // LD_A
	OP_LD_S  = Opcode(1)  // LD_S
	OP_LD_H  = Opcode(2)  // LD_H
	OP_LD_L  = Opcode(3)  // LD_L
	OP_LDI_A = Opcode(4)  // LDI_A
	OP_LDI_S = Opcode(5)  // LDI_S
	OP_LDI_L = Opcode(6)  // LDI_L
	OP_ADI   = Opcode(7)  // ADI
	OP_SUI   = Opcode(8)  // SUI
	OP_ANI   = Opcode(9)  // ANI
	OP_ORI   = Opcode(10) // ORI
	OP_XRI   = Opcode(11) // XRI
	OP_ADD   = Opcode(12) // ADD
	OP_SUB   = Opcode(13) // SUB
	OP_AND   = Opcode(14) // AND
	OP_ORA   = Opcode(15) // ORA
	OP_XRA   = Opcode(16) // XRA
	OP_LDA   = Opcode(17) // LDA
	OP_STA   = Opcode(18) // STA
	OP_LDH   = Opcode(19) // LDH
	OP_STH   = Opcode(20) // STH
	OP_JMP   = Opcode(21) // JMP
	OP_JIC   = Opcode(22) // JIC
	OP_INL   = Opcode(23) // INL
	OP_DEL   = Opcode(24) // DEL
	OP_AHI   = Opcode(25) // AHI
	OP_AHD   = Opcode(26) // AHD
	OP_NOP   = Opcode(27) // NOP
	OP_CLC   = Opcode(28) // CLC
	OP_SEC   = Opcode(29) // SEC
	OP_OUT   = Opcode(30) // OUT
	OP_INP   = Opcode(31) // INP
	OP_PHA   = Opcode(32) // PHA
	OP_PHH   = Opcode(33) // PHH
	OP_PHL   = Opcode(34) // PHL
	OP_PLA   = Opcode(35) // PLA
	OP_PLH   = Opcode(36) // PLH
	OP_PLL   = Opcode(37) // PLL
	OP_HLT   = Opcode(38) // HLT

	OP_MASK = 0x3f // Mask of the opcode field.
)

// Reg is the 2-bit register selector field of an instruction.
type Reg int

const (
	REG_A = Reg(0) // A
	REG_S = Reg(1) // S
	REG_H = Reg(2) // H
	REG_L = Reg(3) // L
)

// Cond is the register selector field of JIC, read as a jump condition.
type Cond int

const (
	COND_ZE = Cond(0) // ZE
	COND_CY = Cond(1) // CY
	COND_NZ = Cond(2) // NZ
	COND_NC = Cond(3) // NC
)

// Code is a single instruction byte.
type Code byte

// MakeCode creates an instruction from an opcode and a register selector.
func MakeCode(op Opcode, reg Reg) Code {
	return Code((byte(op) & OP_MASK) | (byte(reg&3) << 6))
}

// MakeCodeJic creates a conditional jump instruction.
func MakeCodeJic(cond Cond) Code {
	return MakeCode(OP_JIC, Reg(cond))
}

// Op returns the opcode field.
func (code Code) Op() Opcode {
	return Opcode(code & OP_MASK)
}

// Reg returns the register selector field.
func (code Code) Reg() Reg {
	return Reg((code >> 6) & 3)
}

// Cond returns the register selector field as a jump condition.
func (code Code) Cond() Cond {
	return Cond(code.Reg())
}

// ImmediateNeed returns the number of immediate bytes consumed by this instruction.
func (code Code) ImmediateNeed() int {
	switch code.Op() {
	case OP_LDI_A, OP_LDI_S, OP_LDI_L,
		OP_ADI, OP_SUI, OP_ANI, OP_ORI, OP_XRI:
		return 1
	case OP_ADD, OP_SUB, OP_AND, OP_ORA, OP_XRA,
		OP_LDA, OP_STA, OP_JMP, OP_JIC:
		return 2
	}

	return 0
}

// String returns the mnemonic of the instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_LD_A, OP_LD_S, OP_LD_H, OP_LD_L:
		out = fmt.Sprintf("%v.%v", op.String(), code.Reg().String())
	case OP_JIC:
		out = fmt.Sprintf("%v.%v", op.String(), code.Cond().String())
	default:
		if op > OP_HLT {
			out = fmt.Sprintf("%v.%02x", OP_NOP.String(), uint8(op))
		} else {
			out = op.String()
		}
	}

	return
}
