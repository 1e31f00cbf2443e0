package cpu

// add is the add-with-carry primitive. The signed delta is added to the
// register; CY is set only when the sum exceeds 255, so a subtraction never
// sets CY. ZE reflects the truncated 8-bit result.
func (cpu *Cpu) add(reg Reg, delta int) {
	sum := int(cpu.Register[reg]) + delta
	result := uint8(sum)

	cpu.Carry = sum > 0xff
	cpu.Zero = result == 0
	cpu.Register[reg] = result
}

// logic applies the bitwise operation of op to A. Only ZE is updated.
func (cpu *Cpu) logic(op Opcode, value uint8) {
	a := &cpu.Register[REG_A]

	switch op {
	case OP_ANI, OP_AND:
		*a &= value
	case OP_ORI, OP_ORA:
		*a |= value
	case OP_XRI, OP_XRA:
		*a ^= value
	}

	cpu.Zero = *a == 0
}

// carry returns CY as an integer delta.
func (cpu *Cpu) carry() int {
	if cpu.Carry {
		return 1
	}
	return 0
}

// test evaluates a JIC condition against the flags.
func (cpu *Cpu) test(cond Cond) bool {
	switch cond {
	case COND_ZE:
		return cpu.Zero
	case COND_CY:
		return cpu.Carry
	case COND_NZ:
		return !cpu.Zero
	case COND_NC:
		return !cpu.Carry
	}

	return false
}
