package cpu

// The stack lives in Memory, addressed by the S register. It grows upward:
// a push stores at S then increments S, a pop decrements S then loads.
// S is 8 bits wide, so it wraps within the first 256 bytes of memory.

func (cpu *Cpu) push(value uint8) {
	cpu.Memory.Write(uint16(cpu.Register[REG_S]), value)
	cpu.Register[REG_S]++
}

func (cpu *Cpu) pop() (value uint8) {
	cpu.Register[REG_S]--
	value = cpu.Memory.Read(uint16(cpu.Register[REG_S]))
	return
}

// Peek returns the byte on top of the stack without popping it.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory.Read(uint16(cpu.Register[REG_S] - 1))
}
