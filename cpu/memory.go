package cpu

const (
	MEMORY_SIZE = 512 // Size of the memory buffer, a power of two.
)

// Memory is the program, data and stack store of the CPU.
// All accesses wrap around modulo MEMORY_SIZE.
type Memory [MEMORY_SIZE]byte

// Addr reduces a logical address to a memory index.
func (mem *Memory) Addr(addr uint16) uint16 {
	return addr % MEMORY_SIZE
}

// Read the byte at addr.
func (mem *Memory) Read(addr uint16) byte {
	return mem[mem.Addr(addr)]
}

// Write value to the byte at addr.
func (mem *Memory) Write(addr uint16, value byte) {
	mem[mem.Addr(addr)] = value
}

// Word reads the little-endian 16-bit word at addr and addr+1.
func (mem *Memory) Word(addr uint16) uint16 {
	return uint16(mem.Read(addr)) | (uint16(mem.Read(addr+1)) << 8)
}
