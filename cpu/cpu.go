package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tinycpu/io"
)

// Port is the character I/O port used by INP and OUT.
type Port io.Port

const (
	STACK_RESET = uint8((MEMORY_SIZE - 1) & 0xff) // Initial value of S.
)

var _cpu_defines = func() (defines map[string]string) {
	defines = map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
		"STACK_RESET": fmt.Sprintf("0x%02x", STACK_RESET),
	}
	for op := OP_LD_A; op <= OP_HLT; op++ {
		defines[op.String()] = fmt.Sprintf("0x%02x", int(op))
	}
	for reg := REG_A; reg <= REG_L; reg++ {
		defines["REG_"+reg.String()] = fmt.Sprintf("%d", int(reg))
	}
	for cond := COND_ZE; cond <= COND_NC; cond++ {
		defines["IF_"+cond.String()] = fmt.Sprintf("%d", int(cond))
	}
	return
}()

// Cpu is the simulation context for the byte-code processor.
type Cpu struct {
	Verbose bool        // Set to enable verbose logging.
	Logger  *log.Logger // Destination of the halt register dump. If nil, the standard logger.
	Port    Port        // Character I/O port. If nil, INP reads 0 and OUT is discarded.

	Memory   Memory   // Program, data and stack.
	Register [4]uint8 // Register bank, indexed by Reg.
	Pc       uint16   // Program counter.
	Carry    bool     // CY flag.
	Zero     bool     // ZE flag.
	Halted   bool     // Set by HLT, never cleared except by Reset.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a CPU in its power-on state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Sets the stack pointer to STACK_RESET.
// - Leaves the halted state.
//
// Reset is never performed by the CPU itself; it is the host's power cycle.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REG_S] = STACK_RESET
	cpu.Pc = 0
	cpu.Carry = false
	cpu.Zero = false
	cpu.Halted = false
	cpu.Ticks = 0
}

// String returns the current CPU state as a register dump.
func (cpu *Cpu) String() (text string) {
	for reg := REG_A; reg <= REG_L; reg++ {
		text += fmt.Sprintf("% 3s: %02X\n", reg.String(), cpu.Register[reg])
	}

	flag := func(set bool) int {
		if set {
			return 1
		}
		return 0
	}

	text += fmt.Sprintf("% 3s: %04X\n", "PC", cpu.Pc)
	text += fmt.Sprintf("% 3s: %d\n", "CY", flag(cpu.Carry))
	text += fmt.Sprintf("% 3s: %d\n", "ZE", flag(cpu.Zero))

	return
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Logger != nil {
		return cpu.Logger
	}
	return log.Default()
}

// Tick executes a single CPU instruction cycle.
// Once halted, Tick changes nothing and returns ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	pc := cpu.Pc
	code := Code(cpu.Memory.Read(pc))
	cpu.Pc = pc + 1

	if cpu.Verbose {
		log.Printf("cpu: %03x: %v", cpu.Memory.Addr(pc), code)
	}

	err = cpu.Execute(code)

	cpu.Ticks++

	return
}

// consume advances the PC past count immediate bytes.
func (cpu *Cpu) consume(count uint16) {
	cpu.Pc += count
}

// Execute executes a single decoded instruction, whose immediates
// (if any) are at the current PC.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	mem := &cpu.Memory
	a := &cpu.Register[REG_A]

	// Operands are decoded up front; the PC only advances past
	// the immediates an opcode actually uses.
	op := code.Op()
	src := cpu.Register[code.Reg()]
	imm := mem.Read(cpu.Pc)
	word := mem.Word(cpu.Pc)
	hl := (uint16(cpu.Register[REG_H]) << 8) | uint16(cpu.Register[REG_L])

	switch op {
	case OP_LD_A, OP_LD_S, OP_LD_H, OP_LD_L:
		cpu.Register[Reg(op-OP_LD_A)] = src
	case OP_LDI_A:
		cpu.consume(1)
		*a = imm
	case OP_LDI_S:
		cpu.consume(1)
		cpu.Register[REG_S] = imm
	case OP_LDI_L:
		cpu.consume(1)
		cpu.Register[REG_L] = imm
	case OP_ADI:
		cpu.consume(1)
		cpu.add(REG_A, int(imm))
	case OP_SUI:
		cpu.consume(1)
		cpu.add(REG_A, -int(imm))
	case OP_ANI, OP_ORI, OP_XRI:
		cpu.consume(1)
		cpu.logic(op, imm)
	case OP_ADD:
		cpu.consume(2)
		cpu.add(REG_A, int(mem.Read(word)))
	case OP_SUB:
		cpu.consume(2)
		cpu.add(REG_A, -int(mem.Read(word)))
	case OP_AND, OP_ORA, OP_XRA:
		cpu.consume(2)
		cpu.logic(op, mem.Read(word))
	case OP_LDA:
		cpu.consume(2)
		*a = mem.Read(word)
	case OP_STA:
		cpu.consume(2)
		mem.Write(word, *a)
	case OP_LDH:
		*a = mem.Read(hl)
	case OP_STH:
		mem.Write(hl, *a)
	case OP_JMP:
		cpu.Pc = word
	case OP_JIC:
		cpu.consume(2)
		if cpu.test(code.Cond()) {
			cpu.Pc = word
		}
	case OP_INL:
		cpu.add(REG_L, 1)
	case OP_DEL:
		cpu.add(REG_L, -1)
	case OP_AHI:
		cpu.add(REG_H, cpu.carry())
	case OP_AHD:
		cpu.add(REG_H, -cpu.carry())
	case OP_NOP:
		// pass
	case OP_CLC:
		cpu.Carry = false
	case OP_SEC:
		cpu.Carry = true
	case OP_OUT:
		if cpu.Port != nil {
			err = cpu.Port.Put(*a)
			if err != nil {
				err = errors.Join(ErrOpcodeIo, err)
				return
			}
		}
	case OP_INP:
		*a = 0
		if cpu.Port != nil {
			if value, ok := cpu.Port.Poll(); ok {
				*a = value
			}
		}
	case OP_PHA:
		cpu.push(*a)
	case OP_PHH:
		cpu.push(cpu.Register[REG_H])
	case OP_PHL:
		cpu.push(cpu.Register[REG_L])
	case OP_PLA:
		*a = cpu.pop()
	case OP_PLH:
		cpu.Register[REG_H] = cpu.pop()
	case OP_PLL:
		cpu.Register[REG_L] = cpu.pop()
	case OP_HLT:
		cpu.Halted = true
		cpu.logger().Print(f("cpu: halted") + "\n" + cpu.String())
	default:
		// Unassigned opcodes are no-ops.
	}

	return
}
