package emulator

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinycpu/cpu"
	tio "github.com/ezrec/tinycpu/io"
	"github.com/ezrec/tinycpu/loader"
)

// echo prints its input until it has printed a '.', then halts.
const echo = `
program = [
    INP,                        # 0
    ANI, 0xff,                  # 1
    op(JIC, IF_ZE), word(0),    # 3
    OUT,                        # 6
    XRI, text("."),             # 7
    op(JIC, IF_ZE), word(15),   # 9
    JMP, word(0),               # 12
    HLT,                        # 15
]
`

func quiet(emu *Emulator) (out *bytes.Buffer) {
	out = &bytes.Buffer{}
	emu.Logger = log.New(out, "", 0)
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Console)
	assert.Equal(cpu.STACK_RESET, emu.Cpu.Register[cpu.REG_S])
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("320", defines["SCREEN_WIDTH"])
	assert.Equal("240", defines["SCREEN_HEIGHT"])
	assert.Equal("0x04", defines["LDI_A"])
	assert.Equal("10", defines["CHAR_LF"])
	assert.Equal("16", defines["CELL_WIDTH"])
}

func TestEmulator_ScenarioA(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)
	dump := quiet(emu)

	_, err := emu.Compile("a.star", "program = [LDI_A, 3, HLT]")
	assert.NoError(err)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint8(3), emu.Cpu.Register[cpu.REG_A])

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(2, emu.Cpu.Ticks)

	assert.Contains(dump.String(), "  A: 03\n")
}

func TestEmulator_Echo(t *testing.T) {
	assert := assert.New(t)

	screen := tio.NewScreen(20, 10)
	queue := tio.NewQueue(16)
	queue.Write([]byte("HI\r."))

	emu := NewEmulator(screen, queue)
	quiet(emu)

	echoed := &bytes.Buffer{}
	emu.Console.Echo = echoed

	_, err := emu.Compile("echo.star", echo)
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)
	assert.True(emu.Cpu.Halted)
	assert.Equal(uint16(16), emu.Cpu.Pc)

	assert.Equal(byte('H'), screen.At(0, 0))
	assert.Equal(byte('I'), screen.At(1, 0))
	assert.Equal(byte('.'), screen.At(0, 1))
	assert.Equal("HI.", echoed.String())
}

func TestEmulator_Load(t *testing.T) {
	assert := assert.New(t)

	screen := tio.NewScreen(20, 10)
	queue := tio.NewQueue(4)
	queue.Send('A')

	emu := NewEmulator(screen, queue)
	diag := quiet(emu)

	program := []byte{
		byte(cpu.MakeCode(cpu.OP_INP, cpu.REG_A)),
		byte(cpu.MakeCode(cpu.OP_OUT, cpu.REG_A)),
		byte(cpu.MakeCode(cpu.OP_JMP, cpu.REG_A)), 0x00, 0x00,
	}

	size, err := emu.Load(bytes.NewReader(loader.Frame(program)))
	assert.NoError(err)
	assert.Equal(len(program), size)
	assert.Contains(diag.String(), "program loaded successfully")

	emu.Limit = 30
	err = emu.Run(context.Background())
	assert.ErrorIs(err, ErrTickLimit)

	assert.Equal(byte('A'), screen.At(0, 0))
	assert.Equal(1, screen.Draws)
	assert.Equal(tio.CELL_WIDTH, emu.Console.X)

	_, err = emu.Load(bytes.NewReader(nil))
	assert.ErrorIs(err, loader.ErrNoMagic)
}

func TestEmulator_LoadImage(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)

	err := emu.LoadImage(make([]byte, cpu.MEMORY_SIZE+1))
	assert.ErrorIs(err, ErrImageSize)

	err = emu.LoadImage([]byte{1, 2, 3})
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3}, emu.Cpu.Memory[:3])
}

func TestEmulator_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)
	_, err := emu.Compile("out.star", "program = [NOP, LDI_A, 0x41, OUT]")
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.ErrorIs(err, tio.ErrDisplayMissing)
	assert.ErrorIs(err, cpu.ErrOpcodeIo)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(uint16(3), rt.Pc)
}

func TestEmulator_Cancel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)
	_, err := emu.Compile("loop.star", "program = [JMP, word(0)]")
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Cpu.Ticks)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	screen := tio.NewScreen(4, 4)
	emu := NewEmulator(screen, nil)
	quiet(emu)

	_, err := emu.Compile("a.star", "program = [LDI_A, 3, HLT]")
	assert.NoError(err)
	assert.NoError(emu.Run(context.Background()))
	assert.True(emu.Cpu.Halted)

	emu.Console.X = 32
	err = emu.Reset()
	assert.NoError(err)
	assert.False(emu.Cpu.Halted)
	assert.Equal(uint8(0), emu.Cpu.Memory[0])
	assert.Equal(0, emu.Console.X)
}

func TestEmulator_Settings(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)
	dump := quiet(emu)

	direct := &bytes.Buffer{}
	emu.Cpu.Logger = log.New(direct, "", 0)
	emu.Cpu.Verbose = true

	_, err := emu.Compile("h.star", "program = [HLT]")
	assert.NoError(err)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	assert.False(emu.Cpu.Verbose)
	assert.Contains(dump.String(), "halted")
	assert.Equal(0, direct.Len())
}
