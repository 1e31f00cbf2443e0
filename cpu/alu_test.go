package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for v := range 256 {
		for d := -255; d <= 255; d++ {
			cpu.Register[REG_L] = uint8(v)
			cpu.add(REG_L, d)

			result := uint8((v + d + 256) % 256)
			assert.Equal(result, cpu.Register[REG_L])
			if cpu.Carry != (v+d > 255) || cpu.Zero != (result == 0) {
				t.Fatalf("add(%d, %d): CY=%v ZE=%v", v, d, cpu.Carry, cpu.Zero)
			}
		}
	}
}

func TestAdd_Subtract_NoCarry(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// A borrow is not reported as carry.
	cpu.Register[REG_A] = 1
	cpu.Carry = true
	cpu.add(REG_A, -2)
	assert.Equal(uint8(0xff), cpu.Register[REG_A])
	assert.False(cpu.Carry)
	assert.False(cpu.Zero)

	cpu.add(REG_A, 1)
	assert.Equal(uint8(0), cpu.Register[REG_A])
	assert.True(cpu.Carry)
	assert.True(cpu.Zero)
}

func TestLogic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Opcode
		a      uint8
		value  uint8
		result uint8
	}){
		{OP_ANI, 0xf0, 0x3c, 0x30},
		{OP_AND, 0xf0, 0x0f, 0x00},
		{OP_ORI, 0xf0, 0x0f, 0xff},
		{OP_ORA, 0x00, 0x00, 0x00},
		{OP_XRI, 0xff, 0x0f, 0xf0},
		{OP_XRA, 0x5a, 0x5a, 0x00},
	}

	for _, entry := range table {
		for _, carry := range []bool{false, true} {
			cpu := NewCpu()
			cpu.Register[REG_A] = entry.a
			cpu.Carry = carry
			cpu.logic(entry.op, entry.value)
			assert.Equal(entry.result, cpu.Register[REG_A], entry.op.String())
			assert.Equal(entry.result == 0, cpu.Zero, entry.op.String())
			assert.Equal(carry, cpu.Carry, entry.op.String())
		}
	}
}

func TestTest(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for _, zero := range []bool{false, true} {
		for _, carry := range []bool{false, true} {
			cpu.Zero = zero
			cpu.Carry = carry
			assert.Equal(zero, cpu.test(COND_ZE))
			assert.Equal(carry, cpu.test(COND_CY))
			assert.Equal(!zero, cpu.test(COND_NZ))
			assert.Equal(!carry, cpu.test(COND_NC))
		}
	}
}
