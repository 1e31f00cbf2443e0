// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package image builds program images from Starlark scripts.
//
// A script assigns a list to the global `program`. Elements are byte
// values, or lists and tuples of them, which are flattened in order.
// The script sees every integer define of the CPU (opcodes such as
// LDI_A, register selectors REG_A..REG_L, jump conditions IF_ZE..IF_NC,
// MEMORY_SIZE) plus these builtins:
//
//	op(opcode, reg=0)  instruction byte with a register selector
//	word(addr)         little-endian pair [lo, hi]
//	text(s)            the bytes of s
//
// For example, a program that echoes its input:
//
//	program = [
//	    INP,
//	    OUT,
//	    JMP, word(0),
//	]
package image

import (
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tinycpu/cpu"
)

const (
	PROGRAM = "program" // Global holding the image.
)

// Script compiles image scripts.
type Script struct {
	Verbose bool                      // Set to enable verbose logging.
	Defines iter.Seq2[string, string] // Integer constants visible to scripts. If nil, the CPU defines.
	Globals starlark.StringDict       // Globals of the last compiled script.
}

// Compile a script with the CPU defines.
func Compile(filename string, src any) (image []byte, err error) {
	sc := &Script{}
	return sc.Compile(filename, src)
}

func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"op":   starlark.NewBuiltin("op", builtinOp),
		"word": starlark.NewBuiltin("word", builtinWord),
		"text": starlark.NewBuiltin("text", builtinText),
	}

	defines := sc.Defines
	if defines == nil {
		defines = (&cpu.Cpu{}).Defines()
	}

	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	return
}

// Compile a script into a program image. src is as for
// starlark.ExecFileOptions: a string, []byte, io.Reader, or nil to read
// filename.
func (sc *Script) Compile(filename string, src any) (image []byte, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("image: %s", msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, sc.predeclared())
	if err != nil {
		return
	}
	sc.Globals = globals

	program, ok := globals[PROGRAM]
	if !ok {
		err = ErrNoProgram
		return
	}

	image, err = flatten(image, program)
	if err != nil {
		return
	}

	if len(image) > cpu.MEMORY_SIZE {
		err = ErrTooLarge
		image = nil
		return
	}

	if sc.Verbose {
		log.Printf("image: %v: %d bytes", filename, len(image))
	}

	return
}

// flatten appends the bytes of value to image.
func flatten(image []byte, value starlark.Value) ([]byte, error) {
	switch v := value.(type) {
	case starlark.Int:
		n, ok := v.Int64()
		if !ok || n < 0 || n > 0xff {
			return image, &ErrValue{Index: len(image), Value: v.String()}
		}
		image = append(image, byte(n))
	case starlark.String, starlark.Bytes:
		return image, &ErrValue{Index: len(image), Value: v.String()}
	case starlark.Indexable:
		var err error
		for n := range v.Len() {
			image, err = flatten(image, v.Index(n))
			if err != nil {
				return image, err
			}
		}
	default:
		return image, &ErrValue{Index: len(image), Value: value.String()}
	}

	return image, nil
}

func builtinOp(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var opcode, reg int
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "opcode", &opcode, "reg?", &reg)
	if err != nil {
		return nil, err
	}

	if opcode < 0 || opcode > cpu.OP_MASK {
		return nil, &ErrArgument{Builtin: b.Name(), Name: "opcode", Value: opcode}
	}
	if reg < int(cpu.REG_A) || reg > int(cpu.REG_L) {
		return nil, &ErrArgument{Builtin: b.Name(), Name: "reg", Value: reg}
	}

	code := cpu.MakeCode(cpu.Opcode(opcode), cpu.Reg(reg))
	return starlark.MakeInt(int(code)), nil
}

func builtinWord(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr)
	if err != nil {
		return nil, err
	}

	if addr < 0 || addr > 0xffff {
		return nil, &ErrArgument{Builtin: b.Name(), Name: "addr", Value: addr}
	}

	return starlark.NewList([]starlark.Value{
		starlark.MakeInt(addr & 0xff),
		starlark.MakeInt(addr >> 8),
	}), nil
}

func builtinText(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s)
	if err != nil {
		return nil, err
	}

	elems := make([]starlark.Value, len(s))
	for n := range len(s) {
		elems[n] = starlark.MakeInt(int(s[n]))
	}

	return starlark.NewList(elems), nil
}
