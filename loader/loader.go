// Package loader reads framed program images into CPU memory.
//
// A framed image is a 0x7F magic byte, a big-endian 16-bit size, and
// that many bytes of program. Bytes before the magic are skipped, which
// lets a host resynchronize with a stream that carries noise.
package loader

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/tinycpu/cpu"
)

const (
	MAGIC = 0x7f // Start of a framed program image.
)

// Loader fills CPU memory from a framed program stream.
type Loader struct {
	Verbose bool        // Set to enable verbose logging.
	Logger  *log.Logger // Destination of the load report. If nil, the standard logger.
}

// Load a framed program into memory with the default Loader.
func Load(r io.Reader, mem *cpu.Memory) (size int, err error) {
	ld := &Loader{}
	return ld.Load(r, mem)
}

func (ld *Loader) logger() *log.Logger {
	if ld.Logger != nil {
		return ld.Logger
	}
	return log.Default()
}

// readByte reads a single byte, never consuming more of r than that.
func readByte(r io.Reader) (value byte, err error) {
	if br, ok := r.(io.ByteReader); ok {
		value, err = br.ReadByte()
		return
	}

	var buff [1]byte
	_, err = io.ReadFull(r, buff[:])
	value = buff[0]
	return
}

// Load a framed program from r into mem, starting at offset zero.
// Memory beyond the loaded size is left untouched.
//
// A declared size larger than cpu.MEMORY_SIZE is clamped; the excess
// bytes are left unread in r.
func (ld *Loader) Load(r io.Reader, mem *cpu.Memory) (size int, err error) {
	skipped := 0
	for {
		var value byte
		value, err = readByte(r)
		if err != nil {
			err = errors.Join(ErrNoMagic, err)
			return
		}
		if value == MAGIC {
			break
		}
		skipped++
	}

	if ld.Verbose {
		log.Printf("loader: magic found, %d bytes skipped", skipped)
	}

	var header [2]byte
	_, err = io.ReadFull(r, header[:])
	if err != nil {
		err = errors.Join(ErrShortSize, err)
		return
	}

	declared := (int(header[0]) << 8) | int(header[1])
	size = min(declared, cpu.MEMORY_SIZE)
	if size != declared {
		ld.logger().Print(f("program truncated: declared %d bytes, loaded %d", declared, size))
	}

	if ld.Verbose {
		log.Printf("loader: reading %d bytes", size)
	}

	_, err = io.ReadFull(r, mem[:size])
	if err != nil {
		err = errors.Join(ErrShortBody, err)
		return
	}

	logger := ld.logger()
	logger.Print(f("program loaded successfully"))
	logger.Print(f("size: %d", size))

	return
}

// Frame returns the framed stream for a program image.
// Images longer than 0xffff bytes are cut to fit the size field.
func Frame(program []byte) (stream []byte) {
	program = program[:min(len(program), 0xffff)]

	stream = make([]byte, 0, 3+len(program))
	stream = append(stream, MAGIC, byte(len(program)>>8), byte(len(program)))
	stream = append(stream, program...)

	return
}
