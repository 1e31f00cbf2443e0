// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	goio "io"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/tinycpu/emulator"
	"github.com/ezrec/tinycpu/internal"
	"github.com/ezrec/tinycpu/io"
	"github.com/ezrec/tinycpu/loader"
	"github.com/ezrec/tinycpu/translate"
)

const (
	DEFAULT_COLS = emulator.SCREEN_WIDTH / io.CELL_WIDTH
	DEFAULT_ROWS = emulator.SCREEN_HEIGHT / io.LINE_HEIGHT
)

type options struct {
	compile string
	load    string
	binary  string
	serial  string
	baud    int
	save    string
	input   string
	cols    int
	rows    int
	raw     bool
	limit   int
	defines bool
	verbose bool
}

func main() {
	var opt options

	flag.StringVar(&opt.compile, "c", "", ".star image script to compile")
	flag.StringVar(&opt.load, "l", "", "Framed program stream to load ('-' for stdin)")
	flag.StringVar(&opt.binary, "b", "", "Raw program image to load")
	flag.StringVar(&opt.serial, "serial", "", "Serial device for program, input and echo")
	flag.IntVar(&opt.baud, "baud", 115200, "Serial device speed")
	flag.StringVar(&opt.save, "s", "", "Save framed program stream, do not execute")
	flag.StringVar(&opt.input, "i", "-", "Console input")
	flag.IntVar(&opt.cols, "cols", 0, "Display width in cells (default: terminal width)")
	flag.IntVar(&opt.rows, "rows", 0, "Display height in cells (default: terminal height)")
	flag.BoolVar(&opt.raw, "raw", false, "Put the terminal in raw mode while running")
	flag.IntVar(&opt.limit, "max", 0, "Maximum ticks to run (0 is unlimited)")
	flag.BoolVar(&opt.defines, "defines", false, "List the image script defines, do not execute")
	flag.BoolVar(&opt.verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if opt.defines {
		emu := emulator.NewEmulator(nil, nil)
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			err := translate.Fprint(os.Stdout, "%v = %v\n", key, value)
			if err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	err := run(&opt)
	if err != nil {
		log.Fatal(err)
	}
}

// geometry picks the display size in cells.
func geometry(opt *options) (cols, rows int) {
	cols, rows = opt.cols, opt.rows
	if cols > 0 && rows > 0 {
		return
	}

	tcols, trows, err := termGeometry(os.Stdout)
	if err != nil || tcols <= 0 || trows <= 0 {
		if opt.verbose {
			log.Printf("tinycpu: terminal geometry: %v", err)
		}
		tcols, trows = DEFAULT_COLS, DEFAULT_ROWS
	}

	if cols <= 0 {
		cols = tcols
	}
	if rows <= 0 {
		rows = trows
	}

	return
}

// openInput opens a named stream, with '-' as stdin.
func openInput(path string) (r goio.ReadCloser, err error) {
	if path == "-" {
		r = goio.NopCloser(os.Stdin)
		return
	}

	r, err = os.Open(path)
	return
}

func run(opt *options) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var serial goio.ReadWriteCloser
	if len(opt.serial) != 0 {
		port, err := openSerial(opt.serial, opt.baud, opt.verbose)
		if err != nil {
			return err
		}
		defer port.Close()
		serial = port
	}

	cols, rows := geometry(opt)
	display := &io.Terminal{Output: os.Stdout, Cols: cols, Rows: rows}

	// The input pump is started once the program is loaded, so that the
	// loader and the pump never race on a shared stream.
	pump := &io.Pump{Verbose: opt.verbose}

	emu := emulator.NewEmulator(display, pump)
	emu.Verbose = opt.verbose
	emu.Limit = opt.limit
	if serial != nil {
		emu.Console.Echo = serial
	}

	var program []byte
	switch {
	case len(opt.compile) != 0:
		program, err = emu.Compile(opt.compile, nil)
	case len(opt.binary) != 0:
		program, err = os.ReadFile(opt.binary)
		if err == nil {
			err = emu.LoadImage(program)
		}
	case len(opt.load) != 0:
		var inf goio.ReadCloser
		inf, err = openInput(opt.load)
		if err != nil {
			return
		}
		defer inf.Close()
		var size int
		size, err = emu.Load(inf)
		program = emu.Cpu.Memory[:size]
	case serial != nil:
		var size int
		size, err = emu.Load(serial)
		program = emu.Cpu.Memory[:size]
	default:
		err = errors.New(translate.From("no program: use -c, -b, -l or -serial"))
	}
	if err != nil {
		return
	}

	if len(opt.save) != 0 {
		err = os.WriteFile(opt.save, loader.Frame(program), 0o644)
		return
	}

	if serial != nil {
		pump.Input = serial
	} else {
		var inf goio.ReadCloser
		inf, err = openInput(opt.input)
		if err != nil {
			return
		}
		defer inf.Close()
		pump.Input = inf
	}

	if opt.raw {
		var restore func() error
		restore, err = enterRawTerm(os.Stdin)
		if err != nil {
			return
		}
		defer restore()
	}

	pump.Start(ctx)

	err = display.Clear()
	if err != nil {
		return
	}

	err = emu.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if opt.verbose {
		log.Printf("tinycpu: %d ticks\n%v", emu.Cpu.Ticks, emu.Cpu.String())
	}

	return
}
