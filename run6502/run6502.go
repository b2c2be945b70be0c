// run6502 loads a 32k ROM image at 0x8000, attaches a console to the
// memory map and runs the CPU from the reset vector until it executes
// BRK or hits an illegal opcode.
//
// Writes to the console DATA register go to stdout and keys typed on
// stdin queue up for reads of DATA. When stdin is a terminal it's put
// into raw mode so keys arrive as they're typed. Ctrl-C stops the run.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ya6502/ya6502/console"
	"github.com/ya6502/ya6502/cpu"
	"github.com/ya6502/ya6502/disassemble"
	"github.com/ya6502/ya6502/memory"
	"github.com/ya6502/ya6502/port"
)

var (
	clockHz     = flag.Int("clock_hz", 1000, "Clock rate to run the CPU at. 0 runs as fast as possible.")
	consoleBase = flag.Uint("console_base", 0x6000, "Address the console registers are mapped at.")
	trace       = flag.Bool("trace", false, "If true print each instruction to stderr as it starts.")
	statsAddr   = flag.String("stats_addr", "", "If set serve Go runtime stats at http://<addr>/debug/statsview. Needs the statsview build tag.")
)

const (
	kINPUT_DEPTH = 64
	kCTRL_C      = 0x03
)

// crlf translates \n to \r\n for a terminal in raw mode.
type crlf struct {
	w io.Writer
}

func (c crlf) Write(b []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(b, []byte{'\n'}, []byte{'\r', '\n'})); err != nil {
		return 0, err
	}
	return len(b), nil
}

// peekBus lets the tracer read ahead of PC without side effects on
// devices. Console registers read as 0x00 through it.
type peekBus struct {
	s *memory.System
}

func (p peekBus) Read(addr uint16) uint8 {
	return p.s.Peek(addr)
}

func (p peekBus) Write(addr uint16, val uint8) {}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--clock_hz <N> --console_base <addr> --trace --stats_addr <host:port>] <rom>", os.Args[0])
	}
	if err := run(flag.Args()[0]); err != nil {
		log.Fatal(err)
	}
}

// run does all the work so deferred terminal cleanup happens before main exits.
func run(fn string) error {
	rom, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("can't open %s - %v", fn, err)
	}
	if l := len(rom); l > memory.ROM_SIZE {
		log.Printf("Length %d too long, truncating to 32k", l)
		rom = rom[:memory.ROM_SIZE]
	}

	if *statsAddr != "" {
		if err := startStats(*statsAddr); err != nil {
			return err
		}
		log.Printf("runtime stats at http://%s/debug/statsview", *statsAddr)
	}

	var out io.Writer = os.Stdout
	quit := make(chan struct{})
	in := port.NewQueue(kINPUT_DEPTH)
	fd := int(os.Stdin.Fd())
	raw := false
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("can't put stdin in raw mode - %v", err)
		}
		defer func() {
			_ = term.Restore(fd, old)
		}()
		raw = true
		out = crlf{os.Stdout}
	}
	go readInput(os.Stdin, in, raw, quit)

	con, err := console.Init(&console.ChipDef{
		Output: out,
		Input:  in,
	})
	if err != nil {
		return err
	}
	if *consoleBase > 0xFFFF {
		return fmt.Errorf("console_base %X out of range", *consoleBase)
	}
	sys, err := memory.NewSystem(rom, memory.Region{
		Base: uint16(*consoleBase),
		Size: console.SIZE,
		Dev:  con,
	})
	if err != nil {
		return err
	}
	c, err := cpu.Init(&cpu.ChipDef{
		Bus:   sys,
		Trace: out,
	})
	if err != nil {
		return err
	}

	var tick <-chan time.Time
	if *clockHz > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(*clockHz))
		defer ticker.Stop()
		tick = ticker.C
	}

	// The reset sequence runs first and its completion looks like any
	// other instruction boundary.
	boundary := false
	for c.Running() {
		if boundary {
			select {
			case <-quit:
				return errors.New("interrupted")
			default:
			}
			if *trace {
				dis, _ := disassemble.Step(c.PC, peekBus{sys})
				fmt.Fprintf(os.Stderr, "%s\r\n", dis)
			}
		}
		if tick != nil {
			<-tick
		}
		done, err := c.Tick()
		if err != nil {
			return fmt.Errorf("CPU halted: %v\r\n%s", err, c.Debug())
		}
		boundary = done
	}
	return con.Err()
}

// readInput feeds bytes from r into q until r fails. In raw mode Ctrl-C
// closes quit instead of being queued.
func readInput(r io.Reader, q *port.Queue, raw bool, quit chan struct{}) {
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if raw && b[0] == kCTRL_C {
			close(quit)
			return
		}
		for !q.Push(b[0]) {
			time.Sleep(time.Millisecond)
		}
	}
}
