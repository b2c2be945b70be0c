// hand_asm takes a filename and produces a 32k ROM image for run6502
// from parsing the input as a hand assembled file
// of the form:
//
// XXXX OP A1 A2
//
// Where XXXX is the address field and OP is the opcode
// A1,A2 are then optional params as needed. Anything after a tab
// is a comment as are lines that don't start with an address.
// Addresses must fall in 0x8000-0xFFFF where the ROM is mapped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ya6502/ya6502/cpu"
	"github.com/ya6502/ya6502/memory"
)

var (
	reset = flag.Int("reset", -1, "If set, the address to store in the reset vector.")
)

var lineRE = regexp.MustCompile(`^([0-9A-F]{4})((?: [0-9A-F]{2}){1,3})\s*$`)

// assemble parses a listing and returns the ROM image it describes.
// resetPC < 0 leaves the reset vector alone.
func assemble(in io.Reader, resetPC int) ([]byte, error) {
	rom := make([]byte, memory.ROM_SIZE)
	scanner := bufio.NewScanner(in)
	l := 0
	for scanner.Scan() {
		l++
		t := scanner.Text()
		if i := strings.IndexByte(t, '\t'); i >= 0 {
			t = t[:i]
		}
		if len(t) < 4 {
			continue
		}
		if _, err := strconv.ParseUint(t[:4], 16, 16); err != nil {
			continue
		}
		m := lineRE.FindStringSubmatch(t)
		if m == nil {
			return nil, fmt.Errorf("invalid line %d - %q", l, t)
		}
		addr, _ := strconv.ParseUint(m[1], 16, 16)
		for _, v := range strings.Fields(m[2]) {
			if addr < memory.ROM_START || addr > 0xFFFF {
				return nil, fmt.Errorf("line %d - address %.4X outside ROM", l, addr)
			}
			b, _ := strconv.ParseUint(v, 16, 8)
			rom[addr-memory.ROM_START] = byte(b)
			addr++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if resetPC >= 0 {
		if resetPC > 0xFFFF {
			return nil, fmt.Errorf("reset address %X too large", resetPC)
		}
		v := cpu.RESET_VECTOR - memory.ROM_START
		rom[v] = byte(resetPC & 0xFF)
		rom[v+1] = byte(resetPC >> 8)
	}
	return rom, nil
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s [--reset <addr>] <input> <output>", os.Args[0])
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	f, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	defer f.Close()
	output, err := assemble(f, *reset)
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}
	if err := os.WriteFile(out, output, 0644); err != nil {
		log.Fatalf("Got error writing to %q - %v", out, err)
	}
}
