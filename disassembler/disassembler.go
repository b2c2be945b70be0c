// disassembler takes a ROM image and disassembles it to stdout.
// The image is mapped at 0x8000 the same way run6502 maps it and
// listing starts at the reset vector unless --start_pc says otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ya6502/ya6502/cpu"
	"github.com/ya6502/ya6502/disassemble"
	"github.com/ya6502/ya6502/memory"
)

var (
	startPC = flag.Int("start_pc", -1, "PC value to start disassembling. Defaults to the reset vector in the image.")
	count   = flag.Int("count", 0, "Number of instructions to disassemble. 0 means until the end of ROM.")
)

// startAddress returns where listing begins. Negative start means the
// reset vector in the image.
func startAddress(start int, r memory.Bus) (uint16, error) {
	if start > 0xFFFF {
		return 0, fmt.Errorf("start_pc %X out of range", start)
	}
	if start < 0 {
		return uint16(r.Read(cpu.RESET_VECTOR)) | uint16(r.Read(cpu.RESET_VECTOR+1))<<8, nil
	}
	return uint16(start), nil
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--start_pc <PC> --count <N>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	if l := len(b); l > memory.ROM_SIZE {
		log.Printf("Length %d too long, truncating to 32k", l)
		b = b[:memory.ROM_SIZE]
	}
	sys, err := memory.NewSystem(b)
	if err != nil {
		log.Fatalf("Can't map %s - %v", fn, err)
	}

	pc, err := startAddress(*startPC, sys)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("0x%.4X bytes at %.4X, starting at pc: %.4X\n", len(b), memory.ROM_START, pc)

	// Can't base it on PC since it may rollover so count bytes instead.
	left := 0x10000 - int(pc)
	for n := 0; left > 0 && (*count == 0 || n < *count); n++ {
		dis, off := disassemble.Step(pc, sys)
		pc += uint16(off)
		left -= off
		fmt.Printf("%s\n", dis)
	}
}
