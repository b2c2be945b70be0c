// Package disassemble implements a disassembler for the opcodes the cpu
// package executes. Opcodes the cpu rejects show up as ??? and forms whose
// addressing mode it skips show up as NOP with the operand they consume.
package disassemble

import (
	"fmt"

	"github.com/ya6502/ya6502/memory"
)

const (
	kMODE_IMMEDIATE = iota
	kMODE_ZP
	kMODE_ZPX
	kMODE_INDIRECTX
	kMODE_INDIRECTY
	kMODE_ABSOLUTE
	kMODE_ABSOLUTEX
	kMODE_ABSOLUTEY
	kMODE_INDIRECT
	kMODE_IMPLIED
	kMODE_ACCUMULATOR
	kMODE_RELATIVE
)

// UNKNOWN is the mnemonic for an opcode the cpu treats as illegal.
const UNKNOWN = "???"

type entry struct {
	op   string
	mode int
}

// opcodes is indexed by opcode. A zero entry is an illegal opcode.
var opcodes [256]entry

// Modes for the cc == 1 group indexed by bbb.
var groupModes = [8]int{kMODE_INDIRECTX, kMODE_ZP, kMODE_IMMEDIATE, kMODE_ABSOLUTE, kMODE_INDIRECTY, kMODE_ZPX, kMODE_ABSOLUTEY, kMODE_ABSOLUTEX}

func init() {
	for aaa, op := range []string{"ORA", "AND", "EOR", "ADC", "STA", "LDA", "CMP", "SBC"} {
		for bbb, mode := range groupModes {
			o := uint8(aaa<<5 | bbb<<2 | 0x01)
			e := entry{op, mode}
			switch mode {
			case kMODE_INDIRECTY, kMODE_ZPX, kMODE_ABSOLUTEX:
				// Operand bytes are consumed and nothing else.
				e.op = "NOP"
			}
			opcodes[o] = e
		}
	}
	// No STA #i so it's a 2 byte NOP.
	opcodes[0x89] = entry{"NOP", kMODE_IMMEDIATE}

	for aaa, op := range []string{"ASL", "ROL"} {
		base := uint8(aaa<<5 | 0x02)
		opcodes[base|0x04] = entry{op, kMODE_ZP}
		opcodes[base|0x08] = entry{op, kMODE_ACCUMULATOR}
		opcodes[base|0x0C] = entry{op, kMODE_ABSOLUTE}
		opcodes[base|0x14] = entry{"NOP", kMODE_ZPX}
		opcodes[base|0x1C] = entry{"NOP", kMODE_ABSOLUTEX}
	}

	for o, e := range map[uint8]entry{
		0x00: {"BRK", kMODE_IMPLIED},
		0x02: {"DBG", kMODE_IMPLIED},
		0x08: {"PHP", kMODE_IMPLIED},
		0x28: {"PLP", kMODE_IMPLIED},
		0x48: {"PHA", kMODE_IMPLIED},
		0x68: {"PLA", kMODE_IMPLIED},
		0x10: {"BPL", kMODE_RELATIVE},
		0x30: {"BMI", kMODE_RELATIVE},
		0x50: {"BVC", kMODE_RELATIVE},
		0x70: {"BVS", kMODE_RELATIVE},
		0x90: {"BCC", kMODE_RELATIVE},
		0xB0: {"BCS", kMODE_RELATIVE},
		0xD0: {"BNE", kMODE_RELATIVE},
		0xF0: {"BEQ", kMODE_RELATIVE},
		0x18: {"CLC", kMODE_IMPLIED},
		0x38: {"SEC", kMODE_IMPLIED},
		0x58: {"CLI", kMODE_IMPLIED},
		0x78: {"SEI", kMODE_IMPLIED},
		0xB8: {"CLV", kMODE_IMPLIED},
		0xD8: {"CLD", kMODE_IMPLIED},
		0xF8: {"SED", kMODE_IMPLIED},
		0xAA: {"TAX", kMODE_IMPLIED},
		0x8A: {"TXA", kMODE_IMPLIED},
		0xA8: {"TAY", kMODE_IMPLIED},
		0x98: {"TYA", kMODE_IMPLIED},
		0xBA: {"TSX", kMODE_IMPLIED},
		0x9A: {"TXS", kMODE_IMPLIED},
		0xE8: {"INX", kMODE_IMPLIED},
		0xC8: {"INY", kMODE_IMPLIED},
		0xCA: {"DEX", kMODE_IMPLIED},
		0x88: {"DEY", kMODE_IMPLIED},
		0x1A: {"INC", kMODE_ACCUMULATOR},
		0x3A: {"DEC", kMODE_ACCUMULATOR},
		0xEA: {"NOP", kMODE_IMPLIED},
		0xA2: {"LDX", kMODE_IMMEDIATE},
		0xA6: {"LDX", kMODE_ZP},
		0xAE: {"LDX", kMODE_ABSOLUTE},
		0xBE: {"LDX", kMODE_ABSOLUTEY},
		0xA0: {"LDY", kMODE_IMMEDIATE},
		0xA4: {"LDY", kMODE_ZP},
		0xAC: {"LDY", kMODE_ABSOLUTE},
		0x86: {"STX", kMODE_ZP},
		0x8E: {"STX", kMODE_ABSOLUTE},
		0x84: {"STY", kMODE_ZP},
		0x8C: {"STY", kMODE_ABSOLUTE},
		0xE0: {"CPX", kMODE_IMMEDIATE},
		0xE4: {"CPX", kMODE_ZP},
		0xEC: {"CPX", kMODE_ABSOLUTE},
		0xC0: {"CPY", kMODE_IMMEDIATE},
		0xC4: {"CPY", kMODE_ZP},
		0xCC: {"CPY", kMODE_ABSOLUTE},
		0x24: {"BIT", kMODE_ZP},
		0x2C: {"BIT", kMODE_ABSOLUTE},
		0x4C: {"JMP", kMODE_ABSOLUTE},
		0x6C: {"JMP", kMODE_INDIRECT},
		0x20: {"JSR", kMODE_ABSOLUTE},
		0x60: {"RTS", kMODE_IMPLIED},
	} {
		opcodes[o] = e
	}
}

// Legal reports whether the cpu will execute o rather than halting on it.
func Legal(o uint8) bool {
	return opcodes[o].op != ""
}

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// This always reads two bytes past the current PC so make sure those reads have no side effects.
func Step(pc uint16, r memory.Bus) (string, int) {
	o := r.Read(pc)
	pc1 := r.Read(pc + 1)
	// Sign extended so it can be added to the PC for branch targets.
	pc116 := uint16(int16(int8(pc1)))
	pc2 := r.Read(pc + 2)

	e := opcodes[o]
	if e.op == "" {
		e = entry{UNKNOWN, kMODE_IMPLIED}
	}

	count := 2 // Default byte count, adjusted below.
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch e.mode {
	case kMODE_IMMEDIATE:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, e.op, pc1)
	case kMODE_ZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, e.op, pc1)
	case kMODE_ZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, e.op, pc1)
	case kMODE_INDIRECTX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, e.op, pc1)
	case kMODE_INDIRECTY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, e.op, pc1)
	case kMODE_ABSOLUTE:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, e.op, pc2, pc1)
		count++
	case kMODE_ABSOLUTEX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, e.op, pc2, pc1)
		count++
	case kMODE_ABSOLUTEY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, e.op, pc2, pc1)
		count++
	case kMODE_INDIRECT:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", pc1, pc2, e.op, pc2, pc1)
		count++
	case kMODE_IMPLIED:
		out += fmt.Sprintf("        %s           ", e.op)
		count--
	case kMODE_ACCUMULATOR:
		out += fmt.Sprintf("        %s A         ", e.op)
		count--
	case kMODE_RELATIVE:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", pc1, e.op, pc1, pc+pc116+2)
	default:
		panic(fmt.Sprintf("Invalid mode: %d", e.mode))
	}
	return out, count
}
