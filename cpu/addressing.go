package cpu

import "fmt"

// addrMode is an enumeration of the addressing modes. The first 8 line up
// with bbb for the cc == 1 group.
type addrMode int

const (
	kMODE_INDIRECTX addrMode = iota // (d,x)
	kMODE_ZP                        // d
	kMODE_IMMEDIATE                 // #i
	kMODE_ABSOLUTE                  // a
	kMODE_INDIRECTY                 // (d),y - unmodeled
	kMODE_ZPX                       // d,x - unmodeled
	kMODE_ABSOLUTEY                 // a,y
	kMODE_ABSOLUTEX                 // a,x - unmodeled
	kMODE_ACCUMULATOR
	kMODE_NONE // No valid mode for this opcode.
)

// modeFor returns the mode bbb selects for the cc == 0 and cc == 2 groups.
// 65C02 style LDX a,y is the only indexed form allowed here.
func modeFor(bbb uint8, ldx bool) addrMode {
	switch bbb {
	case 0:
		return kMODE_IMMEDIATE
	case 1:
		return kMODE_ZP
	case 2:
		return kMODE_ACCUMULATOR
	case 3:
		return kMODE_ABSOLUTE
	case 5:
		return kMODE_ZPX
	case 7:
		if ldx {
			return kMODE_ABSOLUTEY
		}
		return kMODE_ABSOLUTEX
	}
	return kMODE_NONE
}

// modeled reports whether the resolver can produce an address for mode.
func modeled(mode addrMode) bool {
	switch mode {
	case kMODE_IMMEDIATE, kMODE_ZP, kMODE_ABSOLUTE, kMODE_ABSOLUTEY, kMODE_INDIRECTX:
		return true
	}
	return false
}

// operandBytes is how many bytes follow the opcode for mode.
func operandBytes(mode addrMode) int {
	switch mode {
	case kMODE_ABSOLUTE, kMODE_ABSOLUTEX, kMODE_ABSOLUTEY:
		return 2
	case kMODE_ACCUMULATOR, kMODE_NONE:
		return 0
	}
	return 1
}

// address drives the resolver for mode. It returns true when the operate
// phase can run on this same tick: immediately for immediate mode (no bus
// access spent) or on any tick after the address was found.
func (p *Processor) address(mode addrMode) (bool, error) {
	if p.phase != phaseAddressing {
		return true, nil
	}
	found, err := p.resolve(mode)
	if err != nil || !found {
		return false, err
	}
	p.phase = phaseOperate
	return mode == kMODE_IMMEDIATE, nil
}

// resolve runs one addressing tick for mode and returns true once
// p.accessAddr holds the effective address. Addressing always starts on cycle 1.
func (p *Processor) resolve(mode addrMode) (bool, error) {
	if p.foundAddress {
		return true, InvalidCPUState{fmt.Sprintf("resolve called for %.2X after address was found", p.IR)}
	}
	switch mode {
	case kMODE_IMMEDIATE:
		p.accessAddr = p.PC
		p.PC++
		p.foundAddress = true
	case kMODE_ZP:
		p.accessAddr = uint16(p.bus.Read(p.PC))
		p.PC++
		p.foundAddress = true
	case kMODE_ABSOLUTE, kMODE_ABSOLUTEY:
		switch p.cycle {
		case 1:
			// Low byte first
			p.accessAddr = uint16(p.bus.Read(p.PC))
			p.PC++
		case 2:
			p.accessAddr |= uint16(p.bus.Read(p.PC)) << 8
			p.PC++
			// No extra tick for crossing a page when indexing.
			if mode == kMODE_ABSOLUTEY {
				p.accessAddr += uint16(p.Y)
			}
			p.foundAddress = true
		default:
			return true, InvalidCPUState{fmt.Sprintf("absolute addressing invalid cycle %d", p.cycle)}
		}
	case kMODE_INDIRECTX:
		switch p.cycle {
		case 1:
			p.indirectAddr = uint16(p.bus.Read(p.PC))
			p.PC++
		case 2:
			// Read from the ZP addr while X is added. Done as a uint8 so it wraps in zero page.
			_ = p.bus.Read(p.indirectAddr)
			p.indirectAddr = uint16(uint8(p.indirectAddr) + p.X)
		case 3:
			p.accessAddr = uint16(p.bus.Read(p.indirectAddr))
		case 4:
			p.accessAddr |= uint16(p.bus.Read(uint16(uint8(p.indirectAddr)+1))) << 8
			p.foundAddress = true
		default:
			return true, InvalidCPUState{fmt.Sprintf("(d,x) addressing invalid cycle %d", p.cycle)}
		}
	default:
		return true, InvalidCPUState{fmt.Sprintf("no resolver for mode %d", mode)}
	}
	return p.foundAddress, nil
}

// skipOperand handles an addressing mode this core doesn't model. The
// operand bytes are read and thrown away (one per tick) so the instruction
// stream stays aligned, and nothing else happens.
func (p *Processor) skipOperand(mode addrMode) bool {
	n := operandBytes(mode)
	if n == 0 {
		p.idle()
		return true
	}
	_ = p.bus.Read(p.PC)
	p.PC++
	return p.cycle >= n
}

// idle is the throw away read of the next byte implied mode instructions do.
func (p *Processor) idle() {
	_ = p.bus.Read(p.PC)
}
