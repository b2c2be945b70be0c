package cpu

import "fmt"

// execute runs one tick of the instruction in IR. It returns true when the
// instruction is done.
//
// Opcodes are decoded as aaabbbcc. The cc == 1 group (ORA/AND/EOR/ADC/STA/LDA/CMP/SBC)
// and the ASL/ROL half of the cc == 2 group are regular enough that aaa picks the
// operation and bbb the addressing mode. Everything else goes through special().
//
// Opcode matrix: http://www.llx.com/~nparker/a2/opcodes.html
func (p *Processor) execute() (bool, error) {
	switch {
	case p.cc == 1:
		return p.groupAccumulator()
	case p.cc == 2 && p.aaa <= 1 && p.bbb != 0 && p.bbb != 4 && p.bbb != 6:
		return p.groupShift()
	}
	return p.special()
}

// groupAccumulator implements the cc == 1 group.
func (p *Processor) groupAccumulator() (bool, error) {
	mode := addrMode(p.bbb)
	if !modeled(mode) {
		return p.skipOperand(mode), nil
	}
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	switch p.aaa {
	case 0:
		// ORA
		p.loadRegister(&p.A, p.A|p.bus.Read(p.accessAddr))
	case 1:
		// AND
		p.loadRegister(&p.A, p.A&p.bus.Read(p.accessAddr))
	case 2:
		// EOR
		p.loadRegister(&p.A, p.A^p.bus.Read(p.accessAddr))
	case 3:
		// ADC
		p.iADC(p.bus.Read(p.accessAddr))
	case 4:
		// STA. There's no STA #i so 0x89 is a 2 byte NOP.
		if mode != kMODE_IMMEDIATE {
			p.bus.Write(p.accessAddr, p.A)
		}
	case 5:
		// LDA
		p.loadRegister(&p.A, p.bus.Read(p.accessAddr))
	case 6:
		// CMP
		p.operand = p.bus.Read(p.accessAddr)
		p.compare(p.A, p.operand)
	case 7:
		// SBC is ADC of the ones complement.
		p.iADC(^p.bus.Read(p.accessAddr))
	}
	return true, nil
}

// groupShift implements ASL (aaa == 0) and ROL (aaa == 1).
func (p *Processor) groupShift() (bool, error) {
	mode := modeFor(p.bbb, false)
	switch {
	case mode == kMODE_ACCUMULATOR:
		p.idle()
		p.A = p.shift(p.A)
		return true, nil
	case !modeled(mode):
		return p.skipOperand(mode), nil
	}
	return p.rmw(mode, p.shift)
}

// special is the table of opcodes which don't fit the regular groups.
func (p *Processor) special() (bool, error) {
	switch p.IR {
	case 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0:
		// BPL BMI BVC BVS BCC BCS BNE BEQ
		return p.iBranch()
	case 0x18, 0x38, 0x58, 0x78, 0xB8, 0xD8, 0xF8:
		// CLC SEC CLI SEI CLV CLD SED
		p.iFlag()
	case 0x08, 0x28, 0x48, 0x68:
		// PHP PLP PHA PLA
		p.iStack()
	case 0xAA:
		// TAX
		p.idle()
		p.loadRegister(&p.X, p.A)
	case 0x8A:
		// TXA
		p.idle()
		p.loadRegister(&p.A, p.X)
	case 0xA8:
		// TAY
		p.idle()
		p.loadRegister(&p.Y, p.A)
	case 0x98:
		// TYA
		p.idle()
		p.loadRegister(&p.A, p.Y)
	case 0xBA:
		// TSX
		p.idle()
		p.loadRegister(&p.X, p.S)
	case 0x9A:
		// TXS doesn't touch flags.
		p.idle()
		p.S = p.X
	case 0xE8:
		// INX
		p.idle()
		p.loadRegister(&p.X, p.X+1)
	case 0xC8:
		// INY
		p.idle()
		p.loadRegister(&p.Y, p.Y+1)
	case 0xCA:
		// DEX
		p.idle()
		p.loadRegister(&p.X, p.X-1)
	case 0x88:
		// DEY
		p.idle()
		p.loadRegister(&p.Y, p.Y-1)
	case 0x1A:
		// INC A (65C02)
		p.idle()
		p.loadRegister(&p.A, p.A+1)
	case 0x3A:
		// DEC A (65C02)
		p.idle()
		p.loadRegister(&p.A, p.A-1)
	case 0xA2, 0xA6, 0xAE, 0xBE:
		// LDX #i, d, a, a,y
		return p.load(&p.X, modeFor(p.bbb, true))
	case 0xA0, 0xA4, 0xAC:
		// LDY #i, d, a
		return p.load(&p.Y, modeFor(p.bbb, false))
	case 0x86, 0x8E:
		// STX d, a
		return p.store(p.X, modeFor(p.bbb, false))
	case 0x84, 0x8C:
		// STY d, a
		return p.store(p.Y, modeFor(p.bbb, false))
	case 0xE0, 0xE4, 0xEC:
		// CPX #i, d, a
		return p.compareWith(p.X, modeFor(p.bbb, false))
	case 0xC0, 0xC4, 0xCC:
		// CPY #i, d, a
		return p.compareWith(p.Y, modeFor(p.bbb, false))
	case 0x24, 0x2C:
		// BIT d, a
		return p.iBIT(modeFor(p.bbb, false))
	case 0x4C:
		// JMP a
		return p.iJMP()
	case 0x6C:
		// JMP (a)
		return p.iJMPIndirect()
	case 0x20:
		// JSR a
		return p.iJSR()
	case 0x60:
		// RTS
		return p.iRTS()
	case 0xEA:
		// NOP
		p.idle()
	case DEBUG_TRACE:
		fmt.Fprint(p.trace, p.Debug())
	case BRK:
		// Stops the CPU. The interrupt sequence isn't modeled.
		p.running = false
	default:
		return true, IllegalOpcode{Opcode: p.IR, Addr: p.fetchAddr}
	}
	return true, nil
}
