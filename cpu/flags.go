package cpu

// setNZ clears N and Z and then sets them from result. The sign bit and
// P_NEGATIVE are the same bit so N is a straight mask.
func (p *Processor) setNZ(result uint8) {
	p.P &^= P_NEGATIVE | P_ZERO
	p.P |= result & P_NEGATIVE
	if result == 0 {
		p.P |= P_ZERO
	}
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value >= 0x100.
func (p *Processor) carryCheck(res uint16) {
	if res >= 0x100 {
		p.P |= P_CARRY
	} else {
		p.P &^= P_CARRY
	}
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If both operand signs differ from the result sign bit
	if (reg^res)&(arg^res)&0x80 != 0x00 {
		p.P |= P_OVERFLOW
	} else {
		p.P &^= P_OVERFLOW
	}
}

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results. No register changes.
func (p *Processor) compare(reg uint8, val uint8) {
	temp := reg - val
	p.P &^= P_ZERO | P_NEGATIVE | P_CARRY
	if temp == 0 {
		p.P |= P_ZERO
	}
	if reg >= val {
		p.P |= P_CARRY
	}
	p.P |= temp & P_NEGATIVE
}

// loadRegister stores val into reg and sets N/Z from it.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.setNZ(val)
}

// Branch conditions indexed by the top 2 opcode bits. Bit 5 of the opcode
// is the value the flag must have for the branch to be taken.
var branchFlags = [4]uint8{P_NEGATIVE, P_OVERFLOW, P_CARRY, P_ZERO}

// Flags touched by the CLx/SEx opcodes indexed by the top 2 opcode bits.
// Bit 5 of the opcode selects set vs clear.
var instructionFlags = [4]uint8{P_CARRY, P_INTERRUPT, P_OVERFLOW, P_DECIMAL}
