package cpu

import "fmt"

// push writes val at the top of the stack and moves S down. S wraps.
func (p *Processor) push(val uint8) {
	p.bus.Write(STACK_PAGE+uint16(p.S), val)
	p.S--
}

// pull moves S up and reads the byte there. S wraps.
func (p *Processor) pull() uint8 {
	p.S++
	return p.bus.Read(STACK_PAGE + uint16(p.S))
}

// load implements LDX/LDY.
func (p *Processor) load(reg *uint8, mode addrMode) (bool, error) {
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	p.loadRegister(reg, p.bus.Read(p.accessAddr))
	return true, nil
}

// store implements STX/STY.
func (p *Processor) store(val uint8, mode addrMode) (bool, error) {
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	p.bus.Write(p.accessAddr, val)
	return true, nil
}

// compareWith implements CPX/CPY.
func (p *Processor) compareWith(reg uint8, mode addrMode) (bool, error) {
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	p.operand = p.bus.Read(p.accessAddr)
	p.compare(reg, p.operand)
	return true, nil
}

// rmw runs the operate and writeback phases of a read-modify-write
// instruction. Like NMOS parts the unmodified value is written back
// a tick before the result.
func (p *Processor) rmw(mode addrMode, op func(uint8) uint8) (bool, error) {
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	switch p.phase {
	case phaseOperate:
		p.operand = p.bus.Read(p.accessAddr)
		p.phase = phaseWriteback1
		return false, nil
	case phaseWriteback1:
		p.bus.Write(p.accessAddr, p.operand)
		p.phase = phaseWriteback2
		return false, nil
	case phaseWriteback2:
		p.bus.Write(p.accessAddr, op(p.operand))
		return true, nil
	}
	return true, InvalidCPUState{fmt.Sprintf("rmw for %.2X in phase %s", p.IR, p.phase)}
}

// shift implements ASL and ROL (aaa == 1) returning the result and setting flags.
func (p *Processor) shift(val uint8) uint8 {
	carry := uint8(0)
	if p.aaa == 1 {
		carry = p.P & P_CARRY
	}
	p.carryCheck(uint16(val) << 1)
	res := (val << 1) | carry
	p.setNZ(res)
	return res
}

// iADC implements ADC (and SBC when handed the ones complement). Always binary,
// P_DECIMAL is ignored.
func (p *Processor) iADC(arg uint8) {
	// Pull the carry bit out which thankfully is the low bit so can be
	// used directly.
	carry := p.P & P_CARRY
	sum := p.A + arg + carry
	p.overflowCheck(p.A, arg, sum)
	p.carryCheck(uint16(p.A) + uint16(arg) + uint16(carry))
	p.loadRegister(&p.A, sum)
}

// iBIT copies bits 7 and 6 of the operand into N and V and sets Z from A&M.
func (p *Processor) iBIT(mode addrMode) (bool, error) {
	if ok, err := p.address(mode); err != nil || !ok {
		return false, err
	}
	p.operand = p.bus.Read(p.accessAddr)
	p.P &^= P_NEGATIVE | P_OVERFLOW | P_ZERO
	p.P |= p.operand & (P_NEGATIVE | P_OVERFLOW)
	if p.A&p.operand == 0 {
		p.P |= P_ZERO
	}
	return true, nil
}

// iFlag implements the CLx/SEx instructions.
func (p *Processor) iFlag() {
	p.idle()
	f := instructionFlags[(p.IR&0xC0)>>6]
	// There's no SEV so CLV has bit 5 set and still clears.
	if p.IR&0x20 != 0 && p.IR != 0xB8 {
		p.P |= f
		return
	}
	p.P &^= f
}

// iStack implements PHP/PLP/PHA/PLA. Bit 6 picks A over P and bit 5 pull over push.
func (p *Processor) iStack() {
	pull := p.IR&0x20 != 0
	switch {
	case p.IR&0x40 != 0 && pull:
		p.loadRegister(&p.A, p.pull())
	case p.IR&0x40 != 0:
		p.push(p.A)
	case pull:
		// B only exists on the stack and S1 is always set.
		p.P = (p.pull() | P_S1) &^ P_B
	default:
		p.push(p.P | P_B | P_S1)
	}
}

// branchTarget is the correct destination of the current branch.
func (p *Processor) branchTarget() uint16 {
	return p.oldPC + uint16(int16(p.offset))
}

// iBranch implements all the conditional branches. Not taken is 2 ticks,
// taken 3 and taken across a page 4.
func (p *Processor) iBranch() (bool, error) {
	switch p.cycle {
	case 1:
		p.offset = int8(p.bus.Read(p.PC))
		p.PC++
		p.oldPC = p.PC
		flag := branchFlags[(p.IR&0xC0)>>6]
		taken := (p.P&flag != 0) == (p.IR&0x20 != 0)
		return !taken, nil
	case 2:
		// Add to the low byte only, the high byte gets fixed next tick if needed.
		p.PC = (p.oldPC & 0xFF00) | uint16(uint8(p.oldPC&0x00FF)+uint8(p.offset))
		_ = p.bus.Read(p.PC)
		return p.PC == p.branchTarget(), nil
	case 3:
		p.PC = p.branchTarget()
		_ = p.bus.Read(p.PC)
		return true, nil
	}
	return true, InvalidCPUState{fmt.Sprintf("branch invalid cycle %d", p.cycle)}
}

// iJMP implements JMP a.
func (p *Processor) iJMP() (bool, error) {
	if found, err := p.resolve(kMODE_ABSOLUTE); err != nil || !found {
		return false, err
	}
	p.PC = p.accessAddr
	return true, nil
}

// iJMPIndirect implements the 65C02 JMP (a). The extra tick lets the high
// byte come from pointer+1 even when that crosses a page (the NMOS part
// wraps within the page instead).
func (p *Processor) iJMPIndirect() (bool, error) {
	switch p.cycle {
	case 1:
		p.indirectAddr = uint16(p.bus.Read(p.PC))
		p.PC++
		return false, nil
	case 2:
		p.indirectAddr |= uint16(p.bus.Read(p.PC)) << 8
		p.PC++
		return false, nil
	case 3:
		p.accessAddr = uint16(p.bus.Read(p.indirectAddr))
		return false, nil
	case 4:
		_ = p.bus.Read(p.indirectAddr)
		return false, nil
	case 5:
		p.accessAddr |= uint16(p.bus.Read(p.indirectAddr+1)) << 8
		p.foundAddress = true
		p.PC = p.accessAddr
		return true, nil
	}
	return true, InvalidCPUState{fmt.Sprintf("JMP (a) invalid cycle %d", p.cycle)}
}

// iJSR implements JSR. The pushed address is the last byte of the JSR
// (PC-1), RTS compensates by adding one.
func (p *Processor) iJSR() (bool, error) {
	switch p.cycle {
	case 1, 2:
		_, err := p.resolve(kMODE_ABSOLUTE)
		return false, err
	case 3:
		p.push(uint8(((p.PC - 1) & 0xFF00) >> 8))
		return false, nil
	case 4:
		p.push(uint8((p.PC - 1) & 0xFF))
		return false, nil
	case 5:
		p.PC = p.accessAddr
		return true, nil
	}
	return true, InvalidCPUState{fmt.Sprintf("JSR invalid cycle %d", p.cycle)}
}

// iRTS implements RTS and pops the PC off the stack adding one to it.
func (p *Processor) iRTS() (bool, error) {
	switch p.cycle {
	case 1:
		p.idle()
		return false, nil
	case 2:
		// PCL
		p.accessAddr = uint16(p.pull())
		return false, nil
	case 3:
		// PCH
		p.accessAddr |= uint16(p.pull()) << 8
		return false, nil
	case 4:
		// Read the return address and then get it incremented for the next instruction.
		_ = p.bus.Read(p.accessAddr)
		p.PC = p.accessAddr + 1
		return true, nil
	}
	return true, InvalidCPUState{fmt.Sprintf("RTS invalid cycle %d", p.cycle)}
}
