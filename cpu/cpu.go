// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation. Each call to Tick is exactly one clock cycle
// so instructions take several calls to complete and every bus
// access happens on the cycle the real chip would make it.
package cpu

import (
	"fmt"
	"io"
	"os"

	"github.com/ya6502/ya6502/memory"
)

const (
	RESET_VECTOR = uint16(0xFFFC)
	STACK_PAGE   = uint16(0x0100)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1
	P_B         = uint8(0x10) // Only meaningful on the stack.
	P_DECIMAL   = uint8(0x8)  // Tracked but arithmetic is always binary.
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)

	BRK         = uint8(0x00)
	DEBUG_TRACE = uint8(0x02) // Not a real opcode. Prints Debug() to the trace writer.

	kRESET_CYCLES = uint8(7)    // Length of the power on sequence.
	kRESET_DONE   = uint8(0)    // Countdown sentinel once the vector is loaded.
	kSTACK_START  = uint8(0xFD) // S after reset.
)

// phase tracks where an instruction with an addressing mode is.
type phase int

const (
	phaseAddressing phase = iota // Computing p.accessAddr.
	phaseOperate                 // Address known, do the read/write.
	phaseWriteback1              // RMW: write the unmodified value back.
	phaseWriteback2              // RMW: write the result.
)

func (ph phase) String() string {
	switch ph {
	case phaseAddressing:
		return "addressing"
	case phaseOperate:
		return "operate"
	case phaseWriteback1:
		return "writeback1"
	case phaseWriteback2:
		return "writeback2"
	}
	return fmt.Sprintf("phase(%d)", int(ph))
}

// Processor is a single 6502 instance. It borrows the Bus for its whole
// lifetime and isn't safe for concurrent use.
type Processor struct {
	A  uint8  // Accumulator register
	X  uint8  // X register
	Y  uint8  // Y register
	S  uint8  // Stack pointer
	P  uint8  // Processor status register
	PC uint16 // Program counter
	IR uint8  // Instruction register, valid while an instruction runs.

	bus   memory.Bus
	trace io.Writer

	cycle        int    // 0 means the next tick fetches an opcode.
	phase        phase  // Sub state for instructions with an addressing mode.
	resetDelay   uint8  // Counts down the reset sequence to kRESET_DONE.
	aaa          uint8  // IR bits 7-5
	bbb          uint8  // IR bits 4-2
	cc           uint8  // IR bits 1-0
	foundAddress bool   // Set once accessAddr is usable.
	accessAddr   uint16 // Effective address for the operate phase.
	indirectAddr uint16 // Pointer for indirect modes.
	oldPC        uint16 // PC after a branch offset, to detect page crossing.
	offset       int8   // Branch displacement.
	operand      uint8  // Compare operand, also the RMW scratch byte.
	fetchAddr    uint16 // Where IR was read from.
	instructions uint64
	running      bool
	fault        error // Why we stopped (nil for BRK).
}

// A few custom error types to distinguish why the CPU stopped

// IllegalOpcode is an opcode with no handler. The CPU halts when it's decoded.
type IllegalOpcode struct {
	Opcode uint8
	Addr   uint16
}

// Error implements the interface for error types.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("Illegal instruction $%.2X at $%.4X", e.Opcode, e.Addr)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// ChipDef defines a CPU instance.
type ChipDef struct {
	// Bus is the memory map the CPU runs against. Required.
	Bus memory.Bus

	// Trace receives the line printed by the DEBUG_TRACE opcode.
	// If nil it goes to stdout.
	Trace io.Writer
}

// Init will create a new CPU from the definition and return it freshly reset.
// The reset sequence still has to be ticked through before the first opcode fetch.
func Init(d *ChipDef) (*Processor, error) {
	if d == nil || d.Bus == nil {
		return nil, fmt.Errorf("cpu needs a Bus")
	}
	p := &Processor{
		trace: d.Trace,
	}
	p.Reset(d.Bus)
	return p, nil
}

// Reset zeros all state and starts the reset sequence. If bus is non-nil it
// replaces the current one. PC is loaded from RESET_VECTOR during the
// last two cycles of the sequence. A zero Processor is usable once Reset
// has been given a bus. Its debug trace goes to stdout.
func (p *Processor) Reset(bus memory.Bus) {
	if bus == nil {
		bus = p.bus
	}
	if p.trace == nil {
		p.trace = os.Stdout
	}
	*p = Processor{
		bus:        bus,
		trace:      p.trace,
		PC:         RESET_VECTOR,
		S:          kSTACK_START,
		P:          P_S1,
		resetDelay: kRESET_CYCLES,
		running:    true,
	}
}

// Running is false once BRK or an illegal opcode has executed. Only Reset
// starts it again.
func (p *Processor) Running() bool {
	return p.running
}

// Tick runs a clock cycle through the CPU which may execute a new instruction or may be finishing
// an existing one. True is returned if the current instruction (or the reset sequence) has finished.
// An error is returned if the instruction is illegal. That halts the CPU and every later Tick
// returns the same error until Reset.
func (p *Processor) Tick() (bool, error) {
	if !p.running {
		return true, p.fault
	}
	if p.resetDelay != kRESET_DONE {
		return p.resetTick(), nil
	}
	if p.cycle == 0 {
		p.fetch()
		return false, nil
	}

	done, err := p.execute()
	if err != nil {
		p.running = false
		p.fault = err
		p.cycle = 0
		return true, err
	}
	if done {
		// So the next tick starts a new instruction.
		p.cycle = 0
		return true, nil
	}
	p.cycle++
	return false, nil
}

// resetTick runs one cycle of the reset sequence. The vector is read on the last two.
func (p *Processor) resetTick() bool {
	switch p.resetDelay {
	case 2:
		p.PC = uint16(p.bus.Read(RESET_VECTOR))
	case 1:
		p.PC |= uint16(p.bus.Read(RESET_VECTOR+1)) << 8
	}
	p.resetDelay--
	return p.resetDelay == kRESET_DONE
}

// fetch loads IR and decodes it into the aaa/bbb/cc fields.
func (p *Processor) fetch() {
	p.fetchAddr = p.PC
	p.IR = p.bus.Read(p.PC)
	p.PC++
	p.instructions++
	p.foundAddress = false
	p.phase = phaseAddressing
	p.aaa = (p.IR & 0xE0) >> 5
	p.bbb = (p.IR & 0x1C) >> 2
	p.cc = p.IR & 0x03
	p.cycle = 1
}

// Debug returns the register dump the DEBUG_TRACE opcode emits.
func (p *Processor) Debug() string {
	return fmt.Sprintf("A=%.2X   X=%.2X    Y=%.2X    P=%.8b    IR=%.2X    SP=%.2X    PC=%.4X    IC=%.8X\n",
		p.A, p.X, p.Y, p.P, p.IR, p.S, p.PC, p.instructions)
}

// State is a copy of everything in the processor including the scratch
// fields an external debugger may want.
type State struct {
	A, X, Y, S, P, IR uint8
	PC                uint16

	Cycle           int
	Phase           string
	ResetDelay      uint8
	AAA, BBB, CC    uint8
	FoundAddress    bool
	AccessAddress   uint16
	IndirectAddress uint16
	OldPC           uint16
	Offset          int8
	Operand         uint8
	FetchAddress    uint16
	Instructions    uint64
	Running         bool
	Fault           error
}

// State returns a snapshot of the processor.
func (p *Processor) State() State {
	return State{
		A:               p.A,
		X:               p.X,
		Y:               p.Y,
		S:               p.S,
		P:               p.P,
		IR:              p.IR,
		PC:              p.PC,
		Cycle:           p.cycle,
		Phase:           p.phase.String(),
		ResetDelay:      p.resetDelay,
		AAA:             p.aaa,
		BBB:             p.bbb,
		CC:              p.cc,
		FoundAddress:    p.foundAddress,
		AccessAddress:   p.accessAddr,
		IndirectAddress: p.indirectAddr,
		OldPC:           p.oldPC,
		Offset:          p.offset,
		Operand:         p.operand,
		FetchAddress:    p.fetchAddr,
		Instructions:    p.instructions,
		Running:         p.running,
		Fault:           p.fault,
	}
}
