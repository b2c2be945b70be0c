// Package console implements a minimal memory mapped terminal: one data
// register for character I/O and one status register. It implements
// memory.Bus so it can be attached as a memory.Region.
package console

import (
	"fmt"
	"io"

	"github.com/ya6502/ya6502/port"
)

const (
	DATA   = uint16(0x00) // Write sends a byte, read consumes the next input byte (0 if none).
	STATUS = uint16(0x01) // Read only.

	kMASK_STATUS_INPUT  = uint8(0x80) // A byte is waiting in DATA.
	kMASK_STATUS_OUTPUT = uint8(0x40) // Output can accept a byte (always).

	SIZE = uint16(0x02)
)

// ChipDef defines a console.
type ChipDef struct {
	// Output receives every byte written to DATA. Required.
	Output io.Writer

	// Input is polled for keyboard bytes. Optional, if nil DATA always reads 0.
	Input port.Queued8
}

// Chip is a console instance.
type Chip struct {
	out io.Writer
	in  port.Queued8
	err error // First output error, sticky.
}

// Init returns a console from the given definition.
func Init(d *ChipDef) (*Chip, error) {
	if d == nil || d.Output == nil {
		return nil, fmt.Errorf("console needs an Output")
	}
	return &Chip{
		out: d.Output,
		in:  d.Input,
	}, nil
}

// Read implements memory.Bus. Only the low bit of addr is decoded.
func (c *Chip) Read(addr uint16) uint8 {
	switch addr & 0x01 {
	case DATA:
		if c.in == nil || !c.in.Ready() {
			return 0x00
		}
		return c.in.Input()
	default:
		st := kMASK_STATUS_OUTPUT
		if c.in != nil && c.in.Ready() {
			st |= kMASK_STATUS_INPUT
		}
		return st
	}
}

// Write implements memory.Bus. Writes to STATUS are ignored.
func (c *Chip) Write(addr uint16, val uint8) {
	if addr&0x01 != DATA || c.err != nil {
		return
	}
	if _, err := c.out.Write([]byte{val}); err != nil {
		c.err = err
	}
}

// Err returns the first error the output writer returned. Once set no
// further output is attempted.
func (c *Chip) Err() error {
	return c.err
}
