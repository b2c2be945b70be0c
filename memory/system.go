package memory

import "fmt"

const (
	RAM_SIZE  = 0x0800
	RAM_END   = 0x2000 // RAM is mirrored up to here.
	ROM_START = 0x8000
	ROM_SIZE  = 0x8000
)

// Region attaches a device into the otherwise unmapped space between RAM
// and ROM. The device is handed the offset from Base, not the raw address.
type Region struct {
	Base uint16
	Size uint16
	Dev  Bus
}

func (r Region) contains(addr uint16) bool {
	return addr >= r.Base && addr-r.Base < r.Size
}

// System is the host memory map: 2k of RAM mirrored through 0x1FFF,
// 32k of ROM from 0x8000 and optional I/O regions in between. Anything
// else reads as 0x00 and drops writes.
type System struct {
	ram     [RAM_SIZE]uint8
	rom     [ROM_SIZE]uint8
	regions []Region
}

// NewSystem returns a powered on System with rom loaded at 0x8000. Images
// shorter than 32k are zero filled at the top.
func NewSystem(rom []uint8, regions ...Region) (*System, error) {
	if len(rom) == 0 {
		return nil, fmt.Errorf("empty ROM image")
	}
	if len(rom) > ROM_SIZE {
		return nil, fmt.Errorf("ROM image is %d bytes, max is %d", len(rom), ROM_SIZE)
	}
	s := &System{}
	copy(s.rom[:], rom)
	for i, r := range regions {
		if r.Dev == nil {
			return nil, fmt.Errorf("region %d at %.4X has no device", i, r.Base)
		}
		if r.Size == 0 || r.Base < RAM_END || int(r.Base)+int(r.Size) > ROM_START {
			return nil, fmt.Errorf("region %d %.4X+%.4X must fit in %.4X-%.4X", i, r.Base, r.Size, RAM_END, ROM_START-1)
		}
		for j, o := range regions[:i] {
			if r.Base < o.Base+o.Size && o.Base < r.Base+r.Size {
				return nil, fmt.Errorf("region %d at %.4X overlaps region %d at %.4X", i, r.Base, j, o.Base)
			}
		}
	}
	s.regions = regions
	s.PowerOn()
	return s, nil
}

// Read implements Bus.
func (s *System) Read(addr uint16) uint8 {
	switch {
	case addr < RAM_END:
		return s.ram[addr&(RAM_SIZE-1)]
	case addr >= ROM_START:
		return s.rom[addr&(ROM_SIZE-1)]
	}
	for _, r := range s.regions {
		if r.contains(addr) {
			return r.Dev.Read(addr - r.Base)
		}
	}
	return 0x00
}

// Peek returns what Read would for RAM and ROM without touching any
// device. Region and unmapped addresses return 0x00.
func (s *System) Peek(addr uint16) uint8 {
	switch {
	case addr < RAM_END:
		return s.ram[addr&(RAM_SIZE-1)]
	case addr >= ROM_START:
		return s.rom[addr&(ROM_SIZE-1)]
	}
	return 0x00
}

// Write implements Bus. ROM and unmapped writes are ignored.
func (s *System) Write(addr uint16, val uint8) {
	if addr < RAM_END {
		s.ram[addr&(RAM_SIZE-1)] = val
		return
	}
	if addr >= ROM_START {
		return
	}
	for _, r := range s.regions {
		if r.contains(addr) {
			r.Dev.Write(addr-r.Base, val)
			return
		}
	}
}

// PowerOn clears RAM. ROM and devices are untouched.
func (s *System) PowerOn() {
	for i := range s.ram {
		s.ram[i] = 0x00
	}
}
