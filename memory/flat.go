package memory

// Flat is a plain 64k RAM bank with no mirroring or ROM.
type Flat struct {
	addr [65536]uint8
}

// Read implements Bus.
func (f *Flat) Read(addr uint16) uint8 {
	return f.addr[addr]
}

// Write implements Bus.
func (f *Flat) Write(addr uint16, val uint8) {
	f.addr[addr] = val
}

// PowerOn zeros the whole bank.
func (f *Flat) PowerOn() {
	for i := range f.addr {
		f.addr[i] = 0x00
	}
}

// Load copies b into the bank starting at offset. Anything past 0xFFFF wraps
// around to 0x0000.
func (f *Flat) Load(offset uint16, b []uint8) {
	for i, v := range b {
		f.addr[offset+uint16(i)] = v
	}
}

// SetVector stores addr little endian at vec (i.e. the reset vector at 0xFFFC).
func (f *Flat) SetVector(vec uint16, addr uint16) {
	f.addr[vec] = uint8(addr & 0xFF)
	f.addr[vec+1] = uint8((addr & 0xFF00) >> 8)
}
