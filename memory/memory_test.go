package memory

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// regs is a tiny device that records what it was handed.
type regs struct {
	vals      [4]uint8
	lastRead  uint16
	lastWrite uint16
}

func (r *regs) Read(addr uint16) uint8 {
	r.lastRead = addr
	return r.vals[addr&0x03]
}

func (r *regs) Write(addr uint16, val uint8) {
	r.lastWrite = addr
	r.vals[addr&0x03] = val
}

func TestFlat(t *testing.T) {
	f := &Flat{}
	f.Load(0xFFFE, []uint8{0x01, 0x02, 0x03})
	if got, want := f.Read(0xFFFE), uint8(0x01); got != want {
		t.Errorf("Read(FFFE) got %.2X want %.2X", got, want)
	}
	if got, want := f.Read(0x0000), uint8(0x03); got != want {
		t.Errorf("Load didn't wrap. Read(0000) got %.2X want %.2X", got, want)
	}
	f.SetVector(0xFFFC, 0x8012)
	if got, want := f.Read(0xFFFC), uint8(0x12); got != want {
		t.Errorf("vector low got %.2X want %.2X", got, want)
	}
	if got, want := f.Read(0xFFFD), uint8(0x80); got != want {
		t.Errorf("vector high got %.2X want %.2X", got, want)
	}
	f.PowerOn()
	for i := 0; i < 65536; i++ {
		if got := f.Read(uint16(i)); got != 0x00 {
			t.Fatalf("PowerOn left %.2X at %.4X", got, i)
		}
	}
}

func TestSystemMap(t *testing.T) {
	rom := make([]uint8, ROM_SIZE)
	for i := range rom {
		rom[i] = uint8(i)
	}
	s, err := NewSystem(rom)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	// RAM is mirrored every 2k through 0x1FFF.
	s.Write(0x0012, 0xAB)
	for _, a := range []uint16{0x0012, 0x0812, 0x1012, 0x1812} {
		if got, want := s.Read(a), uint8(0xAB); got != want {
			t.Errorf("RAM mirror at %.4X got %.2X want %.2X", a, got, want)
		}
	}
	// Unmapped space reads 0 and drops writes.
	s.Write(0x2000, 0x55)
	if got := s.Read(0x2000); got != 0x00 {
		t.Errorf("unmapped read got %.2X want 00", got)
	}
	// ROM ignores writes.
	s.Write(0x8001, 0xFF)
	if got, want := s.Read(0x8001), uint8(0x01); got != want {
		t.Errorf("ROM at 8001 got %.2X want %.2X", got, want)
	}
	if got, want := s.Read(0xFFFC), uint8(0xFC); got != want {
		t.Errorf("ROM at FFFC got %.2X want %.2X", got, want)
	}
	s.PowerOn()
	if got := s.Read(0x0012); got != 0x00 {
		t.Errorf("PowerOn didn't clear RAM: %s", spew.Sdump(s.ram[:0x20]))
	}
}

func TestSystemRegions(t *testing.T) {
	dev := &regs{}
	s, err := NewSystem([]uint8{0xEA}, Region{Base: 0x6000, Size: 4, Dev: dev})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	s.Write(0x6002, 0x42)
	if got, want := dev.lastWrite, uint16(2); got != want {
		t.Errorf("device saw write offset %.4X want %.4X", got, want)
	}
	if got, want := s.Read(0x6002), uint8(0x42); got != want {
		t.Errorf("device read got %.2X want %.2X", got, want)
	}
	if got := s.Read(0x6004); got != 0x00 {
		t.Errorf("read past region got %.2X want 00", got)
	}
	// Short images are zero filled.
	if got := s.Read(0x8001); got != 0x00 {
		t.Errorf("short ROM tail got %.2X want 00", got)
	}
}

func TestSystemPeek(t *testing.T) {
	dev := &regs{}
	s, err := NewSystem([]uint8{0xEA, 0x4C}, Region{Base: 0x6000, Size: 4, Dev: dev})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	s.Write(0x0801, 0x77)
	dev.vals[1] = 0x42
	dev.lastRead = 0xFFFF
	tests := []struct {
		addr uint16
		want uint8
	}{
		{0x0001, 0x77},
		{0x1801, 0x77},
		{0x6001, 0x00},
		{0x7000, 0x00},
		{0x8000, 0xEA},
		{0x8001, 0x4C},
	}
	for _, test := range tests {
		if got := s.Peek(test.addr); got != test.want {
			t.Errorf("Peek(%.4X) got %.2X want %.2X", test.addr, got, test.want)
		}
	}
	if got, want := dev.lastRead, uint16(0xFFFF); got != want {
		t.Errorf("Peek reached the device at offset %.4X: %s", got, spew.Sdump(dev))
	}
}

func TestSystemErrors(t *testing.T) {
	dev := &regs{}
	tests := []struct {
		name    string
		rom     []uint8
		regions []Region
	}{
		{
			name: "empty rom",
		},
		{
			name: "rom too big",
			rom:  make([]uint8, ROM_SIZE+1),
		},
		{
			name:    "region over RAM",
			rom:     []uint8{0x00},
			regions: []Region{{Base: 0x1FFF, Size: 2, Dev: dev}},
		},
		{
			name:    "region into ROM",
			rom:     []uint8{0x00},
			regions: []Region{{Base: 0x7FFF, Size: 2, Dev: dev}},
		},
		{
			name:    "no device",
			rom:     []uint8{0x00},
			regions: []Region{{Base: 0x6000, Size: 2}},
		},
		{
			name:    "overlap",
			rom:     []uint8{0x00},
			regions: []Region{{Base: 0x6000, Size: 4, Dev: dev}, {Base: 0x6003, Size: 4, Dev: dev}},
		},
	}
	for _, test := range tests {
		if _, err := NewSystem(test.rom, test.regions...); err == nil {
			t.Errorf("%s: didn't get error", test.name)
		}
	}
}
