package main

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestAssemble(t *testing.T) {
	in := `Hello world
8000 A9 48	LDA #'H'
8002 8D 00 60	STA $6000
LOOP
8005 4C 05 80	JMP LOOP (*) spin
FFF0 EA
`
	rom, err := assemble(strings.NewReader(in), 0x8000)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got, want := len(rom), 0x8000; got != want {
		t.Fatalf("length got %d want %d", got, want)
	}
	want := []byte{0xA9, 0x48, 0x8D, 0x00, 0x60, 0x4C, 0x05, 0x80, 0x00}
	if diff := deep.Equal(rom[:len(want)], want); diff != nil {
		t.Errorf("program differs: %v", diff)
	}
	if got, want := rom[0x7FF0], byte(0xEA); got != want {
		t.Errorf("FFF0 got %.2X want %.2X", got, want)
	}
	if diff := deep.Equal(rom[0x7FFC:0x7FFE], []byte{0x00, 0x80}); diff != nil {
		t.Errorf("reset vector differs: %v", diff)
	}
}

func TestAssembleNoReset(t *testing.T) {
	rom, err := assemble(strings.NewReader("FFFC 34 12\n"), -1)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got, want := rom[0x7FFC:0x7FFE], []byte{0x34, 0x12}; deep.Equal(got, want) != nil {
		t.Errorf("vector got %v want %v", got, want)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		reset int
	}{
		{"below ROM", "1000 EA\n", -1},
		{"runs off the end", "FFFF EA EA\n", -1},
		{"bad byte", "8000 A9 4\n", -1},
		{"too many bytes", "8000 A9 01 02 03\n", -1},
		{"reset too large", "8000 EA\n", 0x10000},
	}
	for _, test := range tests {
		if _, err := assemble(strings.NewReader(test.in), test.reset); err == nil {
			t.Errorf("%s: didn't get an error", test.name)
		}
	}
}
