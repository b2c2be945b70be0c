package main

import (
	"testing"

	"github.com/ya6502/ya6502/cpu"
	"github.com/ya6502/ya6502/memory"
)

func TestStartAddress(t *testing.T) {
	r := &memory.Flat{}
	r.SetVector(cpu.RESET_VECTOR, 0x8123)
	tests := []struct {
		name    string
		start   int
		want    uint16
		wantErr bool
	}{
		{"reset vector", -1, 0x8123, false},
		{"explicit", 0x9000, 0x9000, false},
		{"top of memory", 0xFFFF, 0xFFFF, false},
		{"too large", 0x10000, 0, true},
		{"way too large", 0x18000, 0, true},
	}
	for _, test := range tests {
		got, err := startAddress(test.start, r)
		if gotErr := err != nil; gotErr != test.wantErr {
			t.Errorf("%s: error %v want error %t", test.name, err, test.wantErr)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %.4X want %.4X", test.name, got, test.want)
		}
	}
}
