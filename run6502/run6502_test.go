package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ya6502/ya6502/console"
	"github.com/ya6502/ya6502/disassemble"
	"github.com/ya6502/ya6502/memory"
	"github.com/ya6502/ya6502/port"
)

func TestCRLF(t *testing.T) {
	var b bytes.Buffer
	n, err := crlf{&b}.Write([]byte("a\nb\n"))
	if err != nil || n != 4 {
		t.Fatalf("Write returned %d, %v", n, err)
	}
	if got, want := b.String(), "a\r\nb\r\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestReadInput(t *testing.T) {
	q := port.NewQueue(kINPUT_DEPTH)
	quit := make(chan struct{})
	readInput(strings.NewReader("hi"), q, false, quit)
	var got []byte
	for q.Ready() {
		got = append(got, q.Input())
	}
	if string(got) != "hi" {
		t.Errorf("queued %q want %q", got, "hi")
	}
}

func TestReadInputCtrlC(t *testing.T) {
	q := port.NewQueue(kINPUT_DEPTH)
	quit := make(chan struct{})
	readInput(strings.NewReader("x\x03y"), q, true, quit)
	select {
	case <-quit:
	default:
		t.Fatal("quit not closed")
	}
	if got := q.Input(); got != 'x' {
		t.Errorf("first byte got %q want x", got)
	}
	if q.Ready() {
		t.Error("bytes after Ctrl-C were queued")
	}
}

func TestTraceLeavesInput(t *testing.T) {
	q := port.NewQueue(kINPUT_DEPTH)
	q.Push('k')
	con, err := console.Init(&console.ChipDef{Output: &bytes.Buffer{}, Input: q})
	if err != nil {
		t.Fatalf("console.Init: %v", err)
	}
	sys, err := memory.NewSystem([]uint8{0xEA}, memory.Region{Base: 0x6000, Size: console.SIZE, Dev: con})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	// Both of these read ahead into DATA.
	for _, pc := range []uint16{0x5FFF, 0x5FFE} {
		disassemble.Step(pc, peekBus{sys})
	}
	if !q.Ready() || q.Input() != 'k' {
		t.Error("tracing consumed a console input byte")
	}
	if got, want := (peekBus{sys}).Read(0x8000), uint8(0xEA); got != want {
		t.Errorf("ROM through peekBus got %.2X want %.2X", got, want)
	}
}
