package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ya6502/ya6502/memory"
	"github.com/ya6502/ya6502/port"
)

type badWriter struct {
	calls int
}

func (b *badWriter) Write(p []byte) (int, error) {
	b.calls++
	return 0, errors.New("closed")
}

func TestInitErrors(t *testing.T) {
	if _, err := Init(nil); err == nil {
		t.Error("nil def didn't error")
	}
	if _, err := Init(&ChipDef{}); err == nil {
		t.Error("missing Output didn't error")
	}
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	c, err := Init(&ChipDef{Output: &buf})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, b := range []byte("hi\n") {
		c.Write(DATA, b)
	}
	// STATUS writes go nowhere.
	c.Write(STATUS, 'x')
	if got, want := buf.String(), "hi\n"; got != want {
		t.Errorf("output got %q want %q", got, want)
	}
	if got, want := c.Read(STATUS), kMASK_STATUS_OUTPUT; got != want {
		t.Errorf("STATUS got %.2X want %.2X", got, want)
	}
	if got := c.Read(DATA); got != 0x00 {
		t.Errorf("DATA with no input got %.2X want 00", got)
	}
}

func TestInput(t *testing.T) {
	q := port.NewQueue(4)
	var buf bytes.Buffer
	c, err := Init(&ChipDef{Output: &buf, Input: q})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := c.Read(STATUS) & kMASK_STATUS_INPUT; got != 0 {
		t.Errorf("input ready with empty queue: %s", spew.Sdump(c))
	}
	q.Push('k')
	if got := c.Read(STATUS) & kMASK_STATUS_INPUT; got == 0 {
		t.Errorf("input not ready after push: %s", spew.Sdump(c))
	}
	// STATUS doesn't consume.
	if got, want := c.Read(DATA), uint8('k'); got != want {
		t.Errorf("DATA got %.2X want %.2X", got, want)
	}
	if got := c.Read(DATA); got != 0x00 {
		t.Errorf("second DATA read got %.2X want 00", got)
	}
}

func TestOutputError(t *testing.T) {
	w := &badWriter{}
	c, err := Init(&ChipDef{Output: w})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(DATA, 'a')
	c.Write(DATA, 'b')
	if c.Err() == nil {
		t.Error("Err() didn't report the writer failure")
	}
	if got, want := w.calls, 1; got != want {
		t.Errorf("writer called %d times want %d", got, want)
	}
}

func TestMapped(t *testing.T) {
	var buf bytes.Buffer
	c, err := Init(&ChipDef{Output: &buf})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	s, err := memory.NewSystem([]uint8{0x00}, memory.Region{Base: 0x6000, Size: SIZE, Dev: c})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	s.Write(0x6000+DATA, 'Z')
	if got, want := buf.String(), "Z"; got != want {
		t.Errorf("mapped output got %q want %q", got, want)
	}
}
