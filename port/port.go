// Package port defines the basic interfaces for working
// with a 6502 family based input port. Devices (such as the console)
// poll these from the CPU goroutine while the host may feed them from
// another goroutine.
package port

// In8 defines an 8 bit input port.
type In8 interface {
	// Input will return the current value being set on the given input port.
	Input() uint8
}

// Queued8 is an In8 where each Input consumes a byte and Ready
// reports whether one is waiting.
type Queued8 interface {
	In8
	Ready() bool
}

// Queue is a bounded Queued8. Push may be called from any goroutine but
// Ready and Input must only be called by the single consumer.
type Queue struct {
	c    chan uint8
	next uint8
	have bool
}

// NewQueue returns a Queue holding up to depth pending bytes.
func NewQueue(depth int) *Queue {
	if depth < 1 {
		depth = 1
	}
	return &Queue{c: make(chan uint8, depth)}
}

// Push queues b and reports false if the queue was full and b was dropped.
func (q *Queue) Push(b uint8) bool {
	select {
	case q.c <- b:
		return true
	default:
		return false
	}
}

// Ready implements Queued8.
func (q *Queue) Ready() bool {
	if q.have {
		return true
	}
	select {
	case q.next = <-q.c:
		q.have = true
	default:
	}
	return q.have
}

// Input implements In8. With nothing queued it returns 0x00.
func (q *Queue) Input() uint8 {
	if !q.Ready() {
		return 0x00
	}
	q.have = false
	return q.next
}
