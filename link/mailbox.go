package link

import "sync/atomic"

const mailboxSlots = 8

// line is a fixed-size received line.
type line struct {
	n    uint8
	data [MaxLineBytes]byte
}

// mailbox is a fixed-size single-producer, single-consumer queue of received lines.
// It does not allocate, so the rx path can run the same way on bare metal.
type mailbox struct {
	_     [0]func()
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]line
}

// trySend enqueues b, returning false if the mailbox is full.
func (mb *mailbox) trySend(b []byte) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		return false
	}
	slot := &mb.slots[head%mailboxSlots]
	slot.n = uint8(copy(slot.data[:], b))
	mb.head.Store(head + 1)
	return true
}

// tryRecv dequeues one line, returning false if empty.
func (mb *mailbox) tryRecv() (string, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return "", false
	}
	slot := &mb.slots[tail%mailboxSlots]
	s := string(slot.data[:slot.n])
	mb.tail.Store(tail + 1)
	return s, true
}

func (mb *mailbox) len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
