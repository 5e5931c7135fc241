// Package link speaks the newline-framed serial protocol with the host.
//
// Host lines start with "heyArduino", device lines with "heypi". Typing previews are
// device lines of the form "heypityping_<label>_<text>".
package link

import (
	"strings"

	"smartchess/hal"
)

// Link owns the serial port. Receive and Send are called from the main loop only.
type Link struct {
	port  hal.Serial
	log   hal.Logger
	fr    Framer
	inbox mailbox
	rx    [1]byte
	tx    []byte

	deferred []string

	// Trace logs every line in both directions.
	Trace bool
}

// New returns a link over port.
func New(port hal.Serial, log hal.Logger) *Link {
	return &Link{port: port, log: log, tx: make([]byte, 0, MaxLineBytes+16)}
}

func (l *Link) logf(s string) {
	if l.log != nil {
		l.log.WriteLineString("[link] " + s)
	}
}

// Send writes DevicePrefix+msg+"\n".
func (l *Link) Send(msg string) {
	l.writeLine(msg)
}

// SendPreview writes a typing preview for label.
func (l *Link) SendPreview(label, text string) {
	l.writeLine(previewTag + label + "_" + text)
}

func (l *Link) writeLine(body string) {
	if l.port == nil {
		return
	}
	l.tx = append(l.tx[:0], DevicePrefix...)
	l.tx = append(l.tx, body...)
	l.tx = append(l.tx, '\n')
	if _, err := l.port.Write(l.tx); err != nil {
		l.logf("write: " + err.Error())
		return
	}
	if l.Trace {
		l.logf("tx " + string(l.tx[:len(l.tx)-1]))
	}
}

// DeferSlots is how many bodies Defer can set aside.
const DeferSlots = mailboxSlots

// Receive returns the next host directive body without blocking, deferred bodies first.
// Lines without the host prefix or with an empty body are drained. ok is false when
// nothing is waiting.
func (l *Link) Receive() (body string, ok bool) {
	if len(l.deferred) > 0 {
		body = l.deferred[0]
		n := copy(l.deferred, l.deferred[1:])
		l.deferred = l.deferred[:n]
		return body, true
	}
	return l.ReceiveFresh()
}

// ReceiveFresh is Receive without the deferred bodies.
func (l *Link) ReceiveFresh() (body string, ok bool) {
	for {
		if s, got := l.inbox.tryRecv(); got {
			if b, keep := l.accept(s); keep {
				return b, true
			}
			continue
		}
		if !l.fill() {
			return "", false
		}
	}
}

// Defer sets body aside for a later Receive, keeping arrival order. It returns false
// when DeferSlots bodies are already waiting.
func (l *Link) Defer(body string) bool {
	if l.DeferFull() {
		return false
	}
	if l.deferred == nil {
		l.deferred = make([]string, 0, DeferSlots)
	}
	l.deferred = append(l.deferred, body)
	return true
}

// DeferFull reports whether Defer would refuse another body.
func (l *Link) DeferFull() bool { return len(l.deferred) >= DeferSlots }

// Next is Receive followed by ParseDirective.
func (l *Link) Next() (Directive, bool) {
	body, ok := l.Receive()
	if !ok {
		return Directive{}, false
	}
	return ParseDirective(body), true
}

// Queued returns how many framed lines are waiting, deferred ones included.
func (l *Link) Queued() int {
	return l.inbox.len() + len(l.deferred)
}

// Discarded returns how many overlong lines were dropped.
func (l *Link) Discarded() int { return l.fr.Discarded }

// Drain discards every buffered host line.
func (l *Link) Drain() int {
	n := 0
	for {
		if _, ok := l.Receive(); !ok {
			return n
		}
		n++
	}
}

func (l *Link) accept(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if l.Trace && s != "" {
		l.logf("rx " + s)
	}
	body, ok := strings.CutPrefix(s, HostPrefix)
	if !ok {
		if s != "" {
			l.logf("drop " + s)
		}
		return "", false
	}
	body = strings.TrimSpace(body)
	return body, body != ""
}

// fill moves buffered bytes through the framer into the inbox until the inbox is full
// or the port runs dry. One byte is read at a time so a completed line always has a
// slot. It reports whether any line was queued.
func (l *Link) fill() bool {
	if l.port == nil {
		return false
	}
	queued := false
	for l.inbox.len() < mailboxSlots && l.port.Buffered() > 0 {
		n, err := l.port.Read(l.rx[:1])
		if err != nil {
			l.logf("read: " + err.Error())
			return queued
		}
		if n == 0 {
			break
		}
		l.fr.Feed(l.rx[:n], func(b []byte) {
			queued = l.inbox.trySend(b) || queued
		})
	}
	return queued
}
