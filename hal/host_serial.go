//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

const (
	hostSerialRxBytes = 4096
	hostSerialRecent  = 4
)

// hostSerial mimics a UART: a reader goroutine fills a bounded rx buffer and Read drains
// it without blocking.
type hostSerial struct {
	mu  sync.Mutex
	rx  []byte
	err error

	wmu     sync.Mutex
	w       io.Writer
	partial []byte
	recent  []string
}

func newHostSerial(r io.Reader, w io.Writer) *hostSerial {
	s := &hostSerial{w: w}
	if r != nil {
		go s.readLoop(r)
	}
	return s
}

func (s *hostSerial) readLoop(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		s.mu.Lock()
		if n > 0 {
			s.rx = append(s.rx, buf[:n]...)
			if over := len(s.rx) - hostSerialRxBytes; over > 0 {
				// Overrun: drop the oldest bytes like a full FIFO would.
				s.rx = append(s.rx[:0], s.rx[over:]...)
			}
		}
		if err != nil {
			s.err = err
		}
		s.mu.Unlock()
		if err != nil {
			return
		}
	}
}

func (s *hostSerial) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rx)
}

func (s *hostSerial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(p, s.rx)
	s.rx = append(s.rx[:0], s.rx[n:]...)
	if n == 0 && s.err != nil && s.err != io.EOF {
		return 0, s.err
	}
	return n, nil
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	s.track(p)
	return s.w.Write(p)
}

// track keeps the last few transmitted lines for the simulator overlay.
func (s *hostSerial) track(p []byte) {
	for _, b := range p {
		switch b {
		case '\r':
		case '\n':
			s.recent = append(s.recent, string(s.partial))
			if len(s.recent) > hostSerialRecent {
				s.recent = s.recent[len(s.recent)-hostSerialRecent:]
			}
			s.partial = s.partial[:0]
		default:
			s.partial = append(s.partial, b)
		}
	}
}

func (s *hostSerial) recentLines() []string {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return append([]string(nil), s.recent...)
}
