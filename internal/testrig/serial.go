package testrig

import (
	"strings"
	"sync"
)

// Serial is an in-memory UART. Tests push bytes the device will read and inspect the
// lines it wrote.
type Serial struct {
	mu      sync.Mutex
	rx      []byte
	tx      []byte
	lines   []string
	partial []byte
}

func (s *Serial) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rx)
}

func (s *Serial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(p, s.rx)
	s.rx = s.rx[n:]
	return n, nil
}

func (s *Serial) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx = append(s.tx, p...)
	for _, b := range p {
		if b == '\n' {
			s.lines = append(s.lines, string(s.partial))
			s.partial = s.partial[:0]
			continue
		}
		s.partial = append(s.partial, b)
	}
	return len(p), nil
}

// Push queues raw bytes for the device.
func (s *Serial) Push(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rx = append(s.rx, b...)
}

// PushLine queues one newline-terminated line for the device.
func (s *Serial) PushLine(line string) {
	s.Push([]byte(line + "\n"))
}

// Lines returns every complete line the device wrote.
func (s *Serial) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// LinesSince returns the lines written after the first n.
func (s *Serial) LinesSince(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= len(s.lines) {
		return nil
	}
	return append([]string(nil), s.lines[n:]...)
}

// Count returns how many complete lines were written.
func (s *Serial) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Wrote reports whether the device wrote exactly line at some point.
func (s *Serial) Wrote(line string) bool {
	for _, l := range s.Lines() {
		if l == line {
			return true
		}
	}
	return false
}

// Transcript joins every written line, for failure messages.
func (s *Serial) Transcript() string {
	return strings.Join(s.Lines(), "\n")
}
