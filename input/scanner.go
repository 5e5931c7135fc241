// Package input turns active-low push-buttons into debounced press events.
package input

import (
	"time"

	"smartchess/hal"
)

// ButtonID is a 1-based button number. Its role comes from the button layout.
type ButtonID int

// DefaultSettle is how long Scan waits after reporting a press.
const DefaultSettle = 20 * time.Millisecond

// Scanner reports falling edges (released → pressed) on a fixed set of buttons.
//
// It is not safe for concurrent use; only the main loop scans.
type Scanner struct {
	pins   []hal.GPIOPin
	clock  hal.Clock
	settle time.Duration
	// prev holds the last sampled level per button, true = released.
	prev []bool
}

// NewScanner configures pins as pulled-up inputs and primes the edge detector.
// Button n maps to pins[n-1].
func NewScanner(pins []hal.GPIOPin, clock hal.Clock) (*Scanner, error) {
	s := &Scanner{
		pins:   pins,
		clock:  clock,
		settle: DefaultSettle,
		prev:   make([]bool, len(pins)),
	}
	for _, p := range pins {
		if p == nil {
			continue
		}
		if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return nil, err
		}
	}
	s.Reset()
	return s, nil
}

// SetSettle overrides the post-press settle delay.
func (s *Scanner) SetSettle(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.settle = d
}

// Count returns the number of buttons.
func (s *Scanner) Count() int { return len(s.pins) }

// Scan returns the lowest-numbered button that went from released to pressed since
// the previous sample. Pins after the reported one keep their old level so a second
// simultaneous edge is reported on the next call.
func (s *Scanner) Scan() (ButtonID, bool) {
	for i, p := range s.pins {
		cur := s.level(p)
		prev := s.prev[i]
		s.prev[i] = cur
		if prev && !cur {
			if s.settle > 0 && s.clock != nil {
				s.clock.Sleep(s.settle)
			}
			return ButtonID(i + 1), true
		}
	}
	return 0, false
}

// Reset re-primes every stored level from the pins without reporting edges. Call it
// when entering a new input prompt so a press from the previous prompt is not replayed.
func (s *Scanner) Reset() {
	for i, p := range s.pins {
		s.prev[i] = s.level(p)
	}
}

// Pressed samples one button right now.
func (s *Scanner) Pressed(id ButtonID) bool {
	i := int(id) - 1
	if i < 0 || i >= len(s.pins) {
		return false
	}
	return !s.level(s.pins[i])
}

// Pin returns the pin behind a button, or nil.
func (s *Scanner) Pin(id ButtonID) hal.GPIOPin {
	i := int(id) - 1
	if i < 0 || i >= len(s.pins) {
		return nil
	}
	return s.pins[i]
}

// level reads a pin; a missing pin or a read error counts as released.
func (s *Scanner) level(p hal.GPIOPin) bool {
	if p == nil {
		return true
	}
	v, err := p.Read()
	if err != nil {
		return true
	}
	return v
}
