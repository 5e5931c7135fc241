// Package irq bridges the Hint button's hardware interrupt into the main loop.
//
// The interrupt handler only stores true into an atomic flag. What the edge means is
// decided later by Process, which samples the OK button when the flag is serviced: Hint
// with OK held is the new-game gesture, Hint alone is a hint request.
package irq

import (
	"fmt"
	"sync/atomic"

	"smartchess/hal"
)

// Result is what a serviced interrupt means.
type Result uint8

const (
	None Result = iota
	Hint
	NewGame
)

func (r Result) String() string {
	switch r {
	case None:
		return "none"
	case Hint:
		return "hint"
	case NewGame:
		return "new-game"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Bridge owns the Hint pin interrupt.
type Bridge struct {
	pin     hal.GPIOPin
	okHeld  func() bool
	pending atomic.Bool
	armed   bool
}

// New returns a disarmed bridge for the Hint pin. okHeld samples the OK button's
// current level.
func New(hint hal.GPIOPin, okHeld func() bool) *Bridge {
	return &Bridge{pin: hint, okHeld: okHeld}
}

func (b *Bridge) isr() {
	b.pending.Store(true)
}

// Enable arms the falling-edge interrupt.
func (b *Bridge) Enable() error {
	if b.pin == nil {
		return fmt.Errorf("irq: %w", hal.ErrNoInterrupt)
	}
	if err := b.pin.SetInterrupt(hal.EdgeFalling, b.isr); err != nil {
		return fmt.Errorf("irq: arm %s: %w", b.pin.Name(), err)
	}
	b.armed = true
	return nil
}

// Disable disarms the interrupt. A flag already set stays set until Process or Clear.
func (b *Bridge) Disable() error {
	b.armed = false
	if b.pin == nil {
		return nil
	}
	if err := b.pin.SetInterrupt(hal.EdgeNone, nil); err != nil {
		return fmt.Errorf("irq: disarm %s: %w", b.pin.Name(), err)
	}
	return nil
}

// Armed reports whether Enable succeeded more recently than Disable.
func (b *Bridge) Armed() bool { return b.armed }

// Pending reports whether an edge is waiting to be serviced.
func (b *Bridge) Pending() bool { return b.pending.Load() }

// Clear drops a pending edge.
func (b *Bridge) Clear() { b.pending.Store(false) }

// Process services at most one pending edge.
//
// Outside gameplay pending edges are dropped. Inside gameplay the flag is consumed and
// the OK button is sampled now, not at interrupt time, so the two presses of the
// new-game gesture may land a few milliseconds apart. A plain hint is suppressed while
// setup is still in progress.
func (b *Bridge) Process(running, inSetup bool) Result {
	if !running {
		b.pending.Store(false)
		return None
	}
	if !b.pending.Load() {
		return None
	}
	b.pending.Store(false)

	if b.okHeld != nil && b.okHeld() {
		return NewGame
	}
	if inSetup {
		return None
	}
	return Hint
}
