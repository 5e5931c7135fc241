package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
	GPIOCapInterrupt
)

// Edge selects which level transitions fire a pin interrupt.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeFalling
	EdgeRising
	EdgeBoth
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
//
// SetInterrupt installs fn for the given edge; EdgeNone or a nil fn disarms it. fn runs in
// interrupt context on hardware and must only touch atomics.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
	SetInterrupt(edge Edge, fn func()) error
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type pinSet struct {
	pins []GPIOPin
}

// NewGPIO groups pins into a GPIO bank. Pin ids are slice indexes.
func NewGPIO(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &pinSet{pins: pins}
}

func (g *pinSet) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *pinSet) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// VirtualPin is a GPIO pin backed by memory. Drive simulates an external signal, which is
// how the simulator window and tests press buttons.
type VirtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool

	driven bool
	edge   Edge
	irq    func()
}

// NewVirtualPin returns an input pin with the given capabilities.
func NewVirtualPin(name string, caps GPIOCaps) *VirtualPin {
	return &VirtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *VirtualPin) Name() string   { return p.name }
func (p *VirtualPin) Caps() GPIOCaps { return p.caps }

// needs returns the capability a mode/pull combination requires, or false when either
// value is out of range.
func needs(mode GPIOMode, pull GPIOPull) (GPIOCaps, bool) {
	var c GPIOCaps
	switch mode {
	case GPIOModeInput:
		c = GPIOCapInput
	case GPIOModeOutput:
		c = GPIOCapOutput
	default:
		return 0, false
	}
	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		c |= GPIOCapPullUp
	case GPIOPullDown:
		c |= GPIOCapPullDown
	default:
		return 0, false
	}
	return c, true
}

func (p *VirtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	want, ok := needs(mode, pull)
	if !ok {
		return fmt.Errorf("gpio: pin %s: invalid mode %d pull %d", p.name, mode, pull)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if missing := want &^ p.caps; missing != 0 {
		return fmt.Errorf("gpio: pin %s: caps %#x unsupported", p.name, uint8(missing))
	}
	p.mode = mode
	p.pull = pull
	if !p.driven && mode == GPIOModeInput {
		// An undriven input floats to its pull.
		p.level = pull == GPIOPullUp
	}
	return nil
}

func (p *VirtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeInput && p.mode != GPIOModeOutput {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

func (p *VirtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

func (p *VirtualPin) SetInterrupt(edge Edge, fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.caps&GPIOCapInterrupt == 0 {
		return fmt.Errorf("gpio: pin %s: %w", p.name, ErrNoInterrupt)
	}
	if fn == nil {
		edge = EdgeNone
	}
	p.edge = edge
	p.irq = fn
	return nil
}

// Drive forces the input level as an external circuit would, firing the interrupt
// handler on a matching edge. The handler runs on the caller's goroutine.
func (p *VirtualPin) Drive(level bool) {
	p.mu.Lock()
	prev := p.level
	p.level = level
	p.driven = true
	fn := p.irq
	edge := p.edge
	p.mu.Unlock()

	if fn == nil || prev == level {
		return
	}
	switch {
	case edge == EdgeBoth,
		edge == EdgeFalling && prev && !level,
		edge == EdgeRising && !prev && level:
		fn()
	}
}

// Armed reports whether an interrupt handler is installed.
func (p *VirtualPin) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.irq != nil && p.edge != EdgeNone
}
