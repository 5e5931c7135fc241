//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

// consoleLogger writes to the USB CDC console.
type consoleLogger struct{}

func (l *consoleLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *consoleLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Buffered() int {
	if s.uart == nil {
		return 0
	}
	return s.uart.Buffered()
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}

type machinePin struct {
	pin  machine.Pin
	name string
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown | GPIOCapInterrupt
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch mode {
	case GPIOModeOutput:
		if pull != GPIOPullNone {
			return fmt.Errorf("gpio: pin %s: pull on output", p.name)
		}
		m = machine.PinOutput
	case GPIOModeInput:
		switch pull {
		case GPIOPullNone:
			m = machine.PinInput
		case GPIOPullUp:
			m = machine.PinInputPullup
		case GPIOPullDown:
			m = machine.PinInputPulldown
		default:
			return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

func (p *machinePin) SetInterrupt(edge Edge, fn func()) error {
	if edge == EdgeNone || fn == nil {
		return p.pin.SetInterrupt(0, nil)
	}
	var change machine.PinChange
	switch edge {
	case EdgeFalling:
		change = machine.PinFalling
	case EdgeRising:
		change = machine.PinRising
	default:
		change = machine.PinFalling | machine.PinRising
	}
	if err := p.pin.SetInterrupt(change, func(machine.Pin) { fn() }); err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.name, err)
	}
	return nil
}
