//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

// Pico wiring. Buttons are active-low with internal pull-ups.
var buttonPins = []machine.Pin{
	machine.GP2, machine.GP3, machine.GP4, machine.GP5,
	machine.GP6, machine.GP7, machine.GP8, machine.GP9,
}

const (
	boardPin    = machine.GP28
	panelPin    = machine.GP12
	boardPixels = 64
	panelPixels = 22
)

type tinyGoHAL struct {
	logger *consoleLogger
	gpio   GPIO
	board  Pixels
	panel  Pixels
	serial *uartSerial
	clock  Clock
}

// New returns a Raspberry Pi Pico HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1, reserved for the host link.
// Logs go to the USB console.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	pins := make([]GPIOPin, 0, len(buttonPins))
	for _, p := range buttonPins {
		pins = append(pins, &machinePin{pin: p, name: fmt.Sprintf("GP%d", int(p))})
	}

	return &tinyGoHAL{
		logger: &consoleLogger{},
		gpio:   NewGPIO(pins),
		board:  newWS2812Pixels(boardPin, boardPixels),
		panel:  newWS2812Pixels(panelPin, panelPixels),
		serial: &uartSerial{uart: uart},
		clock:  SystemClock(),
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) GPIO() GPIO     { return h.gpio }
func (h *tinyGoHAL) Board() Pixels  { return h.board }
func (h *tinyGoHAL) Panel() Pixels  { return h.panel }
func (h *tinyGoHAL) Serial() Serial { return h.serial }
func (h *tinyGoHAL) Clock() Clock   { return h.clock }
