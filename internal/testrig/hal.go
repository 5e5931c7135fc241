package testrig

import "smartchess/hal"

// HAL is an in-memory hal.HAL with virtual buttons, LED chains and serial port.
type HAL struct {
	Pins    []*hal.VirtualPin
	BoardPx *hal.MemPixels
	PanelPx *hal.MemPixels
	Port    *Serial
	Clk     *Clock
	Log     *Logger

	gpio hal.GPIO
}

// NewHAL returns a HAL with n buttons, a 64 pixel board and a 22 pixel panel.
func NewHAL(buttons int) *HAL {
	pins, gpio := Buttons(buttons)
	return &HAL{
		Pins:    pins,
		BoardPx: hal.NewMemPixels(64),
		PanelPx: hal.NewMemPixels(22),
		Port:    &Serial{},
		Clk:     NewClock(),
		Log:     &Logger{},
		gpio:    hal.NewGPIO(gpio),
	}
}

func (h *HAL) Logger() hal.Logger { return h.Log }
func (h *HAL) GPIO() hal.GPIO     { return h.gpio }
func (h *HAL) Board() hal.Pixels  { return h.BoardPx }
func (h *HAL) Panel() hal.Pixels  { return h.PanelPx }
func (h *HAL) Serial() hal.Serial { return h.Port }
func (h *HAL) Clock() hal.Clock   { return h.Clk }

// Button returns the pin of 1-based button n.
func (h *HAL) Button(n int) *hal.VirtualPin { return h.Pins[n-1] }
