//go:build !tinygo

package hal

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

const (
	hostBoardPixels = 64
	hostPanelPixels = 22
)

type hostHAL struct {
	logger  *hostLogger
	buttons []*VirtualPin
	gpio    GPIO
	board   *MemPixels
	panel   *MemPixels
	serial  *hostSerial
	clock   Clock
}

// New returns a host HAL implementation with eight buttons.
func New() HAL {
	return NewHost(8)
}

// NewHost returns a host HAL with the given number of active-low buttons on GPIO ids
// 0..buttons-1. Every button can raise an interrupt. The serial link is stdin/stdout.
func NewHost(buttons int) HAL {
	return newHostHAL(buttons)
}

func newHostHAL(buttons int) *hostHAL {
	pins := make([]*VirtualPin, 0, buttons)
	gpioPins := make([]GPIOPin, 0, buttons)
	for i := 0; i < buttons; i++ {
		p := NewVirtualPin(fmt.Sprintf("BTN%d", i+1), GPIOCapInput|GPIOCapPullUp|GPIOCapInterrupt)
		pins = append(pins, p)
		gpioPins = append(gpioPins, p)
	}
	return &hostHAL{
		logger:  &hostLogger{},
		buttons: pins,
		gpio:    NewGPIO(gpioPins),
		board:   NewMemPixels(hostBoardPixels),
		panel:   NewMemPixels(hostPanelPixels),
		serial:  newHostSerial(os.Stdin, os.Stdout),
		clock:   SystemClock(),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) GPIO() GPIO     { return h.gpio }
func (h *hostHAL) Board() Pixels  { return h.board }
func (h *hostHAL) Panel() Pixels  { return h.panel }
func (h *hostHAL) Serial() Serial { return h.serial }
func (h *hostHAL) Clock() Clock   { return h.clock }

// press drives button n (1-based) low while down is true.
func (h *hostHAL) press(n int, down bool) {
	if n < 1 || n > len(h.buttons) {
		return
	}
	h.buttons[n-1].Drive(!down)
}

// hostLogger sends firmware log lines to glog. stdout belongs to the serial link.
type hostLogger struct{}

func (l *hostLogger) WriteLineString(s string) {
	glog.InfoDepth(1, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	glog.InfoDepth(1, string(b))
}
