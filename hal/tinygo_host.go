//go:build tinygo && !baremetal

package hal

import "fmt"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	gpio   GPIO
	serial Serial
	clock  Clock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Buttons idle released and both fixtures discard frames.
func New() HAL {
	pins := make([]GPIOPin, 0, 8)
	for i := 0; i < 8; i++ {
		p := NewVirtualPin(fmt.Sprintf("BTN%d", i+1), GPIOCapInput|GPIOCapPullUp|GPIOCapInterrupt)
		pins = append(pins, p)
	}
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		gpio:   NewGPIO(pins),
		serial: nullSerial{},
		clock:  SystemClock(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger { return h.logger }
func (h *tinyGoHostHAL) GPIO() GPIO     { return h.gpio }
func (h *tinyGoHostHAL) Board() Pixels  { return nullPixels{n: 64} }
func (h *tinyGoHostHAL) Panel() Pixels  { return nullPixels{n: 22} }
func (h *tinyGoHostHAL) Serial() Serial { return h.serial }
func (h *tinyGoHostHAL) Clock() Clock   { return h.clock }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type nullSerial struct{}

func (nullSerial) Buffered() int { return 0 }

func (nullSerial) Read(p []byte) (int, error) {
	_ = p
	return 0, nil
}

func (nullSerial) Write(p []byte) (int, error) {
	return len(p), nil
}
