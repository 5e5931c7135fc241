package hal

import (
	"errors"
	"image/color"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoInterrupt    = errors.New("interrupt unsupported")
)

// Pixels is a chain of addressable LEDs written as one frame.
//
// WriteColors pushes len(buf) colors in physical chain order. Implementations must not
// retain buf after returning.
type Pixels interface {
	Len() int
	WriteColors(buf []color.RGBA) error
}

// Serial is a byte stream with a receive buffer, like a UART.
//
// Read never blocks: it returns 0, nil when nothing is buffered.
type Serial interface {
	Buffered() int
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Clock provides the time base for polling loops.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	GPIO() GPIO
	Board() Pixels
	Panel() Pixels
	Serial() Serial
	Clock() Clock
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

type nullPixels struct{ n int }

func (p nullPixels) Len() int { return p.n }

func (p nullPixels) WriteColors(buf []color.RGBA) error {
	_ = buf
	return nil
}
