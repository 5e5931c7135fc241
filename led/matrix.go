// Package led draws on the two addressable-LED fixtures: the 8x8 board matrix and the
// status strip.
package led

import (
	"image/color"
	"time"

	"smartchess/hal"
)

const (
	sweepFrame      = 25 * time.Millisecond
	sweepHold       = 150 * time.Millisecond
	errorFlashDelay = 450 * time.Millisecond
)

// Matrix is a frame buffer for the board fixture. Drawing calls only touch the buffer;
// Flush pushes the whole frame to the LEDs in one write.
type Matrix struct {
	geo   Geometry
	px    hal.Pixels
	clock hal.Clock
	log   hal.Logger

	// buf is in chain order.
	buf []color.RGBA
}

// NewMatrix returns a matrix over px. The chain must be at least geo.Len() long.
func NewMatrix(geo Geometry, px hal.Pixels, clock hal.Clock, log hal.Logger) *Matrix {
	n := geo.Len()
	if px != nil && px.Len() > n {
		n = px.Len()
	}
	return &Matrix{
		geo:   geo,
		px:    px,
		clock: clock,
		log:   log,
		buf:   make([]color.RGBA, n),
	}
}

// Geometry returns the wiring description.
func (m *Matrix) Geometry() Geometry { return m.geo }

// Set colors one square. Out-of-range coordinates are ignored.
func (m *Matrix) Set(x, y int, c color.RGBA) {
	i := m.geo.Index(x, y)
	if i < 0 {
		return
	}
	m.buf[i] = c
}

// At returns the buffered color of a square.
func (m *Matrix) At(x, y int) color.RGBA {
	i := m.geo.Index(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	return m.buf[i]
}

// Clear fills the whole frame with c and flushes.
func (m *Matrix) Clear(c color.RGBA) {
	for i := range m.buf {
		m.buf[i] = c
	}
	m.Flush()
}

// Flush writes the frame. A failed write is logged and dropped.
func (m *Matrix) Flush() {
	if m.px == nil {
		return
	}
	if err := m.px.WriteColors(m.buf); err != nil && m.log != nil {
		m.log.WriteLineString("[led] board write: " + err.Error())
	}
}

func (m *Matrix) sleep(d time.Duration) {
	if m.clock != nil {
		m.clock.Sleep(d)
	}
}

// ShowMarkings draws the idle two-tone checkerboard.
func (m *Matrix) ShowMarkings() {
	for y := 0; y < m.geo.Height; y++ {
		for x := 0; x < m.geo.Width; x++ {
			c := IdleLight
			if (x+y)%2 == 0 {
				c = IdleDark
			}
			m.Set(x, y, c)
		}
	}
	m.Flush()
}

// OpeningSweep plays the startup wavefront along the anti-diagonals and ends on the
// idle markings.
func (m *Matrix) OpeningSweep() {
	m.Clear(Black)
	for k := 0; k < m.geo.Width+m.geo.Height-1; k++ {
		for y := 0; y < m.geo.Height; y++ {
			m.Set(k-y, y, Sweep)
		}
		m.Flush()
		m.sleep(sweepFrame)
	}
	m.sleep(sweepHold)
	m.ShowMarkings()
}

// LoadingProgress lights square number count, bottom row first and right to left
// within a row, and returns count+1. Once the board is full it returns count unchanged.
func (m *Matrix) LoadingProgress(count int) int {
	if count < 0 {
		count = 0
	}
	if count >= m.geo.Len() {
		return count
	}
	y := count / m.geo.Width
	x := m.geo.Width - 1 - count%m.geo.Width
	m.Set(x, y, Loading)
	m.Flush()
	return count + 1
}

// ErrorFlash alternates a blue field crossed by two red diagonals with the idle
// markings, times times.
func (m *Matrix) ErrorFlash(times int) {
	for n := 0; n < times; n++ {
		for i := range m.buf {
			m.buf[i] = ErrorBg
		}
		for i := 0; i < m.geo.Width; i++ {
			m.Set(i, m.geo.Height-1-i, Error)
			m.Set(i, i, Error)
		}
		m.Flush()
		m.sleep(errorFlashDelay)
		m.ShowMarkings()
		m.sleep(errorFlashDelay)
	}
	if times <= 0 {
		m.ShowMarkings()
	}
}

// LightMove colors the from and to squares of a move token such as "e2e4" or "e7e8q".
// Tokens shorter than four characters are ignored, as is either half that is not a
// square.
func (m *Matrix) LightMove(token string, mode Mode) {
	if len(token) < 4 {
		return
	}
	cf, ct := MovePair(mode)
	from, okFrom := ParseSquare(token[0:2])
	to, okTo := ParseSquare(token[2:4])
	if !okFrom && !okTo {
		return
	}
	if okFrom {
		m.Set(from.File, from.Rank, cf)
	}
	if okTo {
		m.Set(to.File, to.Rank, ct)
	}
	m.Flush()
}

// Snapshot copies the frame in chain order into dst, which is grown as needed.
func (m *Matrix) Snapshot(dst []color.RGBA) []color.RGBA {
	return append(dst[:0], m.buf...)
}
