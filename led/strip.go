package led

import (
	"image/color"

	"smartchess/hal"
)

// Status strip zones.
const (
	CoordStart = 0
	CoordWidth = 4
	OKPixel    = 4
	HintPixel  = 5
)

// Strip drives the status fixture. Every call flushes.
type Strip struct {
	px  hal.Pixels
	log hal.Logger
	buf []color.RGBA
}

// NewStrip returns a strip over px, initially black in the buffer.
func NewStrip(px hal.Pixels, log hal.Logger) *Strip {
	n := 0
	if px != nil {
		n = px.Len()
	}
	return &Strip{px: px, log: log, buf: make([]color.RGBA, n)}
}

// Len returns the number of pixels.
func (s *Strip) Len() int { return len(s.buf) }

// At returns the buffered color of pixel i.
func (s *Strip) At(i int) color.RGBA {
	if i < 0 || i >= len(s.buf) {
		return color.RGBA{}
	}
	return s.buf[i]
}

// Set colors one pixel. Out-of-range indexes are ignored.
func (s *Strip) Set(i int, c color.RGBA) {
	if i < 0 || i >= len(s.buf) {
		return
	}
	s.buf[i] = c
	s.flush()
}

// Fill colors count pixels from start. A negative count runs to the end.
func (s *Strip) Fill(c color.RGBA, start, count int) {
	if start < 0 {
		start = 0
	}
	end := len(s.buf)
	if count >= 0 && start+count < end {
		end = start + count
	}
	for i := start; i < end; i++ {
		s.buf[i] = c
	}
	s.flush()
}

// Coord toggles the coordinate indicator block.
func (s *Strip) Coord(on bool) {
	s.Fill(onOff(on, White), CoordStart, CoordWidth)
}

// OK toggles the OK indicator.
func (s *Strip) OK(on bool) {
	s.Set(OKPixel, onOff(on, White))
}

// Hint sets the hint indicator to c, or off.
func (s *Strip) Hint(on bool, c color.RGBA) {
	s.Set(HintPixel, onOff(on, c))
}

func (s *Strip) flush() {
	if s.px == nil {
		return
	}
	if err := s.px.WriteColors(s.buf); err != nil && s.log != nil {
		s.log.WriteLineString("[led] strip write: " + err.Error())
	}
}

func onOff(on bool, c color.RGBA) color.RGBA {
	if on {
		return c
	}
	return Black
}
