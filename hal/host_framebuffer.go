//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is the RGB565 canvas the simulator window presents.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) clear(c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lo, hi := pack565(c).bytes()
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) setPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	lo, hi := pack565(c).bytes()
	off := y*f.stride + x*2
	f.mu.Lock()
	f.buf[off] = lo
	f.buf[off+1] = hi
	f.mu.Unlock()
}

func (f *hostFramebuffer) fillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, f.width)
	y0 := clampInt(y, 0, f.height)
	x1 := clampInt(x+w, 0, f.width)
	y1 := clampInt(y+h, 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	lo, hi := pack565(c).bytes()

	f.mu.Lock()
	defer f.mu.Unlock()
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
