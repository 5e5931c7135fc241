//go:build !tinygo

package hal

import "image/color"

// rgb565 is one simulator framebuffer pixel, stored little-endian.
type rgb565 uint16

func pack565(c color.RGBA) rgb565 {
	return rgb565(c.R>>3)<<11 | rgb565(c.G>>2)<<5 | rgb565(c.B>>3)
}

func (p rgb565) bytes() (lo, hi byte) { return byte(p), byte(p >> 8) }

// expand scales each channel back to 8 bits.
func (p rgb565) expand() (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}
