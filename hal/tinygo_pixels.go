//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// ws2812Pixels drives a NeoPixel chain. WriteColors bit-bangs the whole frame with
// interrupts masked, so callers batch writes.
type ws2812Pixels struct {
	dev ws2812.Device
	n   int
}

func newWS2812Pixels(pin machine.Pin, n int) *ws2812Pixels {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ws2812Pixels{dev: ws2812.New(pin), n: n}
}

func (p *ws2812Pixels) Len() int { return p.n }

func (p *ws2812Pixels) WriteColors(buf []color.RGBA) error {
	if len(buf) > p.n {
		buf = buf[:p.n]
	}
	return p.dev.WriteColors(buf)
}
