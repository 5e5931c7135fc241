//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// fbDisplay adapts the framebuffer to drivers.Displayer so tinyfont can draw on it.
type fbDisplay struct {
	fb *hostFramebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.setPixel(int(x), int(y), c)
}

func (d *fbDisplay) Display() error { return nil }

var simFont = &proggy.TinySZ8pt7b

const simLineHeight = 12

func (d *fbDisplay) writeLine(x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, simFont, x, y+simLineHeight-3, s, c)
}

func fitText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
