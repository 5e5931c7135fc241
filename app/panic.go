package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"smartchess/hal"
	"smartchess/led"
)

// recoverPanic turns a panic into an error after logging it and painting both fixtures.
// Must be deferred directly.
func recoverPanic(h hal.HAL, err *error) {
	v := recover()
	if v == nil {
		return
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("smartchess panic: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	paint(h.Board(), led.Red)
	paint(h.Panel(), led.Red)

	*err = fmt.Errorf("app: panic: %v", v)
}

func paint(px hal.Pixels, c color.RGBA) {
	if px == nil || px.Len() == 0 {
		return
	}
	buf := make([]color.RGBA, px.Len())
	for i := range buf {
		buf[i] = c
	}
	_ = px.WriteColors(buf)
}
