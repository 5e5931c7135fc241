//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// Number keys 1..9 and 0 hold buttons 1..10 down while pressed.
var buttonKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

type hostKeyboard struct {
	h    *hostHAL
	down []bool
}

func newHostKeyboard(h *hostHAL) *hostKeyboard {
	return &hostKeyboard{h: h, down: make([]bool, len(buttonKeys))}
}

// poll mirrors the key state onto the button pins. Driving a pin low can fire the hint
// interrupt from this goroutine, as a real ISR would preempt the firmware loop.
func (k *hostKeyboard) poll() {
	for i, key := range buttonKeys {
		if i >= len(k.h.buttons) {
			return
		}
		pressed := ebiten.IsKeyPressed(key)
		if pressed == k.down[i] {
			continue
		}
		k.down[i] = pressed
		k.h.press(i+1, pressed)
	}
}
