package led

import "image/color"

// Palette. Alpha is ignored by the LED backends.
var (
	Black  = color.RGBA{0, 0, 0, 255}
	White  = color.RGBA{255, 255, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Orange = color.RGBA{255, 130, 0, 255}

	IdleDark  = color.RGBA{80, 80, 80, 255}
	IdleLight = color.RGBA{160, 160, 160, 255}

	Sweep   = Green
	Loading = Blue
	Error   = Red
	ErrorBg = Blue
	Success = Green
)

// Mode selects the two-color palette used to light a move.
type Mode uint8

const (
	Human Mode = iota
	Engine
	Hint
)

// MovePair returns the from/to colors for a mode.
func MovePair(m Mode) (from, to color.RGBA) {
	switch m {
	case Human:
		return Yellow, White
	case Engine:
		return Orange, Green
	default:
		return Cyan, Blue
	}
}

func (m Mode) String() string {
	switch m {
	case Human:
		return "human"
	case Engine:
		return "engine"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}
