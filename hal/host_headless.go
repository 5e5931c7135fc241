//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	fcolor "github.com/fatih/color"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Hz is how often the board is checked for new frames.
	Hz int
	// Out receives the board dumps; nil means stderr.
	Out io.Writer
}

// RunHeadless runs the firmware without a window and prints each new board frame as
// colored blocks. Buttons cannot be pressed in this mode; it is meant for protocol runs.
func RunHeadless(ctx context.Context, sim SimConfig, cfg HeadlessConfig, run RunFunc) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 10
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	h := newHostHAL(sim.Buttons)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := startFirmware(ctx, h, run)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	frame := make([]color.RGBA, h.board.Len())
	var seen uint64
	for {
		select {
		case <-ctx.Done():
			return <-done
		case err := <-done:
			return err
		case <-t.C:
			n := h.board.Snapshot(frame)
			if n == seen {
				continue
			}
			seen = n
			fmt.Fprint(out, dumpBoard(sim, frame))
		}
	}
}

func dumpBoard(sim SimConfig, frame []color.RGBA) string {
	var b strings.Builder
	for y := sim.BoardHeight - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%d ", y+1)
		for x := 0; x < sim.BoardWidth; x++ {
			c := color.RGBA{}
			if sim.BoardIndex != nil {
				if i := sim.BoardIndex(x, y); i >= 0 && i < len(frame) {
					c = frame[i]
				}
			}
			b.WriteString(fcolor.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("  "))
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	for x := 0; x < sim.BoardWidth; x++ {
		b.WriteString(string(rune('a'+x)) + " ")
	}
	b.WriteByte('\n')
	return b.String()
}
