//go:build !tinygo

package hal

import (
	"context"
	"image/color"
)

// SimConfig describes the simulated board for the window and headless runners.
type SimConfig struct {
	Title   string
	Buttons int

	BoardWidth  int
	BoardHeight int
	// BoardIndex maps a board square (x right, y up) to its position on the LED chain.
	BoardIndex func(x, y int) int

	// Legend is drawn under the status strip, one entry per line.
	Legend []string
}

// RunFunc is the firmware body. It must return when ctx is done.
type RunFunc func(ctx context.Context, h HAL) error

const (
	simSquarePx = 32
	simStripPx  = 11
	simGap      = 8
	simTxLines  = 4
)

var (
	simBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	simText       = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	simDim        = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

type simScene struct {
	h     *hostHAL
	cfg   SimConfig
	fb    *hostFramebuffer
	disp  *fbDisplay
	board []color.RGBA
	panel []color.RGBA
}

func newSimScene(h *hostHAL, cfg SimConfig) *simScene {
	if cfg.BoardWidth <= 0 {
		cfg.BoardWidth = 8
	}
	if cfg.BoardHeight <= 0 {
		cfg.BoardHeight = 8
	}
	w := cfg.BoardWidth * simSquarePx
	if pw := h.panel.Len() * simStripPx; pw > w {
		w = pw
	}
	hgt := cfg.BoardHeight*simSquarePx + simGap + simStripPx + simGap +
		(len(cfg.Legend)+simTxLines)*simLineHeight
	fb := newHostFramebuffer(w, hgt)
	return &simScene{
		h:     h,
		cfg:   cfg,
		fb:    fb,
		disp:  &fbDisplay{fb: fb},
		board: make([]color.RGBA, h.board.Len()),
		panel: make([]color.RGBA, h.panel.Len()),
	}
}

func (s *simScene) render() {
	s.h.board.Snapshot(s.board)
	s.h.panel.Snapshot(s.panel)
	s.fb.clear(simBackground)

	bw, bh := s.cfg.BoardWidth, s.cfg.BoardHeight
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			c := simBackground
			if s.cfg.BoardIndex != nil {
				if i := s.cfg.BoardIndex(x, y); i >= 0 && i < len(s.board) {
					c = s.board[i]
				}
			}
			// Rank 1 is at the bottom of the window.
			sx := x * simSquarePx
			sy := (bh - 1 - y) * simSquarePx
			s.fb.fillRect(sx+1, sy+1, simSquarePx-2, simSquarePx-2, c)
		}
	}

	top := bh*simSquarePx + simGap
	for i, c := range s.panel {
		s.fb.fillRect(i*simStripPx+1, top, simStripPx-2, simStripPx, c)
	}

	y := int16(top + simStripPx + simGap)
	cols := s.fb.width / 6
	for _, line := range s.cfg.Legend {
		s.disp.writeLine(2, y, fitText(line, cols), simDim)
		y += simLineHeight
	}
	for _, line := range s.h.serial.recentLines() {
		s.disp.writeLine(2, y, fitText("> "+line, cols), simText)
		y += simLineHeight
	}
}

func startFirmware(ctx context.Context, h HAL, run RunFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, h)
	}()
	return done
}
