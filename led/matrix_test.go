package led

import (
	"errors"
	"image/color"
	"testing"

	"smartchess/hal"
	"smartchess/internal/testrig"
)

func newTestMatrix() (*Matrix, *hal.MemPixels, *testrig.Clock, *testrig.Logger) {
	px := hal.NewMemPixels(64)
	clk := testrig.NewClock()
	log := &testrig.Logger{}
	return NewMatrix(DefaultGeometry(), px, clk, log), px, clk, log
}

func countNot(m *Matrix, c color.RGBA) int {
	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m.At(x, y) != c {
				n++
			}
		}
	}
	return n
}

func TestLightMoveHuman(t *testing.T) {
	m, px, _, _ := newTestMatrix()
	m.Clear(Black)

	m.LightMove("e2e4", Human)

	if got := m.At(4, 1); got != Yellow {
		t.Fatalf("e2 got=%v, want %v", got, Yellow)
	}
	if got := m.At(4, 3); got != White {
		t.Fatalf("e4 got=%v, want %v", got, White)
	}
	if n := countNot(m, Black); n != 2 {
		t.Fatalf("lit squares got=%d, want 2", n)
	}

	frame := make([]color.RGBA, 64)
	px.Snapshot(frame)
	if got := frame[DefaultGeometry().Index(4, 1)]; got != Yellow {
		t.Fatalf("hardware e2 got=%v, want %v", got, Yellow)
	}
}

func TestLightMovePalettes(t *testing.T) {
	for _, mode := range []Mode{Human, Engine, Hint} {
		m, _, _, _ := newTestMatrix()
		m.Clear(Black)
		m.LightMove("g1f3", mode)
		from, to := MovePair(mode)
		if m.At(6, 0) != from || m.At(5, 2) != to {
			t.Fatalf("%v: got=%v/%v, want %v/%v", mode, m.At(6, 0), m.At(5, 2), from, to)
		}
	}
}

func TestLightMoveMalformed(t *testing.T) {
	for _, tok := range []string{"", "xx", "e2", "zzzz", "e2e"} {
		m, px, _, _ := newTestMatrix()
		m.Clear(Black)
		frames := px.Frames()

		m.LightMove(tok, Human)

		if n := countNot(m, Black); n != 0 {
			t.Fatalf("LightMove(%q) lit %d squares, want 0", tok, n)
		}
		if px.Frames() != frames {
			t.Fatalf("LightMove(%q) wrote a frame", tok)
		}
	}
}

func TestLightMoveHalfValid(t *testing.T) {
	m, _, _, _ := newTestMatrix()
	m.Clear(Black)
	m.LightMove("e2z9", Engine)
	if m.At(4, 1) != Orange {
		t.Fatalf("e2 got=%v, want %v", m.At(4, 1), Orange)
	}
	if n := countNot(m, Black); n != 1 {
		t.Fatalf("lit squares got=%d, want 1", n)
	}
}

func TestLoadingProgress(t *testing.T) {
	m, _, _, _ := newTestMatrix()
	m.Clear(Black)

	n := 0
	for i := 0; i < 70; i++ {
		n = m.LoadingProgress(n)
	}
	if n != 64 {
		t.Fatalf("count got=%d, want 64", n)
	}
	if countNot(m, Loading) != 0 {
		t.Fatalf("board not fully loaded")
	}

	m.Clear(Black)
	if got := m.LoadingProgress(0); got != 1 {
		t.Fatalf("LoadingProgress(0) got=%d, want 1", got)
	}
	if m.At(7, 0) != Loading {
		t.Fatalf("first loading square is not h1")
	}
	m.LoadingProgress(8)
	if m.At(7, 1) != Loading {
		t.Fatalf("ninth loading square is not h2")
	}
}

func TestShowMarkings(t *testing.T) {
	m, _, _, _ := newTestMatrix()
	m.ShowMarkings()
	if m.At(0, 0) != IdleDark || m.At(1, 0) != IdleLight || m.At(7, 7) != IdleDark {
		t.Fatalf("checkerboard wrong: a1=%v b1=%v h8=%v", m.At(0, 0), m.At(1, 0), m.At(7, 7))
	}
}

func TestOpeningSweepEndsOnMarkings(t *testing.T) {
	m, _, clk, _ := newTestMatrix()
	m.OpeningSweep()
	if m.At(0, 0) != IdleDark || m.At(1, 0) != IdleLight {
		t.Fatalf("sweep did not end on markings")
	}
	if want := 15*sweepFrame + sweepHold; clk.Slept() != want {
		t.Fatalf("sweep duration got=%v, want %v", clk.Slept(), want)
	}
}

func TestErrorFlash(t *testing.T) {
	m, px, clk, _ := newTestMatrix()
	m.ShowMarkings()
	before := px.Frames()

	m.ErrorFlash(3)

	if got := px.Frames() - before; got != 6 {
		t.Fatalf("frames got=%d, want 6", got)
	}
	if clk.Slept() != 6*errorFlashDelay {
		t.Fatalf("duration got=%v, want %v", clk.Slept(), 6*errorFlashDelay)
	}
	if m.At(0, 0) != IdleDark {
		t.Fatalf("flash did not end on markings")
	}
}

func TestFlushFailureIsLogged(t *testing.T) {
	m, px, _, log := newTestMatrix()
	px.FailWith(errors.New("bus stuck"))
	m.ShowMarkings()
	lines := log.Lines()
	if len(lines) != 1 {
		t.Fatalf("log lines got=%d, want 1", len(lines))
	}
}

func TestSetClipped(t *testing.T) {
	m, _, _, _ := newTestMatrix()
	m.Clear(Black)
	m.Set(8, 0, Red)
	m.Set(-1, 3, Red)
	if countNot(m, Black) != 0 {
		t.Fatalf("out-of-range Set changed the board")
	}
}
