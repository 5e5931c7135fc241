package input

import (
	"testing"
	"time"

	"smartchess/hal"
	"smartchess/internal/testrig"
)

func newTestScanner(t *testing.T, n int) (*Scanner, []*hal.VirtualPin, *testrig.Clock) {
	t.Helper()
	pins, gpio := testrig.Buttons(n)
	clk := testrig.NewClock()
	s, err := NewScanner(gpio, clk)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	return s, pins, clk
}

func TestScanIdle(t *testing.T) {
	s, _, _ := newTestScanner(t, 8)
	if id, ok := s.Scan(); ok {
		t.Fatalf("Scan() = %d, want none", id)
	}
}

func TestScanReportsEachPressOnceInOrder(t *testing.T) {
	s, pins, clk := newTestScanner(t, 8)

	order := []int{3, 1, 8, 5, 2}
	var got []ButtonID
	for _, n := range order {
		pins[n-1].Drive(false)
		id, ok := s.Scan()
		if !ok {
			t.Fatalf("Scan() after pressing %d: none", n)
		}
		got = append(got, id)
		if id, ok := s.Scan(); ok {
			t.Fatalf("held button %d reported again as %d", n, id)
		}
		pins[n-1].Drive(true)
		if id, ok := s.Scan(); ok {
			t.Fatalf("release of %d reported as %d", n, id)
		}
	}

	for i, n := range order {
		if got[i] != ButtonID(n) {
			t.Fatalf("press %d: got=%d, want %d", i, got[i], n)
		}
	}
	if want := time.Duration(len(order)) * DefaultSettle; clk.Slept() != want {
		t.Fatalf("settle time got=%v, want %v", clk.Slept(), want)
	}
}

func TestScanSimultaneousEdges(t *testing.T) {
	s, pins, _ := newTestScanner(t, 8)
	pins[5].Drive(false)
	pins[1].Drive(false)

	id, ok := s.Scan()
	if !ok || id != 2 {
		t.Fatalf("first Scan() = %d,%v, want 2,true", id, ok)
	}
	id, ok = s.Scan()
	if !ok || id != 6 {
		t.Fatalf("second Scan() = %d,%v, want 6,true", id, ok)
	}
	if id, ok := s.Scan(); ok {
		t.Fatalf("third Scan() = %d, want none", id)
	}
}

func TestResetSwallowsHeldPress(t *testing.T) {
	s, pins, _ := newTestScanner(t, 8)
	pins[6].Drive(false)
	s.Reset()
	if id, ok := s.Scan(); ok {
		t.Fatalf("Scan() after Reset = %d, want none", id)
	}
	pins[6].Drive(true)
	if id, ok := s.Scan(); ok {
		t.Fatalf("Scan() after release = %d, want none", id)
	}
	pins[6].Drive(false)
	if id, ok := s.Scan(); !ok || id != 7 {
		t.Fatalf("Scan() after re-press = %d,%v, want 7,true", id, ok)
	}
}

func TestPressed(t *testing.T) {
	s, pins, _ := newTestScanner(t, 8)
	if s.Pressed(7) {
		t.Fatalf("Pressed(7) = true while released")
	}
	pins[6].Drive(false)
	if !s.Pressed(7) {
		t.Fatalf("Pressed(7) = false while held")
	}
	for _, id := range []ButtonID{0, 9, -1} {
		if s.Pressed(id) {
			t.Fatalf("Pressed(%d) = true for unknown button", id)
		}
	}
}

func TestMissingPinReadsReleased(t *testing.T) {
	pins, gpio := testrig.Buttons(2)
	gpio = append(gpio, nil)
	s, err := NewScanner(gpio, nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	pins[0].Drive(false)
	if id, ok := s.Scan(); !ok || id != 1 {
		t.Fatalf("Scan() = %d,%v, want 1,true", id, ok)
	}
	if s.Pressed(3) {
		t.Fatalf("nil pin reported pressed")
	}
	if s.Count() != 3 {
		t.Fatalf("Count() got=%d, want 3", s.Count())
	}
}
