package testrig

import (
	"testing"
	"time"
)

// pressCount samples pin 0 between pairs of sleeps, the way a loop with an animation
// frame between scans would, and counts presses.
func pressCount(t *testing.T, sc *Script, clk *Clock, read func() bool) int {
	t.Helper()
	presses := 0
	last := true
	for !sc.Done() && !sc.TimedOut() {
		level := read()
		if last && !level {
			presses++
		}
		last = level
		clk.Sleep(5 * time.Millisecond)
		clk.Sleep(5 * time.Millisecond)
	}
	if sc.TimedOut() {
		t.Fatalf("script timed out before step %q", sc.Pending())
	}
	return presses
}

func TestScriptRepeatedPressIsSeenTwice(t *testing.T) {
	clk := NewClock()
	pins, _ := Buttons(1)
	sc := NewScript(clk, time.Second)
	sc.Then("first", Always, func() { sc.Press(pins[0]) }).
		Then("second", Always, func() { sc.Press(pins[0]) })

	got := pressCount(t, sc, clk, func() bool {
		level, _ := pins[0].Read()
		return level
	})
	if got != 2 {
		t.Fatalf("presses=%d, want 2", got)
	}
}

func TestScriptWaitsAfterRelease(t *testing.T) {
	clk := NewClock()
	pins, _ := Buttons(1)
	sc := NewScript(clk, time.Second)
	var pressedAt, releasedAt, secondAt time.Time
	sc.Then("first", Always, func() {
		pressedAt = clk.Now()
		sc.Press(pins[0])
	}).Then("second", Always, func() {
		secondAt = clk.Now()
	})

	for !sc.Done() && !sc.TimedOut() {
		if level, _ := pins[0].Read(); level && releasedAt.IsZero() && !pressedAt.IsZero() {
			releasedAt = clk.Now()
		}
		clk.Sleep(5 * time.Millisecond)
	}
	if sc.TimedOut() {
		t.Fatalf("script timed out before step %q", sc.Pending())
	}
	if gap := secondAt.Sub(releasedAt); gap < PressTime {
		t.Fatalf("next step %v after release, want at least %v", gap, PressTime)
	}
}
