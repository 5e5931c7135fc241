package testrig

import (
	"time"

	"smartchess/hal"
)

// PressTime is how long Press holds a button down in virtual time.
const PressTime = 40 * time.Millisecond

// Step fires Do once When first returns true.
type Step struct {
	Name string
	When func() bool
	Do   func()
}

type release struct {
	pin *hal.VirtualPin
	at  time.Time
}

// Script runs steps from inside the device's own Sleep calls, so the firmware loop and
// the scripted operator interleave deterministically on one goroutine.
//
// A step only fires while no button is mid-press and PressTime has passed since the last
// release, which keeps two presses of the same button distinct.
type Script struct {
	clk      *Clock
	steps    []Step
	next     int
	releases []release
	quiet    time.Time
	deadline time.Time
	done     bool
	timedOut bool

	// OnDone runs once, after the last step or when the deadline passes.
	OnDone func()
}

// NewScript installs a script on clk. limit bounds the virtual run time.
func NewScript(clk *Clock, limit time.Duration) *Script {
	s := &Script{clk: clk, deadline: clk.Now().Add(limit)}
	clk.OnSleep = s.tick
	return s
}

// Then appends a step.
func (s *Script) Then(name string, when func() bool, do func()) *Script {
	s.steps = append(s.steps, Step{Name: name, When: when, Do: do})
	return s
}

// Press pushes a button and releases it PressTime later.
func (s *Script) Press(p *hal.VirtualPin) {
	p.Drive(false)
	s.releases = append(s.releases, release{pin: p, at: s.clk.Now().Add(PressTime)})
}

// Hold pushes a button without scheduling its release.
func (s *Script) Hold(p *hal.VirtualPin) { p.Drive(false) }

// Release lets a held button go.
func (s *Script) Release(p *hal.VirtualPin) { p.Drive(true) }

// Done reports whether every step ran.
func (s *Script) Done() bool { return s.done && !s.timedOut }

// TimedOut reports whether the deadline passed first.
func (s *Script) TimedOut() bool { return s.timedOut }

// Pending returns the name of the next step, or "".
func (s *Script) Pending() string {
	if s.next < len(s.steps) {
		return s.steps[s.next].Name
	}
	return ""
}

func (s *Script) tick(now time.Time) {
	if s.done {
		return
	}

	released := false
	kept := s.releases[:0]
	for _, r := range s.releases {
		if now.Before(r.at) {
			kept = append(kept, r)
			continue
		}
		r.pin.Drive(true)
		released = true
	}
	s.releases = kept
	if released {
		s.quiet = now.Add(PressTime)
	}

	if now.After(s.deadline) {
		s.timedOut = true
		s.finish()
		return
	}
	// The device samples the released level for a while before the next step.
	if len(s.releases) > 0 || now.Before(s.quiet) {
		return
	}
	if s.next < len(s.steps) {
		st := s.steps[s.next]
		if st.When == nil || st.When() {
			s.next++
			if st.Do != nil {
				st.Do()
			}
		}
	}
	if s.next == len(s.steps) && len(s.releases) == 0 {
		s.finish()
	}
}

func (s *Script) finish() {
	s.done = true
	if s.OnDone != nil {
		s.OnDone()
	}
}

// Always is a When that is immediately true.
func Always() bool { return true }
