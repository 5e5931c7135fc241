// Package game is the board's game-flow state machine: idle handshake, setup prompts,
// and the running loop with move entry, promotion, hints and error recovery.
package game

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"smartchess/hal"
	"smartchess/input"
	"smartchess/irq"
	"smartchess/led"
	"smartchess/link"
)

const (
	idlePoll       = 10 * time.Millisecond
	inputPoll      = 5 * time.Millisecond
	loadingStep    = time.Second
	chooseFillStep = 15 * time.Millisecond
	newGameStep    = 25 * time.Millisecond
	newGamePause   = time.Second
	hintBlink      = 100 * time.Millisecond
	opponentHold   = 250 * time.Millisecond
	modeBlink      = 120 * time.Millisecond

	// coordAndOK covers the coordinate block and the OK pixel.
	coordAndOK = led.CoordWidth + 1
)

// Session owns every board component and the session state. All methods except Phase
// and Prompt must be called from the goroutine running Run.
type Session struct {
	cfg   Config
	log   hal.Logger
	clock hal.Clock

	scan   *input.Scanner
	board  *led.Matrix
	strip  *led.Strip
	bridge *irq.Bridge
	link   *link.Link
	entry  *MoveEntry

	phase    atomic.Uint32
	prompt   atomic.Uint32
	flags    Flags
	defaults Defaults
	swept    bool
}

// New wires a session to the hardware. Button n is GPIO pin n-1.
func New(cfg Config, h hal.HAL) (*Session, error) {
	if err := cfg.Layout.validate(); err != nil {
		return nil, err
	}
	gpio := h.GPIO()
	if gpio == nil || gpio.PinCount() < cfg.Layout.Buttons {
		return nil, fmt.Errorf("game: layout %s needs %d buttons", cfg.Layout.Name, cfg.Layout.Buttons)
	}
	pins := make([]hal.GPIOPin, cfg.Layout.Buttons)
	for i := range pins {
		pins[i] = gpio.Pin(i)
	}

	clock := h.Clock()
	if clock == nil {
		clock = hal.SystemClock()
	}
	log := h.Logger()

	scan, err := input.NewScanner(pins, clock)
	if err != nil {
		return nil, fmt.Errorf("game: buttons: %w", err)
	}
	ok := cfg.Layout.OK
	bridge := irq.New(scan.Pin(cfg.Layout.Hint), func() bool { return scan.Pressed(ok) })

	s := &Session{
		cfg:      cfg,
		log:      log,
		clock:    clock,
		scan:     scan,
		board:    led.NewMatrix(led.DefaultGeometry(), h.Board(), clock, log),
		strip:    led.NewStrip(h.Panel(), log),
		bridge:   bridge,
		link:     link.New(h.Serial(), log),
		defaults: cfg.Defaults,
	}
	s.link.Trace = cfg.Trace
	s.entry = &MoveEntry{s: s}
	return s, nil
}

// Phase returns the current phase. Safe from any goroutine.
func (s *Session) Phase() Phase { return Phase(s.phase.Load()) }

// Prompt returns the input currently awaited. Safe from any goroutine.
func (s *Session) Prompt() Prompt { return Prompt(s.prompt.Load()) }

// Flags returns a copy of the input flags.
func (s *Session) Flags() Flags { return s.flags }

// Defaults returns the current default values.
func (s *Session) Defaults() Defaults { return s.defaults }

// InterruptPending reports whether a Hint edge is waiting to be serviced.
func (s *Session) InterruptPending() bool { return s.bridge.Pending() }

// InterruptArmed reports whether the Hint interrupt is armed.
func (s *Session) InterruptArmed() bool { return s.bridge.Armed() }

// Board returns the board matrix.
func (s *Session) Board() *led.Matrix { return s.board }

// Strip returns the status strip.
func (s *Session) Strip() *led.Strip { return s.strip }

// OKHeld samples the OK button.
func (s *Session) OKHeld() bool { return s.scan.Pressed(s.cfg.Layout.OK) }

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString("[session] " + fmt.Sprintf(format, args...))
	}
}

func (s *Session) setPhase(p Phase) {
	if old := Phase(s.phase.Swap(uint32(p))); old != p {
		s.logf("phase %s -> %s", old, p)
	}
}

func (s *Session) setPrompt(p Prompt) {
	if old := Prompt(s.prompt.Swap(uint32(p))); old != p && p != PromptNone {
		s.logf("waiting for %s", p)
	}
}

// wait sleeps d and reports context cancellation.
func (s *Session) wait(ctx context.Context, d time.Duration) error {
	s.clock.Sleep(d)
	return ctx.Err()
}

// Run drives the state machine until ctx is done. Firmware contexts are never
// cancelled, so on hardware Run does not return.
func (s *Session) Run(ctx context.Context) error {
	s.logf("start, layout %s", s.cfg.Layout.Name)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch s.Phase() {
		case PhaseIdle:
			err = s.runIdle(ctx)
		case PhaseSetup:
			err = s.runSetup(ctx)
		case PhaseRunning:
			err = s.runRunning(ctx)
		}
		if err != nil {
			s.setPrompt(PromptNone)
			return err
		}
	}
}

// pollInterrupt services a pending Hint edge and performs its side effects.
func (s *Session) pollInterrupt() irq.Result {
	r := s.bridge.Process(s.Phase() == PhaseRunning, s.flags.InSetup)
	switch r {
	case irq.NewGame:
		s.newGame()
	case irq.Hint:
		s.requestHint()
	}
	return r
}

// newGame runs the abort-to-menu sequence. The host answers "n" with ChooseMode.
func (s *Session) newGame() {
	s.logf("new game requested")
	s.strip.Hint(false, led.Black)
	s.strip.Fill(led.White, led.CoordStart, coordAndOK)
	s.link.Send(link.MsgNewGame)

	for n := 0; n < s.board.Geometry().Len(); {
		n = s.board.LoadingProgress(n)
		s.clock.Sleep(newGameStep)
	}
	s.clock.Sleep(newGamePause)

	s.disarm()
	s.bridge.Clear()
	s.flags = Flags{}
	s.scan.Reset()
	s.strip.Coord(false)
	s.strip.Hint(false, led.Black)
	s.board.ShowMarkings()
	s.setPrompt(PromptNone)
}

func (s *Session) requestHint() {
	s.logf("hint requested")
	s.link.SendPreview(link.LabelHint, "Hint requested… thinking")
	s.strip.Hint(true, led.Blue)
	s.clock.Sleep(hintBlink)
	s.strip.Hint(true, led.White)
	s.link.Send(link.MsgHint)
	s.flags.HintWaiting = true
}

// hardReset clears every transient flag and redraws the idle board. The phase is kept.
func (s *Session) hardReset() {
	s.logf("hard reset")
	s.flags = Flags{}
	s.bridge.Clear()
	s.disarm()
	s.scan.Reset()
	s.strip.Fill(led.Black, 0, -1)
	s.board.Clear(led.Black)
	s.board.ShowMarkings()
}

func (s *Session) arm() {
	if err := s.bridge.Enable(); err != nil {
		s.logf("%v", err)
	}
}

func (s *Session) disarm() {
	if err := s.bridge.Disable(); err != nil {
		s.logf("%v", err)
	}
}

// storeDefault handles the default_* directives, which are accepted in every phase.
func (s *Session) storeDefault(d link.Directive) bool {
	switch d.Kind {
	case link.DefaultStrength:
		v := d.Value
		if v < 0 {
			v = 0
		}
		if v > 20 {
			v = 20
		}
		s.defaults.Strength = v
		s.logf("default strength %d", v)
		return true
	case link.DefaultTime:
		if d.Value < 0 {
			return true
		}
		s.defaults.MoveTime = d.Value
		s.logf("default move time %d", d.Value)
		return true
	}
	return false
}

// waitPress blocks until accept returns true for a pressed button. It polls the
// interrupt first on every iteration and gives up on NewGame or ctx cancellation.
func (s *Session) waitPress(ctx context.Context, accept func(input.ButtonID) bool) (input.ButtonID, bool, error) {
	for {
		if s.pollInterrupt() == irq.NewGame {
			return 0, false, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		b, ok := s.scan.Scan()
		if !ok {
			if err := s.wait(ctx, inputPoll); err != nil {
				return 0, false, err
			}
			continue
		}
		if accept(b) {
			return b, true, nil
		}
	}
}

func itoa(v int) string { return strconv.Itoa(v) }
