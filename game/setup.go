package game

import (
	"context"

	"smartchess/input"
	"smartchess/led"
	"smartchess/link"
)

// MapRange linearly maps x from [inMin, inMax] onto [outMin, outMax], truncating.
func MapRange(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Value prompts map buttons 1..8 onto their output range.
const (
	valueButtons = 8

	StrengthMin = 1
	StrengthMax = 20
	TimeMin     = 3000
	TimeMax     = 12000
)

// runIdle plays the startup animation and fills the board one square per second until
// the host asks for a game mode.
func (s *Session) runIdle(ctx context.Context) error {
	s.setPrompt(PromptNone)
	if !s.swept && !s.cfg.SkipSweep {
		s.board.OpeningSweep()
	}
	s.swept = true

	lit := 0
	next := s.clock.Now()
	for s.Phase() == PhaseIdle {
		s.pollInterrupt()
		if now := s.clock.Now(); !now.Before(next) {
			lit = s.board.LoadingProgress(lit)
			next = now.Add(loadingStep)
		}

		d, ok := s.link.Next()
		if !ok {
			if err := s.wait(ctx, idlePoll); err != nil {
				return err
			}
			continue
		}
		switch {
		case d.Kind == link.ChooseMode:
			for lit < s.board.Geometry().Len() {
				lit = s.board.LoadingProgress(lit)
				s.clock.Sleep(chooseFillStep)
			}
			s.strip.Fill(led.White, led.CoordStart, coordAndOK)
			s.enterSetup()
			return s.selectMode(ctx)
		case d.Kind == link.ResetBoard:
			s.hardReset()
			lit = 0
		case s.storeDefault(d):
		default:
			s.logf("idle: drop %s", d.Line())
		}
	}
	return nil
}

func (s *Session) enterSetup() {
	s.flags.InSetup = true
	s.setPhase(PhaseSetup)
}

// reenterSetup handles ChooseMode during a game.
func (s *Session) reenterSetup(ctx context.Context) error {
	s.flags.ShowingHint = false
	s.flags.HintHold = false
	s.flags.HintWaiting = false
	s.bridge.Clear()
	s.disarm()
	s.scan.Reset()

	s.strip.Hint(false, led.Black)
	s.board.ShowMarkings()
	s.strip.Fill(led.White, led.CoordStart, coordAndOK)
	s.enterSetup()
	return s.selectMode(ctx)
}

// runSetup services setup prompts until SetupComplete.
func (s *Session) runSetup(ctx context.Context) error {
	s.flags.InSetup = true
	for s.Phase() == PhaseSetup {
		s.setPrompt(PromptNone)
		s.pollInterrupt()
		d, ok := s.link.Next()
		if !ok {
			if err := s.wait(ctx, idlePoll); err != nil {
				return err
			}
			continue
		}

		var err error
		switch d.Kind {
		case link.EngineStrength:
			err = s.promptValue(ctx, PromptStrength, link.LabelStrength, s.defaults.Strength, StrengthMin, StrengthMax)
		case link.TimeControl:
			err = s.promptValue(ctx, PromptTime, link.LabelTime, s.defaults.MoveTime, TimeMin, TimeMax)
		case link.PlayerColor:
			err = s.selectColor(ctx)
		case link.SetupComplete:
			s.flags.InSetup = false
			s.setPhase(PhaseRunning)
			s.arm()
		case link.ChooseMode:
			err = s.selectMode(ctx)
		case link.ResetBoard:
			s.hardReset()
			s.flags.InSetup = true
		default:
			if !s.storeDefault(d) {
				s.logf("setup: drop %s", d.Line())
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// selectMode waits for 1/2/3 and reports PC, online or local play.
func (s *Session) selectMode(ctx context.Context) error {
	s.scan.Reset()
	s.setPrompt(PromptMode)
	defer s.setPrompt(PromptNone)

	b, ok, err := s.waitPress(ctx, func(b input.ButtonID) bool { return b >= 1 && b <= 3 })
	if err != nil || !ok {
		return err
	}
	switch b {
	case 1:
		s.link.Send(link.MsgModePC)
		for i := 0; i < 2; i++ {
			s.board.Set(0, 0, led.Success)
			s.board.Flush()
			s.clock.Sleep(modeBlink)
			s.board.Set(0, 0, led.Black)
			s.board.Flush()
			if i == 0 {
				s.clock.Sleep(modeBlink)
			}
		}
	case 2:
		s.link.Send(link.MsgModeOnline)
	case 3:
		s.link.Send(link.MsgModeLocal)
	}
	return nil
}

// promptValue previews the current default, waits for a button 1..8, previews and
// sends the mapped value.
func (s *Session) promptValue(ctx context.Context, p Prompt, label string, def, lo, hi int) error {
	s.scan.Reset()
	s.setPrompt(p)
	defer s.setPrompt(PromptNone)
	s.link.SendPreview(label, itoa(def))

	b, ok, err := s.waitPress(ctx, func(b input.ButtonID) bool { return b >= 1 && b <= valueButtons })
	if err != nil || !ok {
		return err
	}
	v := MapRange(int(b), 1, valueButtons, lo, hi)
	s.link.SendPreview(label, itoa(v))
	s.link.Send(itoa(v))
	return nil
}

// selectColor waits for 1 (white), 2 (black) or 3 (random).
func (s *Session) selectColor(ctx context.Context) error {
	s.scan.Reset()
	s.setPrompt(PromptColor)
	defer s.setPrompt(PromptNone)

	b, ok, err := s.waitPress(ctx, func(b input.ButtonID) bool { return b >= 1 && b <= 3 })
	if err != nil || !ok {
		return err
	}
	s.link.Send(link.ColorReply(int(b)))
	return nil
}
