package game

import (
	"context"

	"smartchess/input"
	"smartchess/irq"
	"smartchess/led"
	"smartchess/link"
)

// EntryState is the step of move entry.
type EntryState uint8

const (
	AwaitFromFile EntryState = iota
	AwaitFromRank
	AwaitToFile
	AwaitToRank
	Confirm
)

var entryPrompts = [...]Prompt{
	AwaitFromFile: PromptFromFile,
	AwaitFromRank: PromptFromRank,
	AwaitToFile:   PromptToFile,
	AwaitToRank:   PromptToRank,
	Confirm:       PromptConfirm,
}

// EntryResult ends one move entry attempt.
type EntryResult uint8

const (
	Accepted EntryResult = iota
	Redo
	Aborted
)

func (r EntryResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Redo:
		return "redo"
	default:
		return "aborted"
	}
}

// MoveEntry collects FROM and TO squares from the coordinate buttons and waits for OK.
type MoveEntry struct {
	s     *Session
	state EntryState
	move  [4]byte
}

// State returns the current step.
func (e *MoveEntry) State() EntryState { return e.state }

func (e *MoveEntry) enter(st EntryState) {
	e.state = st
	e.s.setPrompt(entryPrompts[st])
}

// Attempt runs one entry from AwaitFromFile to a result. The token is set only for
// Accepted.
func (e *MoveEntry) Attempt(ctx context.Context) (EntryResult, string) {
	s := e.s
	defer func() {
		s.flags.ConfirmMode = false
		s.setPrompt(PromptNone)
	}()

	lay := s.cfg.Layout
	s.strip.Coord(true)
	s.strip.OK(false)
	s.strip.Hint(false, led.Black)
	s.scan.Reset()
	e.enter(AwaitFromFile)

	for {
		if s.pollInterrupt() == irq.NewGame {
			return Aborted, ""
		}
		if ctx.Err() != nil {
			return Aborted, ""
		}
		e.pollHintReply()

		b, ok := s.scan.Scan()
		if !ok {
			if s.wait(ctx, inputPoll) != nil {
				return Aborted, ""
			}
			continue
		}

		if e.state == Confirm {
			switch {
			case b == lay.Hint:
				// Arrives through the interrupt.
			case b == lay.OK:
				s.strip.OK(false)
				return Accepted, string(e.move[:])
			default:
				s.strip.OK(false)
				s.board.ShowMarkings()
				return Redo, ""
			}
			continue
		}

		if !lay.IsCoord(b) {
			continue
		}
		if s.flags.ShowingHint {
			s.dismissHint()
		}
		e.digit(b)
	}
}

// digit records one coordinate press, echoes it and advances.
func (e *MoveEntry) digit(b input.ButtonID) {
	s := e.s
	lay := s.cfg.Layout
	switch e.state {
	case AwaitFromFile:
		e.move[0] = lay.File(b)
		s.link.SendPreview(link.LabelFrom, string(e.move[:1]))
		e.enter(AwaitFromRank)
	case AwaitFromRank:
		e.move[1] = lay.Rank(b)
		s.link.SendPreview(link.LabelFrom, string(e.move[:2]))
		s.strip.Coord(true)
		s.strip.OK(false)
		s.scan.Reset()
		e.enter(AwaitToFile)
	case AwaitToFile:
		e.move[2] = lay.File(b)
		s.link.SendPreview(link.LabelTo, string(e.move[:2])+" → "+string(e.move[2:3]))
		e.enter(AwaitToRank)
	case AwaitToRank:
		e.move[3] = lay.Rank(b)
		s.link.SendPreview(link.LabelTo, string(e.move[:2])+" → "+string(e.move[2:4]))
		s.board.LightMove(string(e.move[:]), led.Human)
		s.flags.ConfirmMode = true
		s.strip.Coord(false)
		s.strip.OK(true)
		s.scan.Reset()
		e.enter(Confirm)
	}
}

// pollHintReply shows a hint that arrives while a move is being entered. Directives
// queued ahead of it are deferred, in order, for the running loop.
func (e *MoveEntry) pollHintReply() {
	s := e.s
	if !s.flags.HintWaiting {
		return
	}
	for !s.link.DeferFull() {
		body, ok := s.link.ReceiveFresh()
		if !ok {
			return
		}
		d := link.ParseDirective(body)
		if d.Kind != link.HintMove {
			s.link.Defer(body)
			continue
		}
		s.showHint(d.Arg)
		if e.state == Confirm {
			// Keep the pending move visible over the hint.
			s.board.LightMove(string(e.move[:]), led.Human)
		}
		return
	}
}

// dismissHint clears a displayed hint on the first coordinate press.
func (s *Session) dismissHint() {
	s.flags.ShowingHint = false
	s.flags.HintHold = false
	s.board.ShowMarkings()
	s.strip.Coord(true)
}

// collectMove runs entry attempts until a move is accepted or entry is aborted.
func (s *Session) collectMove(ctx context.Context) error {
	s.flags.InInput = true
	defer func() { s.flags.InInput = false }()

	for {
		res, tok := s.entry.Attempt(ctx)
		switch res {
		case Accepted:
			s.strip.Coord(false)
			s.link.Send(tok)
			s.logf("move %s", tok)
			return nil
		case Redo:
			s.logf("move entry restarted")
			continue
		default:
			return ctx.Err()
		}
	}
}
