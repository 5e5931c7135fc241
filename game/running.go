package game

import (
	"context"

	"smartchess/input"
	"smartchess/irq"
	"smartchess/led"
	"smartchess/link"
)

var promotionReplies = [...]string{
	1: link.MsgQueen,
	2: link.MsgRook,
	3: link.MsgBishop,
	4: link.MsgKnight,
}

// runRunning is the game loop: the interrupt is serviced before every host read.
func (s *Session) runRunning(ctx context.Context) error {
	for s.Phase() == PhaseRunning {
		s.setPrompt(PromptNone)
		if s.pollInterrupt() == irq.NewGame {
			continue
		}

		d, ok := s.link.Next()
		if !ok {
			if err := s.wait(ctx, idlePoll); err != nil {
				return err
			}
			continue
		}
		if err := s.dispatch(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, d link.Directive) error {
	switch d.Kind {
	case link.ResetBoard:
		s.hardReset()
	case link.ChooseMode:
		return s.reenterSetup(ctx)
	case link.GameStart:
		s.logf("game started")
	case link.OpponentMove:
		s.logf("opponent %s", d.Arg)
		s.board.LightMove(d.Arg, led.Engine)
		s.strip.Hint(true, led.White)
		s.clock.Sleep(opponentHold)
		s.board.ShowMarkings()
	case link.PromotionChoice:
		return s.selectPromotion(ctx)
	case link.HintMove:
		s.showHint(d.Arg)
	case link.Error:
		s.logf("host error %q", d.Arg)
		s.board.ErrorFlash(3)
		s.flags.HintHold = false
		s.flags.ShowingHint = false
		s.bridge.Clear()
		s.board.ShowMarkings()
		s.strip.Coord(true)
		return s.collectMove(ctx)
	case link.Turn:
		s.logf("%s to move", d.Arg)
		return s.collectMove(ctx)
	default:
		if !s.storeDefault(d) {
			s.logf("running: drop %s", d.Line())
		}
	}
	return nil
}

// showHint pins the suggested move on the board until the next coordinate press.
func (s *Session) showHint(uci string) {
	s.flags.ShowingHint = true
	s.flags.HintHold = true
	s.flags.HintWaiting = false
	s.board.LightMove(uci, led.Hint)
	s.link.SendPreview(link.LabelHint, "Hint: "+uci+" — enter move to continue")
	s.strip.Hint(true, led.Blue)
}

// selectPromotion waits for 1..4 and sends the piece. NewGame abandons it.
func (s *Session) selectPromotion(ctx context.Context) error {
	s.scan.Reset()
	s.setPrompt(PromptPromotion)
	defer s.setPrompt(PromptNone)

	b, ok, err := s.waitPress(ctx, func(b input.ButtonID) bool { return b >= 1 && b <= 4 })
	if err != nil || !ok {
		return err
	}
	s.link.Send(promotionReplies[b])
	return nil
}
