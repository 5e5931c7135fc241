package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartchess/link"
)

func reply(t *testing.T, body string) link.Reply {
	r, ok := link.ParseReply(link.DevicePrefix + body)
	require.True(t, ok)
	return r
}

func playing(t *testing.T, mode string) *Host {
	h := NewHost()
	require.Equal(t, []string{"ChooseMode"}, h.Start())
	switch mode {
	case "local":
		require.Equal(t, []string{"SetupComplete", "GameStart", "turn_white"}, h.Handle(reply(t, link.MsgModeLocal)))
	default:
		h.Handle(reply(t, link.MsgModePC))
		h.Handle(reply(t, "12"))
		h.Handle(reply(t, "5000"))
		require.Equal(t, []string{"SetupComplete", "GameStart", "turn_white"}, h.Handle(reply(t, link.ColorReply(1))))
	}
	return h
}

func TestPCSetup(t *testing.T) {
	h := NewHost()
	require.Equal(t, []string{"ChooseMode"}, h.Start())

	assert.Equal(t, []string{"default_strength_5", "EngineStrength"}, h.Handle(reply(t, link.MsgModePC)))
	assert.Equal(t, []string{"default_time_2000", "TimeControl"}, h.Handle(reply(t, "12")))
	assert.Equal(t, []string{"PlayerColor"}, h.Handle(reply(t, "5000")))
	assert.Equal(t, []string{"SetupComplete", "GameStart", "turn_white"}, h.Handle(reply(t, link.ColorReply(1))))

	assert.Equal(t, "pc", h.Mode)
	assert.Equal(t, 12, h.Strength)
	assert.Equal(t, 5000, h.MoveTime)
	assert.True(t, h.HumanWhite)
}

func TestEngineOpensWhenHumanIsBlack(t *testing.T) {
	h := NewHost()
	h.Start()
	h.Handle(reply(t, link.MsgModePC))
	h.Handle(reply(t, "5"))
	h.Handle(reply(t, "2000"))
	out := h.Handle(reply(t, link.ColorReply(2)))
	assert.Equal(t, []string{"SetupComplete", "GameStart", "ma2a3", "turn_black"}, out)
	assert.False(t, h.HumanWhite)
}

func TestRepliesOutOfStageIgnored(t *testing.T) {
	h := NewHost()
	assert.Nil(t, h.Handle(reply(t, link.MsgModePC)))
	assert.Nil(t, h.Handle(reply(t, "7")))
	assert.Nil(t, h.Handle(reply(t, link.ColorReply(1))))
	assert.Nil(t, h.Handle(reply(t, "e2e4")))
	assert.Nil(t, h.Handle(reply(t, link.MsgHint)))
	assert.Nil(t, h.Handle(reply(t, link.MsgQueen)))
}

func TestOnlineModeRejected(t *testing.T) {
	h := NewHost()
	h.Start()
	assert.Equal(t, []string{"error_online_unimplemented", "ChooseMode"}, h.Handle(reply(t, link.MsgModeOnline)))
	// Still waiting for a mode.
	assert.Equal(t, []string{"SetupComplete", "GameStart", "turn_white"}, h.Handle(reply(t, link.MsgModeLocal)))
}

func TestMoveAndEngineReply(t *testing.T) {
	h := playing(t, "pc")
	assert.Equal(t, []string{"ma7a5", "turn_white"}, h.Handle(reply(t, "e2e4")))
	assert.Equal(t, chess.White, h.Game.Position().Turn())
	assert.Len(t, h.Game.Moves(), 2)
}

func TestIllegalMove(t *testing.T) {
	h := playing(t, "pc")
	assert.Equal(t, []string{"error_illegal_e2e5"}, h.Handle(reply(t, "e2e5")))
	assert.Empty(t, h.Game.Moves())
}

func TestLocalModeAlternatesTurns(t *testing.T) {
	h := playing(t, "local")
	assert.Equal(t, []string{"turn_black"}, h.Handle(reply(t, "e2e4")))
	assert.Equal(t, []string{"turn_white"}, h.Handle(reply(t, "e7e5")))
}

func TestPromotion(t *testing.T) {
	h := playing(t, "local")
	fen, err := chess.FEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	h.Game = chess.NewGame(fen, chess.UseNotation(chess.UCINotation{}))

	assert.Equal(t, []string{"promotion_choice_needed"}, h.Handle(reply(t, "a7a8")))
	assert.Nil(t, h.Handle(reply(t, "e1e2")), "moves wait for the piece choice")
	assert.Equal(t, []string{"turn_black"}, h.Handle(reply(t, link.MsgQueen)))

	moves := h.Game.Moves()
	require.Len(t, moves, 1)
	assert.Equal(t, "a7a8q", moves[0].String())
}

func TestHint(t *testing.T) {
	h := playing(t, "pc")
	assert.Equal(t, []string{"hint_a2a3"}, h.Handle(reply(t, link.MsgHint)))
	assert.Empty(t, h.Game.Moves(), "a hint does not play")
}

func TestHintPrefersCaptures(t *testing.T) {
	h := playing(t, "local")
	h.Handle(reply(t, "e2e4"))
	h.Handle(reply(t, "d7d5"))
	assert.Equal(t, []string{"hint_e4d5"}, h.Handle(reply(t, link.MsgHint)))
}

func TestNewGameRestartsSetup(t *testing.T) {
	h := playing(t, "pc")
	h.Handle(reply(t, "e2e4"))
	assert.Equal(t, []string{"ChooseMode"}, h.Handle(reply(t, link.MsgNewGame)))
	assert.Nil(t, h.Handle(reply(t, "d2d4")))
}

func TestPreviewNotes(t *testing.T) {
	h := NewHost()
	var notes []string
	h.Note = func(kind, text string) { notes = append(notes, kind+" "+text) }
	assert.Nil(t, h.Handle(reply(t, "typing_from_e2")))
	assert.Equal(t, []string{"typing from: e2"}, notes)
}

func TestBenchAnswersBoard(t *testing.T) {
	var w bytes.Buffer
	var shown []string
	b := &bench{host: NewHost(), w: &w, auto: true, out: func(s string) { shown = append(shown, s) }}
	b.host.Start()

	in := strings.NewReader("boot noise\nheypibtn_mode_local\n\nheypie2e4\n")
	require.NoError(t, b.readLoop(in))

	assert.Equal(t,
		"heyArduinoSetupComplete\nheyArduinoGameStart\nheyArduinoturn_white\nheyArduinoturn_black\n",
		w.String())
	assert.Equal(t, "boot noise", shown[0])
}

func TestBenchManual(t *testing.T) {
	var w bytes.Buffer
	b := &bench{host: NewHost(), w: &w, out: func(string) {}}
	b.host.Start()
	b.receive("heypibtn_mode_local")
	assert.Empty(t, w.String())
}
