package main

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/notnil/chess"

	"smartchess/link"
)

type stage uint8

const (
	stageIdle stage = iota
	stageMode
	stageStrength
	stageTime
	stageColor
	stagePlaying
	stagePromotion
)

// Host plays the host side of the board protocol: it runs setup, checks move legality
// and answers with a simple deterministic engine.
type Host struct {
	Game       *chess.Game
	Mode       string
	HumanWhite bool
	Strength   int
	MoveTime   int

	stage   stage
	pending string
	rnd     *rand.Rand

	// Note receives human-readable events.
	Note func(kind, text string)
}

// NewHost returns a host with the board's built-in defaults.
func NewHost() *Host {
	return &Host{
		Game:       newGame(),
		HumanWhite: true,
		Strength:   5,
		MoveTime:   2000,
		rnd:        rand.New(rand.NewSource(1)),
	}
}

func newGame() *chess.Game {
	return chess.NewGame(chess.UseNotation(chess.UCINotation{}))
}

func (h *Host) note(kind, text string) {
	if h.Note != nil {
		h.Note(kind, text)
	}
}

// Start asks the board for a game mode.
func (h *Host) Start() []string {
	h.stage = stageMode
	h.pending = ""
	return []string{"ChooseMode"}
}

// Handle reacts to one device line and returns the directive bodies to send back.
func (h *Host) Handle(r link.Reply) []string {
	switch r.Kind {
	case link.ReplyPreview:
		h.note("typing", r.Label+": "+r.Arg)
		return nil

	case link.ReplyMode:
		if h.stage != stageMode {
			return nil
		}
		h.Mode = r.Arg
		h.note("mode", r.Arg)
		switch r.Arg {
		case "pc":
			h.stage = stageStrength
			return []string{"default_strength_" + strconv.Itoa(h.Strength), "EngineStrength"}
		case "local":
			h.HumanWhite = true
			return h.begin()
		default:
			h.stage = stageMode
			return []string{"error_online_unimplemented", "ChooseMode"}
		}

	case link.ReplyNumber:
		switch h.stage {
		case stageStrength:
			h.Strength = r.Value
			h.stage = stageTime
			h.note("strength", strconv.Itoa(r.Value))
			return []string{"default_time_" + strconv.Itoa(h.MoveTime), "TimeControl"}
		case stageTime:
			h.MoveTime = r.Value
			h.stage = stageColor
			h.note("time", strconv.Itoa(r.Value))
			return []string{"PlayerColor"}
		}
		return nil

	case link.ReplyColor:
		if h.stage != stageColor {
			return nil
		}
		switch r.Arg {
		case "1":
			h.HumanWhite = true
		case "2":
			h.HumanWhite = false
		default:
			h.HumanWhite = h.rnd.Intn(2) == 0
		}
		return h.begin()

	case link.ReplyHint:
		if h.stage != stagePlaying {
			return nil
		}
		best := h.suggest()
		if best == "" {
			return []string{"hint_none"}
		}
		h.note("hint", best)
		return []string{"hint_" + best}

	case link.ReplyNewGame:
		h.note("new-game", "board asked for a new game")
		return h.Start()

	case link.ReplyPromotion:
		if h.stage != stagePromotion {
			return nil
		}
		uci := h.pending + r.Arg
		h.pending = ""
		h.stage = stagePlaying
		return h.play(uci)

	case link.ReplyMove:
		if h.stage != stagePlaying {
			return nil
		}
		return h.play(r.Arg)
	}
	return nil
}

func (h *Host) begin() []string {
	h.Game = newGame()
	h.stage = stagePlaying
	out := []string{"SetupComplete", "GameStart"}
	if h.Mode == "pc" && !h.HumanWhite {
		return append(out, h.reply()...)
	}
	return append(out, "turn_white")
}

func (h *Host) play(uci string) []string {
	mv := h.find(uci)
	if mv == nil {
		if h.find(uci+"q") != nil {
			h.pending = uci
			h.stage = stagePromotion
			return []string{"promotion_choice_needed"}
		}
		h.note("illegal", uci)
		return []string{"error_illegal_" + uci}
	}
	if err := h.Game.Move(mv); err != nil {
		return []string{"error_invalid_" + uci}
	}
	h.note("move", uci)
	if over := h.gameOver(); over != nil {
		return over
	}
	if h.Mode == "pc" {
		return h.reply()
	}
	return []string{"turn_" + h.side()}
}

// reply plays the engine move and hands the turn back.
func (h *Host) reply() []string {
	best := h.suggest()
	mv := h.find(best)
	if mv == nil {
		return h.gameOver()
	}
	if err := h.Game.Move(mv); err != nil {
		return nil
	}
	h.note("engine", best)
	out := []string{"m" + best}
	if over := h.gameOver(); over != nil {
		return append(out, over...)
	}
	return append(out, "turn_"+h.side())
}

func (h *Host) gameOver() []string {
	if h.Game.Outcome() == chess.NoOutcome {
		return nil
	}
	h.note("game-over", h.Game.Outcome().String()+" "+h.Game.Method().String())
	return h.Start()
}

func (h *Host) side() string {
	if h.Game.Position().Turn() == chess.White {
		return "white"
	}
	return "black"
}

func (h *Host) find(uci string) *chess.Move {
	for _, m := range h.Game.ValidMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}

// suggest picks the first legal move in UCI order, preferring captures.
func (h *Host) suggest() string {
	moves := h.Game.ValidMoves()
	if len(moves) == 0 {
		return ""
	}
	var all, captures []string
	for _, m := range moves {
		all = append(all, m.String())
		if m.HasTag(chess.Capture) {
			captures = append(captures, m.String())
		}
	}
	if len(captures) > 0 {
		all = captures
	}
	sort.Strings(all)
	return all[0]
}

// Moves lists the legal moves in UCI order.
func (h *Host) Moves() []string {
	var out []string
	for _, m := range h.Game.ValidMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}
