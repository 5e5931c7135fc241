package link

import (
	"strconv"
	"strings"
)

// Kind identifies a host directive.
type Kind uint8

const (
	Unknown Kind = iota
	ChooseMode
	EngineStrength
	DefaultStrength
	TimeControl
	DefaultTime
	PlayerColor
	SetupComplete
	GameStart
	OpponentMove
	HintMove
	PromotionChoice
	Error
	Turn
	ResetBoard
)

var kindNames = [...]string{
	Unknown:         "unknown",
	ChooseMode:      "ChooseMode",
	EngineStrength:  "EngineStrength",
	DefaultStrength: "default_strength",
	TimeControl:     "TimeControl",
	DefaultTime:     "default_time",
	PlayerColor:     "PlayerColor",
	SetupComplete:   "SetupComplete",
	GameStart:       "GameStart",
	OpponentMove:    "move",
	HintMove:        "hint",
	PromotionChoice: "promotion_choice_needed",
	Error:           "error",
	Turn:            "turn",
	ResetBoard:      "ResetBoard",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Directive is one decoded host line.
//
// Arg carries the move token for OpponentMove and HintMove, the reason for Error and the
// color for Turn. Value carries the number for DefaultStrength and DefaultTime.
type Directive struct {
	Kind  Kind
	Arg   string
	Value int
}

// ParseDirective decodes the body of a host line, after the prefix. Anything it does not
// recognise comes back as Unknown.
func ParseDirective(body string) Directive {
	switch body {
	case "ChooseMode":
		return Directive{Kind: ChooseMode}
	case "EngineStrength":
		return Directive{Kind: EngineStrength}
	case "TimeControl":
		return Directive{Kind: TimeControl}
	case "PlayerColor":
		return Directive{Kind: PlayerColor}
	case "SetupComplete":
		return Directive{Kind: SetupComplete}
	case "GameStart":
		return Directive{Kind: GameStart}
	case "promotion_choice_needed":
		return Directive{Kind: PromotionChoice}
	case "ResetBoard":
		return Directive{Kind: ResetBoard}
	}

	if v, ok := cutInt(body, "default_strength_"); ok {
		return Directive{Kind: DefaultStrength, Value: v}
	}
	if v, ok := cutInt(body, "default_time_"); ok {
		return Directive{Kind: DefaultTime, Value: v}
	}
	if rest, ok := strings.CutPrefix(body, "hint_"); ok && rest != "" {
		return Directive{Kind: HintMove, Arg: rest}
	}
	if rest, ok := strings.CutPrefix(body, "error_"); ok {
		return Directive{Kind: Error, Arg: rest}
	}
	if rest, ok := strings.CutPrefix(body, "turn_"); ok && (rest == "white" || rest == "black") {
		return Directive{Kind: Turn, Arg: rest}
	}
	if rest, ok := strings.CutPrefix(body, "m"); ok && len(rest) >= 4 {
		return Directive{Kind: OpponentMove, Arg: rest}
	}
	return Directive{Kind: Unknown, Arg: body}
}

func cutInt(s, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Line renders the directive as the host would send it, without the newline.
func (d Directive) Line() string {
	var body string
	switch d.Kind {
	case DefaultStrength:
		body = "default_strength_" + strconv.Itoa(d.Value)
	case DefaultTime:
		body = "default_time_" + strconv.Itoa(d.Value)
	case OpponentMove:
		body = "m" + d.Arg
	case HintMove:
		body = "hint_" + d.Arg
	case Error:
		body = "error_" + d.Arg
	case Turn:
		body = "turn_" + d.Arg
	case Unknown:
		body = d.Arg
	default:
		body = d.Kind.String()
	}
	return HostPrefix + body
}
