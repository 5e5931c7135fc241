package link

import (
	"strconv"
	"strings"
)

// ReplyKind classifies a device line.
type ReplyKind uint8

const (
	ReplyUnknown ReplyKind = iota
	ReplyMode
	ReplyNumber
	ReplyColor
	ReplyPromotion
	ReplyHint
	ReplyNewGame
	ReplyMove
	ReplyPreview
)

var replyNames = [...]string{
	ReplyUnknown:   "unknown",
	ReplyMode:      "mode",
	ReplyNumber:    "number",
	ReplyColor:     "color",
	ReplyPromotion: "promotion",
	ReplyHint:      "hint",
	ReplyNewGame:   "new-game",
	ReplyMove:      "move",
	ReplyPreview:   "preview",
}

func (k ReplyKind) String() string {
	if int(k) < len(replyNames) {
		return replyNames[k]
	}
	return "ReplyKind(" + strconv.Itoa(int(k)) + ")"
}

// Reply is one decoded device line.
//
// Arg is "pc"/"online"/"local" for ReplyMode, "1".."3" for ReplyColor, the piece letter
// for ReplyPromotion, the token for ReplyMove and the text for ReplyPreview. Label is
// set for ReplyPreview, Value for ReplyNumber.
type Reply struct {
	Kind  ReplyKind
	Label string
	Arg   string
	Value int
}

// ParseReply decodes a full device line. ok is false when the line lacks the device
// prefix.
func ParseReply(line string) (r Reply, ok bool) {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), DevicePrefix)
	if !ok {
		return Reply{}, false
	}

	if rest, isPreview := strings.CutPrefix(body, previewTag); isPreview {
		label, text, _ := strings.Cut(rest, "_")
		return Reply{Kind: ReplyPreview, Label: label, Arg: text}, true
	}

	switch body {
	case MsgModePC, MsgModeOnline, MsgModeLocal:
		return Reply{Kind: ReplyMode, Arg: strings.TrimPrefix(body, "btn_mode_")}, true
	case MsgHint:
		return Reply{Kind: ReplyHint}, true
	case MsgNewGame:
		return Reply{Kind: ReplyNewGame}, true
	case MsgQueen, MsgRook, MsgBishop, MsgKnight:
		return Reply{Kind: ReplyPromotion, Arg: body[len(body)-1:]}, true
	case "s1", "s2", "s3":
		return Reply{Kind: ReplyColor, Arg: body[1:]}, true
	}

	if v, err := strconv.Atoi(body); err == nil {
		return Reply{Kind: ReplyNumber, Value: v}, true
	}
	if isMoveToken(body) {
		return Reply{Kind: ReplyMove, Arg: body}, true
	}
	return Reply{Kind: ReplyUnknown, Arg: body}, true
}

func isMoveToken(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	for i := 0; i < 4; i += 2 {
		if s[i] < 'a' || s[i] > 'h' || s[i+1] < '1' || s[i+1] > '8' {
			return false
		}
	}
	return len(s) == 4 || strings.IndexByte("qrbn", s[4]) >= 0
}
