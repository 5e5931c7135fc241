package link

// Line prefixes.
const (
	HostPrefix   = "heyArduino"
	DevicePrefix = "heypi"
	previewTag   = "typing_"
)

// Device messages.
const (
	MsgModePC     = "btn_mode_pc"
	MsgModeOnline = "btn_mode_online"
	MsgModeLocal  = "btn_mode_local"
	MsgHint       = "btn_hint"
	MsgNewGame    = "n"
	MsgQueen      = "btn_q"
	MsgRook       = "btn_r"
	MsgBishop     = "btn_b"
	MsgKnight     = "btn_n"
)

// Typing preview labels.
const (
	LabelFrom     = "from"
	LabelTo       = "to"
	LabelHint     = "hint"
	LabelStrength = "strength"
	LabelTime     = "time"
)

// ColorReply returns the reply for player color choice n (1 white, 2 black, 3 random).
func ColorReply(n int) string {
	return "s" + string(rune('0'+n))
}
