package game

// Phase is the top-level session state.
type Phase uint32

const (
	PhaseIdle Phase = iota
	PhaseSetup
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Flags are the transient input booleans. The pending interrupt bit lives in the
// interrupt bridge.
type Flags struct {
	ConfirmMode bool
	InSetup     bool
	InInput     bool
	HintHold    bool
	HintWaiting bool
	ShowingHint bool
}

// Defaults are the values offered before a strength or time prompt. The host may
// change them at any time.
type Defaults struct {
	Strength int // 0..20
	MoveTime int // ms
}

// BuiltinDefaults are used until the host sends its own.
var BuiltinDefaults = Defaults{Strength: 5, MoveTime: 2000}

// Prompt is the input the session is waiting for.
type Prompt uint32

const (
	PromptNone Prompt = iota
	PromptMode
	PromptStrength
	PromptTime
	PromptColor
	PromptPromotion
	PromptFromFile
	PromptFromRank
	PromptToFile
	PromptToRank
	PromptConfirm
)

var promptNames = [...]string{
	PromptNone:      "none",
	PromptMode:      "mode",
	PromptStrength:  "strength",
	PromptTime:      "time",
	PromptColor:     "color",
	PromptPromotion: "promotion",
	PromptFromFile:  "from-file",
	PromptFromRank:  "from-rank",
	PromptToFile:    "to-file",
	PromptToRank:    "to-rank",
	PromptConfirm:   "confirm",
}

func (p Prompt) String() string {
	if int(p) < len(promptNames) {
		return promptNames[p]
	}
	return "unknown"
}

// Config is the session configuration.
type Config struct {
	Layout    Layout
	Defaults  Defaults
	SkipSweep bool
	// Trace logs every protocol line.
	Trace bool
}

// DefaultConfig returns the eight-button board with built-in defaults.
func DefaultConfig() Config {
	return Config{Layout: Layout8, Defaults: BuiltinDefaults}
}
