package app

import (
	"context"
	"errors"
	"time"

	"smartchess/game"
	"smartchess/hal"
	"smartchess/internal/buildinfo"
)

// ErrSafeBoot is returned when OK was held during the boot window.
var ErrSafeBoot = errors.New("app: safe boot, application skipped")

type Config struct {
	Game game.Config
	// SafeBootWindow is how long OK is watched at power-up.
	SafeBootWindow time.Duration
	SafeBootPoll   time.Duration
}

// DefaultConfig returns the firmware configuration.
func DefaultConfig() Config {
	return Config{
		Game:           game.DefaultConfig(),
		SafeBootWindow: 2500 * time.Millisecond,
		SafeBootPoll:   20 * time.Millisecond,
	}
}

// Run starts the firmware and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = RunContext(context.Background(), h, DefaultConfig())
	select {}
}

// RunContext boots the board and runs the session until ctx is done. A panic is
// recovered, reported on the board and returned as an error.
func RunContext(ctx context.Context, h hal.HAL, cfg Config) (err error) {
	defer recoverPanic(h, &err)

	bootDiagStart(h)
	logLine(h, "[boot] "+buildinfo.Banner())

	bootStep(h, "session")
	sess, err := game.New(cfg.Game, h)
	if err != nil {
		logLine(h, "[boot] "+err.Error())
		return err
	}

	bootStep(h, "safe-boot window")
	if safeBoot(ctx, h, sess, cfg) {
		logLine(h, "[boot] OK held, application skipped")
		return ErrSafeBoot
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	bootStep(h, "running")
	return sess.Run(ctx)
}

// safeBoot watches the OK button for the boot window.
func safeBoot(ctx context.Context, h hal.HAL, sess *game.Session, cfg Config) bool {
	if cfg.SafeBootWindow <= 0 {
		return false
	}
	clock := h.Clock()
	if clock == nil {
		clock = hal.SystemClock()
	}
	poll := cfg.SafeBootPoll
	if poll <= 0 {
		poll = 20 * time.Millisecond
	}

	deadline := clock.Now().Add(cfg.SafeBootWindow)
	for clock.Now().Before(deadline) {
		if sess.OKHeld() {
			return true
		}
		clock.Sleep(poll)
		if ctx.Err() != nil {
			return false
		}
	}
	return false
}

func logLine(h hal.HAL, s string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
