//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"

	"smartchess/app"
	"smartchess/game"
	"smartchess/hal"
	"smartchess/led"
)

func main() {
	var (
		headless  hal.HeadlessConfig
		layout    string
		skipSweep bool
		trace     bool
		noSafe    bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window and dump board frames to stderr.")
	flag.IntVar(&headless.Hz, "hz", 10, "Frame check rate in headless mode.")
	flag.StringVar(&layout, "layout", "8", "Button layout: 8 or 10.")
	flag.BoolVar(&skipSweep, "skip-sweep", false, "Skip the startup sweep animation.")
	flag.BoolVar(&trace, "trace", false, "Log every protocol line.")
	flag.BoolVar(&noSafe, "no-safe-boot", false, "Skip the safe-boot window.")
	// stdout carries the serial protocol; logs go to stderr unless glog flags say otherwise.
	if f := flag.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
	}
	flag.Parse()
	defer glog.Flush()

	lay, err := game.LayoutByName(layout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := app.DefaultConfig()
	cfg.Game.Layout = lay
	cfg.Game.SkipSweep = skipSweep
	cfg.Game.Trace = trace || bool(glog.V(2))
	if noSafe {
		cfg.SafeBootWindow = 0
	}

	geo := led.DefaultGeometry()
	sim := hal.SimConfig{
		Title:       "smartchess",
		Buttons:     lay.Buttons,
		BoardWidth:  geo.Width,
		BoardHeight: geo.Height,
		BoardIndex:  geo.Index,
		Legend:      legend(lay),
	}
	run := func(ctx context.Context, h hal.HAL) error {
		return app.RunContext(ctx, h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, sim, headless, run); err != nil && !errors.Is(err, context.Canceled) {
			glog.Error(err)
			glog.Flush()
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(sim, run); err != nil && !errors.Is(err, context.Canceled) {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

func legend(l game.Layout) []string {
	return []string{
		fmt.Sprintf("keys 1..%d = coordinates", l.Coords),
		fmt.Sprintf("key %d = OK   key %d = Hint", int(l.OK)%10, int(l.Hint)%10),
	}
}
