//go:build bootdebug

package app

import (
	"sync"
	"time"

	"smartchess/hal"
)

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
)

func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()
}

// bootDiagStart repeats the current boot step on the log so a late-attached console
// still sees where boot stopped.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()
	if l == nil {
		return
	}

	go func() {
		for {
			bootDiagMu.Lock()
			step := bootDiagStep
			bootDiagMu.Unlock()

			if step == "" {
				step = "<empty>"
			}
			l.WriteLineString("bootdiag: " + step)
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
