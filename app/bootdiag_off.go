//go:build !bootdebug

package app

import "smartchess/hal"

func bootStep(h hal.HAL, msg string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("[boot] " + msg)
	}
}

func bootDiagStart(hal.HAL) {}
