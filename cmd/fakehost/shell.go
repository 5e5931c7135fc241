package main

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"
)

const benchKey = "$bench"

func benchFrom(c *ishell.Context) *bench {
	return c.Get(benchKey).(*bench)
}

var (
	// StartCmd begins a session with ChooseMode.
	StartCmd = ishell.Cmd{
		Name:    "start",
		Aliases: []string{"s"},
		Help:    "send ChooseMode and run setup",
		Func: func(c *ishell.Context) {
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			b.send(b.host.Start()...)
		},
	}

	// SendCmd sends a raw directive.
	SendCmd = ishell.Cmd{
		Name: "send",
		Help: "BODY  send heyArduino<BODY>",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("directive expected"))
				return
			}
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			b.send(strings.Join(c.Args, " "))
		},
	}

	// BoardCmd prints the host's position.
	BoardCmd = ishell.Cmd{
		Name:    "board",
		Aliases: []string{"b"},
		Help:    "print the position",
		Func: func(c *ishell.Context) {
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			c.Println(b.host.Game.Position().Board().Draw())
			c.Printf("%s to move, outcome %s\n", b.host.side(), b.host.Game.Outcome())
		},
	}

	// MovesCmd lists legal moves.
	MovesCmd = ishell.Cmd{
		Name: "moves",
		Help: "list legal moves",
		Func: func(c *ishell.Context) {
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			c.Println(strings.Join(b.host.Moves(), " "))
		},
	}

	// ResetCmd sends ResetBoard.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "send ResetBoard",
		Func: func(c *ishell.Context) {
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			b.send("ResetBoard")
		},
	}

	// ErrorCmd makes the board flash and re-enter the move.
	ErrorCmd = ishell.Cmd{
		Name: "error",
		Help: "[REASON]  send error_<REASON>",
		Func: func(c *ishell.Context) {
			reason := "manual"
			if len(c.Args) > 0 {
				reason = c.Args[0]
			}
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			b.send("error_" + reason)
		},
	}

	// AutoCmd toggles automatic answers.
	AutoCmd = ishell.Cmd{
		Name: "auto",
		Help: "on|off  answer the board automatically",
		Func: func(c *ishell.Context) {
			b := benchFrom(c)
			b.mu.Lock()
			defer b.mu.Unlock()
			if len(c.Args) > 0 {
				b.auto = c.Args[0] == "on"
			}
			c.Printf("auto %v\n", b.auto)
		},
	}

	commands = []*ishell.Cmd{
		&StartCmd,
		&SendCmd,
		&BoardCmd,
		&MovesCmd,
		&ResetCmd,
		&ErrorCmd,
		&AutoCmd,
	}
)
