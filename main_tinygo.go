//go:build tinygo

package main

import (
	"smartchess/app"
	"smartchess/hal"
)

func main() {
	app.Run(hal.New())
}
