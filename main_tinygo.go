//go:build tinygo && baremetal && cortexm

package main

import (
	"nvicshell/app"
	"nvicshell/hal"
)

func main() {
	app.Run(hal.New())
}
