//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"nvicshell/app"
	"nvicshell/hal"
	"nvicshell/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var statePath, command string
	acfg := app.Config{Chip: buildinfo.Chip}
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&acfg.Chip, "chip", acfg.Chip, "Chip series or part number selecting the vector names.")
	flag.StringVar(&statePath, "state", "", "YAML file seeding the virtual interrupt controller.")
	flag.StringVar(&command, "c", "", "Run one command line and exit.")
	flag.Parse()

	if command != "" {
		acfg.Exec = []string{command}
		cfg.Enabled = true
	}
	acfg.ExitOnEOF = cfg.Enabled
	acfg.Seed = hal.LoadDemoNVICState
	if statePath != "" {
		acfg.Seed = func(n hal.NVIC) error { return hal.LoadNVICStateFile(n, statePath) }
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	var err error
	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(newApp)
	}
	if err == nil || errors.Is(err, app.ErrExit) || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
