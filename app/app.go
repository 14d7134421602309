package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"nvicshell/hal"
	"nvicshell/internal/buildinfo"
	"nvicshell/sparkos/irq"
	"nvicshell/sparkos/services/shell"
	"nvicshell/sparkos/services/term"
)

// ErrExit is returned by the step function once a scripted run is done or
// the console input has closed. Runners treat it as a clean shutdown.
var ErrExit = errors.New("app: exit")

type Config struct {
	// Chip selects the vector name tables; empty means buildinfo.Chip.
	Chip string

	// Exec lists command lines to run on the first step, after which the
	// step function returns ErrExit.
	Exec []string

	// ExitOnEOF makes the end of serial input stop the app.
	ExitOnEOF bool

	// Seed, if set, loads the initial controller state. It runs after the
	// controller's priority width has been set for the selected chip.
	Seed func(hal.NVIC) error
}

type system struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	fam  *irq.Family
	term *term.Service
	con  *console
	sh   *shell.Service

	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	lines chan string
	raw   chan []byte

	started  bool
	eof      bool
	panicked error
}

// New initializes the shell with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the shell and returns its step function. The
// runner calls step once per frame; all shell state is touched only from
// inside step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	sys, err := newSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("app: %v", err))
		}
		return func() error { return err }
	}
	return sys.step
}

// Run starts the shell and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString(fmt.Sprintf("app: halted: %v", err))
			}
			select {}
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	chip := cfg.Chip
	if chip == "" {
		chip = buildinfo.Chip
	}
	fam, err := irq.Lookup(chip)
	if err != nil {
		return nil, err
	}

	nvic := h.NVIC()
	if nvic == nil {
		return nil, errors.New("no interrupt controller")
	}
	if c, ok := nvic.(hal.NVICConfigurer); ok {
		c.ConfigurePriorityBits(fam.PrioBits)
	} else if got := nvic.PriorityBits(); got != fam.PrioBits {
		h.Logger().WriteLineString(fmt.Sprintf("app: %s declares %d priority bits, controller has %d", fam.Series, fam.PrioBits, got))
	}
	if cfg.Seed != nil {
		if err := cfg.Seed(nvic); err != nil {
			return nil, err
		}
	}

	sys := &system{h: h, log: h.Logger(), cfg: cfg, fam: fam}
	sys.term = term.New(h.Display())
	sys.con = &console{serial: h.Serial(), term: sys.term}

	sh, err := shell.New(shell.Config{Out: sys.con, Log: sys.log, NVIC: nvic, Family: fam})
	if err != nil {
		return nil, err
	}
	sys.sh = sh

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			sys.keys = kbd.Events()
		}
	}
	if t := h.Time(); t != nil {
		sys.ticks = t.Ticks()
	}
	if len(cfg.Exec) == 0 {
		sys.startSerial()
	}

	sys.log.WriteLineString(fmt.Sprintf("nvicshell %s: chip=%s core=%s vectors=%d", buildinfo.Short(), fam.Series, fam.Core, fam.Len()))
	return sys, nil
}

// startSerial reads the serial port on its own goroutine and hands input to
// step over channels.
func (sys *system) startSerial() {
	ser := sys.h.Serial()
	if ser == nil {
		return
	}
	if lo, ok := ser.(hal.LineOriented); ok && lo.LineMode() {
		lines := make(chan string, 16)
		sys.lines = lines
		go func() {
			defer close(lines)
			sc := bufio.NewScanner(ser)
			for sc.Scan() {
				lines <- sc.Text()
			}
		}()
		return
	}

	raw := make(chan []byte, 16)
	sys.raw = raw
	go func() {
		defer close(raw)
		buf := make([]byte, 64)
		for {
			n, err := ser.Read(buf)
			if n > 0 {
				raw <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()
}

func (sys *system) step() (err error) {
	if sys.panicked != nil {
		return sys.panicked
	}
	defer func() {
		if r := recover(); r != nil {
			sys.showPanic(r, debug.Stack())
			sys.panicked = fmt.Errorf("panic: %v", r)
			err = sys.panicked
		}
	}()

	if len(sys.cfg.Exec) > 0 {
		for _, line := range sys.cfg.Exec {
			sys.sh.ExecLine(line)
		}
		_ = sys.term.Flush()
		return ErrExit
	}

	sys.drain()
	if err := sys.term.Flush(); err != nil {
		return err
	}
	if sys.eof && sys.cfg.ExitOnEOF {
		return ErrExit
	}
	return nil
}

// drain handles all input that has arrived since the last step.
func (sys *system) drain() {
	if !sys.started {
		sys.started = true
		sys.sh.Start()
	}
	for {
		select {
		case seq := <-sys.ticks:
			sys.sh.SetUptime(seq)
		case ev := <-sys.keys:
			sys.sh.HandleKey(ev)
		case line, ok := <-sys.lines:
			if !ok {
				sys.lines = nil
				sys.eof = true
				continue
			}
			// The host tty already echoed the line; only the framebuffer
			// terminal needs it.
			_, _ = io.WriteString(sys.term, line+"\n")
			sys.sh.Submit(line)
		case b, ok := <-sys.raw:
			if !ok {
				sys.raw = nil
				sys.eof = true
				continue
			}
			sys.sh.HandleInput(b)
		default:
			return
		}
	}
}
