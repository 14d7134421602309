package irq

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"nvicshell/hal"
)

// CommandName is the shell name of the diagnostic command.
const CommandName = "nvic_irq"

// MaxPriority is the largest priority value set accepts.
const MaxPriority = 15

const setUsage = "Usage: nvic_irq set [IRQn] [priority] --Sets the NVIC IRQ level."

var ErrUsage = errors.New("nvic_irq: usage")

// RangeError reports a set request outside 0..N or 0..MaxPriority.
type RangeError struct {
	IRQ      int
	Priority int
	Len      int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("nvic_irq: out of range: irq=%d (max %d) priority=%d (max %d)",
		e.IRQ, e.Len, e.Priority, MaxPriority)
}

// ParseError reports a set argument that is not a decimal integer. It
// matches ErrUsage under errors.Is.
type ParseError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nvic_irq: invalid %s %q", e.Arg, e.Value)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrUsage }

type subcommand struct {
	name string
	help string
}

var subcommands = []subcommand{
	{name: "num", help: "nvic_irq num        - Get all enable NVIC_IRQ,sort by interrupt number."},
	{name: "priority", help: "nvic_irq priority   - Get all enable NVIC_IRQ,sort by interrupt priority from low to high."},
	{name: "set", help: "nvic_irq set        - Sets the NVIC IRQ level."},
}

// Subcommands lists the sub-command names in help order.
func Subcommands() []string {
	out := make([]string, len(subcommands))
	for i, sc := range subcommands {
		out[i] = sc.name
	}
	return out
}

// Command dispatches nvic_irq invocations.
type Command struct {
	nvic hal.NVIC
	fam  *Family
	rep  *Reporter
}

func NewCommand(nvic hal.NVIC, fam *Family) *Command {
	return &Command{nvic: nvic, fam: fam, rep: NewReporter(nvic, fam)}
}

func (c *Command) Reporter() *Reporter { return c.rep }

func (c *Command) Family() *Family { return c.fam }

// Run executes argv, where argv[0] is the command name. All user-facing text
// is written to w; the returned error classifies the outcome for callers
// that need it and is never meant to be printed again.
func (c *Command) Run(w io.Writer, argv []string) error {
	if len(argv) < 2 {
		c.rep.WriteDefault(w)
		return nil
	}

	switch argv[1] {
	case "num":
		c.rep.WriteByIndex(w)
		return nil
	case "priority":
		c.rep.WriteByPriority(w)
		return nil
	case "set":
		return c.set(w, argv[2:])
	default:
		fmt.Fprintln(w, "Usage:")
		for _, sc := range subcommands {
			fmt.Fprintln(w, sc.help)
		}
		fmt.Fprintln(w)
		return fmt.Errorf("%w: unknown sub-command %q", ErrUsage, argv[1])
	}
}

func (c *Command) set(w io.Writer, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(w, setUsage)
		return ErrUsage
	}

	n, err := parseInt(w, "IRQn", args[0])
	if err != nil {
		return err
	}
	prio, err := parseInt(w, "priority", args[1])
	if err != nil {
		return err
	}

	// n == Len is accepted: the bound is inclusive.
	if n < 0 || n > c.fam.Len() || prio < 0 || prio > MaxPriority {
		fmt.Fprintf(w, "IRQ must be greater than 0 and less than IRQ LEN, currently IRQ = %d\n", n)
		fmt.Fprintf(w, "priority must be greater than 0 and less than 15, currently priority = %d\n", prio)
		return &RangeError{IRQ: n, Priority: prio, Len: c.fam.Len()}
	}

	c.nvic.SetPriority(hal.IRQ(n), uint8(prio))
	fmt.Fprintf(w, "The interrupt priority for IRQ number %d set to %d\n", n, prio)
	if got := c.nvic.Priority(hal.IRQ(n)); n < c.fam.Len() && int(got) != prio {
		fmt.Fprintf(w, "note: %d priority bits implemented, priority reads back as %d\n", c.nvic.PriorityBits(), got)
	}
	return nil
}

func parseInt(w io.Writer, arg, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		perr := &ParseError{Arg: arg, Value: s, Err: err}
		fmt.Fprintln(w, perr.Error())
		fmt.Fprintln(w, setUsage)
		return 0, perr
	}
	return v, nil
}
