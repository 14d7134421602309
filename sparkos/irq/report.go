package irq

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"nvicshell/hal"
)

// NameWidth is the fixed width of the name column; longer names are cut.
const NameWidth = 30

// reservedName is shown for an enabled vector whose table slot is empty.
const reservedName = "Reserved"

// VectorInfo is a snapshot of one vector's controller state.
type VectorInfo struct {
	IRQ      hal.IRQ
	Name     string
	Enabled  bool
	Pending  bool
	Active   bool
	Priority uint8
}

// Reporter renders controller state as fixed-width tables.
//
// Write errors from the destination are ignored, in the manner of a console
// print.
type Reporter struct {
	nvic hal.NVIC
	fam  *Family
}

func NewReporter(nvic hal.NVIC, fam *Family) *Reporter {
	return &Reporter{nvic: nvic, fam: fam}
}

// Info reads irq's current state. Nothing is cached between calls.
func (r *Reporter) Info(irq hal.IRQ) VectorInfo {
	v := VectorInfo{
		IRQ:      irq,
		Enabled:  r.nvic.Enabled(irq),
		Pending:  r.nvic.Pending(irq),
		Active:   r.nvic.Active(irq),
		Priority: r.nvic.Priority(irq),
	}
	if irq < 0 {
		v.Name = r.fam.Exceptions()[Exception(irq)]
		return v
	}
	if name, ok := r.fam.Name(irq); ok {
		v.Name = name
	} else {
		v.Name = reservedName
	}
	return v
}

// WriteHeader writes the peripheral table title and separator lines.
func (r *Reporter) WriteHeader(w io.Writer) {
	writeHeader(w, "IRQ name")
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "num %-*s E P A Priotity\n", NameWidth, title)
	fmt.Fprintf(w, "--- %s - - - --------\n", strings.Repeat("-", NameWidth))
}

// WriteExceptions writes the system exception table, NMI first. Exceptions
// the core does not implement are skipped.
func (r *Reporter) WriteExceptions(w io.Writer) {
	writeHeader(w, "exception_type name")
	names := r.fam.Exceptions()
	for _, e := range exceptionOrder {
		name, ok := names[e]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%3d %-*.*s X X X    %02d\n", int(e), NameWidth, NameWidth, name, r.nvic.Priority(e.IRQ()))
	}
}

// writeRow writes one enabled peripheral vector. The E column is always 1:
// rows are only written for enabled vectors.
func (r *Reporter) writeRow(w io.Writer, irq hal.IRQ) {
	v := r.Info(irq)
	fmt.Fprintf(w, "%3d %-*.*s 1 %s %s    %02d\n",
		int(v.IRQ), NameWidth, NameWidth, v.Name, flag(v.Pending), flag(v.Active), v.Priority)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteByIndex writes every enabled peripheral vector in ascending vector
// order.
func (r *Reporter) WriteByIndex(w io.Writer) {
	r.WriteHeader(w)
	for i := 0; i < r.fam.Len(); i++ {
		irq := hal.IRQ(i)
		if r.nvic.Enabled(irq) {
			r.writeRow(w, irq)
		}
	}
}

type priorityEntry struct {
	irq  hal.IRQ
	prio uint8
}

// PriorityOrder returns the enabled peripheral vectors ordered by ascending
// priority value. Vectors sharing a priority keep ascending vector order.
func (r *Reporter) PriorityOrder() []hal.IRQ {
	entries := make([]priorityEntry, 0, r.fam.Len())
	for i := 0; i < r.fam.Len(); i++ {
		irq := hal.IRQ(i)
		if !r.nvic.Enabled(irq) {
			continue
		}
		entries = append(entries, priorityEntry{irq: irq, prio: r.nvic.Priority(irq)})
	}
	slices.SortStableFunc(entries, func(a, b priorityEntry) int {
		return int(a.prio) - int(b.prio)
	})

	out := make([]hal.IRQ, len(entries))
	for i, e := range entries {
		out[i] = e.irq
	}
	return out
}

// WriteByPriority writes the same rows as WriteByIndex in PriorityOrder.
func (r *Reporter) WriteByPriority(w io.Writer) {
	r.WriteHeader(w)
	for _, irq := range r.PriorityOrder() {
		r.writeRow(w, irq)
	}
}

// WriteDefault writes the exception table, a blank line and the peripheral
// table by index.
func (r *Reporter) WriteDefault(w io.Writer) {
	r.WriteExceptions(w)
	fmt.Fprintln(w)
	r.WriteByIndex(w)
}
