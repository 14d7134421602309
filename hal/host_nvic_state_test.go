//go:build !tinygo

package hal

import (
	"strings"
	"testing"
)

func TestLoadNVICState(t *testing.T) {
	const doc = `
irqs:
  - {irq: -1, priority: 15}
  - {irq: 4, enabled: true, pending: true, priority: 3}
  - {irq: 9, active: true, priority: 7}
`
	n := NewVirtualNVIC(4)
	n.Enable(100)

	if err := LoadNVICState(n, strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadNVICState: %v", err)
	}
	if n.Enabled(100) {
		t.Fatalf("Enabled(100)=true; want state reset before load")
	}
	if !n.Enabled(4) || !n.Pending(4) || n.Priority(4) != 3 {
		t.Fatalf("irq 4: enabled=%v pending=%v prio=%d", n.Enabled(4), n.Pending(4), n.Priority(4))
	}
	if n.Enabled(9) || !n.Active(9) || n.Priority(9) != 7 {
		t.Fatalf("irq 9: enabled=%v active=%v prio=%d", n.Enabled(9), n.Active(9), n.Priority(9))
	}
	if got := n.Priority(-1); got != 15 {
		t.Fatalf("Priority(-1)=%d; want 15", got)
	}
}

func TestLoadNVICState_Errors(t *testing.T) {
	tcs := []struct {
		name string
		doc  string
		bits uint8
	}{
		{name: "unknown field", doc: "irqs:\n  - {irq: 1, level: 3}\n"},
		{name: "irq too large", doc: "irqs:\n  - {irq: 240}\n"},
		{name: "irq too small", doc: "irqs:\n  - {irq: -15}\n"},
		{name: "bad yaml", doc: "irqs: [\n"},
		{name: "priority too wide", doc: "irqs:\n  - {irq: 1, priority: 4}\n", bits: 2},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			bits := tc.bits
			if bits == 0 {
				bits = 4
			}
			n := NewVirtualNVIC(bits)
			n.Enable(2)
			if err := LoadNVICState(n, strings.NewReader(tc.doc)); err == nil {
				t.Fatalf("LoadNVICState(%q) err=nil; want error", tc.doc)
			}
			if !n.Enabled(2) {
				t.Fatalf("failed load modified state")
			}
		})
	}
}

func TestLoadNVICState_HighIRQ(t *testing.T) {
	n := NewVirtualNVIC(4)
	if err := LoadNVICState(n, strings.NewReader("irqs: [{irq: 239, enabled: true, priority: 1}]")); err != nil {
		t.Fatalf("LoadNVICState: %v", err)
	}
	if !n.Enabled(239) || n.Priority(239) != 1 {
		t.Fatalf("irq 239: enabled=%v prio=%d; want true,1", n.Enabled(239), n.Priority(239))
	}
}

func TestLoadNVICState_Empty(t *testing.T) {
	n := NewVirtualNVIC(4)
	if err := LoadNVICState(n, strings.NewReader("")); err != nil {
		t.Fatalf("LoadNVICState(empty): %v", err)
	}
}

func TestLoadNVICState_Demo(t *testing.T) {
	for _, bits := range []uint8{2, 4} {
		n := NewVirtualNVIC(bits)
		if err := LoadDemoNVICState(n); err != nil {
			t.Fatalf("demo state at %d bits: %v", bits, err)
		}
		if !n.Enabled(37) || n.Priority(37) != 0 {
			t.Fatalf("demo irq 37: enabled=%v prio=%d", n.Enabled(37), n.Priority(37))
		}
		if n.Priority(6) != 2 || n.Priority(11) != 1 {
			t.Fatalf("demo at %d bits: Priority(6,11)=%d,%d; want 2,1", bits, n.Priority(6), n.Priority(11))
		}
		if n.Enabled(38) {
			t.Fatalf("demo irq 38 enabled")
		}
	}
}
