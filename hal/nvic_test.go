package hal

import "testing"

func TestVirtualNVIC_Flags(t *testing.T) {
	n := NewVirtualNVIC(4)

	n.Enable(3)
	n.Enable(40)
	n.SetPending(40)
	n.SetActive(3, true)

	if !n.Enabled(3) || !n.Enabled(40) || n.Enabled(4) {
		t.Fatalf("Enabled(3,40,4)=%v,%v,%v; want true,true,false", n.Enabled(3), n.Enabled(40), n.Enabled(4))
	}
	if !n.Pending(40) || n.Pending(3) {
		t.Fatalf("Pending(40,3)=%v,%v; want true,false", n.Pending(40), n.Pending(3))
	}
	if !n.Active(3) || n.Active(40) {
		t.Fatalf("Active(3,40)=%v,%v; want true,false", n.Active(3), n.Active(40))
	}

	n.Disable(3)
	n.ClearPending(40)
	if n.Enabled(3) || n.Pending(40) {
		t.Fatalf("Disable/ClearPending had no effect")
	}
}

// The last register word only holds IRQ 224..239.
func TestVirtualNVIC_LastWord(t *testing.T) {
	n := NewVirtualNVIC(4)
	for _, irq := range []IRQ{223, 224, 230, MaxIRQs - 1} {
		n.Enable(irq)
		n.SetPending(irq)
		n.SetActive(irq, true)
		n.SetPriority(irq, 9)
		if !n.Enabled(irq) || !n.Pending(irq) || !n.Active(irq) || n.Priority(irq) != 9 {
			t.Fatalf("irq %d: enabled=%v pending=%v active=%v prio=%d; want true,true,true,9",
				irq, n.Enabled(irq), n.Pending(irq), n.Active(irq), n.Priority(irq))
		}
		n.Disable(irq)
		n.ClearPending(irq)
		n.SetActive(irq, false)
		if n.Enabled(irq) || n.Pending(irq) || n.Active(irq) {
			t.Fatalf("irq %d: flags still set after clear", irq)
		}
	}
}

func TestVirtualNVIC_OutOfRange(t *testing.T) {
	n := NewVirtualNVIC(4)
	for _, irq := range []IRQ{-1, MaxIRQs, MaxIRQs + 5} {
		n.Enable(irq)
		if n.Enabled(irq) {
			t.Fatalf("Enabled(%d)=true; want false", irq)
		}
	}
	n.SetPriority(MaxIRQs, 3)
	if got := n.Priority(MaxIRQs); got != 0 {
		t.Fatalf("Priority(%d)=%d; want 0", MaxIRQs, got)
	}
}

func TestVirtualNVIC_Priority(t *testing.T) {
	tcs := []struct {
		bits uint8
		irq  IRQ
		set  uint8
		want uint8
	}{
		{bits: 4, irq: 0, set: 15, want: 15},
		{bits: 4, irq: 7, set: 5, want: 5},
		// Only the implemented high-order bits are kept.
		{bits: 2, irq: 7, set: 5, want: 1},
		{bits: 3, irq: 200, set: 7, want: 7},
		{bits: 4, irq: -1, set: 15, want: 15},
		{bits: 4, irq: -5, set: 2, want: 2},
		// NMI and HardFault have fixed priorities.
		{bits: 4, irq: -14, set: 3, want: 0},
		{bits: 4, irq: -13, set: 3, want: 0},
	}
	for _, tc := range tcs {
		n := NewVirtualNVIC(tc.bits)
		n.SetPriority(tc.irq, tc.set)
		if got := n.Priority(tc.irq); got != tc.want {
			t.Fatalf("bits=%d SetPriority(%d,%d) Priority=%d; want %d", tc.bits, tc.irq, tc.set, got, tc.want)
		}
	}
}

func TestVirtualNVIC_ConfigurePriorityBits(t *testing.T) {
	n := NewVirtualNVIC(0)
	if got := n.PriorityBits(); got != DefaultPriorityBits {
		t.Fatalf("PriorityBits()=%d; want %d", got, DefaultPriorityBits)
	}

	n.SetPriority(1, 12) // raw 0xC0
	n.ConfigurePriorityBits(2)
	if got := n.Priority(1); got != 3 {
		t.Fatalf("Priority(1)=%d after narrowing; want 3", got)
	}
}

func TestVirtualNVIC_Reset(t *testing.T) {
	n := NewVirtualNVIC(4)
	n.Enable(1)
	n.SetPending(1)
	n.SetPriority(1, 9)
	n.SetPriority(-1, 9)
	n.Reset()
	if n.Enabled(1) || n.Pending(1) || n.Priority(1) != 0 || n.Priority(-1) != 0 {
		t.Fatalf("state survived Reset")
	}
}
