//go:build tinygo && baremetal && cortexm

package hal

import (
	"runtime/volatile"
	"unsafe"
)

// nvicRegs mirrors the NVIC block at 0xE000E100. IPR is accessed by word:
// ARMv6-M only supports word access to the priority registers.
type nvicRegs struct {
	ISER [16]volatile.Register32 // 0x100
	_    [16]uint32
	ICER [16]volatile.Register32 // 0x180
	_    [16]uint32
	ISPR [16]volatile.Register32 // 0x200
	_    [16]uint32
	ICPR [16]volatile.Register32 // 0x280
	_    [16]uint32
	IABR [16]volatile.Register32 // 0x300
	_    [48]uint32
	IPR  [60]volatile.Register32 // 0x400
}

var (
	nvicBase = (*nvicRegs)(unsafe.Pointer(uintptr(0xE000E100)))
	// SHPR1..SHPR3: priorities of system exceptions 4..15.
	shprBase = (*[3]volatile.Register32)(unsafe.Pointer(uintptr(0xE000ED18)))
)

type cortexMNVIC struct {
	bits uint8
}

func newCortexMNVIC() *cortexMNVIC {
	return &cortexMNVIC{bits: probePriorityBits()}
}

// probePriorityBits writes all ones to the PendSV priority byte and counts
// how many high-order bits stick, then restores the original value.
func probePriorityBits() uint8 {
	const shift = 16 // PendSV is exception 14: SHPR3 byte 2
	reg := &shprBase[2]
	saved := reg.Get()
	reg.Set(saved | 0xFF<<shift)
	raw := uint8(reg.Get() >> shift)
	reg.Set(saved)

	var bits uint8
	for m := uint8(0x80); m != 0 && raw&m != 0; m >>= 1 {
		bits++
	}
	return clampPriorityBits(bits)
}

func (n *cortexMNVIC) PriorityBits() uint8 { return n.bits }

func (n *cortexMNVIC) Enabled(irq IRQ) bool { return testNVICBit(&nvicBase.ISER, irq) }
func (n *cortexMNVIC) Pending(irq IRQ) bool { return testNVICBit(&nvicBase.ISPR, irq) }
func (n *cortexMNVIC) Active(irq IRQ) bool  { return testNVICBit(&nvicBase.IABR, irq) }

// The set/clear registers are write-one: zeros leave other bits untouched.
func (n *cortexMNVIC) Enable(irq IRQ)       { writeNVICBit(&nvicBase.ISER, irq) }
func (n *cortexMNVIC) Disable(irq IRQ)      { writeNVICBit(&nvicBase.ICER, irq) }
func (n *cortexMNVIC) SetPending(irq IRQ)   { writeNVICBit(&nvicBase.ISPR, irq) }
func (n *cortexMNVIC) ClearPending(irq IRQ) { writeNVICBit(&nvicBase.ICPR, irq) }

func testNVICBit(regs *[16]volatile.Register32, irq IRQ) bool {
	if !peripheral(irq) {
		return false
	}
	w, m := bit(irq)
	return regs[w].HasBits(m)
}

func writeNVICBit(regs *[16]volatile.Register32, irq IRQ) {
	if !peripheral(irq) {
		return
	}
	w, m := bit(irq)
	regs[w].Set(m)
}

// priorityReg returns the word holding irq's priority byte and the byte's
// bit offset within it.
func priorityReg(irq IRQ) (*volatile.Register32, uint32, bool) {
	if irq < 0 {
		i, ok := shprIndex(irq)
		if !ok {
			return nil, 0, false
		}
		return &shprBase[i/4], uint32(i%4) * 8, true
	}
	if !peripheral(irq) {
		return nil, 0, false
	}
	return &nvicBase.IPR[irq/4], uint32(irq%4) * 8, true
}

func (n *cortexMNVIC) Priority(irq IRQ) uint8 {
	reg, off, ok := priorityReg(irq)
	if !ok {
		return 0
	}
	return uint8(reg.Get()>>off) >> (8 - n.bits)
}

func (n *cortexMNVIC) SetPriority(irq IRQ, prio uint8) {
	reg, off, ok := priorityReg(irq)
	if !ok {
		return
	}
	raw := uint32(prio<<(8-n.bits)) << off
	reg.Set(reg.Get()&^(0xFF<<off) | raw)
}
