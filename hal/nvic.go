package hal

import "sync"

// IRQ is a CMSIS interrupt number.
//
// Negative values are Cortex-M system exceptions (-14 NMI .. -1 SysTick),
// non-negative values are peripheral interrupts.
type IRQ int16

// MaxIRQs is the number of peripheral interrupts the NVIC architecture can address.
const MaxIRQs = 240

// irqWords is the number of 32-bit words in each ISER/ISPR/IABR bank.
const irqWords = (MaxIRQs + 31) / 32

// DefaultPriorityBits is the number of implemented priority bits on most
// Cortex-M3/M4/M7 parts.
const DefaultPriorityBits = 4

// NVIC provides access to the nested vectored interrupt controller.
//
// Priorities are logical values, already shifted down by the number of
// unimplemented low-order bits (CMSIS NVIC_GetPriority semantics).
// Out-of-range interrupt numbers read as zero and ignore writes.
type NVIC interface {
	PriorityBits() uint8

	Enabled(irq IRQ) bool
	Pending(irq IRQ) bool
	Active(irq IRQ) bool
	Priority(irq IRQ) uint8

	SetPriority(irq IRQ, prio uint8)
	Enable(irq IRQ)
	Disable(irq IRQ)
	SetPending(irq IRQ)
	ClearPending(irq IRQ)
}

// NVICConfigurer is implemented by controllers whose priority width is not
// fixed by silicon (the host model).
type NVICConfigurer interface {
	ConfigurePriorityBits(bits uint8)
}

// shprIndex maps a system exception to its byte in SHPR1..SHPR3.
// NMI and HardFault have fixed priorities and no register.
func shprIndex(irq IRQ) (int, bool) {
	exc := int(irq) + 16
	if exc < 4 || exc > 15 {
		return 0, false
	}
	return exc - 4, true
}

func clampPriorityBits(bits uint8) uint8 {
	if bits == 0 || bits > 8 {
		return DefaultPriorityBits
	}
	return bits
}

// VirtualNVIC is a register-level software model of the NVIC and the SCB
// system handler priority registers.
type VirtualNVIC struct {
	mu   sync.Mutex
	bits uint8

	iser [irqWords]uint32
	ispr [irqWords]uint32
	iabr [irqWords]uint32
	ipr  [MaxIRQs]uint8
	shpr [12]uint8
}

// NewVirtualNVIC returns a controller with all interrupts disabled and all
// priorities zero.
func NewVirtualNVIC(bits uint8) *VirtualNVIC {
	return &VirtualNVIC{bits: clampPriorityBits(bits)}
}

func (v *VirtualNVIC) PriorityBits() uint8 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bits
}

// ConfigurePriorityBits changes the implemented priority width. Stored
// register bytes are kept, so already-programmed priorities are reinterpreted
// exactly as they would be on silicon with the new width.
func (v *VirtualNVIC) ConfigurePriorityBits(bits uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bits = clampPriorityBits(bits)
}

// Reset returns every register to its reset value.
func (v *VirtualNVIC) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.iser = [irqWords]uint32{}
	v.ispr = [irqWords]uint32{}
	v.iabr = [irqWords]uint32{}
	v.ipr = [MaxIRQs]uint8{}
	v.shpr = [12]uint8{}
}

func peripheral(irq IRQ) bool { return irq >= 0 && int(irq) < MaxIRQs }

func bit(irq IRQ) (word int, mask uint32) {
	return int(irq) >> 5, 1 << (uint(irq) & 0x1F)
}

func (v *VirtualNVIC) testBit(regs *[irqWords]uint32, irq IRQ) bool {
	if !peripheral(irq) {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	w, m := bit(irq)
	return regs[w]&m != 0
}

func (v *VirtualNVIC) writeBit(regs *[irqWords]uint32, irq IRQ, set bool) {
	if !peripheral(irq) {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	w, m := bit(irq)
	if set {
		regs[w] |= m
	} else {
		regs[w] &^= m
	}
}

func (v *VirtualNVIC) Enabled(irq IRQ) bool { return v.testBit(&v.iser, irq) }
func (v *VirtualNVIC) Pending(irq IRQ) bool { return v.testBit(&v.ispr, irq) }
func (v *VirtualNVIC) Active(irq IRQ) bool  { return v.testBit(&v.iabr, irq) }

func (v *VirtualNVIC) Enable(irq IRQ)       { v.writeBit(&v.iser, irq, true) }
func (v *VirtualNVIC) Disable(irq IRQ)      { v.writeBit(&v.iser, irq, false) }
func (v *VirtualNVIC) SetPending(irq IRQ)   { v.writeBit(&v.ispr, irq, true) }
func (v *VirtualNVIC) ClearPending(irq IRQ) { v.writeBit(&v.ispr, irq, false) }

// SetActive models the hardware setting IABR on exception entry. Real
// silicon exposes IABR read-only.
func (v *VirtualNVIC) SetActive(irq IRQ, active bool) { v.writeBit(&v.iabr, irq, active) }

func (v *VirtualNVIC) Priority(irq IRQ) uint8 {
	v.mu.Lock()
	defer v.mu.Unlock()

	shift := 8 - v.bits
	if irq < 0 {
		i, ok := shprIndex(irq)
		if !ok {
			return 0
		}
		return v.shpr[i] >> shift
	}
	if !peripheral(irq) {
		return 0
	}
	return v.ipr[irq] >> shift
}

func (v *VirtualNVIC) SetPriority(irq IRQ, prio uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()

	raw := prio << (8 - v.bits)
	if irq < 0 {
		if i, ok := shprIndex(irq); ok {
			v.shpr[i] = raw
		}
		return
	}
	if !peripheral(irq) {
		return
	}
	v.ipr[irq] = raw
}
