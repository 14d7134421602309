package irq

import (
	"strconv"

	"nvicshell/hal"
)

// Exception is a Cortex-M system exception, valued by its CMSIS IRQn.
type Exception int8

const (
	NonMaskableInt   Exception = -14
	HardFault        Exception = -13
	MemoryManagement Exception = -12
	BusFault         Exception = -11
	UsageFault       Exception = -10
	SVCall           Exception = -5
	DebugMonitor     Exception = -4
	PendSV           Exception = -2
	SysTick          Exception = -1
)

// exceptionOrder is the report order: NMI first, SysTick last.
var exceptionOrder = []Exception{
	NonMaskableInt,
	HardFault,
	MemoryManagement,
	BusFault,
	UsageFault,
	SVCall,
	DebugMonitor,
	PendSV,
	SysTick,
}

// ARMv6-M (Cortex-M0/M0+) has no configurable fault handlers and no debug
// monitor exception.
var armv6mExceptions = map[Exception]string{
	NonMaskableInt: "NonMaskableInt_IRQn",
	HardFault:      "HardFault_IRQn",
	SVCall:         "SVCall_IRQn",
	PendSV:         "PendSV_IRQn",
	SysTick:        "SysTick_IRQn",
}

var armv7mExceptions = map[Exception]string{
	NonMaskableInt:   "NonMaskableInt_IRQn",
	HardFault:        "HardFault_IRQn",
	MemoryManagement: "MemoryManagement_IRQn",
	BusFault:         "BusFault_IRQn",
	UsageFault:       "UsageFault_IRQn",
	SVCall:           "SVCall_IRQn",
	DebugMonitor:     "DebugMonitor_IRQn",
	PendSV:           "PendSV_IRQn",
	SysTick:          "SysTick_IRQn",
}

func (e Exception) IRQ() hal.IRQ { return hal.IRQ(e) }

func (e Exception) String() string {
	if name, ok := armv7mExceptions[e]; ok {
		return name
	}
	return "Exception(" + strconv.Itoa(int(e)) + ")"
}
