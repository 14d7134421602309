package irq

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"nvicshell/hal"
)

// Core is the Cortex-M core a family is built on.
type Core string

const (
	CoreM0     Core = "cortex-m0"
	CoreM0Plus Core = "cortex-m0+"
	CoreM3     Core = "cortex-m3"
	CoreM4     Core = "cortex-m4"
	CoreM7     Core = "cortex-m7"
	CoreM33    Core = "cortex-m33"
)

// ARMv6M reports whether the core implements the reduced ARMv6-M exception
// model.
func (c Core) ARMv6M() bool { return c == CoreM0 || c == CoreM0Plus }

// Family describes one chip series: its core, the number of implemented NVIC
// priority bits and the peripheral vector names.
type Family struct {
	Series   string   `yaml:"series"`
	Core     Core     `yaml:"core"`
	PrioBits uint8    `yaml:"prio_bits"`
	Chips    []string `yaml:"chips"`

	// IRQs holds one name per peripheral vector; "" marks a reserved slot.
	IRQs []string `yaml:"-"`
}

// Len is the peripheral vector table length N.
func (f *Family) Len() int { return len(f.IRQs) }

// Name returns the peripheral name of irq. ok is false for reserved slots
// and vectors outside 0..N-1.
func (f *Family) Name(irq hal.IRQ) (name string, ok bool) {
	if irq < 0 || int(irq) >= len(f.IRQs) {
		return "", false
	}
	name = f.IRQs[irq]
	return name, name != ""
}

// Exceptions returns the system exceptions the family's core implements.
func (f *Family) Exceptions() map[Exception]string {
	if f.Core.ARMv6M() {
		return armv6mExceptions
	}
	return armv7mExceptions
}

//go:embed families.yaml
var rawFamilies []byte

var (
	families []*Family

	// ErrUnknownChip is returned by Lookup for tags that match no family.
	ErrUnknownChip = errors.New("unknown chip")
)

// tables maps a series to its generated vector name table.
var tables = map[string][]string{
	"stm32f0": stm32f0IRQNames,
	"stm32f1": stm32f1IRQNames,
	"stm32f4": stm32f4IRQNames,
	"stm32g0": stm32g0IRQNames,
	"stm32l0": stm32l0IRQNames,
}

// Families returns every known family in catalog order.
func Families() []*Family {
	return families
}

// Lookup finds a family by series ("stm32f4"), by chip ("stm32f407xx") or by
// a full part number carrying a series prefix ("stm32f407vgt6").
func Lookup(tag string) (*Family, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrUnknownChip)
	}
	for _, f := range families {
		if f.Series == tag {
			return f, nil
		}
	}
	for _, f := range families {
		if slices.Contains(f.Chips, tag) {
			return f, nil
		}
	}
	for _, f := range families {
		if strings.HasPrefix(tag, f.Series) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChip, tag)
}

func init() {
	var c struct {
		Families []*Family `yaml:"families"`
	}
	if err := yaml.Unmarshal(rawFamilies, &c); err != nil {
		panic(err)
	}
	for _, f := range c.Families {
		names, ok := tables[f.Series]
		if !ok {
			panic("irq: no vector table for series " + f.Series)
		}
		f.IRQs = names
	}
	families = c.Families
}
