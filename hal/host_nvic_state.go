//go:build !tinygo

package hal

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed nvic_demo.yaml
var demoNVICState []byte

// NVICState is a snapshot of controller state used to seed the host model.
type NVICState struct {
	IRQs []IRQState `yaml:"irqs"`
}

// IRQState describes one vector. Negative IRQ numbers address system
// exceptions; only their priority is meaningful.
type IRQState struct {
	IRQ      int   `yaml:"irq"`
	Enabled  bool  `yaml:"enabled"`
	Pending  bool  `yaml:"pending"`
	Active   bool  `yaml:"active"`
	Priority uint8 `yaml:"priority"`
}

var errNotVirtual = errors.New("nvic state: controller is not a software model")

// LoadNVICState resets n and applies the YAML state read from r.
//
// Priorities are logical values for the controller's current width, so the
// width must be configured before loading.
func LoadNVICState(n NVIC, r io.Reader) error {
	v, ok := n.(*VirtualNVIC)
	if !ok {
		return errNotVirtual
	}

	var st NVICState
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("nvic state: %w", err)
	}

	bits := v.PriorityBits()
	for _, s := range st.IRQs {
		if s.IRQ < -14 || s.IRQ >= MaxIRQs {
			return fmt.Errorf("nvic state: irq %d out of range", s.IRQ)
		}
		if int(s.Priority) >= 1<<bits {
			return fmt.Errorf("nvic state: irq %d priority %d exceeds %d priority bits", s.IRQ, s.Priority, bits)
		}
	}

	v.Reset()
	for _, s := range st.IRQs {
		irq := IRQ(s.IRQ)
		v.SetPriority(irq, s.Priority)
		if s.Enabled {
			v.Enable(irq)
		}
		if s.Pending {
			v.SetPending(irq)
		}
		v.SetActive(irq, s.Active)
	}
	return nil
}

// LoadDemoNVICState seeds n with the built-in snapshot.
func LoadDemoNVICState(n NVIC) error {
	return LoadNVICState(n, bytes.NewReader(demoNVICState))
}

// LoadNVICStateFile is LoadNVICState for a path on disk.
func LoadNVICStateFile(n NVIC, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nvic state: %w", err)
	}
	defer f.Close()
	return LoadNVICState(n, f)
}
