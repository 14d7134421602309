package main

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"
	"golang.org/x/xerrors"
)

// maxVector bounds SVD interrupt values to what an NVIC can address.
const maxVector = 240

type genCmd struct {
	SVD    string `name:"svd" type:"existingfile" required:"" help:"CMSIS-SVD input file."`
	Series string `name:"series" required:"" help:"Series tag, used to name the table (e.g. stm32f4)."`
	Pkg    string `name:"pkg" default:"irq" help:"Package of the generated file."`
	Out    string `name:"out" short:"o" help:"Output file (default stdout)."`
}

func (g *genCmd) Run() error {
	dev, err := readDevice(g.SVD)
	if err != nil {
		return err
	}
	irqs, err := collectInterrupts(dev)
	if err != nil {
		return err
	}
	src, err := render(g.Pkg, g.Series, filepath.Base(g.SVD), irqs)
	if err != nil {
		return err
	}

	if g.Out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(g.Out, src, 0o644); err != nil {
		return xerrors.Errorf("write %s: %w", g.Out, err)
	}
	return nil
}

type listCmd struct {
	SVD string `name:"svd" type:"existingfile" required:"" help:"CMSIS-SVD input file."`
}

func (l *listCmd) Run() error {
	dev, err := readDevice(l.SVD)
	if err != nil {
		return err
	}
	irqs, err := collectInterrupts(dev)
	if err != nil {
		return err
	}
	return writeList(os.Stdout, irqs)
}

func writeList(w io.Writer, irqs []Interrupt) error {
	for _, irq := range irqs {
		if _, err := fmt.Fprintf(w, "%3d %s\n", irq.Value, irqName(irq.Name)); err != nil {
			return err
		}
	}
	return nil
}

func readDevice(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("open svd: %w", err)
	}
	defer f.Close()
	return decodeDevice(f)
}

// collectInterrupts gathers every peripheral interrupt, derived peripherals
// included, ordered by vector. When several peripherals share a vector the
// first one listed wins.
func collectInterrupts(dev *Device) ([]Interrupt, error) {
	var irqs []Interrupt
	for _, p := range dev.Peripherals {
		for _, irq := range p.Interrupts {
			if irq.Value >= maxVector {
				return nil, xerrors.Errorf("%s: interrupt %s has vector %d", p.Name, irq.Name, irq.Value)
			}
			irqs = append(irqs, irq)
		}
	}

	slices.SortStableFunc(irqs, func(a, b Interrupt) int {
		return cmp.Compare(a.Value, b.Value)
	})

	out := irqs[:0]
	for _, irq := range irqs {
		if len(out) > 0 && irq.Value == out[len(out)-1].Value {
			continue
		}
		out = append(out, irq)
	}
	return out, nil
}

// irqName applies the CMSIS IRQn naming.
func irqName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, "_IRQn") {
		return name
	}
	return name + "_IRQn"
}

// tableName derives the Go identifier from a series tag: "STM32F4" becomes
// stm32f4IRQNames.
func tableName(series string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(series) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String() + "IRQNames"
}

func render(pkg, series, source string, irqs []Interrupt) ([]byte, error) {
	if series == "" || tableName(series) == "IRQNames" {
		return nil, xerrors.Errorf("invalid series %q", series)
	}
	if unicode.IsDigit(rune(tableName(series)[0])) {
		return nil, xerrors.Errorf("series %q does not start with a letter", series)
	}

	var w bytes.Buffer
	fmt.Fprintf(&w, "// Code generated by irqgen from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&w, "package %s\n\n", pkg)
	fmt.Fprintf(&w, "var %s = []string{\n", tableName(series))
	for _, irq := range irqs {
		fmt.Fprintf(&w, "%d: %q,\n", irq.Value, irqName(irq.Name))
	}
	fmt.Fprintln(&w, "}")

	src, err := imports.Process(source+".go", w.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, xerrors.Errorf("format: %w", err)
	}
	return src, nil
}
