package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const testSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>STM32F401</name>
  <series>STM32F4</series>
  <cpu>
    <name>CM4</name>
    <nvicPrioBits>4</nvicPrioBits>
  </cpu>
  <peripherals>
    <peripheral>
      <name>EXTI</name>
      <interrupt>
        <name>EXTI1</name>
        <description>EXTI Line1 interrupt</description>
        <value>7</value>
      </interrupt>
      <interrupt>
        <name>EXTI0</name>
        <description>EXTI Line0 interrupt</description>
        <value>0x6</value>
      </interrupt>
    </peripheral>
    <peripheral>
      <name>WWDG</name>
      <interrupt>
        <name>WWDG</name>
        <value>0</value>
      </interrupt>
    </peripheral>
    <peripheral derivedFrom="TIM1">
      <name>TIM9</name>
      <interrupt>
        <name>TIM1_BRK_TIM9</name>
        <value>24</value>
      </interrupt>
    </peripheral>
    <peripheral>
      <name>TIM1</name>
      <interrupt>
        <name>TIM1_BRK_TIM9_DUP</name>
        <value>24</value>
      </interrupt>
    </peripheral>
  </peripherals>
</device>
`

func decodeTest(t *testing.T) *Device {
	t.Helper()
	is := is.New(t)
	dev, err := decodeDevice(strings.NewReader(testSVD))
	is.NoErr(err)
	return dev
}

func TestDecodeDevice(t *testing.T) {
	is := is.New(t)
	dev := decodeTest(t)

	is.Equal(dev.Name, "STM32F401")
	is.Equal(dev.Series, "STM32F4")
	is.Equal(dev.CPU.NVICPriorityBits, Integer(4))
	is.Equal(len(dev.Peripherals), 4)
	is.Equal(dev.Peripherals[0].Interrupts[1].Value, Integer(6))
	is.Equal(dev.Peripherals[2].DerivedFrom, "TIM1")
}

func TestDecodeBadInteger(t *testing.T) {
	is := is.New(t)
	_, err := decodeDevice(strings.NewReader(`<device><cpu><nvicPrioBits>0xZZ</nvicPrioBits></cpu></device>`))
	is.True(err != nil)
}

func TestCollectInterrupts(t *testing.T) {
	is := is.New(t)
	irqs, err := collectInterrupts(decodeTest(t))
	is.NoErr(err)

	var got []string
	for _, irq := range irqs {
		got = append(got, irq.Name)
	}
	is.Equal(strings.Join(got, ","), "WWDG,EXTI0,EXTI1,TIM1_BRK_TIM9")
}

func TestCollectInterruptsOutOfRange(t *testing.T) {
	is := is.New(t)
	dev := &Device{Peripherals: []Peripheral{{
		Name:       "BAD",
		Interrupts: []Interrupt{{Name: "BAD", Value: 240}},
	}}}
	_, err := collectInterrupts(dev)
	is.True(err != nil)
}

func TestIRQName(t *testing.T) {
	is := is.New(t)
	is.Equal(irqName("WWDG"), "WWDG_IRQn")
	is.Equal(irqName(" EXTI0 "), "EXTI0_IRQn")
	is.Equal(irqName("USART1_IRQn"), "USART1_IRQn")
}

func TestTableName(t *testing.T) {
	is := is.New(t)
	is.Equal(tableName("STM32F4"), "stm32f4IRQNames")
	is.Equal(tableName("stm32-g0"), "stm32g0IRQNames")
}

func TestRender(t *testing.T) {
	is := is.New(t)
	irqs, err := collectInterrupts(decodeTest(t))
	is.NoErr(err)

	src, err := render("irq", "STM32F4", "STM32F401.svd", irqs)
	is.NoErr(err)

	out := string(src)
	is.True(strings.HasPrefix(out, "// Code generated by irqgen from STM32F401.svd; DO NOT EDIT.\n"))
	is.True(strings.Contains(out, "package irq\n"))
	is.True(strings.Contains(out, "var stm32f4IRQNames = []string{\n"))
	is.True(regexp.MustCompile(`\n\t0: +"WWDG_IRQn",\n`).MatchString(out))
	is.True(regexp.MustCompile(`\n\t24: +"TIM1_BRK_TIM9_IRQn",\n`).MatchString(out))
	is.True(!strings.Contains(out, "DUP"))
}

func TestRenderBadSeries(t *testing.T) {
	is := is.New(t)
	_, err := render("irq", "--", "x.svd", nil)
	is.True(err != nil)
	_, err = render("irq", "32f4", "x.svd", nil)
	is.True(err != nil)
}

func TestWriteList(t *testing.T) {
	is := is.New(t)
	irqs, err := collectInterrupts(decodeTest(t))
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(writeList(&buf, irqs))
	is.Equal(buf.String(), "  0 WWDG_IRQn\n  6 EXTI0_IRQn\n  7 EXTI1_IRQn\n 24 TIM1_BRK_TIM9_IRQn\n")
}
