//go:build tinygo && baremetal && cortexm

package hal

import "machine"

type tinyGoHAL struct {
	logger *uartLogger
	serial *uartSerial
	t      *tinyGoTime
	nvic   *cortexMNVIC
}

// New returns the HAL for a bare-metal Cortex-M board.
//
// The shell and the log share the board's default serial port (machine.Serial),
// 115200 8N1.
func New() HAL {
	uart := machine.Serial
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		serial: &uartSerial{uart: uart},
		t:      newTinyGoTime(),
		nvic:   newCortexMNVIC(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return nullDisplay{} }
func (h *tinyGoHAL) Input() Input     { return nullInput{} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHAL) NVIC() NVIC       { return h.nvic }
