package app

import (
	"io"

	"nvicshell/sparkos/services/term"
)

// console tees shell output to the serial port and the framebuffer terminal.
type console struct {
	serial io.Writer
	term   *term.Service
}

func (c *console) Write(p []byte) (int, error) {
	if c.serial != nil {
		if _, err := c.serial.Write(p); err != nil {
			return 0, err
		}
	}
	return c.term.Write(p)
}

func (c *console) Clear() error {
	if c.serial != nil {
		if _, err := io.WriteString(c.serial, "\x1b[2J\x1b[H"); err != nil {
			return err
		}
	}
	return c.term.Clear()
}
