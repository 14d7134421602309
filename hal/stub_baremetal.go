//go:build tinygo && baremetal && cortexm

package hal

// Boards without a panel run the shell on the UART only.
type nullDisplay struct{}

func (nullDisplay) Framebuffer() Framebuffer { return nil }

type nullInput struct{}

func (nullInput) Keyboard() Keyboard { return nil }
