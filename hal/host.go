//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	serial Serial
	nvic   *VirtualNVIC
}

// New returns a host HAL implementation.
//
// The interrupt controller is an empty software model; seed it with
// LoadNVICState once its priority width is set.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		fb:     newHostFramebuffer(320, 320),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		serial: &hostSerial{r: os.Stdin, w: os.Stdout},
		nvic:   NewVirtualNVIC(DefaultPriorityBits),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) NVIC() NVIC       { return h.nvic }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
