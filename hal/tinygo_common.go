//go:build tinygo && baremetal && cortexm

package hal

import (
	"machine"
	"time"
)

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart machine.Serialer
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type uartSerial struct {
	uart machine.Serialer
}

// Read returns whatever is buffered, yielding to other goroutines while
// nothing has arrived yet.
func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	if len(p) == 0 {
		return 0, nil
	}
	for s.uart.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	n := 0
	for n < len(p) && s.uart.Buffered() > 0 {
		c, err := s.uart.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

// Write expands LF to CRLF for serial terminals.
func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	for _, c := range p {
		if c == '\n' {
			if err := s.uart.WriteByte('\r'); err != nil {
				return 0, err
			}
		}
		if err := s.uart.WriteByte(c); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
