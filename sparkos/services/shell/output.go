package shell

import (
	"io"
	"strings"
)

const scrollbackMaxLines = 200

// Output is the console the shell writes to.
type Output interface {
	io.Writer
	Clear() error
}

func (s *Service) writeString(str string) error {
	_, err := io.WriteString(s.out, str)
	return err
}

// printString writes command output and records it in the scrollback.
func (s *Service) printString(str string) error {
	if err := s.writeString(str); err != nil {
		return err
	}
	s.addScrollback(str)
	return nil
}

func (s *Service) addScrollback(str string) {
	lines := strings.Split(str, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return
	}
	s.scrollback = append(s.scrollback, lines...)
	if len(s.scrollback) <= scrollbackMaxLines {
		return
	}
	excess := len(s.scrollback) - scrollbackMaxLines
	copy(s.scrollback, s.scrollback[excess:])
	s.scrollback = s.scrollback[:scrollbackMaxLines]
}

// scrollbackWriter adapts printString to io.Writer for commands that render
// through a writer.
type scrollbackWriter struct {
	s *Service
}

func (w scrollbackWriter) Write(p []byte) (int, error) {
	if err := w.s.printString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
