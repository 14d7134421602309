package shell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"nvicshell/hal"
	"nvicshell/sparkos/irq"
)

const (
	maxLineRunes      = 256
	maxHistoryEntries = 32
)

// Config wires a Service to its console and interrupt controller.
type Config struct {
	Out    Output
	Log    hal.Logger
	NVIC   hal.NVIC
	Family *irq.Family
}

// Service is an interactive line shell.
//
// It is not safe for concurrent use: feed it from one goroutine.
type Service struct {
	out Output
	log hal.Logger
	reg *registry

	nvic *irq.Command

	line    []rune
	cursor  int
	utf8buf []byte

	history []string
	histPos int
	draft   []rune

	scrollback []string

	ticks uint64
}

func New(cfg Config) (*Service, error) {
	if cfg.Out == nil {
		return nil, fmt.Errorf("shell: no output")
	}
	if cfg.NVIC == nil || cfg.Family == nil {
		return nil, fmt.Errorf("shell: no interrupt controller")
	}
	s := &Service{
		out:  cfg.Out,
		log:  cfg.Log,
		nvic: irq.NewCommand(cfg.NVIC, cfg.Family),
	}
	if err := s.initRegistry(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start prints the banner and the first prompt.
func (s *Service) Start() {
	_ = s.writeString("\x1b[0m")
	_ = s.writeString("\x1b[38;5;39mnvicshell\x1b[0m " + s.nvic.Family().Series + "\n")
	_ = s.writeString("Type `help` or `nvic_irq`.\n\n")
	_ = s.prompt()
}

// SetUptime records the latest base tick sequence number.
func (s *Service) SetUptime(ticks uint64) { s.ticks = ticks }

// HandleKey feeds one keyboard event through the VT100 input path.
func (s *Service) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if b := keySequence(ev); len(b) > 0 {
		s.HandleInput(b)
	}
}

func keySequence(ev hal.KeyEvent) []byte {
	switch ev.Code {
	case hal.KeyUp:
		return []byte("\x1b[A")
	case hal.KeyDown:
		return []byte("\x1b[B")
	case hal.KeyRight:
		return []byte("\x1b[C")
	case hal.KeyLeft:
		return []byte("\x1b[D")
	case hal.KeyHome:
		return []byte("\x1b[H")
	case hal.KeyEnd:
		return []byte("\x1b[F")
	case hal.KeyDelete:
		return []byte("\x1b[3~")
	case hal.KeyEnter:
		return []byte{'\n'}
	case hal.KeyBackspace:
		return []byte{0x7f}
	case hal.KeyTab:
		return []byte{'\t'}
	case hal.KeyEscape:
		return nil
	}
	if ev.Rune != 0 {
		return []byte(string(ev.Rune))
	}
	return nil
}

// HandleInput processes raw terminal bytes: printable text, control keys and
// VT100 escape sequences. Partial sequences and runes are buffered until the
// rest arrives.
func (s *Service) HandleInput(b []byte) {
	s.utf8buf = append(s.utf8buf, b...)
	b = s.utf8buf

	for len(b) > 0 {
		if b[0] == 0x1b {
			n, act, ok := parseEscape(b)
			if !ok {
				s.utf8buf = append(s.utf8buf[:0], b...)
				return
			}
			b = b[n:]
			s.handleEscape(act)
			continue
		}

		switch b[0] {
		case '\r':
			b = b[1:]
		case '\n':
			b = b[1:]
			s.submit()
		case 0x7f, 0x08:
			b = b[1:]
			s.backspace()
		case '\t':
			b = b[1:]
			s.tab()
		case 0x01: // Ctrl+A
			b = b[1:]
			s.home()
		case 0x03: // Ctrl+C
			b = b[1:]
			s.cancelLine()
		case 0x05: // Ctrl+E
			b = b[1:]
			s.end()
		case 0x0c: // Ctrl+L
			b = b[1:]
			_ = s.out.Clear()
			_ = s.redrawLine()
		case 0x15: // Ctrl+U
			b = b[1:]
			s.killLeft()
		case 0x17: // Ctrl+W
			b = b[1:]
			s.deletePrevWord()
		default:
			if !utf8.FullRune(b) {
				s.utf8buf = append(s.utf8buf[:0], b...)
				return
			}
			r, sz := utf8.DecodeRune(b)
			b = b[sz:]
			if r == utf8.RuneError && sz == 1 {
				continue
			}
			if r < 0x20 || len(s.line) >= maxLineRunes {
				continue
			}
			s.insertRune(r)
		}
	}
	s.utf8buf = s.utf8buf[:0]
}

func (s *Service) handleEscape(act escAction) {
	switch act {
	case escUp:
		s.historyPrev()
	case escDown:
		s.historyNext()
	case escLeft:
		s.moveLeft()
	case escRight:
		s.moveRight()
	case escHome:
		s.home()
	case escEnd:
		s.end()
	case escDelete:
		s.deleteForward()
	}
}

func (s *Service) submit() {
	_ = s.writeString("\n")
	line := string(s.line)
	s.line = s.line[:0]
	s.cursor = 0
	s.ExecLine(line)
	_ = s.prompt()
}

// Submit runs a line that arrived already edited (line-oriented consoles)
// and prints the next prompt.
func (s *Service) Submit(line string) {
	s.ExecLine(line)
	_ = s.prompt()
}

// ExecLine runs one command line without touching the edit buffer or
// printing a prompt.
func (s *Service) ExecLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	s.pushHistory(line)

	args, ok := parseArgs(line)
	if !ok {
		_ = s.printString("error: unterminated quote\n")
		return
	}
	if len(args) == 0 {
		return
	}

	cmd, found := s.reg.resolve(args[0])
	if !found {
		_ = s.printString("unknown command: " + args[0] + "\n")
		return
	}
	if err := cmd.Run(s, args[1:]); err != nil {
		_ = s.printString("error: " + err.Error() + "\n")
	}
}

func (s *Service) prompt() error {
	return s.writeString("\x1b[38;5;46m>\x1b[0m ")
}

// redrawLine reprints the prompt and the edit buffer on the current row and
// restores the cursor column.
func (s *Service) redrawLine() error {
	if err := s.writeString("\r\x1b[K"); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}
	if err := s.writeString(string(s.line)); err != nil {
		return err
	}
	for i := len(s.line); i > s.cursor; i-- {
		if err := s.writeString("\x1b[D"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
