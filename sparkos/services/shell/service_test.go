package shell

import (
	"bytes"
	"strings"
	"testing"

	"nvicshell/hal"
	"nvicshell/sparkos/irq"
)

type testOutput struct {
	bytes.Buffer
	clears int
}

func (o *testOutput) Clear() error {
	o.clears++
	o.Reset()
	return nil
}

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func testFamily() *irq.Family {
	return &irq.Family{
		Series:   "test",
		Core:     irq.CoreM4,
		PrioBits: 4,
		IRQs:     []string{"WWDG_IRQn", "PVD_IRQn", "RTC_IRQn", "FLASH_IRQn"},
	}
}

func newTestService(t *testing.T) (*Service, *testOutput) {
	t.Helper()
	s, out, _, _ := newTestServiceNVIC(t)
	return s, out
}

func newTestServiceNVIC(t *testing.T) (*Service, *testOutput, *hal.VirtualNVIC, *testLogger) {
	t.Helper()
	out := &testOutput{}
	log := &testLogger{}
	nvic := hal.NewVirtualNVIC(4)
	s, err := New(Config{Out: out, Log: log, NVIC: nvic, Family: testFamily()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, out, nvic, log
}

func TestNew_RequiresOutputAndNVIC(t *testing.T) {
	if _, err := New(Config{NVIC: hal.NewVirtualNVIC(4), Family: testFamily()}); err == nil {
		t.Fatalf("New without output: err=nil")
	}
	if _, err := New(Config{Out: &testOutput{}}); err == nil {
		t.Fatalf("New without controller: err=nil")
	}
}

func TestShell_NVICSet(t *testing.T) {
	s, out, nvic, _ := newTestServiceNVIC(t)
	nvic.Enable(2)

	s.HandleInput([]byte("nvic_irq set 2 5\r\n"))

	if got := nvic.Priority(2); got != 5 {
		t.Fatalf("Priority(2)=%d; want 5", got)
	}
	if !contains(out.String(), "The interrupt priority for IRQ number 2 set to 5\n") {
		t.Fatalf("out=%q; want confirmation", out.String())
	}

	out.Reset()
	s.ExecLine("nvic_irq priority")
	if !contains(out.String(), "  2 RTC_IRQn") || !contains(out.String(), "    05\n") {
		t.Fatalf("priority report=%q", out.String())
	}
}

func TestShell_NVICErrorsAreNotReprinted(t *testing.T) {
	s, out, _, log := newTestServiceNVIC(t)

	s.ExecLine("nvic_irq set 9 1")
	if contains(out.String(), "error:") {
		t.Fatalf("out=%q; nvic_irq errors must not be reprinted", out.String())
	}
	if !contains(out.String(), "IRQ must be") {
		t.Fatalf("out=%q; want range lines", out.String())
	}
	if len(log.lines) != 1 {
		t.Fatalf("log=%q; want one line", log.lines)
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	s, out := newTestService(t)
	s.ExecLine("frobnicate")
	if got := out.String(); got != "unknown command: frobnicate\n" {
		t.Fatalf("out=%q", got)
	}
}

func TestShell_CommandError(t *testing.T) {
	s, out := newTestService(t)
	s.ExecLine("uname -x")
	if got := out.String(); got != "error: usage: uname [-a]\n" {
		t.Fatalf("out=%q", got)
	}
	out.Reset()
	s.ExecLine(`echo "open`)
	if got := out.String(); got != "error: unterminated quote\n" {
		t.Fatalf("out=%q", got)
	}
}

func TestShell_EchoAndScrollback(t *testing.T) {
	s, out := newTestService(t)
	s.ExecLine(`echo "hello world"`)
	s.ExecLine("echo two")
	if got := out.String(); got != "hello world\ntwo\n" {
		t.Fatalf("out=%q", got)
	}

	out.Reset()
	s.ExecLine("scrollback 1")
	if got := out.String(); got != "two\n" {
		t.Fatalf("scrollback 1=%q; want %q", got, "two\n")
	}
}

func TestShell_Clear(t *testing.T) {
	s, out := newTestService(t)
	s.ExecLine("clear")
	if out.clears != 1 {
		t.Fatalf("clears=%d; want 1", out.clears)
	}
}

func TestShell_Chip(t *testing.T) {
	s, out := newTestService(t)
	s.ExecLine("chip")
	for _, want := range []string{"series:   test\n", "priobits: 4\n", "vectors:  4\n"} {
		if !contains(out.String(), want) {
			t.Fatalf("chip=%q; want %q", out.String(), want)
		}
	}
}

func TestShell_LineEditing(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		want string
	}{
		{name: "backspace", in: "echo abx\x7fc", want: "echo abc"},
		{name: "left insert", in: "echo ac\x1b[Db", want: "echo abc"},
		{name: "home", in: "cho\x1b[He", want: "echo"},
		{name: "ctrl-a ctrl-e", in: "cho\x01e\x05!", want: "echo!"},
		{name: "delete", in: "echo abc\x1b[D\x1b[3~", want: "echo ab"},
		{name: "kill left", in: "junk\x15echo", want: "echo"},
		{name: "delete word", in: "echo one two\x17", want: "echo one "},
		{name: "control bytes ignored", in: "ec\x02ho", want: "echo"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestService(t)
			s.HandleInput([]byte(tc.in))
			if got := string(s.line); got != tc.want {
				t.Fatalf("line=%q; want %q", got, tc.want)
			}
		})
	}
}

func TestShell_SplitInput(t *testing.T) {
	s, _ := newTestService(t)

	// A rune and an escape sequence arriving in pieces.
	s.HandleInput([]byte("echo \xc3"))
	s.HandleInput([]byte("\xa9!\x1b["))
	s.HandleInput([]byte("D"))
	s.HandleInput([]byte("x"))
	if got := string(s.line); got != "echo éx!" {
		t.Fatalf("line=%q; want %q", got, "echo éx!")
	}
}

func TestShell_CtrlC(t *testing.T) {
	s, out := newTestService(t)
	s.HandleInput([]byte("nvic_irq\x03"))
	if len(s.line) != 0 {
		t.Fatalf("line=%q after Ctrl+C; want empty", string(s.line))
	}
	if contains(out.String(), "Usage") || contains(out.String(), "IRQ name") {
		t.Fatalf("Ctrl+C ran the line: %q", out.String())
	}
}

func TestShell_History(t *testing.T) {
	s, _ := newTestService(t)
	s.HandleInput([]byte("echo one\n"))
	s.HandleInput([]byte("echo two\n"))
	s.HandleInput([]byte("echo tw"))

	s.HandleInput([]byte("\x1b[A"))
	if got := string(s.line); got != "echo two" {
		t.Fatalf("up=%q; want %q", got, "echo two")
	}
	s.HandleInput([]byte("\x1b[A\x1b[A"))
	if got := string(s.line); got != "echo one" {
		t.Fatalf("up up up=%q; want %q", got, "echo one")
	}
	s.HandleInput([]byte("\x1b[B\x1b[B"))
	if got := string(s.line); got != "echo tw" {
		t.Fatalf("down to draft=%q; want %q", got, "echo tw")
	}
}

func TestShell_HistoryBounded(t *testing.T) {
	s, _ := newTestService(t)
	for i := 0; i < maxHistoryEntries+10; i++ {
		s.ExecLine("echo " + strings.Repeat("x", i+1))
	}
	if len(s.history) != maxHistoryEntries {
		t.Fatalf("history=%d; want %d", len(s.history), maxHistoryEntries)
	}
	if last := s.history[len(s.history)-1]; last != "echo "+strings.Repeat("x", maxHistoryEntries+10) {
		t.Fatalf("last history=%q", last)
	}
}

func TestShell_HandleKey(t *testing.T) {
	s, _ := newTestService(t)
	for _, ev := range []hal.KeyEvent{
		{Rune: 'e', Press: true},
		{Rune: 'c', Press: true},
		{Rune: 'x', Press: true},
		{Code: hal.KeyBackspace, Press: true},
		{Rune: 'h', Press: true},
		{Rune: 'h', Press: false},
		{Rune: 'o', Press: true},
		{Code: hal.KeyLeft, Press: true},
		{Code: hal.KeyEnd, Press: true},
	} {
		s.HandleKey(ev)
	}
	if got := string(s.line); got != "echo" {
		t.Fatalf("line=%q; want %q", got, "echo")
	}
}

func TestRegistry_Duplicates(t *testing.T) {
	r := newRegistry()
	noop := func(*Service, []string) error { return nil }
	if err := r.register(command{Name: "a", Aliases: []string{"b"}, Run: noop}); err != nil {
		t.Fatalf("register a: %v", err)
	}
	tcs := []command{
		{Name: "a", Run: noop},
		{Name: "c", Aliases: []string{"b"}, Run: noop},
		{Name: "", Run: noop},
		{Name: "d"},
	}
	for _, cmd := range tcs {
		if err := r.register(cmd); err == nil {
			t.Fatalf("register(%+v) err=nil; want error", cmd.Name)
		}
	}
	if cmd, ok := r.resolve("b"); !ok || cmd.Name != "a" {
		t.Fatalf("resolve(b)=%q,%v; want a", cmd.Name, ok)
	}
}

func TestShell_Submit(t *testing.T) {
	s, out := newTestService(t)
	s.Submit("echo hi")
	if got := out.String(); !strings.HasPrefix(got, "hi\n") || !contains(got, ">") {
		t.Fatalf("out=%q; want output then prompt", got)
	}
}

func TestShell_Uptime(t *testing.T) {
	s, out := newTestService(t)
	s.SetUptime(1234)
	s.ExecLine("uptime")
	if got := out.String(); got != "up 1234 ticks\n" {
		t.Fatalf("uptime=%q", got)
	}
}
