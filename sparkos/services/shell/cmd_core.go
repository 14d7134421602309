package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func registerCoreCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "help", Aliases: []string{"?"}, Usage: "help [command]", Desc: "Show available commands.", Run: cmdHelp},
		{Name: "clear", Aliases: []string{"cls"}, Usage: "clear", Desc: "Clear the terminal.", Run: cmdClear},
		{Name: "echo", Usage: "echo [args...]", Desc: "Print arguments.", Run: cmdEcho},
		{Name: "scrollback", Usage: "scrollback [n]", Desc: "Show the last N output lines.", Run: cmdScrollback},
		{Name: "history", Usage: "history", Desc: "Show previous command lines.", Run: cmdHistory},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdHelp(s *Service, args []string) error {
	if len(args) == 0 {
		for _, name := range s.reg.names() {
			cmd, ok := s.reg.resolve(name)
			if !ok {
				continue
			}
			_ = s.printString(fmt.Sprintf("%-10s %s\n", cmd.Name, cmd.Desc))
		}
		return nil
	}
	if len(args) != 1 {
		return errors.New("usage: help [command]")
	}

	cmd, ok := s.reg.resolve(args[0])
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}

	if cmd.Usage != "" {
		_ = s.printString("usage: " + cmd.Usage + "\n")
	}
	if cmd.Desc != "" {
		_ = s.printString(cmd.Desc + "\n")
	}
	if len(cmd.Aliases) > 0 {
		_ = s.printString("aliases: " + strings.Join(cmd.Aliases, ", ") + "\n")
	}
	return nil
}

func cmdClear(s *Service, _ []string) error {
	return s.out.Clear()
}

func cmdEcho(s *Service, args []string) error {
	return s.printString(strings.Join(args, " ") + "\n")
}

func cmdScrollback(s *Service, args []string) error {
	n := 50
	if len(args) >= 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return errors.New("usage: scrollback [n]")
		}
		n = parsed
	}
	start := len(s.scrollback) - n
	if start < 0 {
		start = 0
	}
	if start >= len(s.scrollback) {
		_ = s.writeString("(empty)\n")
		return nil
	}
	// Written without recording, so repeated calls do not feed on themselves.
	for _, ln := range s.scrollback[start:] {
		_ = s.writeString(ln + "\n")
	}
	return nil
}

func cmdHistory(s *Service, _ []string) error {
	for i, ln := range s.history {
		_ = s.printString(fmt.Sprintf("%3d  %s\n", i+1, ln))
	}
	return nil
}
