package shell

import (
	"strings"

	"nvicshell/sparkos/irq"
)

const (
	popupBGANSI    = "\x1b[48;5;238m"
	popupFGANSI    = "\x1b[38;5;255m"
	popupResetANSI = "\x1b[0m"
)

type completionMode uint8

const (
	completionNone completionMode = iota
	completionCommand
	completionArg
)

// completionContext splits the text before the cursor into the command name,
// the token under the cursor and the token's position.
func (s *Service) completionContext() (mode completionMode, cmd string, token string) {
	if s.cursor != len(s.line) || s.cursor == 0 {
		return completionNone, "", ""
	}
	text := string(s.line[:s.cursor])
	fields := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	switch {
	case len(fields) == 0:
		return completionNone, "", ""
	case len(fields) == 1 && !trailingSpace:
		return completionCommand, "", fields[0]
	case len(fields) == 1 && trailingSpace:
		return completionArg, fields[0], ""
	case len(fields) == 2 && !trailingSpace:
		return completionArg, fields[0], fields[1]
	}
	return completionNone, "", ""
}

// argCandidates returns the values the first argument of cmd can take.
func (s *Service) argCandidates(cmd string) []string {
	c, ok := s.reg.resolve(cmd)
	if !ok {
		return nil
	}
	switch c.Name {
	case "help":
		return s.reg.names()
	case irq.CommandName:
		return irq.Subcommands()
	}
	return nil
}

func (s *Service) completionMatches() (mode completionMode, token string, matches []string) {
	mode, cmd, token := s.completionContext()
	switch mode {
	case completionCommand:
		return mode, token, s.reg.matches(token)
	case completionArg:
		for _, cand := range s.argCandidates(cmd) {
			if strings.HasPrefix(cand, token) {
				matches = append(matches, cand)
			}
		}
		return mode, token, matches
	}
	return completionNone, "", nil
}

// tab completes the token under the cursor to the longest common prefix of
// its candidates and lists them when more than one remains.
func (s *Service) tab() {
	_, token, matches := s.completionMatches()
	if len(matches) == 0 {
		return
	}

	common := matches[0]
	for _, m := range matches[1:] {
		common = commonPrefix(common, m)
	}
	if len(common) > len(token) {
		s.insertString(common[len(token):])
	}

	if len(matches) == 1 {
		s.insertString(" ")
		return
	}

	_ = s.writeString("\n")
	_ = s.writeCompletionPopup(matches)
	_ = s.redrawLine()
}

func (s *Service) writeCompletionPopup(items []string) error {
	if len(items) == 0 {
		return nil
	}

	maxPopupRows := 4
	maxLen := 0
	for _, it := range items {
		n := len([]rune(it))
		if n > maxLen {
			maxLen = n
		}
	}
	if maxLen > 18 {
		maxLen = 18
	}
	colW := maxLen + 2
	if colW < 8 {
		colW = 8
	}

	const termColsApprox = 53
	cols := (termColsApprox - 2) / colW
	if cols < 1 {
		cols = 1
	}

	needRows := (len(items) + cols - 1) / cols
	if needRows > maxPopupRows {
		needRows = maxPopupRows
	}

	capItems := needRows * cols
	if capItems < len(items) {
		items = append(items[:capItems-1:capItems-1], "...")
	}

	boxCols := cols*colW + 2

	for row := 0; row < needRows; row++ {
		line := []rune(strings.Repeat(" ", boxCols))
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(items) {
				break
			}
			it := []rune(items[idx])
			if len(it) > maxLen {
				it = it[:maxLen]
			}
			start := 1 + col*colW
			copy(line[start:start+len(it)], it)
		}

		if err := s.writeString(popupBGANSI + popupFGANSI + string(line) + popupResetANSI + "\n"); err != nil {
			return err
		}
	}
	return nil
}
