package shell

func (s *Service) moveLeft() {
	if s.cursor <= 0 {
		return
	}
	_ = s.writeString("\x1b[D")
	s.cursor--
}

func (s *Service) moveRight() {
	if s.cursor >= len(s.line) {
		return
	}
	_ = s.writeString("\x1b[C")
	s.cursor++
}

func (s *Service) home() {
	for s.cursor > 0 {
		s.moveLeft()
	}
}

func (s *Service) end() {
	for s.cursor < len(s.line) {
		s.moveRight()
	}
}

func (s *Service) insertRune(r rune) {
	if s.cursor == len(s.line) {
		s.line = append(s.line, r)
		s.cursor++
		_ = s.writeString(string(r))
		return
	}
	s.line = append(s.line, 0)
	copy(s.line[s.cursor+1:], s.line[s.cursor:])
	s.line[s.cursor] = r
	_ = s.writeString(string(r))
	s.cursor++
	_ = s.redrawFromCursor()
}

func (s *Service) deleteForward() {
	if s.cursor >= len(s.line) {
		return
	}
	s.line = append(s.line[:s.cursor], s.line[s.cursor+1:]...)
	_ = s.redrawFromCursor()
}

func (s *Service) redrawFromCursor() error {
	tail := s.line[s.cursor:]
	if err := s.writeString(string(tail)); err != nil {
		return err
	}
	if err := s.writeString("\x1b[K"); err != nil {
		return err
	}
	for range tail {
		if err := s.writeString("\x1b[D"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) backspace() {
	if len(s.line) == 0 || s.cursor == 0 {
		return
	}
	s.cursor--
	s.line = append(s.line[:s.cursor], s.line[s.cursor+1:]...)

	_ = s.writeString("\x1b[D")
	_ = s.redrawFromCursor()
}

func (s *Service) killLeft() {
	if s.cursor <= 0 {
		return
	}
	s.line = append([]rune{}, s.line[s.cursor:]...)
	s.cursor = 0
	_ = s.redrawLine()
}

func (s *Service) deletePrevWord() {
	if s.cursor <= 0 {
		return
	}
	i := s.cursor
	for i > 0 && s.line[i-1] == ' ' {
		i--
	}
	for i > 0 && s.line[i-1] != ' ' {
		i--
	}
	if i == s.cursor {
		return
	}
	s.line = append(s.line[:i], s.line[s.cursor:]...)
	s.cursor = i
	_ = s.redrawLine()
}

func (s *Service) cancelLine() {
	_ = s.writeString("^C\n")
	s.line = s.line[:0]
	s.cursor = 0
	s.histPos = len(s.history)
	_ = s.prompt()
}

// replaceLine swaps the edit buffer for r with the cursor at the end.
func (s *Service) replaceLine(r []rune) {
	s.line = append(s.line[:0], r...)
	s.cursor = len(s.line)
	_ = s.redrawLine()
}

func (s *Service) insertString(str string) {
	for _, r := range str {
		s.insertRune(r)
	}
}
