package shell

func (s *Service) pushHistory(line string) {
	if n := len(s.history); n == 0 || s.history[n-1] != line {
		s.history = append(s.history, line)
		if len(s.history) > maxHistoryEntries {
			excess := len(s.history) - maxHistoryEntries
			copy(s.history, s.history[excess:])
			s.history = s.history[:maxHistoryEntries]
		}
	}
	s.histPos = len(s.history)
	s.draft = s.draft[:0]
}

func (s *Service) historyPrev() {
	if s.histPos <= 0 {
		return
	}
	if s.histPos == len(s.history) {
		s.draft = append(s.draft[:0], s.line...)
	}
	s.histPos--
	s.replaceLine([]rune(s.history[s.histPos]))
}

func (s *Service) historyNext() {
	if s.histPos >= len(s.history) {
		return
	}
	s.histPos++
	if s.histPos == len(s.history) {
		s.replaceLine(s.draft)
		return
	}
	s.replaceLine([]rune(s.history[s.histPos]))
}
