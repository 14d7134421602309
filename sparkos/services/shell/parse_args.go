package shell

// parseArgs splits line into words. Single quotes are literal, double quotes
// allow backslash escapes, and a bare backslash escapes the next rune.
func parseArgs(line string) (args []string, ok bool) {
	type state uint8
	const (
		stNone state = iota
		stSingle
		stDouble
		stEscape
	)

	var cur []rune
	st := stNone
	// state to return to after an escaped rune
	resume := stNone

	flush := func() {
		if len(cur) == 0 {
			return
		}
		args = append(args, string(cur))
		cur = cur[:0]
	}

	for _, r := range line {
		switch st {
		case stEscape:
			cur = append(cur, r)
			st = resume
			continue
		case stSingle:
			if r == '\'' {
				st = stNone
				continue
			}
			cur = append(cur, r)
			continue
		case stDouble:
			if r == '"' {
				st = stNone
				continue
			}
			if r == '\\' {
				st, resume = stEscape, stDouble
				continue
			}
			cur = append(cur, r)
			continue
		}

		switch r {
		case '\\':
			st, resume = stEscape, stNone
		case '\'':
			st = stSingle
		case '"':
			st = stDouble
		case ' ', '\t':
			flush()
		default:
			cur = append(cur, r)
		}
	}
	if st != stNone {
		return nil, false
	}
	flush()
	return args, true
}
