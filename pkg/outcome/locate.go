package outcome

// LookbackLines bounds how far from the end of the agent's reply we search
// for the trailing JSON object. Anything above this window is prose.
const LookbackLines = 5

// LocateBlock returns the substring of text most likely to be a single
// trailing JSON object, scanning only the last LookbackLines lines.
//
// Candidates are balanced top-level brace pairs; when the window holds more
// than one, the candidate closest to the end of the text wins, so an object
// that spans the very end of the reply always takes priority. Brace matching
// tracks nesting depth and ignores braces inside JSON strings.
func LocateBlock(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	window := text[lookbackOffset(text):]

	start, end := -1, -1
	for i := 0; i < len(window); {
		if window[i] == '{' {
			if j, ok := matchBrace(window, i); ok {
				start, end = i, j
				i = j + 1
				continue
			}
		}
		i++
	}

	if start < 0 {
		return "", false
	}
	return window[start : end+1], true
}

// lookbackOffset returns the byte offset where the lookback window begins:
// the position just after the LookbackLines'th newline from the end.
func lookbackOffset(text string) int {
	seen := 0
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '\n' {
			seen++
			if seen == LookbackLines {
				return i + 1
			}
		}
	}
	return 0
}

// matchBrace finds the closing brace matching the opener at start.
// It tracks nesting depth and skips string literals, including escaped
// quotes inside them.
func matchBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
