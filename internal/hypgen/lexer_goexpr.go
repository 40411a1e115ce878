package hypgen

import (
	"unicode/utf8"
)

// ReadDeclFrom captures a complete top-level Go declaration starting at
// startPos: everything up to the first newline at zero brace/paren depth.
// Strings, raw strings, rune literals, and comments are skipped so
// delimiters inside them do not count. The lexer position is moved past
// the captured source.
func (l *Lexer) ReadDeclFrom(startPos int) (string, error) {
	if startPos < 0 || startPos >= len(l.source) {
		return "", NewError(l.position(), "invalid start position for declaration capture")
	}

	pos := startPos
	depth := 0

	for pos < len(l.source) {
		ch := l.source[pos]

		switch ch {
		case '{', '(', '[':
			depth++
			pos++
		case '}', ')', ']':
			depth--
			pos++
		case '\n':
			if depth <= 0 {
				goto done
			}
			pos++
		case '"':
			pos++
			for pos < len(l.source) && l.source[pos] != '"' {
				if l.source[pos] == '\\' && pos+1 < len(l.source) {
					pos += 2
				} else {
					pos++
				}
			}
			if pos < len(l.source) {
				pos++
			}
		case '`':
			pos++
			for pos < len(l.source) && l.source[pos] != '`' {
				pos++
			}
			if pos < len(l.source) {
				pos++
			}
		case '\'':
			pos++
			if pos < len(l.source) && l.source[pos] == '\\' {
				pos += 2
			} else if pos < len(l.source) {
				pos++
			}
			if pos < len(l.source) && l.source[pos] == '\'' {
				pos++
			}
		case '/':
			if pos+1 < len(l.source) && l.source[pos+1] == '/' {
				for pos < len(l.source) && l.source[pos] != '\n' {
					pos++
				}
			} else if pos+1 < len(l.source) && l.source[pos+1] == '*' {
				pos += 2
				for pos+1 < len(l.source) && !(l.source[pos] == '*' && l.source[pos+1] == '/') {
					pos++
				}
				if pos+1 < len(l.source) {
					pos += 2
				}
			} else {
				pos++
			}
		default:
			pos++
		}
	}

done:
	if depth > 0 {
		return "", NewError(l.position(), "unterminated declaration: unbalanced delimiters")
	}

	source := l.source[startPos:pos]
	l.resetTo(pos)
	return source, nil
}

// resetTo repositions the lexer at an absolute byte offset, recomputing
// line and column from the start of the source.
func (l *Lexer) resetTo(pos int) {
	l.line = 1
	l.column = 1
	for i := 0; i < pos && i < len(l.source); i++ {
		if l.source[i] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}

	l.pos = pos
	l.readPos = pos
	l.ch = 0
	l.column-- // readChar will advance onto pos and restore the column
	l.readChar()
}

// ReadBalancedParensFrom reads balanced paren content from startPos, which
// must point to the opening '('. Used for (expr), %(expr) and ?(expr) splices.
func (l *Lexer) ReadBalancedParensFrom(startPos int) (string, error) {
	return l.ReadBalancedFrom(startPos, '(', ')')
}

// ReadBalancedBracketsFrom reads balanced bracket content from startPos, which
// must point to the opening '['. Used for [toggle] and name=[expr] attributes.
func (l *Lexer) ReadBalancedBracketsFrom(startPos int) (string, error) {
	return l.ReadBalancedFrom(startPos, '[', ']')
}

// ReadBalancedFrom reads content between a balanced open/close delimiter pair
// starting at startPos, skipping over Go string, raw string, and character
// literals so delimiters inside them do not count.
func (l *Lexer) ReadBalancedFrom(startPos int, open, close byte) (string, error) {
	if startPos < 0 || startPos >= len(l.source) || l.source[startPos] != open {
		return "", NewErrorf(l.position(), "invalid start position for balanced %q", string(open))
	}

	contentStart := startPos + 1
	pos := contentStart
	depth := 1

	for pos < len(l.source) && depth > 0 {
		ch := l.source[pos]

		switch ch {
		case open:
			depth++
			pos++
		case close:
			depth--
			if depth > 0 {
				pos++
			}
		case '"':
			// Skip string literal
			pos++
			for pos < len(l.source) && l.source[pos] != '"' {
				if l.source[pos] == '\\' && pos+1 < len(l.source) {
					pos += 2 // skip escape sequence
				} else {
					pos++
				}
			}
			if pos < len(l.source) {
				pos++ // skip closing "
			}
		case '`':
			// Skip raw string literal
			pos++
			for pos < len(l.source) && l.source[pos] != '`' {
				pos++
			}
			if pos < len(l.source) {
				pos++ // skip closing `
			}
		case '\'':
			// Skip character literal
			pos++
			if pos < len(l.source) && l.source[pos] == '\\' {
				pos += 2 // skip escape
			} else if pos < len(l.source) {
				pos++ // skip char
			}
			if pos < len(l.source) && l.source[pos] == '\'' {
				pos++ // skip closing '
			}
		default:
			pos++
		}
	}

	if depth != 0 {
		return "", NewErrorf(l.position(), "unterminated expression: unmatched %q", string(open))
	}

	content := l.source[contentStart:pos]

	// Update lexer position to after the closing delimiter
	l.pos = pos
	l.readPos = pos + 1
	if l.readPos <= len(l.source) {
		r, _ := utf8.DecodeRuneInString(l.source[pos:])
		l.ch = r
	} else {
		l.ch = 0
	}

	// Calculate correct line/column from the start of the source.
	// We need to recalculate from scratch because the lexer may have peeked ahead
	// and l.column could be in an inconsistent state.
	lineStart := 0
	lineNum := 1
	for i := 0; i < startPos; i++ {
		if l.source[i] == '\n' {
			lineStart = i + 1
			lineNum++
		}
	}

	// Scan from lineStart to pos to get correct line and column
	l.line = lineNum
	l.column = 1
	for i := lineStart; i < pos && i < len(l.source); i++ {
		if l.source[i] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}

	l.readChar() // advance past the closing delimiter and update column

	return content, nil
}
