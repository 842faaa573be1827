package token

// ScanBasicString scans a `"..."` string, s positioned at the opening
// quote. It returns the decoded content.
func (s *Scanner) ScanBasicString() (string, error) {
	start := s.Pos()
	s.Advance() // opening '"'
	var buf []byte
	for {
		if s.Eof() {
			return "", NewErr(ErrUnterminatedString, start, "missing closing quote")
		}
		c := s.Peek()
		if c == '"' {
			s.Advance()
			return string(buf), nil
		}
		if c == '\n' {
			return "", NewErr(ErrUnterminatedString, start, "raw newline in single-line string")
		}
		if c == '\\' {
			s.Advance()
			dec, err := decodeEscape(s)
			if err != nil {
				return "", err
			}
			buf = append(buf, dec...)
			continue
		}
		buf = append(buf, s.Advance())
	}
}

// ScanLiteralString scans a `'...'` string, s positioned at the opening
// quote. No escapes are processed; content flows through verbatim.
func (s *Scanner) ScanLiteralString() (string, error) {
	start := s.Pos()
	s.Advance() // opening '\''
	var buf []byte
	for {
		if s.Eof() {
			return "", NewErr(ErrUnterminatedString, start, "missing closing quote")
		}
		c := s.Peek()
		if c == '\'' {
			s.Advance()
			return string(buf), nil
		}
		if c == '\n' {
			return "", NewErr(ErrUnterminatedString, start, "raw newline in single-line string")
		}
		buf = append(buf, s.Advance())
	}
}

// ScanMultilineBasicString scans the body of a `"""..."""` string, s
// positioned just after the opening delimiter. Escapes are decoded,
// including the line-continuation rule (a backslash immediately before a
// newline consumes the newline and all following whitespace up to the
// next non-whitespace byte) that spec.md §4.7 calls for as a conformance
// requirement even though the reference implementation omits it
// (see DESIGN.md).
func (s *Scanner) ScanMultilineBasicString() (string, error) {
	trimLeadingNewline(s)
	start := s.Pos()
	var buf []byte
	for !s.Eof() {
		c := s.Peek()
		if c == '"' {
			n := 0
			for !s.Eof() && s.Peek() == '"' {
				s.Advance()
				n++
			}
			if n >= 3 {
				// A raw run of 3+ quotes is never ambiguous: TOML only
				// allows 1-2 literal quotes as content (mlb-quotes), so
				// the run's last 3 quotes are always the close and any
				// leading quotes beyond that are trailing content,
				// regardless of what follows on the line.
				for i := 0; i < n-3; i++ {
					buf = append(buf, '"')
				}
				return string(buf), nil
			}
			for i := 0; i < n; i++ {
				buf = append(buf, '"')
			}
			continue
		}
		if c == '\\' {
			s.Advance()
			if consumed, ok := tryLineContinuation(s); ok {
				_ = consumed
				continue
			}
			dec, err := decodeEscape(s)
			if err != nil {
				return "", err
			}
			buf = append(buf, dec...)
			continue
		}
		buf = append(buf, s.Advance())
	}
	return "", NewErr(ErrUnterminatedString, start, "unterminated multi-line string")
}

// ScanMultilineLiteralString scans the body of a `'''...'''` string, s
// positioned just after the opening delimiter. No escapes.
func (s *Scanner) ScanMultilineLiteralString() (string, error) {
	trimLeadingNewline(s)
	start := s.Pos()
	var buf []byte
	for !s.Eof() {
		c := s.Peek()
		if c == '\'' {
			n := 0
			for !s.Eof() && s.Peek() == '\'' {
				s.Advance()
				n++
			}
			if n >= 3 {
				// See the matching comment in ScanMultilineBasicString:
				// a run of 3+ quotes always closes the string.
				for i := 0; i < n-3; i++ {
					buf = append(buf, '\'')
				}
				return string(buf), nil
			}
			for i := 0; i < n; i++ {
				buf = append(buf, '\'')
			}
			continue
		}
		buf = append(buf, s.Advance())
	}
	return "", NewErr(ErrUnterminatedString, start, "unterminated multi-line string")
}

// trimLeadingNewline discards a newline (or CRLF pair) immediately
// following a multi-line string's opening delimiter, per spec.md §4.7.
func trimLeadingNewline(s *Scanner) {
	if s.Eof() {
		return
	}
	if s.Peek() == '\r' && s.PeekAt(1) == '\n' {
		s.Advance()
		s.Advance()
		return
	}
	if s.Peek() == '\n' {
		s.Advance()
	}
}

// tryLineContinuation consumes a newline (optionally CRLF) and all
// subsequent whitespace, returning ok=true if s was positioned at one.
// s must be positioned just after the backslash.
func tryLineContinuation(s *Scanner) (int, bool) {
	if s.Eof() {
		return 0, false
	}
	isCRLF := s.Peek() == '\r' && s.PeekAt(1) == '\n'
	if !isCRLF && s.Peek() != '\n' {
		return 0, false
	}
	n := 0
	if isCRLF {
		s.Advance()
		n++
	}
	s.Advance() // '\n'
	n++
	for !s.Eof() && isWhitespace(s.Peek()) {
		s.Advance()
		n++
	}
	return n, true
}
