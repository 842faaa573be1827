package parse

import (
	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/token"
)

// parseValue dispatches on the first byte of a value, per the value
// grammar in spec.md §4.6, grounded on the reference parser's
// parse_value. Date/time literals are distinguished from bare numbers by
// a fixed-width lookahead before committing to either grammar.
func (p *Parser) parseValue() (*ir.Value, error) {
	s := p.s
	if s.Eof() {
		return nil, token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected a value")
	}
	pos := s.Pos()
	c := s.Peek()

	switch {
	case c == '"':
		if s.HasPrefix(`"""`) {
			s.AdvanceN(3)
			str, err := s.ScanMultilineBasicString()
			if err != nil {
				return nil, err
			}
			return ir.NewString(str, pos), nil
		}
		str, err := s.ScanBasicString()
		if err != nil {
			return nil, err
		}
		return ir.NewString(str, pos), nil

	case c == '\'':
		if s.HasPrefix(`'''`) {
			s.AdvanceN(3)
			str, err := s.ScanMultilineLiteralString()
			if err != nil {
				return nil, err
			}
			return ir.NewString(str, pos), nil
		}
		str, err := s.ScanLiteralString()
		if err != nil {
			return nil, err
		}
		return ir.NewString(str, pos), nil

	case c == '[':
		return p.parseArray(pos)

	case c == '{':
		return p.parseInlineTable(pos)

	case s.HasPrefix("true") || s.HasPrefix("false"):
		b, err := s.ScanBoolean()
		if err != nil {
			return nil, err
		}
		return ir.NewBoolean(b, pos), nil

	case c == 'i' || c == 'n':
		n, err := s.ScanNumber()
		if err != nil {
			return nil, err
		}
		return ir.NewFloat(n.Float, pos), nil

	case token.IsDigit(c) || c == '+' || c == '-':
		if token.IsDigit(c) && s.LooksLikeDate() {
			dt, err := s.ScanDateTime()
			if err != nil {
				return nil, err
			}
			return ir.NewDateTime(dt, pos), nil
		}
		if token.IsDigit(c) && s.LooksLikeTimeOnly() {
			dt, err := s.ScanDateTime()
			if err != nil {
				return nil, err
			}
			return ir.NewDateTime(dt, pos), nil
		}
		n, err := s.ScanNumber()
		if err != nil {
			return nil, err
		}
		if n.IsFloat {
			return ir.NewFloat(n.Float, pos), nil
		}
		return ir.NewInteger(n.Int, pos), nil

	default:
		return nil, token.NewErr(token.ErrUnexpectedToken, pos, "unexpected byte %q", c)
	}
}

// parseArray parses `[ value, value, ... ]`, s positioned at the
// opening '['. Arrays may span newlines and carry comments freely
// between elements, per spec.md §4.6.
func (p *Parser) parseArray(start token.Pos) (*ir.Value, error) {
	s := p.s
	if err := p.enterNesting(start); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	s.Advance() // '['
	arr := &ir.Array{}
	for {
		p.skipArrayWhitespace()
		if s.Eof() {
			return nil, token.NewErr(token.ErrUnexpectedToken, start, "unterminated array")
		}
		if s.Peek() == ']' {
			s.Advance()
			return ir.NewArray(arr, start), nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		p.skipArrayWhitespace()
		if s.Eof() {
			return nil, token.NewErr(token.ErrUnexpectedToken, start, "unterminated array")
		}
		if s.Peek() == ',' {
			s.Advance()
			continue
		}
		if s.Peek() == ']' {
			s.Advance()
			return ir.NewArray(arr, start), nil
		}
		return nil, token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected ',' or ']'")
	}
}

// skipArrayWhitespace skips whitespace, newlines and comments, all of
// which are permitted between array elements.
func (p *Parser) skipArrayWhitespace() {
	s := p.s
	for {
		s.SkipWhitespaceIncludingNewlines()
		if !s.Eof() && s.Peek() == '#' {
			s.SkipLineComment()
			continue
		}
		break
	}
}

// parseInlineTable parses `{ key = value, ... }`, s positioned at the
// opening '{'. Inline tables are single-line and frozen once closed: no
// later header or dotted key may extend them (spec.md §4.6).
func (p *Parser) parseInlineTable(start token.Pos) (*ir.Value, error) {
	s := p.s
	if err := p.enterNesting(start); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	s.Advance() // '{'
	t := ir.NewTable()
	s.SkipWhitespaceExcludingNewlines()
	if !s.Eof() && s.Peek() == '}' {
		s.Advance()
		t.Freeze()
		return ir.NewTableValue(t, start), nil
	}
	for {
		s.SkipWhitespaceExcludingNewlines()
		path, err := p.parseDottedKey()
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			return nil, token.NewErr(token.ErrEmptyKey, s.Pos(), "expected a key")
		}
		s.SkipWhitespaceExcludingNewlines()
		if s.Eof() || s.Peek() != '=' {
			return nil, token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected '='")
		}
		s.Advance()
		s.SkipWhitespaceExcludingNewlines()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.assign(t, path, v, start); err != nil {
			return nil, err
		}
		s.SkipWhitespaceExcludingNewlines()
		if s.Eof() {
			return nil, token.NewErr(token.ErrUnexpectedToken, start, "unterminated inline table")
		}
		if s.Peek() == ',' {
			s.Advance()
			continue
		}
		if s.Peek() == '}' {
			s.Advance()
			t.Freeze()
			return ir.NewTableValue(t, start), nil
		}
		return nil, token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected ',' or '}'")
	}
}

func (p *Parser) enterNesting(pos token.Pos) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return token.NewErr(token.ErrNestingTooDeep, pos, "exceeds maximum nesting depth of %d", maxNestingDepth)
	}
	return nil
}

func (p *Parser) exitNesting() {
	p.depth--
}
