// Package parse drives the top-level TOML document loop: it walks
// comments, table headers, array-of-tables headers and key/value lines,
// threading them through the ir package's table-building rules.
// Grounded on the reference parser's parse_document/parse_key_value_pair
// driver loop, adapted to ir.Table's stricter (TOML-1.0.0-conformant)
// redefinition semantics.
package parse

import (
	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/token"
)

// maxNestingDepth bounds how deeply arrays and inline tables may nest
// inside one value, guarding against pathological input driving the
// recursive value parser arbitrarily deep. Dotted-key and table-header
// paths are not counted against it.
const maxNestingDepth = 64

// Parser holds the mutable state of a single document parse: the
// scanner cursor and the table a bare key/value line currently targets.
type Parser struct {
	s       *token.Scanner
	root    *ir.Table
	current *ir.Table
	depth   int
}

// Parse parses a complete TOML document and returns its root table. The
// first error encountered aborts the parse and is returned alone, per
// the first-error-wins error channel in spec.md §6.
func Parse(data []byte) (*ir.Table, error) {
	if err := rejectControlChars(data); err != nil {
		return nil, err
	}
	doc := token.NewDoc(data)
	p := &Parser{
		s:    token.NewScanner(data, doc),
		root: ir.NewTable(),
	}
	p.current = p.root
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return p.root, nil
}

// rejectControlChars implements the control-character pre-pass: C0
// control bytes other than tab and LF are rejected everywhere in the
// source, including inside strings and comments, and a bare CR is only
// legal as part of a CRLF pair. Grounded on the reference parser's
// is_forbidden_control pre-pass.
func rejectControlChars(data []byte) error {
	// at scans up to offset i so the Doc has seen every newline before it,
	// which Pos needs to report the right line and column.
	at := func(i int) token.Pos {
		s := token.NewScanner(data, token.NewDoc(data))
		s.AdvanceN(i)
		return s.Pos()
	}
	for i, c := range data {
		switch {
		case c == 0x09 || c == 0x0A:
			continue
		case c == 0x0D:
			if i+1 >= len(data) || data[i+1] != 0x0A {
				return token.NewErr(token.ErrControlChar, at(i), "bare carriage return")
			}
		case c <= 0x1F || c == 0x7F:
			return token.NewErr(token.ErrControlChar, at(i), "control byte 0x%02X", c)
		}
	}
	return nil
}

func (p *Parser) parseDocument() error {
	s := p.s
	s.SkipWhitespaceIncludingNewlines()
	for !s.Eof() {
		s.SkipWhitespaceIncludingNewlines()
		if s.Eof() {
			break
		}
		if s.Peek() == '#' {
			s.SkipLineComment()
			continue
		}
		if s.Peek() == '[' {
			if err := p.parseHeader(); err != nil {
				return err
			}
			continue
		}
		if err := p.parseKeyValueLine(); err != nil {
			return err
		}
		s.SkipWhitespaceExcludingNewlines()
		if !s.Eof() && s.Peek() == '#' {
			s.SkipLineComment()
		}
		if !s.Eof() && s.Peek() != '\n' && s.Peek() != '\r' {
			return token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected end of line")
		}
	}
	return nil
}

// parseHeader handles a `[table]` or `[[array.of.tables]]` line, s
// positioned at the leading '['.
func (p *Parser) parseHeader() error {
	s := p.s
	start := s.Pos()
	s.Advance() // '['
	isArrayOfTables := false
	if s.Peek() == '[' {
		isArrayOfTables = true
		s.Advance()
	}
	s.SkipWhitespaceExcludingNewlines()

	path, err := p.parseDottedKey()
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return token.NewErr(token.ErrEmptyTableHeader, start, "empty table header")
	}

	if isArrayOfTables {
		if s.Peek() != ']' {
			return token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected ']'")
		}
		s.Advance()
	}
	if s.Peek() != ']' {
		return token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected ']'")
	}
	s.Advance()
	s.SkipWhitespaceExcludingNewlines()
	if s.Peek() == '#' {
		s.SkipLineComment()
	}
	if !s.Eof() && s.Peek() != '\n' && s.Peek() != '\r' {
		return token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected end of line after table header")
	}

	if isArrayOfTables {
		tbl, err := p.resolveArrayOfTablesHeader(path, start)
		if err != nil {
			return err
		}
		p.current = tbl
		return nil
	}
	tbl, err := p.resolveTableHeader(path, start)
	if err != nil {
		return err
	}
	p.current = tbl
	return nil
}

// resolveTableHeader implements get_or_create_table_at_path: every
// segment is created or descended into implicitly, except the final
// segment which is marked explicit (and so may not be reopened by a
// second `[same.path]` header).
func (p *Parser) resolveTableHeader(path []string, pos token.Pos) (*ir.Table, error) {
	t := p.root
	for i, key := range path {
		explicit := i == len(path)-1
		next, err := t.EnsureSubtable(key, pos, explicit)
		if err != nil {
			return nil, wrapKeyErr(err, pos, key)
		}
		t = next
	}
	return t, nil
}

// resolveArrayOfTablesHeader implements get_or_create_array_append_table:
// all but the last segment are plain (possibly array-of-tables-aware)
// table traversal, and the last segment appends a fresh table to the
// array-of-tables at that path.
func (p *Parser) resolveArrayOfTablesHeader(path []string, pos token.Pos) (*ir.Table, error) {
	t := p.root
	for _, key := range path[:len(path)-1] {
		next, err := t.EnsureSubtable(key, pos, false)
		if err != nil {
			return nil, wrapKeyErr(err, pos, key)
		}
		t = next
	}
	last := path[len(path)-1]
	next, err := t.EnsureArrayOfTables(last, pos)
	if err != nil {
		return nil, wrapKeyErr(err, pos, last)
	}
	return next, nil
}

func wrapKeyErr(err error, pos token.Pos, key string) error {
	return token.NewErr(err, pos, "at %q", key)
}

// parseKeyValueLine handles `dotted.key = value`, s positioned at the
// first byte of the key.
func (p *Parser) parseKeyValueLine() error {
	s := p.s
	start := s.Pos()
	path, err := p.parseDottedKey()
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return token.NewErr(token.ErrEmptyKey, start, "expected a key")
	}
	s.SkipWhitespaceExcludingNewlines()
	if s.Peek() != '=' {
		return token.NewErr(token.ErrUnexpectedToken, s.Pos(), "expected '='")
	}
	s.Advance()
	s.SkipWhitespaceExcludingNewlines()

	v, err := p.parseValue()
	if err != nil {
		return err
	}

	return p.assign(p.current, path, v, start)
}

// assign walks all but the last path segment as implicit parent tables,
// then defines the last segment as a scalar/array/inline-table leaf. A
// leaf can never be redefined, matching the TOML spec rather than the
// reference implementation's silent overwrite (see DESIGN.md).
func (p *Parser) assign(t *ir.Table, path []string, v *ir.Value, pos token.Pos) error {
	for _, key := range path[:len(path)-1] {
		next, err := t.EnsureSubtable(key, pos, false)
		if err != nil {
			return wrapKeyErr(err, pos, key)
		}
		t = next
	}
	last := path[len(path)-1]
	if err := t.DefineScalar(last, v); err != nil {
		return wrapKeyErr(err, pos, last)
	}
	return nil
}

// parseDottedKey scans `key ( . key )*`.
func (p *Parser) parseDottedKey() ([]string, error) {
	s := p.s
	s.SkipWhitespaceExcludingNewlines()
	if s.Eof() || !isKeyStart(s.Peek()) {
		return nil, nil
	}
	var path []string
	seg, err := s.ScanKeySegment()
	if err != nil {
		return nil, err
	}
	path = append(path, seg)
	s.SkipWhitespaceExcludingNewlines()
	for !s.Eof() && s.Peek() == '.' {
		s.Advance()
		s.SkipWhitespaceExcludingNewlines()
		if s.Eof() || !isKeyStart(s.Peek()) {
			return nil, token.NewErr(token.ErrEmptyKey, s.Pos(), "expected a key segment after '.'")
		}
		seg, err := s.ScanKeySegment()
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
		s.SkipWhitespaceExcludingNewlines()
	}
	return path, nil
}

func isKeyStart(c byte) bool {
	return token.IsBareKeyByte(c) || c == '"' || c == '\''
}
