// Package token provides the byte-level scanning primitives and literal
// grammars used by the parse package to build a TOML document tree.
//
// [Scanner] is a cursor over an immutable byte buffer exposing the
// peek/advance/bounded-lookahead/whitespace-skip/byte-search primitives
// spec.md §4.1 calls for. The whitespace-skip and byte-search routines
// are written as a 32-byte chunked scan with an identical scalar
// fallback for short inputs, mirroring the batching shape of the
// reference implementation's AVX2 routines without depending on actual
// SIMD intrinsics (see DESIGN.md).
package token

const chunkSize = 32

// Scanner is a cursor over src. It never copies src; all returned byte
// slices alias it. A Scanner is not safe for concurrent use.
type Scanner struct {
	src []byte
	pos int
	doc *Doc
}

// NewScanner returns a Scanner over src, whose Doc is used for position
// reporting.
func NewScanner(src []byte, doc *Doc) *Scanner {
	return &Scanner{src: src, doc: doc}
}

// Pos returns the current cursor position.
func (s *Scanner) Pos() Pos { return s.doc.At(s.pos) }

// PosAt returns a Pos for an arbitrary offset in the same document.
func (s *Scanner) PosAt(off int) Pos { return s.doc.At(off) }

// Offset returns the current byte offset.
func (s *Scanner) Offset() int { return s.pos }

// Seek repositions the cursor to an offset previously obtained from
// Offset. None of this package's scanners backtrack through it; the
// date/time and number scanners in particular never rewind once they
// commit.
func (s *Scanner) Seek(off int) { s.pos = off }

// Eof reports whether the cursor has reached the end of src.
func (s *Scanner) Eof() bool { return s.pos >= len(s.src) }

// RemainingBytes returns the unconsumed suffix of src, without advancing.
func (s *Scanner) RemainingBytes() []byte { return s.src[s.pos:] }

// Peek returns the byte at the cursor, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.Eof() {
		return 0
	}
	return s.src[s.pos]
}

// PeekAt returns the byte offset bytes ahead of the cursor, or 0 if that
// position is past EOF. offset may be 0 (same as Peek).
func (s *Scanner) PeekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// HasPrefix reports whether the unconsumed input starts with pre.
func (s *Scanner) HasPrefix(pre string) bool {
	if len(s.src)-s.pos < len(pre) {
		return false
	}
	for i := 0; i < len(pre); i++ {
		if s.src[s.pos+i] != pre[i] {
			return false
		}
	}
	return true
}

// Advance consumes and returns the byte at the cursor. Advancing past EOF
// is a programming error in this package; callers always check Eof/Peek
// first, per the grammar in spec.md §4.
func (s *Scanner) Advance() byte {
	c := s.src[s.pos]
	if c == '\n' {
		s.doc.markNewline(s.pos)
	}
	s.pos++
	return c
}

// AdvanceN consumes n bytes unconditionally.
func (s *Scanner) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}

const (
	wsSpace = ' '
	wsTab   = '\t'
	wsCR    = '\r'
	wsLF    = '\n'
)

func isWhitespace(c byte) bool {
	return c == wsSpace || c == wsTab || c == wsCR || c == wsLF
}

func isWhitespaceNoNL(c byte) bool {
	return c == wsSpace || c == wsTab || c == wsCR
}

// SkipWhitespaceIncludingNewlines advances past space, tab, CR and LF.
func (s *Scanner) SkipWhitespaceIncludingNewlines() {
	s.pos = skipChunked(s.src, s.pos, s.doc, isWhitespace)
}

// SkipWhitespaceExcludingNewlines advances past space, tab and CR only.
func (s *Scanner) SkipWhitespaceExcludingNewlines() {
	s.pos = skipChunked(s.src, s.pos, s.doc, isWhitespaceNoNL)
}

// FindByte returns the offset of the next occurrence of b at or after the
// cursor, or the offset of EOF if none is found. It does not advance.
func (s *Scanner) FindByte(b byte) int {
	return findByteChunked(s.src, s.pos, b)
}

// SkipLineComment consumes a '#' already positioned at the cursor through
// (but not including) the terminating newline or EOF.
func (s *Scanner) SkipLineComment() {
	if s.Peek() != '#' {
		return
	}
	end := s.FindByte('\n')
	for s.pos < end {
		s.Advance()
	}
}

// skipChunked is the batched whitespace scan: compare 32-byte chunks,
// starting at the cursor, against the whitespace set, OR-combine the per-byte matches, and
// stop at the first lane that does not match. A scalar tail handles the
// remainder. The result is identical to scanning byte-by-byte; the
// chunking only changes how many comparisons happen per loop iteration.
func skipChunked(src []byte, pos int, doc *Doc, pred func(byte) bool) int {
	n := len(src)
	for pos+chunkSize <= n {
		chunk := src[pos : pos+chunkSize]
		allMatch := true
		firstMismatch := -1
		for i := 0; i < chunkSize; i++ {
			if !pred(chunk[i]) {
				allMatch = false
				firstMismatch = i
				break
			}
		}
		if !allMatch {
			for i := 0; i < firstMismatch; i++ {
				if chunk[i] == '\n' {
					doc.markNewline(pos + i)
				}
			}
			return pos + firstMismatch
		}
		for i := 0; i < chunkSize; i++ {
			if chunk[i] == '\n' {
				doc.markNewline(pos + i)
			}
		}
		pos += chunkSize
	}
	for pos < n && pred(src[pos]) {
		if src[pos] == '\n' {
			doc.markNewline(pos)
		}
		pos++
	}
	return pos
}

// findByteChunked is the batched single-character search: compare
// 32-byte chunks, starting at the cursor, against the target byte and stop at the first
// lane that matches, falling back to a scalar scan for the remainder.
func findByteChunked(src []byte, pos int, target byte) int {
	n := len(src)
	for pos+chunkSize <= n {
		chunk := src[pos : pos+chunkSize]
		for i := 0; i < chunkSize; i++ {
			if chunk[i] == target {
				return pos + i
			}
		}
		pos += chunkSize
	}
	for pos < n && src[pos] != target {
		pos++
	}
	return pos
}

// IsDigit, IsAlnum and HexDigit are the byte-level (ASCII-only) character
// classifiers spec.md §4.1 calls for; multi-byte UTF-8 is never
// re-decoded by the scanner.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

func IsAlnum(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsBareKeyByte(c byte) bool {
	return IsAlnum(c) || c == '_' || c == '-'
}

func HexDigitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// IsValueTerminator reports whether c may legally follow a scalar value,
// per the value-terminator set in spec.md §4.10.
func IsValueTerminator(c byte, eof bool) bool {
	if eof {
		return true
	}
	switch c {
	case ' ', '\t', '\n', '\r', ',', ']', '}', '#':
		return true
	default:
		return false
	}
}
