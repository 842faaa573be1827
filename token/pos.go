package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc tracks newline offsets in a source buffer discovered during a scan,
// so that a byte offset can be converted to a 1-based line/column pair
// without re-scanning the whole buffer each time. Grounded on the
// teacher's token.PosDoc.
type Doc struct {
	buf []byte
	nl  []int
}

// NewDoc wraps buf for position tracking. buf is not copied.
func NewDoc(buf []byte) *Doc {
	return &Doc{buf: buf}
}

// markNewline records that buf[i] == '\n'. Idempotent for the same i.
func (d *Doc) markNewline(i int) {
	if n := len(d.nl); n > 0 && d.nl[n-1] == i {
		return
	}
	d.nl = append(d.nl, i)
}

// LineCol converts a byte offset into a 1-based line and 0-based column.
func (d *Doc) LineCol(off int) (line, col int) {
	n := len(d.nl)
	i := sort.Search(n, func(i int) bool { return d.nl[i] >= off })
	if i == 0 {
		return 1, off
	}
	return i + 1, off - d.nl[i-1] - 1
}

// At returns a Pos for byte offset i within d.
func (d *Doc) At(i int) Pos {
	return Pos{Offset: i, doc: d}
}

// Pos is a byte offset into a Doc, with lazily-computed line/column.
type Pos struct {
	Offset int
	doc    *Doc
}

func (p Pos) LineCol() (line, col int) {
	if p.doc == nil {
		return 0, p.Offset
	}
	return p.doc.LineCol(p.Offset)
}

func (p Pos) Line() int { l, _ := p.LineCol(); return l }
func (p Pos) Col() int  { _, c := p.LineCol(); return c }

func (p Pos) String() string {
	if p.doc == nil {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	lo := max(0, p.Offset-8)
	hi := min(len(p.doc.buf), p.Offset+8)
	sample := strconv.Quote(string(p.doc.buf[lo:hi]))
	line, col := p.LineCol()
	return fmt.Sprintf("line %d, col %d (near %s)", line, col, sample)
}
