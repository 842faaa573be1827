// Package ir is the in-memory value tree a parsed TOML document is built
// into: a tagged-union [Value] over the TOML scalar types plus [Table]
// and [Array], generalized from the teacher's ir.Node to the TOML data
// model in spec.md §3.
package ir

import (
	"time"

	"github.com/tomlcore/tomlcore/token"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Invalid Kind = iota
	String
	Integer
	Float
	Boolean
	OffsetDateTime
	LocalDateTime
	LocalDate
	LocalTime
	ArrayKind
	TableKind
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case OffsetDateTime:
		return "offset-datetime"
	case LocalDateTime:
		return "local-datetime"
	case LocalDate:
		return "local-date"
	case LocalTime:
		return "local-time"
	case ArrayKind:
		return "array"
	case TableKind:
		return "table"
	default:
		return "invalid"
	}
}

// Value is one TOML value: a scalar, an array, or a table. Exactly one
// field group is meaningful for a given Kind, the way the teacher's Node
// carries String/Bool/Number/Float64/Int64 side by side and dispatches on
// Type.
type Value struct {
	Kind Kind

	Str  string // String, and the verbatim lexeme for LocalDateTime/LocalDate/LocalTime
	Int  int64
	Flt  float64
	Bool bool

	// Instant and OffsetMinutes are meaningful only for OffsetDateTime:
	// Instant is the UTC instant, OffsetMinutes the original offset,
	// since the TOML value model keeps both per spec.md §3.
	Instant       time.Time
	OffsetMinutes int

	Arr *Array
	Tbl *Table

	// Pos is the source position the value's token started at, kept
	// for the LSP hover surface in SPEC_FULL.md §4.16.
	Pos token.Pos
}

func NewString(s string, pos token.Pos) *Value {
	return &Value{Kind: String, Str: s, Pos: pos}
}

func NewInteger(i int64, pos token.Pos) *Value {
	return &Value{Kind: Integer, Int: i, Pos: pos}
}

func NewFloat(f float64, pos token.Pos) *Value {
	return &Value{Kind: Float, Flt: f, Pos: pos}
}

func NewBoolean(b bool, pos token.Pos) *Value {
	return &Value{Kind: Boolean, Bool: b, Pos: pos}
}

// NewDateTime builds a Value from a decoded token.DateTime.
func NewDateTime(dt token.DateTime, pos token.Pos) *Value {
	v := &Value{Pos: pos, Str: dt.Lexeme}
	switch dt.Kind {
	case token.OffsetDateTime:
		v.Kind = OffsetDateTime
		v.Instant = dt.Instant
		v.OffsetMinutes = dt.OffsetMinutes
	case token.LocalDateTimeKind:
		v.Kind = LocalDateTime
	case token.LocalDateKind:
		v.Kind = LocalDate
	case token.LocalTimeKind:
		v.Kind = LocalTime
	}
	return v
}

func NewArray(a *Array, pos token.Pos) *Value {
	return &Value{Kind: ArrayKind, Arr: a, Pos: pos}
}

func NewTableValue(t *Table, pos token.Pos) *Value {
	return &Value{Kind: TableKind, Tbl: t, Pos: pos}
}

// IsScalar reports whether v holds a TOML scalar rather than a
// collection.
func (v *Value) IsScalar() bool {
	return v.Kind != ArrayKind && v.Kind != TableKind
}
