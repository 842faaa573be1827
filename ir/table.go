package ir

import (
	"github.com/tomlcore/tomlcore/token"
)

// Table is a TOML table: an ordered set of unique keys mapping to
// values. Insertion order is preserved so encoders can round-trip a
// document the way it was written, the way the teacher's Node keeps
// Fields in declaration order.
//
// Beyond plain key storage, Table tracks which keys were *explicitly*
// defined (by a `[table]`/`[[array]]` header or a `key = value` line) as
// opposed to created only implicitly as an intermediate parent of a
// dotted key or header path. TOML's redefinition rules (spec.md §4.4,
// §4.5) hinge on that distinction: a path may be traversed implicitly
// any number of times, but an explicit definition of the same path is
// only ever allowed once.
type Table struct {
	order    []string
	m        map[string]*Value
	explicit map[string]bool
	frozen   bool
}

func NewTable() *Table {
	return &Table{m: make(map[string]*Value), explicit: make(map[string]bool)}
}

// Get returns the value stored at key, if any.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Keys returns the table's keys in insertion order. The slice must not
// be mutated by the caller.
func (t *Table) Keys() []string { return t.order }

func (t *Table) Len() int { return len(t.order) }

// IsExplicit reports whether key was explicitly defined, as opposed to
// only implicitly created as a parent of a longer path.
func (t *Table) IsExplicit(key string) bool { return t.explicit[key] }

// Frozen reports whether t is an inline table, which may not be
// extended once its closing `}` is parsed.
func (t *Table) Frozen() bool { return t.frozen }

// Freeze marks t as an inline table, for structures built elsewhere
// (parse's inline-table grammar) that must reject any later mutation.
func (t *Table) Freeze() { t.frozen = true }

func (t *Table) setOrdered(key string, v *Value) {
	if _, exists := t.m[key]; !exists {
		t.order = append(t.order, key)
	}
	t.m[key] = v
}

// DefineScalar assigns a leaf value at key: a scalar, a plain array, or
// an inline table. It rejects any prior definition of key at all: such
// leaves can never be redefined, and a frozen inline table is never
// extended.
func (t *Table) DefineScalar(key string, v *Value) error {
	if t.frozen {
		return token.ErrStaticArrayExtension
	}
	if _, exists := t.m[key]; exists {
		return token.ErrKeyRedefinition
	}
	t.setOrdered(key, v)
	t.explicit[key] = true
	return nil
}

// EnsureSubtable returns the Table stored at key, creating it if absent.
// explicit marks this call as a `[table]` header or the terminal segment
// of a dotted key inside one, rather than an implicit traversal; a
// second explicit call for the same key is a redefinition.
//
// If key already names an array of tables (built up by one or more
// `[[key]]` headers), descent continues into that array's *last*
// element, per spec.md §4.5 and the reference parser's
// get_or_create_table_at_path/get_or_create_array_append_table: a path
// like `fruit.physical` after `[[fruit]]` must extend the most recently
// appended fruit table, not redefine `fruit` itself. A plain (non-table)
// array at key can never be descended into this way.
func (t *Table) EnsureSubtable(key string, pos token.Pos, explicit bool) (*Table, error) {
	if t.frozen {
		return nil, token.ErrStaticArrayExtension
	}
	if existing, ok := t.m[key]; ok {
		switch existing.Kind {
		case TableKind:
			if existing.Tbl.frozen {
				return nil, token.ErrStaticArrayExtension
			}
			if explicit {
				if t.explicit[key] {
					return nil, token.ErrKeyRedefinition
				}
				t.explicit[key] = true
			}
			return existing.Tbl, nil
		case ArrayKind:
			if !existing.Arr.IsTableArray {
				return nil, token.ErrStaticArrayExtension
			}
			if existing.Arr.Len() == 0 {
				return nil, token.ErrStaticArrayExtension
			}
			last := existing.Arr.Items[existing.Arr.Len()-1]
			if last.Kind != TableKind {
				return nil, token.ErrKeyRedefinition
			}
			if explicit {
				if t.explicit[key] {
					return nil, token.ErrKeyRedefinition
				}
				t.explicit[key] = true
			}
			return last.Tbl, nil
		default:
			return nil, token.ErrKeyRedefinition
		}
	}
	sub := NewTable()
	t.setOrdered(key, NewTableValue(sub, pos))
	if explicit {
		t.explicit[key] = true
	}
	return sub, nil
}

// EnsureArrayOfTables appends a new Table to the array-of-tables at key
// (creating the array on first use) and returns it as the new "current"
// table for subsequent key/header resolution. It rejects reusing key if
// it already names anything other than an array created the same way
// (spec.md §4.5).
func (t *Table) EnsureArrayOfTables(key string, pos token.Pos) (*Table, error) {
	if t.frozen {
		return nil, token.ErrStaticArrayExtension
	}
	existing, ok := t.m[key]
	if ok {
		if existing.Kind != ArrayKind || !existing.Arr.IsTableArray {
			return nil, token.ErrStaticArrayExtension
		}
		sub := NewTable()
		existing.Arr.Append(NewTableValue(sub, pos))
		return sub, nil
	}
	arr := &Array{IsTableArray: true}
	sub := NewTable()
	arr.Append(NewTableValue(sub, pos))
	t.setOrdered(key, NewArray(arr, pos))
	t.explicit[key] = true
	return sub, nil
}
