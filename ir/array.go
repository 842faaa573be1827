package ir

// Array is a TOML array: either a plain value array (from `[...]`
// literal syntax or the value side of a key) or an array of tables
// (built up across one or more `[[a.b.c]]` headers). IsTableArray
// distinguishes the two, since only an array-of-tables may ever be
// extended after its initial definition (spec.md §4.5).
type Array struct {
	Items        []*Value
	IsTableArray bool
}

func (a *Array) Append(v *Value) {
	a.Items = append(a.Items, v)
}

func (a *Array) Len() int { return len(a.Items) }
