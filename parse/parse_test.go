package parse

import (
	"errors"
	"testing"

	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/token"
)

func mustParse(t *testing.T, src string) *ir.Table {
	t.Helper()
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return root
}

func getString(t *testing.T, tbl *ir.Table, key string) string {
	t.Helper()
	v, ok := tbl.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	if v.Kind != ir.String {
		t.Fatalf("key %q: kind = %v, want string", key, v.Kind)
	}
	return v.Str
}

func TestParseSimpleKeyValues(t *testing.T) {
	root := mustParse(t, `
name = "tomlcore"
version = 3
pi = 3.14
ok = true
`)
	if getString(t, root, "name") != "tomlcore" {
		t.Fatal("name mismatch")
	}
	v, _ := root.Get("version")
	if v.Kind != ir.Integer || v.Int != 3 {
		t.Fatalf("version = %+v", v)
	}
	v, _ = root.Get("pi")
	if v.Kind != ir.Float || v.Flt != 3.14 {
		t.Fatalf("pi = %+v", v)
	}
	v, _ = root.Get("ok")
	if v.Kind != ir.Boolean || !v.Bool {
		t.Fatalf("ok = %+v", v)
	}
}

func TestParseDottedKeys(t *testing.T) {
	root := mustParse(t, `a.b.c = 1`)
	a, ok := root.Get("a")
	if !ok || a.Kind != ir.TableKind {
		t.Fatalf("a = %+v", a)
	}
	b, ok := a.Tbl.Get("b")
	if !ok || b.Kind != ir.TableKind {
		t.Fatalf("b = %+v", b)
	}
	c, ok := b.Tbl.Get("c")
	if !ok || c.Kind != ir.Integer || c.Int != 1 {
		t.Fatalf("c = %+v", c)
	}
}

func TestParseTableHeaders(t *testing.T) {
	root := mustParse(t, `
[a.b]
x = 1

[a.c]
y = 2
`)
	a, _ := root.Get("a")
	b, _ := a.Tbl.Get("b")
	x, _ := b.Tbl.Get("x")
	if x.Int != 1 {
		t.Fatalf("x = %+v", x)
	}
	c, _ := a.Tbl.Get("c")
	y, _ := c.Tbl.Get("y")
	if y.Int != 2 {
		t.Fatalf("y = %+v", y)
	}
}

func TestParseArrayOfTables(t *testing.T) {
	root := mustParse(t, `
[[fruit]]
name = "apple"

[[fruit]]
name = "banana"
`)
	v, ok := root.Get("fruit")
	if !ok || v.Kind != ir.ArrayKind || v.Arr.Len() != 2 {
		t.Fatalf("fruit = %+v", v)
	}
	if getString(t, v.Arr.Items[0].Tbl, "name") != "apple" {
		t.Fatal("first fruit mismatch")
	}
	if getString(t, v.Arr.Items[1].Tbl, "name") != "banana" {
		t.Fatal("second fruit mismatch")
	}
}

func TestParseNestedArrayOfTables(t *testing.T) {
	root := mustParse(t, `
[[fruit]]
name = "apple"

[[fruit.variety]]
name = "red delicious"

[[fruit.variety]]
name = "granny smith"
`)
	fruit, _ := root.Get("fruit")
	variety, ok := fruit.Arr.Items[0].Tbl.Get("variety")
	if !ok || variety.Arr.Len() != 2 {
		t.Fatalf("variety = %+v", variety)
	}
}

func TestParseArrayOfTablesSubtable(t *testing.T) {
	root := mustParse(t, `
[[fruit]]
name = "apple"

[fruit.physical]
color = "red"
shape = "round"

[[fruit]]
name = "banana"
`)
	fruit, _ := root.Get("fruit")
	if fruit.Arr.Len() != 2 {
		t.Fatalf("fruit = %+v", fruit)
	}
	physical, ok := fruit.Arr.Items[0].Tbl.Get("physical")
	if !ok || physical.Kind != ir.TableKind {
		t.Fatalf("physical = %+v", physical)
	}
	if getString(t, physical.Tbl, "color") != "red" {
		t.Fatal("color mismatch")
	}
	if getString(t, fruit.Arr.Items[1].Tbl, "name") != "banana" {
		t.Fatal("second fruit mismatch")
	}
}

func TestParseInlineTable(t *testing.T) {
	root := mustParse(t, `point = { x = 1, y = 2 }`)
	point, _ := root.Get("point")
	if point.Kind != ir.TableKind {
		t.Fatalf("point = %+v", point)
	}
	x, _ := point.Tbl.Get("x")
	if x.Int != 1 {
		t.Fatalf("x = %+v", x)
	}
}

func TestParseArrayValue(t *testing.T) {
	root := mustParse(t, `nums = [1, 2, 3]`)
	nums, _ := root.Get("nums")
	if nums.Kind != ir.ArrayKind || nums.Arr.Len() != 3 {
		t.Fatalf("nums = %+v", nums)
	}
}

func TestParseMultilineArray(t *testing.T) {
	root := mustParse(t, "nums = [\n  1, # one\n  2,\n  3,\n]\n")
	nums, _ := root.Get("nums")
	if nums.Arr.Len() != 3 {
		t.Fatalf("nums = %+v", nums)
	}
}

func TestParseRejectsKeyRedefinition(t *testing.T) {
	_, err := Parse([]byte("a = 1\na = 2\n"))
	if !errors.Is(err, token.ErrKeyRedefinition) {
		t.Fatalf("err = %v, want ErrKeyRedefinition", err)
	}
}

func TestParseRejectsReopeningExplicitTable(t *testing.T) {
	_, err := Parse([]byte("[a]\nx = 1\n[a]\ny = 2\n"))
	if !errors.Is(err, token.ErrKeyRedefinition) {
		t.Fatalf("err = %v, want ErrKeyRedefinition", err)
	}
}

func TestParseRejectsStaticArrayExtension(t *testing.T) {
	_, err := Parse([]byte("a = [1, 2]\n[[a]]\nx = 1\n"))
	if !errors.Is(err, token.ErrStaticArrayExtension) {
		t.Fatalf("err = %v, want ErrStaticArrayExtension", err)
	}
}

func TestParseRejectsControlChars(t *testing.T) {
	_, err := Parse([]byte("a = \"b\x01c\"\n"))
	if !errors.Is(err, token.ErrControlChar) {
		t.Fatalf("err = %v, want ErrControlChar", err)
	}
}

func TestParseComments(t *testing.T) {
	root := mustParse(t, "# a top comment\na = 1 # trailing\n")
	v, _ := root.Get("a")
	if v.Int != 1 {
		t.Fatalf("a = %+v", v)
	}
}

func TestParseOffsetDateTimeValue(t *testing.T) {
	root := mustParse(t, `ts = 1979-05-27T07:32:00Z`)
	v, _ := root.Get("ts")
	if v.Kind != ir.OffsetDateTime {
		t.Fatalf("ts = %+v", v)
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	_, err := Parse([]byte("a = 1\na = 2\nb = [1, 2,\n"))
	if !errors.Is(err, token.ErrKeyRedefinition) {
		t.Fatalf("err = %v, want the first error (ErrKeyRedefinition)", err)
	}
}
