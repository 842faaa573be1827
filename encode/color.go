package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tomlcore/tomlcore/ir"
)

// Colors holds one Sprint-style function per token class, grounded on
// the teacher's encode_colors.go Colors type (which keyed a Colorable
// per ir.Type rather than holding bare functions, but serves the same
// "one color per value class" role here).
type Colors struct {
	Key      func(a ...any) string
	String   func(a ...any) string
	Number   func(a ...any) string
	Bool     func(a ...any) string
	DateTime func(a ...any) string
	Punct    func(a ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		Key:      color.New(color.FgCyan, color.Bold).SprintFunc(),
		String:   color.New(color.FgGreen).SprintFunc(),
		Number:   color.New(color.FgYellow).SprintFunc(),
		Bool:     color.New(color.FgMagenta).SprintFunc(),
		DateTime: color.New(color.FgBlue).SprintFunc(),
		Punct:    color.New(color.FgHiBlack).SprintFunc(),
	}
}

// plainColors renders every class with no escape codes, for non-tty
// output.
func plainColors() *Colors {
	id := func(a ...any) string { return fmt.Sprint(a...) }
	return &Colors{Key: id, String: id, Number: id, Bool: id, DateTime: id, Punct: id}
}

// AutoColors picks NewColors() when w is a terminal (per
// mattn/go-isatty) and plainColors() otherwise, the way the teacher's
// cmd/o wires isatty.IsTerminal into its own default-color decision.
func AutoColors(w io.Writer) *Colors {
	if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return plainColors()
}

// WriteColor writes t to w as a TOML-shaped dump (dotted table headers,
// `key = value` lines), coloring each token class per c.
func WriteColor(w io.Writer, t *ir.Table, c *Colors) error {
	return writeTable(w, t, nil, c)
}

func writeTable(w io.Writer, t *ir.Table, path []string, c *Colors) error {
	var scalarKeys, tableKeys []string
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		if v.Kind == ir.TableKind || (v.Kind == ir.ArrayKind && v.Arr.IsTableArray) {
			tableKeys = append(tableKeys, k)
		} else {
			scalarKeys = append(scalarKeys, k)
		}
	}
	for _, k := range scalarKeys {
		v, _ := t.Get(k)
		fmt.Fprintf(w, "%s %s %s\n", c.Key(quoteKeyIfNeeded(k)), c.Punct("="), writeScalarValue(v, c))
	}
	for _, k := range tableKeys {
		v, _ := t.Get(k)
		childPath := append(append([]string{}, path...), k)
		if v.Kind == ir.TableKind {
			fmt.Fprintf(w, "%s%s%s\n", c.Punct("["), c.Key(joinPath(childPath)), c.Punct("]"))
			if err := writeTable(w, v.Tbl, childPath, c); err != nil {
				return err
			}
			continue
		}
		for _, elem := range v.Arr.Items {
			fmt.Fprintf(w, "%s%s%s\n", c.Punct("[["), c.Key(joinPath(childPath)), c.Punct("]]"))
			if err := writeTable(w, elem.Tbl, childPath, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeScalarValue(v *ir.Value, c *Colors) string {
	switch v.Kind {
	case ir.String:
		return c.String(strconv.Quote(v.Str))
	case ir.Integer:
		return c.Number(strconv.FormatInt(v.Int, 10))
	case ir.Float:
		return c.Number(strconv.FormatFloat(v.Flt, 'g', -1, 64))
	case ir.Boolean:
		return c.Bool(strconv.FormatBool(v.Bool))
	case ir.OffsetDateTime, ir.LocalDateTime, ir.LocalDate, ir.LocalTime:
		return c.DateTime(v.Str)
	case ir.ArrayKind:
		s := c.Punct("[")
		for i, item := range v.Arr.Items {
			if i > 0 {
				s += c.Punct(", ")
			}
			s += writeScalarValue(item, c)
		}
		return s + c.Punct("]")
	case ir.TableKind:
		s := c.Punct("{ ")
		for i, k := range v.Tbl.Keys() {
			if i > 0 {
				s += c.Punct(", ")
			}
			child, _ := v.Tbl.Get(k)
			s += fmt.Sprintf("%s %s %s", c.Key(quoteKeyIfNeeded(k)), c.Punct("="), writeScalarValue(child, c))
		}
		return s + c.Punct(" }")
	default:
		return ""
	}
}

func quoteKeyIfNeeded(k string) string {
	for _, c := range []byte(k) {
		if !isBareKeyRune(c) {
			return strconv.Quote(k)
		}
	}
	if k == "" {
		return `""`
	}
	return k
}

func isBareKeyRune(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

func joinPath(path []string) string {
	s := ""
	for i, p := range path {
		if i > 0 {
			s += "."
		}
		s += quoteKeyIfNeeded(p)
	}
	return s
}
