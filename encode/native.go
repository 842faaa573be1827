// Package encode renders an ir value tree to JSON, YAML, or a
// color-highlighted terminal dump. Generalized from the teacher's
// encode package (which walked ir.Node) to walk ir.Value/Table/Array.
package encode

import (
	"time"

	"github.com/tomlcore/tomlcore/ir"
)

// ToNative converts v into plain Go values (map[string]any, []any,
// string, int64, float64, bool, time.Time) suitable for encoding/json or
// goccy/go-yaml to marshal directly, the way the teacher's ToMap walked
// ir.Node into map[string]any before handing it to an encoder.
func ToNative(v *ir.Value) any {
	switch v.Kind {
	case ir.String, ir.LocalDateTime, ir.LocalDate, ir.LocalTime:
		return v.Str
	case ir.Integer:
		return v.Int
	case ir.Float:
		return v.Flt
	case ir.Boolean:
		return v.Bool
	case ir.OffsetDateTime:
		return v.Instant.In(fixedOffset(v.OffsetMinutes))
	case ir.ArrayKind:
		out := make([]any, v.Arr.Len())
		for i, item := range v.Arr.Items {
			out[i] = ToNative(item)
		}
		return out
	case ir.TableKind:
		return TableToNative(v.Tbl)
	default:
		return nil
	}
}

// TableToNative converts t into a map[string]any, preserving nothing
// about key order (JSON/YAML maps are unordered); WriteColor is the
// order-preserving rendering path.
func TableToNative(t *ir.Table) map[string]any {
	out := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		out[k] = ToNative(v)
	}
	return out
}

func fixedOffset(minutes int) *time.Location {
	return time.FixedZone("", minutes*60)
}
