package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/tomlcore/tomlcore/ir"
)

// ToJSON renders t in the tagged-value JSON shape the toml-test
// acceptance suite's decoders speak: every scalar becomes
// {"type": "<kind>", "value": "<string>"}, while arrays and tables stay
// plain JSON arrays/objects of tagged values. Grounded in
// original_source/scripts/toml_test_decoder.py's to_tagged, adapted to
// tag directly off ir.Kind rather than sniffing a dynamically-typed
// native value the way the Python decoder has to.
func ToJSON(t *ir.Table, indent bool) ([]byte, error) {
	tagged := taggedTable(t)
	if indent {
		return json.MarshalIndent(tagged, "", "  ")
	}
	return json.Marshal(tagged)
}

func taggedValue(v *ir.Value) any {
	switch v.Kind {
	case ir.String:
		return tag("string", v.Str)
	case ir.Integer:
		return tag("integer", strconv.FormatInt(v.Int, 10))
	case ir.Float:
		return tag("float", formatTaggedFloat(v.Flt))
	case ir.Boolean:
		return tag("bool", strconv.FormatBool(v.Bool))
	case ir.OffsetDateTime:
		return tag("datetime", formatTaggedOffsetDateTime(v))
	case ir.LocalDateTime:
		return tag("datetime-local", v.Str)
	case ir.LocalDate:
		return tag("date-local", v.Str)
	case ir.LocalTime:
		return tag("time-local", v.Str)
	case ir.ArrayKind:
		out := make([]any, v.Arr.Len())
		for i, item := range v.Arr.Items {
			out[i] = taggedValue(item)
		}
		return out
	case ir.TableKind:
		return taggedTable(v.Tbl)
	default:
		return nil
	}
}

func taggedTable(t *ir.Table) map[string]any {
	out := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		out[k] = taggedValue(v)
	}
	return out
}

func tag(kind, value string) map[string]string {
	return map[string]string{"type": kind, "value": value}
}

// formatTaggedOffsetDateTime renders an offset date-time as RFC 3339
// with millisecond precision, the way toml_test_decoder.py's
// _datetime_rfc3339 does, reusing the value's original offset rather
// than always normalizing to UTC.
func formatTaggedOffsetDateTime(v *ir.Value) string {
	instant := v.Instant.In(fixedOffset(v.OffsetMinutes))
	layout := "2006-01-02T15:04:05Z07:00"
	if instant.Nanosecond() != 0 {
		layout = "2006-01-02T15:04:05.000Z07:00"
	}
	return instant.Format(layout)
}

// formatTaggedFloat mirrors toml_test_decoder.py's _float_str: special
// cased inf/-inf/nan/signed-zero, scientific notation outside
// [1e-4, 1e10), otherwise a plain decimal with a forced ".0" when the
// shortest representation would otherwise look like an integer.
func formatTaggedFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e10 || abs < 1e-4 {
		s := strconv.FormatFloat(f, 'e', 1, 64)
		return strings.Replace(s, "e+", "e", 1)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
