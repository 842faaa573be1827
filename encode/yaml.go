package encode

import (
	goyaml "github.com/goccy/go-yaml"

	"github.com/tomlcore/tomlcore/ir"
)

// ToYAML renders t as YAML, grounded on the teacher's YAML encode path
// which also hands a native map to goccy/go-yaml rather than walking its
// own node tree through a hand-rolled emitter.
func ToYAML(t *ir.Table) ([]byte, error) {
	return goyaml.Marshal(TableToNative(t))
}
