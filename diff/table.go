package diff

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tomlcore/tomlcore/encode"
	"github.com/tomlcore/tomlcore/ir"
)

// Tables returns a JSON merge patch (RFC 7386) describing how to turn
// from into to, via evanphx/json-patch's CreateMergePatch. The result is
// the argument patch.Apply expects to turn a document encoded the same
// way back into to.
func Tables(from, to *ir.Table) ([]byte, error) {
	fromJSON, err := encode.ToJSON(from, false)
	if err != nil {
		return nil, err
	}
	toJSON, err := encode.ToJSON(to, false)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fromJSON, toJSON)
}
