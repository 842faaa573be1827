// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to a parsed TOML document's JSON projection,
// grounded on the teacher's mergeop/jsonpatch.go (which drove the same
// evanphx/json-patch APIs over its own ir.Node JSON projection).
package patch

import (
	"github.com/segmentio/encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tomlcore/tomlcore/encode"
	"github.com/tomlcore/tomlcore/ir"
)

// ApplyJSONPatch decodes and applies an RFC 6902 JSON Patch document to
// t's JSON projection, returning the patched document as a native
// map[string]any (ready for re-encoding by the encode package).
func ApplyJSONPatch(t *ir.Table, patchDoc []byte) (map[string]any, error) {
	docJSON, err := encode.ToJSON(t, false)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, err
	}
	patched, err := ops.Apply(docJSON)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(patched, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyMergePatch applies an RFC 7386 JSON Merge Patch (the format
// diff.Tables produces) to t's JSON projection.
func ApplyMergePatch(t *ir.Table, mergePatch []byte) (map[string]any, error) {
	docJSON, err := encode.ToJSON(t, false)
	if err != nil {
		return nil, err
	}
	patched, err := jsonpatch.MergePatch(docJSON, mergePatch)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(patched, &out); err != nil {
		return nil, err
	}
	return out, nil
}
