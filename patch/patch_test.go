package patch

import (
	"testing"

	"github.com/tomlcore/tomlcore/diff"
	"github.com/tomlcore/tomlcore/parse"
)

func TestApplyMergePatchRoundTrip(t *testing.T) {
	from, err := parse.Parse([]byte("name = \"a\"\nversion = 1\n"))
	if err != nil {
		t.Fatalf("Parse(from): %v", err)
	}
	to, err := parse.Parse([]byte("name = \"a\"\nversion = 2\n"))
	if err != nil {
		t.Fatalf("Parse(to): %v", err)
	}
	mergePatch, err := diff.Tables(from, to)
	if err != nil {
		t.Fatalf("diff.Tables: %v", err)
	}
	out, err := ApplyMergePatch(from, mergePatch)
	if err != nil {
		t.Fatalf("ApplyMergePatch: %v", err)
	}
	v, ok := out["version"]
	if !ok {
		t.Fatalf("patched document missing version: %v", out)
	}
	tagged, ok := v.(map[string]any)
	if !ok || tagged["type"] != "integer" || tagged["value"] != "2" {
		t.Fatalf("version = %v, want {type:integer value:2}", v)
	}
}

func TestApplyJSONPatchAddsField(t *testing.T) {
	root, err := parse.Parse([]byte("name = \"a\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	patchDoc := []byte(`[{"op":"add","path":"/extra","value":"x"}]`)
	out, err := ApplyJSONPatch(root, patchDoc)
	if err != nil {
		t.Fatalf("ApplyJSONPatch: %v", err)
	}
	if out["extra"] != "x" {
		t.Fatalf("extra = %v, want x", out["extra"])
	}
}
