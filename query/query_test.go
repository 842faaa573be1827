package query

import (
	"testing"

	"github.com/tomlcore/tomlcore/parse"
)

const sampleDoc = `
name = "tomlcore"
version = 3

[owner]
login = "octo"
`

func TestEvalFieldAccess(t *testing.T) {
	root, err := parse.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, err := Eval(root, `name`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result != "tomlcore" {
		t.Fatalf("result = %v, want tomlcore", result)
	}
}

func TestEvalNestedFieldAccess(t *testing.T) {
	root, err := parse.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, err := Eval(root, `owner.login`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result != "octo" {
		t.Fatalf("result = %v, want octo", result)
	}
}

func TestEvalKeysBuiltin(t *testing.T) {
	root, err := parse.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, err := Eval(root, `keys(owner)`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	ks, ok := result.([]string)
	if !ok || len(ks) != 1 || ks[0] != "login" {
		t.Fatalf("result = %v", result)
	}
}

func TestEvalHasBuiltin(t *testing.T) {
	root, err := parse.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, err := Eval(root, `has(owner, "login")`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if result != true {
		t.Fatalf("result = %v, want true", result)
	}
}

func TestLookupUnknownSymbol(t *testing.T) {
	if _, ok := Lookup("nonexistent"); ok {
		t.Fatal("expected Lookup of an unregistered symbol to fail")
	}
}
