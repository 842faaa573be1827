package ir

import (
	"testing"

	"github.com/tomlcore/tomlcore/token"
)

func TestArrayAppendAndLen(t *testing.T) {
	a := &Array{}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	a.Append(NewInteger(1, token.Pos{}))
	a.Append(NewInteger(2, token.Pos{}))
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.Items[0].Int != 1 || a.Items[1].Int != 2 {
		t.Fatalf("Items = %+v", a.Items)
	}
}

func TestArrayIsTableArrayDefaultFalse(t *testing.T) {
	a := &Array{}
	if a.IsTableArray {
		t.Fatal("a plain array literal must not be marked as an array of tables")
	}
}
