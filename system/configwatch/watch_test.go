package configwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomlcore/tomlcore/ir"
)

func TestNewLoadsInitialSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	tbl, gen := w.Current()
	if gen != 1 {
		t.Fatalf("gen = %d, want 1", gen)
	}
	v, ok := tbl.Get("name")
	if !ok || v.Str != "a" {
		t.Fatalf("name = %+v", v)
	}
}

func TestReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changes := make(chan uint64, 4)
	w, err := New(path, func(_ *ir.Table, gen uint64) {
		changes <- gen
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("name = \"b\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload after write")
	}

	tbl, _ := w.Current()
	v, ok := tbl.Get("name")
	if !ok || v.Str != "b" {
		t.Fatalf("name = %+v, want b", v)
	}
}

func TestReloadKeepsLastGoodSnapshotOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := w.reload(); err != nil {
		t.Fatalf("reload of a still-valid file: %v", err)
	}

	if err := os.WriteFile(path, []byte("name = \n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := w.reload(); err == nil {
		t.Fatal("expected reload over invalid TOML to return an error")
	}
	if w.Err() == nil {
		t.Fatal("expected Err() to report the last parse failure")
	}

	tbl, _ := w.Current()
	v, _ := tbl.Get("name")
	if v.Str != "a" {
		t.Fatalf("name = %+v, want the last good snapshot to be retained", v)
	}
}
