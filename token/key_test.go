package token

import "testing"

func TestScanBareKey(t *testing.T) {
	s := newTestScanner("foo-bar_1 = 2")
	got := s.ScanBareKey()
	if got != "foo-bar_1" {
		t.Fatalf("got %q, want foo-bar_1", got)
	}
}

func TestScanKeySegmentQuoted(t *testing.T) {
	s := newTestScanner(`"a b"`)
	got, err := s.ScanKeySegment()
	if err != nil {
		t.Fatal(err)
	}
	if got != "a b" {
		t.Fatalf("got %q, want 'a b'", got)
	}
}

func TestScanBoolean(t *testing.T) {
	s := newTestScanner("true")
	b, err := s.ScanBoolean()
	if err != nil || !b {
		t.Fatalf("got %v, %v, want true, nil", b, err)
	}
	s2 := newTestScanner("false")
	b2, err := s2.ScanBoolean()
	if err != nil || b2 {
		t.Fatalf("got %v, %v, want false, nil", b2, err)
	}
}
