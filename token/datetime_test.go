package token

import "testing"

func scanDateTime(t *testing.T, src string) DateTime {
	t.Helper()
	s := newTestScanner(src)
	dt, err := s.ScanDateTime()
	if err != nil {
		t.Fatalf("ScanDateTime(%q): %v", src, err)
	}
	return dt
}

func TestScanOffsetDateTime(t *testing.T) {
	dt := scanDateTime(t, "1979-05-27T07:32:00Z")
	if dt.Kind != OffsetDateTime {
		t.Fatalf("Kind = %v, want OffsetDateTime", dt.Kind)
	}
	if dt.OffsetMinutes != 0 {
		t.Fatalf("OffsetMinutes = %d, want 0", dt.OffsetMinutes)
	}
	if dt.Instant.Year() != 1979 || dt.Instant.Hour() != 7 {
		t.Fatalf("Instant = %v, want 1979-05-27T07:32:00Z", dt.Instant)
	}
}

func TestScanOffsetDateTimeWithOffset(t *testing.T) {
	dt := scanDateTime(t, "1979-05-27T00:32:00-07:00")
	if dt.Kind != OffsetDateTime {
		t.Fatalf("Kind = %v, want OffsetDateTime", dt.Kind)
	}
	if dt.OffsetMinutes != -420 {
		t.Fatalf("OffsetMinutes = %d, want -420", dt.OffsetMinutes)
	}
	if dt.Instant.Hour() != 7 {
		t.Fatalf("Instant (UTC) hour = %d, want 7", dt.Instant.Hour())
	}
}

func TestScanLocalDateTime(t *testing.T) {
	dt := scanDateTime(t, "1979-05-27T07:32:00")
	if dt.Kind != LocalDateTimeKind {
		t.Fatalf("Kind = %v, want LocalDateTimeKind", dt.Kind)
	}
}

func TestScanLocalDate(t *testing.T) {
	dt := scanDateTime(t, "1979-05-27")
	if dt.Kind != LocalDateKind {
		t.Fatalf("Kind = %v, want LocalDateKind", dt.Kind)
	}
}

func TestScanLocalTime(t *testing.T) {
	dt := scanDateTime(t, "07:32:00")
	if dt.Kind != LocalTimeKind {
		t.Fatalf("Kind = %v, want LocalTimeKind", dt.Kind)
	}
}

func TestScanDateTimeInvalidCalendarDate(t *testing.T) {
	s := newTestScanner("2023-02-29")
	if _, err := s.ScanDateTime(); err == nil {
		t.Fatal("expected Feb 29 in a non-leap year to be rejected")
	}
}

func TestScanDateTimeLeapYearAccepted(t *testing.T) {
	dt := scanDateTime(t, "2024-02-29")
	if dt.Kind != LocalDateKind {
		t.Fatalf("Kind = %v, want LocalDateKind", dt.Kind)
	}
}

func TestLooksLikeDateAndTimeOnly(t *testing.T) {
	s := newTestScanner("1979-05-27")
	if !s.LooksLikeDate() {
		t.Fatal("expected LooksLikeDate to be true")
	}
	s2 := newTestScanner("07:32:00")
	if !s2.LooksLikeTimeOnly() {
		t.Fatal("expected LooksLikeTimeOnly to be true")
	}
	s3 := newTestScanner("not-a-date")
	if s3.LooksLikeDate() {
		t.Fatal("expected LooksLikeDate to be false")
	}
}
