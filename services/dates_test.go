package services

import (
	"testing"
	"time"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2025-10-01", "2025-10-01", true},
		{"1/10/68", "2025-10-01", true},
		{"1/10/2568", "2025-10-01", true},
		{"15/03/2024", "2024-03-15", true},
		{"31/02/68", "", false},
		{"not-a-date", "", false},
		{"", "", false},
		{"1/10", "", false},
	}

	for _, c := range cases {
		got, ok := ParseFlexibleDate(c.in)
		if ok != c.wantOK {
			t.Fatalf("ParseFlexibleDate(%q) ok = %v, want %v", c.in, ok, c.wantOK)
		}
		if !ok {
			continue
		}
		if got.Format("2006-01-02") != c.want {
			t.Fatalf("ParseFlexibleDate(%q) = %s, want %s", c.in, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestFiscalYearOf(t *testing.T) {
	sep := time.Date(2025, time.September, 30, 12, 0, 0, 0, time.Local)
	oct := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)

	if got := FiscalYearOf(sep); got != 2568 {
		t.Fatalf("FiscalYearOf(30 Sep 2025) = %d, want 2568", got)
	}
	if got := FiscalYearOf(oct); got != 2569 {
		t.Fatalf("FiscalYearOf(1 Oct 2025) = %d, want 2569", got)
	}
}

func TestFormatThaiDate(t *testing.T) {
	ts := time.Date(2025, time.January, 5, 9, 7, 0, 0, time.Local)

	if got := FormatThaiDate(ts, false); got != "05/01/2568" {
		t.Fatalf("FormatThaiDate = %q, want 05/01/2568", got)
	}
	if got := FormatThaiDate(ts, true); got != "05/01/2568 09:07" {
		t.Fatalf("FormatThaiDate with time = %q, want 05/01/2568 09:07", got)
	}
	if got := FormatThaiDate(time.Time{}, true); got != "" {
		t.Fatalf("FormatThaiDate(zero) = %q, want empty", got)
	}
}

func TestRemainingDaysAt(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

	if got := RemainingDaysAt("5/6/2568", 7, now); got != 2 {
		t.Fatalf("RemainingDaysAt 5 days elapsed = %d, want 2", got)
	}
	if got := RemainingDaysAt("1/6/2568", 7, now); got >= 0 {
		t.Fatalf("RemainingDaysAt 9 days elapsed = %d, want negative", got)
	}

	// Unparsable anchors keep the full allowance.
	if got := RemainingDaysAt("", 7, now); got != 7 {
		t.Fatalf("RemainingDaysAt empty anchor = %d, want 7", got)
	}
	if got := RemainingDaysAt("garbage", 7, now); got != 7 {
		t.Fatalf("RemainingDaysAt garbage anchor = %d, want 7", got)
	}
}
