package utils

import (
	"testing"
	"time"
)

func TestFormatThaiDateLong(t *testing.T) {
	d := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)
	if got := FormatThaiDateLong(d); got != "1 ตุลาคม 2568" {
		t.Fatalf("FormatThaiDateLong = %q", got)
	}
	if got := FormatThaiDateLong(time.Time{}); got != "" {
		t.Fatalf("zero time should format empty, got %q", got)
	}
}

func TestBahtText(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "ศูนย์บาทถ้วน"},
		{5600, "ห้าพันหกร้อยบาทถ้วน"},
		{9900, "เก้าพันเก้าร้อยบาทถ้วน"},
		{13000, "หนึ่งหมื่นสามพันบาทถ้วน"},
		{21, "ยี่สิบเอ็ดบาทถ้วน"},
		{10.50, "สิบบาทห้าสิบสตางค์"},
	}

	for _, c := range cases {
		if got := BahtText(c.amount); got != c.want {
			t.Fatalf("BahtText(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
