package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseFlexibleDate parses the date formats found in stored documents:
// ISO YYYY-MM-DD, and D/M/Y where a 2-digit year is an abbreviated Buddhist
// year (68 -> 2568) and a 4-digit year above 2400 is Buddhist Era and is
// converted to the astronomical year. The second return value is false when
// the text cannot be parsed; callers decide their own fallback.
func ParseFlexibleDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if strings.Contains(text, "-") {
		if t, err := time.Parse("2006-01-02", text); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	d, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}

	// Abbreviated Thai year, e.g. 68 -> 2568
	if y < 100 {
		y += 2500
	}
	// Buddhist Era -> astronomical year
	if y > 2400 {
		y -= 543
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// ToThaiYear converts a calendar instant to its Buddhist-era year.
func ToThaiYear(t time.Time) int {
	return t.Year() + 543
}

// FormatThaiDate renders D/M/Y(BE), optionally with HH:MM, the format every
// stored document uses for dates.
func FormatThaiDate(t time.Time, includeTime bool) string {
	if t.IsZero() {
		return ""
	}
	y := ToThaiYear(t)
	if includeTime {
		return fmt.Sprintf("%02d/%02d/%d %02d:%02d", t.Day(), int(t.Month()), y, t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), y)
}

// FiscalYearOf returns the Buddhist-era fiscal year of a calendar instant.
// Fiscal year X runs 1 Oct of (X-1) through 30 Sep of X.
func FiscalYearOf(t time.Time) int {
	if t.Month() >= time.October {
		return ToThaiYear(t) + 1
	}
	return ToThaiYear(t)
}

// CurrentFiscalYear returns the fiscal year of the current date.
func CurrentFiscalYear() int {
	return FiscalYearOf(time.Now())
}

// RemainingDaysAt returns limitDays minus the full days elapsed between the
// anchor date and now. An unparsable anchor yields the full allowance: a
// permissive default the deadline checks rely on.
func RemainingDaysAt(anchorDate string, limitDays int, now time.Time) int {
	anchor, ok := ParseFlexibleDate(anchorDate)
	if !ok {
		return limitDays
	}
	elapsed := int(now.Sub(anchor).Hours() / 24)
	return limitDays - elapsed
}

// RemainingDays is RemainingDaysAt evaluated against the current time.
func RemainingDays(anchorDate string, limitDays int) int {
	return RemainingDaysAt(anchorDate, limitDays, time.Now())
}
