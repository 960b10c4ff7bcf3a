package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

// TimelineForYear picks the timeline configured for a fiscal year, or nil.
func TimelineForYear(timelines []models.Timeline, fiscalYear string) *models.Timeline {
	for i := range timelines {
		if timelines[i].FiscalYear == fiscalYear {
			return &timelines[i]
		}
	}
	return nil
}

// IsSubmissionOpenAt evaluates the submission window against an explicit
// clock. With no timeline configured for the fiscal year the window defaults
// to open. Configured rounds fully suppress the main range: if rounds exist
// but none of them is a submission round, the window is strictly closed.
func IsSubmissionOpenAt(timelines []models.Timeline, fiscalYear string, now time.Time) bool {
	tl := TimelineForYear(timelines, fiscalYear)
	if tl == nil {
		return true
	}

	if len(tl.Rounds) > 0 {
		matched := false
		hasSubmission := false
		for _, r := range tl.Rounds {
			if r.Type != models.RoundTypeSubmission {
				continue
			}
			hasSubmission = true
			if roundSpanMatches(r.StartDate, r.EndDate, now) {
				matched = true
			}
		}
		if !hasSubmission {
			return false
		}
		return matched
	}

	if tl.StartDate != "" && tl.EndDate != "" {
		return mainRangeOpen(tl.StartDate, tl.EndDate, now)
	}

	return true
}

// IsSubmissionOpen loads the timeline collection and evaluates the window
// for the current fiscal year.
func IsSubmissionOpen(now time.Time) (bool, error) {
	var timelines []models.Timeline
	if err := config.Store.Load(datastore.CollectionTimeline, &timelines); err != nil {
		return false, err
	}
	return IsSubmissionOpenAt(timelines, strconv.Itoa(FiscalYearOf(now)), now), nil
}

// ClosureMessage builds the human-facing reason shown while the window is
// closed. If a consideration round is currently active it is named in the
// message; otherwise a generic closed-until-start message is returned. The
// span matching is the same used by IsSubmissionOpenAt, so the gate and the
// reason can never disagree.
func ClosureMessage(tl *models.Timeline, now time.Time) string {
	if tl == nil {
		return ""
	}

	for _, r := range tl.Rounds {
		if r.Type != models.RoundTypeConsideration {
			continue
		}
		if !roundSpanMatches(r.StartDate, r.EndDate, now) {
			continue
		}
		name := r.Name
		if name == "" {
			name = "รอบพิจารณา"
		}
		return fmt.Sprintf("ขออภัย! ขณะนี้อยู่ในช่วง %s (%s - %s)\nระบบจึงปิดการรับคำขอชั่วคราว",
			name, r.StartDate, r.EndDate)
	}

	startDate := tl.StartDate
	if startDate == "" {
		startDate = "1/10"
	}
	return fmt.Sprintf("ขออภัย! ขณะนี้ระบบปิดการรับคำขอ\nจะเปิดรับคำขออีกครั้งในวันที่ %s ของรอบปีงบประมาณถัดไป", startDate)
}

// roundSpanMatches reports whether now falls inside a round's span. Spans
// are either a full-date pair (inclusive calendar comparison) or a legacy
// D/M pair compared on a month*100+day value, where start > end means the
// span wraps around the calendar year boundary. Malformed spans never match.
func roundSpanMatches(start, end string, now time.Time) bool {
	if strings.Count(start, "/") == 2 && strings.Count(end, "/") == 2 {
		s, okS := ParseFlexibleDate(start)
		e, okE := ParseFlexibleDate(end)
		if !okS || !okE {
			return false
		}
		return dateWithin(s, e, now)
	}

	sv, okS := parseMonthDay(start)
	ev, okE := parseMonthDay(end)
	if !okS || !okE {
		return false
	}
	return monthDaySpanContains(sv, ev, monthDayValue(now))
}

// mainRangeOpen is the legacy single-range check. Unlike rounds, a malformed
// main range reads as open.
func mainRangeOpen(start, end string, now time.Time) bool {
	if strings.Count(start, "/") == 2 && strings.Count(end, "/") == 2 {
		s, okS := ParseFlexibleDate(start)
		e, okE := ParseFlexibleDate(end)
		if okS && okE {
			return dateWithin(s, e, now)
		}
		return true
	}

	sv, okS := parseMonthDay(start)
	ev, okE := parseMonthDay(end)
	if !okS || !okE {
		return true
	}
	return monthDaySpanContains(sv, ev, monthDayValue(now))
}

func dateWithin(start, end, now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.Local)
	return !day.Before(s) && !day.After(e)
}

func monthDayValue(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

// parseMonthDay reads a legacy "D/M" pair into its month*100+day value.
func parseMonthDay(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, false
	}
	d, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errD != nil || errM != nil {
		return 0, false
	}
	return m*100 + d, true
}

func monthDaySpanContains(start, end, current int) bool {
	if start <= end {
		return start <= current && current <= end
	}
	// Wrap-around span crossing the calendar year boundary, e.g. 1/10 - 30/9.
	return current >= start || current <= end
}
