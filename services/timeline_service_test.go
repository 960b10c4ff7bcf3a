package services

import (
	"strings"
	"testing"
	"time"

	"compensation-request-api/models"
)

func TestIsSubmissionOpenAtNoTimeline(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	if !IsSubmissionOpenAt(nil, "2568", now) {
		t.Fatal("window should default to open with no timeline configured")
	}
}

func TestIsSubmissionOpenAtWrapAroundMainRange(t *testing.T) {
	// 1 Oct through 30 Sep spans the whole year; any day is inside.
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		StartDate:  "1/10",
		EndDate:    "30/9",
	}}

	days := []time.Time{
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.September, 30, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local),
	}
	for _, d := range days {
		if !IsSubmissionOpenAt(timelines, "2568", d) {
			t.Fatalf("wrap-around range should be open on %s", d.Format("2006-01-02"))
		}
	}
}

func TestIsSubmissionOpenAtMainRangeClosed(t *testing.T) {
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		StartDate:  "1/10",
		EndDate:    "31/12",
	}}

	inside := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.Local)
	outside := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.Local)

	if !IsSubmissionOpenAt(timelines, "2568", inside) {
		t.Fatal("window should be open inside the main range")
	}
	if IsSubmissionOpenAt(timelines, "2568", outside) {
		t.Fatal("window should be closed outside the main range")
	}
}

func TestRoundsSuppressMainRange(t *testing.T) {
	// The main range says open year-round, but configured rounds take over.
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		StartDate:  "1/10",
		EndDate:    "30/9",
		Rounds: []models.Round{
			{Name: "รอบที่ 1", Type: models.RoundTypeSubmission, StartDate: "1/11", EndDate: "30/11"},
		},
	}}

	inRound := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.Local)
	outOfRound := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)

	if !IsSubmissionOpenAt(timelines, "2568", inRound) {
		t.Fatal("window should be open during a submission round")
	}
	if IsSubmissionOpenAt(timelines, "2568", outOfRound) {
		t.Fatal("window should be closed outside every submission round")
	}
}

func TestRoundsWithoutSubmissionRoundAreStrictlyClosed(t *testing.T) {
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		Rounds: []models.Round{
			{Name: "ประชุมกรรมการ", Type: models.RoundTypeConsideration, StartDate: "1/1", EndDate: "31/12"},
		},
	}}

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	if IsSubmissionOpenAt(timelines, "2568", now) {
		t.Fatal("rounds without a submission round must close the window")
	}
}

func TestFullDateRoundSpan(t *testing.T) {
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		Rounds: []models.Round{
			{Type: models.RoundTypeSubmission, StartDate: "1/10/2568", EndDate: "15/10/2568"},
		},
	}}

	lastDay := time.Date(2025, time.October, 15, 23, 0, 0, 0, time.Local)
	dayAfter := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.Local)

	if !IsSubmissionOpenAt(timelines, "2568", lastDay) {
		t.Fatal("full-date span must include its end date")
	}
	if IsSubmissionOpenAt(timelines, "2568", dayAfter) {
		t.Fatal("full-date span must exclude the day after its end date")
	}
}

func TestClosureMessageNamesActiveConsiderationRound(t *testing.T) {
	tl := &models.Timeline{
		FiscalYear: "2568",
		Rounds: []models.Round{
			{Name: "พิจารณารอบที่ 1", Type: models.RoundTypeConsideration, StartDate: "1/6", EndDate: "30/6"},
		},
	}

	during := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)
	msg := ClosureMessage(tl, during)
	if !strings.Contains(msg, "พิจารณารอบที่ 1") {
		t.Fatalf("closure message should name the active round, got %q", msg)
	}

	after := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.Local)
	msg = ClosureMessage(tl, after)
	if !strings.Contains(msg, "ปิดการรับคำขอ") {
		t.Fatalf("generic closure message expected, got %q", msg)
	}
}

func TestGateAndMessageAgree(t *testing.T) {
	// Same span matching backs both, so a closed gate during a consideration
	// round always yields the round message.
	timelines := []models.Timeline{{
		FiscalYear: "2568",
		Rounds: []models.Round{
			{Name: "รับคำขอ", Type: models.RoundTypeSubmission, StartDate: "1/11", EndDate: "30/11"},
			{Name: "พิจารณา", Type: models.RoundTypeConsideration, StartDate: "1/12", EndDate: "15/12"},
		},
	}}

	during := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.Local)
	if IsSubmissionOpenAt(timelines, "2568", during) {
		t.Fatal("window should be closed during the consideration round")
	}
	msg := ClosureMessage(&timelines[0], during)
	if !strings.Contains(msg, "พิจารณา") {
		t.Fatalf("expected the consideration round in the message, got %q", msg)
	}
}
