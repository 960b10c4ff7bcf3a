package services

import (
	"testing"

	"compensation-request-api/models"
)

func TestClassifyRank(t *testing.T) {
	cases := []struct {
		position string
		want     string
	}{
		{"ผู้ช่วยศาสตราจารย์", RankAsstProf},
		{"ผู้ช่วยศาสตราจารย์ ดร.", RankAsstProf},
		{"รองศาสตราจารย์", RankAssocProf},
		{"ศาสตราจารย์", RankProf},
		{"ศาสตราจารย์เกียรติคุณ", RankProf},
		{"อาจารย์", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := ClassifyRank(c.position); got != c.want {
			t.Fatalf("ClassifyRank(%q) = %q, want %q", c.position, got, c.want)
		}
	}
}

func TestComputeRequestTotalsTierSelection(t *testing.T) {
	// A tier-1 research article at full weight scores 1.25, which clears the
	// assistant professor's 0.75 tier and pays its amount, not the lower one.
	criteria := []models.Criteria{models.DefaultCriteria("2568")}
	works := []models.Work{{
		Type: models.WorkTypeResearch,
		Details: models.WorkDetails{
			Database:     "scopus_q1_q2",
			Contribution: "first",
		},
	}}

	score, comp := ComputeRequestTotals(works, "ผู้ช่วยศาสตราจารย์", "2568", criteria)
	if score != 1.25 {
		t.Fatalf("score = %v, want 1.25", score)
	}
	if comp != 5600 {
		t.Fatalf("compensation = %v, want 5600", comp)
	}
	if works[0].ScoreCalc != 1.25 {
		t.Fatalf("work score = %v, want 1.25", works[0].ScoreCalc)
	}
}

func TestComputeRequestTotalsBelowEveryTier(t *testing.T) {
	criteria := []models.Criteria{models.DefaultCriteria("2568")}
	works := []models.Work{{
		Type: models.WorkTypeResearch,
		Details: models.WorkDetails{
			Database:     "national",
			Contribution: "co",
		},
	}}

	score, comp := ComputeRequestTotals(works, "ผู้ช่วยศาสตราจารย์", "2568", criteria)
	if score != 0.375 {
		t.Fatalf("score = %v, want 0.375", score)
	}
	if comp != 0 {
		t.Fatalf("compensation = %v, want 0 below every tier", comp)
	}
}

func TestComputeRequestTotalsDisqualifiedWorksScoreZero(t *testing.T) {
	criteria := []models.Criteria{models.DefaultCriteria("2568")}
	works := []models.Work{
		{
			Type:    models.WorkTypeResearch,
			Status:  models.WorkStatusDuplicate,
			Details: models.WorkDetails{Database: "scopus_q1_q2", Contribution: "first"},
		},
		{
			Type:    models.WorkTypeResearch,
			Status:  models.WorkStatusPassed,
			Details: models.WorkDetails{Database: "national", Contribution: "first"},
		},
	}

	score, _ := ComputeRequestTotals(works, "ผู้ช่วยศาสตราจารย์", "2568", criteria)
	if score != 0.75 {
		t.Fatalf("score = %v, want 0.75 (duplicate work excluded)", score)
	}
	if works[0].ScoreCalc != 0 || works[0].PaymentCalc != 0 {
		t.Fatal("duplicate work must be forced to zero")
	}
}

func TestComputeRequestTotalsIdempotent(t *testing.T) {
	criteria := []models.Criteria{models.DefaultCriteria("2568")}
	works := []models.Work{
		{Type: models.WorkTypeResearch, Details: models.WorkDetails{Database: "scopus_other", Contribution: "corresponding"}},
		{Type: models.WorkTypeTeaching, Details: models.WorkDetails{Level: "level_b", Contribution: "co"}},
		{Type: models.WorkTypeTextbook, Details: models.WorkDetails{PublishType: "local", Contribution: "main"}},
	}

	score1, comp1 := ComputeRequestTotals(works, "รองศาสตราจารย์", "2568", criteria)
	score2, comp2 := ComputeRequestTotals(works, "รองศาสตราจารย์", "2568", criteria)
	if score1 != score2 || comp1 != comp2 {
		t.Fatalf("recomputation changed results: (%v,%v) vs (%v,%v)", score1, comp1, score2, comp2)
	}
}

func TestComputeRequestTotalsUnknownRankEarnsNothing(t *testing.T) {
	criteria := []models.Criteria{models.DefaultCriteria("2568")}
	works := []models.Work{{
		Type:    models.WorkTypeResearch,
		Details: models.WorkDetails{Database: "scopus_q1_q2", Contribution: "first"},
	}}

	score, comp := ComputeRequestTotals(works, "อาจารย์", "2568", criteria)
	if score != 1.25 {
		t.Fatalf("score = %v, want 1.25", score)
	}
	if comp != 0 {
		t.Fatalf("compensation = %v, want 0 for a rank outside the tables", comp)
	}
}

func TestComputeRequestTotalsMergedLevels(t *testing.T) {
	criteria := []models.Criteria{models.DefaultCriteria("2568")}

	levels := map[string]float64{
		"level_a_plus": 1.25,
		"level_a":      1.00,
		"level_b":      0.75,
		"":             1.00, // unset level defaults to the A grade
	}
	for level, want := range levels {
		works := []models.Work{{
			Type:    models.WorkTypeInnovation,
			Details: models.WorkDetails{Level: level, Contribution: "main"},
		}}
		score, _ := ComputeRequestTotals(works, "ศาสตราจารย์", "2568", criteria)
		if score != want {
			t.Fatalf("level %q score = %v, want %v", level, score, want)
		}
	}
}

func TestCriteriaForYearFallsBackToFirstProfile(t *testing.T) {
	all := []models.Criteria{
		models.DefaultCriteria("2567"),
		models.DefaultCriteria("2568"),
	}

	if got := CriteriaForYear(all, "2568"); got == nil || got.FiscalYear != "2568" {
		t.Fatal("exact year should be preferred")
	}
	if got := CriteriaForYear(all, "2999"); got == nil || got.FiscalYear != "2567" {
		t.Fatal("missing year should fall back to the first profile")
	}
	if got := CriteriaForYear(nil, "2568"); got != nil {
		t.Fatal("empty criteria list should return nil")
	}
}

func TestCompensationMonotonicInScore(t *testing.T) {
	criteria := models.DefaultCriteria("2568")

	prev := 0.0
	for _, score := range []float64{0.25, 0.5, 0.75, 1.0, 1.5} {
		comp := compensationFor(score, "ผู้ช่วยศาสตราจารย์", &criteria)
		if comp < prev {
			t.Fatalf("compensation decreased from %v to %v at score %v", prev, comp, score)
		}
		prev = comp
	}
}
