package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

// Rank keys into the payment rules tables.
const (
	RankAsstProf  = "asst_prof"
	RankAssocProf = "assoc_prof"
	RankProf      = "prof"
)

// ClassifyRank maps an academic position title to its payment-rules key.
// Assistant and associate titles contain the professor title as a substring,
// so they must be excluded before the plain professor match. Unrecognized
// titles return "" and earn no compensation.
func ClassifyRank(position string) string {
	pos := strings.TrimSpace(position)
	isAsst := strings.Contains(pos, "ผู้ช่วยศาสตราจารย์")
	isAssoc := strings.Contains(pos, "รองศาสตราจารย์")

	switch {
	case isAsst:
		return RankAsstProf
	case isAssoc:
		return RankAssocProf
	case strings.Contains(pos, "ศาสตราจารย์"):
		return RankProf
	}
	return ""
}

// CriteriaForYear finds the scoring profile for a fiscal year. When the year
// has no profile the first available one is used; that fallback is a policy,
// not an accident, so it is logged.
func CriteriaForYear(all []models.Criteria, fiscalYear string) *models.Criteria {
	for i := range all {
		if all[i].FiscalYear == fiscalYear {
			return &all[i]
		}
	}
	if len(all) > 0 {
		log.Printf("No criteria profile for fiscal year %s, falling back to profile %s",
			fiscalYear, all[0].FiscalYear)
		return &all[0]
	}
	return nil
}

// ComputeRequestTotals scores every work in place and returns the aggregate
// score and compensation. Works flagged duplicate or rejected are forced to
// zero. The pass is pure for a given (works, position, fiscalYear,
// criteriaList): re-running it reproduces identical results.
func ComputeRequestTotals(works []models.Work, position, fiscalYear string, criteriaList []models.Criteria) (float64, float64) {
	criteria := CriteriaForYear(criteriaList, fiscalYear)

	var qs models.QualityScores
	if criteria != nil {
		qs = criteria.QualityScores
	}

	scoreSum := 0.0
	for i := range works {
		w := &works[i]

		if models.IsDisqualifiedWorkStatus(w.Status) {
			w.ScoreCalc = 0
			w.PaymentCalc = 0
			w.ScoreBreakdown = "ไม่อนุมัติการพิจารณา / ผลงานซ้ำซ้อน"
			continue
		}

		base, baseInfo := baseScore(w.Type, w.Details, qs)
		weight := roleWeight(w.Details.Contribution, criteria)
		net := base * weight

		w.BaseScore = base
		w.Weight = weight
		w.ScoreCalc = net
		w.PaymentCalc = 0
		w.ScoreBreakdown = fmt.Sprintf("ฐาน %v (%s) x น้ำหนัก %v", base, baseInfo, weight)

		scoreSum += net
	}

	return scoreSum, compensationFor(scoreSum, position, criteria)
}

// baseScore resolves a work's base quality score and the label used in its
// breakdown text.
func baseScore(workType string, details models.WorkDetails, qs models.QualityScores) (float64, string) {
	switch {
	case workType == models.WorkTypeResearch:
		switch details.Database {
		case "scopus_q1_q2":
			return tableValue(qs.Research, "tier1", 1.25), "Scopus Q1/Q2"
		case "scopus_other":
			return tableValue(qs.Research, "non_q", 1.00), "Scopus Other"
		case "national":
			return tableValue(qs.Research, "national", 0.75), "TCI/National"
		}
		return 0, ""

	case models.MergedLevelType(workType):
		level := details.Level
		if level == "" {
			level = "-"
		}
		label := fmt.Sprintf("%s (%s)", capitalize(workType), strings.ToUpper(strings.ReplaceAll(level, "level_", "")))
		switch details.Level {
		case "level_a_plus":
			return tableValue(qs.MergedABC, "a_plus", 1.25), label
		case "level_a":
			return tableValue(qs.MergedABC, "a", 1.00), label
		case "level_b":
			return tableValue(qs.MergedABC, "b", 0.75), label
		}
		return tableValue(qs.MergedABC, "a", 1.00), label

	case workType == models.WorkTypeTextbook:
		switch details.PublishType {
		case "inter":
			return tableValue(qs.Textbook, "publisher", 1.25), capitalize(workType)
		case "local":
			return tableValue(qs.Textbook, "general", 1.00), capitalize(workType)
		}
		return tableValue(qs.Textbook, "publisher", 1.25), capitalize(workType)

	case workType == models.WorkTypeCreative:
		pt := details.PublishType
		switch {
		case strings.Contains(pt, "inter"):
			return tableValue(qs.Creative, "international", 1.25), capitalize(workType)
		case strings.Contains(pt, "coop"):
			return tableValue(qs.Creative, "cooperation", 1.00), capitalize(workType)
		case strings.Contains(pt, "national"):
			return tableValue(qs.Creative, "national", 0.75), capitalize(workType)
		}
		return tableValue(qs.Creative, "international", 1.25), capitalize(workType)
	}

	// Custom types are opaque labels; they carry no base-score table.
	return 0, capitalize(workType)
}

// roleWeight maps a contribution role to its weight. Lead roles weight at
// the main rate, supporting roles at the co rate, anything else at zero.
func roleWeight(contribution string, criteria *models.Criteria) float64 {
	main, co := 1.0, 0.5
	if criteria != nil {
		main, co = criteria.RoleWeights.Main, criteria.RoleWeights.Co
	}

	switch contribution {
	case "first", "corresponding", "main":
		return main
	case "intellectual", "co":
		return co
	}
	return 0
}

// compensationFor selects the highest qualifying tier for the rank.
func compensationFor(scoreSum float64, position string, criteria *models.Criteria) float64 {
	rank := ClassifyRank(position)
	if rank == "" || criteria == nil {
		return 0
	}

	var tiers []models.PaymentTier
	switch rank {
	case RankAsstProf:
		tiers = criteria.PaymentRules.AsstProf
	case RankAssocProf:
		tiers = criteria.PaymentRules.AssocProf
	case RankProf:
		tiers = criteria.PaymentRules.Prof
	}

	applicable := make([]models.PaymentTier, 0, len(tiers))
	for _, t := range tiers {
		if scoreSum >= t.MinScore {
			applicable = append(applicable, t)
		}
	}
	if len(applicable) == 0 {
		return 0
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].MinScore > applicable[j].MinScore
	})
	return applicable[0].Amount
}

func tableValue(table map[string]float64, key string, fallback float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// computeTotalsFromStore runs the scoring pass with the stored criteria
// collection.
func computeTotalsFromStore(works []models.Work, position, fiscalYear string) (float64, float64, error) {
	var criteriaList []models.Criteria
	if err := config.Store.Load(datastore.CollectionCriteria, &criteriaList); err != nil {
		return 0, 0, err
	}
	score, comp := ComputeRequestTotals(works, position, fiscalYear, criteriaList)
	return score, comp, nil
}
