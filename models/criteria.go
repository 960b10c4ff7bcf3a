package models

// PaymentTier is one (minimum score, payout) pair. The highest qualifying
// min_score wins.
type PaymentTier struct {
	MinScore float64 `json:"min_score"`
	Amount   float64 `json:"amount"`
}

// QualityScores holds the base-score tables per work type. Keys are the
// type-specific discriminators, e.g. research: tier1/non_q/national,
// merged_abc: a_plus/a/b, textbook: publisher/general,
// creative: international/cooperation/national.
type QualityScores struct {
	Research  map[string]float64 `json:"research"`
	MergedABC map[string]float64 `json:"merged_abc"`
	Textbook  map[string]float64 `json:"textbook"`
	Creative  map[string]float64 `json:"creative"`
	Other     map[string]float64 `json:"other,omitempty"`
}

// RoleWeights weights a work's net score by the applicant's contribution
// role: lead/corresponding/main roles use Main, intellectual/co use Co.
type RoleWeights struct {
	Main float64 `json:"main"`
	Co   float64 `json:"co"`
}

// PaymentRules holds the tiered payout tables per academic rank.
type PaymentRules struct {
	AsstProf  []PaymentTier `json:"asst_prof"`
	AssocProf []PaymentTier `json:"assoc_prof"`
	Prof      []PaymentTier `json:"prof"`
}

// Criteria is one fiscal year's scoring configuration.
type Criteria struct {
	FiscalYear    string        `json:"fiscal_year"`
	QualityScores QualityScores `json:"quality_scores"`
	RoleWeights   RoleWeights   `json:"role_weights"`
	PaymentRules  PaymentRules  `json:"payment_rules"`
}

// DefaultCriteria returns the template used when an admin creates criteria
// for a fiscal year that has none yet.
func DefaultCriteria(fiscalYear string) Criteria {
	return Criteria{
		FiscalYear: fiscalYear,
		QualityScores: QualityScores{
			Research:  map[string]float64{"tier1": 1.25, "non_q": 1.00, "national": 0.75},
			MergedABC: map[string]float64{"a_plus": 1.25, "a": 1.00, "b": 0.75},
			Textbook:  map[string]float64{"publisher": 1.25, "general": 1.00},
			Creative:  map[string]float64{"international": 1.25, "cooperation": 1.00, "national": 0.75},
			Other:     map[string]float64{"creative": 1.00},
		},
		RoleWeights: RoleWeights{Main: 1.0, Co: 0.5},
		PaymentRules: PaymentRules{
			AsstProf:  []PaymentTier{{MinScore: 0.50, Amount: 3000}, {MinScore: 0.75, Amount: 5600}},
			AssocProf: []PaymentTier{{MinScore: 0.75, Amount: 6000}, {MinScore: 1.25, Amount: 9900}},
			Prof:      []PaymentTier{{MinScore: 1.25, Amount: 9000}, {MinScore: 1.50, Amount: 13000}},
		},
	}
}
