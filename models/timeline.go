package models

// Round types inside a fiscal year's timeline.
const (
	RoundTypeSubmission    = "submission"
	RoundTypeConsideration = "consideration"
)

// Round is a named sub-period of a fiscal year. Start and end dates accept
// either a full date (D/M/Y, BE or AD, or ISO) or a legacy D/M pair that
// repeats every year.
type Round struct {
	Name      string `json:"name,omitempty"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Timeline is one fiscal year's submission calendar. When Rounds is
// non-empty it fully overrides the main StartDate/EndDate range.
type Timeline struct {
	FiscalYear string  `json:"fiscal_year"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	Rounds     []Round `json:"rounds,omitempty"`
}
