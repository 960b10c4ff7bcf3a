package models

// Batch groups ready-for-consideration requests into one committee round.
type Batch struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MeetingDate string   `json:"meeting_date,omitempty"`
	FiscalYear  string   `json:"fiscal_year"`
	CreatedDate string   `json:"created_date"`
	Status      string   `json:"status"`
	RequestIDs  []string `json:"req_ids"`
}
