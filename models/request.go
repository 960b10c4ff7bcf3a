package models

// WorkDetails is the type-specific detail bag of a work. Which fields are
// meaningful depends on the work type: Database for research articles, Level
// for the five merged types, PublishType for textbooks and creative works.
type WorkDetails struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	Database     string `json:"database,omitempty"`
	Level        string `json:"level,omitempty"`
	PublishType  string `json:"publish_type,omitempty"`
	Contribution string `json:"contribution,omitempty"`
	DatePublish  string `json:"date_publish,omitempty"`
	EvidenceType string `json:"evidence_type,omitempty"`
	EvidenceLink string `json:"evidence_link,omitempty"`
	EvidenceFile string `json:"evidence_file,omitempty"`
}

// Work is one scholarly output inside a request. The derived fields
// (BaseScore, Weight, ScoreCalc, PaymentCalc, ScoreBreakdown) are owned by
// the scoring pass and rewritten on every recalculation.
type Work struct {
	Type    string      `json:"type"`
	Details WorkDetails `json:"details"`
	Status  string      `json:"status,omitempty"`
	Comment string      `json:"comment,omitempty"`

	BaseScore      float64 `json:"base_score"`
	Weight         float64 `json:"weight"`
	ScoreCalc      float64 `json:"score_calc"`
	PaymentCalc    float64 `json:"payment_calc"`
	ScoreBreakdown string  `json:"score_breakdown,omitempty"`

	AppealComment   string `json:"appeal_comment,omitempty"`
	AppealEvidence  string `json:"appeal_evidence,omitempty"`
	AlreadyAppealed bool   `json:"already_appealed,omitempty"`
}

// ApplicantInfo is the snapshot of the applicant's profile captured when the
// request is saved. It is never live-joined back to the users collection.
type ApplicantInfo struct {
	TitleName        string `json:"title_name"`
	AcademicPosition string `json:"academic_position"`
	PositionDate     string `json:"position_date"`
	PositionNumber   string `json:"position_number"`
	Department       string `json:"department"`
	Faculty          string `json:"faculty"`
}

// Appeal is a whole-request appeal record.
type Appeal struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence,omitempty"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// Request is one applicant submission cycle. FiscalYear is the Buddhist-era
// year as a string, matching how every collection stores it.
type Request struct {
	ID            string        `json:"id"`
	Applicant     string        `json:"applicant"`
	ApplicantName string        `json:"applicant_name"`
	ApplicantInfo ApplicantInfo `json:"applicant_info"`
	FiscalYear    string        `json:"fiscal_year"`
	Works         []Work        `json:"works"`
	Date          string        `json:"date"`
	Status        string        `json:"status"`

	Score                 float64 `json:"score"`
	SuggestedCompensation float64 `json:"suggested_compensation"`
	TotalScore            float64 `json:"total_score,omitempty"`
	TotalCompensation     float64 `json:"total_compensation,omitempty"`
	ApprovedAmount        float64 `json:"approved_amount,omitempty"`

	Comment        string  `json:"comment"`
	TimelineStatus string  `json:"timeline_status,omitempty"`
	Certify        bool    `json:"certify,omitempty"`
	ReturnDate     string  `json:"return_date,omitempty"`
	RejectionDate  string  `json:"rejection_date,omitempty"`
	AppealDate     string  `json:"appeal_date,omitempty"`
	CancelDate     string  `json:"cancel_date,omitempty"`
	Appeal         *Appeal `json:"appeal,omitempty"`
	BatchID        string  `json:"batch_id,omitempty"`
}
