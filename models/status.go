package models

// Request lifecycle statuses. The Thai labels are the canonical values stored
// in the requests collection; the constants give controllers and services a
// closed set to match against.
const (
	StatusDraft            = "แบบร่าง"
	StatusSubmitted        = "ส่งแล้ว"
	StatusReturned         = "แก้ไข"
	StatusHistoryCheck     = "รอตรวจประวัติการยื่นขอ"
	StatusPassed           = "ผลงานผ่าน"
	StatusDuplicate        = "ผลงานซ้ำซ้อน"
	StatusPartialDuplicate = "ซ้ำซ้อนบางส่วน"
	StatusReadyForBatch    = "รอเสนอพิจารณา"
	StatusInConsideration  = "อยู่ในรอบพิจารณา"
	StatusApproved         = "อนุมัติ"
	StatusPartialApproved  = "อนุมัติบางส่วน"
	StatusRejected         = "ไม่อนุมัติ"
	StatusAppealPending    = "รอการอุทธรณ์"
	StatusCancelled        = "ยกเลิก"

	// Legacy label still present in older documents; committee treats it the
	// same as in-consideration.
	StatusPendingConsideration = "รอการพิจารณา"
)

// Per-work review statuses. An empty status means the work has not been
// reviewed yet.
const (
	WorkStatusPassed        = "ผลงานผ่าน"
	WorkStatusDuplicate     = "ผลงานซ้ำซ้อน"
	WorkStatusApproved      = "อนุมัติ"
	WorkStatusRejected      = "ไม่อนุมัติ"
	WorkStatusAppealPending = "รอการอุทธรณ์"
)

// Batch statuses.
const (
	BatchStatusPending   = "รอการพิจารณา"
	BatchStatusAnnounced = "ประกาศผลแล้ว"
)

// Appeal record statuses.
const (
	AppealStatusPending  = "รอพิจารณา"
	AppealStatusApproved = "อนุมัติ"
	AppealStatusRejected = "ไม่อนุมัติ"
)

// User roles.
const (
	RoleAdmin          = "admin"
	RoleAdministration = "administration"
	RoleResearch       = "research"
	RoleCommittee      = "committee"
	RoleApplicant      = "applicant"
)

// IsTerminalStatus reports whether a request can no longer move forward.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusApproved, StatusPartialApproved, StatusCancelled:
		return true
	}
	return false
}

// IsDisqualifiedWorkStatus reports whether a work is excluded from score
// aggregation (forced to zero by the scoring pass).
func IsDisqualifiedWorkStatus(status string) bool {
	return status == WorkStatusRejected || status == WorkStatusDuplicate
}
