package utils

import (
	"compensation-request-api/models"
)

// Role-facing status labels. The stored status values are shared by every
// role, but each role reads them from its own perspective: what is
// "submitted" to the applicant is "awaiting review" to the administration
// desk. Statuses missing from a role's table fall through to the stored
// value.
var roleStatusLabels = map[string]map[string]string{
	models.RoleAdministration: {
		models.StatusSubmitted:        "รอตรวจสอบ",
		models.StatusReturned:         "ส่งคืนแก้ไขแล้ว",
		models.StatusHistoryCheck:     "ส่งให้งานวิจัยแล้ว",
		models.StatusPassed:           "รอคำนวนค่าตอบแทน",
		models.StatusDuplicate:        "ผลงานเคยถูกใช้แล้ว",
		models.StatusPartialDuplicate: "ซ้ำซ้อนบางส่วน",
		models.StatusReadyForBatch:    "รอจัดชุด (พร้อมเสนอ)",
		models.StatusInConsideration:  "เสนอคณะกรรมการแล้ว",
	},
	models.RoleResearch: {
		models.StatusHistoryCheck:     "รอตรวจสอบ",
		models.StatusPassed:           "ไม่เคยใช้",
		models.StatusDuplicate:        "เคยใช้แล้ว",
		models.StatusPartialDuplicate: "ซ้ำซ้อนบางส่วน",
	},
	models.RoleCommittee: {
		models.StatusInConsideration:      "รอการพิจารณา (ในรอบ)",
		models.StatusPendingConsideration: "รอการพิจารณา",
		models.StatusAppealPending:        "รอพิจารณาอุทธรณ์",
	},
	models.RoleApplicant: {
		models.StatusSubmitted:            "ส่งแล้ว",
		models.StatusHistoryCheck:         "กำลังตรวจสอบคำขอ",
		models.StatusPassed:               "ผ่าน (รอเจ้าหน้าที่งานบุคคลส่งรอบพิจารณา)",
		models.StatusDuplicate:            "ผลงานเคยถูกใช้แล้ว",
		models.StatusPartialDuplicate:     "ซ้ำซ้อนบางส่วน",
		models.StatusInConsideration:      "รอผลการพิจารณา (รอบ)",
		models.StatusPendingConsideration: "รอการพิจารณา",
	},
}

// RoleStatusLabel renders a request status from one role's perspective.
func RoleStatusLabel(status, role string) string {
	if labels, ok := roleStatusLabels[role]; ok {
		if label, ok := labels[status]; ok {
			return label
		}
	}
	return status
}

// RichStatusLabel is RoleStatusLabel with one refinement: an approved
// request whose works were not all approved is labelled as a partial
// approval.
func RichStatusLabel(req models.Request, role string) string {
	if req.Status == models.StatusApproved {
		for _, w := range req.Works {
			if w.Status == models.WorkStatusRejected || w.Status == models.WorkStatusDuplicate {
				return "อนุมัติ (ไม่อนุญาตบางส่วน)"
			}
		}
	}
	return RoleStatusLabel(req.Status, role)
}

// TranslateWorkType maps a work type id to its display label, preferring the
// configured work-types collection over the built-in set.
func TranslateWorkType(id string, configured []models.WorkType) string {
	for _, t := range configured {
		if t.ID == id {
			return t.Label
		}
	}
	for _, t := range models.BuiltinWorkTypes() {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

var contributionLabels = map[string]string{
	"first":         "ผู้ประพันธ์อันดับแรก (First Author)",
	"corresponding": "ผู้ประพันธ์บรรณกิจ (Corresponding Author)",
	"main":          "ผู้ดำเนินการหลัก (Main Author)",
	"intellectual":  "ผู้มีส่วนสำคัญทางปัญญา (Intellectual Contributor)",
	"co":            "ผู้ดำเนินการร่วม (Co-Author)",
}

// TranslateContribution maps a contribution role id to its display label.
func TranslateContribution(role string) string {
	if label, ok := contributionLabels[role]; ok {
		return label
	}
	return role
}
