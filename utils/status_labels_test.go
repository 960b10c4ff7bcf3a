package utils

import (
	"testing"

	"compensation-request-api/models"
)

func TestRoleStatusLabelPerspectives(t *testing.T) {
	// The same stored status reads differently per role.
	if got := RoleStatusLabel(models.StatusSubmitted, models.RoleAdministration); got != "รอตรวจสอบ" {
		t.Fatalf("administration label = %q", got)
	}
	if got := RoleStatusLabel(models.StatusSubmitted, models.RoleApplicant); got != "ส่งแล้ว" {
		t.Fatalf("applicant label = %q", got)
	}

	// Unmapped statuses fall through to the stored value.
	if got := RoleStatusLabel(models.StatusCancelled, models.RoleResearch); got != models.StatusCancelled {
		t.Fatalf("fallback label = %q", got)
	}
}

func TestRichStatusLabelPartialApproval(t *testing.T) {
	req := models.Request{
		Status: models.StatusApproved,
		Works: []models.Work{
			{Status: models.WorkStatusApproved},
			{Status: models.WorkStatusRejected},
		},
	}
	if got := RichStatusLabel(req, models.RoleApplicant); got != "อนุมัติ (ไม่อนุญาตบางส่วน)" {
		t.Fatalf("rich label = %q", got)
	}

	req.Works[1].Status = models.WorkStatusApproved
	if got := RichStatusLabel(req, models.RoleApplicant); got != models.StatusApproved {
		t.Fatalf("fully approved label = %q", got)
	}
}

func TestTranslateWorkType(t *testing.T) {
	configured := []models.WorkType{{ID: "custom_1", Label: "ผลงานอื่น", IsCustom: true}}

	if got := TranslateWorkType("custom_1", configured); got != "ผลงานอื่น" {
		t.Fatalf("configured label = %q", got)
	}
	if got := TranslateWorkType(models.WorkTypeResearch, nil); got != "บทความงานวิจัย" {
		t.Fatalf("builtin label = %q", got)
	}
	if got := TranslateWorkType("unknown", nil); got != "unknown" {
		t.Fatalf("unknown type should pass through, got %q", got)
	}
}

func TestTranslateContribution(t *testing.T) {
	if got := TranslateContribution("first"); got != "ผู้ประพันธ์อันดับแรก (First Author)" {
		t.Fatalf("contribution label = %q", got)
	}
	if got := TranslateContribution("other"); got != "other" {
		t.Fatalf("unknown contribution should pass through, got %q", got)
	}
}
