package services

import (
	"testing"
	"time"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

func setupTestStore(t *testing.T) {
	t.Helper()
	store, err := datastore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	prev := config.Store
	config.Store = store
	t.Cleanup(func() { config.Store = prev })
}

func seedCollection(t *testing.T, collection string, docs interface{}) {
	t.Helper()
	if err := config.Store.Save(collection, docs); err != nil {
		t.Fatalf("seed %s: %v", collection, err)
	}
}

func seedApplicant(t *testing.T) {
	t.Helper()
	seedCollection(t, datastore.CollectionUsers, []models.User{{
		Username:         "somchai",
		Name:             "สมชาย ใจดี",
		Role:             models.RoleApplicant,
		AcademicPosition: "ผู้ช่วยศาสตราจารย์",
		Department:       "วิทยาการคอมพิวเตอร์",
	}})
	seedCollection(t, datastore.CollectionCriteria, []models.Criteria{models.DefaultCriteria("2568")})
}

var (
	applicant = Actor{Username: "somchai", Name: "สมชาย ใจดี", Role: models.RoleApplicant}
	adminDesk = Actor{Username: "pornthip", Name: "พรทิพย์", Role: models.RoleAdministration}
	research  = Actor{Username: "research1", Name: "งานวิจัย", Role: models.RoleResearch}
	committee = Actor{Username: "board1", Name: "กรรมการ", Role: models.RoleCommittee}
)

func testNow() time.Time {
	return time.Date(2025, time.June, 10, 10, 0, 0, 0, time.Local)
}

func sampleWorks() []models.Work {
	return []models.Work{{
		Type: models.WorkTypeResearch,
		Details: models.WorkDetails{
			Title:        "Deep learning for rice disease detection",
			Database:     "scopus_q1_q2",
			Contribution: "first",
		},
	}}
}

func TestSubmitCreatesRequest(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks(), Certify: true}, true, testNow())
	if err != nil {
		t.Fatalf("SaveRequest: %v", err)
	}
	if req.Status != models.StatusSubmitted {
		t.Fatalf("status = %q, want %q", req.Status, models.StatusSubmitted)
	}
	if req.ID == "" {
		t.Fatal("request id must be assigned")
	}
	if req.Score != 1.25 || req.SuggestedCompensation != 5600 {
		t.Fatalf("totals = (%v, %v), want (1.25, 5600)", req.Score, req.SuggestedCompensation)
	}
	if req.ApplicantInfo.AcademicPosition != "ผู้ช่วยศาสตราจารย์" {
		t.Fatal("applicant profile must be snapshotted onto the request")
	}

	// The submission raises a notification for the administration desk.
	notifs, err := NotificationsFor("pornthip", models.RoleAdministration, true)
	if err != nil {
		t.Fatalf("NotificationsFor: %v", err)
	}
	if len(notifs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifs))
	}
}

func TestOneRequestPerFiscalYear(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	if _, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err == nil {
		t.Fatal("second submission in the same fiscal year must be refused")
	}
	actionErr, ok := err.(*ActionError)
	if !ok || actionErr.Kind != ErrValidation {
		t.Fatalf("want validation error, got %v", err)
	}

	// A different fiscal year is fine.
	if _, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2569", Works: sampleWorks()}, true, testNow()); err != nil {
		t.Fatalf("submit for another year: %v", err)
	}
}

func TestDraftIsResumedNotDuplicated(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	draft, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, false, testNow())
	if err != nil {
		t.Fatalf("save draft: %v", err)
	}

	submitted, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow().Add(time.Hour))
	if err != nil {
		t.Fatalf("submit over draft: %v", err)
	}
	if submitted.ID != draft.ID {
		t.Fatalf("submit must resume the draft, got new id %s", submitted.ID)
	}

	all, err := LoadRequests()
	if err != nil {
		t.Fatalf("LoadRequests: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("requests = %d, want 1", len(all))
	}
}

func TestReturnRequiresComment(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := ReturnForEdit(adminDesk, req.ID, "", testNow()); err == nil {
		t.Fatal("return without a comment must be refused")
	}

	returned, err := ReturnForEdit(adminDesk, req.ID, "เอกสารหลักฐานไม่ครบ", testNow())
	if err != nil {
		t.Fatalf("ReturnForEdit: %v", err)
	}
	if returned.Status != models.StatusReturned {
		t.Fatalf("status = %q, want %q", returned.Status, models.StatusReturned)
	}
	if returned.ReturnDate == "" {
		t.Fatal("return date must be recorded")
	}
}

func TestEditDeadlineAfterReturn(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := ReturnForEdit(adminDesk, req.ID, "แก้ไขรายการที่ 1", testNow()); err != nil {
		t.Fatalf("ReturnForEdit: %v", err)
	}

	// Within the window the applicant can resubmit.
	within := testNow().AddDate(0, 0, 5)
	if _, err := SaveRequest(applicant, SaveRequestInput{RequestID: req.ID, FiscalYear: "2568", Works: sampleWorks()}, true, within); err != nil {
		t.Fatalf("resubmit within window: %v", err)
	}

	if _, err := ReturnForEdit(adminDesk, req.ID, "แก้ไขอีกครั้ง", within); err != nil {
		t.Fatalf("second return: %v", err)
	}

	// Past the window the resubmission is refused.
	late := within.AddDate(0, 0, EditWindowDays+2)
	_, err = SaveRequest(applicant, SaveRequestInput{RequestID: req.ID, FiscalYear: "2568", Works: sampleWorks()}, true, late)
	if err == nil {
		t.Fatal("resubmit past the edit window must be refused")
	}
}

func TestRoleGuards(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Research cannot return a request.
	if _, err := ReturnForEdit(research, req.ID, "คอมเมนต์", testNow()); err == nil {
		t.Fatal("research must not be able to return a request")
	}

	// Committee cannot approve a request that is not before the committee.
	_, err = CommitteeApprove(committee, req.ID, testNow())
	actionErr, ok := err.(*ActionError)
	if !ok || actionErr.Kind != ErrAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}

	// Another applicant cannot cancel someone else's request.
	stranger := Actor{Username: "somsri", Role: models.RoleApplicant}
	if _, err := CancelRequest(stranger, req.ID, testNow()); err == nil {
		t.Fatal("cancel by another applicant must be refused")
	}
}

func TestCancelRecordsDate(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	cancelled, err := CancelRequest(applicant, req.ID, testNow())
	if err != nil {
		t.Fatalf("CancelRequest: %v", err)
	}
	if cancelled.Status != models.StatusCancelled || cancelled.CancelDate == "" {
		t.Fatalf("cancel must set status and date, got %q %q", cancelled.Status, cancelled.CancelDate)
	}

	// A cancelled request no longer blocks a new submission this year.
	if _, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow()); err != nil {
		t.Fatalf("submit after cancel: %v", err)
	}
}

func TestResearchVerdictsAndFinalize(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	works := append(sampleWorks(), models.Work{
		Type: models.WorkTypeResearch,
		Details: models.WorkDetails{
			Title:        "Sensor networks in smart farms",
			Database:     "national",
			Contribution: "first",
		},
	})
	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: works}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := AdvanceToResearch(adminDesk, req.ID, testNow()); err != nil {
		t.Fatalf("AdvanceToResearch: %v", err)
	}

	// Finalizing with an unreviewed work is refused.
	if _, err := FinalizeResearch(research, req.ID, testNow()); err == nil {
		t.Fatal("finalize must require a verdict on every work")
	}

	if _, err := ReviewWorks(research, req.ID, []int{0}, false); err != nil {
		t.Fatalf("verify work: %v", err)
	}
	if _, err := ReviewWorks(research, req.ID, []int{1}, true); err != nil {
		t.Fatalf("flag duplicate: %v", err)
	}

	finalized, err := FinalizeResearch(research, req.ID, testNow())
	if err != nil {
		t.Fatalf("FinalizeResearch: %v", err)
	}
	if finalized.Status != models.StatusPartialDuplicate {
		t.Fatalf("status = %q, want %q", finalized.Status, models.StatusPartialDuplicate)
	}
	// Only the passed tier-1 work counts: 1.25 clears the 0.75 tier.
	if finalized.Score != 1.25 || finalized.SuggestedCompensation != 5600 {
		t.Fatalf("totals = (%v, %v), want (1.25, 5600)", finalized.Score, finalized.SuggestedCompensation)
	}
}

func TestAppealWindow(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := AdminReject(adminDesk, req.ID, "ผลงานไม่เข้าเกณฑ์", testNow()); err != nil {
		t.Fatalf("AdminReject: %v", err)
	}

	// Day 8 is past the window; the status must not change.
	late := testNow().AddDate(0, 0, AppealWindowDays+1)
	if _, err := AppealRequest(applicant, req.ID, "ขออุทธรณ์", "", late); err == nil {
		t.Fatal("appeal past the window must be refused")
	}
	current, err := GetRequest(req.ID)
	if err != nil {
		t.Fatalf("GetRequest: %v", err)
	}
	if current.Status != models.StatusRejected {
		t.Fatalf("status after refused appeal = %q, want %q", current.Status, models.StatusRejected)
	}

	// Within the window the appeal goes through once.
	within := testNow().AddDate(0, 0, 3)
	appealed, err := AppealRequest(applicant, req.ID, "มีหลักฐานเพิ่มเติม", "evidence.pdf", within)
	if err != nil {
		t.Fatalf("AppealRequest: %v", err)
	}
	if appealed.Status != models.StatusAppealPending || appealed.Appeal == nil {
		t.Fatal("appeal must set the pending status and the appeal record")
	}

	if _, err := AppealRequest(applicant, req.ID, "ซ้ำ", "", within); err == nil {
		t.Fatal("a second appeal must be refused")
	}
}

func TestCommitteeResolvesAppeal(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := AdminReject(adminDesk, req.ID, "ผลงานไม่เข้าเกณฑ์", testNow()); err != nil {
		t.Fatalf("AdminReject: %v", err)
	}

	within := testNow().AddDate(0, 0, 2)
	if _, err := AppealWorks(applicant, req.ID, "ขออุทธรณ์ผลงาน", "", within); err != nil {
		// Whole-request rejection does not reject individual works, so the
		// per-work path has nothing to appeal; fall back to the request path.
		if _, err := AppealRequest(applicant, req.ID, "ขออุทธรณ์", "", within); err != nil {
			t.Fatalf("AppealRequest: %v", err)
		}
	}

	approved, err := CommitteeApprove(committee, req.ID, within)
	if err != nil {
		t.Fatalf("CommitteeApprove: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("status = %q, want %q", approved.Status, models.StatusApproved)
	}
	if approved.Appeal == nil || approved.Appeal.Status != models.AppealStatusApproved {
		t.Fatal("appeal record must be marked approved")
	}
}

func TestCommitteeRejectRequiresComment(t *testing.T) {
	setupTestStore(t)
	seedApplicant(t)

	req, err := SaveRequest(applicant, SaveRequestInput{FiscalYear: "2568", Works: sampleWorks()}, true, testNow())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := AdvanceToResearch(adminDesk, req.ID, testNow()); err != nil {
		t.Fatalf("AdvanceToResearch: %v", err)
	}
	if _, err := ReviewWorks(research, req.ID, []int{0}, false); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, err := FinalizeResearch(research, req.ID, testNow()); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if _, err := MarkReadyForBatch(adminDesk, req.ID, testNow()); err != nil {
		t.Fatalf("MarkReadyForBatch: %v", err)
	}
	batch, err := CreateBatch(adminDesk, "", "20/6/2568", []string{req.ID}, testNow())
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	_ = batch

	if _, err := CommitteeReject(committee, req.ID, "", testNow()); err == nil {
		t.Fatal("committee rejection without a comment must be refused")
	}

	rejected, err := CommitteeReject(committee, req.ID, "คะแนนไม่ถึงเกณฑ์", testNow())
	if err != nil {
		t.Fatalf("CommitteeReject: %v", err)
	}
	if rejected.Status != models.StatusRejected || rejected.RejectionDate == "" {
		t.Fatal("rejection must set the status and the rejection date")
	}
}
