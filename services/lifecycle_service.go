package services

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

// Appeal and return-for-edit deadlines, in days from the anchoring date.
const (
	EditWindowDays   = 7
	AppealWindowDays = 7
)

// Actor is the explicit actor context passed into every lifecycle
// entrypoint: who is acting, under which role.
type Actor struct {
	Username string
	Name     string
	Role     string
}

// ActionErrorKind separates user-visible rejections: authorization failures
// (wrong role or state), validation failures (missing input), and lookups.
type ActionErrorKind string

const (
	ErrAuthorization ActionErrorKind = "authorization"
	ErrValidation    ActionErrorKind = "validation"
	ErrNotFound      ActionErrorKind = "not_found"
)

// ActionError rejects a lifecycle action without mutating anything.
type ActionError struct {
	Kind   ActionErrorKind
	Reason string
}

func (e *ActionError) Error() string {
	return e.Reason
}

func authorizationErr(format string, args ...interface{}) *ActionError {
	return &ActionError{Kind: ErrAuthorization, Reason: fmt.Sprintf(format, args...)}
}

func validationErr(format string, args ...interface{}) *ActionError {
	return &ActionError{Kind: ErrValidation, Reason: fmt.Sprintf(format, args...)}
}

func notFoundErr(format string, args ...interface{}) *ActionError {
	return &ActionError{Kind: ErrNotFound, Reason: fmt.Sprintf(format, args...)}
}

// Lifecycle action names.
const (
	ActionSave             = "save"
	ActionSubmit           = "submit"
	ActionCancel           = "cancel"
	ActionAppeal           = "appeal"
	ActionAppealWorks      = "appeal_works"
	ActionReturn           = "return"
	ActionAdvanceResearch  = "advance_research"
	ActionMarkReady        = "mark_ready"
	ActionReject           = "reject"
	ActionUpdateWorkLevel  = "update_work_level"
	ActionVerifyWorks      = "verify_works"
	ActionFlagDuplicates   = "flag_duplicates"
	ActionFinalizeResearch = "finalize_research"
	ActionApprove          = "approve"
)

type transitionKey struct {
	role   string
	action string
}

// statusNew is the pseudo-source-state of a request being created.
const statusNew = ""

// transitionTable is the closed set of permitted (role, action) pairs and
// the request statuses each may act on. Any action not present here is
// rejected outright.
var transitionTable = map[transitionKey][]string{
	{models.RoleApplicant, ActionSave}:   {statusNew, models.StatusDraft, models.StatusReturned},
	{models.RoleApplicant, ActionSubmit}: {statusNew, models.StatusDraft, models.StatusReturned},
	{models.RoleApplicant, ActionCancel}: {
		models.StatusDraft, models.StatusSubmitted, models.StatusReturned,
		models.StatusHistoryCheck, models.StatusPassed, models.StatusDuplicate,
		models.StatusPartialDuplicate, models.StatusReadyForBatch,
	},
	{models.RoleApplicant, ActionAppeal}:      {models.StatusRejected},
	{models.RoleApplicant, ActionAppealWorks}: {models.StatusRejected},

	{models.RoleAdministration, ActionReturn}:          adminActableStatuses,
	{models.RoleAdministration, ActionAdvanceResearch}: adminActableStatuses,
	{models.RoleAdministration, ActionMarkReady}:       adminActableStatuses,
	{models.RoleAdministration, ActionReject}:          adminActableStatuses,
	{models.RoleAdministration, ActionUpdateWorkLevel}: adminActableStatuses,

	{models.RoleResearch, ActionVerifyWorks}:      {models.StatusHistoryCheck},
	{models.RoleResearch, ActionFlagDuplicates}:   {models.StatusHistoryCheck},
	{models.RoleResearch, ActionFinalizeResearch}: {models.StatusHistoryCheck},

	{models.RoleCommittee, ActionApprove}: committeeActableStatuses,
	{models.RoleCommittee, ActionReject}:  committeeActableStatuses,
}

var adminActableStatuses = []string{
	models.StatusSubmitted, models.StatusPassed, models.StatusDuplicate,
	models.StatusPartialDuplicate, models.StatusReadyForBatch, models.StatusInConsideration,
}

var committeeActableStatuses = []string{
	models.StatusInConsideration, models.StatusPendingConsideration, models.StatusAppealPending,
}

// guardTransition rejects any (role, action, status) combination not present
// in the transition table.
func guardTransition(role, action, status string) *ActionError {
	allowed, ok := transitionTable[transitionKey{role: role, action: action}]
	if !ok {
		return authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
	}
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return authorizationErr("ไม่สามารถดำเนินการได้ในสถานะนี้")
}

// mutationMu serializes every read-modify-write over the requests
// collection. The store itself only guarantees atomic replacement, so
// without a single writer two concurrent actions could overwrite each
// other's changes.
var mutationMu sync.Mutex

// mutateRequests runs fn over the loaded requests collection and persists
// the slice fn returns. Notifications returned by fn are pushed after the
// save succeeds; a notification failure is logged but does not fail the
// action.
func mutateRequests(fn func(all []models.Request) ([]models.Request, []models.Notification, error)) error {
	mutationMu.Lock()
	defer mutationMu.Unlock()

	var all []models.Request
	if err := config.Store.Load(datastore.CollectionRequests, &all); err != nil {
		return err
	}

	updated, notifs, err := fn(all)
	if err != nil {
		return err
	}

	if err := config.Store.Save(datastore.CollectionRequests, updated); err != nil {
		return err
	}

	if err := PushNotifications(notifs); err != nil {
		log.Printf("Warning: failed to push notifications: %v", err)
	}
	return nil
}

// mutateRequest locates one request and applies fn to it under the writer
// lock.
func mutateRequest(reqID string, fn func(req *models.Request, all []models.Request) ([]models.Notification, error)) (*models.Request, error) {
	var result *models.Request
	err := mutateRequests(func(all []models.Request) ([]models.Request, []models.Notification, error) {
		req := findRequest(all, reqID)
		if req == nil {
			return nil, nil, notFoundErr("ไม่พบข้อมูลคำขอ")
		}
		notifs, err := fn(req, all)
		if err != nil {
			return nil, nil, err
		}
		copied := *req
		result = &copied
		return all, notifs, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findRequest(all []models.Request, id string) *models.Request {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

// LoadRequests returns the whole requests collection.
func LoadRequests() ([]models.Request, error) {
	var all []models.Request
	if err := config.Store.Load(datastore.CollectionRequests, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetRequest returns one request by id.
func GetRequest(id string) (*models.Request, error) {
	all, err := LoadRequests()
	if err != nil {
		return nil, err
	}
	req := findRequest(all, id)
	if req == nil {
		return nil, notFoundErr("ไม่พบข้อมูลคำขอ")
	}
	copied := *req
	return &copied, nil
}

// SaveRequestInput carries everything the applicant submits with a request.
type SaveRequestInput struct {
	RequestID        string        `json:"request_id"`
	FiscalYear       string        `json:"fiscal_year"`
	AcademicPosition string        `json:"academic_position"`
	Works            []models.Work `json:"works"`
	Certify          bool          `json:"certify"`
}

// SaveRequest creates or updates the applicant's request for the fiscal
// year. submit moves it to the submitted state; otherwise it stays (or
// becomes) a draft. Exactly one non-draft request may exist per applicant
// per fiscal year.
func SaveRequest(actor Actor, input SaveRequestInput, submit bool, now time.Time) (*models.Request, error) {
	action := ActionSave
	if submit {
		action = ActionSubmit
	}
	if actor.Role != models.RoleApplicant {
		return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
	}

	canSubmit, err := IsSubmissionOpen(now)
	if err != nil {
		return nil, err
	}
	if submit && !canSubmit {
		return nil, validationErr("ไม่อยู่ในช่วงเวลาที่เปิดรับคำขอ")
	}

	fiscalYear := input.FiscalYear
	if fiscalYear == "" {
		fiscalYear = strconv.Itoa(FiscalYearOf(now))
	}

	profile, err := userProfile(actor.Username)
	if err != nil {
		return nil, err
	}

	position := input.AcademicPosition
	if position == "" && profile != nil {
		position = profile.AcademicPosition
	}

	var result *models.Request
	mutErr := mutateRequests(func(all []models.Request) ([]models.Request, []models.Notification, error) {
		var req *models.Request

		if input.RequestID != "" {
			req = findRequest(all, input.RequestID)
			if req == nil {
				return nil, nil, notFoundErr("ไม่พบข้อมูลคำขอ")
			}
			if req.Applicant != actor.Username {
				return nil, nil, authorizationErr("คุณไม่มีสิทธิ์เข้าถึงข้อมูลนี้")
			}
			if err := guardTransition(actor.Role, action, req.Status); err != nil {
				return nil, nil, err
			}
			if req.Status == models.StatusReturned && req.ReturnDate != "" {
				if RemainingDaysAt(req.ReturnDate, EditWindowDays, now) < 0 {
					return nil, nil, validationErr("เกินกำหนดเวลาการแก้ไขคำขอ (%d วัน) ไม่สามารถบันทึกหรือส่งคำขอได้", EditWindowDays)
				}
			}
		} else {
			// One submission cycle per fiscal year: a draft is resumed, a
			// non-draft blocks a second request.
			for i := range all {
				existing := &all[i]
				if existing.Applicant != actor.Username || existing.FiscalYear != fiscalYear {
					continue
				}
				if existing.Status == models.StatusDraft {
					req = existing
					break
				}
				if existing.Status != models.StatusCancelled {
					return nil, nil, validationErr("คุณได้ยื่นคำขอไปแล้วในปีงบประมาณนี้ สามารถยื่นได้เพียงปีละ 1 ครั้งเท่านั้น")
				}
			}
		}

		score, comp, calcErr := computeTotalsFromStore(input.Works, position, fiscalYear)
		if calcErr != nil {
			return nil, nil, calcErr
		}

		status := models.StatusDraft
		if submit {
			status = models.StatusSubmitted
		}

		timelineStatus := "late"
		if canSubmit {
			timelineStatus = "ontime"
		}

		if req == nil {
			all = append(all, models.Request{})
			req = &all[len(all)-1]
			req.ID = fmt.Sprintf("REQ-%d%s-%s", ToThaiYear(now), now.Format("0102150405"), uuid.NewString()[:8])
		}

		req.Applicant = actor.Username
		req.ApplicantName = actor.Name
		if profile != nil {
			req.ApplicantInfo = models.ApplicantInfo{
				TitleName:        profile.TitleName,
				AcademicPosition: position,
				PositionDate:     profile.PositionDate,
				PositionNumber:   profile.PositionNumber,
				Department:       profile.Department,
				Faculty:          profile.Faculty,
			}
		} else {
			req.ApplicantInfo.AcademicPosition = position
		}
		req.FiscalYear = fiscalYear
		req.Works = input.Works
		req.Date = FormatThaiDate(now, true)
		req.Status = status
		req.Score = score
		req.SuggestedCompensation = comp
		req.TimelineStatus = timelineStatus
		req.Certify = input.Certify

		copied := *req
		result = &copied

		if submit {
			msg := fmt.Sprintf("มีคำขอใหม่ %s จาก %s", req.ID, actor.Name)
			if input.RequestID != "" {
				msg = fmt.Sprintf("มีการแก้ไข/ส่งคำขอ %s โดย %s", req.ID, actor.Name)
			}
			return all, []models.Notification{
				NewNotification(msg, models.RoleAdministration, "", req.ID, now),
			}, nil
		}
		return all, nil, nil
	})
	if mutErr != nil {
		return nil, mutErr
	}
	return result, nil
}

// CancelRequest cancels the applicant's own request from any pre-terminal
// state listed in the transition table.
func CancelRequest(actor Actor, reqID string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleApplicant || req.Applicant != actor.Username {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}
		if err := guardTransition(actor.Role, ActionCancel, req.Status); err != nil {
			return nil, err
		}

		req.Status = models.StatusCancelled
		req.CancelDate = FormatThaiDate(now, true)

		return []models.Notification{
			NewNotification(fmt.Sprintf("คำขอ %s ถูกยกเลิกโดยผู้ยื่น", req.ID), models.RoleAdministration, "", req.ID, now),
		}, nil
	})
}

// AppealRequest files a whole-request appeal within the appeal window.
func AppealRequest(actor Actor, reqID, reason, evidence string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleApplicant || req.Applicant != actor.Username {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}
		if err := guardTransition(actor.Role, ActionAppeal, req.Status); err != nil {
			return nil, err
		}
		if req.Appeal != nil {
			return nil, validationErr("คุณได้ยื่นอุทธรณ์สำหรับคำขอนี้ไปแล้ว")
		}
		if reason == "" {
			return nil, validationErr("กรุณาระบุเหตุผลในการอุทธรณ์")
		}
		if req.RejectionDate != "" && RemainingDaysAt(req.RejectionDate, AppealWindowDays, now) < 0 {
			return nil, validationErr("เกินกำหนดเวลาการยื่นอุทธรณ์ (%d วัน)", AppealWindowDays)
		}

		req.Status = models.StatusAppealPending
		req.AppealDate = FormatThaiDate(now, true)
		req.Appeal = &models.Appeal{
			Reason:   reason,
			Evidence: evidence,
			Date:     FormatThaiDate(now, true),
			Status:   models.AppealStatusPending,
		}

		return []models.Notification{
			NewNotification(fmt.Sprintf("มีการยื่นอุทธรณ์สำหรับคำขอ %s", req.ID), models.RoleCommittee, "", req.ID, now),
		}, nil
	})
}

// AppealWorks appeals every rejected work that has not been appealed before.
// Each work may be appealed once.
func AppealWorks(actor Actor, reqID, reason, evidence string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleApplicant || req.Applicant != actor.Username {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}
		if err := guardTransition(actor.Role, ActionAppealWorks, req.Status); err != nil {
			return nil, err
		}
		if reason == "" {
			return nil, validationErr("กรุณาระบุเหตุผลในการอุทธรณ์")
		}
		if req.RejectionDate != "" && RemainingDaysAt(req.RejectionDate, AppealWindowDays, now) < 0 {
			return nil, validationErr("เกินกำหนดเวลาการยื่นอุทธรณ์ (%d วัน)", AppealWindowDays)
		}

		appealed := 0
		for i := range req.Works {
			w := &req.Works[i]
			if w.Status != models.WorkStatusRejected || w.AlreadyAppealed {
				continue
			}
			w.Status = models.WorkStatusAppealPending
			w.AppealComment = reason
			w.AppealEvidence = evidence
			w.AlreadyAppealed = true
			appealed++
		}
		if appealed == 0 {
			return nil, validationErr("ไม่พบรายการที่สามารถยื่นอุทธรณ์ได้")
		}

		req.Status = models.StatusAppealPending
		req.AppealDate = FormatThaiDate(now, true)

		return []models.Notification{
			NewNotification(fmt.Sprintf("มีการยื่นอุทธรณ์คำขอ %s (%d รายการ)", req.ID, appealed), models.RoleCommittee, "", req.ID, now),
		}, nil
	})
}

// ReturnForEdit sends a request back to the applicant with a mandatory
// comment; the applicant then has the edit window to resubmit.
func ReturnForEdit(actor Actor, reqID, comment string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, ActionReturn, req.Status); err != nil {
			return nil, err
		}
		if comment == "" {
			return nil, validationErr("กรุณาระบุสิ่งที่ต้องแก้ไข ก่อนทำการส่งคืน")
		}

		req.Status = models.StatusReturned
		req.Comment = comment
		req.ReturnDate = FormatThaiDate(now, false)

		return []models.Notification{
			NewNotification(fmt.Sprintf("คำขอ %s ถูกส่งคืนแก้ไข: %s", req.ID, comment), "", req.Applicant, req.ID, now),
		}, nil
	})
}

// AdvanceToResearch forwards a submitted request to the research office for
// the submission-history check.
func AdvanceToResearch(actor Actor, reqID string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, ActionAdvanceResearch, req.Status); err != nil {
			return nil, err
		}

		req.Status = models.StatusHistoryCheck

		return []models.Notification{
			NewNotification(fmt.Sprintf("คำขอ %s รอตรวจประวัติการยื่นขอ", req.ID), models.RoleResearch, "", req.ID, now),
		}, nil
	})
}

// MarkReadyForBatch stages a request for the next committee round.
func MarkReadyForBatch(actor Actor, reqID string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, ActionMarkReady, req.Status); err != nil {
			return nil, err
		}
		req.Status = models.StatusReadyForBatch
		return nil, nil
	})
}

// AdminReject rejects a request at the administration stage. The rejection
// date anchors the applicant's appeal window.
func AdminReject(actor Actor, reqID, comment string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleAdministration {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}
		return rejectRequest(req, ActionReject, actor.Role, comment, now)
	})
}

// CommitteeReject rejects a request (or a pending appeal) at the committee
// stage.
func CommitteeReject(actor Actor, reqID, comment string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleCommittee {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}

		wasAppeal := req.Status == models.StatusAppealPending
		notifs, err := rejectRequest(req, ActionReject, actor.Role, comment, now)
		if err != nil {
			return nil, err
		}

		if wasAppeal {
			if req.Appeal == nil {
				req.Appeal = &models.Appeal{}
			}
			req.Appeal.Status = models.AppealStatusRejected
		}

		// Works under appeal lose the appeal; everything is rescored.
		for i := range req.Works {
			w := &req.Works[i]
			if w.Status == models.WorkStatusAppealPending {
				w.Status = models.WorkStatusRejected
				if comment != "" {
					w.Comment = comment
				} else {
					w.Comment = models.WorkStatusRejected
				}
			}
		}

		score, comp, calcErr := computeTotalsFromStore(req.Works, req.ApplicantInfo.AcademicPosition, req.FiscalYear)
		if calcErr != nil {
			return nil, calcErr
		}
		req.Score = score
		req.ApprovedAmount = comp

		return notifs, nil
	})
}

func rejectRequest(req *models.Request, action, role, comment string, now time.Time) ([]models.Notification, error) {
	if err := guardTransition(role, action, req.Status); err != nil {
		return nil, err
	}
	if comment == "" {
		return nil, validationErr("กรุณาระบุเหตุผลในการปฏิเสธคำขอ")
	}

	req.Status = models.StatusRejected
	req.Comment = comment
	req.RejectionDate = FormatThaiDate(now, false)

	return []models.Notification{
		NewNotification(fmt.Sprintf("คำขอ %s ถูกปฏิเสธ (ไม่อนุมัติ)", req.ID), "", req.Applicant, req.ID, now),
	}, nil
}

// CommitteeApprove approves a request or resolves its pending appeal.
// Appeal-pending works become approved and the aggregates are recomputed.
func CommitteeApprove(actor Actor, reqID string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if actor.Role != models.RoleCommittee {
			return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
		}
		if err := guardTransition(actor.Role, ActionApprove, req.Status); err != nil {
			return nil, err
		}

		wasAppeal := req.Status == models.StatusAppealPending
		req.Status = models.StatusApproved
		if wasAppeal {
			if req.Appeal == nil {
				req.Appeal = &models.Appeal{}
			}
			req.Appeal.Status = models.AppealStatusApproved
		}

		for i := range req.Works {
			w := &req.Works[i]
			if w.Status == models.WorkStatusAppealPending {
				w.Status = models.WorkStatusApproved
				w.Comment = "ผ่านการอุทธรณ์"
			}
		}

		score, comp, calcErr := computeTotalsFromStore(req.Works, req.ApplicantInfo.AcademicPosition, req.FiscalYear)
		if calcErr != nil {
			return nil, calcErr
		}
		req.Score = score
		req.ApprovedAmount = comp

		return []models.Notification{
			NewNotification(fmt.Sprintf("คำขอ %s ได้รับการอนุมัติแล้ว", req.ID), "", req.Applicant, req.ID, now),
		}, nil
	})
}

// UpdateWorkLevel lets administration correct the level grade of one of the
// merged-type works, then rescores the whole request.
func UpdateWorkLevel(actor Actor, reqID string, workIndex int, level string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, ActionUpdateWorkLevel, req.Status); err != nil {
			return nil, err
		}
		if workIndex < 0 || workIndex >= len(req.Works) {
			return nil, notFoundErr("ไม่พบผลงานที่ต้องการแก้ไข")
		}
		w := &req.Works[workIndex]
		if !models.MergedLevelType(w.Type) {
			return nil, validationErr("ผลงานประเภทนี้ไม่รองรับการแก้ไขระดับคุณภาพ")
		}

		w.Details.Level = level

		score, comp, calcErr := computeTotalsFromStore(req.Works, req.ApplicantInfo.AcademicPosition, req.FiscalYear)
		if calcErr != nil {
			return nil, calcErr
		}
		req.TotalScore = score
		req.TotalCompensation = comp
		req.Score = score
		req.SuggestedCompensation = comp

		return nil, nil
	})
}

// ReviewWorks records research verdicts (passed or duplicate) for the given
// work indexes. Out-of-range indexes are skipped.
func ReviewWorks(actor Actor, reqID string, indexes []int, duplicate bool) (*models.Request, error) {
	action := ActionVerifyWorks
	verdict := models.WorkStatusPassed
	if duplicate {
		action = ActionFlagDuplicates
		verdict = models.WorkStatusDuplicate
	}

	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, action, req.Status); err != nil {
			return nil, err
		}
		for _, idx := range indexes {
			if idx < 0 || idx >= len(req.Works) {
				continue
			}
			req.Works[idx].Status = verdict
		}
		return nil, nil
	})
}

// FinalizeResearch derives the request's aggregate status from the per-work
// research verdicts and rescores it with duplicates forced to zero. Every
// work must carry a terminal verdict first.
func FinalizeResearch(actor Actor, reqID string, now time.Time) (*models.Request, error) {
	return mutateRequest(reqID, func(req *models.Request, all []models.Request) ([]models.Notification, error) {
		if err := guardTransition(actor.Role, ActionFinalizeResearch, req.Status); err != nil {
			return nil, err
		}

		anyDuplicate := false
		anyPass := false
		for _, w := range req.Works {
			switch w.Status {
			case models.WorkStatusDuplicate:
				anyDuplicate = true
			case models.WorkStatusPassed:
				anyPass = true
			default:
				return nil, validationErr("กรุณาตรวจสอบผลงานให้ครบทุกรายการก่อนส่งผล")
			}
		}

		var message string
		switch {
		case anyDuplicate && anyPass:
			req.Status = models.StatusPartialDuplicate
			message = fmt.Sprintf("พบงานซ้ำซ้อนบางส่วนในคำขอ %s", req.ID)
		case anyDuplicate:
			req.Status = models.StatusDuplicate
			message = fmt.Sprintf("พบงานซ้ำซ้อนทั้งหมดในคำขอ %s", req.ID)
		default:
			req.Status = models.StatusPassed
			message = fmt.Sprintf("ตรวจสอบผลงานคำขอ %s เรียบร้อยแล้ว (ถูกต้องทั้งหมด)", req.ID)
		}

		score, comp, calcErr := computeTotalsFromStore(req.Works, req.ApplicantInfo.AcademicPosition, req.FiscalYear)
		if calcErr != nil {
			return nil, calcErr
		}
		req.Score = score
		req.SuggestedCompensation = comp
		req.TotalScore = score
		req.TotalCompensation = comp
		req.ApprovedAmount = comp

		return []models.Notification{
			NewNotification(message, models.RoleAdministration, "", req.ID, now),
		}, nil
	})
}

func userProfile(username string) (*models.User, error) {
	var users []models.User
	if err := config.Store.Load(datastore.CollectionUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}
