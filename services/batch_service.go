package services

import (
	"fmt"
	"time"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

// CreateBatch groups staged requests into a consideration round. Every
// member request must currently be staged; members move into the
// in-consideration state and carry the batch id from then on.
func CreateBatch(actor Actor, name string, meetingDate string, requestIDs []string, now time.Time) (*models.Batch, error) {
	if actor.Role != models.RoleAdministration {
		return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
	}
	if len(requestIDs) == 0 {
		return nil, validationErr("กรุณาเลือกคำขออย่างน้อย 1 รายการ")
	}

	var batch models.Batch
	err := mutateRequests(func(all []models.Request) ([]models.Request, []models.Notification, error) {
		members := make([]*models.Request, 0, len(requestIDs))
		for _, id := range requestIDs {
			req := findRequest(all, id)
			if req == nil {
				return nil, nil, notFoundErr("ไม่พบข้อมูลคำขอ %s", id)
			}
			if req.Status != models.StatusReadyForBatch {
				return nil, nil, validationErr("คำขอ %s ไม่อยู่ในสถานะรอเสนอพิจารณา", id)
			}
			members = append(members, req)
		}

		batchName := name
		if batchName == "" {
			batchName = fmt.Sprintf("รายงานคำขอ รอบปีงบประมาณ %s", members[0].FiscalYear)
		}

		batch = models.Batch{
			ID:          "ROUND-" + now.Format("20060102150405"),
			Name:        batchName,
			MeetingDate: meetingDate,
			FiscalYear:  members[0].FiscalYear,
			CreatedDate: FormatThaiDate(now, true),
			Status:      models.BatchStatusPending,
			RequestIDs:  requestIDs,
		}

		var batches []models.Batch
		if err := config.Store.Load(datastore.CollectionBatches, &batches); err != nil {
			return nil, nil, err
		}
		batches = append([]models.Batch{batch}, batches...)
		if err := config.Store.Save(datastore.CollectionBatches, batches); err != nil {
			return nil, nil, err
		}

		for _, req := range members {
			req.Status = models.StatusInConsideration
			req.BatchID = batch.ID
		}
		return all, nil, nil
	})
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// WorkDecision is the committee's verdict on one work of one request.
type WorkDecision struct {
	RequestID string `json:"req_id"`
	WorkIndex int    `json:"work_index"`
	Approved  bool   `json:"approved"`
	Comment   string `json:"comment"`
}

// AnnounceBatch applies the committee's per-work decisions and closes the
// round. Each member request is rescored over its approved works only; its
// final status follows from how many works survived.
func AnnounceBatch(actor Actor, batchID string, decisions []WorkDecision, now time.Time) (*models.Batch, error) {
	if actor.Role != models.RoleCommittee {
		return nil, authorizationErr("คุณไม่มีสิทธิ์ดำเนินการนี้")
	}

	var batches []models.Batch
	if err := config.Store.Load(datastore.CollectionBatches, &batches); err != nil {
		return nil, err
	}
	var batch *models.Batch
	for i := range batches {
		if batches[i].ID == batchID {
			batch = &batches[i]
			break
		}
	}
	if batch == nil {
		return nil, notFoundErr("ไม่พบรอบการพิจารณา")
	}
	if batch.Status == models.BatchStatusAnnounced {
		return nil, validationErr("รอบการพิจารณานี้ประกาศผลไปแล้ว")
	}

	decisionsByRequest := make(map[string][]WorkDecision)
	for _, d := range decisions {
		decisionsByRequest[d.RequestID] = append(decisionsByRequest[d.RequestID], d)
	}

	err := mutateRequests(func(all []models.Request) ([]models.Request, []models.Notification, error) {
		for _, id := range batch.RequestIDs {
			req := findRequest(all, id)
			if req == nil {
				continue
			}
			if req.Status != models.StatusInConsideration && req.Status != models.StatusPendingConsideration {
				continue
			}
			applyBatchDecisions(req, decisionsByRequest[id], now)
		}
		return all, nil, nil
	})
	if err != nil {
		return nil, err
	}

	batch.Status = models.BatchStatusAnnounced
	if err := config.Store.Save(datastore.CollectionBatches, batches); err != nil {
		return nil, err
	}

	copied := *batch
	return &copied, nil
}

// applyBatchDecisions marks each decided work approved or rejected, derives
// the request status against the full work list, and rescores the request
// from the approved works only.
func applyBatchDecisions(req *models.Request, decisions []WorkDecision, now time.Time) {
	for _, d := range decisions {
		if d.WorkIndex < 0 || d.WorkIndex >= len(req.Works) {
			continue
		}
		w := &req.Works[d.WorkIndex]
		if d.Approved {
			w.Status = models.WorkStatusApproved
		} else {
			w.Status = models.WorkStatusRejected
		}
		if d.Comment != "" {
			w.Comment = d.Comment
		}
	}

	approved := 0
	for _, w := range req.Works {
		if w.Status == models.WorkStatusApproved {
			approved++
		}
	}

	// Duplicates and works the committee left undecided count against a
	// full approval: a request that lost any work stops at the partial
	// outcome.
	switch {
	case len(req.Works) > 0 && approved == len(req.Works):
		req.Status = models.StatusApproved
	case approved > 0:
		req.Status = models.StatusPartialApproved
	default:
		req.Status = models.StatusRejected
		req.RejectionDate = FormatThaiDate(now, false)
	}

	rescoreApprovedWorks(req)
}

// rescoreApprovedWorks recomputes the request totals from the approved works
// alone; every other work is forced to zero.
func rescoreApprovedWorks(req *models.Request) {
	indexes := make([]int, 0, len(req.Works))
	subset := make([]models.Work, 0, len(req.Works))
	for i, w := range req.Works {
		if w.Status == models.WorkStatusApproved {
			indexes = append(indexes, i)
			subset = append(subset, w)
		}
	}

	var criteriaList []models.Criteria
	if err := config.Store.Load(datastore.CollectionCriteria, &criteriaList); err != nil {
		return
	}

	score, comp := ComputeRequestTotals(subset, req.ApplicantInfo.AcademicPosition, req.FiscalYear, criteriaList)
	for j, i := range indexes {
		req.Works[i] = subset[j]
	}
	for i := range req.Works {
		w := &req.Works[i]
		if w.Status == models.WorkStatusApproved {
			continue
		}
		w.ScoreCalc = 0
		w.PaymentCalc = 0
	}

	req.Score = score
	req.ApprovedAmount = comp
	req.TotalScore = score
	req.TotalCompensation = comp
}

// BatchSummary is the committee-facing report for one round.
type BatchSummary struct {
	Batch          models.Batch     `json:"batch"`
	ApplicantCount int              `json:"applicant_count"`
	EligibleCount  int              `json:"eligible_count"`
	TotalAmount    float64          `json:"total_amount"`
	Requests       []models.Request `json:"requests"`
	WorkBreakdown  map[string]int   `json:"work_breakdown"`
}

// SummarizeBatch compiles the round report: member requests, the per-type
// work breakdown (duplicates excluded), and the eligible total amount.
func SummarizeBatch(batchID string) (*BatchSummary, error) {
	var batches []models.Batch
	if err := config.Store.Load(datastore.CollectionBatches, &batches); err != nil {
		return nil, err
	}
	var batch *models.Batch
	for i := range batches {
		if batches[i].ID == batchID {
			batch = &batches[i]
			break
		}
	}
	if batch == nil {
		return nil, notFoundErr("ไม่พบรอบการพิจารณา")
	}

	all, err := LoadRequests()
	if err != nil {
		return nil, err
	}
	inBatch := make(map[string]bool, len(batch.RequestIDs))
	for _, id := range batch.RequestIDs {
		inBatch[id] = true
	}

	summary := &BatchSummary{
		Batch:         *batch,
		WorkBreakdown: make(map[string]int),
	}
	for _, req := range all {
		if !inBatch[req.ID] {
			continue
		}
		summary.Requests = append(summary.Requests, req)
		summary.ApplicantCount++
		amount := req.ApprovedAmount
		if amount == 0 {
			amount = req.SuggestedCompensation
		}
		if amount > 0 {
			summary.EligibleCount++
			summary.TotalAmount += amount
		}
		for _, w := range req.Works {
			if w.Status == models.WorkStatusDuplicate {
				continue
			}
			summary.WorkBreakdown[w.Type]++
		}
	}
	return summary, nil
}

// LoadBatches returns every consideration round, newest first.
func LoadBatches() ([]models.Batch, error) {
	var batches []models.Batch
	if err := config.Store.Load(datastore.CollectionBatches, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}
