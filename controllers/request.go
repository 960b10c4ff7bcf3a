package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
	"compensation-request-api/services"
	"compensation-request-api/utils"
)

// GetSubmissionWindow reports whether the submission window is open right
// now, the closure reason when it is not, and whether the caller already
// has a live request this fiscal year.
func GetSubmissionWindow(c *gin.Context) {
	now := time.Now()
	fiscalYear := strconv.Itoa(services.FiscalYearOf(now))

	var timelines []models.Timeline
	if err := config.Store.Load(datastore.CollectionTimeline, &timelines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	open := services.IsSubmissionOpenAt(timelines, fiscalYear, now)
	message := ""
	if !open {
		message = services.ClosureMessage(services.TimelineForYear(timelines, fiscalYear), now)
	}

	hasSubmitted := false
	if c.GetString("role") == models.RoleApplicant {
		all, err := services.LoadRequests()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		username := c.GetString("username")
		for _, r := range all {
			if r.Applicant == username && r.FiscalYear == fiscalYear &&
				r.Status != models.StatusDraft && r.Status != models.StatusCancelled {
				hasSubmitted = true
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"can_submit":              open,
		"fiscal_year":             fiscalYear,
		"timeline_message":        message,
		"has_submitted_this_year": hasSubmitted,
	})
}

// ListMyRequests returns the caller's own requests with applicant-facing
// status labels.
func ListMyRequests(c *gin.Context) {
	username := c.GetString("username")

	all, err := services.LoadRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	mine := make([]gin.H, 0)
	for _, r := range all {
		if r.Applicant != username {
			continue
		}
		mine = append(mine, requestView(r, models.RoleApplicant))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": mine})
}

// GetRequestDetail returns one request. Applicants may only read their own.
func GetRequestDetail(c *gin.Context) {
	req, err := services.GetRequest(c.Param("id"))
	if err != nil {
		respondActionError(c, err)
		return
	}

	role := c.GetString("role")
	if role == models.RoleApplicant && req.Applicant != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "คุณไม่มีสิทธิ์เข้าถึงข้อมูลนี้"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "request": req, "status_label": utils.RichStatusLabel(*req, role)})
}

// SaveRequest creates or updates a draft without submitting it.
func SaveRequest(c *gin.Context) {
	saveRequest(c, false)
}

// SubmitRequest creates or updates a request and submits it for review.
func SubmitRequest(c *gin.Context) {
	saveRequest(c, true)
}

func saveRequest(c *gin.Context, submit bool) {
	var input services.SaveRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.SaveRequest(actorFrom(c), input, submit, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// CancelRequest cancels the caller's own request.
func CancelRequest(c *gin.Context) {
	req, err := services.CancelRequest(actorFrom(c), c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

type AppealInput struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
}

// AppealRequest files a whole-request appeal against a rejection.
func AppealRequest(c *gin.Context) {
	var input AppealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.AppealRequest(actorFrom(c), c.Param("id"), input.Reason, input.Evidence, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// AppealWorks appeals the rejected works of a request individually.
func AppealWorks(c *gin.Context) {
	var input AppealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.AppealWorks(actorFrom(c), c.Param("id"), input.Reason, input.Evidence, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// requestView renders a request for listings, with the role's status label.
func requestView(r models.Request, role string) gin.H {
	return gin.H{
		"id":                     r.ID,
		"applicant":              r.Applicant,
		"applicant_name":         r.ApplicantName,
		"fiscal_year":            r.FiscalYear,
		"date":                   r.Date,
		"status":                 r.Status,
		"status_label":           utils.RichStatusLabel(r, role),
		"work_count":             len(r.Works),
		"score":                  r.Score,
		"suggested_compensation": r.SuggestedCompensation,
		"approved_amount":        r.ApprovedAmount,
		"batch_id":               r.BatchID,
	}
}
