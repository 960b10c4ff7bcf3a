package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/services"
	"compensation-request-api/utils"
)

type CreateBatchInput struct {
	Name        string   `json:"name"`
	MeetingDate string   `json:"meeting_date"`
	RequestIDs  []string `json:"req_ids" binding:"required"`
}

// CreateBatch groups staged requests into a consideration round.
func CreateBatch(c *gin.Context) {
	var input CreateBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	batch, err := services.CreateBatch(actorFrom(c), input.Name, input.MeetingDate, input.RequestIDs, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "batch": batch})
}

// ListBatches returns every consideration round, newest first.
func ListBatches(c *gin.Context) {
	batches, err := services.LoadBatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "batches": batches})
}

// GetBatchSummary compiles the round report used in the committee meeting.
func GetBatchSummary(c *gin.Context) {
	summary, err := services.SummarizeBatch(c.Param("id"))
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"summary":           summary,
		"total_amount_text": utils.BahtText(summary.TotalAmount),
	})
}

type AnnounceBatchInput struct {
	Decisions []services.WorkDecision `json:"decisions" binding:"required"`
}

// AnnounceBatch applies the committee's per-work verdicts and closes the
// round.
func AnnounceBatch(c *gin.Context) {
	var input AnnounceBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	batch, err := services.AnnounceBatch(actorFrom(c), c.Param("id"), input.Decisions, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "batch": batch})
}
