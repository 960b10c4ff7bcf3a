package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/models"
	"compensation-request-api/services"
)

// ListRequests returns every request with the caller's role labels.
// Administration, research and committee share this listing.
func ListRequests(c *gin.Context) {
	all, err := services.LoadRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	role := c.GetString("role")
	views := make([]gin.H, 0, len(all))
	for _, r := range all {
		views = append(views, requestView(r, role))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": views})
}

type CommentInput struct {
	Comment string `json:"comment"`
}

// ReturnRequest sends a request back to the applicant for edits.
func ReturnRequest(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.ReturnForEdit(actorFrom(c), c.Param("id"), input.Comment, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// AdvanceToResearch forwards a request to the research office.
func AdvanceToResearch(c *gin.Context) {
	req, err := services.AdvanceToResearch(actorFrom(c), c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// MarkReadyForBatch stages a request for the next consideration round.
func MarkReadyForBatch(c *gin.Context) {
	req, err := services.MarkReadyForBatch(actorFrom(c), c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// RejectRequest rejects a request at the administration stage.
func RejectRequest(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	actor := actorFrom(c)
	var req *models.Request
	var err error
	if actor.Role == models.RoleCommittee {
		req, err = services.CommitteeReject(actor, c.Param("id"), input.Comment, time.Now())
	} else {
		req, err = services.AdminReject(actor, c.Param("id"), input.Comment, time.Now())
	}
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

type WorkLevelInput struct {
	WorkIndex int    `json:"work_index"`
	Level     string `json:"level" binding:"required"`
}

// UpdateWorkLevel corrects the quality level of a graded work and rescores
// the request.
func UpdateWorkLevel(c *gin.Context) {
	var input WorkLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.UpdateWorkLevel(actorFrom(c), c.Param("id"), input.WorkIndex, input.Level, time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}
