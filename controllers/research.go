package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/services"
)

type ReviewWorksInput struct {
	Indexes []int `json:"indexes" binding:"required"`
}

// VerifyWorks marks the given works as passed (never claimed before).
func VerifyWorks(c *gin.Context) {
	reviewWorks(c, false)
}

// FlagDuplicateWorks marks the given works as already claimed.
func FlagDuplicateWorks(c *gin.Context) {
	reviewWorks(c, true)
}

func reviewWorks(c *gin.Context, duplicate bool) {
	var input ReviewWorksInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}

	req, err := services.ReviewWorks(actorFrom(c), c.Param("id"), input.Indexes, duplicate)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// FinalizeResearch closes the history check: the request's status follows
// from the per-work verdicts and the totals are recomputed.
func FinalizeResearch(c *gin.Context) {
	req, err := services.FinalizeResearch(actorFrom(c), c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// CheckSubmissionHistory reports prior claims of each work of a request,
// split into the applicant's own prior claims and claims by co-authors.
func CheckSubmissionHistory(c *gin.Context) {
	report, err := services.CheckSubmissionHistory(c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": report})
}
