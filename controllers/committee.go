package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/services"
)

// ApproveRequest approves a request (or its pending appeal) directly.
func ApproveRequest(c *gin.Context) {
	req, err := services.CommitteeApprove(actorFrom(c), c.Param("id"), time.Now())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}
