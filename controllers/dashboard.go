package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/models"
	"compensation-request-api/services"
	"compensation-request-api/utils"
)

// GetDashboardStats returns dashboard statistics. Staff roles see the whole
// collection; applicants see their own requests only.
func GetDashboardStats(c *gin.Context) {
	role := c.GetString("role")
	username := c.GetString("username")

	all, err := services.LoadRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	fiscalYear := c.Query("fiscal_year")
	if fiscalYear == "" {
		fiscalYear = strconv.Itoa(services.FiscalYearOf(time.Now()))
	}

	stats := make(map[string]interface{})
	byStatus := make(map[string]int)
	totalApproved := 0.0
	totalSuggested := 0.0
	count := 0

	for _, r := range all {
		if role == models.RoleApplicant && r.Applicant != username {
			continue
		}
		if r.FiscalYear != fiscalYear {
			continue
		}
		count++
		byStatus[r.Status]++
		totalSuggested += r.SuggestedCompensation
		if r.Status == models.StatusApproved || r.Status == models.StatusPartialApproved {
			totalApproved += r.ApprovedAmount
		}
	}

	stats["fiscal_year"] = fiscalYear
	stats["request_count"] = count
	stats["by_status"] = byStatus
	stats["total_suggested_compensation"] = totalSuggested
	stats["total_approved_compensation"] = totalApproved
	stats["current_date"] = services.FormatThaiDate(time.Now(), false)
	stats["current_date_text"] = utils.FormatThaiDateLong(time.Now())
	stats["total_approved_text"] = utils.BahtText(totalApproved)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
