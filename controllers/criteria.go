package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
	"compensation-request-api/services"
)

// ListCriteria returns the scoring profile of every fiscal year.
func ListCriteria(c *gin.Context) {
	var criteria []models.Criteria
	if err := config.Store.Load(datastore.CollectionCriteria, &criteria); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	sort.SliceStable(criteria, func(i, j int) bool {
		return criteria[i].FiscalYear > criteria[j].FiscalYear
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "criteria": criteria})
}

// GetDefaultCriteria returns a template profile for a new fiscal year.
func GetDefaultCriteria(c *gin.Context) {
	fiscalYear := c.Query("fiscal_year")
	if fiscalYear == "" {
		fiscalYear = strconv.Itoa(services.FiscalYearOf(time.Now()))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "criteria": models.DefaultCriteria(fiscalYear)})
}

// SaveCriteria creates or replaces the scoring profile of one fiscal year.
func SaveCriteria(c *gin.Context) {
	var input models.Criteria
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}
	if input.FiscalYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "กรุณาระบุปีงบประมาณ"})
		return
	}

	var criteria []models.Criteria
	if err := config.Store.Load(datastore.CollectionCriteria, &criteria); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	replaced := false
	for i := range criteria {
		if criteria[i].FiscalYear == input.FiscalYear {
			criteria[i] = input
			replaced = true
			break
		}
	}
	if !replaced {
		criteria = append(criteria, input)
	}

	if err := config.Store.Save(datastore.CollectionCriteria, criteria); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "criteria": input})
}
