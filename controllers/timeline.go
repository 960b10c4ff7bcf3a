package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
)

// ListTimelines returns the timeline of every fiscal year.
func ListTimelines(c *gin.Context) {
	var timelines []models.Timeline
	if err := config.Store.Load(datastore.CollectionTimeline, &timelines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "timelines": timelines})
}

// SaveTimeline creates or replaces the timeline of one fiscal year.
func SaveTimeline(c *gin.Context) {
	var input models.Timeline
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data"})
		return
	}
	if input.FiscalYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "กรุณาระบุปีงบประมาณ"})
		return
	}

	var timelines []models.Timeline
	if err := config.Store.Load(datastore.CollectionTimeline, &timelines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	replaced := false
	for i := range timelines {
		if timelines[i].FiscalYear == input.FiscalYear {
			timelines[i] = input
			replaced = true
			break
		}
	}
	if !replaced {
		timelines = append(timelines, input)
	}

	if err := config.Store.Save(datastore.CollectionTimeline, timelines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "timeline": input})
}

// DeleteTimeline removes the timeline of one fiscal year. With no timeline
// configured the submission window defaults to open.
func DeleteTimeline(c *gin.Context) {
	fiscalYear := c.Param("year")

	var timelines []models.Timeline
	if err := config.Store.Load(datastore.CollectionTimeline, &timelines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	kept := make([]models.Timeline, 0, len(timelines))
	for _, tl := range timelines {
		if tl.FiscalYear != fiscalYear {
			kept = append(kept, tl)
		}
	}
	if len(kept) == len(timelines) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "ไม่พบกำหนดการของปีงบประมาณนี้"})
		return
	}

	if err := config.Store.Save(datastore.CollectionTimeline, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
