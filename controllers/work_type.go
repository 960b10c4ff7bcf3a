package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
	"compensation-request-api/utils"
)

// ListWorkTypes returns the configured work types, seeding the built-in set
// when the collection is empty.
func ListWorkTypes(c *gin.Context) {
	types, err := loadWorkTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "types": types})
}

type AddWorkTypeInput struct {
	Label string `json:"label" binding:"required"`
}

// AddWorkType registers a custom work type. Custom types are scored at zero
// until a criteria profile covers them.
func AddWorkType(c *gin.Context) {
	var input AddWorkTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing label"})
		return
	}

	label := utils.SanitizeInput(input.Label)
	if label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing label"})
		return
	}

	types, err := loadWorkTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	for _, t := range types {
		if t.Label == label {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "This type already exists"})
			return
		}
	}

	newType := models.WorkType{
		ID:       "custom_" + time.Now().Format("20060102150405"),
		Label:    label,
		IsCustom: true,
	}
	types = append(types, newType)

	if err := config.Store.Save(datastore.CollectionWorkTypes, types); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "type": newType})
}

// DeleteWorkType removes a custom work type. Built-in types cannot be
// deleted.
func DeleteWorkType(c *gin.Context) {
	id := c.Param("id")

	types, err := loadWorkTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	kept := make([]models.WorkType, 0, len(types))
	for _, t := range types {
		if t.ID == id && t.IsCustom {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(types) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "ไม่พบประเภทผลงานที่ต้องการลบ หรือเป็นประเภทมาตรฐาน",
		})
		return
	}

	if err := config.Store.Save(datastore.CollectionWorkTypes, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func loadWorkTypes() ([]models.WorkType, error) {
	var types []models.WorkType
	if err := config.Store.Load(datastore.CollectionWorkTypes, &types); err != nil {
		return nil, err
	}
	if len(types) == 0 {
		types = models.BuiltinWorkTypes()
	}
	return types, nil
}
