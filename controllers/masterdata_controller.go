package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
)

// GetMasterData handles GET /api/v1/orders/data/masters - returns the
// status and priority registries. This is the single source of truth for
// valid ids and display names; consumers must not hardcode the sets.
func GetMasterData(c *gin.Context) {
	db := config.GetDB()

	var statuses []models.Status
	if err := db.Order("id ASC").Find(&statuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch statuses",
			},
		})
		return
	}

	var priorities []models.Priority
	if err := db.Order("weight DESC").Find(&priorities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch priorities",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"statuses":   statuses,
			"priorities": priorities,
		},
	})
}
