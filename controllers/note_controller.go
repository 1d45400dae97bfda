package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
	"github.com/urbina-joyeria/taller-api/utils"
)

// AddNoteRequest represents the request body for appending a bitácora note
type AddNoteRequest struct {
	Description string `json:"description"`
}

// AddNote handles POST /api/v1/orders/:id/notes - appends a note to an order
func AddNote(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if fieldErrs := utils.ValidateNote(req.Description); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "La nota no es válida",
				"details": fieldErrs,
			},
		})
		return
	}

	note := models.Note{
		OrderID:     order.ID,
		Description: req.Description,
	}

	if err := db.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create note",
			},
		})
		return
	}

	note.FormatDisplayDate()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    note,
	})
}

// ListNotes handles GET /api/v1/orders/:id/notes - notes newest-first
func ListNotes(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	var notes []models.Note
	if err := db.Where("order_id = ?", order.ID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch notes",
			},
		})
		return
	}

	for i := range notes {
		notes[i].FormatDisplayDate()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notes,
	})
}

// DeleteNote handles DELETE /api/v1/orders/:id/notes/:noteId - permanently
// removes one note. A note that is already gone yields NOT_FOUND.
func DeleteNote(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	result := db.Unscoped().
		Where("order_id = ?", order.ID).
		Delete(&models.Note{}, c.Param("noteId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete note",
			},
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOTE_NOT_FOUND",
				"message": "Note not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": "La nota ha sido eliminada",
		},
	})
}
