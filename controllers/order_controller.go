package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
	"github.com/urbina-joyeria/taller-api/services"
	"github.com/urbina-joyeria/taller-api/utils"
)

const dateLayout = "2006-01-02"

// CreateOrderRequest represents the request body for creating an order.
// Dates travel as ISO "YYYY-MM-DD" strings.
type CreateOrderRequest struct {
	OrderNumber       string  `json:"order_number"`
	ClientName        string  `json:"client_name"`
	ClientPhone       *string `json:"client_phone"`
	ClientEmail       *string `json:"client_email"`
	PieceType         string  `json:"piece_type"`
	Brand             *string `json:"brand"`
	Model             *string `json:"model"`
	SerialNumber      *string `json:"serial_number"`
	Description       *string `json:"description"`
	StatusID          uint    `json:"status_id"`
	PriorityID        uint    `json:"priority_id"`
	ReceivedDate      string  `json:"received_date"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

// UpdateOrderRequest represents the request body for editing an order.
// Order number, status and priority are deliberately absent; they have
// their own endpoints.
type UpdateOrderRequest struct {
	ClientName        string  `json:"client_name"`
	ClientPhone       *string `json:"client_phone"`
	ClientEmail       *string `json:"client_email"`
	PieceType         string  `json:"piece_type"`
	Brand             *string `json:"brand"`
	Model             *string `json:"model"`
	SerialNumber      *string `json:"serial_number"`
	Description       *string `json:"description"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

// CreateOrder handles POST /api/v1/orders - registers a new service order
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	db := config.GetDB()

	// Received date defaults to today when the form leaves it empty
	receivedDate := time.Now()
	fieldErrs := map[string]string{}
	if req.ReceivedDate != "" {
		parsed, err := time.Parse(dateLayout, req.ReceivedDate)
		if err != nil {
			fieldErrs["received_date"] = "La fecha de recepción no es válida (use AAAA-MM-DD)"
		} else {
			receivedDate = parsed
		}
	}

	var estimatedDelivery *time.Time
	if req.EstimatedDelivery != nil && *req.EstimatedDelivery != "" {
		parsed, err := time.Parse(dateLayout, *req.EstimatedDelivery)
		if err != nil {
			fieldErrs["estimated_delivery"] = "La fecha estimada de entrega no es válida (use AAAA-MM-DD)"
		} else {
			estimatedDelivery = &parsed
		}
	}

	// Registry defaults: first status ("En Diagnóstico") and Media priority
	statusID := req.StatusID
	if statusID == 0 {
		var first models.Status
		if err := db.Order("id ASC").First(&first).Error; err == nil {
			statusID = first.ID
		}
	}
	priorityID := req.PriorityID
	if priorityID == 0 {
		var media models.Priority
		if err := db.Where("name = ?", models.DefaultPriorityName).First(&media).Error; err == nil {
			priorityID = media.ID
		}
	}

	input := utils.OrderInput{
		OrderNumber:       req.OrderNumber,
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		PieceType:         req.PieceType,
		Brand:             req.Brand,
		Model:             req.Model,
		SerialNumber:      req.SerialNumber,
		Description:       req.Description,
		StatusID:          statusID,
		PriorityID:        priorityID,
		ReceivedDate:      receivedDate,
		EstimatedDelivery: estimatedDelivery,
	}
	for field, msg := range utils.ValidateOrder(input, false) {
		fieldErrs[field] = msg
	}

	// Status and priority must resolve against the registry
	if statusID != 0 {
		var status models.Status
		if err := db.First(&status, statusID).Error; err != nil {
			fieldErrs["status_id"] = "El estado seleccionado no existe"
		}
	}
	if priorityID != 0 {
		var priority models.Priority
		if err := db.First(&priority, priorityID).Error; err != nil {
			fieldErrs["priority_id"] = "La prioridad seleccionada no existe"
		}
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Los datos de la orden no son válidos",
				"details": fieldErrs,
			},
		})
		return
	}

	order := models.Order{
		OrderNumber:       strings.TrimSpace(req.OrderNumber),
		ClientName:        strings.TrimSpace(req.ClientName),
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		PieceType:         strings.TrimSpace(req.PieceType),
		Brand:             req.Brand,
		Model:             req.Model,
		SerialNumber:      req.SerialNumber,
		Description:       req.Description,
		StatusID:          statusID,
		PriorityID:        priorityID,
		ReceivedDate:      receivedDate,
		EstimatedDelivery: estimatedDelivery,
	}

	if err := db.Create(&order).Error; err != nil {
		// Duplicate order number (works with both PostgreSQL and SQLite)
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") ||
			strings.Contains(errMsg, "unique constraint") ||
			strings.Contains(errMsg, "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_EXISTS",
					"message": "Ya existe una orden con ese número",
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	// Load registry relationships to return complete data
	if err := db.Preload("Status").Preload("Priority").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	annotateOrder(&order)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrder handles GET /api/v1/orders/:id - returns one order with its notes
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	err := db.Preload("Status").Preload("Priority").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&order, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	annotateOrder(&order)
	for i := range order.Notes {
		order.Notes[i].FormatDisplayDate()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - edits client/piece fields.
// Order number, status and priority are never touched here.
func UpdateOrder(c *gin.Context) {
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

	var req UpdateOrderRequest
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

	fieldErrs := map[string]string{}

	var estimatedDelivery *time.Time
	if req.EstimatedDelivery != nil && *req.EstimatedDelivery != "" {
		parsed, err := time.Parse(dateLayout, *req.EstimatedDelivery)
		if err != nil {
			fieldErrs["estimated_delivery"] = "La fecha estimada de entrega no es válida (use AAAA-MM-DD)"
		} else {
			estimatedDelivery = &parsed
		}
	}

	input := utils.OrderInput{
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		PieceType:         req.PieceType,
		Brand:             req.Brand,
		Model:             req.Model,
		SerialNumber:      req.SerialNumber,
		Description:       req.Description,
		ReceivedDate:      order.ReceivedDate,
		EstimatedDelivery: estimatedDelivery,
	}
	for field, msg := range utils.ValidateOrder(input, true) {
		fieldErrs[field] = msg
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Los datos de la orden no son válidos",
				"details": fieldErrs,
			},
		})
		return
	}

	updates := map[string]interface{}{
		"client_name":        strings.TrimSpace(req.ClientName),
		"client_phone":       req.ClientPhone,
		"client_email":       req.ClientEmail,
		"piece_type":         strings.TrimSpace(req.PieceType),
		"brand":              req.Brand,
		"model":              req.Model,
		"serial_number":      req.SerialNumber,
		"description":        req.Description,
		"estimated_delivery": estimatedDelivery,
	}

	if err := db.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order",
			},
		})
		return
	}

	if err := db.Preload("Status").Preload("Priority").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	annotateOrder(&order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	StatusID uint `json:"status_id" binding:"required"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - atomic
// single-field transition. Any status can follow any other.
func UpdateOrderStatus(c *gin.Context) {
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

	var req UpdateStatusRequest
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

	var status models.Status
	if err := db.First(&status, req.StatusID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "El estado seleccionado no existe",
			},
		})
		return
	}

	if err := db.Model(&order).Update("status_id", status.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order status",
			},
		})
		return
	}

	if err := db.Preload("Status").Preload("Priority").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	annotateOrder(&order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdatePriorityRequest represents the request body for a priority change
type UpdatePriorityRequest struct {
	PriorityID uint `json:"priority_id" binding:"required"`
}

// UpdateOrderPriority handles PATCH /api/v1/orders/:id/priority
func UpdateOrderPriority(c *gin.Context) {
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

	var req UpdatePriorityRequest
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

	var priority models.Priority
	if err := db.First(&priority, req.PriorityID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "La prioridad seleccionada no existe",
			},
		})
		return
	}

	if err := db.Model(&order).Update("priority_id", priority.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order priority",
			},
		})
		return
	}

	if err := db.Preload("Status").Preload("Priority").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	annotateOrder(&order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - permanently removes
// the order, its notes and its stored photo. Irreversible.
func DeleteOrder(c *gin.Context) {
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

	if err := db.Unscoped().Where("order_id = ?", order.ID).Delete(&models.Note{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete order notes",
			},
		})
		return
	}

	if err := db.Unscoped().Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete order",
			},
		})
		return
	}

	// Best effort: the order is already gone, so a storage failure here
	// only leaves an orphan photo behind
	if order.PhotoKey != nil {
		if photoService := services.GetPhotoService(); photoService != nil {
			if err := photoService.DeletePhoto(*order.PhotoKey); err != nil {
				log.Printf("warning: failed to delete photo for order %s: %v", order.OrderNumber, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": "La orden ha sido eliminada correctamente",
		},
	})
}

// annotateOrder fills the computed presentation fields on an order.
func annotateOrder(order *models.Order) {
	order.ReceivedAgo = utils.TimeAgo(order.ReceivedDate)

	if order.PhotoKey != nil && *order.PhotoKey != "" {
		if photoService := services.GetPhotoService(); photoService != nil {
			url, err := photoService.GetPhotoURL(*order.PhotoKey)
			if err != nil {
				log.Printf("warning: failed to resolve photo URL for order %s: %v", order.OrderNumber, err)
			} else if url != "" {
				order.PhotoURL = &url
			}
		}
	}
}
