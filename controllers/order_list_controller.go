package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
	"github.com/urbina-joyeria/taller-api/services"
)

// ListOrders handles GET /api/v1/orders - lists orders with optional
// filters and sorting. Query params: q, status_id, priority_id, sort_by
// (received_date|priority|order_number), sort_dir (asc|desc).
// Filtering is conjunctive; "all" (or absent) disables a filter.
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.Order
	if err := db.Preload("Status").Preload("Priority").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch orders",
			},
		})
		return
	}

	filter := services.ListFilter{
		Search:     c.Query("q"),
		StatusID:   c.DefaultQuery("status_id", services.FilterAll),
		PriorityID: c.DefaultQuery("priority_id", services.FilterAll),
	}
	orders = services.FilterOrders(orders, filter)

	sortState := services.SortState{
		Column:     c.DefaultQuery("sort_by", services.SortByReceivedDate),
		Descending: c.DefaultQuery("sort_dir", "desc") != "asc",
	}
	services.SortOrders(orders, sortState)

	for i := range orders {
		annotateOrder(&orders[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"total":   len(orders),
	})
}

// SearchOrders handles GET /api/v1/orders/search/:term - server-side
// case-insensitive substring search over order number, client name,
// piece type, brand and model. The optional "seq" query param is echoed
// back so a debounced client can discard stale responses.
func SearchOrders(c *gin.Context) {
	db := config.GetDB()

	term := strings.TrimSpace(c.Param("term"))
	pattern := "%" + strings.ToLower(term) + "%"

	var orders []models.Order
	err := db.Preload("Status").Preload("Priority").
		Where(
			"LOWER(order_number) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(piece_type) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to search orders",
			},
		})
		return
	}

	for i := range orders {
		annotateOrder(&orders[i])
	}

	response := gin.H{
		"success": true,
		"data":    orders,
		"total":   len(orders),
	}
	if seq := c.Query("seq"); seq != "" {
		response["seq"] = seq
	}

	c.JSON(http.StatusOK, response)
}
