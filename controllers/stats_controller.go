package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
)

// StatusCount is one dashboard counter: a registry status and how many
// orders currently sit in it.
type StatusCount struct {
	StatusID uint   `json:"status_id"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
}

// GetOrderStats handles GET /api/v1/orders/data/stats - aggregate counts
// per status plus the most recent orders. The aggregate query is the
// primary path; if it fails the counts are reconstructed from the plain
// order list, and an error surfaces only when both paths fail.
func GetOrderStats(c *gin.Context) {
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

	countsByStatus, err := aggregateStatusCounts(db)
	if err != nil {
		log.Printf("aggregate stats query failed, falling back to full scan: %v", err)
		countsByStatus, err = scanStatusCounts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to compute order statistics",
				},
			})
			return
		}
	}

	// Every registry status appears in the payload, zero counts included
	stats := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		stats = append(stats, StatusCount{
			StatusID: s.ID,
			Name:     s.Name,
			Count:    countsByStatus[s.ID],
		})
	}

	var recent []models.Order
	if err := db.Preload("Status").Preload("Priority").
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch recent orders",
			},
		})
		return
	}

	for i := range recent {
		annotateOrder(&recent[i])
	}

	var total int64
	for _, s := range stats {
		total += s.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"by_status":     stats,
			"total_orders":  total,
			"recent_orders": recent,
		},
	})
}

// aggregateStatusCounts is the primary GROUP BY path.
func aggregateStatusCounts(db *gorm.DB) (map[uint]int64, error) {
	var rows []struct {
		StatusID uint
		Count    int64
	}
	err := db.Model(&models.Order{}).
		Select("status_id, COUNT(*) as count").
		Group("status_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.StatusID] = r.Count
	}
	return counts, nil
}

// scanStatusCounts reconstructs the same counts from the individual
// orders when the aggregate path is unavailable.
func scanStatusCounts(db *gorm.DB) (map[uint]int64, error) {
	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64)
	for _, o := range orders {
		counts[o.StatusID]++
	}
	return counts, nil
}
