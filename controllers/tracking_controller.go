package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
	"github.com/urbina-joyeria/taller-api/services"
)

// TrackOrder handles GET /api/v1/track/:orderNumber - the unauthenticated
// customer lookup. The payload is deliberately reduced: no internal ids,
// no contact info, no notes. Just what the customer already knows plus
// the derived timeline.
func TrackOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	err := db.Preload("Status").
		Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "No encontramos una orden con ese número",
			},
		})
		return
	}

	timeline := services.DeriveTimeline(order.Status.Name)
	if timeline.ProgressPercent == 0 && !timeline.Stages[0].Completed {
		// Status outside the canonical progression; keep serving the page
		// with the defensive zero-progress timeline
		log.Printf("order %s has status %q outside the tracking stages", order.OrderNumber, order.Status.Name)
	}

	data := gin.H{
		"order_number":  order.OrderNumber,
		"status":        order.Status.Name,
		"received_date": order.ReceivedDate.Format(dateLayout),
		"piece_type":    order.PieceType,
		"brand":         order.Brand,
		"model":         order.Model,
		"description":   order.Description,
		"timeline":      timeline,
	}
	if order.EstimatedDelivery != nil {
		data["estimated_delivery"] = order.EstimatedDelivery.Format(dateLayout)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
