package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/models"
)

func TestGetOrderStats(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	// Two in diagnosis, one in service, none waiting or ready
	createTestOrder(t, db, "UJ-2026-900", func(o *models.Order) { o.StatusID = 1 })
	createTestOrder(t, db, "UJ-2026-901", func(o *models.Order) { o.StatusID = 1 })
	createTestOrder(t, db, "UJ-2026-902", func(o *models.Order) { o.StatusID = 3 })

	router := setupTestRouter()
	router.GET("/orders/data/stats", mockAuthMiddleware("auth0|admin123", "mock-token"), GetOrderStats)

	req, _ := http.NewRequest(http.MethodGet, "/orders/data/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_orders"])

	// Every registry status is present, zero counts included
	byStatus := data["by_status"].([]interface{})
	require.Len(t, byStatus, 4)

	counts := make(map[string]float64, 4)
	for _, item := range byStatus {
		entry := item.(map[string]interface{})
		counts[entry["name"].(string)] = entry["count"].(float64)
	}
	assert.Equal(t, float64(2), counts["En Diagnóstico"])
	assert.Equal(t, float64(0), counts["En espera de aprobación por cliente"])
	assert.Equal(t, float64(1), counts["En servicio"])
	assert.Equal(t, float64(0), counts["Pieza lista para entrega"])

	recent := data["recent_orders"].([]interface{})
	assert.Len(t, recent, 3)
}

func TestGetOrderStats_EmptyWorkshop(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/orders/data/stats", mockAuthMiddleware("auth0|admin123", "mock-token"), GetOrderStats)

	req, _ := http.NewRequest(http.MethodGet, "/orders/data/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	assert.Equal(t, float64(0), data["total_orders"])
	byStatus := data["by_status"].([]interface{})
	require.Len(t, byStatus, 4)
	for _, item := range byStatus {
		entry := item.(map[string]interface{})
		assert.Equal(t, float64(0), entry["count"])
	}
	assert.Empty(t, data["recent_orders"])
}

func TestGetOrderStats_RecentCappedAtFive(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	for _, n := range []string{"UJ-2026-910", "UJ-2026-911", "UJ-2026-912",
		"UJ-2026-913", "UJ-2026-914", "UJ-2026-915", "UJ-2026-916"} {
		createTestOrder(t, db, n, nil)
	}

	router := setupTestRouter()
	router.GET("/orders/data/stats", mockAuthMiddleware("auth0|admin123", "mock-token"), GetOrderStats)

	req, _ := http.NewRequest(http.MethodGet, "/orders/data/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	assert.Equal(t, float64(7), data["total_orders"])
	recent := data["recent_orders"].([]interface{})
	assert.Len(t, recent, 5)
}

func TestScanStatusCountsMatchesAggregate(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	createTestOrder(t, db, "UJ-2026-920", func(o *models.Order) { o.StatusID = 2 })
	createTestOrder(t, db, "UJ-2026-921", func(o *models.Order) { o.StatusID = 2 })
	createTestOrder(t, db, "UJ-2026-922", func(o *models.Order) { o.StatusID = 4 })

	aggregated, err := aggregateStatusCounts(db)
	require.NoError(t, err)
	scanned, err := scanStatusCounts(db)
	require.NoError(t, err)

	assert.Equal(t, aggregated, scanned)
	assert.Equal(t, int64(2), aggregated[2])
	assert.Equal(t, int64(1), aggregated[4])
}
