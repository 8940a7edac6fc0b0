package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hotllink-backend/services"
)

func conciergeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewConciergeController(services.NewConciergeService(testLogger()))

	r := gin.New()
	r.GET("/api/cars", ctrl.GetCars)
	r.GET("/api/translators", ctrl.GetTranslators)
	r.GET("/api/city-guide", ctrl.GetCityGuide)
	r.POST("/api/trip-planner", ctrl.TripPlanner)
	r.POST("/api/contact", ctrl.Contact)
	return r
}

func TestConciergeStaticEndpoints(t *testing.T) {
	r := conciergeRouter()

	for _, path := range []string{"/api/cars", "/api/translators", "/api/city-guide"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)

		var items []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items), path)
		assert.NotEmpty(t, items, path)
	}
}

func TestTripPlanner(t *testing.T) {
	r := conciergeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trip-planner",
		strings.NewReader(`{"destination":"Bazaruto","dates":"2025-06","preferences":"diving"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Trip plan request received!", body["message"])
	assert.Contains(t, body, "planId")
}

func TestContact(t *testing.T) {
	r := conciergeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","message":"Olá"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully!")
}
