package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AyushDadhich07/rider/handlers"
	"github.com/AyushDadhich07/rider/models"
	"github.com/AyushDadhich07/rider/store"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.RideRequest{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rideRequests := handlers.NewRideRequestHandler(store.NewRideRequestStore(db))
	engine := gin.New()
	SetupRoutes(engine, rideRequests)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateRideRequestEndpoint(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/ride-requests", map[string]string{
		"name":        "Asha",
		"phone":       "999",
		"destination": "airport",
		"date":        "2024-03-15T10:00",
		"notes":       "",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.RideRequest
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected an assigned id")
	}
	if created.Name != "Asha" || created.Phone != "999" {
		t.Errorf("Fields do not match payload: %+v", created)
	}
}

func TestCreateRideRequestValidation(t *testing.T) {
	engine := setupTestServer(t)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"unknown destination", map[string]string{
			"name": "Asha", "phone": "999", "destination": "bus stop", "date": "2024-03-15T10:00",
		}},
		{"missing phone", map[string]string{
			"name": "Asha", "destination": "airport", "date": "2024-03-15T10:00",
		}},
		{"missing date", map[string]string{
			"name": "Asha", "phone": "999", "destination": "airport",
		}},
	}
	for _, tc := range cases {
		w := postJSON(t, engine, "/api/ride-requests", tc.payload)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, w.Code)
			continue
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode response: %v", tc.name, err)
		}
		if body["message"] == "" {
			t.Errorf("%s: expected a message in the error body", tc.name)
		}
	}
}

func TestRecentRideRequestsEmpty(t *testing.T) {
	engine := setupTestServer(t)

	w := getJSON(t, engine, "/api/ride-requests")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var requests []models.RideRequestSummary
	if err := json.Unmarshal(w.Body.Bytes(), &requests); err != nil {
		t.Fatalf("Expected a JSON array, got %q: %v", w.Body.String(), err)
	}
	if len(requests) != 0 {
		t.Errorf("Expected an empty array, got %d entries", len(requests))
	}
}

func TestSearchMalformedDate(t *testing.T) {
	engine := setupTestServer(t)

	w := getJSON(t, engine, "/api/ride-requests/search?date=15-03-2024")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] == "" {
		t.Error("Expected a message in the error body")
	}
}

func TestRideRequestDetailNotFound(t *testing.T) {
	engine := setupTestServer(t)

	for _, path := range []string{"/api/ride-requests/9999", "/api/ride-requests/not-a-number"} {
		w := getJSON(t, engine, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestRideRequestScenario(t *testing.T) {
	engine := setupTestServer(t)

	w := postJSON(t, engine, "/api/ride-requests", map[string]string{
		"name":        "Asha",
		"phone":       "999",
		"destination": "airport",
		"date":        "2024-03-15T10:00",
		"notes":       "",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.RideRequest
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created record: %v", err)
	}

	// recent list includes the new request
	w = getJSON(t, engine, "/api/ride-requests")
	var recent []models.RideRequestSummary
	if err := json.Unmarshal(w.Body.Bytes(), &recent); err != nil {
		t.Fatalf("decode recent list: %v", err)
	}
	if !containsID(recent, created.ID) {
		t.Errorf("Recent list %v missing id %d", recent, created.ID)
	}

	// destination + day search includes it
	w = getJSON(t, engine, "/api/ride-requests/search?destination=airport&date=2024-03-15")
	var matches []models.RideRequestSummary
	if err := json.Unmarshal(w.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode search results: %v", err)
	}
	if !containsID(matches, created.ID) {
		t.Errorf("Search results %v missing id %d", matches, created.ID)
	}

	// the other destination excludes it
	w = getJSON(t, engine, "/api/ride-requests/search?destination=railway%20station")
	var misses []models.RideRequestSummary
	if err := json.Unmarshal(w.Body.Bytes(), &misses); err != nil {
		t.Fatalf("decode search results: %v", err)
	}
	if containsID(misses, created.ID) {
		t.Errorf("Railway station search should exclude id %d", created.ID)
	}

	// detail returns the full record, phone included
	w = getJSON(t, engine, fmt.Sprintf("/api/ride-requests/%d", created.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var detail models.RideRequest
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.ID != created.ID || detail.Phone != "999" || !detail.Date.Equal(created.Date) {
		t.Errorf("Detail %+v does not match created record %+v", detail, created)
	}
}

func containsID(requests []models.RideRequestSummary, id uint) bool {
	for _, r := range requests {
		if r.ID == id {
			return true
		}
	}
	return false
}
