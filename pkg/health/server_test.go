package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubStatus struct {
	connected bool
	lookups   int64
	uptime    time.Duration
}

func (s *stubStatus) IsConnected() bool        { return s.connected }
func (s *stubStatus) GetLookupCount() int64    { return s.lookups }
func (s *stubStatus) GetUptime() time.Duration { return s.uptime }

func testServer(connected bool) *Server {
	info := &BotInfo{
		Name:        "Ethos Bot",
		Version:     "0.1.0",
		Command:     "ethos",
		Description: "Look up Ethos profile for a Twitter user",
	}
	return NewServer(0, info, &stubStatus{
		connected: connected,
		lookups:   3,
		uptime:    42 * time.Second,
	})
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		connected      bool
		expectedStatus string
		expectedCode   int
	}{
		{
			name:           "connected is healthy",
			connected:      true,
			expectedStatus: "healthy",
			expectedCode:   http.StatusOK,
		},
		{
			name:           "disconnected is unavailable",
			connected:      false,
			expectedStatus: "disconnected",
			expectedCode:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer(tt.connected)
			rec := httptest.NewRecorder()
			s.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.expectedCode {
				t.Errorf("Expected status code %d, got %d", tt.expectedCode, rec.Code)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("Invalid JSON body: %v", err)
			}
			if body["status"] != tt.expectedStatus {
				t.Errorf("Expected status %q, got %v", tt.expectedStatus, body["status"])
			}
			if body["bot"] != "Ethos Bot" {
				t.Errorf("Expected bot name in body, got %v", body["bot"])
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	s := testServer(true)
	rec := httptest.NewRecorder()
	s.statusHandler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if status.Status != "operational" {
		t.Errorf("Expected operational status, got %q", status.Status)
	}
	if !status.Connected {
		t.Error("Expected connected to be true")
	}
	if status.Lookups != 3 {
		t.Errorf("Expected 3 lookups, got %d", status.Lookups)
	}
	if status.Bot.Command != "ethos" {
		t.Errorf("Expected command 'ethos', got %q", status.Bot.Command)
	}
}

func TestInfoHandler(t *testing.T) {
	s := testServer(true)
	rec := httptest.NewRecorder()
	s.infoHandler(rec, httptest.NewRequest(http.MethodGet, "/info", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var info BotInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if info.Name != "Ethos Bot" || info.Version != "0.1.0" {
		t.Errorf("Unexpected info payload: %+v", info)
	}
}
