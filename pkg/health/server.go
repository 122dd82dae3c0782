package health

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server provides health monitoring endpoints
type Server struct {
	port         int
	botInfo      *BotInfo
	statusGetter StatusGetter
	server       *http.Server
}

// BotInfo contains basic bot information
type BotInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// StatusGetter interface for getting bot status
type StatusGetter interface {
	IsConnected() bool
	GetLookupCount() int64
	GetUptime() time.Duration
}

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status    string    `json:"status"`
	Connected bool      `json:"connected"`
	Lookups   int64     `json:"lookups"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Bot       BotInfo   `json:"bot"`
}

// NewServer creates a new health monitoring server
func NewServer(port int, botInfo *BotInfo, statusGetter StatusGetter) *Server {
	return &Server{
		port:         port,
		botInfo:      botInfo,
		statusGetter: statusGetter,
	}
}

// Start starts the health monitoring server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.rootHandler)
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/status", s.statusHandler)
	mux.HandleFunc("/info", s.infoHandler)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	log.Printf("🌐 Starting health server on port %d...", s.port)
	return s.server.ListenAndServe()
}

// Stop stops the health monitoring server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// rootHandler handles the root endpoint
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "%s v%s\n", s.botInfo.Name, s.botInfo.Version)
	fmt.Fprintf(w, "Command: /%s\n", s.botInfo.Command)
	fmt.Fprintf(w, "Connected: %v\n", s.statusGetter.IsConnected())
	fmt.Fprintf(w, "Lookups served: %d\n", s.statusGetter.GetLookupCount())
	fmt.Fprintf(w, "Uptime: %v\n", s.statusGetter.GetUptime())
	fmt.Fprintf(w, "\nEndpoints:\n")
	fmt.Fprintf(w, "  /health - Health check\n")
	fmt.Fprintf(w, "  /status - Detailed status (JSON)\n")
	fmt.Fprintf(w, "  /info   - Bot information (JSON)\n")
}

// healthHandler provides a simple health check
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var status string
	var statusCode int

	if s.statusGetter.IsConnected() {
		status = "healthy"
		statusCode = http.StatusOK
	} else {
		status = "disconnected"
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)

	health := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now(),
		"bot":       s.botInfo.Name,
	}

	json.NewEncoder(w).Encode(health)
}

// statusHandler provides detailed status information
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	connected := s.statusGetter.IsConnected()

	status := "operational"
	if !connected {
		status = "disconnected"
	}

	healthStatus := HealthStatus{
		Status:    status,
		Connected: connected,
		Lookups:   s.statusGetter.GetLookupCount(),
		Uptime:    s.statusGetter.GetUptime().String(),
		Timestamp: time.Now(),
		Bot:       *s.botInfo,
	}

	json.NewEncoder(w).Encode(healthStatus)
}

// infoHandler provides bot information
func (s *Server) infoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(s.botInfo)
}
