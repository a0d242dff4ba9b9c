package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"riftboard/internal/rank"
)

// ServerConfig contains the dependencies for the HTTP surface.
type ServerConfig struct {
	// Store is the live standings store (required).
	Store *rank.Store

	// Modes lists the game modes the API serves, e.g. ["lol", "tft"].
	Modes []string

	// RateLimiter is an optional pre-configured rate limiter. If nil, a
	// new one is created with DefaultRateLimitConfig.
	RateLimiter *IPRateLimiter

	// DisableLogging disables the request logger middleware (useful for
	// tests and benchmarks).
	DisableLogging bool
}

// Server is the read-only HTTP API over the live standings, with a
// WebSocket feed for dashboards.
type Server struct {
	store       *rank.Store
	modes       []string
	router      *chi.Mux
	wsHub       *WebSocketHub
	rateLimiter *IPRateLimiter
}

// NewServer builds the API server.
//
// IMPORTANT: Background workers do NOT start until Start() is called,
// so tests can construct the server and hit Router() via httptest
// without goroutines or listeners.
func NewServer(cfg ServerConfig) *Server {
	s := &Server{
		store: cfg.Store,
		modes: cfg.Modes,
		wsHub: NewWebSocketHub(),
	}

	s.rateLimiter = cfg.RateLimiter
	if s.rateLimiter == nil {
		s.rateLimiter = NewIPRateLimiter(DefaultRateLimitConfig)
	}

	r := chi.NewRouter()
	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rate limiting before CORS to reject early and save CPU.
	r.Use(s.rateLimiter.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/modes", s.handleModes)
		r.Get("/leaderboard/{mode}", s.handleLeaderboard)
	})
	r.Get("/ws", s.handleWS)

	s.router = r
	return s
}

// Start launches the WebSocket hub and serves on addr. The only method
// that starts goroutines or opens listeners; call it once.
func (s *Server) Start(addr string) error {
	go s.wsHub.Run()
	s.wsHub.StartBroadcastLoop(s.store, s.modes)

	log.Printf("🌐 API server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop shuts down background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func (s *Server) knownMode(mode string) bool {
	for _, m := range s.modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.wsHub.HandleWebSocket(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modes": s.modes})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	mode := strings.ToLower(chi.URLParam(r, "mode"))
	if !s.knownMode(mode) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown mode"})
		RecordRequest(r.Method, "/api/leaderboard/{mode}", http.StatusNotFound, time.Since(start))
		return
	}

	snap := s.store.Snapshot(mode)
	writeJSON(w, http.StatusOK, map[string]any{
		"mode":    mode,
		"players": snap,
		"count":   len(snap),
	})
	RecordRequest(r.Method, "/api/leaderboard/{mode}", http.StatusOK, time.Since(start))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Failed to encode API response: %v", err)
	}
}
