package api

import (
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality (no per-player labels to prevent DoS)
var (
	// Pipeline metrics
	fetchResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaderboard_fetch_results_total",
		Help: "Player lookups by outcome",
	}, []string{"mode", "outcome"}) // outcome: "ranked", "unranked", "skipped"

	snapshotPlayers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "leaderboard_snapshot_players",
		Help: "Players currently on the board",
	}, []string{"mode"})

	displayCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaderboard_display_cycles_total",
		Help: "Display cycles by result",
	}, []string{"mode", "result"}) // result: "ok", "empty", "render_error", "publish_error", "panic"

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leaderboard_render_duration_seconds",
		Help:    "Time spent compositing a board image",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	announcements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaderboard_announcements_total",
		Help: "Rank change alerts delivered",
	}, []string{"mode"})

	securityActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "security_actions_total",
		Help: "Moderation watcher actions",
	}, []string{"action"}) // action: "ban_tracked", "kick_tracked", "channel_delete_tracked", "auto_ban"

	// DoS detection metrics - use ONLY bounded label values
	connectionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connection_rejected_total",
		Help: "Connections rejected by rate limiter or origin check",
	}, []string{"reason"}) // Bounded: "rate_limit", "origin", "ws_total_limit", "ws_ip_limit"

	// HTTP metrics with bounded labels
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"}) // endpoint is path pattern, not full URL

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	// WebSocket metrics
	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "websocket_connections_active",
		Help: "Currently active WebSocket connections",
	})

	wsMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websocket_messages_total",
		Help: "Total WebSocket messages sent",
	})
)

// ObservabilityConfig configures the debug server
type ObservabilityConfig struct {
	Enabled       bool
	ListenAddr    string // MUST be "127.0.0.1:6060" in production
	BasicAuthUser string // Optional basic auth
	BasicAuthPass string
}

// DefaultObservabilityConfig returns safe defaults
func DefaultObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		Enabled:    true,
		ListenAddr: "127.0.0.1:6060", // Localhost only - NEVER expose externally
	}
}

// StartDebugServer starts the internal observability server
// CRITICAL: This MUST bind to localhost only to prevent pprof-based DoS
func StartDebugServer(cfg ObservabilityConfig) error {
	if !cfg.Enabled {
		log.Println("📊 Debug server disabled")
		return nil
	}

	// SECURITY: Validate address is localhost
	if cfg.ListenAddr != "127.0.0.1:6060" && cfg.ListenAddr != "localhost:6060" {
		// Only allow external binding if explicitly enabled via env
		if os.Getenv("ALLOW_DEBUG_EXTERNAL") != "true" {
			log.Println("⚠️ Debug server forced to localhost for security")
			cfg.ListenAddr = "127.0.0.1:6060"
		}
	}

	mux := http.NewServeMux()

	// pprof endpoints for profiling
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Optional basic auth wrapper
	var handler http.Handler = mux
	if cfg.BasicAuthUser != "" {
		handler = basicAuthMiddleware(cfg.BasicAuthUser, cfg.BasicAuthPass, mux)
	}

	go func() {
		log.Printf("📊 Debug server starting on %s", cfg.ListenAddr)
		log.Printf("   - pprof:   http://%s/debug/pprof/", cfg.ListenAddr)
		log.Printf("   - metrics: http://%s/metrics", cfg.ListenAddr)

		if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
			log.Printf("⚠️ Debug server error: %v", err)
		}
	}()

	return nil
}

// basicAuthMiddleware adds basic authentication to the handler
func basicAuthMiddleware(user, pass string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RecordFetchResult counts one player lookup outcome.
// outcome must be one of: "ranked", "unranked", "skipped"
func RecordFetchResult(mode, outcome string) {
	fetchResults.WithLabelValues(mode, outcome).Inc()
}

// SetSnapshotPlayers updates the board population gauge
func SetSnapshotPlayers(mode string, count int) {
	snapshotPlayers.WithLabelValues(mode).Set(float64(count))
}

// RecordDisplayCycle counts one display cycle.
// result must be one of: "ok", "empty", "render_error", "publish_error", "panic"
func RecordDisplayCycle(mode, result string) {
	displayCycles.WithLabelValues(mode, result).Inc()
}

// ObserveRenderDuration records board compositing time
func ObserveRenderDuration(duration time.Duration) {
	renderDuration.Observe(duration.Seconds())
}

// RecordAnnouncement counts one delivered rank change alert
func RecordAnnouncement(mode string) {
	announcements.WithLabelValues(mode).Inc()
}

// RecordSecurityAction counts one moderation watcher action.
// action must be one of: "ban_tracked", "kick_tracked",
// "channel_delete_tracked", "auto_ban"
func RecordSecurityAction(action string) {
	securityActions.WithLabelValues(action).Inc()
}

// RecordConnectionRejected increments the rejection counter
// reason must be one of: "rate_limit", "origin", "ws_total_limit", "ws_ip_limit"
func RecordConnectionRejected(reason string) {
	connectionRejected.WithLabelValues(reason).Inc()
}

// RecordRequest records HTTP request metrics
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	requestTotal.WithLabelValues(method, endpoint, http.StatusText(status)).Inc()
}

// UpdateWSConnections updates WebSocket connection count
func UpdateWSConnections(count int) {
	wsConnectionsActive.Set(float64(count))
}

// IncrementWSMessages increments WebSocket message counter
func IncrementWSMessages() {
	wsMessagesTotal.Inc()
}
