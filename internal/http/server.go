// Package http is the presentation shell over the expense store: it
// renders snapshots and statistics as JSON and forwards create, delete
// and refresh intents into the store. It owns no business logic beyond
// input parsing and display formatting.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"outlay/internal/cache"
	"outlay/internal/core"
	"outlay/internal/store"
)

type Server struct {
	http.Server
	store       *store.Store
	rateLimiter *rateLimiter
	metrics     *securityMetrics

	// Derived statistics are cheap but rendered on every refresh, so
	// they are cached per reference month and purged on any mutation.
	statsCache   *cache.LRUCache[core.Summary]
	cacheManager *cache.Manager
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, st *store.Store, statsCacheSize int, statsCacheTTL time.Duration) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:        st,
		rateLimiter:  newRateLimiter(),
		metrics:      &securityMetrics{},
		statsCache:   cache.NewLRUCache[core.Summary](statsCacheSize, statsCacheTTL),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.statsCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/expenses", s.withObservability(s.handleExpenses))
	mux.HandleFunc("/api/expenses/", s.withObservability(s.handleExpenseByID))
	mux.HandleFunc("/api/expenses/stats", s.withObservability(s.handleStats))
	mux.HandleFunc("/api/categories", s.withObservability(s.handleCategories))
	mux.HandleFunc("/api/reload", s.withObservability(s.handleReload))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withObservability adds request tracing, security headers and rate
// limiting to a handler.
func (s *Server) withObservability(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit mutating requests only; reads stay cheap
		if isMutating(r.Method) && !s.rateLimiter.allow(clientIP, s.metrics) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			errorResponse(http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down").write(w)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	}
}

func isMutating(method string) bool {
	return method == http.MethodPost || method == http.MethodDelete || method == http.MethodPut
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) statsCacheKey(year int, month time.Month) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(int(month))
}

// invalidateStats drops every cached summary. Lifetime totals shift on
// any mutation, so per-month invalidation would not be enough.
func (s *Server) invalidateStats() {
	s.statsCache.Purge()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
