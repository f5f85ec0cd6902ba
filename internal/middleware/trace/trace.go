package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"kakebo/internal/log"
)

// ContextKey type for context keys
type ContextKey string

// RequestIDKey is the context key for request ID
const RequestIDKey ContextKey = "request_id"

// Middleware handles request tracing and logging
type Middleware struct {
	extractIP func(*http.Request) string

	totalRequests   int64
	totalDurationUs int64
}

// Metrics is a point-in-time snapshot of the request counters.
type Metrics struct {
	TotalRequests       int64
	AverageResponseTime int64 // microseconds, mean over all requests
}

func NewMiddleware(extractIP func(*http.Request) string) *Middleware {
	return &Middleware{extractIP: extractIP}
}

// Middleware returns HTTP middleware for request tracing
func (m *Middleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := ""
		if m.extractIP != nil {
			clientIP = m.extractIP(r)
		}

		requestID := GenerateRequestID()
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		r = r.WithContext(ctx)

		started := log.NewFields().
			WithRequestID(requestID).
			WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("User-Agent"))
		started[log.FieldClientIP] = clientIP
		slog.InfoContext(ctx, "HTTP request started", started.ToSlice()...)

		atomic.AddInt64(&m.totalRequests, 1)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		durationMs := duration.Milliseconds()
		atomic.AddInt64(&m.totalDurationUs, duration.Microseconds())

		logLevel := slog.LevelInfo
		if rw.statusCode >= 400 && rw.statusCode < 500 {
			logLevel = slog.LevelWarn
		} else if rw.statusCode >= 500 {
			logLevel = slog.LevelError
		}

		completed := log.NewFields().
			WithRequestID(requestID).
			WithHTTPResponse(rw.statusCode, durationMs, rw.statusCode < 400)
		completed[log.FieldMethod] = r.Method
		completed[log.FieldPath] = r.URL.Path
		completed[log.FieldClientIP] = clientIP
		slog.Log(ctx, logLevel, "HTTP request completed", completed.ToSlice()...)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// GenerateRequestID creates a unique request ID for tracing
func GenerateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetMetrics returns current metrics
func (m *Middleware) GetMetrics() Metrics {
	total := atomic.LoadInt64(&m.totalRequests)
	var avg int64
	if total > 0 {
		avg = atomic.LoadInt64(&m.totalDurationUs) / total
	}
	return Metrics{
		TotalRequests:       total,
		AverageResponseTime: avg,
	}
}
