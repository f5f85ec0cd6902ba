package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"kakebo/internal/cache"
	"kakebo/internal/core"
	"kakebo/internal/ledger"
	"kakebo/internal/middleware/ratelimit"
	"kakebo/internal/middleware/security"
	"kakebo/internal/middleware/trace"
)

// Server wires the ledger backend to the JSON API with tracing, security
// headers, rate limiting and per-user view caching.
type Server struct {
	http.Server

	backend    ledger.Backend
	windowDays int

	limiter  *ratelimit.Limiter
	detector *security.Detector
	traceMW  *trace.Middleware

	historyCache *cache.LRUCache[[]core.Transaction]
	goalCache    *cache.LRUCache[core.SavingsGoal]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server. windowDays is the default history window applied when a request
// carries no explicit date bounds.
func NewServer(addr string, backend ledger.Backend, windowDays int) *Server {
	mux := http.NewServeMux()

	detector := security.NewDetector()

	s := &Server{
		backend:    backend,
		windowDays: windowDays,
		limiter:    ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		detector:   detector,
		traceMW:    trace.NewMiddleware(detector.ExtractClientIP),

		historyCache: cache.NewLRUCache[[]core.Transaction](500, time.Minute),
		goalCache:    cache.NewLRUCache[core.SavingsGoal](500, time.Minute),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.historyCache)
	s.cacheManager.Register(s.goalCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)

	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/breakdown", s.handleBreakdown)
	mux.HandleFunc("/api/savings-goal", s.handleSavingsGoal)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/reflection", s.handleReflection)

	headersMW := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	// Rate limiting applies to writes only; reads are cached and cheap.
	limited := s.limitWrites(mux)
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.traceMW.Middleware(headersMW.Middleware(limited)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) limitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			clientIP := s.detector.ExtractClientIP(r)
			if !s.limiter.Allow(clientIP) {
				w.Header().Set("Retry-After", "60")
				respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// invalidateUser drops all cached views for a user after a write. Cache
// keys are exactly the user ID, one cache per view.
func (s *Server) invalidateUser(userID string) {
	s.historyCache.Delete(userID)
	s.goalCache.Delete(userID)
}

// loadHistory fetches the user's full history through the cache.
func (s *Server) loadHistory(ctx context.Context, userID string) ([]core.Transaction, error) {
	if ts, ok := s.historyCache.Get(userID); ok {
		return ts, nil
	}
	ts, err := s.backend.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.historyCache.Set(userID, ts)
	return ts, nil
}

// loadGoal fetches the user's savings goal through the cache.
func (s *Server) loadGoal(ctx context.Context, userID string) (core.SavingsGoal, error) {
	if g, ok := s.goalCache.Get(userID); ok {
		return g, nil
	}
	g, err := s.backend.GetSavingsGoal(ctx, userID)
	if err != nil {
		return core.SavingsGoal{}, err
	}
	s.goalCache.Set(userID, g)
	return g, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	m := s.traceMW.GetMetrics()
	respondJSON(w, http.StatusOK, map[string]any{
		"total_requests":           m.TotalRequests,
		"average_response_time_us": m.AverageResponseTime,
		"rate_limited_clients":     s.limiter.ActiveClients(),
		"history_cache_size":       s.historyCache.Size(),
		"goal_cache_size":          s.goalCache.Size(),
	})
}
