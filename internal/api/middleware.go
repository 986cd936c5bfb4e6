package api

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils/httputils"
)

type ctxKey string

const reqIDKey ctxKey = "reqid"

// RequestID returns the request ID attached by WithRequestID, or "-" when
// none is present (direct handler tests, for instance).
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(reqIDKey).(string); ok {
		return id
	}
	return "-"
}

// ServerMetrics tracks request counters shared between middleware and the
// health/metrics handlers.
type ServerMetrics struct {
	mu     sync.RWMutex
	total  int64
	active int64
}

func (m *ServerMetrics) incActive() {
	m.mu.Lock()
	m.active++
	m.total++
	m.mu.Unlock()
}

func (m *ServerMetrics) decActive() {
	m.mu.Lock()
	m.active--
	m.mu.Unlock()
}

func (m *ServerMetrics) Get() (total, active int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total, m.active
}

// Middleware bundles the request-scoped plumbing around the analyze handler:
// request IDs, access logging, panic recovery, per-IP rate limiting and a
// global concurrency gate.
type Middleware struct {
	logger   *utils.Logger
	metrics  *ServerMetrics
	sem      *semaphore.Weighted
	limiters sync.Map
	every    time.Duration
	burst    int
}

func NewMiddleware(logger *utils.Logger, cfg *config.Config, metrics *ServerMetrics) *Middleware {
	return &Middleware{
		logger:  logger,
		metrics: metrics,
		sem:     semaphore.NewWeighted(cfg.App.MaxConcurrent),
		every:   cfg.App.RateLimitEvery,
		burst:   cfg.App.RateLimitBurst,
	}
}

func (mw *Middleware) WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), reqIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (mw *Middleware) WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &wrapWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		mw.logger.Info("[%s] %s %s -> %d (%s)",
			RequestID(r.Context()), r.Method, r.URL.Path, ww.status, time.Since(start))
	})
}

func (mw *Middleware) WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				mw.logger.Error("[%s] panic: %v", RequestID(r.Context()), err)
				_ = httputils.JSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (mw *Middleware) WithRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limiter := mw.limiterFor(clientIP(r))
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			_ = httputils.JSONError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next(w, r)
	}
}

func (mw *Middleware) WithConcurrencyLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := mw.sem.Acquire(r.Context(), 1); err != nil {
			_ = httputils.JSONError(w, http.StatusServiceUnavailable, "Service at capacity")
			return
		}
		defer mw.sem.Release(1)

		mw.metrics.incActive()
		defer mw.metrics.decActive()

		next(w, r)
	}
}

// StartLimiterSweep clears the per-IP limiter cache on a fixed interval so
// the map does not grow unbounded under client IP churn. A swept client
// simply starts over from a fresh burst allowance.
func (mw *Middleware) StartLimiterSweep(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			mw.resetLimiters()
		}
	}()
}

func (mw *Middleware) resetLimiters() {
	mw.limiters.Range(func(key, _ any) bool {
		mw.limiters.Delete(key)
		return true
	})
}

func (mw *Middleware) limiterFor(ip string) *rate.Limiter {
	if v, ok := mw.limiters.Load(ip); ok {
		return v.(*rate.Limiter)
	}

	every := mw.every
	if every <= 0 {
		every = 600 * time.Millisecond
	}
	burst := mw.burst
	if burst <= 0 {
		burst = 20
	}

	limiter := rate.NewLimiter(rate.Every(every), burst)
	mw.limiters.Store(ip, limiter)
	return limiter
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if idx := strings.Index(ip, ","); idx > 0 {
			return strings.TrimSpace(ip[:idx])
		}
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}

type wrapWriter struct {
	http.ResponseWriter
	status int
}

func (w *wrapWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
