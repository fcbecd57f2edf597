package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// visitor tracks a rate limiter per client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore manages per-IP rate limiters. Stale entries are evicted
// lazily on access, so the store needs no background goroutine and can be
// constructed freely.
type visitorStore struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	rps         int
	burst       int
	ttl         time.Duration
	lastCleanup time.Time
	nowFunc     func() time.Time // injectable clock for testing
}

func newVisitorStore(rps, burst int, ttl time.Duration) *visitorStore {
	return &visitorStore{
		visitors:    make(map[string]*visitor),
		rps:         rps,
		burst:       burst,
		ttl:         ttl,
		lastCleanup: time.Now(),
		nowFunc:     time.Now,
	}
}

// getVisitor returns (or creates) a rate limiter for the given IP and
// updates lastSeen on every call. At most once per TTL it also sweeps out
// visitors not seen for longer than the TTL.
func (s *visitorStore) getVisitor(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	if now.Sub(s.lastCleanup) > s.ttl {
		s.cleanupLocked(now)
	}

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: now}
		return limiter
	}
	v.lastSeen = now
	return v.limiter
}

func (s *visitorStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked(s.nowFunc())
}

// cleanupLocked evicts all visitors whose lastSeen is older than the TTL.
// Callers must hold mu.
func (s *visitorStore) cleanupLocked(now time.Time) {
	for ip, v := range s.visitors {
		if now.Sub(v.lastSeen) > s.ttl {
			delete(s.visitors, ip)
		}
	}
	s.lastCleanup = now
}

func (s *visitorStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimit enforces a per-IP token bucket on the routes it wraps. Used on
// the login endpoint to slow credential stuffing against the admin area.
// Returns 429 when the bucket is empty.
func RateLimit(rps, burst int, log zerolog.Logger) echo.MiddlewareFunc {
	const visitorTTL = 3 * time.Minute
	store := newVisitorStore(rps, burst, visitorTTL)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !store.getVisitor(ip).Allow() {
				log.Warn().
					Str("ip", ip).
					Str("path", c.Path()).
					Msg("rate limit exceeded")
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
