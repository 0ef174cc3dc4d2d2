package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// LoginLimiter keeps one token bucket per client IP.
type LoginLimiter struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	limit     rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewLoginLimiter(perMinute, burst int, clock clockwork.Clock) *LoginLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		clock:     clock,
		limit:     rate.Limit(float64(perMinute) / 60),
		burst:     burst,
		entries:   make(map[string]*limiterEntry),
		lastSweep: clock.Now(),
	}
}

func (l *LoginLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterIdleTTL {
		l.sweep(now)
	}

	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = entry
	}
	entry.lastAccess = now
	return entry.limiter.AllowN(now, 1)
}

func (l *LoginLimiter) sweep(now time.Time) {
	for key, entry := range l.entries {
		if now.Sub(entry.lastAccess) >= limiterIdleTTL {
			delete(l.entries, key)
		}
	}
	l.lastSweep = now
}

func (l *LoginLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimit keys buckets on the resolved client IP. A nil resolver uses the socket peer only.
func RateLimit(limiter *LoginLimiter, clientIP *ClientIPResolver, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RateLimit")
		defer span.End()

		if !limiter.Allow(clientIP.Resolve(r)) {
			w.Header().Set("Retry-After", "60")
			writeError(ctx, w, errTooManyRequests)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
