package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hrdesk/internal/transport/http/api"
)

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimit applies a per-client token bucket keyed by IP. Idle entries are
// swept so the map does not grow without bound.
func RateLimit(perSecond float64, burst int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = map[string]*clientLimiter{}
		ttl     = 5 * time.Minute
		swept   = time.Now()
	)

	allow := func(key string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if now.Sub(swept) > time.Minute {
			for k, c := range clients {
				if now.Sub(c.seen) > ttl {
					delete(clients, k)
				}
			}
			swept = now
		}

		c, ok := clients[key]
		if !ok {
			c = &clientLimiter{lim: rate.NewLimiter(rate.Limit(perSecond), burst)}
			clients[key] = c
		}
		c.seen = now
		return c.lim.Allow()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if perSecond <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			if !allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
