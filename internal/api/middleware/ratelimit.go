package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds memory; the least recently seen client is evicted first
const maxTrackedClients = 10000

// RateLimiter implements a per-client token bucket rate limiter
type RateLimiter struct {
	clients  *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	window   time.Duration
	requests int
	trusted  []netip.Prefix
	mu       sync.Mutex
}

// NewRateLimiter creates a new rate limiter
// requests: maximum number of requests allowed per window
// window: time window duration (e.g., 1 minute)
// trustedProxies: peers whose forwarding headers identify the client; with none, only RemoteAddr is used
func NewRateLimiter(requests int, window time.Duration, trustedProxies ...netip.Prefix) *RateLimiter {
	clients, err := lru.New[string, *rate.Limiter](maxTrackedClients)
	if err != nil {
		// Only fails for a non-positive size
		slog.Error("failed to create rate limiter cache", slog.String("error", err.Error()))
		clients, _ = lru.New[string, *rate.Limiter](1)
	}

	return &RateLimiter{
		clients:  clients,
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		window:   window,
		requests: requests,
		trusted:  trustedProxies,
	}
}

// Middleware returns a rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := getClientIP(r, rl.trusted)

		if !rl.allow(clientID) {
			retryAfter := int(math.Ceil(rl.window.Seconds() / float64(rl.requests)))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSONError(w, http.StatusTooManyRequests, "RateLimitExceeded", "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow checks if a client is allowed to make a request
func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	limiter, ok := rl.clients.Get(clientID)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.requests)
		rl.clients.Add(clientID, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// getClientIP extracts the client IP from the request
// Forwarding headers are only read when the direct peer is a trusted proxy
func getClientIP(r *http.Request, trusted []netip.Prefix) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !isTrusted(peer, trusted) {
		return peer
	}

	// Walk the chain right to left; the first hop we do not trust is the client
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !isTrusted(hop, trusted) {
				return hop
			}
		}
		if first := strings.TrimSpace(hops[0]); first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return peer
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
