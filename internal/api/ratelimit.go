package api

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter keeps one token bucket per client address. A bucket admits
// max requests per window with the whole quota available as burst, which
// matches the fixed-window limits of the original site closely enough for
// abuse control.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*ipLimiterEntry
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(max int, window time.Duration) *ipRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &ipRateLimiter{
		clients: make(map[string]*ipLimiterEntry),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		ttl:     3 * window,
	}
}

// allow reports whether the given address may proceed.
func (l *ipRateLimiter) allow(addr string) bool {
	now := time.Now()

	l.mu.Lock()
	entry, ok := l.clients[addr]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[addr] = entry
	}
	entry.lastSeen = now
	l.prune(now)
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// prune drops buckets idle longer than the ttl. Caller must hold the lock.
func (l *ipRateLimiter) prune(now time.Time) {
	for addr, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.clients, addr)
		}
	}
}

// Middleware 将限流器包装为 gin 中间件
func (l *ipRateLimiter) Middleware(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			TooManyRequests(c, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GlobalRateLimit 站点级限流，覆盖所有 API 路由
func GlobalRateLimit() gin.HandlerFunc {
	limiter := newIPRateLimiter(100, 15*time.Minute)
	return limiter.Middleware("Too many requests from this IP, please try again later.")
}

// LoginRateLimit 登录端点限流
func (h *HTTPHandler) LoginRateLimit() gin.HandlerFunc {
	return h.loginLimiter.Middleware("Too many authentication attempts, please try again later.")
}

// ContactRateLimit 联系表单限流
func (h *HTTPHandler) ContactRateLimit() gin.HandlerFunc {
	return h.contactLimiter.Middleware("Too many contact form submissions. Please try again later.")
}

// ConsultationRateLimit 咨询预约限流
func (h *HTTPHandler) ConsultationRateLimit() gin.HandlerFunc {
	return h.consultationLimiter.Middleware("Too many consultation requests from this IP, please try again later.")
}
