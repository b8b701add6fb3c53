package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimiterAllowsUpToBurst(t *testing.T) {
	limiter := newIPRateLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("request beyond burst should be denied")
	}

	// 其他 IP 独立计数
	if !limiter.allow("10.0.0.2") {
		t.Fatal("a different address should have its own quota")
	}
}

func TestIPRateLimiterPrunesIdleClients(t *testing.T) {
	limiter := newIPRateLimiter(1, time.Minute)
	limiter.allow("10.0.0.1")

	limiter.mu.Lock()
	limiter.clients["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	limiter.prune(time.Now())
	_, exists := limiter.clients["10.0.0.1"]
	limiter.mu.Unlock()

	if exists {
		t.Fatal("expected idle client bucket to be pruned")
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := newIPRateLimiter(1, 15*time.Minute)
	r := gin.New()
	r.GET("/", limiter.Middleware("slow down"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	r.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.9:1234"
	r.ServeHTTP(second, req2)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", second.Code)
	}
}
