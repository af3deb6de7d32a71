package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bakery-management/pkg/log"
)

func newEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Logging(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 immediate requests.
	r := newEngine(New(log.NewNop(), 60))

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	if codes[http.StatusOK] != 6 {
		t.Errorf("expected 6 allowed requests, got %d", codes[http.StatusOK])
	}
	if codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("expected 4 throttled requests, got %d", codes[http.StatusTooManyRequests])
	}

	// Another client has its own budget.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client should not be throttled, got %d", w.Code)
	}
}

func TestRateLimiter_MinimumBurst(t *testing.T) {
	rl := newRateLimiter(1)
	if err := rl.Allow("a"); err != nil {
		t.Fatalf("first request must pass: %v", err)
	}
	if err := rl.Allow("a"); err == nil {
		t.Fatalf("second immediate request should be limited")
	}
}

func TestLogging_RequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), 600))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) == "" {
		t.Errorf("expected generated request id")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "given-id" {
		t.Errorf("expected echoed id, got %q", got)
	}
}
