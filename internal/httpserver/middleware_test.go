package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jansunwai/grievance-classifier/internal/httpserver"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// requestIDRouter wires RequestIDLoggerMiddleware in front of a trivial
// GET /ping handler.
func requestIDRouter(t *testing.T) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestRequestIDLoggerMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	router := requestIDRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("X-Request-ID response header is empty, want a generated ID")
	}
	// 16 random bytes hex-encoded.
	if len(id) != 32 {
		t.Errorf("generated request ID length = %d, want 32", len(id))
	}
}

func TestRequestIDLoggerMiddleware_PreservesInboundID(t *testing.T) {
	t.Parallel()

	const inboundID = "trace-from-upstream-abc123"

	router := gin.New()
	router.Use(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	var ctxID string
	router.GET("/ping", func(c *gin.Context) {
		ctxID = c.GetString("request_id")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", inboundID)
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != inboundID {
		t.Errorf("response X-Request-ID = %q, want %q", got, inboundID)
	}
	if ctxID != inboundID {
		t.Errorf("gin context request_id = %q, want %q", ctxID, inboundID)
	}
}

func TestRequestIDLoggerMiddleware_ReplacesOversizedID(t *testing.T) {
	t.Parallel()

	oversized := strings.Repeat("x", 200)
	router := requestIDRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", oversized)
	router.ServeHTTP(w, req)

	got := w.Header().Get("X-Request-ID")
	if got == oversized {
		t.Error("oversized X-Request-ID was kept, want a generated replacement")
	}
	if got == "" {
		t.Fatal("X-Request-ID response header is empty after replacing oversized ID")
	}
}

func TestRequestIDLoggerMiddleware_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	var handlerLogger logger.Logger
	router.GET("/ping", func(c *gin.Context) {
		handlerLogger = logger.FromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if handlerLogger == nil {
		t.Fatal("logger.FromContext returned nil inside handler, want request-scoped logger")
	}
}

func TestRequestIDLoggerMiddleware_UniqueIDs(t *testing.T) {
	t.Parallel()

	router := requestIDRouter(t)

	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

		id := w.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("duplicate request ID generated: %s", id)
		}
		seen[id] = true
	}
}

// corsRouter wires CORSMiddleware with the given config in front of a
// trivial GET /ping handler.
func corsRouter(t *testing.T, cfg httpserver.CORSConfig) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(httpserver.CORSMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	t.Parallel()

	router := corsRouter(t, httpserver.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://app.example.com"},
		MaxAge:         10 * time.Minute,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q, want the requesting origin", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Errorf("Max-Age = %q, want %q", got, "600")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Allow-Methods header missing on preflight response")
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	router := corsRouter(t, httpserver.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://app.example.com"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.net")
	router.ServeHTTP(w, req)

	// The request still reaches the handler, just without CORS headers.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for disallowed origin, want no header", got)
	}
}

func TestCORSMiddleware_WildcardDefault(t *testing.T) {
	t.Parallel()

	// Zero config defaults to a permissive policy.
	router := corsRouter(t, httpserver.CORSConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("Origin", "https://anything.example.org")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want %q", got, "*")
	}
}

func TestRecoveryMiddleware_ConvertsPanicTo500(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(httpserver.RecoveryMiddleware(logger.NewNop()))
	router.GET("/boom", func(*gin.Context) {
		panic("handler exploded")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("error code = %q, want %q", body["code"], "INTERNAL_ERROR")
	}
}
