package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/handlers"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOutput struct {
	Body string `json:"body"`
}

func captureMeta(t *testing.T, req *http.Request) handlers.RequestMeta {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.RequestMeta(api))

	captured := make(chan handlers.RequestMeta, 1)

	huma.Get(api, "/test", func(ctx context.Context, _ *struct{}) (*testOutput, error) {
		captured <- handlers.RequestMetaFromContext(ctx)

		return &testOutput{Body: "ok"}, nil
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return <-captured
}

func TestRequestMeta(t *testing.T) {
	t.Run("captures user-agent and referrer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		req.Header.Set("Referer", "https://example.com")

		meta := captureMeta(t, req)

		assert.Equal(t, "TestAgent/1.0", meta.UserAgent)
		assert.Equal(t, "https://example.com", meta.Referrer)
	})

	t.Run("uses the forwarded client address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1")

		assert.Equal(t, "192.168.1.1", captureMeta(t, req).ClientIP)
	})

	t.Run("falls back to the remote address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.9:51234"

		assert.Equal(t, "203.0.113.9", captureMeta(t, req).ClientIP)
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		realIP       string
		remoteAddr   string
		want         string
	}{
		{"single forwarded hop", "192.168.1.1", "", "10.0.0.9:80", "192.168.1.1"},
		{"first of many hops", " 192.168.1.1 , 10.0.0.1, 172.16.0.1", "", "", "192.168.1.1"},
		{"real ip when not forwarded", "", "10.0.0.1", "10.0.0.9:80", "10.0.0.1"},
		{"remote address without port", "", "", "10.0.0.9:80", "10.0.0.9"},
		{"ipv6 remote address", "", "", "[::1]:8080", "::1"},
		{"remote address that has no port", "", "", "unix", "unix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.ClientIP(tt.forwardedFor, tt.realIP, tt.remoteAddr))
		})
	}
}
