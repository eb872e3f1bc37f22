package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numbertheory/internal/api/middleware"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Logging.Level = "error"
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 2
	return cfg
}

func TestNewServer(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	_, ok := srv.Registry().Tool("ntp.euclid")
	assert.True(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/calculations?section=gcdAndLcm&firstNumber=1071&secondNumber=462", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServerRateLimit(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewServerBadLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "chatty"

	_, err := NewServer(cfg)
	assert.Error(t, err)
}

func TestRunAndShutdown(t *testing.T) {
	srv, err := NewServer(testConfig())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Give the listener a moment before shutting it down
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}
