package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/licocastillo/inventario/internal/product"
)

func testConfig() *Config {
	return &Config{
		AppEnv:            "test",
		AppAddr:           ":0",
		AppReadTimeout:    15 * time.Second,
		AppWriteTimeout:   15 * time.Second,
		AppRequestTimeout: 30 * time.Second,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

func TestRouterHealthz(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := product.NewHandler(logger, product.NewService(product.NewMemoryRepository()))

	router := NewRouter(RouterParams{
		Logger:         logger,
		Config:         testConfig(),
		ProductHandler: handler,
	})

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, 100, cfg.RateLimitRequests)
	require.False(t, cfg.IsProduction())
}
