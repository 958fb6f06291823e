package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/item/repository"
	"catalog-service/internal/item/repository/memory"
	"catalog-service/pkg/log"
	"catalog-service/pkg/response"
)

// unreachableRepo is a memory store whose Ping always fails.
type unreachableRepo struct {
	repository.Repository
}

func (unreachableRepo) Ping(context.Context) error {
	return errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
}

func newTestServer(t *testing.T, repo repository.Repository) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		RateLimitPerMin: 0,
		ItemRepository:  repo,
	})
	require.NoError(t, err)
	return srv
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1, ItemRepository: memory.New(log.NewNop())}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, ItemRepository: memory.New(log.NewNop())}},
		{name: "missing repository", cfg: Config{Mode: gin.TestMode, Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, Config{Mode: gin.TestMode, Port: 1, ItemRepository: memory.New(log.NewNop())})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, memory.New(log.NewNop())).Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := get(h, path)
			require.Equal(t, http.StatusOK, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, ServiceName, body["service"])
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		get(h, "/items")
		w := get(h, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})

	t.Run("/swagger", func(t *testing.T) {
		w := get(h, "/swagger/doc.json")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"/items/{id}"`)
	})
}

func TestReadyFailsWhenStoreIsDown(t *testing.T) {
	h := newTestServer(t, unreachableRepo{memory.New(log.NewNop())}).Handler()

	w := get(h, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, body.ErrorCode)

	assert.Equal(t, http.StatusOK, get(h, "/live").Code)
}

func TestItemRoutesAreMounted(t *testing.T) {
	h := newTestServer(t, memory.New(log.NewNop())).Handler()

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Potion","price":9.99}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/items/"), loc)
	assert.Equal(t, http.StatusOK, get(h, loc).Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/items/00000000-0000-4000-8000-000000000000").Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	srv, err := New(log.NewNop(), Config{
		Port:            port,
		Mode:            gin.TestMode,
		ShutdownTimeout: time.Second,
		ItemRepository:  memory.New(log.NewNop()),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
