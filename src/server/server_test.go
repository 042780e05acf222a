package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"mt-bridge/src/logger"
	"mt-bridge/src/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// -----------------------------------------------------------------------------
// Fakes
// -----------------------------------------------------------------------------

type fakeBroker struct {
	active []string
}

func (b *fakeBroker) SubscribeToSymbols(ctx context.Context, symbols []string) (models.MSubscriptionResult, error) {
	return models.MSubscriptionResult{SuccessfulSymbols: symbols}, nil
}

func (b *fakeBroker) UnsubscribeFromSymbols(symbols []string) {}

func (b *fakeBroker) AddTickListener(listener func(models.MTick)) int { return 1 }

func (b *fakeBroker) RemoveTickListener(id int) {}

func (b *fakeBroker) ActiveSymbols() []string { return b.active }

type fakeSessions struct{ count int }

func (s *fakeSessions) Count() int { return s.count }

// -----------------------------------------------------------------------------

func newTestServer(t *testing.T) *StatusServer {
	t.Helper()

	cfg := &models.MConfig{
		Name:     "test-bridge",
		Host:     "127.0.0.1",
		Port:     8080,
		LogLevel: "ERROR",
		GrpcPort: 50051,
	}
	broker := &fakeBroker{active: []string{"EURUSD", "GBPUSD"}}
	log := logger.NewLogger("ERROR", "test")

	return NewStatusServer(cfg, broker, &fakeSessions{count: 2}, log)
}

func doRequest(s *StatusServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.engine.ServeHTTP(w, req)
	return w
}

// -----------------------------------------------------------------------------
// Tests
// -----------------------------------------------------------------------------

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-bridge is running", w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["grpc_clients"])
	assert.Equal(t, float64(2), body["active_symbols"])
}

func TestSymbolsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/symbols")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symbols []string `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"EURUSD", "GBPUSD"}, body.Symbols)
}

func TestRecentTicksEndpoint(t *testing.T) {
	s := newTestServer(t)

	now := time.Now()
	s.Cache.Add(models.MTick{Symbol: "EURUSD", Bid: 1.1, Ask: 1.1001, Timestamp: now})
	s.Cache.Add(models.MTick{Symbol: "EURUSD", Bid: 1.2, Ask: 1.2001, Timestamp: now})
	s.Cache.Add(models.MTick{Symbol: "GBPUSD", Bid: 1.3, Ask: 1.3001, Timestamp: now})

	w := doRequest(s, http.MethodGet, "/api/ticks/EURUSD?limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symbol string         `json:"symbol"`
		Count  int            `json:"count"`
		Ticks  []models.MTick `json:"ticks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "EURUSD", body.Symbol)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Ticks, 1)
	assert.Equal(t, 1.2, body.Ticks[0].Bid)
}

func TestRecentTicksEndpoint_RejectsBadLimit(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/ticks/EURUSD?limit=0", "/api/ticks/EURUSD?limit=abc"} {
		w := doRequest(s, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestMarketStatusEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/market-status?symbol=EURUSD")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "EURUSD", body["symbol"])
	assert.Equal(t, "forex", body["venue"])
	assert.Contains(t, body, "is_open")
}

func TestMarketStatusEndpoint_RequiresSymbol(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/market-status")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHubShutdownReleasesClientPumps(t *testing.T) {
	s := newTestServer(t)
	go s.runHub()

	client := &Client{hub: s, send: make(chan interface{}, 1)}
	s.register <- client

	require.NoError(t, s.Stop())

	// A read pump finishing after shutdown must not block on unregister
	released := make(chan struct{})
	go func() {
		s.dropClient(client)
		close(released)
	}()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("dropClient blocked after hub shutdown")
	}

	// Shutdown closed the client's send channel
	_, open := <-client.send
	assert.False(t, open)
}

func TestConfigEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/config")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "test-bridge", body["name"])
	assert.Equal(t, float64(50051), body["grpc_port"])
}
