package system

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opsCalc/internal/mocks"
)

func newRouter(t *testing.T, store *mocks.MockIOperationStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, err := New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	r := gin.New()
	c.RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIOperationStore(ctrl))

	w := get(r, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Health ok!"}`, w.Body.String())
}

func TestLiveness(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIOperationStore(ctrl))

	w := get(r, "/liveness")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIOperationStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Ping(gomock.Any()).Return(nil),
		store.EXPECT().Ping(gomock.Any()).Return(errors.New("no reachable servers")),
	)
	r := newRouter(t, store)

	w := get(r, "/readiness")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/readiness")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "no reachable servers")
}

func TestAPIDocs(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIOperationStore(ctrl))

	w := get(r, "/api-docs")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/operations")
	assert.Contains(t, paths, "/api/operations/{id}")
	assert.Contains(t, paths, "/api/operations/reset")

	w = get(r, "/api-docs/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockIOperationStore(ctrl))

	w := get(r, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
