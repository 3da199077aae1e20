package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.DELETE("/api/operations/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := NewServer(ServerConfig{AllowOrigins: []string{"http://localhost:5173"}})
	s.AddController(pingController{})
	r, err := s.Router()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/operations/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "email")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRouter_RoutesRegistered(t *testing.T) {
	s := NewServer(ServerConfig{AllowOrigins: []string{"http://localhost:3000"}})
	s.AddController(pingController{})
	r, err := s.Router()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/operations/1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	// повторная регистрация не ломает движок
	require.NoError(t, RegisterValidators())
}
