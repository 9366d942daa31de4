package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetHealth_NoRedisConfigured(t *testing.T) {
	h := NewHealthHandler(nil, logrus.New())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.GetHealth(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "not_configured", resp.Checks["redis"])
}

func TestGetReady_NoRedisConfiguredIsReady(t *testing.T) {
	h := NewHealthHandler(nil, logrus.New())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	h.GetReady(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
}
