package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/fm-teamselect/internal/config"
	"github.com/jstittsworth/fm-teamselect/internal/progress"
)

func TestNewRouter_HealthAndReadyRespond(t *testing.T) {
	cfg := &config.Config{Env: "development"}
	hub := progress.NewHub(logrus.New())
	go hub.Run()

	router := NewRouter(cfg, nil, nil, hub, logrus.New())

	for _, path := range []string{"/health", "/ready"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewRouter_SelectRouteIsRegistered(t *testing.T) {
	cfg := &config.Config{Env: "production"}
	hub := progress.NewHub(logrus.New())
	go hub.Run()

	router := NewRouter(cfg, nil, nil, hub, logrus.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/select", nil)
	router.ServeHTTP(w, req)

	// Malformed/empty body, but the route must exist (not 404).
	assert.NotEqual(t, http.StatusNotFound, w.Code)
}
