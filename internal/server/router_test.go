package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kintacos/internal/order"
	"kintacos/internal/order/provider"
)

func TestRouter_WelcomeRoute(t *testing.T) {
	ctrl := order.NewModule(provider.NewMemoryProvider(), zap.NewNop())
	router := NewRouter(ctrl, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "welcome")
}

func TestRouter_MountsOrderRoutes(t *testing.T) {
	ctrl := order.NewModule(provider.NewMemoryProvider(), zap.NewNop())
	router := NewRouter(ctrl, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	ctrl := order.NewModule(provider.NewMemoryProvider(), zap.NewNop())
	router := NewRouter(ctrl, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
