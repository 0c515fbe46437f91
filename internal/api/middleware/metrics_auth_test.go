package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-logistics/internal/config"
)

func metricsHandler(c echo.Context) error {
	return c.String(http.StatusOK, "metrics")
}

func newMetricsRequest(user, pass string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	if user != "" || pass != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
		req.Header.Set(echo.HeaderAuthorization, "Basic "+auth)
	}
	return req
}

func TestMetricsBasicAuth_NoCredentials(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newMetricsRequest("", ""), rec)

	err := MetricsBasicAuth(config.MetricsConfig{})(metricsHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics", rec.Body.String())
}

func TestMetricsBasicAuth_ValidCredentials(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newMetricsRequest("testuser", "testpass"), rec)

	err := MetricsBasicAuth(cfg)(metricsHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsBasicAuth_InvalidCredentials(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newMetricsRequest("wronguser", "wrongpass"), rec)

	err := MetricsBasicAuth(cfg)(metricsHandler)(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestMetricsBasicAuth_MissingHeader(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}
	e := echo.New()
	e.GET("/metrics", metricsHandler, MetricsBasicAuth(cfg))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newMetricsRequest("", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
