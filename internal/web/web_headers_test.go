package web

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-while/go-bootstrapcdn/internal/config"
)

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	s := newTestServer(t, config.ModeDevelopment)

	for _, path := range []string{"/", "/fontawesome/", "/data/bootstrapcdn.json", "/no/such/page"} {
		w := doRequest(s, http.MethodGet, path)

		csp := w.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "default-src 'none'", "path %s", path)
		assert.Contains(t, csp, "report-uri /csp-report", "path %s", path)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), "path %s", path)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), "path %s", path)
	}
}

func TestCacheHeaders(t *testing.T) {
	s := newTestServer(t, config.ModeDevelopment)

	w := doRequest(s, http.MethodGet, "/")
	assert.Equal(t, "public, max-age=7200", w.Header().Get("Cache-Control"))

	lastModified, err := time.Parse(http.TimeFormat, w.Header().Get("Last-Modified"))
	require.NoError(t, err)
	expires, err := time.Parse(http.TimeFormat, w.Header().Get("Expires"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, expires.Sub(lastModified))
}

func TestStaticAssetsGetThirtyDayCache(t *testing.T) {
	s := newTestServer(t, config.ModeDevelopment)

	w := doRequest(s, http.MethodGet, "/static/css/bootstrapcdn.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=2592000", w.Header().Get("Cache-Control"))
}

func TestIdentificationHeaders(t *testing.T) {
	s := newTestServer(t, config.ModeDevelopment)

	w := doRequest(s, http.MethodGet, "/")
	assert.Contains(t, w.Header().Get("X-Powered-By"), "go-bootstrapcdn")
	assert.NotEmpty(t, w.Header().Get("X-Hello-Human"))
}

func TestStrictTransportSecurity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// production with forced SSL: full STS with subdomains and preload
	s := NewServer(testConfig(), config.ModeProduction, true)
	w := doRequest(s, http.MethodGet, "/")
	assert.Equal(t, "max-age=31536000; includeSubDomains; preload", w.Header().Get("Strict-Transport-Security"))

	// production without the force flag: no STS
	s = NewServer(testConfig(), config.ModeProduction, false)
	w = doRequest(s, http.MethodGet, "/")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	// development never sends STS, forced or not
	s = NewServer(testConfig(), config.ModeDevelopment, true)
	w = doRequest(s, http.MethodGet, "/")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestCSPReportSink(t *testing.T) {
	s := newTestServer(t, config.ModeDevelopment)

	w := doRequest(s, http.MethodPost, "/csp-report")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
