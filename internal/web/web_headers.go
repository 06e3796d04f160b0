package web

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-bootstrapcdn/internal/config"
)

const (
	// Cache lifetimes: pages are re-fetchable within hours, static assets
	// carry a 30 day lifetime.
	defaultCacheMaxAge = 2 * time.Hour
	staticCacheMaxAge  = 30 * 24 * time.Hour

	stsHeaderValue = "max-age=31536000; includeSubDomains; preload"

	cspReportMaxBody = 16 * 1024
)

// buildContentSecurityPolicy assembles the default-deny CSP sent with every
// response. Each resource category names its allowed origins explicitly;
// anything not listed is denied.
func buildContentSecurityPolicy() string {
	directives := []string{
		"default-src 'none'",
		"script-src 'self' https://www.google-analytics.com",
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
		"img-src 'self' data: https://www.google-analytics.com",
		"font-src 'self' https://fonts.gstatic.com",
		"connect-src 'self'",
		"base-uri 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
		"report-uri /csp-report",
	}
	return strings.Join(directives, "; ")
}

// CacheHeadersMiddleware sets caching and identification headers on every
// response, plus strict transport security when SSL termination happens
// upstream. Headers are set before any handler writes a body byte.
func (s *WebServer) CacheHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxAge := defaultCacheMaxAge
		if strings.HasPrefix(c.Request.URL.Path, "/static/") {
			maxAge = staticCacheMaxAge
		}
		now := time.Now().UTC()
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
		c.Header("Expires", now.Add(maxAge).Format(http.TimeFormat))
		c.Header("Last-Modified", now.Format(http.TimeFormat))
		c.Header("X-Powered-By", "go-bootstrapcdn "+config.AppVersion)
		c.Header("X-Hello-Human", "Say hello back! @bootstrapcdn")

		// Only meaningful when a proxy terminates TLS in front of us and
		// forwards plain HTTP; never sent in development.
		if s.Mode.IsProduction() && s.ForceSSL {
			c.Header("Strict-Transport-Security", stsHeaderValue)
		}

		c.Next()
	}
}

// cspReport accepts content security policy violation reports from browsers.
func (s *WebServer) cspReport(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, cspReportMaxBody))
	if err == nil && len(body) > 0 {
		log.Printf("[CSP]: violation report from %s: %s", c.ClientIP(), string(body))
	}
	c.Status(http.StatusNoContent)
}
