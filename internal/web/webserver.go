// Package web provides the HTTP server and web interface for go-bootstrapcdn
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-bootstrapcdn/internal/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

// WebServer represents the web server
type WebServer struct {
	Config    *config.SiteConfig
	Router    *gin.Engine
	Mode      config.DeploymentMode
	ForceSSL  bool      // HSTS headers, only honored in production mode
	StartTime time.Time // Track server start time for uptime calculations

	templates map[string]*template.Template
	metrics   *webMetrics

	// Snapshot for /data/bootstrapcdn.json: computed once, frozen for the
	// process lifetime.
	snapshotOnce sync.Once
	snapshotJSON []byte
	snapshotErr  error
}

// NewServer creates a new web server instance
func NewServer(cfg *config.SiteConfig, mode config.DeploymentMode, forceSSL bool) *WebServer {
	if mode.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Security headers on every response. Strict transport security is
	// handled in the cache/identification middleware since it depends on
	// the force-SSL flag.
	router.Use(secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: buildContentSecurityPolicy(),
	}))

	server := &WebServer{
		Config:    cfg,
		Router:    router,
		Mode:      mode,
		ForceSSL:  forceSSL,
		templates: make(map[string]*template.Template),
		metrics:   newWebMetrics(),
	}

	// Load templates individually to avoid name conflicts between pages.
	for _, route := range pageRoutes {
		server.templates[route.Template] = template.Must(
			template.ParseFS(templatesFS, "templates/base.html", "templates/"+route.Template))
	}
	server.templates["error.html"] = template.Must(
		template.ParseFS(templatesFS, "templates/base.html", "templates/error.html"))

	router.Use(server.ReverseProxyMiddleware())
	router.Use(server.CacheHeadersMiddleware())
	router.Use(server.metrics.Middleware())

	server.setupRoutes()
	return server
}

// Start starts the web server on the configured port
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.Port)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	log.Printf("[WEB]: Starting HTTP server on %s (mode: %s)", addr, s.Mode)
	return s.Router.Run(addr)
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

// pingHandler answers load balancer health checks.
func (s *WebServer) pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
