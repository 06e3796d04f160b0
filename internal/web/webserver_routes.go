// Package web provides the HTTP server and web interface for go-bootstrapcdn
package web

import (
	"github.com/gin-gonic/gin"
)

// pageRoute describes one server-rendered page. The same table drives route
// registration, sitemap.xml and robots.txt, so a page added here shows up in
// all three without separate bookkeeping.
type pageRoute struct {
	Path     string
	Template string
	Title    string
	Hidden   bool // served, but excluded from sitemap and disallowed in robots.txt
}

var pageRoutes = []pageRoute{
	{Path: "/", Template: "home.html", Title: "Home"},
	{Path: "/fontawesome/", Template: "fontawesome.html", Title: "Font Awesome"},
	{Path: "/bootswatch/", Template: "bootswatch.html", Title: "Bootswatch"},
	{Path: "/bootlint/", Template: "bootlint.html", Title: "Bootlint"},
	{Path: "/alpha/", Template: "alpha.html", Title: "Alpha", Hidden: true},
	{Path: "/legacy/", Template: "legacy.html", Title: "Legacy", Hidden: true},
	{Path: "/showcase/", Template: "showcase.html", Title: "Showcase"},
	{Path: "/integrations/", Template: "integrations.html", Title: "Integrations"},
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first (highest priority)
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))

	// Handle favicon explicitly so it never falls through to a page route
	s.Router.GET("/favicon.ico", EmbeddedFileHandler("static/favicon.ico"))

	s.Router.GET("/sitemap.xml", s.sitemapXML)
	s.Router.GET("/robots.txt", s.robotsTxt)
	s.Router.GET("/ping", s.pingHandler)

	// Data API and CSP violation sink
	s.Router.GET("/data/bootstrapcdn.json", s.dataJSON)
	s.Router.POST("/csp-report", s.cspReport)

	// Prometheus metrics
	s.Router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Server-rendered pages
	for _, route := range pageRoutes {
		s.Router.GET(route.Path, s.pageHandler(route))
	}
}
