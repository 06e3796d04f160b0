package web

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-bootstrapcdn/internal/config"
)

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	CurrentTime string
	Port        int
	AppVersion  string
	Production  bool
	SiteURL     string
	Bootstrap   []config.VersionRecord
	Fontawesome []config.VersionRecord
	Extra       map[string]any
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.Port
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(c *gin.Context, title string) TemplateData {
	return TemplateData{
		Title:       title,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05 MST"),
		Port:        s.Config.Port,
		AppVersion:  config.AppVersion,
		Production:  s.Mode.IsProduction(),
		SiteURL:     s.Config.SiteURL,
		Bootstrap:   s.Config.Bootstrap,
		Fontawesome: s.Config.Fontawesome,
		Extra:       s.Config.Extra,
	}
}

// renderError renders an error page. Error detail reaches the client only in
// development mode; production clients get the message, the log gets the rest.
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData(c, "Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	if !s.Mode.IsProduction() && errstring != "" {
		errorData.Error = message + ": " + errstring
	}
	log.Printf("[ERROR]: %d: %s - %s", statusCode, message, errstring)

	tmpl := s.templates["error.html"]
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", errorData); err != nil {
		log.Printf("[ERROR]: rendering error template: %v", err)
		c.String(statusCode, "Error: %s", message)
		return
	}
	c.Data(statusCode, "text/html; charset=utf-8", buf.Bytes())
}

// renderTemplate renders a page template into a buffer so that no body byte
// is written before the response headers are final.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		s.renderError(c, http.StatusInternalServerError, "Template error", "unknown template "+templateName)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("[ERROR]: rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
