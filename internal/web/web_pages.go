package web

import (
	"github.com/gin-gonic/gin"
)

// pageHandler returns the handler for one entry of the page route table.
// Rendering is a pure function of the immutable config: same path, same
// config, same output.
func (s *WebServer) pageHandler(route pageRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := s.getBaseTemplateData(c, route.Title)
		s.renderTemplate(c, route.Template, data)
	}
}
