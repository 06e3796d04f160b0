package web

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapXML publishes the non-hidden page routes. Staging and development
// deployments get a 404 so crawlers never pick up a non-production sitemap.
func (s *WebServer) sitemapXML(c *gin.Context) {
	if !s.Mode.IsProduction() {
		c.Status(http.StatusNotFound)
		return
	}

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range pageRoutes {
		if route.Hidden {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: s.Config.SiteURL + route.Path})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Sitemap error", err.Error())
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// robotsTxt renders the same route set as robots exclusions. Hidden routes
// are disallowed; outside production the whole site is disallowed while
// still being served to direct requests.
func (s *WebServer) robotsTxt(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if s.Mode.IsProduction() {
		for _, route := range pageRoutes {
			if route.Hidden {
				b.WriteString("Disallow: " + route.Path + "\n")
			}
		}
		b.WriteString("Sitemap: " + s.Config.SiteURL + "/sitemap.xml\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	c.String(http.StatusOK, b.String())
}
