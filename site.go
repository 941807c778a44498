package main

import (
	"database/sql"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/russwtaylor/portfolio/internal/content"
	"github.com/russwtaylor/portfolio/internal/typewriter"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type site struct {
	cfg     Config
	db      *sql.DB
	content *content.Content
	timing  typewriter.Timing

	adminToken  string
	hashingSalt string
}

func newSite(cfg Config) (*site, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	db, err := openDB(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	s := &site{
		cfg:     cfg,
		db:      db,
		content: c,
		timing:  typewriter.DefaultTiming().Scale(cfg.TypedSpeed),
	}
	s.initAdminToken()
	return s, nil
}

func (s *site) router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(s.visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"content":   s.content,
			"aboutHTML": s.content.AboutHTML(),
			"theme":     themeFromRequest(c),
			"year":      time.Now().Year(),
		})
	})

	r.POST("/theme", toggleTheme)

	r.GET("/typed", s.typedStream)
	r.GET("/typed/phrases", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"phrases": s.content.Phrases})
	})

	r.POST("/contact", s.handleContact)

	r.GET("/healthz", func(c *gin.Context) {
		if err := s.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)
	return r
}
