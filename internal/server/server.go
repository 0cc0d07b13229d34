package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kongnyuysido/portfolio/internal/logger"
	"github.com/kongnyuysido/portfolio/internal/repos"
	"github.com/kongnyuysido/portfolio/internal/view"
	"github.com/kongnyuysido/portfolio/web"
)

// StateReader exposes the loader state. *repos.Loader satisfies it.
type StateReader interface {
	State() repos.State
}

// New builds the router. Handlers only read the loader state; they never
// wait for it.
func New(loader StateReader, renderer *view.Renderer, log *slog.Logger) (*gin.Engine, error) {
	r := gin.New()
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	} else {
		r.Use(logger.Middleware(log))
	}
	r.Use(gin.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", renderer.Page(loader.State()))
	})

	// HTMX projects fragment, polled until the loader settles
	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", view.ProjectsFor(loader.State()))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"repos":  loader.State().Phase(),
		})
	})

	return r, nil
}
