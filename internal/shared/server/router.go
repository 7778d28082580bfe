package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-press/internal/editor"
	"resume-press/internal/shared/config"
	"resume-press/internal/shared/metrics"
	"resume-press/internal/shared/server/middleware"
	"resume-press/internal/shared/server/respond"
	"resume-press/internal/shared/storage/object/local"
)

// NewRouter builds the gin engine with middleware, the editor UI and the
// JSON API wired against a local object store rooted at cfg.DataDir.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	store := local.New(cfg.DataDir)
	svc := &editor.Service{
		Store:     store,
		ResumeKey: cfg.ResumeFile,
		OutputKey: cfg.OutputFile,
	}
	h := editor.NewHandler(svc)

	r.GET("/", h.Page)
	r.POST("/generate", h.Generate)
	r.GET("/resume.pdf", h.Download)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})
	api.GET("/resume", h.GetResume)
	api.PUT("/resume", h.PutResume)
	api.POST("/resume/render", h.Render)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr formats the listen address for the configured port.
func Addr(port string) string {
	return fmt.Sprintf(":%s", port)
}
