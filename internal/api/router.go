// Package api wires the HTTP surface: the JSON generation endpoint, the dashboard pages,
// feedback, health and metrics.
package api

import (
	"fmt"
	"net/http"

	"github.com/BerylCAtieno/gumroad-profiler/internal/metrics"
	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/BerylCAtieno/gumroad-profiler/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// NewRouter builds the gin engine. m may be nil, in which case /metrics is not served.
func NewRouter(h *Handler, m *metrics.Metrics) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware())
	router.SetHTMLTemplate(tmpl)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method Not Allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not Found"})
	})

	router.GET("/", h.ServeDashboard)
	router.POST("/", h.HandleDashboardSubmit)
	router.StaticFS("/static", http.FS(web.Static()))

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate", h.HandleGenerate)
		apiGroup.POST("/feedback", h.HandleFeedback)
		apiGroup.GET("/examples", h.HandleExamples)
	}

	router.GET("/health", h.HandleHealth)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return router, nil
}
