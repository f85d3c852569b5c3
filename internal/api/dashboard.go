package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/BerylCAtieno/gumroad-profiler/internal/render"
	"github.com/gin-gonic/gin"
)

const (
	msgEmptyDescription = "Please describe your product first."
	shownExamples       = 3
)

// PageData feeds the "index" template.
type PageData struct {
	Examples    []models.Example
	AllExamples []models.Example
	Tones       []models.Tone
	ProductInfo string
	Tone        models.Tone
	Error       string
	Dashboard   *render.Dashboard
}

func newPageData(productInfo string, tone models.Tone) PageData {
	return PageData{
		Examples:    models.Examples[:shownExamples],
		AllExamples: models.Examples,
		Tones:       models.Tones,
		ProductInfo: productInfo,
		Tone:        tone,
	}
}

// userFacingError is the banner text shown when a generation fails.
func userFacingError(body models.ErrorResponse) string {
	msg := body.Details
	if msg == "" {
		msg = body.Error
	}
	return fmt.Sprintf("Failed to generate profile. %s. This can happen during peak load, please try again in a moment!", msg)
}

// ServeDashboard renders the empty form.
func (h *Handler) ServeDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index", newPageData("", models.ToneProfessional))
}

// HandleDashboardSubmit runs one generation from the form and renders the result cards.
func (h *Handler) HandleDashboardSubmit(c *gin.Context) {
	productInfo := c.PostForm("productInfo")
	tone := models.Tone(c.DefaultPostForm("tone", string(models.ToneProfessional)))
	page := newPageData(productInfo, tone)

	if strings.TrimSpace(productInfo) == "" {
		page.Error = msgEmptyDescription
		c.HTML(http.StatusBadRequest, "index", page)
		return
	}

	content, genErr := h.generate(c.Request.Context(), productInfo, tone)
	if genErr != nil {
		page.Error = userFacingError(genErr.body)
		c.HTML(genErr.status, "index", page)
		return
	}

	page.Dashboard = render.NewDashboard(content, h.opts.ImageMIMEType)
	c.HTML(http.StatusOK, "index", page)
}
