package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/BerylCAtieno/gumroad-profiler/internal/metrics"
	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/BerylCAtieno/gumroad-profiler/internal/profiler"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields  = "Missing productInfo or tone in request body"
	msgInvalidTone    = "Invalid tone"
	msgMissingAPIKey  = "API_KEY environment variable is not set on the server."
	msgGenerateFailed = "Failed to generate content from AI."
	msgUnknownError   = "An unknown internal error occurred."
)

type Options struct {
	ImageMIMEType  string
	RequestTimeout time.Duration
}

// Handler serves the JSON API and the dashboard. A nil generator means the
// server has no API key; generation requests then fail with 500.
type Handler struct {
	generator profiler.Generator
	metrics   *metrics.Metrics
	opts      Options
}

func NewHandler(generator profiler.Generator, m *metrics.Metrics, opts Options) *Handler {
	if opts.ImageMIMEType == "" {
		opts.ImageMIMEType = "image/jpeg"
	}
	return &Handler{
		generator: generator,
		metrics:   m,
		opts:      opts,
	}
}

// generationError is a failed generation ready to be sent to the client.
type generationError struct {
	status int
	body   models.ErrorResponse
}

// HandleGenerate processes POST /api/generate.
func (h *Handler) HandleGenerate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("WARN: Rejecting generate request: %v", err)
		h.metrics.CountGeneration(metrics.OutcomeBadRequest)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgMissingFields})
		return
	}

	content, genErr := h.generate(c.Request.Context(), req.ProductInfo, req.Tone)
	if genErr != nil {
		c.JSON(genErr.status, genErr.body)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (h *Handler) generate(ctx context.Context, productInfo string, tone models.Tone) (*models.GeneratedContent, *generationError) {
	if !tone.Valid() {
		h.metrics.CountGeneration(metrics.OutcomeBadRequest)
		return nil, &generationError{
			status: http.StatusBadRequest,
			body: models.ErrorResponse{
				Error:   msgInvalidTone,
				Details: "tone must be one of " + models.ToneNames(),
			},
		}
	}

	if h.generator == nil {
		log.Printf("ERROR: %s", msgMissingAPIKey)
		h.metrics.CountGeneration(metrics.OutcomeUnconfigured)
		return nil, &generationError{
			status: http.StatusInternalServerError,
			body:   models.ErrorResponse{Error: msgMissingAPIKey},
		}
	}

	if h.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.RequestTimeout)
		defer cancel()
	}

	log.Printf("STATE: Generating profile strategy (tone=%s, %d chars)", tone, len(productInfo))
	content, err := h.generator.GenerateProfile(ctx, productInfo, tone)
	if err != nil {
		log.Printf("ERROR: Error in generate handler: %v", err)
		h.metrics.CountGeneration(metrics.OutcomeFailed)

		details := msgUnknownError
		if errors.Is(err, profiler.ErrInvalidResponse) || errors.Is(err, profiler.ErrGeneration) {
			details = err.Error()
		}
		return nil, &generationError{
			status: http.StatusInternalServerError,
			body:   models.ErrorResponse{Error: msgGenerateFailed, Details: details},
		}
	}

	log.Printf("STATE: Profile generation succeeded with %d cover image(s)", len(content.CoverImageIdeas.Images))
	h.metrics.CountGeneration(metrics.OutcomeSuccess)
	return content, nil
}

// HandleFeedback records a thumbs up or down on the last result.
func (h *Handler) HandleFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid feedback",
			Details: "feedback must be 'good' or 'bad'",
		})
		return
	}

	log.Printf("User feedback: %s", req.Feedback)
	h.metrics.CountFeedback(req.Feedback)
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *Handler) HandleExamples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"examples": models.Examples,
		"tones":    models.Tones,
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
