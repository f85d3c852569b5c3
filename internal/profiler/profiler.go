// Package profiler turns a product description into a Gumroad profile strategy by
// calling the text model for structured copy and then the image model for cover art.
package profiler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/BerylCAtieno/gumroad-profiler/internal/metrics"
	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/BerylCAtieno/gumroad-profiler/internal/schemas"
)

const CoverImageTitle = "AI-Generated Cover Image Ideas"

var (
	ErrInvalidResponse = errors.New("Failed to parse data from the AI. The response may not be valid JSON.")
	ErrGeneration      = errors.New("An error occurred while generating the profile strategy. Please try again.")
)

var codeFence = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type ImageGenerator interface {
	GenerateImages(ctx context.Context, prompt string) ([]string, error)
}

// Generator is what the HTTP layer needs from this package.
type Generator interface {
	GenerateProfile(ctx context.Context, productInfo string, tone models.Tone) (*models.GeneratedContent, error)
}

type Options struct {
	APIKey         string
	TextModel      string
	ImageModel     string
	Temperature    float32
	NumberOfImages int
	ImageMIMEType  string
}

type Profiler struct {
	text    TextGenerator
	images  ImageGenerator
	metrics *metrics.Metrics
}

func New(text TextGenerator, images ImageGenerator, m *metrics.Metrics) *Profiler {
	return &Profiler{
		text:    text,
		images:  images,
		metrics: m,
	}
}

// Open builds a Profiler backed by the Gemini text model and the Imagen image model.
func Open(ctx context.Context, opts Options, m *metrics.Metrics) (*Profiler, error) {
	text, err := NewGeminiClient(ctx, opts.APIKey, opts.TextModel, opts.Temperature)
	if err != nil {
		return nil, err
	}

	images, err := NewImagenClient(ctx, opts.APIKey, opts.ImageModel, opts.NumberOfImages, opts.ImageMIMEType)
	if err != nil {
		text.Close()
		return nil, err
	}

	return New(text, images, m), nil
}

// Close releases the provider clients that hold connections.
func (p *Profiler) Close() error {
	if closer, ok := p.text.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// GenerateProfile runs the text call and then the image call. Any failure is reported
// as ErrInvalidResponse or ErrGeneration; the cause is logged, not returned.
func (p *Profiler) GenerateProfile(ctx context.Context, productInfo string, tone models.Tone) (*models.GeneratedContent, error) {
	data, err := p.generateProfileData(ctx, productInfo, tone)
	if err != nil {
		log.Printf("ERROR: Error during content generation pipeline: %v", err)
		if errors.Is(err, ErrInvalidResponse) {
			return nil, ErrInvalidResponse
		}
		return nil, ErrGeneration
	}

	prompt, images, err := p.generateCoverImages(ctx, data, productInfo)
	if err != nil {
		log.Printf("ERROR: Error during content generation pipeline: %v", err)
		return nil, ErrGeneration
	}

	return &models.GeneratedContent{
		ProfileData: *data,
		CoverImageIdeas: models.CoverImageIdeas{
			Title:  CoverImageTitle,
			Prompt: prompt,
			Images: images,
		},
	}, nil
}

func (p *Profiler) generateProfileData(ctx context.Context, productInfo string, tone models.Tone) (*models.ProfileData, error) {
	prompt := buildProfilePrompt(productInfo, tone)

	started := time.Now()
	text, err := p.text.GenerateJSON(ctx, prompt)
	p.metrics.ObserveProviderCall(metrics.CallText, started, err)
	if err != nil {
		return nil, err
	}

	return ParseProfileData(text)
}

func (p *Profiler) generateCoverImages(ctx context.Context, data *models.ProfileData, productInfo string) (string, []string, error) {
	prompt := buildCoverImagePrompt(data, productInfo)

	log.Printf("STATE: Requesting cover images")
	started := time.Now()
	images, err := p.images.GenerateImages(ctx, prompt)
	p.metrics.ObserveProviderCall(metrics.CallImage, started, err)
	if err != nil {
		return "", nil, err
	}
	if images == nil {
		images = []string{}
	}

	return prompt, images, nil
}

// ParseProfileData strips an optional code fence, checks the document against the
// profile schema and decodes it. Errors wrap ErrInvalidResponse.
func ParseProfileData(text string) (*models.ProfileData, error) {
	jsonStr := StripCodeFence(text)

	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("%w: model returned malformed JSON", ErrInvalidResponse)
	}

	if err := schemas.ValidateProfile(jsonStr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var data models.ProfileData
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &data, nil
}

// StripCodeFence removes a surrounding ```lang ... ``` block if present.
func StripCodeFence(text string) string {
	jsonStr := strings.TrimSpace(text)
	if match := codeFence.FindStringSubmatch(jsonStr); match != nil && match[2] != "" {
		jsonStr = strings.TrimSpace(match[2])
	}
	return jsonStr
}
