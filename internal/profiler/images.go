package profiler

import (
	"context"
	"encoding/base64"
	"fmt"

	imagegen "google.golang.org/genai"
)

// ImagenClient renders cover images through the Imagen endpoint of the Gemini API.
type ImagenClient struct {
	client         *imagegen.Client
	model          string
	numberOfImages int32
	mimeType       string
}

func NewImagenClient(ctx context.Context, apiKey, model string, numberOfImages int, mimeType string) (*ImagenClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := imagegen.NewClient(ctx, &imagegen.ClientConfig{
		APIKey:  apiKey,
		Backend: imagegen.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Imagen client: %w", err)
	}

	return &ImagenClient{
		client:         client,
		model:          model,
		numberOfImages: int32(numberOfImages),
		mimeType:       mimeType,
	}, nil
}

// GenerateImages returns the generated images as base64 strings.
func (c *ImagenClient) GenerateImages(ctx context.Context, prompt string) ([]string, error) {
	resp, err := c.client.Models.GenerateImages(ctx, c.model, prompt, &imagegen.GenerateImagesConfig{
		NumberOfImages: c.numberOfImages,
		OutputMIMEType: c.mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate images: %w", err)
	}

	images := make([]string, 0, len(resp.GeneratedImages))
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		images = append(images, base64.StdEncoding.EncodeToString(generated.Image.ImageBytes))
	}

	return images, nil
}
