package profiler

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/BerylCAtieno/gumroad-profiler/internal/metrics"
	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeText) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeImages struct {
	images  []string
	err     error
	prompts []string
	// textCalls is the number of text calls seen when the image call started.
	textCalls int
	text      *fakeText
}

func (f *fakeImages) GenerateImages(_ context.Context, prompt string) ([]string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.text != nil {
		f.textCalls = len(f.text.prompts)
	}
	return f.images, f.err
}

func fixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../testdata/profile.json")
	require.NoError(t, err)
	return string(data)
}

func TestGenerateProfile_Success(t *testing.T) {
	text := &fakeText{response: "```json\n" + fixture(t) + "\n```"}
	images := &fakeImages{images: []string{"aW1hZ2Ux", "aW1hZ2Uy"}, text: text}
	m := metrics.New()

	p := New(text, images, m)
	content, err := p.GenerateProfile(context.Background(), "A pack of 100+ icons", models.ToneWitty)
	require.NoError(t, err)

	require.Len(t, text.prompts, 1)
	require.Len(t, images.prompts, 1)
	assert.Equal(t, 1, images.textCalls, "image call must follow the text call")

	assert.Equal(t, "Icons that make interfaces sing", content.ProfileOverview.Tagline)
	assert.Equal(t, CoverImageTitle, content.CoverImageIdeas.Title)
	assert.Equal(t, []string{"aW1hZ2Ux", "aW1hZ2Uy"}, content.CoverImageIdeas.Images)
	assert.Equal(t, images.prompts[0], content.CoverImageIdeas.Prompt)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.ProviderErrors.WithLabelValues(metrics.CallText)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ProviderDuration))
}

func TestGenerateProfile_PromptsCarryInput(t *testing.T) {
	text := &fakeText{response: fixture(t)}
	images := &fakeImages{}

	p := New(text, images, nil)
	content, err := p.GenerateProfile(context.Background(), "A Notion budget template", models.ToneDirect)
	require.NoError(t, err)

	assert.Contains(t, text.prompts[0], "**Adopt a Direct tone for all written content.**")
	assert.Contains(t, text.prompts[0], `User's Product Description: "A Notion budget template"`)

	imagePrompt := images.prompts[0]
	assert.True(t, strings.HasPrefix(imagePrompt, "Create a high-quality, professional Gumroad cover photo"))
	assert.Contains(t, imagePrompt, `The product is about: "A Notion budget template".`)
	assert.Contains(t, imagePrompt, `The brand's essence is: "Pixel-perfect minimalist icons built for UI designers who ship fast."`)
	assert.Contains(t, imagePrompt, "primary color ~#3F3DBC")
	assert.Contains(t, imagePrompt, "typography style ~Inter")
	assert.Contains(t, imagePrompt, "overall imagery feel of Clean mockups on soft gradients. Avoid text.")

	assert.NotNil(t, content.CoverImageIdeas.Images)
	assert.Empty(t, content.CoverImageIdeas.Images)
}

func TestGenerateProfile_MalformedJSON(t *testing.T) {
	text := &fakeText{response: "Sure! Here is your strategy: {"}
	images := &fakeImages{}

	p := New(text, images, nil)
	content, err := p.GenerateProfile(context.Background(), "icons", models.ToneFriendly)

	assert.Nil(t, content)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Empty(t, images.prompts, "no image call after a parse failure")
}

func TestGenerateProfile_WrongShape(t *testing.T) {
	text := &fakeText{response: `{"profileOverview": {"title": "x", "tagline": "y", "variations": []}}`}
	images := &fakeImages{}

	p := New(text, images, nil)
	_, err := p.GenerateProfile(context.Background(), "icons", models.ToneFriendly)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Empty(t, images.prompts)
}

func TestGenerateProfile_TextProviderError(t *testing.T) {
	text := &fakeText{err: errors.New("rpc error: code = ResourceExhausted")}
	images := &fakeImages{}
	m := metrics.New()

	p := New(text, images, m)
	_, err := p.GenerateProfile(context.Background(), "icons", models.ToneProfessional)

	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, ErrGeneration.Error(), err.Error())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderErrors.WithLabelValues(metrics.CallText)))
}

func TestGenerateProfile_ImageProviderError(t *testing.T) {
	text := &fakeText{response: fixture(t)}
	images := &fakeImages{err: errors.New("safety filter")}
	m := metrics.New()

	p := New(text, images, m)
	_, err := p.GenerateProfile(context.Background(), "icons", models.ToneProfessional)

	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderErrors.WithLabelValues(metrics.CallImage)))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n  {\"key\": \"value\"}  \n```\n ",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    ` {"key": "value"} `,
			expected: `{"key": "value"}`,
		},
		{
			name:     "multiline body",
			input:    "```json\n{\n  \"a\": 1,\n  \"b\": 2\n}\n```",
			expected: "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:     "unterminated fence is left alone",
			input:    "```json\n{\"key\": \"value\"}",
			expected: "```json\n{\"key\": \"value\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFence(tt.input))
		})
	}
}

func TestParseProfileData(t *testing.T) {
	data, err := ParseProfileData(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, "#FF6B6B", data.Visuals.ColorPalette.Accent.Hex)
	assert.Len(t, data.ProductDescriptionTemplate.FAQ, 1)
	assert.Len(t, data.SEOKeywords.Keywords, 6)
	assert.Len(t, data.NavigationAndCTA.Recommendations, 3)
}

func TestCloseWithoutCloser(t *testing.T) {
	p := New(&fakeText{}, &fakeImages{}, nil)
	assert.NoError(t, p.Close())
}
