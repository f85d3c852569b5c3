package render

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadContent(t *testing.T) *models.GeneratedContent {
	t.Helper()
	data, err := os.ReadFile("../testdata/profile.json")
	require.NoError(t, err)

	var content models.GeneratedContent
	require.NoError(t, json.Unmarshal(data, &content))
	content.CoverImageIdeas = models.CoverImageIdeas{
		Title:  "AI-Generated Cover Image Ideas",
		Prompt: "a cover",
		Images: []string{"aW1hZ2Ux", "", "aW1hZ2Uy"},
	}
	return &content
}

func TestOverviewText(t *testing.T) {
	got := OverviewText(models.ProfileOverview{
		Tagline:    "Ship faster",
		Variations: []string{"First.", "Second."},
	})
	assert.Equal(t, "Tagline: Ship faster\n\nOption 1:\nFirst.\n\nOption 2:\nSecond.", got)
}

func TestVisualsText(t *testing.T) {
	content := loadContent(t)
	got := VisualsText(content.Visuals)

	assert.True(t, strings.HasPrefix(got, "**Color Palette**\n- Primary: Deep Indigo (#3F3DBC) - Trust and focus."))
	assert.Contains(t, got, "\n\n**Typography**\n- Heading Font: Inter (Bold, 24-32px)\n")
	assert.Contains(t, got, "- Icon Set Example: Feather Icons\n")
	assert.Contains(t, got, "- Layout System: 8-point grid system\n")
	assert.Contains(t, got, "- Messaging Tip: Lead with the time saved.\n")
	assert.True(t, strings.HasSuffix(got, "- Feedback Suggestion: Subtle button press animation."))
}

func TestDescriptionText(t *testing.T) {
	d := models.ProductDescriptionTemplate{
		Template: []models.DescriptionTemplateItem{
			{Heading: "Headline", Body: "Body one"},
			{Heading: "Included", Body: "Body two"},
		},
	}
	assert.Equal(t, "Headline\nBody one\n\nIncluded\nBody two", DescriptionText(d))

	d.FAQ = []models.FAQItem{{Question: "Refunds?", Answer: "Within 30 days."}, {Question: "Updates?", Answer: "Free."}}
	assert.Equal(t,
		"Headline\nBody one\n\nIncluded\nBody two\n\nFrequently Asked Questions\nQ: Refunds?\nA: Within 30 days.\n\nQ: Updates?\nA: Free.",
		DescriptionText(d))
}

func TestPricingAndPromotionText(t *testing.T) {
	assert.Equal(t, "Recommended Price: $29\n\nJustification:\nFair.",
		PricingText(models.PricingStrategy{Recommendation: "$29", Justification: "Fair."}))
	assert.Equal(t, "Sample Tweet:\nTweet\n\nSample Email Snippet:\nEmail",
		PromotionText(models.PromotionalContent{SampleTweet: "Tweet", SampleEmail: "Email"}))
}

func TestCoverImageURLs(t *testing.T) {
	urls := CoverImageURLs([]string{"abc", "", "def"}, "")
	require.Len(t, urls, 2)
	assert.Equal(t, "data:image/jpeg;base64,abc", string(urls[0]))

	urls = CoverImageURLs([]string{"abc"}, "image/png")
	assert.Equal(t, "data:image/png;base64,abc", string(urls[0]))
}

func TestShareURL(t *testing.T) {
	got := ShareURL()
	assert.True(t, strings.HasPrefix(got, "https://twitter.com/intent/tweet?text="))
	assert.Contains(t, got, "%23Gumroad")
	assert.NotContains(t, got, " ")
}

func TestNewDashboard(t *testing.T) {
	assert.Nil(t, NewDashboard(nil, "image/jpeg"))

	content := loadContent(t)
	d := NewDashboard(content, "image/jpeg")
	require.NotNil(t, d)

	require.Len(t, d.Swatches, 3)
	assert.Equal(t, "Accent", d.Swatches[2].Label)
	assert.Equal(t, "#FF6B6B", d.Swatches[2].Hex)

	require.Len(t, d.VisualSections, 4)
	assert.Equal(t, "Icons & Imagery", d.VisualSections[0].Title)
	assert.Len(t, d.VisualSections[0].Items, 3)

	assert.Len(t, d.CoverImages, 2)
	assert.Equal(t, OverviewText(content.ProfileOverview), d.Copy.Overview)
	assert.Contains(t, d.Copy.Description, "Frequently Asked Questions")
}

func TestFontFamily(t *testing.T) {
	assert.Equal(t, "Inter", FontFamily("Inter, sans-serif"))
	assert.Equal(t, "Roboto", FontFamily("Roboto"))
}
