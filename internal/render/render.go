// Package render turns a generated profile strategy into the view model of the dashboard cards.
package render

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
)

const ShareText = "I just optimized my Gumroad strategy with this awesome AI tool! #Gumroad #AI #Marketing"

// CopyTexts is the plain-text version of each card, used by the copy buttons.
type CopyTexts struct {
	Overview    string
	Visuals     string
	Description string
	Pricing     string
	Promotion   string
}

type Swatch struct {
	Label string
	models.ColorInfo
}

type DetailItem struct {
	Label string
	Value string
}

type DetailSection struct {
	Title string
	Icon  string
	Items []DetailItem
}

// Dashboard is everything the result template needs.
type Dashboard struct {
	Content        *models.GeneratedContent
	Copy           CopyTexts
	Swatches       []Swatch
	VisualSections []DetailSection
	CoverImages    []template.URL
	ShareURL       string
}

func NewDashboard(content *models.GeneratedContent, imageMIMEType string) *Dashboard {
	if content == nil {
		return nil
	}

	v := content.Visuals
	return &Dashboard{
		Content: content,
		Copy: CopyTexts{
			Overview:    OverviewText(content.ProfileOverview),
			Visuals:     VisualsText(v),
			Description: DescriptionText(content.ProductDescriptionTemplate),
			Pricing:     PricingText(content.PricingStrategy),
			Promotion:   PromotionText(content.PromotionalContent),
		},
		Swatches: []Swatch{
			{Label: "Primary", ColorInfo: v.ColorPalette.Primary},
			{Label: "Secondary", ColorInfo: v.ColorPalette.Secondary},
			{Label: "Accent", ColorInfo: v.ColorPalette.Accent},
		},
		VisualSections: []DetailSection{
			{Title: "Icons & Imagery", Icon: "icons", Items: []DetailItem{
				{Label: "Style", Value: v.IconsAndImagery.IconStyle},
				{Label: "Example Set", Value: v.IconsAndImagery.IconSetExample},
				{Label: "Guidance", Value: v.IconsAndImagery.ImageryGuidance},
			}},
			{Title: "Layout & Spacing", Icon: "layout", Items: []DetailItem{
				{Label: "System", Value: v.LayoutAndSpacing.LayoutSystem},
				{Label: "Guidance", Value: v.LayoutAndSpacing.SpacingGuidance},
			}},
			{Title: "Brand Voice", Icon: "voice", Items: []DetailItem{
				{Label: "Description", Value: v.BrandVoice.ToneDescription},
				{Label: "Tip", Value: v.BrandVoice.MessagingTip},
			}},
			{Title: "User Engagement", Icon: "engagement", Items: []DetailItem{
				{Label: "Animation", Value: v.UserEngagement.AnimationSuggestion},
				{Label: "Feedback", Value: v.UserEngagement.FeedbackSuggestion},
			}},
		},
		CoverImages: CoverImageURLs(content.CoverImageIdeas.Images, imageMIMEType),
		ShareURL:    ShareURL(),
	}
}

func OverviewText(o models.ProfileOverview) string {
	options := make([]string, len(o.Variations))
	for i, v := range o.Variations {
		options[i] = fmt.Sprintf("Option %d:\n%s", i+1, v)
	}
	return fmt.Sprintf("Tagline: %s\n\n%s", o.Tagline, strings.Join(options, "\n\n"))
}

func VisualsText(v models.Visuals) string {
	p := v.ColorPalette
	t := v.Typography
	var b strings.Builder

	b.WriteString("**Color Palette**\n")
	fmt.Fprintf(&b, "- Primary: %s (%s) - %s\n", p.Primary.Name, p.Primary.Hex, p.Primary.Meaning)
	fmt.Fprintf(&b, "- Secondary: %s (%s) - %s\n", p.Secondary.Name, p.Secondary.Hex, p.Secondary.Meaning)
	fmt.Fprintf(&b, "- Accent: %s (%s) - %s\n", p.Accent.Name, p.Accent.Hex, p.Accent.Meaning)

	b.WriteString("\n**Typography**\n")
	fmt.Fprintf(&b, "- Heading Font: %s (%s, %s)\n", t.HeadingFont.Name, t.HeadingFont.Style, t.HeadingFont.Size)
	fmt.Fprintf(&b, "- Body Font: %s (%s, %s)\n", t.BodyFont.Name, t.BodyFont.Style, t.BodyFont.Size)
	fmt.Fprintf(&b, "- Justification: %s\n", t.PairingJustification)

	b.WriteString("\n**Icons & Imagery**\n")
	fmt.Fprintf(&b, "- Icon Style: %s\n", v.IconsAndImagery.IconStyle)
	fmt.Fprintf(&b, "- Icon Set Example: %s\n", v.IconsAndImagery.IconSetExample)
	fmt.Fprintf(&b, "- Imagery Guidance: %s\n", v.IconsAndImagery.ImageryGuidance)

	b.WriteString("\n**Layout & Spacing**\n")
	fmt.Fprintf(&b, "- Layout System: %s\n", v.LayoutAndSpacing.LayoutSystem)
	fmt.Fprintf(&b, "- Spacing Guidance: %s\n", v.LayoutAndSpacing.SpacingGuidance)

	b.WriteString("\n**Brand Voice**\n")
	fmt.Fprintf(&b, "- Tone Description: %s\n", v.BrandVoice.ToneDescription)
	fmt.Fprintf(&b, "- Messaging Tip: %s\n", v.BrandVoice.MessagingTip)

	b.WriteString("\n**User Engagement**\n")
	fmt.Fprintf(&b, "- Animation Suggestion: %s\n", v.UserEngagement.AnimationSuggestion)
	fmt.Fprintf(&b, "- Feedback Suggestion: %s", v.UserEngagement.FeedbackSuggestion)

	return strings.TrimSpace(b.String())
}

// DescriptionText joins the template sections and appends the FAQ block when there is one.
func DescriptionText(d models.ProductDescriptionTemplate) string {
	sections := make([]string, len(d.Template))
	for i, item := range d.Template {
		sections[i] = item.Heading + "\n" + item.Body
	}
	text := strings.Join(sections, "\n\n")

	if len(d.FAQ) > 0 {
		faq := make([]string, len(d.FAQ))
		for i, item := range d.FAQ {
			faq[i] = fmt.Sprintf("Q: %s\nA: %s", item.Question, item.Answer)
		}
		text += "\n\nFrequently Asked Questions\n" + strings.Join(faq, "\n\n")
	}

	return strings.TrimSpace(text)
}

func PricingText(p models.PricingStrategy) string {
	return fmt.Sprintf("Recommended Price: %s\n\nJustification:\n%s", p.Recommendation, p.Justification)
}

func PromotionText(p models.PromotionalContent) string {
	return fmt.Sprintf("Sample Tweet:\n%s\n\nSample Email Snippet:\n%s", p.SampleTweet, p.SampleEmail)
}

// CoverImageURLs wraps base64 image data in data: URLs that html/template will not rewrite.
func CoverImageURLs(images []string, mimeType string) []template.URL {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	urls := make([]template.URL, 0, len(images))
	for _, img := range images {
		if img == "" {
			continue
		}
		urls = append(urls, template.URL("data:"+mimeType+";base64,"+img))
	}
	return urls
}

func ShareURL() string {
	return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(ShareText)
}

// FontFamily returns the first family of a comma separated font list.
func FontFamily(name string) string {
	return strings.TrimSpace(strings.Split(name, ",")[0])
}
