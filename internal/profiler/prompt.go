package profiler

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
)

const profileJSONShape = `{
  "profileOverview": {
    "title": "Profile Overview",
    "tagline": "A short, catchy tagline (under 10 words) that summarizes the core value proposition. Perfect for the profile headline.",
    "variations": [
      "Variation 1: A compelling overview paragraph for the Gumroad bio. This version should be direct and benefit-driven, defining the brand, its value, and target audience.",
      "Variation 2: A second overview paragraph. This version can be slightly more creative or story-focused, while still being professional and clear."
    ]
  },
  "visuals": {
    "title": "Visuals & Branding Strategy",
    "colorPalette": {
        "primary": { "name": "Primary Color Name", "hex": "#RRGGBB", "meaning": "Psychological meaning of the primary color." },
        "secondary": { "name": "Secondary Color Name", "hex": "#RRGGBB", "meaning": "Psychological meaning of the secondary color." },
        "accent": { "name": "Accent Color Name", "hex": "#RRGGBB", "meaning": "Psychological meaning of the accent color." }
    },
    "typography": {
        "headingFont": { "name": "Font Name (e.g., 'Inter')", "style": "e.g., 'Bold', 'Semibold'", "size": "e.g., '24-32px'" },
        "bodyFont": { "name": "Font Name (e.g., 'Roboto')", "style": "e.g., 'Regular'", "size": "e.g., '16px'" },
        "pairingJustification": "Brief explanation of why these fonts work well together for the brand."
    },
    "iconsAndImagery": {
        "iconStyle": "Recommended icon style (e.g., 'Minimalist Line Icons', 'Solid Glyphs').",
        "iconSetExample": "Suggest a popular icon library that fits the style (e.g., 'Feather Icons', 'Font Awesome').",
        "imageryGuidance": "Guidance on the type of photos or illustrations to use (e.g., 'Use authentic user-generated content', 'Abstract gradients')."
    },
    "layoutAndSpacing": {
        "layoutSystem": "Suggest a layout system (e.g., '8-point grid system', 'Column-based layout').",
        "spacingGuidance": "Provide a best practice for spacing to ensure a clean UI."
    },
    "brandVoice": {
        "toneDescription": "Describe the brand voice based on the selected tone and product.",
        "messagingTip": "Provide a tip for creating consistent messaging."
    },
    "userEngagement": {
        "animationSuggestion": "Suggest a subtle animation or transition to enhance user experience (e.g., 'Use fade-in on scroll for sections').",
        "feedbackSuggestion": "Suggest a user feedback mechanism (e.g., 'Add a subtle button click animation')."
    }
  },
  "productDescriptionTemplate": {
    "title": "Product Description Template",
    "template": [
      { "heading": "Catchy Headline", "body": "Start with a headline that grabs attention and clearly states the product's main benefit." },
      { "heading": "Problem & Solution", "body": "Briefly describe the problem your target audience faces and how your product solves it." },
      { "heading": "Key Features (Bulleted List)", "body": "List 3-5 key features, and for each, explain the direct benefit to the user. (e.g., 'Feature X so you can achieve Y')." },
      { "heading": "What's Included", "body": "Clearly state everything the customer will get upon purchase (e.g., '1x PDF Guide, 1x Video Tutorial, Access to a private community')." },
      { "heading": "Who Is This For?", "body": "Specify the ideal customer for this product to help with qualification." }
    ],
    "faq": [
      { "question": "A frequently asked question a potential customer might have about this specific product.", "answer": "A clear, concise answer to that question." },
      { "question": "A second common question.", "answer": "The answer to the second question." },
      { "question": "A third relevant question about logistics, usage, or outcomes.", "answer": "The answer to the third question." }
    ]
  },
  "pricingStrategy": {
    "title": "Pricing Strategy",
    "recommendation": "A suggested price point or tier (e.g., '$29 - One-time Purchase', or 'Tier 1: $19, Tier 2: $49').",
    "justification": "A brief explanation for the pricing, considering the product's value, target audience, and market standards."
  },
  "promotionalContent": {
    "title": "Promotional Content Ideas",
    "sampleTweet": "A concise and engaging tweet (under 280 characters) to announce the product launch. Include hashtags.",
    "sampleEmail": "A short, compelling email snippet to send to an email list announcing the product. Focus on the main benefit and a clear call to action."
  },
  "seoKeywords": { "title": "SEO Keywords List", "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5", "keyword6"] },
  "navigationAndCTA": {
    "title": "Navigation & CTA Recommendations",
    "recommendations": [
      "Recommendation for a clear Call-To-Action button text (e.g., 'Use 'I want this!' or 'Get Instant Access' instead of a generic 'Buy').",
      "Recommendation for using links in the profile bio.",
      "Recommendation for product naming conventions."
    ]
  }
}`

func buildProfilePrompt(productInfo string, tone models.Tone) string {
	return fmt.Sprintf(`
You are a world-class Marketing Specialist and Visual Design Consultant specializing in E-commerce Optimization for the Gumroad platform.

**Adopt a %s tone for all written content.**

Based on the user's product description below, generate a comprehensive and optimized Gumroad profile strategy.

User's Product Description: "%s"

Your response MUST be a valid JSON object. Do not include any text outside of the JSON object. The JSON object must have the exact following structure:

%s
`, tone, productInfo, profileJSONShape)
}

// buildCoverImagePrompt describes a wide banner guided by the brand choices in data.
// data.ProfileOverview.Variations must not be empty.
func buildCoverImagePrompt(data *models.ProfileData, productInfo string) string {
	visuals := data.Visuals
	prompt := fmt.Sprintf(`
      Create a high-quality, professional Gumroad cover photo (aspect ratio approximately 1280x280).
      The product is about: "%s".
      The brand's essence is: "%s".
      The visual style should be clean, modern, and engaging, guided by these principles: primary color ~%s, typography style ~%s, and overall imagery feel of %s. Avoid text.
    `,
		productInfo,
		data.ProfileOverview.Variations[0],
		visuals.ColorPalette.Primary.Hex,
		visuals.Typography.HeadingFont.Name,
		visuals.IconsAndImagery.ImageryGuidance,
	)
	return strings.TrimSpace(prompt)
}
