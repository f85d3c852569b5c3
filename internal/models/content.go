package models

type ProfileOverview struct {
	Title      string   `json:"title"`
	Tagline    string   `json:"tagline"`
	Variations []string `json:"variations"`
}

type ColorInfo struct {
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	Meaning string `json:"meaning"`
}

type ColorPalette struct {
	Primary   ColorInfo `json:"primary"`
	Secondary ColorInfo `json:"secondary"`
	Accent    ColorInfo `json:"accent"`
}

type FontInfo struct {
	Name  string `json:"name"`
	Style string `json:"style"`
	Size  string `json:"size"`
}

type Typography struct {
	HeadingFont          FontInfo `json:"headingFont"`
	BodyFont             FontInfo `json:"bodyFont"`
	PairingJustification string   `json:"pairingJustification"`
}

type IconsAndImagery struct {
	IconStyle       string `json:"iconStyle"`
	IconSetExample  string `json:"iconSetExample"`
	ImageryGuidance string `json:"imageryGuidance"`
}

type LayoutAndSpacing struct {
	LayoutSystem    string `json:"layoutSystem"`
	SpacingGuidance string `json:"spacingGuidance"`
}

type BrandVoice struct {
	ToneDescription string `json:"toneDescription"`
	MessagingTip    string `json:"messagingTip"`
}

type UserEngagement struct {
	AnimationSuggestion string `json:"animationSuggestion"`
	FeedbackSuggestion  string `json:"feedbackSuggestion"`
}

type Visuals struct {
	Title            string           `json:"title"`
	ColorPalette     ColorPalette     `json:"colorPalette"`
	Typography       Typography       `json:"typography"`
	IconsAndImagery  IconsAndImagery  `json:"iconsAndImagery"`
	LayoutAndSpacing LayoutAndSpacing `json:"layoutAndSpacing"`
	BrandVoice       BrandVoice       `json:"brandVoice"`
	UserEngagement   UserEngagement   `json:"userEngagement"`
}

type DescriptionTemplateItem struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ProductDescriptionTemplate struct {
	Title    string                    `json:"title"`
	Template []DescriptionTemplateItem `json:"template"`
	FAQ      []FAQItem                 `json:"faq,omitempty"`
}

type PricingStrategy struct {
	Title          string `json:"title"`
	Recommendation string `json:"recommendation"`
	Justification  string `json:"justification"`
}

type PromotionalContent struct {
	Title       string `json:"title"`
	SampleTweet string `json:"sampleTweet"`
	SampleEmail string `json:"sampleEmail"`
}

type SEOKeywords struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

type NavigationAndCTA struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
}

// CoverImageIdeas holds the image prompt and the base64 encoded images it produced.
type CoverImageIdeas struct {
	Title  string   `json:"title"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
}

// ProfileData is the structured payload returned by the text model.
type ProfileData struct {
	ProfileOverview            ProfileOverview            `json:"profileOverview"`
	Visuals                    Visuals                    `json:"visuals"`
	ProductDescriptionTemplate ProductDescriptionTemplate `json:"productDescriptionTemplate"`
	PricingStrategy            PricingStrategy            `json:"pricingStrategy"`
	PromotionalContent         PromotionalContent         `json:"promotionalContent"`
	SEOKeywords                SEOKeywords                `json:"seoKeywords"`
	NavigationAndCTA           NavigationAndCTA           `json:"navigationAndCTA"`
}

// GeneratedContent is the full profile strategy sent back to the browser.
type GeneratedContent struct {
	ProfileData
	CoverImageIdeas CoverImageIdeas `json:"coverImageIdeas"`
}
