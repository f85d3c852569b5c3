package models

import "strings"

// Tone controls the voice of every written section.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneWitty        Tone = "Witty"
	ToneDirect       Tone = "Direct"
)

// Tones lists the supported tones in display order.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneWitty, ToneDirect}

func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// ToneNames returns the supported tones as a comma separated list.
func ToneNames() string {
	names := make([]string, len(Tones))
	for i, t := range Tones {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

type GenerateRequest struct {
	ProductInfo string `json:"productInfo" form:"productInfo" binding:"required,notblank"`
	Tone        Tone   `json:"tone" form:"tone" binding:"required,notblank"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,oneof=good bad"`
}

// Example is a canned product description offered in the form.
type Example struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

var Examples = []Example{
	{Short: "Blender Course", Full: "A course teaching beginners how to create 3D models in Blender."},
	{Short: "Icon Pack", Full: "A pack of 100+ high-quality, minimalist icons for UI designers."},
	{Short: "Fitness Plan", Full: "A 12-week personalized fitness and meal plan for busy professionals."},
	{Short: "Writing Guide", Full: "An ebook guide to freelance writing and finding your first clients."},
	{Short: "Notion Template", Full: "A Notion template for managing personal finances and budgets."},
}
