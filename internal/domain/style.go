package domain

import "strings"

// PreferencesPlaceholder is the substitution point inside a prompt template.
const PreferencesPlaceholder = "{preferences}"

const (
	ExteriorPrompt = "You are an intelligent AI home painter. {preferences} .Make sure to maintain the architectural integrity while creating a professional and aesthetically pleasing result."

	InteriorPrompt = "You are an expert AI interior designer. {preferences} .Ensure the design maintains proper spatial relationships, lighting, and architectural elements while creating a cohesive and sophisticated interior space."

	NatureInspiredPrompt = "Transform the natural elements, patterns, and essence of this image into a stunning piece of architecture. Create a hyper-realistic building that harmoniously integrates the organic forms, textures, and colors from the natural scene. The building should appear as if it emerged from the same natural principles - incorporating flowing lines, natural materials, and biophilic design elements. Include human elements to show scale and bring life to the scene. Ensure dramatic lighting, atmospheric depth, and photorealistic materials that echo the natural inspiration while creating a sophisticated, modern architectural statement."
)

// Style selects the prompt template and the user-facing wording of a route.
type Style int

const (
	StyleExterior Style = iota
	StyleInterior
	StyleNatureInspired
)

func (s Style) String() string {
	switch s {
	case StyleExterior:
		return "exterior"
	case StyleInterior:
		return "interior"
	case StyleNatureInspired:
		return "nature_inspired"
	default:
		return "unknown"
	}
}

func (s Style) Template() string {
	switch s {
	case StyleExterior:
		return ExteriorPrompt
	case StyleInterior:
		return InteriorPrompt
	default:
		return NatureInspiredPrompt
	}
}

// RequiresPreferences reports whether the route rejects requests without
// preference text.
func (s Style) RequiresPreferences() bool {
	return s == StyleExterior || s == StyleInterior
}

// FailureMessage is the "error" field of every failed response on the route.
func (s Style) FailureMessage() string {
	switch s {
	case StyleExterior:
		return "Error processing exterior design request"
	case StyleInterior:
		return "Error processing interior design request"
	default:
		return "Error processing nature-inspired architectural visualization request"
	}
}

// MissingFieldsMessage is returned with a 400 when required fields are absent.
func (s Style) MissingFieldsMessage() string {
	if s.RequiresPreferences() {
		return "image_url and preferences are required"
	}
	return "image_url is required"
}

// BuildPrompt substitutes the first placeholder in the style's template.
// The text is inserted as is.
func (s Style) BuildPrompt(preferences string) string {
	return strings.Replace(s.Template(), PreferencesPlaceholder, preferences, 1)
}
