// Package contentgen turns a content request into title, description, script
// and hashtags using a text-generation provider, falling back to a
// templated result when no provider produces usable output.
package contentgen

// Effective defaults applied when a preference is empty
const (
	DefaultTone            = "Professional & Engaging"
	DefaultLength          = "medium"
	DefaultBrandName       = "AutoContent AI"
	DefaultLanguage        = "English"
	DefaultFont            = "Inter"
	DefaultPrimaryColor    = "#0070f3"
	DefaultBackgroundStyle = "solid"
	DefaultProvider        = "gemini"
	DefaultTopic           = "Interesting Trends"
)

// Niches, Styles and Types list the values the dashboard offers
var (
	Niches = []string{"Technology", "Motivation", "Finance", "Gaming", "Education", "Fitness", "Comedy", "Cooking", "Travel", "Science"}
	Styles = []string{"educational", "entertaining", "tutorial", "motivational", "storytelling"}
	Types  = []string{"video", "photo", "shorts", "text"}
)

// ContentRequest describes what to generate. CustomTopic may be empty.
type ContentRequest struct {
	Niche       string
	Style       string
	Platform    string // youtube, tiktok, facebook or all
	Type        string // video, photo, shorts or text
	CustomTopic string
}

// Topic returns the custom topic or the generic default
func (r ContentRequest) Topic() string {
	if r.CustomTopic != "" {
		return r.CustomTopic
	}
	return DefaultTopic
}

// ContentPreferences carries tone, branding and provider configuration.
// CustomKey is a pointer: nil means no key was configured, while a pointer
// to "" means an intentionally empty key (e.g. a local model server).
type ContentPreferences struct {
	Tone            string
	Length          string // short, medium or long
	BrandName       string
	Language        string
	TargetKeywords  []string
	Font            string
	PrimaryColor    string
	BackgroundStyle string
	AIProvider      string // gemini, openai or custom
	OpenAIKey       string
	CustomBaseURL   string
	CustomKey       *string
	CustomModel     string
}

// GeneratedContent is the result of one generation. It is always fully populated.
type GeneratedContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Script      string   `json:"script"`
	Hashtags    []string `json:"hashtags"`
	ImageURL    string   `json:"image_url,omitempty"`
	// ImageDescription is the provider's suggestion for the illustration, if any
	ImageDescription string `json:"image_description,omitempty"`
	// Fallback is true when the templated result was used
	Fallback bool   `json:"-"`
	Provider string `json:"-"`
}

type effectivePreferences struct {
	tone       string
	length     string
	brand      string
	language   string
	font       string
	color      string
	background string
	provider   string
	keywords   []string
}

func resolvePreferences(p ContentPreferences) effectivePreferences {
	return effectivePreferences{
		tone:       orDefault(p.Tone, DefaultTone),
		length:     orDefault(p.Length, DefaultLength),
		brand:      orDefault(p.BrandName, DefaultBrandName),
		language:   orDefault(p.Language, DefaultLanguage),
		font:       orDefault(p.Font, DefaultFont),
		color:      orDefault(p.PrimaryColor, DefaultPrimaryColor),
		background: orDefault(p.BackgroundStyle, DefaultBackgroundStyle),
		provider:   orDefault(p.AIProvider, DefaultProvider),
		keywords:   p.TargetKeywords,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
