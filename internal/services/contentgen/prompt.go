package contentgen

import (
	"fmt"
	"strings"
)

var lengthDescriptors = map[string]string{
	"short":  "very concise (under 30 seconds / brief post)",
	"medium": "standard length (60-90 seconds / detailed post)",
	"long":   "comprehensive and deep (2-3 minutes / long-form article)",
}

// LengthDescriptor maps a length preference to the wording used in prompts.
// Unknown values use the medium descriptor.
func LengthDescriptor(length string) string {
	if desc, ok := lengthDescriptors[length]; ok {
		return desc
	}
	return lengthDescriptors[DefaultLength]
}

// BuildPrompt renders the provider-agnostic generation prompt
func BuildPrompt(req ContentRequest, prefs ContentPreferences) string {
	eff := resolvePreferences(prefs)

	var b strings.Builder
	fmt.Fprintf(&b, "Create viral content for a %s %s.\n", req.Platform, req.Type)
	fmt.Fprintf(&b, "Brand Name: %s\n", eff.brand)
	fmt.Fprintf(&b, "Language: %s\n", eff.language)
	fmt.Fprintf(&b, "Niche: %s\n", req.Niche)
	fmt.Fprintf(&b, "Style: %s\n", req.Style)
	fmt.Fprintf(&b, "Tone: %s\n", eff.tone)
	fmt.Fprintf(&b, "Target Length: %s\n", LengthDescriptor(eff.length))
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic())
	fmt.Fprintf(&b, "Visual Branding: Font=%s, Color=%s, Background=%s\n", eff.font, eff.color, eff.background)
	if len(eff.keywords) > 0 {
		fmt.Fprintf(&b, "Include Keywords: %s\n", strings.Join(eff.keywords, ", "))
	}

	b.WriteString(`
Requirements for Type:
- video/shorts: High-engagement script with hooks.
- photo: An image description/alt text and a short caption.
- text: A detailed social media post.

Return the response as a JSON object with:
- title: Catchy title.
- description: Summary/description.
- script: The main content (script for video, post body for text, caption for photo).
- hashtags: Array of 5-8 hashtags.
- imageDescription: (Optional) If it's a photo, describe what should be in the image.
`)
	return b.String()
}
