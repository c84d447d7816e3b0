package contentgen

import (
	"fmt"
	"net/url"

	"github.com/onegreenvn/autocontent-backend/internal/utils"
)

// Fallback builds the templated result used when no provider yields content.
// It depends only on topic, niche, brand and type.
func Fallback(req ContentRequest, prefs ContentPreferences) GeneratedContent {
	topic := req.Topic()
	brand := resolvePreferences(prefs).brand

	result := GeneratedContent{
		Title:       fmt.Sprintf("%s: New Update for %s", topic, brand),
		Description: fmt.Sprintf("Everything you need to know about %s in the %s world. Presented by %s.", topic, req.Niche, brand),
		Script: fmt.Sprintf("[HOOK] Stop browsing! %s is revealing how %s is changing the game.\n\n"+
			"Here is why it matters for %s explorers.\n\n"+
			"[CTA] Drop a ❤️ and follow %s if you agree!", brand, topic, req.Niche, brand),
		Hashtags: []string{
			"#" + req.Niche,
			"#" + utils.StripWhitespace(topic),
			"#Viral",
			"#" + utils.StripWhitespace(brand),
		},
		Fallback: true,
	}

	if req.Type == "photo" {
		result.ImageURL = "https://picsum.photos/seed/" + url.PathEscape(topic) + "/1080/1080"
	}
	return result
}
