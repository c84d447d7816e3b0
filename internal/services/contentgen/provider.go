package contentgen

import (
	"context"
	"strings"
)

// Provider produces raw text for a prompt. An empty string with a nil error
// means the provider had nothing to say and the next provider is tried.
type Provider interface {
	TryGenerate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Fixed OpenAI endpoint and model
const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	OpenAIModel   = "gpt-3.5-turbo"
	// DefaultCustomModel is used when a custom endpoint has no model configured
	DefaultCustomModel = "gpt-3.5-turbo"
)

// Providers returns the ordered provider list for a request. At most one
// provider is selected: the legacy key wins, then the preferred provider
// if its credentials are present. An empty list means go straight to the
// fallback result.
func (g *Generator) Providers(legacyKey string, prefs ContentPreferences) []Provider {
	eff := resolvePreferences(prefs)

	if key := strings.TrimSpace(legacyKey); key != "" {
		return []Provider{g.newGemini(key)}
	}

	switch eff.provider {
	case "openai":
		if key := strings.TrimSpace(prefs.OpenAIKey); key != "" {
			return []Provider{NewOpenAICompatible(g.httpClient, "OpenAI", g.openAIBaseURL, key, OpenAIModel)}
		}
	case "custom":
		if prefs.CustomBaseURL != "" && prefs.CustomKey != nil {
			model := prefs.CustomModel
			if model == "" {
				model = DefaultCustomModel
			}
			key := strings.TrimSpace(*prefs.CustomKey)
			return []Provider{NewOpenAICompatible(g.httpClient, "Custom", prefs.CustomBaseURL, key, model)}
		}
	}
	return nil
}
