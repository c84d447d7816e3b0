package contentgen

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxBatchConcurrency bounds parallel generations in GenerateBatch
const MaxBatchConcurrency = 4

// Generator builds prompts, runs the provider chain and guarantees a result
type Generator struct {
	httpClient    *http.Client
	openAIBaseURL string
	newGemini     func(apiKey string) Provider
}

// Option configures a Generator
type Option func(*Generator)

// WithHTTPClient sets the client used by OpenAI-compatible providers
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) { g.httpClient = client }
}

// WithOpenAIBaseURL overrides the fixed OpenAI endpoint
func WithOpenAIBaseURL(baseURL string) Option {
	return func(g *Generator) { g.openAIBaseURL = baseURL }
}

// WithGeminiFactory replaces how the legacy-key provider is constructed
func WithGeminiFactory(factory func(apiKey string) Provider) Option {
	return func(g *Generator) { g.newGemini = factory }
}

// NewGenerator creates a new content generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		httpClient:    &http.Client{Timeout: 60 * time.Second},
		openAIBaseURL: OpenAIBaseURL,
		newGemini:     NewGeminiProvider,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces content for req. It never fails: provider and parse
// errors are logged and replaced by the templated fallback.
func (g *Generator) Generate(ctx context.Context, req ContentRequest, legacyKey string, prefs ContentPreferences) GeneratedContent {
	prompt := BuildPrompt(req, prefs)
	topic := req.Topic()

	for _, provider := range g.Providers(legacyKey, prefs) {
		text, err := provider.TryGenerate(ctx, prompt)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"component": "ai-engine",
				"provider":  provider.Name(),
			}).Warnf("Provider call failed: %v", err)
			continue
		}
		if text == "" {
			continue
		}

		content, err := ExtractContent(text, topic)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"component": "ai-engine",
				"provider":  provider.Name(),
			}).Warnf("Failed to parse provider response: %v", err)
			break
		}
		content.Provider = provider.Name()
		return content
	}

	logrus.WithField("component", "ai-engine").Infof("Using fallback content for topic %q", topic)
	return Fallback(req, prefs)
}

// GenerateBatch produces exactly count items in request order
func (g *Generator) GenerateBatch(ctx context.Context, req ContentRequest, count int, legacyKey string, prefs ContentPreferences) []GeneratedContent {
	if count <= 0 {
		return []GeneratedContent{}
	}

	results := make([]GeneratedContent, count)
	var eg errgroup.Group
	eg.SetLimit(MaxBatchConcurrency)
	for i := 0; i < count; i++ {
		eg.Go(func() error {
			results[i] = g.Generate(ctx, req, legacyKey, prefs)
			return nil
		})
	}
	_ = eg.Wait()
	return results
}
