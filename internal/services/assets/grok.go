package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Premium image endpoint settings
const (
	GrokImageURL     = "https://api.x.ai/v1/images/generations"
	GrokImageModel   = "grok-2-vision-1212"
	GrokImageSize    = "1024x1024"
	GrokImageTimeout = 10 * time.Second
)

type grokImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type grokImageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GrokClient calls the xAI image generation endpoint
type GrokClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewGrokClient creates a client. An empty endpoint uses GrokImageURL.
func NewGrokClient(endpoint string) *GrokClient {
	if endpoint == "" {
		endpoint = GrokImageURL
	}
	return &GrokClient{
		httpClient: &http.Client{Timeout: GrokImageTimeout},
		endpoint:   endpoint,
	}
}

// GenerateImage returns the URL of one generated image
func (c *GrokClient) GenerateImage(ctx context.Context, apiKey, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GrokImageTimeout)
	defer cancel()

	jsonData, err := json.Marshal(grokImageRequest{
		Model:  GrokImageModel,
		Prompt: prompt,
		N:      1,
		Size:   GrokImageSize,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("grok image request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("grok returned status %d: %s", resp.StatusCode, string(body))
	}

	var result grokImageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse grok response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", fmt.Errorf("grok response contained no image")
	}
	return result.Data[0].URL, nil
}
