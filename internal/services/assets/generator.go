// Package assets resolves an illustrative image or placeholder video for a
// content item through a chain of image providers and static sample media.
package assets

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// SampleVideos stands in for rendered videos
var SampleVideos = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
}

// AssetRequest describes the item an asset is generated for
type AssetRequest struct {
	Type            string
	Platform        string
	Style           string
	Niche           string
	Font            string
	PrimaryColor    string
	BackgroundStyle string
	GrokKey         string
	Title           string
	Description     string
	// ImageDescription, when set, replaces Title as the subject of image prompts
	ImageDescription string
}

// GenerationResult is the resolved media for an item
type GenerationResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
	FileSize     string `json:"file_size,omitempty"`
}

// ImageGenerator is the premium image backend
type ImageGenerator interface {
	GenerateImage(ctx context.Context, apiKey, prompt string) (string, error)
}

// Generator applies the asset decision policy
type Generator struct {
	images ImageGenerator
	now    func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates an asset generator. Nil arguments use the Grok client,
// a time-seeded random source and time.Now.
func NewGenerator(images ImageGenerator, rnd *rand.Rand, now func() time.Time) *Generator {
	if images == nil {
		images = NewGrokClient("")
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{images: images, rnd: rnd, now: now}
}

// IsVideo reports whether a content type is rendered as video
func IsVideo(contentType string) bool {
	return contentType == "video" || contentType == "shorts"
}

// GenerateAsset resolves media for req. It never fails.
func (g *Generator) GenerateAsset(ctx context.Context, req AssetRequest) GenerationResult {
	video := IsVideo(req.Type)

	if req.GrokKey != "" && !video {
		imageURL, err := g.images.GenerateImage(ctx, req.GrokKey, premiumImagePrompt(req))
		if err == nil {
			return GenerationResult{URL: imageURL, ThumbnailURL: imageURL, Resolution: "1024x1024", FileSize: "1.5 MB"}
		}
		logrus.WithField("component", "video-generator").Warnf("Premium image failed, using free provider: %v", err)
	}

	switch {
	case video && req.GrokKey != "":
		return g.premiumVideo(ctx, req)
	case video:
		return g.sampleVideo(req)
	case req.Type == "photo" || req.Type == "text":
		return g.freeImage(req)
	default:
		return g.placeholder()
	}
}

func premiumImagePrompt(req AssetRequest) string {
	return fmt.Sprintf("A high-quality %s %s image for %s. Topic: %s. Visual Style: %s background, %s accents.",
		req.Style, req.Niche, req.Platform, subject(req), req.BackgroundStyle, req.PrimaryColor)
}

func subject(req AssetRequest) string {
	if req.ImageDescription != "" {
		return req.ImageDescription
	}
	return req.Title
}

func (g *Generator) premiumVideo(ctx context.Context, req AssetRequest) GenerationResult {
	prompt := fmt.Sprintf("A stunning cinematic %s thumbnail for a %s video about %s. Visual style: %s background.",
		req.Style, req.Niche, req.Title, req.BackgroundStyle)

	thumbnail, err := g.images.GenerateImage(ctx, req.GrokKey, prompt)
	if err != nil {
		logrus.WithField("component", "video-generator").Warnf("Thumbnail generation failed: %v", err)
		thumbnail = fmt.Sprintf("https://picsum.photos/seed/%d/1280/720", g.now().UnixMilli())
	}

	resolution := "1920x1080"
	if req.Type == "shorts" {
		resolution = "1080x1920"
	}
	return GenerationResult{
		URL:          g.pickSample(),
		ThumbnailURL: thumbnail,
		Duration:     90,
		Resolution:   resolution,
		FileSize:     "24 MB",
	}
}

func (g *Generator) freeImage(req AssetRequest) GenerationResult {
	prompt := fmt.Sprintf("high quality %s %s photo for %s, topic: %s, cinematic lighting, 4k",
		req.Style, req.Niche, req.Platform, subject(req))
	imageURL := fmt.Sprintf("https://image.pollinations.ai/prompt/%s?width=1024&height=1024&nologo=true&seed=%d",
		url.PathEscape(prompt), g.now().UnixMilli())
	return GenerationResult{URL: imageURL, ThumbnailURL: imageURL, Resolution: "1024x1024", FileSize: "0.8 MB"}
}

func (g *Generator) sampleVideo(req AssetRequest) GenerationResult {
	width, height := 1920, 1080
	if req.Type == "shorts" {
		width, height = 1080, 1920
	}

	g.mu.Lock()
	duration := g.rnd.IntN(120) + 30
	sizeBytes := uint64((g.rnd.Float64()*50 + 10) * 1000 * 1000)
	g.mu.Unlock()

	return GenerationResult{
		URL:          g.pickSample(),
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", g.now().UnixMilli(), width, height),
		Duration:     duration,
		Resolution:   fmt.Sprintf("%dx%d", width, height),
		FileSize:     humanize.Bytes(sizeBytes),
	}
}

func (g *Generator) placeholder() GenerationResult {
	seed := g.now().UnixMilli()
	return GenerationResult{
		URL:          fmt.Sprintf("https://picsum.photos/seed/%d/1080/1080", seed),
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%d/400/400", seed),
		Resolution:   "1080x1080",
		FileSize:     "1.2 MB",
	}
}

func (g *Generator) pickSample() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return SampleVideos[g.rnd.IntN(len(SampleVideos))]
}
