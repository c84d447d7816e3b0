// Package publish sends content to social platforms. Publishing is simulated:
// no platform API is called, a success URL is fabricated instead.
package publish

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

const (
	// DefaultLatency mimics a platform upload
	DefaultLatency = 1500 * time.Millisecond
	// SuccessRate is the chance a simulated publish succeeds
	SuccessRate = 0.9

	postIDLength = 11
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var platformURLs = map[string]string{
	"youtube":  "https://youtube.com/watch?v=",
	"tiktok":   "https://tiktok.com/@autocontent/video/",
	"facebook": "https://facebook.com/autocontent/posts/",
}

const genericPostURL = "https://social.com/post/"

// PostURLPrefix returns the public URL prefix of a platform
func PostURLPrefix(platform string) string {
	if prefix, ok := platformURLs[platform]; ok {
		return prefix
	}
	return genericPostURL
}

// Simulator fakes platform publishing
type Simulator struct {
	latency time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator creates a simulator. A nil rnd uses a time-seeded source.
func NewSimulator(rnd *rand.Rand, latency time.Duration) *Simulator {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>3))
	}
	return &Simulator{
		latency: latency,
		rnd:     rnd,
	}
}

// SimulatePublish waits for the configured latency and reports a random outcome
func (s *Simulator) SimulatePublish(ctx context.Context, platform string) (models.PublishResult, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.PublishResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	success := s.rnd.Float64() > 1-SuccessRate
	id := s.postID()
	s.mu.Unlock()

	if !success {
		return models.PublishResult{
			Success: false,
			Message: fmt.Sprintf("%s API error: Internal Server Error.", strings.ToUpper(platform)),
		}, nil
	}
	return models.PublishResult{
		Success: true,
		URL:     PostURLPrefix(platform) + id,
		Message: fmt.Sprintf("Successfully published to %s!", cases.Title(language.English).String(platform)),
	}, nil
}

func (s *Simulator) postID() string {
	var b strings.Builder
	for i := 0; i < postIDLength; i++ {
		b.WriteByte(base36[s.rnd.IntN(len(base36))])
	}
	return b.String()
}
