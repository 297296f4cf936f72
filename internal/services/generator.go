package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
)

// imagesPerPrompt is the number of image variants offered for a description.
const imagesPerPrompt = 4

// GeneratedMedia is the set of candidate media URLs for a description.
type GeneratedMedia struct {
	Images   []string `json:"images"`
	VideoURL string   `json:"videoUrl"`
}

// GeneratorService builds image and video URLs against an external
// prompt-to-media service. Nothing is fetched; the client loads the URLs.
type GeneratorService struct {
	imageBaseURL string
	videoBaseURL string
	seed         func() int
}

// GeneratorOpt configures a GeneratorService.
type GeneratorOpt func(*GeneratorService)

// WithSeedSource overrides the random seed source.
func WithSeedSource(seed func() int) GeneratorOpt {
	return func(g *GeneratorService) {
		g.seed = seed
	}
}

// NewGeneratorService creates a new GeneratorService instance.
func NewGeneratorService(imageBaseURL, videoBaseURL string, opts ...GeneratorOpt) *GeneratorService {
	g := &GeneratorService{
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		videoBaseURL: strings.TrimRight(videoBaseURL, "/"),
		seed:         func() int { return rand.IntN(1000) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns four image URLs and one video URL for the description.
func (g *GeneratorService) Generate(ctx context.Context, description string) (*GeneratedMedia, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidInput
	}

	prompt := url.PathEscape(description)

	images := make([]string, 0, imagesPerPrompt)
	for i := 0; i < imagesPerPrompt; i++ {
		images = append(images, fmt.Sprintf("%s/prompt/%s?seed=%d&n=%d", g.imageBaseURL, prompt, g.seed(), i))
	}

	return &GeneratedMedia{
		Images:   images,
		VideoURL: fmt.Sprintf("%s/prompt/%s?seed=%d", g.videoBaseURL, prompt, g.seed()),
	}, nil
}
