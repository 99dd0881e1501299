package thumbnail

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/ytget/cuisine-explorer/internal/logger"
)

// Default display box for recipe images
const (
	DefaultWidth  = 280
	DefaultHeight = 180
)

// Service fetches recipe images and scales them to a fixed box
type Service struct {
	httpClient *http.Client
	width      uint
	height     uint
}

// NewService creates a new thumbnail service. Zero dimensions fall back to
// the defaults; a nil httpClient uses a client without timeout.
func NewService(httpClient *http.Client, width, height uint) *Service {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return &Service{
		httpClient: httpClient,
		width:      width,
		height:     height,
	}
}

// Size returns the configured output dimensions
func (s *Service) Size() (uint, uint) {
	return s.width, s.height
}

// Fetch downloads the image at url and resizes it with Lanczos resampling
func (s *Service) Fetch(ctx context.Context, url string) (image.Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch image: unexpected status %s", resp.Status)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	logger.Debug("thumbnail decoded",
		zap.String("url", url),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	return resize.Resize(s.width, s.height, img, resize.Lanczos3), nil
}

// Load fetches the image but never fails: errors are logged and nil is
// returned so the recipe can be shown without a picture.
func (s *Service) Load(ctx context.Context, url string) image.Image {
	if strings.TrimSpace(url) == "" {
		return nil
	}

	img, err := s.Fetch(ctx, url)
	if err != nil {
		logger.Warn("image error", zap.String("url", url), zap.Error(err))
		return nil
	}
	return img
}
