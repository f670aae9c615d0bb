package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
)

const (
	imageFetchTimeout = 10 * time.Second
	jpegQuality       = 85
)

// ImageService downloads cover images and normalizes stored image bytes to
// JPEG so the blob column and the image endpoint always hold one format.
// It does not resize. Implements scraper.ImageDownloader.
type ImageService struct {
	client *resty.Client
}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{
		client: resty.New().SetTimeout(imageFetchTimeout),
	}
}

// Download fetches image bytes from a URL and normalizes them to JPEG.
func (s *ImageService) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d for %s", resp.StatusCode(), url)
	}

	return s.NormalizeJPEG(resp.Body())
}

// NormalizeJPEG decodes any supported image format and re-encodes it as
// JPEG. Returns an error for bytes that are not a decodable image.
func (s *ImageService) NormalizeJPEG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
