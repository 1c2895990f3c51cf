package repository

import (
	"context"
	"encoding/base64"
	"strings"

	apperrors "go-face-measure/internal/errors"
	"go-face-measure/internal/storage"
	"go-face-measure/pkg/models"
	"go-face-measure/pkg/validation"
)

// FrameSource resolves a measurement request to encoded image bytes,
// regardless of whether the caller inlined the image or pointed at a URL.
type FrameSource interface {
	ResolveImage(ctx context.Context, req *models.MeasureRequest) ([]byte, error)
}

// RequestFrameRepository implements FrameSource over base64 decoding and
// HTTP storage.
type RequestFrameRepository struct {
	validator *validation.URLValidator
	fetcher   storage.ImageFetcher
}

// NewRequestFrameRepository creates a frame repository backed by the given
// URL validator and image fetcher.
func NewRequestFrameRepository(validator *validation.URLValidator, fetcher storage.ImageFetcher) *RequestFrameRepository {
	return &RequestFrameRepository{
		validator: validator,
		fetcher:   fetcher,
	}
}

// ResolveImage returns the encoded image bytes for a request. Inline image
// data takes precedence over a URL when both are present.
func (r *RequestFrameRepository) ResolveImage(ctx context.Context, req *models.MeasureRequest) ([]byte, error) {
	if req == nil || (req.Image == "" && req.URL == "") {
		return nil, apperrors.NewValidationError("No image provided.", ErrNoImageProvided)
	}

	if req.Image != "" {
		return r.decodeInline(req.Image)
	}

	if err := r.validator.ValidateImageURL(req.URL); err != nil {
		return nil, err
	}

	data, err := r.fetcher.FetchImage(ctx, req.URL)
	if err != nil {
		return nil, apperrors.NewNetworkError("Failed to fetch image from URL", err)
	}
	return data, nil
}

// decodeInline decodes base64 image data. Browser captures arrive as data
// URLs ("data:image/png;base64,...."); everything before the first comma is
// the media-type header and is stripped.
func (r *RequestFrameRepository) decodeInline(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid base64 image data", ErrInvalidBase64)
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("No image provided.", ErrNoImageProvided)
	}
	return data, nil
}
