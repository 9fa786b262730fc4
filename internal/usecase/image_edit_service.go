package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/VENUCODE/paint-ai/internal/observability"
)

type ImageEditService struct {
	Fetcher    domain.ImageFetcher
	Normalizer domain.ImageNormalizer
	Editor     domain.ImageEditor
	Logger     domain.LoggingRepository
}

func NewImageEditService(
	fetcher domain.ImageFetcher,
	normalizer domain.ImageNormalizer,
	editor domain.ImageEditor,
	logger domain.LoggingRepository,
) *ImageEditService {
	return &ImageEditService{Fetcher: fetcher, Normalizer: normalizer, Editor: editor, Logger: logger}
}

// Edit downloads the source image, re-encodes it as an alpha PNG and sends
// it with the prompt to the image-generation API. The upstream JSON is
// returned untouched.
func (s *ImageEditService) Edit(ctx context.Context, req domain.EditRequest) (json.RawMessage, error) {
	start := time.Now()
	log := s.Logger.With("service", "image_edit", "request_id", observability.GetRequestID(ctx))

	raw, err := s.Fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		log.Error("image_edit_failed_fetch_image", "image_url", req.ImageURL, "reason", err.Error())
		return nil, err
	}
	log.Debug("image_fetched", "bytes", len(raw))

	png, err := s.Normalizer.Normalize(raw)
	if err != nil {
		log.Error("image_edit_failed_normalize_image", "reason", err.Error())
		return nil, err
	}
	log.Debug("image_normalized", "bytes", len(png))

	result, err := s.Editor.Edit(ctx, png, req.Prompt, req.Credential)
	if err != nil {
		log.Error("image_edit_failed_upstream_call", "reason", err.Error())
		return nil, err
	}

	log.Info("image_edit_successfully", "duration_us", int(time.Since(start).Microseconds()))
	return result, nil
}
