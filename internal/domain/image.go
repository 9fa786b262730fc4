package domain

import (
	"context"
	"encoding/json"
)

const (
	DefaultImageModel = "gpt-image-1"
	EditImageCount    = 1
	EditImageFileName = "image.png"
	EditImageMimeType = "image/png"
)

type EditRequest struct {
	ImageURL   string
	Prompt     string
	Credential string
}

type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageNormalizer re-encodes arbitrary image bytes as a PNG that always
// carries an alpha channel.
type ImageNormalizer interface {
	Normalize(data []byte) ([]byte, error)
}

type ImageEditor interface {
	Edit(ctx context.Context, image []byte, prompt, credential string) (json.RawMessage, error)
}
