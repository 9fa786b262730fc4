package imageproc

import (
	"bytes"
	"image"
	"image/png"

	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// rgbaPNG makes image/png keep the alpha channel even when every pixel is
// opaque, so the output is always colour type 6.
type rgbaPNG struct {
	*image.NRGBA
}

func (rgbaPNG) Opaque() bool { return false }

// PNGNormalizer decodes any registered image format and re-encodes it as an
// 8-bit RGBA PNG.
type PNGNormalizer struct {
	CompressionLevel png.CompressionLevel
}

func NewPNGNormalizer() *PNGNormalizer {
	return &PNGNormalizer{CompressionLevel: png.DefaultCompression}
}

func (n *PNGNormalizer) Normalize(data []byte) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeDecode, "failed to decode source image", err)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, rgbaPNG{imaging.Clone(src)}, imaging.PNG, imaging.PNGCompressionLevel(n.CompressionLevel))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to encode png", err)
	}
	return buf.Bytes(), nil
}
