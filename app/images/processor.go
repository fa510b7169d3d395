package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
)

type Limits struct {
	MaxSizeMB    int
	MaxDimension int
	JPEGQuality  int
}

// Processor validates inbound photos and normalizes them into base64 JPEG
// payloads the vision API accepts.
type Processor struct {
	limits Limits
}

func NewProcessor(limits Limits) *Processor {
	return &Processor{limits: limits}
}

// Process returns the base64-encoded JPEG for the photo. A non-empty userMsg
// means the photo was rejected for a reason the sender can fix; err is
// reserved for encoding failures.
func (p *Processor) Process(data []byte) (b64 string, userMsg string, err error) {
	sizeMB := float64(len(data)) / (1024 * 1024)
	if sizeMB > float64(p.limits.MaxSizeMB) {
		return "", fmt.Sprintf("Image size (%.1fMB) exceeds %dMB limit.", sizeMB, p.limits.MaxSizeMB), nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", "Failed to process image. Please try another photo.", nil
	}
	if format != "jpeg" && format != "png" {
		return "", fmt.Sprintf("Unsupported format: %s. Please use JPEG or PNG.", format), nil
	}

	img = p.downscale(img)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.limits.JPEGQuality}); err != nil {
		return "", "", fmt.Errorf("encode jpeg: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), "", nil
}

func (p *Processor) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	maxSide := w
	if h > maxSide {
		maxSide = h
	}
	if maxSide <= p.limits.MaxDimension {
		return img
	}
	newW := w * p.limits.MaxDimension / maxSide
	newH := h * p.limits.MaxDimension / maxSide
	return transform.Resize(img, newW, newH, transform.Lanczos)
}
