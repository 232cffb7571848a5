package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage means the client payload could not be decoded into an
// image. Handlers map it to a 400, not a 500.
var ErrInvalidImage = errors.New("invalid image data")

// Covers wider than this get downscaled before upload.
const maxCoverWidth = 1280

const jpegQuality = 85

// decodeImagePayload accepts either a raw base64 string or a data URI
// ("data:image/png;base64,....") as sent by mobile clients.
func decodeImagePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ";base64,"); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}
	return data, nil
}

// normalizeCover re-encodes the uploaded image as a bounded JPEG so the
// bucket never stores oversized or exotic formats.
func normalizeCover(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if img.Bounds().Dx() > maxCoverWidth {
		img = imaging.Resize(img, maxCoverWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}

	return buf.Bytes(), nil
}
