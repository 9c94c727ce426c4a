package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxPhotoWidth = 1280
	photoQuality  = 82
)

var ErrUnsupportedImage = errors.New("unsupported_image")

// NormalizePhoto decodes a jpeg, png or webp upload, scales it down to at
// most MaxPhotoWidth pixels wide and re-encodes it as webp.
func NormalizePhoto(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	b := src.Bounds()
	var out image.Image = src
	if b.Dx() > MaxPhotoWidth {
		h := b.Dy() * MaxPhotoWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, MaxPhotoWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Quality: photoQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
