package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

const (
	ContentTypeWebP = "image/webp"
	webpQuality     = 80
)

// EncodeWebP decodes a png, jpeg, gif or bmp image, scales it down to at
// most maxWidth pixels wide and re-encodes it as lossy WebP.
func EncodeWebP(r io.Reader, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_image", "image")
	}

	img := Scale(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scale keeps the aspect ratio; images already narrow enough are returned as is.
func Scale(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
