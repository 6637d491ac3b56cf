package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

func pngOf(w, h int) *bytes.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &buf
}

func TestEncodeWebP_ScalesDown(t *testing.T) {
	out, err := EncodeWebP(pngOf(400, 200), 100)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("Expected 100x50, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestEncodeWebP_KeepsSmallImages(t *testing.T) {
	out, err := EncodeWebP(pngOf(40, 30), 100)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("Expected 40x30, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestEncodeWebP_RejectsGarbage(t *testing.T) {
	_, err := EncodeWebP(strings.NewReader("definitely not an image"), 100)
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Errorf("Expected invalid_image, got %v", err)
	}
}

func TestNewS3Store(t *testing.T) {
	if s := NewS3Store(&config.Config{}); s != nil {
		t.Error("Expected nil store without a bucket")
	}

	s := NewS3Store(&config.Config{S3Bucket: "media", S3Region: "eu-west-1"})
	if s.publicURL != "https://media.s3.eu-west-1.amazonaws.com" {
		t.Errorf("Unexpected public url %s", s.publicURL)
	}

	s = NewS3Store(&config.Config{
		S3Bucket:    "media",
		S3Region:    "us-east-1",
		S3Endpoint:  "http://localhost:9000",
		S3PublicURL: "http://localhost:9000/media/",
	})
	if s.publicURL != "http://localhost:9000/media" {
		t.Errorf("Unexpected public url %s", s.publicURL)
	}
}

func TestServiceImageKey(t *testing.T) {
	a, b := ServiceImageKey(7), ServiceImageKey(7)
	if !strings.HasPrefix(a, "services/7/") || !strings.HasSuffix(a, ".webp") {
		t.Errorf("Unexpected key %s", a)
	}
	if a == b {
		t.Error("Expected unique keys per upload")
	}
}
