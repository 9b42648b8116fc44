package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEG(img image.Image) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestResize_NoResizeNeeded(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	data := encodeJPEG(img)

	resized, err := Resize(data, 200)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if len(resized) == 0 {
		t.Error("expected non-empty result")
	}

	_, format, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	if format != "jpeg" {
		t.Errorf("expected jpeg format, got %s", format)
	}
}

func TestResize_Landscape(t *testing.T) {
	img := createTestImage(3200, 1600, color.White)
	data := encodeJPEG(img)

	resized, err := Resize(data, 800)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	decodedImg, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("failed to decode resized image: %v", err)
	}

	bounds := decodedImg.Bounds()
	if bounds.Dx() != 800 {
		t.Errorf("expected width 800, got %d", bounds.Dx())
	}
	if bounds.Dy() != 400 {
		t.Errorf("expected height 400, got %d", bounds.Dy())
	}
}

func TestResize_Portrait(t *testing.T) {
	img := createTestImage(1500, 3000, color.White)
	data := encodeJPEG(img)

	resized, err := Resize(data, 600)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	decodedImg, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("failed to decode resized image: %v", err)
	}

	bounds := decodedImg.Bounds()
	if bounds.Dy() != 600 {
		t.Errorf("expected height 600, got %d", bounds.Dy())
	}
	if bounds.Dx() != 300 {
		t.Errorf("expected width 300, got %d", bounds.Dx())
	}
}

func TestResize_PNGConvertedToJPEG(t *testing.T) {
	img := createTestImage(120, 80, color.White)
	data := encodePNG(img)

	resized, err := Resize(data, 200)
	if err != nil {
		t.Fatalf("Resize failed for PNG: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	if format != "jpeg" {
		t.Errorf("expected jpeg output format, got %s", format)
	}
}

func TestResize_InvalidData(t *testing.T) {
	_, err := Resize([]byte("not an image"), 500)
	if err == nil {
		t.Error("expected error for invalid image data")
	}

	_, err = Resize(nil, 500)
	if err == nil {
		t.Error("expected error for empty data")
	}
}
