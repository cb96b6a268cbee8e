package frame

import (
	"bytes"
	"image/png"
	"testing"
)

const testDoc = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">` +
	`<rect x="0" y="0" width="32" height="32" fill="#000000" /></svg>`

func TestSVGRasterizer_Rasterize(t *testing.T) {
	raster := NewRasterizer()

	img, err := raster.Rasterize([]byte(testDoc), 32, 32)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 32 {
		t.Errorf("Rasterize() bounds = %dx%d, want 32x32", bounds.Dx(), bounds.Dy())
	}

	// The document is a full-coverage black rect; the centre pixel must
	// carry ink.
	_, _, _, a := img.At(16, 16).RGBA()
	if a == 0 {
		t.Error("Rasterize() centre pixel is transparent, want opaque")
	}
}

func TestSVGRasterizer_Rasterize_EmptyDocument(t *testing.T) {
	raster := NewRasterizer()

	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16"></svg>`
	img, err := raster.Rasterize([]byte(doc), 16, 16)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Rasterize() bounds = %v, want 16x16", img.Bounds())
	}
}

func TestSVGRasterizer_Rasterize_Malformed(t *testing.T) {
	raster := NewRasterizer()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "truncated element", doc: `<svg xmlns="http://www.w3.org/2000/svg"><rect`},
		{name: "mismatched nesting", doc: `<svg xmlns="http://www.w3.org/2000/svg"><rect></svg>`},
		{name: "stray end element", doc: `</rect>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := raster.Rasterize([]byte(tt.doc), 16, 16); err == nil {
				t.Error("Rasterize() error = nil, want parse failure")
			}
		})
	}
}

func TestSVGRasterizer_EncodePNG(t *testing.T) {
	raster := NewRasterizer()

	img, err := raster.Rasterize([]byte(testDoc), 32, 32)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 32x32", decoded.Bounds())
	}
}
