package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer converts a complete SVG document into a pixel buffer and
// encodes pixel buffers into the compressed preview format. Implementations
// must be safe for concurrent use: the store calls Rasterize from multiple
// request goroutines with no serialisation.
type Rasterizer interface {
	// Rasterize renders doc at exactly width x height pixels, with no
	// scaling or fitting transform beyond the document's own viewport.
	Rasterize(doc []byte, width, height int) (image.Image, error)

	// EncodePNG writes img to w in the compressed preview format.
	EncodePNG(w io.Writer, img image.Image) error
}

// SVGRasterizer is the production Rasterizer, built on oksvg and rasterx.
//
// Parsing runs in ignore-errors mode: unsupported SVG features are skipped
// during rendering rather than failing the document, while malformed XML
// still fails the parse. Font and resource resolution happens inside the
// library; text elements it cannot resolve are dropped, not fatal.
type SVGRasterizer struct{}

// NewRasterizer creates the production SVG rasterizer.
func NewRasterizer() *SVGRasterizer {
	return &SVGRasterizer{}
}

// Rasterize parses doc and draws it onto a fresh RGBA buffer of exactly
// width x height pixels.
func (sr *SVGRasterizer) Rasterize(doc []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}

// EncodePNG writes img to w as PNG, the preview encoding.
func (sr *SVGRasterizer) EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
