package frame

// AssetKind identifies one of the three stored representations of a frame's
// image. Each asset's identity is (MAC, AssetKind); its on-disk location is
// deterministic from the pair.
type AssetKind string

// Asset kind constants.
const (
	// AssetVector is the wrapped SVG document produced by the render path.
	AssetVector AssetKind = "vector"

	// AssetBitmap is the display-ready bitmap. Legacy: the current render
	// path never writes one; it is read and deleted only.
	AssetBitmap AssetKind = "bitmap"

	// AssetPreview is the compressed raster preview. Its presence is the
	// authoritative signal that a frame has an image.
	AssetPreview AssetKind = "preview"
)

// AllAssetKinds returns all valid asset kinds, in the order multi-asset
// operations visit them.
func AllAssetKinds() []AssetKind {
	return []AssetKind{AssetVector, AssetBitmap, AssetPreview}
}

// Ext returns the kind's file extension, including the leading dot.
func (k AssetKind) Ext() string {
	switch k {
	case AssetVector:
		return ".svg"
	case AssetBitmap:
		return ".bmp"
	case AssetPreview:
		return ".png"
	default:
		return ""
	}
}

// ContentType returns the MIME type the kind is served with.
func (k AssetKind) ContentType() string {
	switch k {
	case AssetVector:
		return "image/svg+xml"
	case AssetBitmap:
		return "image/bmp"
	case AssetPreview:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// IsValid reports whether k is a recognised asset kind.
func (k AssetKind) IsValid() bool {
	return k.Ext() != ""
}
