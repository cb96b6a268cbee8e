package frame

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem permission constants.
const (
	// dirPermissions is the permission mode for the image directory.
	dirPermissions = 0750

	// filePermissions is the permission mode for stored asset files.
	filePermissions = 0644
)

// Logger defines the logging interface used by the Store.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Geometry is the fixed display resolution in pixels. It is process-wide,
// set at startup, and shared read-only by every render operation; there is
// no per-request sizing.
type Geometry struct {
	Width  int
	Height int
}

// Store is the device-keyed image store: a stateless façade over a flat
// directory of asset files named by lowercase hardware address.
//
// All consistency guarantees are per-call. The store keeps no cache, takes
// no per-address locks and never retries; concurrent operations on the same
// address may interleave their file accesses arbitrarily, last writer wins
// per file. Operations on different addresses are fully independent.
type Store struct {
	root   string
	geom   Geometry
	raster Rasterizer
	logger Logger
}

// NewStore creates an image store rooted at dir, rendering at the given
// display geometry through the given rasterizer.
//
// The directory is created if it does not exist. Both dir and geom arrive
// as already-validated configuration and are immutable for the lifetime of
// the store.
func NewStore(dir string, geom Geometry, raster Rasterizer) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("frame: image directory is required")
	}
	if geom.Width <= 0 || geom.Height <= 0 {
		return nil, fmt.Errorf("frame: display geometry %dx%d is invalid", geom.Width, geom.Height)
	}
	if raster == nil {
		return nil, fmt.Errorf("frame: rasterizer is required")
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	return &Store{
		root:   dir,
		geom:   geom,
		raster: raster,
		logger: noopLogger{},
	}, nil
}

// SetLogger sets the logger for the store.
func (s *Store) SetLogger(logger Logger) {
	s.logger = logger
}

// Root returns the image directory path.
func (s *Store) Root() string {
	return s.root
}

// Geometry returns the configured display resolution.
func (s *Store) Geometry() Geometry {
	return s.geom
}

// HealthCheck verifies the image directory is still an accessible directory.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("store health check failed: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store health check failed: image path is not a directory")
	}
	return nil
}

// ListFrames enumerates every frame that has a stored preview image.
//
// The scan treats preview files as the authoritative image signal: each
// *.png filename stem is decoded as a hardware address, and entries that
// are not regular files, carry another extension, or fail to decode are
// skipped rather than failing the call. The result is unordered; callers
// needing a deterministic listing must sort it themselves. The single
// fatal error is an unreadable image directory, reported as
// ErrStoreUnavailable.
func (s *Store) ListFrames(ctx context.Context) ([]MAC, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: list frames: %v", ErrStoreUnavailable, err)
	}

	macs := make([]MAC, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != AssetPreview.Ext() {
			continue
		}
		mac, err := ParseMAC(strings.TrimSuffix(name, AssetPreview.Ext()))
		if err != nil {
			s.logger.Debug("skipping unrecognised file in image directory", "name", name)
			continue
		}
		macs = append(macs, mac)
	}

	return macs, nil
}

// OpenAsset opens the stored asset of the given kind and returns it as a
// lazily-consumed, forward-only byte stream backed by the open file handle.
//
// The caller must close the stream on every exit path, including early
// abandonment; the store never buffers asset contents in memory. Any
// failure to open the file reports ErrAssetNotFound.
func (s *Store) OpenAsset(ctx context.Context, mac MAC, kind AssetKind) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: frame %s has no %q asset", ErrAssetNotFound, mac, string(kind))
	}

	f, err := os.Open(s.assetPath(mac, kind))
	if err != nil {
		s.logger.Debug("asset open failed", "mac", mac.String(), "kind", string(kind), "error", err)
		return nil, fmt.Errorf("%w: frame %s has no %s asset", ErrAssetNotFound, mac, string(kind))
	}

	return f, nil
}

// DeleteFrame removes every stored asset for the address.
//
// Removal is sequential and best-effort: a kind that is already absent is
// not itself an error, nothing is retried, and nothing is rolled back. The
// call fails with ErrAssetNotFound only when all three removals fail,
// meaning the frame had no image footprint at all; removing at least one
// asset is success even if the others were absent.
func (s *Store) DeleteFrame(ctx context.Context, mac MAC) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	removed := 0
	for _, kind := range AllAssetKinds() {
		if err := os.Remove(s.assetPath(mac, kind)); err != nil {
			s.logger.Debug("asset removal failed", "mac", mac.String(), "kind", string(kind), "error", err)
			continue
		}
		removed++
	}

	if removed == 0 {
		return fmt.Errorf("%w: frame %s has no stored assets", ErrAssetNotFound, mac)
	}

	s.logger.Info("frame assets deleted", "mac", mac.String(), "removed", removed)
	return nil
}

// RenderAndStore rasterizes a submitted vector body fragment and persists
// the results.
//
// The fragment is wrapped in an SVG envelope whose viewport is the
// configured display geometry, so every stored document is dimensionally
// consistent with the display regardless of what the caller embedded.
// Markup the rasterizer rejects fails with ErrInvalidVector before any
// file is touched.
//
// On success the preview image is written first, then the wrapped vector
// document; both are whole-file create-or-truncate overwrites. Neither
// write is rolled back if the other fails: an I/O failure reports
// ErrStoreUnavailable and may leave one file newer than its pair until
// the next successful render overwrites both. Once started the operation
// runs to completion; ctx is consulted on entry only.
//
// The returned count is the encoded size of the preview image in bytes,
// for callers that announce or meter renders.
func (s *Store) RenderAndStore(ctx context.Context, mac MAC, body []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	doc := s.wrapDocument(body)

	img, err := s.raster.Rasterize(doc, s.geom.Width, s.geom.Height)
	if err != nil {
		return 0, fmt.Errorf("%w: frame %s: %v", ErrInvalidVector, mac, err)
	}

	previewBytes, err := s.writePreview(mac, img)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(s.assetPath(mac, AssetVector), doc, filePermissions); err != nil {
		s.logger.Error("vector document write failed", "mac", mac.String(), "error", err)
		return 0, fmt.Errorf("%w: frame %s: storing vector document", ErrStoreUnavailable, mac)
	}

	s.logger.Info("frame image rendered", "mac", mac.String(),
		"width", s.geom.Width, "height", s.geom.Height, "preview_bytes", previewBytes)
	return previewBytes, nil
}

// writePreview encodes img to memory and writes it to the preview path as
// a whole-file create-or-truncate overwrite. Encoding failures leave no
// file behind. Returns the encoded size in bytes.
func (s *Store) writePreview(mac MAC, img image.Image) (int, error) {
	var buf bytes.Buffer
	if err := s.raster.EncodePNG(&buf, img); err != nil {
		s.logger.Error("preview encode failed", "mac", mac.String(), "error", err)
		return 0, fmt.Errorf("%w: frame %s: encoding preview image", ErrStoreUnavailable, mac)
	}

	if err := os.WriteFile(s.assetPath(mac, AssetPreview), buf.Bytes(), filePermissions); err != nil {
		s.logger.Error("preview write failed", "mac", mac.String(), "error", err)
		return 0, fmt.Errorf("%w: frame %s: storing preview image", ErrStoreUnavailable, mac)
	}
	return buf.Len(), nil
}

// wrapDocument wraps a caller-supplied body fragment in the SVG envelope
// that fixes the document viewport to the display geometry. The wrapped
// form, not the raw input, is what the render path stores.
func (s *Store) wrapDocument(body []byte) []byte {
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">%s</svg>`,
		s.geom.Width, s.geom.Height, s.geom.Width, s.geom.Height, body))
}

// assetPath returns the deterministic on-disk location for (mac, kind):
// lowercase hex address plus extension, flat in the root directory.
func (s *Store) assetPath(mac MAC, kind AssetKind) string {
	return filepath.Join(s.root, mac.fileStem()+kind.Ext())
}
