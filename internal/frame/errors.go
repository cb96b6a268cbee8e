package frame

import "errors"

// Domain errors for the frame package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, frame.ErrAssetNotFound) {
//	    // handle not found case
//	}
var (
	// ErrInvalidAddress is returned when hardware address text cannot be decoded.
	ErrInvalidAddress = errors.New("frame: invalid address")

	// ErrInvalidVector is returned when the rasterizer rejects submitted vector markup.
	ErrInvalidVector = errors.New("frame: invalid vector document")

	// ErrAssetNotFound is returned when a requested asset, or the whole frame,
	// has no presence on disk.
	ErrAssetNotFound = errors.New("frame: asset not found")

	// ErrStoreUnavailable is returned when the image directory or a file within
	// it cannot be accessed.
	ErrStoreUnavailable = errors.New("frame: store unavailable")
)
