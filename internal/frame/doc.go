// Package frame provides the device-keyed image store for InkFleet Core.
//
// Every e-paper frame in a fleet is identified by its 8-byte hardware
// address (MAC) and owns up to three stored representations of its display
// image, all living flat in one directory and named by the lowercase hex
// address:
//
//	<image_dir>/aabbccddeeffaabb.svg   wrapped vector document
//	<image_dir>/aabbccddeeffaabb.bmp   display-ready bitmap (legacy)
//	<image_dir>/aabbccddeeffaabb.png   compressed preview
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────────┐
//	│                         Image Store                            │
//	│                                                                │
//	│  ┌───────────────┐   ┌────────────────┐   ┌────────────────┐  │
//	│  │      MAC      │   │     Store      │   │   Rasterizer   │  │
//	│  │ (address.go)  │──▶│   (store.go)   │──▶│(rasterizer.go) │  │
//	│  │               │   │                │   │                │  │
//	│  │ • parse/print │   │ • list frames  │   │ • SVG → pixels │  │
//	│  │ • file stems  │   │ • stream asset │   │ • PNG encoding │  │
//	│  └───────────────┘   │ • delete       │   └────────────────┘  │
//	│                      │ • render+store │                       │
//	│                      └────────────────┘                       │
//	└────────────────────────────────────────────────────────────────┘
//
// # Key Types
//
//   - MAC: the 8-byte hardware address, canonical text form 16 uppercase hex
//   - AssetKind: which stored representation (vector, bitmap, preview)
//   - Geometry: the fixed display resolution every render must match
//   - Store: the filesystem façade exposing list/read/delete/render
//   - Rasterizer: the SVG-to-pixel-buffer capability the store calls into
//
// # Usage
//
//	store, err := frame.NewStore(cfg.Store.ImageDir,
//	    frame.Geometry{Width: 128, Height: 296}, frame.NewRasterizer())
//	if err != nil {
//	    return err
//	}
//	store.SetLogger(log)
//
//	// Submit an image: the caller supplies inner SVG markup only, the
//	// store wraps it in an envelope sized to the display.
//	_, err = store.RenderAndStore(ctx, mac, []byte(`<circle cx="64" cy="64" r="32" />`))
//
//	// Stream the preview back.
//	rc, err := store.OpenAsset(ctx, mac, frame.AssetPreview)
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
// # Consistency Model
//
// The store is a stateless façade over the filesystem: no cache, no
// per-address locking, no retries, no rollback. Multi-file operations
// (render, delete) are sequential and best-effort; an I/O failure can leave
// a partial asset set until the next successful render overwrites it. The
// preview image is the authoritative "this frame has an image" signal —
// enumeration is driven by preview files alone. Concurrent calls for
// different addresses never contend; concurrent calls for the same address
// race at the file level, last writer wins per file.
package frame
