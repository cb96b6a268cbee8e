package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inkfleet/inkfleet-core/internal/frame"
	"github.com/inkfleet/inkfleet-core/internal/infrastructure/mqtt"
)

// handleListFrames returns the address of every frame with a stored image,
// sorted ascending in canonical uppercase form.
func (s *Server) handleListFrames(w http.ResponseWriter, r *http.Request) {
	macs, err := s.store.ListFrames(r.Context())
	if err != nil {
		writeInternalError(w, "failed to list frames")
		return
	}

	frames := make([]string, 0, len(macs))
	for _, mac := range macs {
		frames = append(frames, mac.String())
	}
	sort.Strings(frames)

	writeJSON(w, http.StatusOK, map[string]any{"frames": frames, "count": len(frames)})
}

// FrameStats summarises the stored fleet.
type FrameStats struct {
	Frames  int         `json:"frames"`
	Display DisplaySize `json:"display"`
}

// DisplaySize is the fleet-wide panel resolution.
type DisplaySize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// handleFrameStats returns the frame count and the configured display geometry.
func (s *Server) handleFrameStats(w http.ResponseWriter, r *http.Request) {
	macs, err := s.store.ListFrames(r.Context())
	if err != nil {
		writeInternalError(w, "failed to list frames")
		return
	}

	geom := s.store.Geometry()
	writeJSON(w, http.StatusOK, FrameStats{
		Frames:  len(macs),
		Display: DisplaySize{Width: geom.Width, Height: geom.Height},
	})
}

// handleGetVector streams the stored vector document.
func (s *Server) handleGetVector(w http.ResponseWriter, r *http.Request) {
	s.streamAsset(w, r, frame.AssetVector)
}

// handleGetPreview streams the raster preview.
func (s *Server) handleGetPreview(w http.ResponseWriter, r *http.Request) {
	s.streamAsset(w, r, frame.AssetPreview)
}

// handleGetBitmap streams the legacy display bitmap.
func (s *Server) handleGetBitmap(w http.ResponseWriter, r *http.Request) {
	s.streamAsset(w, r, frame.AssetBitmap)
}

// streamAsset copies one stored asset of the addressed frame to the response.
func (s *Server) streamAsset(w http.ResponseWriter, r *http.Request, kind frame.AssetKind) {
	mac, err := frame.ParseMAC(chi.URLParam(r, "address"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rc, err := s.store.OpenAsset(r.Context(), mac, kind)
	if err != nil {
		if errors.Is(err, frame.ErrAssetNotFound) {
			writeNotFound(w, err.Error())
			return
		}
		writeInternalError(w, "failed to open asset")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", kind.ContentType())
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are gone at this point; all we can do is log.
		s.logger.Debug("asset stream interrupted",
			"address", mac.String(), "kind", string(kind), "error", err)
		return
	}

	if s.influx != nil {
		s.influx.WriteAssetServed(mac.String(), string(kind))
	}
}

// handleSubmitImage renders a submitted vector body and stores the result.
//
// The request body is the inner SVG markup only; the store wraps it in an
// envelope sized to the fleet display before rasterizing. On success the
// new image is announced over MQTT (retained) so the addressed frame
// refreshes as soon as it is listening.
func (s *Server) handleSubmitImage(w http.ResponseWriter, r *http.Request) {
	mac, err := frame.ParseMAC(chi.URLParam(r, "address"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "failed to read request body")
		return
	}

	start := time.Now()
	previewBytes, err := s.store.RenderAndStore(r.Context(), mac, body)
	if err != nil {
		if errors.Is(err, frame.ErrInvalidVector) {
			writeBadRequest(w, err.Error())
			return
		}
		writeInternalError(w, "failed to store image")
		return
	}

	// Announce to the frame. Retained delivery means a frame that connects
	// later still learns about the newest image.
	if s.mqtt != nil {
		topic := mqtt.Topics{}.FrameImage(mac.String())
		payload, marshalErr := json.Marshal(map[string]any{
			"address":       mac.String(),
			"preview_bytes": previewBytes,
			"rendered_at":   time.Now().UTC().Format(time.RFC3339),
		})
		if marshalErr != nil {
			s.logger.Debug("image announcement encode failed", "error", marshalErr)
		} else if pubErr := s.mqtt.PublishRetained(topic, payload); pubErr != nil {
			s.logger.Debug("MQTT publish failed", "topic", topic, "error", pubErr)
		}
	}

	if s.influx != nil {
		s.influx.WriteRenderMetric(mac.String(), time.Since(start), previewBytes)
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteFrame removes every stored asset for the addressed frame.
func (s *Server) handleDeleteFrame(w http.ResponseWriter, r *http.Request) {
	mac, err := frame.ParseMAC(chi.URLParam(r, "address"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := s.store.DeleteFrame(r.Context(), mac); err != nil {
		if errors.Is(err, frame.ErrAssetNotFound) {
			writeNotFound(w, err.Error())
			return
		}
		writeInternalError(w, "failed to delete frame")
		return
	}

	if s.mqtt != nil {
		topics := mqtt.Topics{}
		payload, marshalErr := json.Marshal(map[string]any{
			"address":    mac.String(),
			"removed_at": time.Now().UTC().Format(time.RFC3339),
		})
		if marshalErr == nil {
			if pubErr := s.mqtt.PublishEvent(topics.FrameRemoved(mac.String()), payload); pubErr != nil {
				s.logger.Debug("MQTT publish failed", "topic", topics.FrameRemoved(mac.String()), "error", pubErr)
			}
		}
		// Clear the retained image announcement so a reconnecting frame
		// does not fetch an image that no longer exists.
		if pubErr := s.mqtt.PublishRetained(topics.FrameImage(mac.String()), nil); pubErr != nil {
			s.logger.Debug("MQTT retained clear failed", "topic", topics.FrameImage(mac.String()), "error", pubErr)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
