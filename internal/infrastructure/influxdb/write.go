package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteRenderMetric records a completed render for a frame.
//
// This is written after each successful render-and-store so operators
// can track rendering latency and output size per frame over time.
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - address: Canonical frame address (e.g., "AABBCCDDEEFFAABB")
//   - duration: Wall-clock time the render pipeline took
//   - previewBytes: Encoded size of the stored preview in bytes
//
// Example:
//
//	client.WriteRenderMetric("AABBCCDDEEFFAABB", 12*time.Millisecond, 4096)
func (c *Client) WriteRenderMetric(address string, duration time.Duration, previewBytes int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"render",
		map[string]string{
			"address": address,
		},
		map[string]interface{}{
			"duration_ms":   float64(duration.Microseconds()) / 1000.0,
			"preview_bytes": previewBytes,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteAssetServed records an asset being streamed to a client.
//
// Used for tracking which frames are actively fetching and which asset
// kinds (vector, bitmap, preview) are still in use across the fleet.
//
// Parameters:
//   - address: Canonical frame address
//   - kind: Asset kind served ("vector", "bitmap", "preview")
func (c *Client) WriteAssetServed(address string, kind string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"asset_served",
		map[string]string{
			"address": address,
			"kind":    kind,
		},
		map[string]interface{}{
			"count": 1,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//
// Example:
//
//	client.WritePoint("fleet_stats",
//	    map[string]string{"host": "core-01"},
//	    map[string]interface{}{"frames": 42})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
