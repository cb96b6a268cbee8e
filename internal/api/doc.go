// Package api implements the HTTP REST API for InkFleet Core.
//
// This package provides:
//   - REST endpoints for listing frames, submitting images, streaming
//     stored assets, and deleting a frame's asset set
//   - Middleware stack (request ID, logging, recovery, CORS, body size limit)
//   - TLS support for production deployments
//
// # Architecture
//
// The API server sits between image producers (dashboards, automation
// scripts, the fleet CLI) and the on-disk image store. A successful render
// is announced over MQTT so the addressed frame wakes and fetches its new
// image; the frames fetch their assets back through this same API.
//
// # Graceful Degradation
//
// The server operates without MQTT and InfluxDB — rendering, streaming,
// and deletion all work, frames are just not notified and no telemetry is
// recorded. This enables testing and partial operation.
package api
