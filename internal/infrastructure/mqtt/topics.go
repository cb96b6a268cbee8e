package mqtt

import "fmt"

// Topic prefixes for the InkFleet MQTT namespace.
//
// Frame topics use the flat scheme: inkfleet/frame/{address}/{event}
// where {address} is the canonical uppercase 16-hex-digit frame MAC.
const (
	// TopicPrefix is the base for all InkFleet topics.
	TopicPrefix = "inkfleet"

	// TopicPrefixFrame is the base for per-frame topics.
	TopicPrefixFrame = "inkfleet/frame"
)

// Topics provides builders for InkFleet MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	imageTopic := topics.FrameImage("AABBCCDDEEFFAABB")
//	// Returns: "inkfleet/frame/AABBCCDDEEFFAABB/image"
type Topics struct{}

// FrameImage returns the topic announcing a freshly rendered image.
//
// Frames subscribe to their own address and refresh the panel when a
// message arrives. Published retained so a frame that reconnects sees
// the latest render immediately.
//
// Example: inkfleet/frame/AABBCCDDEEFFAABB/image
func (Topics) FrameImage(address string) string {
	return fmt.Sprintf("%s/%s/image", TopicPrefixFrame, address)
}

// FrameRemoved returns the topic announcing that a frame's stored
// assets were deleted.
//
// Example: inkfleet/frame/AABBCCDDEEFFAABB/removed
func (Topics) FrameRemoved(address string) string {
	return fmt.Sprintf("%s/%s/removed", TopicPrefixFrame, address)
}

// Status returns the core service status topic, used for the LWT and
// retained online/offline announcements.
//
// Example: inkfleet/status/core
func (Topics) Status() string {
	return fmt.Sprintf("%s/status/core", TopicPrefix)
}

// AllFrameImages returns a pattern matching image announcements for
// every frame.
//
// Pattern: inkfleet/frame/+/image
func (Topics) AllFrameImages() string {
	return fmt.Sprintf("%s/+/image", TopicPrefixFrame)
}

// AllFrameRemovals returns a pattern matching removal announcements
// for every frame.
//
// Pattern: inkfleet/frame/+/removed
func (Topics) AllFrameRemovals() string {
	return fmt.Sprintf("%s/+/removed", TopicPrefixFrame)
}

// AllTopics returns a pattern matching all InkFleet topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: inkfleet/#
func (Topics) AllTopics() string {
	return "inkfleet/#"
}
