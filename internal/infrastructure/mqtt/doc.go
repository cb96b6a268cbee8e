// Package mqtt provides MQTT publishing for InkFleet Core.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// InkFleet uses MQTT to push render and removal announcements to the
// e-paper frames. Each frame subscribes to its own address under
// inkfleet/frame/{address}/# and fetches the new asset over HTTP when
// an image announcement arrives. Core never subscribes; it is a pure
// publisher.
//
//	InkFleet Core → MQTT Broker → e-paper frames
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Announce a fresh render (retained so late subscribers catch up)
//	topic := mqtt.Topics{}.FrameImage("AABBCCDDEEFFAABB")
//	client.PublishRetained(topic, []byte(`{"address":"AABBCCDDEEFFAABB"}`))
package mqtt
