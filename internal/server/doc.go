// Package server runs the gateway's HTTP transport.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
