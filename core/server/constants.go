package server

import "time"

const (
	// DefaultAddr binds to loopback only; the preview endpoint is a developer tool.
	DefaultAddr = "127.0.0.1:8025"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20 // 1 MB
)
