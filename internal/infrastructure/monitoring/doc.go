/*
Package monitoring provides Prometheus metrics for the desktop service.

# Overview

Metrics live on a registry owned by each Metrics value, so several servers
(or tests) in one process never collide on registration.

# Collected

- HTTP request metrics (latency, throughput, size) keyed by route template
- Desktop commands by name and whether they changed state
- Window registry gauges (open, minimized, maximized, last z-index)
- WebSocket connections and messages
- Go runtime, process and uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// The desktop reports through the Recorder hook
	opts.Recorder = metrics
*/
package monitoring
