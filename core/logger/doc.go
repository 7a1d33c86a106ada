// Package logger provides a structured logging facility based on Zap.
//
// It builds a development or production logger from Config and integrates with
// the Fiber web framework.
//
// # Context Awareness
//
// The rayid middleware stores a request id in the Fiber locals. WithRayID copies
// it onto a logger so every entry of a request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Refresh failed", zap.Error(err))
package logger
