// Package log provides a logging abstraction for wallpick components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. Default implementations are provided for zerolog
// and a no-op logger for testing.
//
// # Usage
//
// Build a console logger, optionally teed into a rotated diagnostic file:
//
//	logger := log.New(log.Options{Verbose: true, DiagFile: "/tmp/wallpick-diag.log"})
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
package log
