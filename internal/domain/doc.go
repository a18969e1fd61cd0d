// Package domain contains the core value types and decision rules for wallpick.
//
// This package is the innermost layer. It has no dependencies on the operating
// system, the file system or logging, and contains only pure logic.
//
// # Types
//
//   - [Resolution]: primary display size in pixels
//   - [AspectRatio]: canonical aspect-ratio label, or [Default]
//   - [ThemeMode]: OS light/dark appearance
//   - [Style] and [StyleConfig]: desktop background scaling mode and its OS encoding
//   - [LogEntry] and [DatedFile]: daily log records and the retention policy inputs
//
// # Rules
//
//   - [Classify] maps a resolution to the nearest canonical aspect ratio
//   - [ExpiredLogs] selects dated log files that precede the current day
package domain
