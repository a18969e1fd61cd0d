// Package ports defines the interfaces (ports) that connect the application
// layer to operating system adapters.
//
// # Port Interfaces
//
//   - [DisplayQuery]: reads the primary display resolution
//   - [ThemeProvider]: reads the OS light/dark theme
//   - [DesktopConfigurator]: reads/writes the wallpaper style and sets the background
//   - [Journal]: appends outcome messages to the daily log
//   - [FileProber]: checks whether a wallpaper file exists
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Platform adapters (internal/adapters/desktop, internal/adapters/fs) implement
// them for the running OS, and internal/adapters/memory provides in-memory
// implementations for tests.
package ports
