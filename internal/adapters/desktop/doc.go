// Package desktop implements the display, theme and desktop theming ports on
// top of the host operating system.
//
// Windows uses the registry and user32 through golang.org/x/sys/windows.
// Linux targets GNOME-compatible desktops through the freedesktop settings
// portal and gsettings. macOS uses defaults and osascript. Other platforms
// report domain.ErrUnsupportedPlatform.
package desktop
