package domain

import (
	"fmt"
	"strings"
)

// Style is the desktop background scaling mode.
type Style string

const (
	StyleFill    Style = "Fill"
	StyleFit     Style = "Fit"
	StyleStretch Style = "Stretch"
	StyleTile    Style = "Tile"
	StyleCenter  Style = "Center"
	StyleSpan    Style = "Span"
)

// StyleConfig is the persisted OS encoding of a Style: the Windows
// WallpaperStyle code plus the TileWallpaper flag.
type StyleConfig struct {
	Code int
	Tile bool
}

var styleConfigs = map[Style]StyleConfig{
	StyleFill:    {Code: 10},
	StyleFit:     {Code: 6},
	StyleStretch: {Code: 2},
	StyleTile:    {Code: 0, Tile: true},
	StyleCenter:  {Code: 0},
	StyleSpan:    {Code: 22},
}

// Styles returns the supported styles in a stable order.
func Styles() []Style {
	return []Style{StyleFill, StyleFit, StyleStretch, StyleTile, StyleCenter, StyleSpan}
}

// ParseStyle resolves a style name, ignoring case.
func ParseStyle(name string) (Style, error) {
	n := strings.TrimSpace(name)
	for _, s := range Styles() {
		if strings.EqualFold(string(s), n) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

// Config returns the OS encoding of s.
func (s Style) Config() StyleConfig {
	return styleConfigs[s]
}

// StyleFromConfig maps an OS encoding back to a Style.
func StyleFromConfig(c StyleConfig) (Style, bool) {
	for _, s := range Styles() {
		if styleConfigs[s] == c {
			return s, true
		}
	}
	return "", false
}

func (s Style) String() string { return string(s) }
