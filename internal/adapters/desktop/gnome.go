package desktop

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bft-labs/wallpick/internal/domain"
)

// GNOME picture-options values for each style.
var gnomePictureOptions = map[domain.Style]string{
	domain.StyleFill:    "zoom",
	domain.StyleFit:     "scaled",
	domain.StyleStretch: "stretched",
	domain.StyleTile:    "wallpaper",
	domain.StyleCenter:  "centered",
	domain.StyleSpan:    "spanned",
}

func pictureOption(cfg domain.StyleConfig) (string, error) {
	style, ok := domain.StyleFromConfig(cfg)
	if !ok {
		return "", fmt.Errorf("%w: code %d tile %t", domain.ErrInvalidStyle, cfg.Code, cfg.Tile)
	}
	return gnomePictureOptions[style], nil
}

func styleConfigFromPictureOption(option string) (domain.StyleConfig, error) {
	option = unquoteGVariant(option)
	for style, o := range gnomePictureOptions {
		if o == option {
			return style.Config(), nil
		}
	}
	return domain.StyleConfig{}, fmt.Errorf("%w: picture-options %q", domain.ErrInvalidStyle, option)
}

// fileURI converts a local path into the file:// form gsettings expects.
func fileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// colorSchemeMode interprets `gsettings get org.gnome.desktop.interface color-scheme`.
func colorSchemeMode(output string) domain.ThemeMode {
	if strings.Contains(strings.ToLower(unquoteGVariant(output)), "dark") {
		return domain.Dark
	}
	return domain.Light
}

// portalColorScheme interprets the org.freedesktop.appearance color-scheme value:
// 1 prefers dark, 2 prefers light, 0 has no preference.
func portalColorScheme(v uint32) (domain.ThemeMode, bool) {
	switch v {
	case 1:
		return domain.Dark, true
	case 2:
		return domain.Light, true
	default:
		return domain.Light, false
	}
}

func unquoteGVariant(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'\"")
}
