package app

import (
	"fmt"
	"path/filepath"

	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// CandidatePaths returns the light and dark wallpaper filenames for label under baseDir.
func CandidatePaths(baseDir string, label domain.AspectRatio) (light, dark string) {
	light = filepath.Join(baseDir, fmt.Sprintf("wallpaper_%s.png", label))
	dark = filepath.Join(baseDir, fmt.Sprintf("wallpaper_%s_Dark.png", label))
	return light, dark
}

// Resolver chooses the wallpaper file for a label and theme.
type Resolver struct {
	probe ports.FileProber
	out   outcome
}

// NewResolver creates a Resolver that checks dark variants with probe.
func NewResolver(probe ports.FileProber, logger log.Logger, journal ports.Journal) *Resolver {
	return &Resolver{probe: probe, out: outcome{logger: logger, journal: journal}}
}

// Resolve returns the wallpaper path to use.
//
// In Light mode the light path is returned without probing; its existence is
// checked when applying. In Dark mode the dark variant is returned when it
// exists, otherwise the light path for the same label.
func (r *Resolver) Resolve(baseDir string, label domain.AspectRatio, theme domain.ThemeMode) string {
	light, dark := CandidatePaths(baseDir, label)
	if theme != domain.Dark {
		return light
	}

	if r.probe.Exists(dark) {
		r.out.info(fmt.Sprintf("Dark mode detected, using dark wallpaper: %s", dark),
			log.Path(dark))
		return dark
	}

	r.out.info(fmt.Sprintf("Dark mode detected but no dark variant found at %s, falling back to %s", dark, light),
		log.String("missing", dark), log.Path(light))
	return light
}
