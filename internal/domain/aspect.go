package domain

import "math"

// DefaultTolerance is the maximum distance between a measured ratio and a
// canonical ratio for the canonical label to be chosen.
const DefaultTolerance = 0.1

// ratioEpsilon absorbs float error when a ratio sits exactly on the tolerance.
const ratioEpsilon = 1e-9

// AspectRatio is a canonical aspect-ratio label used in wallpaper filenames.
type AspectRatio string

const (
	Ratio16x10 AspectRatio = "16_10"
	Ratio16x9  AspectRatio = "16_9"
	Ratio21x9  AspectRatio = "21_9"
	Ratio32x9  AspectRatio = "32_9"

	// Default means no canonical ratio matched within tolerance.
	Default AspectRatio = "Default"
)

type canonicalRatio struct {
	label AspectRatio
	value float64
}

// canonicalRatios is ordered; the first minimal entry wins on ties.
var canonicalRatios = []canonicalRatio{
	{Ratio16x10, 1.60},
	{Ratio16x9, 1.77},
	{Ratio21x9, 2.33},
	{Ratio32x9, 3.56},
}

// AspectRatios returns every label Classify can produce, Default last.
func AspectRatios() []AspectRatio {
	out := make([]AspectRatio, 0, len(canonicalRatios)+1)
	for _, c := range canonicalRatios {
		out = append(out, c.label)
	}
	return append(out, Default)
}

// Classify maps a resolution to the nearest canonical aspect ratio, or Default
// when the nearest one is further than tolerance away. A non-positive
// tolerance is replaced by DefaultTolerance.
func Classify(r Resolution, tolerance float64) AspectRatio {
	if !r.Valid() {
		return Default
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	ratio := r.Ratio()
	best := canonicalRatios[0]
	bestDiff := math.Abs(best.value - ratio)
	for _, c := range canonicalRatios[1:] {
		if d := math.Abs(c.value - ratio); d < bestDiff {
			best, bestDiff = c, d
		}
	}

	if bestDiff <= tolerance+ratioEpsilon {
		return best.label
	}
	return Default
}

func (a AspectRatio) String() string { return string(a) }
