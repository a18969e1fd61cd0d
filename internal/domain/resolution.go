package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is the pixel size of the primary display.
type Resolution struct {
	Width  int
	Height int
}

// NewResolution returns a Resolution, rejecting non-positive dimensions.
func NewResolution(width, height int) (Resolution, error) {
	r := Resolution{Width: width, Height: height}
	if !r.Valid() {
		return Resolution{}, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	return r, nil
}

// ParseResolution parses a "WIDTHxHEIGHT" string such as "1920x1080".
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	return NewResolution(width, height)
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Ratio returns width divided by height.
// It returns 0 for an invalid resolution.
func (r Resolution) Ratio() float64 {
	if !r.Valid() {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
