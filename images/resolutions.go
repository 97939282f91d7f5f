// Package images provides type definitions and constants for common
// equirectangular panorama resolutions. Panorama storage standardizes on a
// 2:1 width:height projection, so each standard is identified by its width.
package images

import (
	"fmt"
	"math"
)

// PanoResolutionType represents a common name for an equirectangular
// panorama resolution standard.
type PanoResolutionType string

// Defines the unique type for each supported panorama resolution.
const (
	PanoResolutionType2K  PanoResolutionType = "2K 360"
	PanoResolutionType4K  PanoResolutionType = "4K 360"
	PanoResolutionType6K  PanoResolutionType = "6K 360"
	PanoResolutionType8K  PanoResolutionType = "8K 360"
	PanoResolutionType12K PanoResolutionType = "12K 360"
	PanoResolutionType16K PanoResolutionType = "16K 360"
)

// PanoResolutionPixels describes the exact dimensions of a resolution.
type PanoResolutionPixels struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PanoResolution describes the complete set of attributes for an
// equirectangular resolution standard.
type PanoResolution struct {
	Name   PanoResolutionType   `json:"name"`
	Pixels PanoResolutionPixels `json:"pixels"`
	// Experimental flags resolutions beyond what consumer 360 cameras and
	// viewers commonly handle.
	Experimental bool `json:"experimental"`
}

// GetMegaPixels calculates the megapixel value based on the resolution's
// pixel dimensions, rounded to two decimal places.
func (r PanoResolution) GetMegaPixels() float64 {
	if r.Pixels.Width <= 0 || r.Pixels.Height <= 0 {
		return 0.0
	}
	mp := float64(r.Pixels.Width*r.Pixels.Height) / 1_000_000.0
	return math.Round(mp*100) / 100
}

// String returns a human-readable summary of the resolution.
func (r PanoResolution) String() string {
	return fmt.Sprintf("%s (%dx%d, %.2fMP)", r.Name, r.Pixels.Width, r.Pixels.Height, r.GetMegaPixels())
}

// panoResolutions stores all defined resolution standards keyed by type.
var panoResolutions = map[PanoResolutionType]PanoResolution{
	PanoResolutionType2K: {
		Name:   PanoResolutionType2K,
		Pixels: PanoResolutionPixels{Width: 2048, Height: 1024},
	},
	PanoResolutionType4K: {
		Name:   PanoResolutionType4K,
		Pixels: PanoResolutionPixels{Width: 4096, Height: 2048},
	},
	PanoResolutionType6K: {
		Name:   PanoResolutionType6K,
		Pixels: PanoResolutionPixels{Width: 6144, Height: 3072},
	},
	PanoResolutionType8K: {
		Name:   PanoResolutionType8K,
		Pixels: PanoResolutionPixels{Width: 8192, Height: 4096},
	},
	PanoResolutionType12K: {
		Name:         PanoResolutionType12K,
		Pixels:       PanoResolutionPixels{Width: 12288, Height: 6144},
		Experimental: true,
	},
	PanoResolutionType16K: {
		Name:         PanoResolutionType16K,
		Pixels:       PanoResolutionPixels{Width: 16384, Height: 8192},
		Experimental: true,
	},
}

// GetPanoResolution looks up a resolution standard by type.
func GetPanoResolution(name PanoResolutionType) (PanoResolution, bool) {
	r, ok := panoResolutions[name]
	return r, ok
}

// NearestPanoResolution returns the defined standard whose width is closest
// to the given width. Used for log messages describing what class of
// panorama an input roughly corresponds to.
func NearestPanoResolution(width int) PanoResolution {
	var best PanoResolution
	bestDelta := math.MaxInt
	for _, r := range panoResolutions {
		delta := r.Pixels.Width - width
		if delta < 0 {
			delta = -delta
		}
		if delta < bestDelta {
			best = r
			bestDelta = delta
		}
	}
	return best
}
