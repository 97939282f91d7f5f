package images

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
)

// equirectRatio is the width:height ratio of an equirectangular projection.
const equirectRatio = 2.0

// equirectTolerance is the relative slack allowed when classifying an input
// as equirectangular. Odd crops within ~1% still render acceptably.
const equirectTolerance = 0.01

// FitWidth downscales img so that its longer side does not exceed maxWidth,
// preserving the aspect ratio. Images already within bounds are returned
// unchanged, as is any input when maxWidth is zero or negative (resizing
// disabled). Downscaling uses Lanczos3 resampling.
//
// Both output dimensions are computed as maxWidth*dim/longer with integer
// truncation, so the longer side lands exactly on maxWidth and the shorter
// side is within one pixel of the exact ratio.
//
// Arguments:
//   - img: The raster to bound.
//   - maxWidth: The maximum length of the longer side, or <= 0 to disable.
//
// Returns:
//   - image.Image: The original image or a Lanczos3-downscaled copy.
func FitWidth(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 {
		return img
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth && h <= maxWidth {
		return img
	}

	longer := max(w, h)
	newW := maxWidth * w / longer
	newH := maxWidth * h / longer
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)
}

// AspectRatio returns the width:height ratio of the given dimensions.
// A non-positive height yields 0.
func AspectRatio(w, h int) float32 {
	if h <= 0 {
		return 0
	}
	return float32(w) / float32(h)
}

// IsEquirectangular reports whether the dimensions match the 2:1 projection
// expected by a 360-degree panorama viewer, within a small tolerance.
func IsEquirectangular(w, h int) bool {
	ratio := AspectRatio(w, h)
	if ratio == 0 {
		return false
	}
	return math32.Abs(ratio-equirectRatio)/equirectRatio <= equirectTolerance
}
