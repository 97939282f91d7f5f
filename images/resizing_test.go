package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRaster(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func TestFitWidth_Disabled(t *testing.T) {
	in := testRaster(2048, 1024)
	out := FitWidth(in, -1)
	assert.Same(t, image.Image(in), out, "maxWidth -1 must disable resizing")
}

func TestFitWidth_WithinBounds(t *testing.T) {
	in := testRaster(800, 400)
	out := FitWidth(in, 1024)
	assert.Same(t, image.Image(in), out, "images within bounds must pass through untouched")
}

func TestFitWidth_Proportional(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxWidth     int
		wantW, wantH int
	}{
		{name: "2:1 landscape", w: 2048, h: 1024, maxWidth: 1024, wantW: 1024, wantH: 512},
		{name: "equirect to 4K class", w: 8192, h: 4096, maxWidth: 4096, wantW: 4096, wantH: 2048},
		{name: "portrait longer side is height", w: 512, h: 1024, maxWidth: 256, wantW: 128, wantH: 256},
		{name: "square", w: 600, h: 600, maxWidth: 300, wantW: 300, wantH: 300},
		{name: "odd ratio truncates", w: 1000, h: 333, maxWidth: 500, wantW: 500, wantH: 166},
		{name: "exactly at bound", w: 1024, h: 512, maxWidth: 1024, wantW: 1024, wantH: 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := FitWidth(testRaster(tc.w, tc.h), tc.maxWidth)
			assert.Equal(t, tc.wantW, out.Bounds().Dx(), "width")
			assert.Equal(t, tc.wantH, out.Bounds().Dy(), "height")
		})
	}
}

func TestFitWidth_ExtremeRatioKeepsOnePixel(t *testing.T) {
	out := FitWidth(testRaster(10000, 2), 100)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 1, out.Bounds().Dy(), "shorter side must never truncate to zero")
}

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 2.0, AspectRatio(4096, 2048), 1e-6)
	assert.InDelta(t, 1.0, AspectRatio(512, 512), 1e-6)
	assert.Equal(t, float32(0), AspectRatio(100, 0))
}

func TestIsEquirectangular(t *testing.T) {
	assert.True(t, IsEquirectangular(4096, 2048))
	assert.True(t, IsEquirectangular(2050, 1024), "within 1% tolerance")
	assert.False(t, IsEquirectangular(1920, 1080))
	assert.False(t, IsEquirectangular(512, 512))
	assert.False(t, IsEquirectangular(100, 0))
}
