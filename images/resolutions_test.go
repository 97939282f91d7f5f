package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPanoResolution(t *testing.T) {
	r, ok := GetPanoResolution(PanoResolutionType8K)
	require.True(t, ok)
	assert.Equal(t, 8192, r.Pixels.Width)
	assert.Equal(t, 4096, r.Pixels.Height)
	assert.False(t, r.Experimental)

	_, ok = GetPanoResolution("bogus")
	assert.False(t, ok)
}

func TestPanoResolution_AllAreEquirect(t *testing.T) {
	for name := range panoResolutions {
		r, _ := GetPanoResolution(name)
		assert.True(t, IsEquirectangular(r.Pixels.Width, r.Pixels.Height),
			"standard %s must be 2:1", name)
	}
}

func TestGetMegaPixels(t *testing.T) {
	r, _ := GetPanoResolution(PanoResolutionType4K)
	assert.InDelta(t, 8.39, r.GetMegaPixels(), 0.001)
	assert.Equal(t, "4K 360 (4096x2048, 8.39MP)", r.String())
}

func TestNearestPanoResolution(t *testing.T) {
	assert.Equal(t, PanoResolutionType4K, NearestPanoResolution(4000).Name)
	assert.Equal(t, PanoResolutionType2K, NearestPanoResolution(100).Name)
	assert.Equal(t, PanoResolutionType16K, NearestPanoResolution(50000).Name)
}
