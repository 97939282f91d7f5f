package images

import (
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI_RoundTrip(t *testing.T) {
	in := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			in.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 60), B: 9, A: 255})
		}
	}

	uri, err := EncodeDataURI(in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), "URI must carry the PNG data prefix")

	// The base64 body must decode cleanly to the PNG bytes.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), raw[:8], "payload must be a PNG container")

	out, err := DecodeDataURI(uri)
	require.NoError(t, err)
	require.Equal(t, in.Bounds(), out.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			wr, wg, wb, _ := in.At(x, y).RGBA()
			gr, gg, gb, _ := out.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("pixel (%d,%d) changed across the round trip", x, y)
			}
		}
	}
}

func TestDecodeDataURI_Rejects(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "empty", uri: ""},
		{name: "wrong scheme", uri: "data:image/jpeg;base64,AAAA"},
		{name: "bad base64", uri: "data:image/png;base64,!!!"},
		{name: "valid base64, not a png", uri: "data:image/png;base64,aGVsbG8="},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeDataURI(tc.uri)
			assert.Error(t, err)
		})
	}
}
