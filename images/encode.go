package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

// dataURIPrefix is the scheme prefix for inline PNG payloads handed to the
// viewer. The client uses the string directly as an image source.
const dataURIPrefix = "data:image/png;base64,"

// EncodeDataURI encodes img as PNG and wraps the bytes in a base64
// data:image/png URI.
//
// Arguments:
//   - img: The raster to encode.
//
// Returns:
//   - string: The data URI.
//   - error: An error if PNG encoding fails.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "png encoding failed")
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI decodes a data:image/png URI produced by EncodeDataURI back
// into an image. Used by tests and tooling to verify payloads round-trip.
func DecodeDataURI(uri string) (image.Image, error) {
	if len(uri) < len(dataURIPrefix) || uri[:len(dataURIPrefix)] != dataURIPrefix {
		return nil, errors.New("not a data:image/png;base64 URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[len(dataURIPrefix):])
	if err != nil {
		return nil, errors.Wrap(err, "base64 decoding failed")
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "png decoding failed")
	}
	return img, nil
}
