// Package images - raster normalization for panorama preview tensors.
package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// NormalizeFrame converts one entry of a host image tensor into an opaque
// 3-channel uint8 raster ready for PNG encoding.
//
// The tensor may be rank 4 (batch, height, width, channels), rank 3
// (height, width, channels) or rank 2 (height, width, implicit single
// channel). For rank 3 and rank 2 tensors idx must be 0.
//
// Float32 and float64 elements are assumed to be normalized to [0,1] and are
// scaled by 255 with a truncating integer cast. Out-of-range values follow
// the Go conversion rules, mirroring the wrap behavior of a raw uint8 cast.
// Single-channel data is replicated across all three output channels.
//
// Arguments:
//   - t: The image tensor supplied by the host.
//   - idx: The batch index to extract. Must be 0 for non-batched tensors.
//
// Returns:
//   - *image.NRGBA: The normalized raster, fully opaque.
//   - error: An error if the tensor rank, channel count, element type or
//     index is unsupported.
func NormalizeFrame(t *tensor.Dense, idx int) (*image.NRGBA, error) {
	if t == nil {
		return nil, errors.New("image tensor is nil")
	}
	if idx < 0 {
		return nil, errors.Errorf("negative batch index %d", idx)
	}

	shape := t.Shape()
	var batch, height, width, channels int
	switch len(shape) {
	case 4:
		batch, height, width, channels = shape[0], shape[1], shape[2], shape[3]
	case 3:
		batch, height, width, channels = 1, shape[0], shape[1], shape[2]
	case 2:
		batch, height, width, channels = 1, shape[0], shape[1], 1
	default:
		return nil, errors.Errorf("unsupported tensor rank %d, want (B,H,W,C), (H,W,C) or (H,W)", len(shape))
	}
	if idx >= batch {
		return nil, errors.Errorf("batch index %d out of range for batch size %d", idx, batch)
	}
	if channels != 1 && channels != 3 {
		return nil, errors.Errorf("unsupported channel count %d, want 1 or 3", channels)
	}
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	at, err := elementReader(t)
	if err != nil {
		return nil, err
	}

	frameLen := height * width * channels
	base := idx * frameLen

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := base + (y*width+x)*channels
			var c color.NRGBA
			if channels == 1 {
				v := at(off)
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			} else {
				c = color.NRGBA{R: at(off), G: at(off + 1), B: at(off + 2), A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

// FrameCount reports the number of frames a tensor carries along its batch
// axis. Non-batched tensors count as a single frame.
func FrameCount(t *tensor.Dense) int {
	if t == nil {
		return 0
	}
	shape := t.Shape()
	if len(shape) == 4 {
		return shape[0]
	}
	return 1
}

// elementReader returns an accessor converting the tensor's backing data at a
// flat offset into a uint8 sample. Float data is scaled by 255 and truncated,
// not rounded, to match the host pipeline's cast semantics.
func elementReader(t *tensor.Dense) (func(i int) uint8, error) {
	switch data := t.Data().(type) {
	case []uint8:
		return func(i int) uint8 { return data[i] }, nil
	case []float32:
		return func(i int) uint8 { return uint8(data[i] * 255) }, nil
	case []float64:
		return func(i int) uint8 { return uint8(data[i] * 255) }, nil
	default:
		return nil, errors.Errorf("unsupported tensor element type %v, want uint8, float32 or float64", t.Dtype())
	}
}
