// Package util loads panorama frames from disk into host image tensors.
// It exists for the CLI harness and tests; inside a real host the pipeline
// supplies tensors directly.
package util

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Frame is the frame number parsed from the file name.
	Frame int
}

// LoadDirectoryImageFiles reads all image files from a directory, ordered by
// the frame number embedded in each file name (the trailing digits before
// the extension, e.g. frame-0042.png or shot_7.jpg). Files without a frame
// number sort by name after the numbered ones.
//
// Arguments:
//   - dir: Directory path containing image files.
//
// Returns:
//   - []ImageFile: Slice of ImageFile in playback order.
//   - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		switch ext {
		case ".jpg", ".jpeg", ".png":
			imgPath := filepath.Join(dir, file.Name())
			data, readErr := os.ReadFile(imgPath)
			if readErr != nil {
				return nil, readErr
			}
			images = append(images, ImageFile{
				Path:  imgPath,
				Data:  data,
				Frame: frameNumber(file.Name(), ext),
			})
		}
	}

	sort.Slice(images, func(i, j int) bool {
		if images[i].Frame != images[j].Frame {
			return images[i].Frame < images[j].Frame
		}
		return images[i].Path < images[j].Path
	})

	return images, nil
}

// frameNumber parses the trailing digit run of a file name, e.g. 42 from
// "frame-0042.png". Returns -1 when the name carries no frame number.
func frameNumber(name, ext string) int {
	stem := strings.TrimSuffix(name, ext)
	end := len(stem)
	start := end
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == end {
		return -1
	}
	n, err := strconv.Atoi(stem[start:end])
	if err != nil {
		return -1
	}
	return n
}

// DecodeTensor decodes PNG or JPEG bytes into an (H,W,3) uint8 image tensor,
// the shape the preview nodes consume.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *tensor.Dense: The decoded tensor.
//   - error: Error if decoding fails.
func DecodeTensor(data []byte) (*tensor.Dense, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decoding image failed")
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	backing := make([]uint8, h*w*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			backing[i] = uint8(r >> 8)
			backing[i+1] = uint8(g >> 8)
			backing[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return tensor.New(tensor.WithShape(h, w, 3), tensor.Of(tensor.Uint8), tensor.WithBacking(backing)), nil
}

// StackFrames stacks same-shaped (H,W,C) tensors into one (B,H,W,C) batch
// tensor for the video preview node.
//
// Arguments:
//   - frames: The frame tensors in playback order.
//
// Returns:
//   - *tensor.Dense: The batch tensor.
//   - error: Error if the slice is empty or the shapes or dtypes differ.
func StackFrames(frames []*tensor.Dense) (*tensor.Dense, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to stack")
	}

	first := frames[0].Shape()
	if len(first) != 3 {
		return nil, errors.Errorf("expected frame rank 3, got %d", len(first))
	}
	h, w, c := first[0], first[1], first[2]

	frameLen := h * w * c
	backing := make([]uint8, 0, len(frames)*frameLen)
	for i, f := range frames {
		if !f.Shape().Eq(first) {
			return nil, errors.Errorf("frame %d shape %v does not match %v", i, f.Shape(), first)
		}
		data, ok := f.Data().([]uint8)
		if !ok {
			return nil, errors.Errorf("frame %d is not a uint8 tensor", i)
		}
		backing = append(backing, data...)
	}
	return tensor.New(
		tensor.WithShape(len(frames), h, w, c),
		tensor.Of(tensor.Uint8),
		tensor.WithBacking(backing),
	), nil
}
