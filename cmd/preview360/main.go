// Command preview360 is a standalone harness around the panorama preview
// nodes: it loads an image or a frame directory from disk, invokes the
// matching node the way the host would, and writes the resulting UI payload
// as JSON. It can also fetch the client viewer's runtime files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/lmittmann/tint"
	"gorgonia.org/tensor"

	"github.com/pano360/go-preview360/assets"
	"github.com/pano360/go-preview360/images"
	"github.com/pano360/go-preview360/node"
	"github.com/pano360/go-preview360/pano"
	"github.com/pano360/go-preview360/util"
)

func main() {
	var (
		imagePath   string
		framesDir   string
		fps         int
		maxWidth    int
		outPath     string
		fetchAssets bool
		libDir      string
	)
	flag.StringVar(&imagePath, "image", "", "Path to a panorama image (.png, .jpg)")
	flag.StringVar(&framesDir, "frames", "", "Directory of numbered frame images")
	flag.IntVar(&fps, "fps", pano.DefaultFPS, "Playback rate for frame sequences")
	flag.IntVar(&maxWidth, "max-width", -1, "Max length of the longer side, -1 to disable resizing")
	flag.StringVar(&outPath, "out", "", "Write the UI payload JSON here instead of stdout")
	flag.BoolVar(&fetchAssets, "fetch-assets", false, "Fetch the viewer runtime files and exit")
	flag.StringVar(&libDir, "lib-dir", filepath.Join("js", "lib"), "Destination directory for -fetch-assets")
	flag.Parse()

	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05",
		}),
	)

	if fetchAssets {
		fetcher := &assets.Fetcher{LibDir: libDir, Logger: logger}
		if err := fetcher.Fetch(context.Background()); err != nil {
			logger.Error("fetching viewer runtime failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if (imagePath == "") == (framesDir == "") {
		logger.Error("exactly one of -image or -frames is required")
		flag.Usage()
		os.Exit(2)
	}

	registry := node.NewRegistry()
	if err := pano.Register(registry); err != nil {
		logger.Error("registering nodes failed", "error", err)
		os.Exit(1)
	}

	var payload *node.Payload
	var err error
	if imagePath != "" {
		payload, err = previewStill(registry, logger, imagePath, maxWidth)
	} else {
		payload, err = previewSequence(registry, logger, framesDir, fps, maxWidth)
	}
	if err != nil {
		logger.Error("preview failed", "error", err)
		os.Exit(1)
	}

	if err := writePayload(payload, outPath); err != nil {
		logger.Error("writing payload failed", "error", err)
		os.Exit(1)
	}
}

// previewStill runs the still-image node against one file on disk.
func previewStill(registry *node.Registry, logger *slog.Logger, path string, maxWidth int) (*node.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := util.DecodeTensor(data)
	if err != nil {
		return nil, err
	}
	logTensor(logger, t, path)

	n, _ := registry.Get("PanoramaViewerNode")
	return n.Invoke(node.Invocation{
		Images: t,
		Params: map[string]int{"max_width": maxWidth},
	})
}

// previewSequence runs the video node against a directory of numbered
// frames.
func previewSequence(registry *node.Registry, logger *slog.Logger, dir string, fps, maxWidth int) (*node.Payload, error) {
	files, err := util.LoadDirectoryImageFiles(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded frame files", "dir", dir, "count", len(files))

	frames := make([]*tensor.Dense, 0, len(files))
	for _, f := range files {
		t, err := util.DecodeTensor(f.Data)
		if err != nil {
			logger.Error("decoding frame failed", "path", f.Path, "error", err)
			return nil, err
		}
		frames = append(frames, t)
	}

	batch, err := util.StackFrames(frames)
	if err != nil {
		return nil, err
	}
	logTensor(logger, batch, dir)

	n, _ := registry.Get("PanoramaVideoViewerNode")
	return n.Invoke(node.Invocation{
		Images: batch,
		Params: map[string]int{"fps": fps, "max_width": maxWidth},
	})
}

// logTensor reports the input's dimensions and warns when the projection is
// not the 2:1 shape the viewer expects.
func logTensor(logger *slog.Logger, t *tensor.Dense, source string) {
	shape := t.Shape()
	var h, w int
	switch len(shape) {
	case 2, 3:
		h, w = shape[0], shape[1]
	case 4:
		h, w = shape[1], shape[2]
	default:
		return
	}

	logger.Info("loaded panorama input",
		"source", source,
		"width", w,
		"height", h,
		"frames", images.FrameCount(t),
		"class", images.NearestPanoResolution(w).String(),
	)
	if !images.IsEquirectangular(w, h) {
		logger.Warn("input is not 2:1 equirectangular, the viewer may distort it",
			"aspect", images.AspectRatio(w, h))
	}
}

// writePayload marshals the UI payload to path, or stdout when path is
// empty.
func writePayload(p *node.Payload, path string) error {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
