package pano

import (
	"strconv"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/pano360/go-preview360/images"
	"github.com/pano360/go-preview360/node"
)

const (
	// DefaultVideoMaxWidth bounds sequence frames; tighter than the still
	// default since every frame is encoded and shipped to the client.
	DefaultVideoMaxWidth = 2048

	// DefaultFPS is the playback rate when the host supplies none.
	DefaultFPS = 30

	// VideoType tags sequence payloads so the client selects the
	// equirectangular video viewer.
	VideoType = "360_equirectangular"
)

// VideoViewerNode previews an ordered sequence of equirectangular frames as
// a panorama video. The input must carry a batch dimension; there is no
// implicit single-frame promotion. Like ViewerNode it is a terminal output
// node.
type VideoViewerNode struct{}

// NewVideoViewerNode returns the panorama video preview node.
func NewVideoViewerNode() *VideoViewerNode {
	return &VideoViewerNode{}
}

// Name implements node.Node.
func (n *VideoViewerNode) Name() string { return "PanoramaVideoViewerNode" }

// DisplayName implements node.Node.
func (n *VideoViewerNode) DisplayName() string { return "Preview 360 Video Panorama" }

// Category implements node.Node.
func (n *VideoViewerNode) Category() string { return Category }

// IsOutput implements node.Node.
func (n *VideoViewerNode) IsOutput() bool { return true }

// Inputs declares the frame tensor, the fps parameter and the max_width
// parameter.
func (n *VideoViewerNode) Inputs() []node.InputSpec {
	return []node.InputSpec{
		{Name: "video_frames", Type: node.TypeImage},
		{
			Name:    "fps",
			Type:    node.TypeInt,
			Default: node.Int(DefaultFPS),
			Min:     node.Int(1),
			Max:     node.Int(120),
			Step:    node.Int(1),
			Tooltip: "Frames per second for video playback",
		},
		{
			Name:    "max_width",
			Type:    node.TypeInt,
			Default: node.Int(DefaultVideoMaxWidth),
			Tooltip: maxWidthTooltip,
		},
	}
}

// Invoke implements node.Node.
func (n *VideoViewerNode) Invoke(inv node.Invocation) (*node.Payload, error) {
	return n.ViewVideoPano(
		inv.Images,
		inv.IntParam("fps", DefaultFPS),
		inv.IntParam("max_width", DefaultVideoMaxWidth),
	)
}

// ViewVideoPano normalizes every frame of a batched tensor independently
// (dtype conversion, grayscale promotion, proportional downscale past
// maxWidth) and returns the data URIs in batch order together with playback
// metadata. There is no partial success: the first frame that fails to
// convert rejects the whole invocation.
//
// A tensor without a batch dimension rejects the invocation. An empty batch
// returns a soft-fail payload keyed error, not a fault.
//
// Arguments:
//   - frames: The frame tensor, shape (B,H,W,C).
//   - fps: The playback rate in frames per second.
//   - maxWidth: The maximum length of a frame's longer side, or <= 0 to
//     disable resizing.
//
// Returns:
//   - *node.Payload: The UI payload carrying the frame sequence.
//   - error: An error if the input is not batched or a frame fails.
func (n *VideoViewerNode) ViewVideoPano(frames *tensor.Dense, fps, maxWidth int) (*node.Payload, error) {
	if frames == nil {
		return nil, errors.New("video frames tensor is nil")
	}
	if len(frames.Shape()) != 4 {
		return nil, errors.Errorf("expected video frames in batch format (B,H,W,C), got rank %d", len(frames.Shape()))
	}

	count := images.FrameCount(frames)
	if count == 0 {
		return node.ErrorPayload("no frames found in input"), nil
	}

	frameData := make([]string, 0, count)
	for i := 0; i < count; i++ {
		frame, err := images.NormalizeFrame(frames, i)
		if err != nil {
			return nil, errors.Wrapf(err, "normalizing frame %d failed", i)
		}
		uri, err := images.EncodeDataURI(images.FitWidth(frame, maxWidth))
		if err != nil {
			return nil, errors.Wrapf(err, "encoding frame %d failed", i)
		}
		frameData = append(frameData, uri)
	}

	return &node.Payload{UI: node.Update{
		PanoVideoPreview: frameData[0],
		PanoVideoFrames:  frameData,
		FrameCount:       strconv.Itoa(count),
		FPS:              strconv.Itoa(fps),
		VideoType:        VideoType,
	}}, nil
}
