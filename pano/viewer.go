// Package pano implements the panorama preview nodes: a still-image viewer
// and a frame-sequence ("video") viewer for equirectangular content.
package pano

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/pano360/go-preview360/images"
	"github.com/pano360/go-preview360/node"
)

const (
	// Category is the host palette section both nodes are listed under.
	Category = "panorama"

	// DefaultImageMaxWidth bounds still previews; larger panoramas are
	// downscaled before encoding.
	DefaultImageMaxWidth = 4096

	maxWidthTooltip = "The max width to use. Images larger than the specified value will be " +
		"resized. Larger sizes may run slower. Set to -1 for no resizing."
)

// ViewerNode previews a single equirectangular panorama. It is a terminal
// output node: it returns a UI payload with one base64 PNG data URI and no
// graph-visible outputs.
type ViewerNode struct{}

// NewViewerNode returns the still-panorama preview node.
func NewViewerNode() *ViewerNode {
	return &ViewerNode{}
}

// Name implements node.Node.
func (n *ViewerNode) Name() string { return "PanoramaViewerNode" }

// DisplayName implements node.Node.
func (n *ViewerNode) DisplayName() string { return "Preview 360 Panorama" }

// Category implements node.Node.
func (n *ViewerNode) Category() string { return Category }

// IsOutput implements node.Node.
func (n *ViewerNode) IsOutput() bool { return true }

// Inputs declares the image tensor and the max_width parameter.
func (n *ViewerNode) Inputs() []node.InputSpec {
	return []node.InputSpec{
		{Name: "images", Type: node.TypeImage},
		{
			Name:    "max_width",
			Type:    node.TypeInt,
			Default: node.Int(DefaultImageMaxWidth),
			Tooltip: maxWidthTooltip,
		},
	}
}

// Invoke implements node.Node.
func (n *ViewerNode) Invoke(inv node.Invocation) (*node.Payload, error) {
	return n.ViewPano(inv.Images, inv.IntParam("max_width", DefaultImageMaxWidth))
}

// ViewPano normalizes the first entry of the image tensor into a 3-channel
// uint8 raster, downscales it when its longer side exceeds maxWidth
// (maxWidth <= 0 disables resizing), and returns the PNG data URI as a UI
// payload keyed pano_image.
//
// Batched tensors contribute only their first entry; later entries are
// discarded. Malformed tensors reject the invocation with no partial
// payload.
//
// Arguments:
//   - imgs: The image tensor, shape (B,H,W,C), (H,W,C) or (H,W).
//   - maxWidth: The maximum length of the longer side, or <= 0 to disable.
//
// Returns:
//   - *node.Payload: The UI payload carrying the data URI.
//   - error: An error if normalization or encoding fails.
func (n *ViewerNode) ViewPano(imgs *tensor.Dense, maxWidth int) (*node.Payload, error) {
	frame, err := images.NormalizeFrame(imgs, 0)
	if err != nil {
		return nil, errors.Wrap(err, "normalizing panorama failed")
	}

	uri, err := images.EncodeDataURI(images.FitWidth(frame, maxWidth))
	if err != nil {
		return nil, errors.Wrap(err, "encoding panorama failed")
	}
	return node.StillPayload(uri), nil
}
