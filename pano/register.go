package pano

import (
	"github.com/pano360/go-preview360/node"
)

// Register adds both preview nodes to the registry. The host integration
// layer calls this once at startup.
func Register(r *node.Registry) error {
	if err := r.Register(NewViewerNode()); err != nil {
		return err
	}
	return r.Register(NewVideoViewerNode())
}
