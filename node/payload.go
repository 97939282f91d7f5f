package node

// Payload is the value a terminal node hands back to the host for rendering.
// The host forwards the nested UI mapping to the client-side viewer.
type Payload struct {
	UI Update `json:"ui"`
}

// Update is the UI mapping of a preview payload. Exactly one of the three
// shapes is populated per invocation: a still image, a frame sequence, or a
// soft error.
type Update struct {
	// PanoImage is the data URI of a still panorama preview.
	PanoImage string `json:"pano_image,omitempty"`

	// PanoVideoPreview is the first frame of a sequence, shown before
	// playback starts.
	PanoVideoPreview string `json:"pano_video_preview,omitempty"`
	// PanoVideoFrames is the full frame sequence in playback order.
	PanoVideoFrames []string `json:"pano_video_frames,omitempty"`
	// FrameCount is the number of frames, string-encoded for the client.
	FrameCount string `json:"frame_count,omitempty"`
	// FPS is the playback rate, string-encoded for the client.
	FPS string `json:"fps,omitempty"`
	// VideoType tags the projection so the client picks the right viewer.
	VideoType string `json:"video_type,omitempty"`

	// Error carries a soft failure that still updates the UI.
	Error string `json:"error,omitempty"`
}

// StillPayload wraps a single data URI as a still-image UI payload.
func StillPayload(dataURI string) *Payload {
	return &Payload{UI: Update{PanoImage: dataURI}}
}

// ErrorPayload wraps msg as a soft-fail UI payload.
func ErrorPayload(msg string) *Payload {
	return &Payload{UI: Update{Error: msg}}
}
