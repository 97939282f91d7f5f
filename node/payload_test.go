package node

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The JSON keys are a wire contract with the host's UI layer; renaming any
// of them breaks the client viewer.
func TestPayload_StillJSON(t *testing.T) {
	out, err := json.Marshal(StillPayload("data:image/png;base64,AAAA"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ui":{"pano_image":"data:image/png;base64,AAAA"}}`, string(out),
		"still payloads must carry only pano_image")
}

func TestPayload_SequenceJSON(t *testing.T) {
	p := &Payload{UI: Update{
		PanoVideoPreview: "u0",
		PanoVideoFrames:  []string{"u0", "u1"},
		FrameCount:       "2",
		FPS:              "24",
		VideoType:        "360_equirectangular",
	}}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ui":{
		"pano_video_preview":"u0",
		"pano_video_frames":["u0","u1"],
		"frame_count":"2",
		"fps":"24",
		"video_type":"360_equirectangular"
	}}`, string(out))
}

func TestPayload_ErrorJSON(t *testing.T) {
	out, err := json.Marshal(ErrorPayload("no frames found in input"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ui":{"error":"no frames found in input"}}`, string(out))
}
