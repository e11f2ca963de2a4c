package guidance_usecases

// RenderRect is contain-fit letterbox geometry: the largest rectangle with
// the video's aspect ratio that fits the container, centered.
type RenderRect struct {
	RenderW float64 `json:"render_w"`
	RenderH float64 `json:"render_h"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

func ComputeRenderRect(videoW, videoH, containerW, containerH float64) RenderRect {
	if videoW <= 0 || videoH <= 0 || containerW <= 0 || containerH <= 0 {
		return RenderRect{}
	}
	scale := containerW / videoW
	if vertical := containerH / videoH; vertical < scale {
		scale = vertical
	}
	renderW := videoW * scale
	renderH := videoH * scale
	return RenderRect{
		RenderW: renderW,
		RenderH: renderH,
		OffsetX: (containerW - renderW) / 2,
		OffsetY: (containerH - renderH) / 2,
	}
}
