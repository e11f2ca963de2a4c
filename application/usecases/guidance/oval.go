package guidance_usecases

import (
	"photogate.io/application/constants"
	"photogate.io/application/utils"
	"photogate.io/entities"
)

// OvalDimensions is the face-alignment overlay for one viewport. The camera
// sees a chin-to-eyebrow face box, not the full printed head, so the output
// head range is scaled down by the head-to-face ratio before it is projected
// onto the viewport.
type OvalDimensions struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// acceptable detected-face heights, in viewport pixels
	MinFaceHeight float64 `json:"min_face_height"`
	MaxFaceHeight float64 `json:"max_face_height"`

	// acceptable detected-face heights as fractions of the viewport height
	MinFaceFrac float64 `json:"min_face_frac"`
	MaxFaceFrac float64 `json:"max_face_frac"`
}

// ovalGeometry is the viewport-independent part, derived once per standard.
type ovalGeometry struct {
	faceMinFrac float64
	faceMaxFrac float64
	centerYFrac float64
}

func geometryFromSpec(spec entities.SpecPx) ovalGeometry {
	return ovalGeometry{
		faceMinFrac: spec.HeadMin / spec.H * constants.FACE_TO_HEAD_RATIO,
		faceMaxFrac: spec.HeadMax / spec.H * constants.FACE_TO_HEAD_RATIO,
		centerYFrac: utils.ClampFloat(
			1-spec.EyeFromBottom/spec.H,
			constants.GUIDANCE_OVAL_CENTER_Y_MIN,
			constants.GUIDANCE_OVAL_CENTER_Y_MAX,
		),
	}
}

func (g ovalGeometry) project(viewportW, viewportH float64) OvalDimensions {
	if viewportW <= 0 || viewportH <= 0 {
		return OvalDimensions{}
	}
	height := viewportH * g.faceMaxFrac * constants.GUIDANCE_OVAL_PADDING
	return OvalDimensions{
		Width:         height * constants.GUIDANCE_OVAL_ASPECT,
		Height:        height,
		CenterX:       viewportW / 2,
		CenterY:       g.centerYFrac * viewportH,
		MinFaceHeight: viewportH * g.faceMinFrac,
		MaxFaceHeight: viewportH * g.faceMaxFrac,
		MinFaceFrac:   g.faceMinFrac,
		MaxFaceFrac:   g.faceMaxFrac,
	}
}
