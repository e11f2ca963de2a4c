package guidance_usecases

import (
	"math"

	"photogate.io/application/constants"
	"photogate.io/entities"
)

// condition category names, also used as keys in CameraConditions.Issues
var (
	ISSUE_NO_FACE    = "no_face"
	ISSUE_POSITION   = "position"
	ISSUE_TOO_FAR    = "too_far"
	ISSUE_TOO_CLOSE  = "too_close"
	ISSUE_TOO_DARK   = "too_dark"
	ISSUE_TOO_BRIGHT = "too_bright"
	ISSUE_TILTED     = "tilted"
)

var guidanceText = map[string]string{
	ISSUE_NO_FACE:    "Position your face inside the oval",
	ISSUE_POSITION:   "Center your face inside the oval",
	ISSUE_TOO_FAR:    "Move closer to the camera",
	ISSUE_TOO_CLOSE:  "Move back from the camera",
	ISSUE_TOO_DARK:   "Find a brighter spot",
	ISSUE_TOO_BRIGHT: "Reduce the lighting",
	ISSUE_TILTED:     "Keep your head level",
}

// CameraConditions is the per-tick verdict over one frame. Offsets are
// normalized to [-1, 1] relative to half the frame dimension so overlays can
// render directional arrows without knowing pixel sizes.
type CameraConditions struct {
	FacePresent    bool     `json:"face_present"`
	Centered       bool     `json:"centered"`
	GoodDistance   bool     `json:"good_distance"`
	GoodBrightness bool     `json:"good_brightness"`
	Level          bool     `json:"level"`
	OffsetX        float64  `json:"offset_x"`
	OffsetY        float64  `json:"offset_y"`
	TiltDegrees    float64  `json:"tilt_degrees"`
	AllGood        bool     `json:"all_good"`
	ReadyToCapture bool     `json:"ready_to_capture"`
	Issues         []string `json:"issues"`
	Guidance       string   `json:"guidance"`

	brightnessIssue string
}

func analyzeConditions(frame VideoFrame, face *entities.FaceData, oval OvalDimensions) CameraConditions {
	conditions := CameraConditions{
		GoodBrightness: true,
		Level:          true,
	}

	if frame.HasPixels() {
		conditions.GoodBrightness = analyzeBrightness(frame, &conditions)
	}

	if face == nil {
		conditions.Issues = append(conditions.Issues, ISSUE_NO_FACE)
		appendBrightnessIssues(&conditions)
		conditions.Guidance = guidanceText[conditions.Issues[0]]
		return conditions
	}
	conditions.FacePresent = true

	frameW := float64(frame.Width)
	frameH := float64(frame.Height)
	if frameW > 0 && frameH > 0 {
		// centering is judged against the viewport center; the oval only
		// contributes the acceptable face-height range
		deltaX := face.CenterX() - frameW/2
		deltaY := face.CenterY() - frameH/2
		conditions.OffsetX = clampUnit(deltaX / (frameW / 2))
		conditions.OffsetY = clampUnit(deltaY / (frameH / 2))
		conditions.Centered = math.Abs(deltaX)/frameW <= constants.GUIDANCE_CENTER_X_TOLERANCE &&
			math.Abs(deltaY)/frameH <= constants.GUIDANCE_CENTER_Y_TOLERANCE

		faceFrac := face.H / frameH
		switch {
		case faceFrac < oval.MinFaceFrac*constants.GUIDANCE_DISTANCE_MARGIN:
			conditions.Issues = append(conditions.Issues, ISSUE_TOO_FAR)
		case faceFrac > oval.MaxFaceFrac*constants.GUIDANCE_DISTANCE_MARGIN:
			conditions.Issues = append(conditions.Issues, ISSUE_TOO_CLOSE)
		default:
			conditions.GoodDistance = true
		}
	}

	if !conditions.Centered {
		conditions.Issues = append([]string{ISSUE_POSITION}, conditions.Issues...)
	}

	appendBrightnessIssues(&conditions)

	if face.HasBothEyes() {
		conditions.TiltDegrees = eyeTiltDegrees(face)
		if math.Abs(conditions.TiltDegrees) > constants.GUIDANCE_TILT_TOLERANCE_DEG {
			conditions.Level = false
			conditions.Issues = append(conditions.Issues, ISSUE_TILTED)
		}
	}

	conditions.AllGood = conditions.FacePresent && conditions.Centered &&
		conditions.GoodDistance && conditions.GoodBrightness && conditions.Level
	conditions.ReadyToCapture = conditions.AllGood
	if conditions.AllGood {
		conditions.Guidance = "Hold still"
	} else if len(conditions.Issues) > 0 {
		conditions.Guidance = guidanceText[conditions.Issues[0]]
	}
	return conditions
}

// analyzeBrightness averages luma over the central 50%x50% region. Returns
// whether brightness is inside the acceptable band; the specific failure is
// recorded later so issue ordering stays stable.
func analyzeBrightness(frame VideoFrame, conditions *CameraConditions) bool {
	startX := frame.Width / 4
	startY := frame.Height / 4
	endX := startX + frame.Width/2
	endY := startY + frame.Height/2

	sum := 0.0
	count := 0
	for y := startY; y < endY; y += 2 {
		for x := startX; x < endX; x += 2 {
			offset := (y*frame.Width + x) * frame.Channels
			r := float64(frame.Pixels[offset])
			g := float64(frame.Pixels[offset+1])
			b := float64(frame.Pixels[offset+2])
			sum += 0.299*r + 0.587*g + 0.114*b
			count++
		}
	}
	if count == 0 {
		return true
	}
	mean := sum / float64(count)
	if mean < constants.GUIDANCE_DARK_LUMA_RATIO*255 {
		conditions.brightnessIssue = ISSUE_TOO_DARK
		return false
	}
	if mean > constants.GUIDANCE_BRIGHT_LUMA_RATIO*255 {
		conditions.brightnessIssue = ISSUE_TOO_BRIGHT
		return false
	}
	return true
}

func appendBrightnessIssues(conditions *CameraConditions) {
	if conditions.brightnessIssue != "" {
		conditions.Issues = append(conditions.Issues, conditions.brightnessIssue)
	}
}

func eyeTiltDegrees(face *entities.FaceData) float64 {
	deltaY := face.RightEye.Y - face.LeftEye.Y
	deltaX := face.RightEye.X - face.LeftEye.X
	if deltaX == 0 && deltaY == 0 {
		return 0
	}
	return math.Atan2(deltaY, deltaX) * 180 / math.Pi
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
