package compliance_usecases

import (
	"fmt"
	"math"

	"photogate.io/application/constants"
	"photogate.io/application/utils"
	"photogate.io/entities"
	"photogate.io/infrastructure/imagequality"
	"photogate.io/infrastructure/standards"
)

// Params is one compliance evaluation request. Quality is optional; when nil
// only the geometry and framing checks run.
type Params struct {
	Width             int
	Height            int
	Face              *entities.FaceData
	Standard          entities.PhotoStandard
	Registry          *standards.Registry
	BackgroundRemoved bool
	UserZoomPercent   float64
	Quality           *QualityInput
}

var qualityService = imagequality.NewService()

// CheckCompliance produces the ordered check list for one photo. The order
// is a contract: face-dependent checks first, then background/resolution,
// then any supplied quality checks, then the glasses advisory. The only
// error case is catalog malformation (unknown unit); every photo-level
// problem degrades to a warn/fail/pending status instead.
func CheckCompliance(params Params) ([]entities.ComplianceCheck, error) {
	spec, err := params.Registry.SpecToPx(params.Standard)
	if err != nil {
		return nil, err
	}

	var checks []entities.ComplianceCheck

	if params.Face == nil {
		checks = append(checks, entities.ComplianceCheck{
			ID:      "face",
			Label:   "Face Detection",
			Status:  entities.CheckStatusFail,
			Message: "No face detected — using center crop",
		})
		// checks that need a face never disagree with an absent one
		checks = append(checks, entities.ComplianceCheck{
			ID:      "head_size",
			Label:   "Head Size",
			Status:  entities.CheckStatusPending,
			Message: "Waiting for face detection",
		})
		checks = append(checks, entities.ComplianceCheck{
			ID:      "eye_position",
			Label:   "Eye Position",
			Status:  entities.CheckStatusPending,
			Message: "Waiting for face detection",
		})
	} else {
		checks = append(checks, entities.ComplianceCheck{
			ID:      "face",
			Label:   "Face Detection",
			Status:  entities.CheckStatusPass,
			Message: "Face detected",
		})
		checks = append(checks, headSizeCheck(params.Face, spec, params.UserZoomPercent))
		checks = append(checks, eyePositionCheck(params.Face))
		checks = append(checks, headFramingCheck(params.Face))
		checks = append(checks, headCenteringCheck(params.Face, params.Width, params.Height))
	}

	checks = append(checks, backgroundCheck(params.BackgroundRemoved))
	checks = append(checks, resolutionCheck(params.Width, params.Height))
	checks = append(checks, qualityChecks(params.Quality)...)

	if utils.HasItemString(&constants.GLASSES_ADVISORY_STANDARDS, params.Standard.ID) {
		checks = append(checks, entities.ComplianceCheck{
			ID:      "glasses",
			Label:   "Glasses",
			Status:  entities.CheckStatusPass,
			Message: "Reminder: glasses are not allowed for this document type",
		})
	}

	return checks, nil
}

func headSizeCheck(face *entities.FaceData, spec entities.SpecPx, userZoomPercent float64) entities.ComplianceCheck {
	check := entities.ComplianceCheck{ID: "head_size", Label: "Head Size"}

	estimatedHeadHeight := face.H * constants.HEAD_TO_FACE_RATIO
	if estimatedHeadHeight <= 0 {
		check.Status = entities.CheckStatusWarn
		check.Message = "Head size could not be measured"
		return check
	}

	zoom := userZoomPercent
	if zoom <= 0 {
		zoom = 100
	}
	zoom = utils.ClampFloat(zoom, constants.MIN_USER_ZOOM_PERCENT, constants.MAX_USER_ZOOM_PERCENT)

	baseScale := spec.HeadTarget / estimatedHeadHeight
	headInOutput := estimatedHeadHeight * baseScale * zoom / 100

	switch {
	case headInOutput < spec.HeadMin:
		check.Status = entities.CheckStatusWarn
		check.Message = fmt.Sprintf("Head appears too small (%.0fpx, need %.0f–%.0fpx) — zoom in", headInOutput, spec.HeadMin, spec.HeadMax)
	case headInOutput > spec.HeadMax:
		check.Status = entities.CheckStatusWarn
		check.Message = fmt.Sprintf("Head appears too large (%.0fpx, need %.0f–%.0fpx) — zoom out", headInOutput, spec.HeadMin, spec.HeadMax)
	default:
		check.Status = entities.CheckStatusPass
		check.Message = fmt.Sprintf("Head height %.0fpx is within %.0f–%.0fpx", headInOutput, spec.HeadMin, spec.HeadMax)
	}
	return check
}

func eyePositionCheck(face *entities.FaceData) entities.ComplianceCheck {
	check := entities.ComplianceCheck{ID: "eye_position", Label: "Eye Position"}
	if face.HasBothEyes() {
		check.Status = entities.CheckStatusPass
		check.Message = "Both eyes detected"
		return check
	}
	// missing landmarks do not by themselves indicate a bad photo
	check.Status = entities.CheckStatusWarn
	check.Message = "Could not verify eye positions"
	return check
}

func headFramingCheck(face *entities.FaceData) entities.ComplianceCheck {
	check := entities.ComplianceCheck{ID: "head_framing", Label: "Head Framing"}
	crownY := face.Y - face.H*constants.CROWN_CLEARANCE_RATIO
	if crownY < 0 {
		check.Status = entities.CheckStatusFail
		check.Message = "Top of the head is cut off — retake with more room above the head"
		return check
	}
	check.Status = entities.CheckStatusPass
	check.Message = "Full head is inside the frame"
	return check
}

func headCenteringCheck(face *entities.FaceData, width, height int) entities.ComplianceCheck {
	check := entities.ComplianceCheck{ID: "head_centering", Label: "Head Centering"}
	if width <= 0 || height <= 0 {
		check.Status = entities.CheckStatusFail
		check.Message = "Image has no usable dimensions"
		return check
	}

	offsetX := (face.CenterX() - float64(width)/2) / float64(width)
	offsetY := (face.CenterY() - float64(height)/2) / float64(height)
	absX := math.Abs(offsetX)
	absY := math.Abs(offsetY)

	status := entities.CheckStatusPass
	if absX > constants.CENTER_X_WARN_RATIO || absY > constants.CENTER_Y_WARN_RATIO {
		status = entities.CheckStatusFail
	} else if absX > constants.CENTER_X_PASS_RATIO || absY > constants.CENTER_Y_PASS_RATIO {
		status = entities.CheckStatusWarn
	}

	check.Status = status
	if status == entities.CheckStatusPass {
		check.Message = "Face is centered"
		return check
	}
	check.Message = fmt.Sprintf("Re-center the face (%s)", centeringHint(offsetX, offsetY, absX, absY))
	return check
}

func centeringHint(offsetX, offsetY, absX, absY float64) string {
	if absX >= absY {
		if offsetX > 0 {
			return "face sits too far right"
		}
		return "face sits too far left"
	}
	if offsetY > 0 {
		return "face sits too low"
	}
	return "face sits too high"
}

func backgroundCheck(backgroundRemoved bool) entities.ComplianceCheck {
	check := entities.ComplianceCheck{ID: "background", Label: "Background"}
	if backgroundRemoved {
		check.Status = entities.CheckStatusPass
		check.Message = "Background replaced with plain white"
		return check
	}
	check.Status = entities.CheckStatusWarn
	check.Message = "Background may not meet requirements — enable background removal"
	return check
}

func resolutionCheck(width, height int) entities.ComplianceCheck {
	outcome := qualityService.CheckResolution(width, height)
	check := entities.ComplianceCheck{ID: "resolution", Label: "Resolution", Message: outcome.Message}
	check.Status = entities.CheckStatus(outcome.Severity)
	return check
}

func qualityChecks(quality *QualityInput) []entities.ComplianceCheck {
	if quality == nil {
		return nil
	}
	var checks []entities.ComplianceCheck

	if quality.Sharpness != nil {
		check := entities.ComplianceCheck{ID: "sharpness", Label: "Sharpness"}
		switch {
		case quality.Sharpness.BlurScore < constants.BLUR_FAIL_THRESHOLD:
			check.Status = entities.CheckStatusFail
			check.Message = "Image is too blurry — retake with steadier focus"
		case quality.Sharpness.BlurScore < constants.BLUR_THRESHOLD:
			check.Status = entities.CheckStatusWarn
			check.Message = "Image looks slightly soft"
		default:
			check.Status = entities.CheckStatusPass
			check.Message = "Image is sharp"
		}
		checks = append(checks, check)
	}

	if quality.Tilt != nil {
		check := entities.ComplianceCheck{ID: "face_angle", Label: "Face Angle"}
		if math.Abs(quality.Tilt.AngleDegrees) > constants.FACE_ANGLE_WARN_DEG {
			check.Status = entities.CheckStatusWarn
			check.Message = fmt.Sprintf("Head is tilted %.1f° — keep it level", quality.Tilt.AngleDegrees)
		} else {
			check.Status = entities.CheckStatusPass
			check.Message = "Head is level"
		}
		checks = append(checks, check)
	}

	if quality.Color != nil {
		check := entities.ComplianceCheck{ID: "color_photo", Label: "Color Photo"}
		if quality.Color.IsGrayscale {
			check.Status = entities.CheckStatusFail
			check.Message = "Photo must be in color, not black and white"
		} else {
			check.Status = entities.CheckStatusPass
			check.Message = "Photo is in color"
		}
		checks = append(checks, check)
	}

	if quality.Lighting != nil {
		check := entities.ComplianceCheck{ID: "lighting", Label: "Lighting"}
		if quality.Lighting.Uniformity < constants.LIGHTING_UNIFORMITY_MIN {
			check.Status = entities.CheckStatusWarn
			check.Message = "Lighting is uneven — face one light source directly"
		} else {
			check.Status = entities.CheckStatusPass
			check.Message = "Lighting is even"
		}
		checks = append(checks, check)
	}

	if quality.Exposure != nil {
		check := entities.ComplianceCheck{ID: "exposure", Label: "Exposure"}
		switch {
		case quality.Exposure.MeanLuma < constants.EXPOSURE_HARD_MIN_LUMA:
			check.Status = entities.CheckStatusFail
			check.Message = "Photo is severely underexposed"
		case quality.Exposure.MeanLuma > constants.EXPOSURE_HARD_MAX_LUMA:
			check.Status = entities.CheckStatusFail
			check.Message = "Photo is severely overexposed"
		case quality.Exposure.MeanLuma < constants.EXPOSURE_MIN_LUMA:
			check.Status = entities.CheckStatusWarn
			check.Message = "Photo is underexposed — add more light"
		case quality.Exposure.MeanLuma > constants.EXPOSURE_MAX_LUMA:
			check.Status = entities.CheckStatusWarn
			check.Message = "Photo is overexposed — reduce lighting"
		default:
			check.Status = entities.CheckStatusPass
			check.Message = "Exposure looks good"
		}
		checks = append(checks, check)
	}

	if quality.Edge != nil {
		check := entities.ComplianceCheck{ID: "edge_quality", Label: "Edge Quality"}
		if quality.Edge.HasHalo {
			check.Status = entities.CheckStatusWarn
			check.Message = "Bright halo detected around the subject — re-run background removal"
		} else {
			check.Status = entities.CheckStatusPass
			check.Message = "Subject edges look clean"
		}
		checks = append(checks, check)
	}

	return checks
}
