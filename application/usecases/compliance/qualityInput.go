package compliance_usecases

import (
	iqtypes "photogate.io/infrastructure/imagequality/types"
)

// QualityInput carries the optional per-analysis inputs for the conditional
// compliance checks. Each kind is independently present-or-absent; a nil
// variant simply omits its check from the engine output.
type SharpnessInput struct {
	BlurScore float64
}

type TiltInput struct {
	AngleDegrees float64
}

type ColorInput struct {
	IsGrayscale bool
}

type LightingInput struct {
	Uniformity float64
}

type ExposureInput struct {
	MeanLuma float64
}

type EdgeInput struct {
	HaloScore float64
	HasHalo   bool
}

type QualityInput struct {
	Sharpness *SharpnessInput
	Tilt      *TiltInput
	Color     *ColorInput
	Lighting  *LightingInput
	Exposure  *ExposureInput
	Edge      *EdgeInput
}

// QualityInputFromMetrics adapts an analyzer result into engine input.
// Tilt comes from landmark geometry, not pixels, so it is supplied
// separately. Invalid metrics yield nil: the engine then emits only the
// geometry checks, exactly as if no analysis had run.
func QualityInputFromMetrics(metrics iqtypes.QualityMetrics, tiltDegrees *float64) *QualityInput {
	if !metrics.Valid {
		return nil
	}
	input := &QualityInput{
		Sharpness: &SharpnessInput{BlurScore: metrics.BlurScore},
		Color:     &ColorInput{IsGrayscale: metrics.IsGrayscale},
		Lighting:  &LightingInput{Uniformity: metrics.LightingUniformity},
		Exposure:  &ExposureInput{MeanLuma: metrics.Brightness},
		Edge:      &EdgeInput{HaloScore: metrics.HaloScore, HasHalo: metrics.HasHaloArtifacts},
	}
	if tiltDegrees != nil {
		input.Tilt = &TiltInput{AngleDegrees: *tiltDegrees}
	}
	return input
}
