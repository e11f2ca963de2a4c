package imagequality

import (
	"fmt"
	"math"

	"photogate.io/application/constants"
	"photogate.io/application/utils"
	"photogate.io/infrastructure/imagequality/types"
)

func generateReportID() string {
	return utils.GenerateULIDString()
}

func degenerateOutcome() types.CheckOutcome {
	return types.CheckOutcome{
		Passed:   false,
		Score:    0,
		Severity: types.SeverityFail,
		Message:  "Image data could not be analyzed",
	}
}

// CheckSharpness bands the Laplacian-variance blur score.
func (s *Service) CheckSharpness(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	score := math.Min(100, metrics.BlurScore/(2*constants.BLUR_THRESHOLD)*100)
	if metrics.BlurScore < constants.BLUR_FAIL_THRESHOLD {
		return types.CheckOutcome{
			Passed:   false,
			Score:    score,
			Severity: types.SeverityFail,
			Message:  "Image is too blurry — retake with steadier focus",
		}
	}
	if metrics.BlurScore < constants.BLUR_THRESHOLD {
		return types.CheckOutcome{
			Passed:   false,
			Score:    score,
			Severity: types.SeverityWarn,
			Message:  "Image looks slightly soft",
		}
	}
	return types.CheckOutcome{
		Passed:   true,
		Score:    score,
		Severity: types.SeverityPass,
		Message:  "Image is sharp",
	}
}

// CheckExposure bands the mean luma against the acceptable window.
func (s *Service) CheckExposure(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	mid := (constants.EXPOSURE_MIN_LUMA + constants.EXPOSURE_MAX_LUMA) / 2
	halfWindow := (constants.EXPOSURE_MAX_LUMA - constants.EXPOSURE_MIN_LUMA) / 2
	score := math.Max(0, 100*(1-math.Abs(metrics.Brightness-mid)/(2*halfWindow)))

	switch {
	case metrics.Brightness < constants.EXPOSURE_HARD_MIN_LUMA:
		return types.CheckOutcome{Passed: false, Score: score, Severity: types.SeverityFail, Message: "Photo is severely underexposed"}
	case metrics.Brightness > constants.EXPOSURE_HARD_MAX_LUMA:
		return types.CheckOutcome{Passed: false, Score: score, Severity: types.SeverityFail, Message: "Photo is severely overexposed"}
	case metrics.IsUnderexposed:
		return types.CheckOutcome{Passed: false, Score: score, Severity: types.SeverityWarn, Message: "Photo is underexposed — add more light"}
	case metrics.IsOverexposed:
		return types.CheckOutcome{Passed: false, Score: score, Severity: types.SeverityWarn, Message: "Photo is overexposed — reduce lighting"}
	}
	return types.CheckOutcome{Passed: true, Score: score, Severity: types.SeverityPass, Message: "Exposure looks good"}
}

// CheckBackground verifies the corner patches read as plain white.
func (s *Service) CheckBackground(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	score := metrics.BackgroundWhiteness * 100
	if metrics.BackgroundIsWhite {
		return types.CheckOutcome{Passed: true, Score: score, Severity: types.SeverityPass, Message: "Background is white"}
	}
	return types.CheckOutcome{
		Passed:   false,
		Score:    score,
		Severity: types.SeverityWarn,
		Message:  fmt.Sprintf("Background is not plain white (whiteness %.0f%%)", score),
	}
}

// CheckHalo flags background-removal halo artifacts at the subject edge.
func (s *Service) CheckHalo(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	score := (1 - metrics.HaloScore) * 100
	if metrics.HasHaloArtifacts {
		return types.CheckOutcome{
			Passed:   false,
			Score:    score,
			Severity: types.SeverityWarn,
			Message:  "Bright halo detected around the subject — re-run background removal",
		}
	}
	return types.CheckOutcome{Passed: true, Score: score, Severity: types.SeverityPass, Message: "Subject edges look clean"}
}

// CheckManipulation flags unnatural skin tones / suspicious smoothing.
func (s *Service) CheckManipulation(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	score := 100 - metrics.ManipulationScore
	if metrics.LikelyManipulated {
		return types.CheckOutcome{
			Passed:   false,
			Score:    score,
			Severity: types.SeverityWarn,
			Message:  "Skin tones look unnatural — avoid filters and heavy retouching",
		}
	}
	return types.CheckOutcome{Passed: true, Score: score, Severity: types.SeverityPass, Message: "Skin tones look natural"}
}

// CheckNoise flags high sensor noise.
func (s *Service) CheckNoise(metrics types.QualityMetrics) types.CheckOutcome {
	if !metrics.Valid {
		return degenerateOutcome()
	}
	score := math.Max(0, 100-metrics.NoiseLevel*constants.NOISE_SCORE_SLOPE)
	if metrics.NoiseLevel > constants.NOISE_WARN_THRESHOLD {
		return types.CheckOutcome{
			Passed:   false,
			Score:    score,
			Severity: types.SeverityWarn,
			Message:  "Image is noisy — use better lighting or a lower ISO",
		}
	}
	return types.CheckOutcome{Passed: true, Score: score, Severity: types.SeverityPass, Message: "Noise level is acceptable"}
}

// CheckResolution bands min(width,height) against the fixed cutoffs.
func (s *Service) CheckResolution(width, height int) types.CheckOutcome {
	minDim := width
	if height < minDim {
		minDim = height
	}
	if minDim <= 0 {
		return types.CheckOutcome{Passed: false, Score: 0, Severity: types.SeverityFail, Message: "Image has no usable dimensions"}
	}
	switch {
	case minDim >= constants.RESOLUTION_PASS_MIN:
		return types.CheckOutcome{Passed: true, Score: 100, Severity: types.SeverityPass, Message: fmt.Sprintf("Resolution %dx%d is sufficient", width, height)}
	case minDim >= constants.RESOLUTION_WARN_MIN:
		return types.CheckOutcome{
			Passed:   false,
			Score:    60,
			Severity: types.SeverityWarn,
			Message:  fmt.Sprintf("Resolution %dx%d is below the recommended %dpx — prints may look soft", width, height, constants.RESOLUTION_PASS_MIN),
		}
	default:
		return types.CheckOutcome{
			Passed:   false,
			Score:    20,
			Severity: types.SeverityFail,
			Message:  fmt.Sprintf("Resolution %dx%d is too low for printing", width, height),
		}
	}
}
