package imagequality

import (
	"photogate.io/application/constants"
	"photogate.io/infrastructure/imagequality/types"
	"photogate.io/infrastructure/logger"
)

// Service computes pixel-level quality metrics for an uploaded or captured
// photo. It is stateless; a single instance may be shared across goroutines.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Analyze measures every quality metric over a raw interleaved RGB/RGBA
// buffer. It is total: degenerate input yields zeroed metrics with
// Valid=false rather than a panic or an error.
func (s *Service) Analyze(pixels []byte, width, height, channels int) types.QualityMetrics {
	metrics := types.QualityMetrics{Width: width, Height: height, Channels: channels}
	if width <= 0 || height <= 0 || channels < 3 || len(pixels) < width*height*channels {
		logger.Warning("quality analysis skipped, degenerate pixel buffer", logger.LoggerOptions{
			Key:  "dimensions",
			Data: []int{width, height, channels},
		}, logger.LoggerOptions{
			Key:  "buffer_len",
			Data: len(pixels),
		})
		return metrics
	}
	metrics.Valid = true

	metrics.BlurScore = s.laplacianVariance(pixels, width, height, channels)
	metrics.IsBlurry = metrics.BlurScore < constants.BLUR_THRESHOLD

	metrics.Brightness, metrics.Contrast = s.lumaStats(pixels, width, height, channels)
	metrics.IsUnderexposed = metrics.Brightness < constants.EXPOSURE_MIN_LUMA
	metrics.IsOverexposed = metrics.Brightness > constants.EXPOSURE_MAX_LUMA

	metrics.BackgroundWhiteness, metrics.BackgroundIsWhite = s.cornerWhiteness(pixels, width, height, channels)

	metrics.HaloScore = s.haloHitRatio(pixels, width, height, channels)
	metrics.HasHaloArtifacts = metrics.HaloScore > constants.HALO_HIT_RATIO

	metrics.NoiseLevel = s.localGradient(pixels, width, height, channels)
	metrics.UnnaturalSkinFraction = s.unnaturalSkinFraction(pixels, width, height, channels)
	metrics.ManipulationScore = s.manipulationScore(metrics.UnnaturalSkinFraction, metrics.NoiseLevel)
	metrics.LikelyManipulated = metrics.ManipulationScore > constants.MANIPULATION_SCORE_THRESHOLD

	metrics.IsGrayscale = s.isGrayscale(pixels, width, height, channels)
	metrics.LightingUniformity = s.lightingUniformity(pixels, width, height, channels)

	return metrics
}

// Report runs every check against one Analyze result and tags it with a
// fresh id so external reporting tools can reference it.
func (s *Service) Report(metrics types.QualityMetrics) types.QualityReport {
	checks := []types.NamedOutcome{
		{ID: "sharpness", Outcome: s.CheckSharpness(metrics)},
		{ID: "exposure", Outcome: s.CheckExposure(metrics)},
		{ID: "background", Outcome: s.CheckBackground(metrics)},
		{ID: "edge_quality", Outcome: s.CheckHalo(metrics)},
		{ID: "skin_tone", Outcome: s.CheckManipulation(metrics)},
		{ID: "noise", Outcome: s.CheckNoise(metrics)},
		{ID: "resolution", Outcome: s.CheckResolution(metrics.Width, metrics.Height)},
	}
	report := types.QualityReport{
		ID:      generateReportID(),
		Metrics: metrics,
		Checks:  checks,
	}
	for _, check := range checks {
		if !check.Outcome.Passed {
			report.Issues = append(report.Issues, check.ID)
		}
	}
	return report
}
