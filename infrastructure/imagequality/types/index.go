package types

const (
	SeverityPass = "pass"
	SeverityWarn = "warn"
	SeverityFail = "fail"
)

// QualityMetrics is the raw measurement output of a single Analyze call.
// Valid is false when the pixel buffer was degenerate (zero/negative
// dimensions, too few channels, short buffer); every metric is then zero and
// every check built on top degrades to fail instead of panicking.
type QualityMetrics struct {
	Valid    bool `json:"valid"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Channels int  `json:"channels"`

	BlurScore float64 `json:"blur_score"`
	IsBlurry  bool    `json:"is_blurry"`

	Brightness     float64 `json:"brightness"`
	Contrast       float64 `json:"contrast"`
	IsUnderexposed bool    `json:"is_underexposed"`
	IsOverexposed  bool    `json:"is_overexposed"`

	BackgroundWhiteness float64 `json:"background_whiteness"`
	BackgroundIsWhite   bool    `json:"background_is_white"`

	HaloScore        float64 `json:"halo_score"`
	HasHaloArtifacts bool    `json:"has_halo_artifacts"`

	UnnaturalSkinFraction float64 `json:"unnatural_skin_fraction"`
	ManipulationScore     float64 `json:"manipulation_score"`
	LikelyManipulated     bool    `json:"likely_manipulated"`

	NoiseLevel         float64 `json:"noise_level"`
	IsGrayscale        bool    `json:"is_grayscale"`
	LightingUniformity float64 `json:"lighting_uniformity"`
}

// CheckOutcome is one quality verdict derived from QualityMetrics.
type CheckOutcome struct {
	Passed   bool    `json:"passed"`
	Score    float64 `json:"score"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
}

// NamedOutcome pairs an outcome with its stable check id for reporting.
type NamedOutcome struct {
	ID      string       `json:"id"`
	Outcome CheckOutcome `json:"outcome"`
}

// QualityReport bundles the metrics and every check outcome for external
// reporting tools. Created fresh per analyzed image.
type QualityReport struct {
	ID      string         `json:"id"`
	Metrics QualityMetrics `json:"metrics"`
	Checks  []NamedOutcome `json:"checks"`
	Issues  []string       `json:"issues"`
}
