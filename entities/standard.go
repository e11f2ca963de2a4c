package entities

// Physical unit a PhotoStandard's dimensions are expressed in.
// Anything else in the catalog is a data bug and is rejected at load time.
const (
	UnitInch = "inch"
	UnitMM   = "mm"
)

// PhotoStandard describes one government photo specification. Loaded once
// from the embedded catalog, keyed by ID, and never mutated afterwards.
type PhotoStandard struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Flag           string  `json:"flag"`
	Group          string  `json:"group" validate:"required"`
	Width          float64 `json:"width" validate:"required,gt=0"`
	Height         float64 `json:"height" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required,photo_unit"`
	HeadMin        float64 `json:"head_min" validate:"required,gt=0"`
	HeadMax        float64 `json:"head_max" validate:"required,gt=0"`
	EyeFromBottom  float64 `json:"eye_from_bottom" validate:"required,gt=0"`
	Background     string  `json:"background"`
	GlassesAllowed bool    `json:"glasses_allowed"`
}

// SpecPx is a PhotoStandard projected into pixel space at a fixed DPI.
// HeadTarget is the midpoint of the allowed head-height range.
type SpecPx struct {
	W             float64 `json:"w"`
	H             float64 `json:"h"`
	HeadMin       float64 `json:"head_min"`
	HeadMax       float64 `json:"head_max"`
	HeadTarget    float64 `json:"head_target"`
	EyeFromBottom float64 `json:"eye_from_bottom"`
}
