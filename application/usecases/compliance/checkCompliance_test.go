package compliance_usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "photogate.io/application/appErrors"
	"photogate.io/entities"
	iqtypes "photogate.io/infrastructure/imagequality/types"
	"photogate.io/infrastructure/standards"
)

func invalidMetrics() iqtypes.QualityMetrics {
	return iqtypes.QualityMetrics{}
}

func testRegistry(t *testing.T) *standards.Registry {
	t.Helper()
	registry, err := standards.DefaultRegistry()
	require.NoError(t, err)
	return registry
}

func usStandard(t *testing.T, registry *standards.Registry) entities.PhotoStandard {
	t.Helper()
	standard, ok := registry.Get("us")
	require.True(t, ok)
	return standard
}

// centeredFace builds a face whose box center sits exactly at the image
// center with the crown safely inside the frame.
func centeredFace(width, height int) *entities.FaceData {
	w, h := 200.0, 250.0
	x := float64(width)/2 - w/2
	y := float64(height)/2 - h/2
	return &entities.FaceData{
		X: x, Y: y, W: w, H: h,
		LeftEye:  &entities.Point{X: x + w*0.3, Y: y + h*0.4},
		RightEye: &entities.Point{X: x + w*0.7, Y: y + h*0.4},
	}
}

func checkIDs(checks []entities.ComplianceCheck) []string {
	ids := make([]string, 0, len(checks))
	for _, check := range checks {
		ids = append(ids, check.ID)
	}
	return ids
}

func findCheck(t *testing.T, checks []entities.ComplianceCheck, id string) entities.ComplianceCheck {
	t.Helper()
	for _, check := range checks {
		if check.ID == id {
			return check
		}
	}
	t.Fatalf("check %q not found", id)
	return entities.ComplianceCheck{}
}

func TestCheckComplianceAllPassScenario(t *testing.T) {
	registry := testRegistry(t)
	checks, err := CheckCompliance(Params{
		Width:             1000,
		Height:            800,
		Face:              centeredFace(1000, 800),
		Standard:          usStandard(t, registry),
		Registry:          registry,
		BackgroundRemoved: true,
		UserZoomPercent:   100,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"face", "head_size", "eye_position", "head_framing",
		"head_centering", "background", "resolution", "glasses",
	}, checkIDs(checks))
	for _, check := range checks {
		assert.Equal(t, entities.CheckStatusPass, check.Status, check.ID)
	}
}

func TestCheckComplianceEndToEndUSScenario(t *testing.T) {
	registry := testRegistry(t)
	face := &entities.FaceData{
		X: 150, Y: 100, W: 200, H: 250,
		LeftEye:  &entities.Point{X: 210, Y: 200},
		RightEye: &entities.Point{X: 290, Y: 200},
	}
	checks, err := CheckCompliance(Params{
		Width:             1000,
		Height:            800,
		Face:              face,
		Standard:          usStandard(t, registry),
		Registry:          registry,
		BackgroundRemoved: true,
		UserZoomPercent:   100,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.CheckStatusPass, findCheck(t, checks, "face").Status)
	assert.Equal(t, entities.CheckStatusPass, findCheck(t, checks, "eye_position").Status)
	assert.Equal(t, entities.CheckStatusPass, findCheck(t, checks, "background").Status)
	assert.Equal(t, entities.CheckStatusPass, findCheck(t, checks, "resolution").Status)
	// at 100% zoom the projected head lands exactly on the target midpoint,
	// which is inside [head_min, head_max] by construction
	assert.Equal(t, entities.CheckStatusPass, findCheck(t, checks, "head_size").Status)
}

func TestCheckComplianceNoFace(t *testing.T) {
	registry := testRegistry(t)

	t.Run("us standard keeps glasses advisory", func(t *testing.T) {
		checks, err := CheckCompliance(Params{
			Width:    1000,
			Height:   800,
			Standard: usStandard(t, registry),
			Registry: registry,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"face", "head_size", "eye_position", "background", "resolution", "glasses",
		}, checkIDs(checks))
		assert.Equal(t, entities.CheckStatusFail, findCheck(t, checks, "face").Status)
		assert.Equal(t, entities.CheckStatusPending, findCheck(t, checks, "head_size").Status)
		assert.Equal(t, entities.CheckStatusPending, findCheck(t, checks, "eye_position").Status)
	})

	t.Run("non-us standard has no glasses advisory", func(t *testing.T) {
		standard, ok := registry.Get("uk")
		require.True(t, ok)
		checks, err := CheckCompliance(Params{
			Width:    1000,
			Height:   800,
			Standard: standard,
			Registry: registry,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"face", "head_size", "eye_position", "background", "resolution",
		}, checkIDs(checks))
	})
}

func TestCheckComplianceHeadSizeBands(t *testing.T) {
	registry := testRegistry(t)
	standard := usStandard(t, registry)

	tests := []struct {
		name     string
		zoom     float64
		status   entities.CheckStatus
		contains string
	}{
		{"zoomed out too far", 70, entities.CheckStatusWarn, "zoom in"},
		{"default zoom lands on target", 100, entities.CheckStatusPass, ""},
		{"zero zoom defaults to 100", 0, entities.CheckStatusPass, ""},
		{"zoomed in too far", 130, entities.CheckStatusWarn, "zoom out"},
		{"absurd zoom clamps instead of failing", 10000, entities.CheckStatusWarn, "zoom out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks, err := CheckCompliance(Params{
				Width:           1000,
				Height:          800,
				Face:            centeredFace(1000, 800),
				Standard:        standard,
				Registry:        registry,
				UserZoomPercent: tt.zoom,
			})
			require.NoError(t, err)
			check := findCheck(t, checks, "head_size")
			assert.Equal(t, tt.status, check.Status)
			if tt.contains != "" {
				assert.Contains(t, check.Message, tt.contains)
			}
			// head size never hard-fails, zoom is user-correctable
			assert.NotEqual(t, entities.CheckStatusFail, check.Status)
		})
	}
}

func TestCheckComplianceHeadFraming(t *testing.T) {
	registry := testRegistry(t)
	face := centeredFace(1000, 800)
	face.Y = 50 // crown = 50 - 250*0.30 = -25

	checks, err := CheckCompliance(Params{
		Width:    1000,
		Height:   800,
		Face:     face,
		Standard: usStandard(t, registry),
		Registry: registry,
	})
	require.NoError(t, err)
	check := findCheck(t, checks, "head_framing")
	assert.Equal(t, entities.CheckStatusFail, check.Status)
	assert.Contains(t, check.Message, "cut off")
}

func TestCheckComplianceHeadCentering(t *testing.T) {
	registry := testRegistry(t)
	standard := usStandard(t, registry)

	tests := []struct {
		name     string
		shiftX   float64
		shiftY   float64
		status   entities.CheckStatus
		contains string
	}{
		{"centered", 0, 0, entities.CheckStatusPass, ""},
		{"slightly right", 150, 0, entities.CheckStatusWarn, "right"},
		{"far left", -250, 0, entities.CheckStatusFail, "left"},
		{"slightly low", 0, 180, entities.CheckStatusWarn, "low"},
		{"far high", 0, -280, entities.CheckStatusFail, "high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := centeredFace(1000, 800)
			face.X += tt.shiftX
			face.Y += tt.shiftY
			checks, err := CheckCompliance(Params{
				Width:    1000,
				Height:   800,
				Face:     face,
				Standard: standard,
				Registry: registry,
			})
			require.NoError(t, err)
			check := findCheck(t, checks, "head_centering")
			assert.Equal(t, tt.status, check.Status)
			if tt.contains != "" {
				assert.Contains(t, check.Message, tt.contains)
			}
		})
	}
}

func TestCheckComplianceEyePosition(t *testing.T) {
	registry := testRegistry(t)
	face := centeredFace(1000, 800)
	face.RightEye = nil

	checks, err := CheckCompliance(Params{
		Width:    1000,
		Height:   800,
		Face:     face,
		Standard: usStandard(t, registry),
		Registry: registry,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CheckStatusWarn, findCheck(t, checks, "eye_position").Status)
}

func TestCheckComplianceQualityChecks(t *testing.T) {
	registry := testRegistry(t)
	tilt := 8.0
	quality := &QualityInput{
		Sharpness: &SharpnessInput{BlurScore: 30},
		Tilt:      &TiltInput{AngleDegrees: tilt},
		Color:     &ColorInput{IsGrayscale: true},
		Lighting:  &LightingInput{Uniformity: 0.4},
		Exposure:  &ExposureInput{MeanLuma: 60},
		Edge:      &EdgeInput{HaloScore: 0.5, HasHalo: true},
	}

	checks, err := CheckCompliance(Params{
		Width:             1000,
		Height:            800,
		Face:              centeredFace(1000, 800),
		Standard:          usStandard(t, registry),
		Registry:          registry,
		BackgroundRemoved: true,
		UserZoomPercent:   100,
		Quality:           quality,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"face", "head_size", "eye_position", "head_framing", "head_centering",
		"background", "resolution", "sharpness", "face_angle", "color_photo",
		"lighting", "exposure", "edge_quality", "glasses",
	}, checkIDs(checks))

	assert.Equal(t, entities.CheckStatusFail, findCheck(t, checks, "sharpness").Status)
	assert.Equal(t, entities.CheckStatusWarn, findCheck(t, checks, "face_angle").Status)
	assert.Equal(t, entities.CheckStatusFail, findCheck(t, checks, "color_photo").Status)
	assert.Equal(t, entities.CheckStatusWarn, findCheck(t, checks, "lighting").Status)
	assert.Equal(t, entities.CheckStatusWarn, findCheck(t, checks, "exposure").Status)
	assert.Equal(t, entities.CheckStatusWarn, findCheck(t, checks, "edge_quality").Status)
}

func TestCheckComplianceIsIdempotent(t *testing.T) {
	registry := testRegistry(t)
	params := Params{
		Width:             1000,
		Height:            800,
		Face:              centeredFace(1000, 800),
		Standard:          usStandard(t, registry),
		Registry:          registry,
		BackgroundRemoved: true,
		UserZoomPercent:   100,
	}
	first, err := CheckCompliance(params)
	require.NoError(t, err)
	second, err := CheckCompliance(params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckComplianceBadStandardUnit(t *testing.T) {
	registry := testRegistry(t)
	standard := usStandard(t, registry)
	standard.ID = "broken"
	standard.Unit = "furlong"

	checks, err := CheckCompliance(Params{
		Width:    1000,
		Height:   800,
		Standard: standard,
		Registry: registry,
	})
	require.Error(t, err)
	assert.Nil(t, checks)

	var unitErr *apperrors.UnsupportedUnitError
	assert.ErrorAs(t, err, &unitErr)
}

func TestQualityInputFromMetrics(t *testing.T) {
	t.Run("invalid metrics yield nil", func(t *testing.T) {
		assert.Nil(t, QualityInputFromMetrics(invalidMetrics(), nil))
	})

	t.Run("tilt only present when supplied", func(t *testing.T) {
		metrics := invalidMetrics()
		metrics.Valid = true
		metrics.BlurScore = 150
		metrics.Brightness = 120

		input := QualityInputFromMetrics(metrics, nil)
		require.NotNil(t, input)
		assert.Nil(t, input.Tilt)
		require.NotNil(t, input.Sharpness)
		assert.InDelta(t, 150, input.Sharpness.BlurScore, 1e-9)

		tilt := 3.5
		input = QualityInputFromMetrics(metrics, &tilt)
		require.NotNil(t, input.Tilt)
		assert.InDelta(t, 3.5, input.Tilt.AngleDegrees, 1e-9)
	})
}
