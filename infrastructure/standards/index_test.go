package standards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "photogate.io/application/appErrors"
	"photogate.io/entities"
)

func validStandard(id string) entities.PhotoStandard {
	return entities.PhotoStandard{
		ID:            id,
		Name:          "Test Standard " + id,
		Group:         "Test",
		Width:         2,
		Height:        2,
		Unit:          entities.UnitInch,
		HeadMin:       1,
		HeadMax:       1.375,
		EyeFromBottom: 1.25,
	}
}

func TestNewRegistryRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		catalog []entities.PhotoStandard
	}{
		{
			name: "duplicate id",
			catalog: []entities.PhotoStandard{
				validStandard("dup"),
				validStandard("dup"),
			},
		},
		{
			name: "head min above head max",
			catalog: []entities.PhotoStandard{
				func() entities.PhotoStandard {
					s := validStandard("inverted")
					s.HeadMin = 1.5
					s.HeadMax = 1.0
					return s
				}(),
			},
		},
		{
			name: "head max taller than photo",
			catalog: []entities.PhotoStandard{
				func() entities.PhotoStandard {
					s := validStandard("giant")
					s.HeadMax = 2.5
					return s
				}(),
			},
		},
		{
			name: "eye line above photo top",
			catalog: []entities.PhotoStandard{
				func() entities.PhotoStandard {
					s := validStandard("eyes")
					s.EyeFromBottom = 2.5
					return s
				}(),
			},
		},
		{
			name: "unknown unit",
			catalog: []entities.PhotoStandard{
				func() entities.PhotoStandard {
					s := validStandard("cm")
					s.Unit = "cm"
					return s
				}(),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.catalog)
			assert.Error(t, err)
			assert.Nil(t, registry)
		})
	}
}

func TestSpecToPxInchConversion(t *testing.T) {
	registry, err := NewRegistry([]entities.PhotoStandard{validStandard("us_like")})
	require.NoError(t, err)

	standard, ok := registry.Get("us_like")
	require.True(t, ok)

	spec, err := registry.SpecToPx(standard)
	require.NoError(t, err)

	assert.InDelta(t, 600, spec.W, 1e-9)
	assert.InDelta(t, 600, spec.H, 1e-9)
	assert.InDelta(t, 300, spec.HeadMin, 1e-9)
	assert.InDelta(t, 412.5, spec.HeadMax, 1e-9)
	assert.InDelta(t, 375, spec.EyeFromBottom, 1e-9)
}

func TestSpecToPxMMConversion(t *testing.T) {
	standard := entities.PhotoStandard{
		ID:            "uk_like",
		Name:          "UK Like",
		Group:         "Test",
		Width:         35,
		Height:        45,
		Unit:          entities.UnitMM,
		HeadMin:       29,
		HeadMax:       34,
		EyeFromBottom: 30,
	}
	registry, err := NewRegistry([]entities.PhotoStandard{standard})
	require.NoError(t, err)

	spec, err := registry.SpecToPx(standard)
	require.NoError(t, err)

	pxPerMM := 300.0 / 25.4
	assert.InDelta(t, 35*pxPerMM, spec.W, 1e-6)
	assert.InDelta(t, 45*pxPerMM, spec.H, 1e-6)
	assert.InDelta(t, 29*pxPerMM, spec.HeadMin, 1e-6)
	assert.InDelta(t, 34*pxPerMM, spec.HeadMax, 1e-6)
	assert.InDelta(t, 30*pxPerMM, spec.EyeFromBottom, 1e-6)
}

func TestSpecToPxHeadTargetIsMidpoint(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	for _, group := range registry.ListGrouped() {
		for _, standard := range group {
			spec, err := registry.SpecToPx(standard)
			require.NoError(t, err)
			assert.InDelta(t, (spec.HeadMin+spec.HeadMax)/2, spec.HeadTarget, 1e-9, standard.ID)
			assert.LessOrEqual(t, spec.HeadMin, spec.HeadTarget, standard.ID)
			assert.LessOrEqual(t, spec.HeadTarget, spec.HeadMax, standard.ID)
		}
	}
}

func TestSpecToPxUnsupportedUnit(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	bad := validStandard("broken")
	bad.Unit = "furlong"
	_, err = registry.SpecToPx(bad)
	require.Error(t, err)

	var unitErr *apperrors.UnsupportedUnitError
	assert.ErrorAs(t, err, &unitErr)
}

func TestSpecToPxIsIdempotent(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	standard, ok := registry.Get("us")
	require.True(t, ok)

	first, err := registry.SpecToPx(standard)
	require.NoError(t, err)
	second, err := registry.SpecToPx(standard)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSpecToPxMutatedCopyProjectsFresh(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	standard, ok := registry.Get("us")
	require.True(t, ok)
	original, err := registry.SpecToPx(standard)
	require.NoError(t, err)

	custom := standard
	custom.Height = 3
	customSpec, err := registry.SpecToPx(custom)
	require.NoError(t, err)
	assert.InDelta(t, 900, customSpec.H, 1e-9)

	// the registry's own value keeps its projection
	again, err := registry.SpecToPx(standard)
	require.NoError(t, err)
	assert.Equal(t, original, again)
	assert.InDelta(t, 600, again.H, 1e-9)
}

func TestDefaultRegistryCatalog(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)
	assert.InDelta(t, 300, registry.DPI(), 1e-9)

	for _, id := range []string{"us", "us_visa", "uk", "schengen", "canada", "india", "china", "japan"} {
		_, ok := registry.Get(id)
		assert.True(t, ok, id)
	}
	_, ok := registry.Get("atlantis")
	assert.False(t, ok)

	_, err = registry.Require("us")
	assert.NoError(t, err)
	_, err = registry.Require("atlantis")
	var unknownErr *apperrors.UnknownStandardError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestListGroupedSortsByName(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	grouped := registry.ListGrouped()
	require.NotEmpty(t, grouped)
	for group, standards := range grouped {
		for i := 1; i < len(standards); i++ {
			assert.LessOrEqual(t, standards[i-1].Name, standards[i].Name, group)
		}
	}
}
