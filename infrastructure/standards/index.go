package standards

import (
	"os"
	"sort"
	"strconv"
	"sync"

	apperrors "photogate.io/application/appErrors"
	"photogate.io/application/constants"
	"photogate.io/entities"
	"photogate.io/infrastructure/env"
	"photogate.io/infrastructure/logger"
	"photogate.io/infrastructure/validator"
)

// Registry is the read-only catalog of photo standards plus the pixel-space
// projection cache. All methods are safe for concurrent use; the catalog is
// never mutated after construction.
type Registry struct {
	dpi       float64
	byID      map[string]entities.PhotoStandard
	order     []string
	mu        sync.RWMutex
	specCache map[entities.PhotoStandard]entities.SpecPx
}

// NewRegistry validates every catalog entry and builds the registry. A
// malformed entry is a hard error: it means shipped catalog data is wrong.
func NewRegistry(catalog []entities.PhotoStandard) (*Registry, error) {
	registry := &Registry{
		dpi:       outputDPIFromEnv(),
		byID:      map[string]entities.PhotoStandard{},
		specCache: map[entities.PhotoStandard]entities.SpecPx{},
	}
	for _, standard := range catalog {
		if errs := validator.ValidatorInstance.ValidateStruct(standard); errs != nil {
			return nil, &apperrors.InvalidStandardError{StandardID: standard.ID, Reason: (*errs)[0].Error()}
		}
		if _, exists := registry.byID[standard.ID]; exists {
			return nil, &apperrors.DuplicateStandardError{StandardID: standard.ID}
		}
		if standard.HeadMin > standard.HeadMax {
			return nil, &apperrors.InvalidStandardError{StandardID: standard.ID, Reason: "head_min exceeds head_max"}
		}
		if standard.HeadMax >= standard.Height {
			return nil, &apperrors.InvalidStandardError{StandardID: standard.ID, Reason: "head_max must be smaller than photo height"}
		}
		if standard.EyeFromBottom >= standard.Height {
			return nil, &apperrors.InvalidStandardError{StandardID: standard.ID, Reason: "eye_from_bottom must be smaller than photo height"}
		}
		registry.byID[standard.ID] = standard
		registry.order = append(registry.order, standard.ID)
	}
	logger.Info("standards catalog loaded", logger.LoggerOptions{
		Key:  "count",
		Data: len(registry.order),
	}, logger.LoggerOptions{
		Key:  "dpi",
		Data: registry.dpi,
	})
	return registry, nil
}

// DefaultRegistry loads the embedded multi-country catalog.
func DefaultRegistry() (*Registry, error) {
	env.LoadEnv()
	catalog, err := loadEmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(catalog)
}

// DPI returns the output resolution this registry projects standards at.
func (r *Registry) DPI() float64 {
	return r.dpi
}

// Get returns the standard for an id, if present.
func (r *Registry) Get(id string) (entities.PhotoStandard, bool) {
	standard, ok := r.byID[id]
	return standard, ok
}

// Require is Get for callers that treat a missing id as a caller bug, such
// as resolving an id that arrived from a stored user preference.
func (r *Registry) Require(id string) (entities.PhotoStandard, error) {
	standard, ok := r.byID[id]
	if !ok {
		return entities.PhotoStandard{}, &apperrors.UnknownStandardError{StandardID: id}
	}
	return standard, nil
}

// ListGrouped returns the catalog grouped by region, each group sorted by
// display name for stable UI rendering.
func (r *Registry) ListGrouped() map[string][]entities.PhotoStandard {
	grouped := map[string][]entities.PhotoStandard{}
	for _, id := range r.order {
		standard := r.byID[id]
		grouped[standard.Group] = append(grouped[standard.Group], standard)
	}
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].Name < grouped[group][j].Name
		})
	}
	return grouped
}

// SpecToPx projects a standard into pixel space at the registry DPI.
// Results are cached by the full standard value, so a caller-adjusted copy
// carrying a cached id still projects fresh instead of reusing the entry
// for the registry's own value.
func (r *Registry) SpecToPx(standard entities.PhotoStandard) (entities.SpecPx, error) {
	r.mu.RLock()
	cached, ok := r.specCache[standard]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var pxPerUnit float64
	switch standard.Unit {
	case entities.UnitInch:
		pxPerUnit = r.dpi
	case entities.UnitMM:
		pxPerUnit = r.dpi / constants.MM_PER_INCH
	default:
		return entities.SpecPx{}, &apperrors.UnsupportedUnitError{StandardID: standard.ID, Unit: standard.Unit}
	}

	spec := entities.SpecPx{
		W:             standard.Width * pxPerUnit,
		H:             standard.Height * pxPerUnit,
		HeadMin:       standard.HeadMin * pxPerUnit,
		HeadMax:       standard.HeadMax * pxPerUnit,
		EyeFromBottom: standard.EyeFromBottom * pxPerUnit,
	}
	spec.HeadTarget = (spec.HeadMin + spec.HeadMax) / 2

	r.mu.Lock()
	r.specCache[standard] = spec
	r.mu.Unlock()
	return spec, nil
}

func outputDPIFromEnv() float64 {
	raw := os.Getenv("PHOTO_OUTPUT_DPI")
	if raw == "" {
		return constants.DEFAULT_OUTPUT_DPI
	}
	dpi, err := strconv.ParseFloat(raw, 64)
	if err != nil || dpi <= 0 {
		logger.Warning("invalid PHOTO_OUTPUT_DPI, falling back to default", logger.LoggerOptions{
			Key:  "value",
			Data: raw,
		})
		return constants.DEFAULT_OUTPUT_DPI
	}
	return dpi
}
