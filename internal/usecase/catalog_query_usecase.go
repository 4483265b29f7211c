package usecase

import (
	"context"
	"errors"
	"strings"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"
)

var (
	ErrInvalidBrandName = errors.New("invalid brand name")
	ErrInvalidModelName = errors.New("invalid model name")
	ErrInvalidModelID   = errors.New("invalid model id")
	ErrInvalidFaultID   = errors.New("invalid fault id")
)

const defaultSuggestionLimit = 5

// ModelResolution is the tri-state outcome of resolving typed brand/model
// names to catalog ids: Resolved=false with a nil error means "unresolved",
// which is an informational state, not a failure.
type ModelResolution struct {
	Resolved bool
	Brand    entities.Brand
	Model    entities.Model
}

// ICatalogQueryUseCase resolves human-entered names to catalog identifiers
// and fetches filtered intervention candidates and ranked fault suggestions.

type ICatalogQueryUseCase interface {
	ResolveModel(ctx context.Context, brandName, modelName string) (ModelResolution, error)
	ListBrands(ctx context.Context) ([]entities.Brand, error)
	ListFaults(ctx context.Context, category string) ([]entities.Fault, error)
	ListInterventions(ctx context.Context, modelID, faultID string) ([]entities.InterventionTemplate, error)
	SuggestFaults(ctx context.Context, modelID string, limit int) ([]entities.FaultSuggestion, error)
}

type CatalogQueryUseCase struct {
	catalog interfaces.ICatalogService
}

var _ ICatalogQueryUseCase = (*CatalogQueryUseCase)(nil)

func NewCatalogQueryUseCase(catalog interfaces.ICatalogService) *CatalogQueryUseCase {
	return &CatalogQueryUseCase{catalog: catalog}
}

// ResolveModel looks up the brand list, then the model list scoped to the
// matched brand, comparing names case-insensitively after trimming. A brand
// or model with no match stops resolution and returns unresolved; only a
// failing catalog call is an error.
func (u *CatalogQueryUseCase) ResolveModel(ctx context.Context, brandName, modelName string) (ModelResolution, error) {
	brandName = strings.TrimSpace(brandName)
	if brandName == "" {
		return ModelResolution{}, ErrInvalidBrandName
	}
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return ModelResolution{}, ErrInvalidModelName
	}

	brands, err := u.catalog.ListBrands(ctx)
	if err != nil {
		return ModelResolution{}, err
	}
	var brand entities.Brand
	found := false
	for _, b := range brands {
		if strings.EqualFold(strings.TrimSpace(b.Name), brandName) {
			brand = b
			found = true
			break
		}
	}
	if !found {
		return ModelResolution{}, nil
	}

	models, err := u.catalog.ListModels(ctx, brand.ID)
	if err != nil {
		return ModelResolution{}, err
	}
	for _, m := range models {
		if strings.EqualFold(strings.TrimSpace(m.Name), modelName) {
			return ModelResolution{Resolved: true, Brand: brand, Model: m}, nil
		}
	}
	return ModelResolution{}, nil
}

func (u *CatalogQueryUseCase) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	return u.catalog.ListBrands(ctx)
}

func (u *CatalogQueryUseCase) ListFaults(ctx context.Context, category string) ([]entities.Fault, error) {
	return u.catalog.ListFaults(ctx, strings.TrimSpace(category))
}

// ListInterventions fetches the eligible intervention templates for a
// (model, fault) pair. Zero rows is a valid empty result. The call is
// side-effect-free and idempotent, so callers may cache it.
func (u *CatalogQueryUseCase) ListInterventions(ctx context.Context, modelID, faultID string) ([]entities.InterventionTemplate, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, ErrInvalidModelID
	}
	faultID = strings.TrimSpace(faultID)
	if faultID == "" {
		return nil, ErrInvalidFaultID
	}
	return u.catalog.ListInterventions(ctx, modelID, faultID)
}

// SuggestFaults returns the faults most frequently diagnosed on the model,
// most frequent first. A non-positive limit falls back to the default.
func (u *CatalogQueryUseCase) SuggestFaults(ctx context.Context, modelID string, limit int) ([]entities.FaultSuggestion, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, ErrInvalidModelID
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	return u.catalog.SuggestFaults(ctx, modelID, limit)
}
