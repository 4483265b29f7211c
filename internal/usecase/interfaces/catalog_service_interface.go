package interfaces

import (
	"context"

	"taller_movil/internal/domain/entities"
)

// ICatalogService abstracts the external catalog lookup service.
//
// Every call distinguishes "empty" from "error": a nil error with a
// zero-length result means the catalog simply has nothing to offer, and
// callers must treat that as an informational state, never a failure.

type ICatalogService interface {
	ListBrands(ctx context.Context) ([]entities.Brand, error)
	ListModels(ctx context.Context, brandID string) ([]entities.Model, error)
	ListFaults(ctx context.Context, category string) ([]entities.Fault, error)
	ListInterventions(ctx context.Context, modelID, faultID string) ([]entities.InterventionTemplate, error)
	SuggestFaults(ctx context.Context, modelID string, limit int) ([]entities.FaultSuggestion, error)
}
