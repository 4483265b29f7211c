package entities

// Catalog entities mirror the rows served by the external catalog service.
// They are read-only reference data from the engine's point of view.

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Model struct {
	ID      string `json:"id"`
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

type Fault struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// InterventionTemplate is a catalog-suggested repair action for a
// (model, fault) pair; the UI turns a template into an InterventionLine.
type InterventionTemplate struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	BasePrice        float64 `json:"base_price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Difficulty       string  `json:"difficulty,omitempty"`
}

// FaultSuggestion ranks a fault by how often it was diagnosed on a model.
type FaultSuggestion struct {
	Fault     Fault `json:"fault"`
	Frequency int   `json:"frequency"`
}
