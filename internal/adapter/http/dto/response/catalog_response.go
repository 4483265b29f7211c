package response

import (
	"time"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase"
)

// ResolutionResponse carries the tri-state outcome of a brand/model
// resolution: resolved=false with a 200 status is the "unresolved" state,
// deliberately distinct from a transport error.
type ResolutionResponse struct {
	Resolved bool            `json:"resolved"`
	Brand    *entities.Brand `json:"brand,omitempty"`
	Model    *entities.Model `json:"model,omitempty"`
}

func FromResolution(r usecase.ModelResolution) ResolutionResponse {
	if !r.Resolved {
		return ResolutionResponse{}
	}
	brand := r.Brand
	model := r.Model
	return ResolutionResponse{Resolved: true, Brand: &brand, Model: &model}
}

type InterventionTemplateResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	BasePrice        float64 `json:"base_price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Difficulty       string  `json:"difficulty,omitempty"`
}

func FromInterventionTemplates(templates []entities.InterventionTemplate) []InterventionTemplateResponse {
	out := make([]InterventionTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, InterventionTemplateResponse{
			ID:               t.ID,
			Name:             t.Name,
			BasePrice:        t.BasePrice,
			EstimatedMinutes: t.EstimatedMinutes,
			Difficulty:       t.Difficulty,
		})
	}
	return out
}

type FaultSuggestionResponse struct {
	FaultID   string `json:"fault_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Frequency int    `json:"frequency"`
}

func FromFaultSuggestions(suggestions []entities.FaultSuggestion) []FaultSuggestionResponse {
	out := make([]FaultSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, FaultSuggestionResponse{
			FaultID:   s.Fault.ID,
			Name:      s.Fault.Name,
			Category:  s.Fault.Category,
			Frequency: s.Frequency,
		})
	}
	return out
}

type DepositPaymentResponse struct {
	ID      string    `json:"id"`
	DraftID string    `json:"draft_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:      p.ID,
		DraftID: p.DraftID,
		Amount:  p.Amount,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}
