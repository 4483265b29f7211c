package response

import (
	"time"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase"
)

type CustomerResponse struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	SecondSurname string `json:"second_surname,omitempty"`
	NationalID    string `json:"national_id,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

type DeviceResponse struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	IMEI         string `json:"imei,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Color        string `json:"color,omitempty"`
	Capacity     string `json:"capacity,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Order        int    `json:"order"`
}

type BudgetTotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type DiagnosisBudgetResponse struct {
	DeviceID string                `json:"device_id"`
	Faults   []entities.FaultEntry `json:"faults"`
	Discount float64               `json:"discount"`
	Totals   BudgetTotalsResponse  `json:"totals"`
}

// CompositionResponse is the full aggregate view returned after every
// mutation, so the UI never has to re-fetch derived state separately.
type CompositionResponse struct {
	DraftID             string                    `json:"draft_id"`
	Customer            *CustomerResponse         `json:"customer"`
	Devices             []DeviceResponse          `json:"devices"`
	DiagnosisBudgets    []DiagnosisBudgetResponse `json:"diagnosis_budgets"`
	ActiveSection       string                    `json:"active_section"`
	GlobalDiscount      float64                   `json:"global_discount"`
	Deposit             float64                   `json:"deposit"`
	OrderTotal          float64                   `json:"order_total"`
	Progress            int                       `json:"progress"`
	Valid               bool                      `json:"valid"`
	AllDevicesDiagnosed bool                      `json:"all_devices_diagnosed"`
	SaveState           string                    `json:"save_state"`
}

func FromCompositionView(v usecase.CompositionView) CompositionResponse {
	res := CompositionResponse{
		DraftID:             v.DraftID,
		ActiveSection:       string(v.Snapshot.ActiveSection),
		GlobalDiscount:      v.Snapshot.GlobalDiscount,
		Deposit:             v.Snapshot.Deposit,
		OrderTotal:          v.OrderTotal,
		Progress:            v.Progress,
		Valid:               v.Valid,
		AllDevicesDiagnosed: v.AllDevicesDiagnosed,
		SaveState:           string(v.SaveState),
		Devices:             make([]DeviceResponse, 0, len(v.Snapshot.Devices)),
		DiagnosisBudgets:    make([]DiagnosisBudgetResponse, 0, len(v.Snapshot.DiagnosisBudgets)),
	}
	if v.Snapshot.Customer != nil {
		res.Customer = &CustomerResponse{
			ID:            v.Snapshot.Customer.ID,
			Name:          v.Snapshot.Customer.Name,
			Surname:       v.Snapshot.Customer.Surname,
			SecondSurname: v.Snapshot.Customer.SecondSurname,
			NationalID:    v.Snapshot.Customer.NationalID,
			Phone:         v.Snapshot.Customer.Phone,
			Email:         v.Snapshot.Customer.Email,
			Address:       v.Snapshot.Customer.Address,
		}
	}
	for _, d := range v.Snapshot.Devices {
		res.Devices = append(res.Devices, DeviceResponse{
			ID:           d.ID,
			Brand:        d.Brand,
			Model:        d.Model,
			IMEI:         d.IMEI,
			SerialNumber: d.SerialNumber,
			Color:        d.Color,
			Capacity:     d.Capacity,
			Notes:        d.Notes,
			Order:        d.Order,
		})
	}
	for _, pair := range v.Snapshot.DiagnosisBudgets {
		res.DiagnosisBudgets = append(res.DiagnosisBudgets, DiagnosisBudgetResponse{
			DeviceID: pair.DeviceID,
			Faults:   pair.Budget.Faults,
			Discount: pair.Budget.Discount,
			Totals: BudgetTotalsResponse{
				Subtotal: pair.Budget.Totals.Subtotal,
				Discount: pair.Budget.Totals.Discount,
				Total:    pair.Budget.Totals.Total,
			},
		})
	}
	return res
}

type FinalizeResponse struct {
	OrderID string `json:"order_id"`
}

// CachedDraftResponse is the restore offer shown at session start.
type CachedDraftResponse struct {
	Available   bool                    `json:"available"`
	LastSavedAt *time.Time              `json:"last_saved_at,omitempty"`
	Snapshot    *entities.OrderSnapshot `json:"snapshot,omitempty"`
}

func FromCachedDraft(snap entities.OrderSnapshot, ok bool) CachedDraftResponse {
	if !ok {
		return CachedDraftResponse{}
	}
	savedAt := snap.LastSavedAt
	return CachedDraftResponse{Available: true, LastSavedAt: &savedAt, Snapshot: &snap}
}
