package request

import (
	"encoding/json"
	"strings"

	"taller_movil/internal/domain/entities"
)

// StartOrderRequest opens a composition session; RestoreFromCache applies the
// previously cached draft explicitly instead of starting empty.
type StartOrderRequest struct {
	RestoreFromCache bool `json:"restore_from_cache"`
}

type CustomerRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name" binding:"required"`
	Surname       string `json:"surname" binding:"required"`
	SecondSurname string `json:"second_surname"`
	NationalID    string `json:"national_id"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		ID:            strings.TrimSpace(r.ID),
		Name:          strings.TrimSpace(r.Name),
		Surname:       strings.TrimSpace(r.Surname),
		SecondSurname: strings.TrimSpace(r.SecondSurname),
		NationalID:    strings.TrimSpace(r.NationalID),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		Address:       strings.TrimSpace(r.Address),
	}
}

type DeviceRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	IMEI         string `json:"imei"`
	SerialNumber string `json:"serial_number"`
	Color        string `json:"color"`
	Capacity     string `json:"capacity"`
	Notes        string `json:"notes"`
}

func (r DeviceRequest) ToEntity() entities.Device {
	return entities.Device{
		Brand:        strings.TrimSpace(r.Brand),
		Model:        strings.TrimSpace(r.Model),
		IMEI:         strings.TrimSpace(r.IMEI),
		SerialNumber: strings.TrimSpace(r.SerialNumber),
		Color:        strings.TrimSpace(r.Color),
		Capacity:     strings.TrimSpace(r.Capacity),
		Notes:        strings.TrimSpace(r.Notes),
	}
}

// ReorderRequest moves the device at FromIndex to ToIndex (0-based).
type ReorderRequest struct {
	FromIndex *int `json:"from_index" binding:"required"`
	ToIndex   *int `json:"to_index" binding:"required"`
}

type InterventionLineRequest struct {
	Concept   string  `json:"concept" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity" binding:"required"`
	Type      string  `json:"type"`
}

type FaultEntryRequest struct {
	Name  string                    `json:"name" binding:"required"`
	Lines []InterventionLineRequest `json:"lines"`
}

// DiagnosisRequest upserts one device's diagnosis budget. An empty fault
// list removes the entry, marking the diagnosis incomplete again.
type DiagnosisRequest struct {
	Faults   []FaultEntryRequest `json:"faults"`
	Discount float64             `json:"discount"`
}

func (r DiagnosisRequest) ToEntity() *entities.DiagnosisBudget {
	if len(r.Faults) == 0 {
		return nil
	}
	b := entities.DiagnosisBudget{Discount: r.Discount}
	for _, f := range r.Faults {
		fault := entities.FaultEntry{Name: strings.TrimSpace(f.Name)}
		for _, l := range f.Lines {
			fault.Lines = append(fault.Lines, entities.InterventionLine{
				Concept:   strings.TrimSpace(l.Concept),
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
				Type:      entities.InterventionType(l.Type),
			})
		}
		b.Faults = append(b.Faults, fault)
	}
	return &b
}

// PricingRequest patches order-level money figures; nil leaves the field
// unchanged.
type PricingRequest struct {
	GlobalDiscount *float64 `json:"global_discount"`
	Deposit        *float64 `json:"deposit"`
}

type NavigateRequest struct {
	Section string `json:"section" binding:"required"`
}

type DepositPaymentRequest struct {
	Amount         float64         `json:"amount" binding:"required"`
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
