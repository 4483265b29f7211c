package entities

import "errors"

var (
	ErrFaultNameRequired = errors.New("fault name is required")
	ErrLineQtyInvalid    = errors.New("intervention line quantity must be greater than zero")
	ErrLinePriceInvalid  = errors.New("intervention line price must be non-negative")
	ErrDiscountNegative  = errors.New("discount must be non-negative")
)

// InterventionType tags a line as labor or parts. Kept open-ended (string
// based) because the catalog may introduce further types.
type InterventionType string

const (
	InterventionTypeLabor InterventionType = "labor"
	InterventionTypeParts InterventionType = "parts"
)

// InterventionLine is one billable repair action under a fault.
type InterventionLine struct {
	Concept   string           `json:"concept"`
	UnitPrice float64          `json:"unit_price"`
	Quantity  int              `json:"quantity"`
	Type      InterventionType `json:"type,omitempty"`
}

// FaultEntry is a named problem diagnosed on a device, grouping the
// intervention lines budgeted to fix it.
type FaultEntry struct {
	Name  string             `json:"name"`
	Lines []InterventionLine `json:"lines"`
}

// BudgetTotals is the derived money summary of one device's budget. It is
// always recomputed from the fault entries; it is never edited directly.
type BudgetTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// DiagnosisBudget is the full diagnosis + budget record for one device.
// A device only has an entry once diagnosis has begun; stripping the last
// fault removes the entry entirely (the engine models that as "incomplete").
type DiagnosisBudget struct {
	Faults   []FaultEntry `json:"faults"`
	Discount float64      `json:"discount"`
	Totals   BudgetTotals `json:"totals"`
}

func (b *DiagnosisBudget) ValidateInvariants() []error {
	var errs []error
	if b.Discount < 0 {
		errs = append(errs, ErrDiscountNegative)
	}
	for _, f := range b.Faults {
		if f.Name == "" {
			errs = append(errs, ErrFaultNameRequired)
		}
		for _, l := range f.Lines {
			if l.Quantity <= 0 {
				errs = append(errs, ErrLineQtyInvalid)
			}
			if l.UnitPrice < 0 {
				errs = append(errs, ErrLinePriceInvalid)
			}
		}
	}
	return errs
}
