package entities

import "time"

// Section is one phase of the guided composition workflow.
type Section string

const (
	SectionCustomer  Section = "customer"
	SectionDevices   Section = "devices"
	SectionDiagnosis Section = "diagnosis"
)

// sectionRank orders sections for forward/backward comparisons.
var sectionRank = map[Section]int{
	SectionCustomer:  0,
	SectionDevices:   1,
	SectionDiagnosis: 2,
}

func (s Section) Valid() bool {
	_, ok := sectionRank[s]
	return ok
}

// Before reports whether s comes earlier than other in the workflow.
func (s Section) Before(other Section) bool {
	return sectionRank[s] < sectionRank[other]
}

// SaveState is the autosave signal exposed to the UI.
type SaveState string

const (
	SaveStateIdle   SaveState = "idle"
	SaveStateSaving SaveState = "saving"
	SaveStateSaved  SaveState = "saved"
	SaveStateError  SaveState = "error"
)

func (s SaveState) Valid() bool {
	switch s {
	case SaveStateIdle, SaveStateSaving, SaveStateSaved, SaveStateError:
		return true
	default:
		return false
	}
}

// OrderAggregate is the in-memory state of one repair order under
// composition. DiagnosisBudgets is keyed by device id and only contains
// entries for devices whose diagnosis has begun.
//
// Deposit is an amount collected (or to be collected) against the total; it
// is displayed alongside the totals but never subtracted from them.
type OrderAggregate struct {
	Customer         *Customer
	Devices          []Device
	DiagnosisBudgets map[string]DiagnosisBudget
	ActiveSection    Section
	GlobalDiscount   float64
	Deposit          float64
}

// NewOrderAggregate returns an empty aggregate positioned on the customer
// section.
func NewOrderAggregate() OrderAggregate {
	return OrderAggregate{
		DiagnosisBudgets: make(map[string]DiagnosisBudget),
		ActiveSection:    SectionCustomer,
	}
}

// IsEmpty reports whether nothing worth persisting has been entered yet.
func (a *OrderAggregate) IsEmpty() bool {
	return a.Customer == nil && len(a.Devices) == 0 && len(a.DiagnosisBudgets) == 0
}

// DiagnosisBudgetPair is one (device id, budget) element of the serialized
// budgets list.
type DiagnosisBudgetPair struct {
	DeviceID string          `json:"device_id"`
	Budget   DiagnosisBudget `json:"budget"`
}

// OrderSnapshot is the canonical serialized shape of the aggregate, shared by
// the local draft cache and the remote draft endpoint. The budgets map is
// flattened into a list ordered by device position so the JSON round-trips
// deterministically.
type OrderSnapshot struct {
	Customer         *Customer             `json:"customer"`
	Devices          []Device              `json:"devices"`
	DiagnosisBudgets []DiagnosisBudgetPair `json:"diagnosis_budgets"`
	ActiveSection    Section               `json:"active_section"`
	GlobalDiscount   float64               `json:"global_discount"`
	Deposit          float64               `json:"deposit"`
	LastSavedAt      time.Time             `json:"last_saved_at"`
}

// Snapshot flattens the aggregate into its serialized shape. Budget pairs
// follow the device list order; an entry whose device disappeared (which the
// engine prevents) would simply be dropped.
func (a *OrderAggregate) Snapshot(lastSavedAt time.Time) OrderSnapshot {
	snap := OrderSnapshot{
		Customer:       a.Customer,
		Devices:        append([]Device(nil), a.Devices...),
		ActiveSection:  a.ActiveSection,
		GlobalDiscount: a.GlobalDiscount,
		Deposit:        a.Deposit,
		LastSavedAt:    lastSavedAt,
	}
	snap.DiagnosisBudgets = make([]DiagnosisBudgetPair, 0, len(a.DiagnosisBudgets))
	for _, d := range a.Devices {
		if b, ok := a.DiagnosisBudgets[d.ID]; ok {
			snap.DiagnosisBudgets = append(snap.DiagnosisBudgets, DiagnosisBudgetPair{DeviceID: d.ID, Budget: b})
		}
	}
	return snap
}

// Aggregate rebuilds the in-memory aggregate from a snapshot, reconstructing
// the budgets map from the pair list. Pairs referencing unknown devices are
// discarded so the map-keys ⊆ device-ids invariant holds after a restore.
func (s OrderSnapshot) Aggregate() OrderAggregate {
	agg := OrderAggregate{
		Customer:         s.Customer,
		Devices:          append([]Device(nil), s.Devices...),
		DiagnosisBudgets: make(map[string]DiagnosisBudget, len(s.DiagnosisBudgets)),
		ActiveSection:    s.ActiveSection,
		GlobalDiscount:   s.GlobalDiscount,
		Deposit:          s.Deposit,
	}
	known := make(map[string]bool, len(agg.Devices))
	for _, d := range agg.Devices {
		known[d.ID] = true
	}
	for _, p := range s.DiagnosisBudgets {
		if known[p.DeviceID] {
			agg.DiagnosisBudgets[p.DeviceID] = p.Budget
		}
	}
	if !agg.ActiveSection.Valid() {
		agg.ActiveSection = SectionCustomer
	}
	return agg
}
