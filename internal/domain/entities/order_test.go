package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOrderSnapshotRoundTrip(t *testing.T) {
	agg := NewOrderAggregate()
	agg.Customer = &Customer{ID: "c-1", Name: "Ana", Surname: "Lopez", Phone: "600111222"}
	agg.Devices = []Device{
		{ID: "d-1", Brand: "Apple", Model: "iPhone 12", Order: 1},
		{ID: "d-2", Brand: "Samsung", Model: "Galaxy S21", Order: 2},
	}
	agg.DiagnosisBudgets["d-2"] = DiagnosisBudget{
		Faults: []FaultEntry{{Name: "screen", Lines: []InterventionLine{{Concept: "screen swap", UnitPrice: 50, Quantity: 1}}}},
		Totals: BudgetTotals{Subtotal: 50, Total: 50},
	}
	agg.ActiveSection = SectionDiagnosis
	agg.GlobalDiscount = 10
	agg.Deposit = 30

	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := agg.Snapshot(savedAt)

	if len(snap.DiagnosisBudgets) != 1 || snap.DiagnosisBudgets[0].DeviceID != "d-2" {
		t.Fatalf("unexpected budget pairs: %+v", snap.DiagnosisBudgets)
	}
	if !snap.LastSavedAt.Equal(savedAt) {
		t.Fatalf("unexpected last_saved_at: %v", snap.LastSavedAt)
	}

	// The canonical shape must survive JSON, map included.
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded OrderSnapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := decoded.Aggregate()
	if restored.Customer == nil || restored.Customer.ID != "c-1" {
		t.Fatalf("customer lost in round trip: %+v", restored.Customer)
	}
	if len(restored.Devices) != 2 || restored.Devices[1].ID != "d-2" {
		t.Fatalf("devices lost in round trip: %+v", restored.Devices)
	}
	b, ok := restored.DiagnosisBudgets["d-2"]
	if !ok || b.Totals.Total != 50 {
		t.Fatalf("budget lost in round trip: %+v", restored.DiagnosisBudgets)
	}
	if restored.ActiveSection != SectionDiagnosis || restored.GlobalDiscount != 10 || restored.Deposit != 30 {
		t.Fatalf("scalar fields lost: %+v", restored)
	}
}

func TestOrderSnapshotAggregateDropsOrphanBudgets(t *testing.T) {
	snap := OrderSnapshot{
		Devices: []Device{{ID: "d-1", Brand: "Apple", Model: "iPhone 12", Order: 1}},
		DiagnosisBudgets: []DiagnosisBudgetPair{
			{DeviceID: "d-1", Budget: DiagnosisBudget{}},
			{DeviceID: "ghost", Budget: DiagnosisBudget{}},
		},
		ActiveSection: SectionDevices,
	}

	agg := snap.Aggregate()
	if len(agg.DiagnosisBudgets) != 1 {
		t.Fatalf("expected orphan budget dropped, got %+v", agg.DiagnosisBudgets)
	}
	if _, ok := agg.DiagnosisBudgets["ghost"]; ok {
		t.Fatalf("orphan budget survived restore")
	}
}

func TestOrderSnapshotAggregateDefaultsInvalidSection(t *testing.T) {
	snap := OrderSnapshot{ActiveSection: Section("broken")}
	if got := snap.Aggregate().ActiveSection; got != SectionCustomer {
		t.Fatalf("expected fallback to customer section, got %q", got)
	}
}

func TestSectionOrdering(t *testing.T) {
	if !SectionCustomer.Before(SectionDevices) || !SectionDevices.Before(SectionDiagnosis) {
		t.Fatalf("section ordering broken")
	}
	if SectionDiagnosis.Before(SectionCustomer) {
		t.Fatalf("diagnosis must not precede customer")
	}
	if Section("broken").Valid() {
		t.Fatalf("invalid section reported valid")
	}
}

func TestSaveStateValid(t *testing.T) {
	for _, s := range []SaveState{SaveStateIdle, SaveStateSaving, SaveStateSaved, SaveStateError} {
		if !s.Valid() {
			t.Fatalf("state %q should be valid", s)
		}
	}
	if SaveState("broken").Valid() {
		t.Fatalf("invalid state reported valid")
	}
}

func TestOrderAggregateIsEmpty(t *testing.T) {
	agg := NewOrderAggregate()
	if !agg.IsEmpty() {
		t.Fatalf("fresh aggregate should be empty")
	}
	agg.Devices = append(agg.Devices, Device{ID: "d-1", Brand: "Apple", Model: "iPhone 12", Order: 1})
	if agg.IsEmpty() {
		t.Fatalf("aggregate with a device should not be empty")
	}
}
