package usecase

import (
	"math"
	"testing"

	"taller_movil/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFaultSubtotal(t *testing.T) {
	f := entities.FaultEntry{
		Name: "pantalla rota",
		Lines: []entities.InterventionLine{
			{Concept: "mano de obra", UnitPrice: 25, Quantity: 2, Type: entities.InterventionTypeLabor},
			{Concept: "pantalla OLED", UnitPrice: 89.9, Quantity: 1, Type: entities.InterventionTypeParts},
		},
	}

	if got := FaultSubtotal(f); !almostEqual(got, 139.9) {
		t.Fatalf("expected 139.9, got %v", got)
	}
}

func TestComputeBudgetTotals(t *testing.T) {
	t.Run("sums faults and applies device discount", func(t *testing.T) {
		b := entities.DiagnosisBudget{
			Faults: []entities.FaultEntry{
				{Name: "pantalla", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 100, Quantity: 1}}},
				{Name: "bateria", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 40, Quantity: 1}, {Concept: "mano de obra", UnitPrice: 15, Quantity: 1}}},
			},
			Discount: 10,
		}

		got := ComputeBudgetTotals(b)
		if !almostEqual(got.Subtotal, 155) {
			t.Fatalf("expected subtotal 155, got %v", got.Subtotal)
		}
		if !almostEqual(got.Discount, 10) {
			t.Fatalf("expected discount 10, got %v", got.Discount)
		}
		if !almostEqual(got.Total, 145) {
			t.Fatalf("expected total 145, got %v", got.Total)
		}
	})

	t.Run("no faults", func(t *testing.T) {
		got := ComputeBudgetTotals(entities.DiagnosisBudget{})
		if !almostEqual(got.Total, 0) {
			t.Fatalf("expected zero total, got %v", got.Total)
		}
	})
}

func TestOrderTotal(t *testing.T) {
	agg := entities.NewOrderAggregate()
	agg.DiagnosisBudgets["dev-1"] = entities.DiagnosisBudget{
		Faults:   []entities.FaultEntry{{Name: "pantalla", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 120, Quantity: 1}}}},
		Discount: 20,
	}
	agg.DiagnosisBudgets["dev-2"] = entities.DiagnosisBudget{
		Faults: []entities.FaultEntry{{Name: "bateria", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 50, Quantity: 2}}}},
	}
	agg.GlobalDiscount = 15

	// (120-20) + 100 - 15
	if got := OrderTotal(&agg); !almostEqual(got, 185) {
		t.Fatalf("expected 185, got %v", got)
	}

	// Deposit is tracked against the total, never subtracted from it.
	agg.Deposit = 50
	if got := OrderTotal(&agg); !almostEqual(got, 185) {
		t.Fatalf("deposit must not change the total, got %v", got)
	}
}

func TestOrderTotalStableUnderBudgetChurn(t *testing.T) {
	agg := entities.NewOrderAggregate()
	agg.DiagnosisBudgets["dev-1"] = entities.DiagnosisBudget{
		Faults: []entities.FaultEntry{{Name: "pantalla", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 80, Quantity: 1}}}},
	}
	before := OrderTotal(&agg)

	extra := entities.DiagnosisBudget{
		Faults: []entities.FaultEntry{{Name: "camara", Lines: []entities.InterventionLine{{Concept: "repuesto", UnitPrice: 33.3, Quantity: 3}}}},
	}
	agg.DiagnosisBudgets["dev-2"] = extra
	delete(agg.DiagnosisBudgets, "dev-2")

	if got := OrderTotal(&agg); !almostEqual(got, before) {
		t.Fatalf("add+remove must be neutral: expected %v, got %v", before, got)
	}
}
