package usecase

import "taller_movil/internal/domain/entities"

// Pure money derivations. Totals are recomputed synchronously on every
// budget mutation, so a stored BudgetTotals is always consistent with the
// fault entries it was derived from.

// FaultSubtotal sums price*quantity over the fault's intervention lines.
func FaultSubtotal(f entities.FaultEntry) float64 {
	var sum float64
	for _, l := range f.Lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}

// ComputeBudgetTotals derives the totals record for one device's budget from
// its fault entries and device-level discount.
func ComputeBudgetTotals(b entities.DiagnosisBudget) entities.BudgetTotals {
	var subtotal float64
	for _, f := range b.Faults {
		subtotal += FaultSubtotal(f)
	}
	return entities.BudgetTotals{
		Subtotal: subtotal,
		Discount: b.Discount,
		Total:    subtotal - b.Discount,
	}
}

// DeviceTotal is the budget total for one device.
func DeviceTotal(b entities.DiagnosisBudget) float64 {
	return ComputeBudgetTotals(b).Total
}

// OrderTotal sums every device total and applies the order-level discount.
// The deposit is an amount collected against the total; it is reported
// separately and never subtracted here.
func OrderTotal(agg *entities.OrderAggregate) float64 {
	var sum float64
	for _, b := range agg.DiagnosisBudgets {
		sum += DeviceTotal(b)
	}
	return sum - agg.GlobalDiscount
}
