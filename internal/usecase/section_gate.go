package usecase

import "taller_movil/internal/domain/entities"

// The section gate is a pure function over the aggregate: it suggests the
// section the workflow should land on, and the composition engine decides
// whether to act on the suggestion. This keeps auto-advance out of the data
// mutators themselves.

// gateSatisfied reports whether the prerequisites for leaving a section are
// met.
func gateSatisfied(agg *entities.OrderAggregate, from entities.Section) bool {
	switch from {
	case entities.SectionCustomer:
		return agg.Customer != nil
	case entities.SectionDevices:
		return len(agg.Devices) > 0
	default:
		// Diagnosis has no forward transition inside the composition flow.
		return false
	}
}

// NextSection returns the section the workflow should land on: one step
// forward when the active section's gate is satisfied, the active section
// itself otherwise. Advancement is a single section per evaluation even when
// a gate further ahead already holds, so the workflow never skips a section
// on the way forward.
func NextSection(agg *entities.OrderAggregate) entities.Section {
	if !gateSatisfied(agg, agg.ActiveSection) {
		return agg.ActiveSection
	}
	switch agg.ActiveSection {
	case entities.SectionCustomer:
		return entities.SectionDevices
	case entities.SectionDevices:
		return entities.SectionDiagnosis
	default:
		return agg.ActiveSection
	}
}

// CanNavigate reports whether an explicit navigation request to target is
// allowed. Backward navigation is always permitted; forward navigation only
// when every gate between the current section and the target is satisfied.
func CanNavigate(agg *entities.OrderAggregate, target entities.Section) bool {
	if !target.Valid() {
		return false
	}
	if target == agg.ActiveSection || target.Before(agg.ActiveSection) {
		return true
	}
	s := agg.ActiveSection
	for s.Before(target) {
		if !gateSatisfied(agg, s) {
			return false
		}
		if s == entities.SectionCustomer {
			s = entities.SectionDevices
		} else {
			s = entities.SectionDiagnosis
		}
	}
	return true
}
