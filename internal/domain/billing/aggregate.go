package billing

import "fieldops/internal/domain/entities"

// RecomputeTotals derives every monetary field on the ticket from its entry
// lists and markup rate:
//
//	subtotal    = laborTotal + equipmentTotal + materialTotal
//	markup      = subtotal * markupRate/100
//	totalAmount = subtotal + markup
//
// It runs on every save of the aggregate, not only on creation, and is
// idempotent: recomputing unchanged entries yields identical totals. Client
// supplied totals are never trusted; they are overwritten here.
func RecomputeTotals(t *entities.FieldTicket) {
	laborTotal := 0.0
	for i := range t.LaborEntries {
		amount := RoundToCent(LaborLineTotal(t.LaborEntries[i]))
		t.LaborEntries[i].TotalAmount = amount
		laborTotal += amount
	}

	equipmentTotal := 0.0
	for i := range t.EquipmentEntries {
		amount := RoundToCent(EquipmentLineTotal(t.EquipmentEntries[i]))
		t.EquipmentEntries[i].TotalAmount = amount
		equipmentTotal += amount
	}

	materialTotal := 0.0
	for i := range t.MaterialEntries {
		amount := RoundToCent(MaterialLineTotal(t.MaterialEntries[i]))
		t.MaterialEntries[i].TotalAmount = amount
		materialTotal += amount
	}

	t.LaborTotal = RoundToCent(laborTotal)
	t.EquipmentTotal = RoundToCent(equipmentTotal)
	t.MaterialTotal = RoundToCent(materialTotal)
	t.Subtotal = RoundToCent(t.LaborTotal + t.EquipmentTotal + t.MaterialTotal)
	t.Markup = RoundToCent(t.Subtotal * t.MarkupRate / 100)
	t.TotalAmount = RoundToCent(t.Subtotal + t.Markup)
}
