package repository

import (
	"testing"
	"time"

	"fieldops/internal/domain/entities"
)

func TestFieldTicketItemMapping_RoundTrip(t *testing.T) {
	workDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	signedAt := workDate.Add(26 * time.Hour)
	paidAt := workDate.AddDate(0, 0, 20)
	ot := 61.5
	ticket := entities.FieldTicket{
		ID:           "ft-1",
		TenantID:     "tenant-1",
		JobID:        "job-1",
		TicketNumber: "FT-2026-00042",
		ChangeReason: entities.ChangeReasonSiteCondition,
		Status:       entities.TicketStatusPaid,
		WorkDate:     workDate,
		Location:     entities.GPSLocation{Latitude: 29.76, Longitude: -95.36, Accuracy: 4.2},
		LaborEntries: []entities.LaborEntry{
			{ID: "l-1", WorkerName: "J. Silva", RegularHours: 8, OvertimeHours: 2, RegularRate: 41, OvertimeRate: &ot, TotalAmount: 451},
		},
		EquipmentEntries: []entities.EquipmentEntry{
			{ID: "e-1", Type: entities.EquipmentTypeExcavator, Hours: 6.5, HourlyRate: 150.33, TotalAmount: 977.15},
		},
		MaterialEntries: []entities.MaterialEntry{
			{ID: "m-1", Description: "gravel", Quantity: 10, UnitCost: 25.01, Markup: 15, Source: entities.MaterialSourcePurchased, TotalAmount: 287.62},
		},
		Photos: []entities.Photo{{ID: "p-1", URL: "https://cdn.example.com/p1.jpg", TakenAt: workDate.Add(3 * time.Hour)}},
		Signature: &entities.InspectorSignature{
			ImageData:  "base64==",
			SignerName: "Inspector",
			SignedAt:   signedAt,
		},
		MarkupRate:  10,
		Subtotal:    1715.77,
		Markup:      171.58,
		TotalAmount: 1887.35,
		PaidAt:      &paidAt,
		CreatedAt:   workDate,
		UpdatedAt:   paidAt,
	}

	got := fromFieldTicketItem(toFieldTicketItem(ticket))

	if got.TicketNumber != ticket.TicketNumber || got.Status != ticket.Status {
		t.Fatalf("identity not preserved: %+v", got)
	}
	if got.TotalAmount != 1887.35 || got.Subtotal != 1715.77 {
		t.Fatalf("money fields not exact after round trip: subtotal=%v total=%v", got.Subtotal, got.TotalAmount)
	}
	if len(got.LaborEntries) != 1 || got.LaborEntries[0].OvertimeRate == nil || *got.LaborEntries[0].OvertimeRate != 61.5 {
		t.Fatalf("labor entry lost: %+v", got.LaborEntries)
	}
	if got.EquipmentEntries[0].HourlyRate != 150.33 {
		t.Fatalf("equipment rate drifted: %v", got.EquipmentEntries[0].HourlyRate)
	}
	if got.Signature == nil || !got.Signature.SignedAt.Equal(signedAt) {
		t.Fatalf("signature not preserved: %+v", got.Signature)
	}
	if got.PaidAt == nil || !got.PaidAt.Equal(paidAt) {
		t.Fatalf("paid timestamp not preserved: %v", got.PaidAt)
	}
	if got.WorkStart != (time.Time{}) || got.BilledAt != nil {
		t.Fatalf("unset optionals should stay unset: start=%v billed=%v", got.WorkStart, got.BilledAt)
	}
}

func TestFloatToString_ExactRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.1, 41, 150.33, 1887.35, 123456.78} {
		if got := stringToFloat(floatToString(v)); got != v {
			t.Fatalf("%v round-tripped to %v", v, got)
		}
	}
}
