package request

import (
	"testing"
	"time"

	"fieldops/internal/domain/entities"
)

func TestCreateFieldTicketRequest_ToEntity(t *testing.T) {
	workDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ot := 60.0
	r := CreateFieldTicketRequest{
		JobID:        "job-1",
		ChangeReason: "site_condition",
		Description:  "rock excavation",
		WorkDate:     workDate,
		Location:     GPSLocationRequest{Latitude: 29.7, Longitude: -95.3, Accuracy: 5},
		MarkupRate:   10,
		LaborEntries: []LaborEntryRequest{
			{WorkerName: "J. Silva", RegularHours: 8, RegularRate: 40, OvertimeRate: &ot},
		},
		EquipmentEntries: []EquipmentEntryRequest{
			{Type: "excavator", Hours: 6, HourlyRate: 150},
		},
		MaterialEntries: []MaterialEntryRequest{
			{Description: "gravel", Quantity: 10, UnitCost: 25, Markup: 15, Source: "purchased"},
		},
		Photos: []PhotoRequest{{URL: "https://cdn.example.com/p1.jpg"}},
	}

	got := r.ToEntity("tenant-1")
	if got.TenantID != "tenant-1" || got.JobID != "job-1" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.ChangeReason != entities.ChangeReasonSiteCondition {
		t.Fatalf("unexpected change reason: %s", got.ChangeReason)
	}
	if !got.WorkDate.Equal(workDate) {
		t.Fatalf("unexpected work date: %v", got.WorkDate)
	}
	if len(got.LaborEntries) != 1 || got.LaborEntries[0].WorkerName != "J. Silva" {
		t.Fatalf("unexpected labor entries: %+v", got.LaborEntries)
	}
	if got.LaborEntries[0].OvertimeRate == nil || *got.LaborEntries[0].OvertimeRate != 60 {
		t.Fatalf("overtime rate not mapped: %+v", got.LaborEntries[0])
	}
	if len(got.EquipmentEntries) != 1 || got.EquipmentEntries[0].Type != entities.EquipmentTypeExcavator {
		t.Fatalf("unexpected equipment entries: %+v", got.EquipmentEntries)
	}
	if len(got.MaterialEntries) != 1 || got.MaterialEntries[0].Source != entities.MaterialSourcePurchased {
		t.Fatalf("unexpected material entries: %+v", got.MaterialEntries)
	}
	if len(got.Photos) != 1 || got.Photos[0].URL != "https://cdn.example.com/p1.jpg" {
		t.Fatalf("unexpected photos: %+v", got.Photos)
	}
}

func TestDisputeTicketRequest_ToEvidence_FallbackActor(t *testing.T) {
	r := DisputeTicketRequest{
		Actor:  "pm@client.com",
		Reason: "hours overstated",
		Evidence: []DisputeEvidenceRequest{
			{URL: "https://cdn.example.com/e1.pdf", Type: "document"},
			{URL: "https://cdn.example.com/e2.jpg", Type: "photo", AddedBy: "inspector@client.com"},
		},
	}

	items := r.ToEvidence()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].AddedBy != "pm@client.com" {
		t.Fatalf("expected fallback actor, got %q", items[0].AddedBy)
	}
	if items[1].AddedBy != "inspector@client.com" {
		t.Fatalf("expected explicit added_by preserved, got %q", items[1].AddedBy)
	}
}

func TestResolveDisputeRequest_ToReplacementSignature(t *testing.T) {
	r := ResolveDisputeRequest{Actor: "pm", Resolution: "hours corrected"}
	if sig := r.ToReplacementSignature(); sig != nil {
		t.Fatalf("expected nil signature, got %+v", sig)
	}

	r.ReplacementSignature = &SignatureRequest{
		ImageData:  "base64==",
		SignerName: "Inspector",
		SignedAt:   time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
	}
	sig := r.ToReplacementSignature()
	if sig == nil || sig.SignerName != "Inspector" {
		t.Fatalf("unexpected signature: %+v", sig)
	}
}
