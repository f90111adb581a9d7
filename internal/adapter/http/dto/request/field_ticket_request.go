package request

import (
	"time"

	"fieldops/internal/domain/entities"
)

type GPSLocationRequest struct {
	Latitude  float64  `json:"latitude" binding:"required"`
	Longitude float64  `json:"longitude" binding:"required"`
	Accuracy  float64  `json:"accuracy"`
	Altitude  *float64 `json:"altitude"`
}

func (r GPSLocationRequest) ToEntity() entities.GPSLocation {
	return entities.GPSLocation{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Accuracy:  r.Accuracy,
		Altitude:  r.Altitude,
	}
}

type PhotoRequest struct {
	URL     string    `json:"url" binding:"required"`
	Caption string    `json:"caption"`
	TakenAt time.Time `json:"taken_at"`
}

type LaborEntryRequest struct {
	WorkerName      string   `json:"worker_name" binding:"required"`
	WorkerRole      string   `json:"worker_role"`
	RegularHours    float64  `json:"regular_hours"`
	OvertimeHours   float64  `json:"overtime_hours"`
	DoubleTimeHours float64  `json:"double_time_hours"`
	RegularRate     float64  `json:"regular_rate" binding:"required"`
	OvertimeRate    *float64 `json:"overtime_rate"`
	DoubleTimeRate  *float64 `json:"double_time_rate"`
}

type EquipmentEntryRequest struct {
	Type         string   `json:"type" binding:"required"`
	Description  string   `json:"description"`
	Hours        float64  `json:"hours"`
	HourlyRate   float64  `json:"hourly_rate" binding:"required"`
	StandbyHours float64  `json:"standby_hours"`
	StandbyRate  *float64 `json:"standby_rate"`
}

type MaterialEntryRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost" binding:"required"`
	Markup      float64 `json:"markup"`
	Source      string  `json:"source" binding:"required"`
}

// CreateFieldTicketRequest is the payload for ticket creation. Line and
// ticket totals are never part of the payload; the engine derives them.
type CreateFieldTicketRequest struct {
	JobID        string             `json:"job_id" binding:"required"`
	ChangeReason string             `json:"change_reason" binding:"required"`
	Description  string             `json:"description"`
	WorkDate     time.Time          `json:"work_date" binding:"required"`
	WorkStart    time.Time          `json:"work_start"`
	WorkEnd      time.Time          `json:"work_end"`
	Location     GPSLocationRequest `json:"location" binding:"required"`
	MarkupRate   float64            `json:"markup_rate"`

	LaborEntries     []LaborEntryRequest     `json:"labor_entries"`
	EquipmentEntries []EquipmentEntryRequest `json:"equipment_entries"`
	MaterialEntries  []MaterialEntryRequest  `json:"material_entries"`
	Photos           []PhotoRequest          `json:"photos"`
}

func (r CreateFieldTicketRequest) ToEntity(tenantID string) entities.FieldTicket {
	return entities.FieldTicket{
		TenantID:         tenantID,
		JobID:            r.JobID,
		ChangeReason:     entities.ChangeReason(r.ChangeReason),
		Description:      r.Description,
		WorkDate:         r.WorkDate,
		WorkStart:        r.WorkStart,
		WorkEnd:          r.WorkEnd,
		Location:         r.Location.ToEntity(),
		MarkupRate:       r.MarkupRate,
		LaborEntries:     toLaborEntries(r.LaborEntries),
		EquipmentEntries: toEquipmentEntries(r.EquipmentEntries),
		MaterialEntries:  toMaterialEntries(r.MaterialEntries),
		Photos:           toPhotos(r.Photos),
	}
}

// UpdateEntriesRequest replaces the billable entry lists of an editable
// ticket.
type UpdateEntriesRequest struct {
	Description string  `json:"description"`
	MarkupRate  float64 `json:"markup_rate"`

	LaborEntries     []LaborEntryRequest     `json:"labor_entries"`
	EquipmentEntries []EquipmentEntryRequest `json:"equipment_entries"`
	MaterialEntries  []MaterialEntryRequest  `json:"material_entries"`
}

type SubmitForSignatureRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type SignatureRequest struct {
	ImageData   string             `json:"image_data" binding:"required"`
	SignerName  string             `json:"signer_name" binding:"required"`
	SignerTitle string             `json:"signer_title"`
	SignerEmail string             `json:"signer_email"`
	Location    GPSLocationRequest `json:"location"`
	SignedAt    time.Time          `json:"signed_at"`
}

func (r SignatureRequest) ToEntity() entities.InspectorSignature {
	return entities.InspectorSignature{
		ImageData:   r.ImageData,
		SignerName:  r.SignerName,
		SignerTitle: r.SignerTitle,
		SignerEmail: r.SignerEmail,
		Location:    r.Location.ToEntity(),
		SignedAt:    r.SignedAt,
	}
}

type SignTicketRequest struct {
	Signature SignatureRequest `json:"signature" binding:"required"`
}

type BatchSignRequest struct {
	TicketNumbers []string         `json:"ticket_numbers" binding:"required"`
	Signature     SignatureRequest `json:"signature" binding:"required"`
}

type ApproveTicketRequest struct {
	Actor string `json:"actor" binding:"required"`
	Notes string `json:"notes"`
}

type DisputeEvidenceRequest struct {
	URL         string `json:"url" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	AddedBy     string `json:"added_by"`
}

type DisputeTicketRequest struct {
	Actor    string                   `json:"actor" binding:"required"`
	Reason   string                   `json:"reason" binding:"required"`
	Category string                   `json:"category"`
	Evidence []DisputeEvidenceRequest `json:"evidence"`
}

type ResolveDisputeRequest struct {
	Actor                string                   `json:"actor" binding:"required"`
	Resolution           string                   `json:"resolution" binding:"required"`
	Evidence             []DisputeEvidenceRequest `json:"evidence"`
	ReplacementSignature *SignatureRequest        `json:"replacement_signature"`
}

type BillTicketRequest struct {
	InvoiceRef string `json:"invoice_ref" binding:"required"`
}

type VoidTicketRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type DeleteTicketRequest struct {
	Actor    string `json:"actor" binding:"required"`
	Reason   string `json:"reason"`
	Elevated bool   `json:"elevated"`
}

func toLaborEntries(in []LaborEntryRequest) []entities.LaborEntry {
	out := make([]entities.LaborEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.LaborEntry{
			WorkerName:      e.WorkerName,
			WorkerRole:      e.WorkerRole,
			RegularHours:    e.RegularHours,
			OvertimeHours:   e.OvertimeHours,
			DoubleTimeHours: e.DoubleTimeHours,
			RegularRate:     e.RegularRate,
			OvertimeRate:    e.OvertimeRate,
			DoubleTimeRate:  e.DoubleTimeRate,
		})
	}
	return out
}

func toEquipmentEntries(in []EquipmentEntryRequest) []entities.EquipmentEntry {
	out := make([]entities.EquipmentEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.EquipmentEntry{
			Type:         entities.EquipmentType(e.Type),
			Description:  e.Description,
			Hours:        e.Hours,
			HourlyRate:   e.HourlyRate,
			StandbyHours: e.StandbyHours,
			StandbyRate:  e.StandbyRate,
		})
	}
	return out
}

func toMaterialEntries(in []MaterialEntryRequest) []entities.MaterialEntry {
	out := make([]entities.MaterialEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.MaterialEntry{
			Description: e.Description,
			Quantity:    e.Quantity,
			Unit:        e.Unit,
			UnitCost:    e.UnitCost,
			Markup:      e.Markup,
			Source:      entities.MaterialSource(e.Source),
		})
	}
	return out
}

func toPhotos(in []PhotoRequest) []entities.Photo {
	out := make([]entities.Photo, 0, len(in))
	for _, p := range in {
		out = append(out, entities.Photo{
			URL:     p.URL,
			Caption: p.Caption,
			TakenAt: p.TakenAt,
		})
	}
	return out
}

func toEvidence(in []DisputeEvidenceRequest, fallbackActor string) []entities.DisputeEvidenceItem {
	out := make([]entities.DisputeEvidenceItem, 0, len(in))
	for _, e := range in {
		addedBy := e.AddedBy
		if addedBy == "" {
			addedBy = fallbackActor
		}
		out = append(out, entities.DisputeEvidenceItem{
			URL:         e.URL,
			Type:        e.Type,
			Description: e.Description,
			AddedBy:     addedBy,
		})
	}
	return out
}

// ToEvidence maps dispute evidence items, defaulting added_by to the acting
// user when omitted.
func (r DisputeTicketRequest) ToEvidence() []entities.DisputeEvidenceItem {
	return toEvidence(r.Evidence, r.Actor)
}

func (r ResolveDisputeRequest) ToEvidence() []entities.DisputeEvidenceItem {
	return toEvidence(r.Evidence, r.Actor)
}

func (r ResolveDisputeRequest) ToReplacementSignature() *entities.InspectorSignature {
	if r.ReplacementSignature == nil {
		return nil
	}
	sig := r.ReplacementSignature.ToEntity()
	return &sig
}

func (r UpdateEntriesRequest) ToLaborEntries() []entities.LaborEntry {
	return toLaborEntries(r.LaborEntries)
}

func (r UpdateEntriesRequest) ToEquipmentEntries() []entities.EquipmentEntry {
	return toEquipmentEntries(r.EquipmentEntries)
}

func (r UpdateEntriesRequest) ToMaterialEntries() []entities.MaterialEntry {
	return toMaterialEntries(r.MaterialEntries)
}
