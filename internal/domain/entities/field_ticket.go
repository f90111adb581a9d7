package entities

import "time"

// TicketStatus represents the lifecycle of a field ticket (change order).
//
// Domain notes:
//   - The engine is the source of truth for ticket state and totals.
//   - Transitions are guarded; see internal/domain/lifecycle.
//   - billed, paid and voided are terminal for field edits and disputes.

type TicketStatus string

const (
	TicketStatusDraft            TicketStatus = "draft"
	TicketStatusPendingSignature TicketStatus = "pending_signature"
	TicketStatusSigned           TicketStatus = "signed"
	TicketStatusApproved         TicketStatus = "approved"
	TicketStatusDisputed         TicketStatus = "disputed"
	TicketStatusBilled           TicketStatus = "billed"
	TicketStatusPaid             TicketStatus = "paid"
	TicketStatusVoided           TicketStatus = "voided"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusDraft, TicketStatusPendingSignature, TicketStatusSigned,
		TicketStatusApproved, TicketStatusDisputed, TicketStatusBilled,
		TicketStatusPaid, TicketStatusVoided:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further lifecycle
// transitions (disputes included).
func (s TicketStatus) Terminal() bool {
	switch s {
	case TicketStatusBilled, TicketStatusPaid, TicketStatusVoided:
		return true
	}
	return false
}

// Editable reports whether labor/equipment/material entries and the markup
// rate may still be changed.
func (s TicketStatus) Editable() bool {
	return s == TicketStatusDraft || s == TicketStatusPendingSignature
}

// ChangeReason is the closed set of reasons a change order may be raised.

type ChangeReason string

const (
	ChangeReasonClientRequest ChangeReason = "client_request"
	ChangeReasonSiteCondition ChangeReason = "site_condition"
	ChangeReasonDesignChange  ChangeReason = "design_change"
	ChangeReasonWeatherDelay  ChangeReason = "weather_delay"
	ChangeReasonRegulatory    ChangeReason = "regulatory"
	ChangeReasonOther         ChangeReason = "other"
)

func (r ChangeReason) Valid() bool {
	switch r {
	case ChangeReasonClientRequest, ChangeReasonSiteCondition, ChangeReasonDesignChange,
		ChangeReasonWeatherDelay, ChangeReasonRegulatory, ChangeReasonOther:
		return true
	}
	return false
}

// EquipmentType is the closed set of billable equipment classes.

type EquipmentType string

const (
	EquipmentTypeExcavator  EquipmentType = "excavator"
	EquipmentTypeDozer      EquipmentType = "dozer"
	EquipmentTypeCrane      EquipmentType = "crane"
	EquipmentTypeLoader     EquipmentType = "loader"
	EquipmentTypeDumpTruck  EquipmentType = "dump_truck"
	EquipmentTypeCompressor EquipmentType = "compressor"
	EquipmentTypeGenerator  EquipmentType = "generator"
	EquipmentTypeManLift    EquipmentType = "man_lift"
	EquipmentTypePump       EquipmentType = "pump"
	EquipmentTypeOther      EquipmentType = "other"
)

func (e EquipmentType) Valid() bool {
	switch e {
	case EquipmentTypeExcavator, EquipmentTypeDozer, EquipmentTypeCrane,
		EquipmentTypeLoader, EquipmentTypeDumpTruck, EquipmentTypeCompressor,
		EquipmentTypeGenerator, EquipmentTypeManLift, EquipmentTypePump,
		EquipmentTypeOther:
		return true
	}
	return false
}

// MaterialSource is the closed set of material provenance values.

type MaterialSource string

const (
	MaterialSourcePurchased      MaterialSource = "purchased"
	MaterialSourceStock          MaterialSource = "stock"
	MaterialSourceClientSupplied MaterialSource = "client_supplied"
)

func (m MaterialSource) Valid() bool {
	switch m {
	case MaterialSourcePurchased, MaterialSourceStock, MaterialSourceClientSupplied:
		return true
	}
	return false
}

// GPSLocation is the capture position recorded with tickets and signatures.
type GPSLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  float64  `json:"accuracy"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Photo is a field-captured attachment. Binary storage is external; the
// engine only tracks the reference.
type Photo struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
	TakenAt time.Time `json:"taken_at"`
}

// InspectorSignature is the captured inspector sign-off. Once attached it is
// immutable except through the dispute-resolution replacement flow.
type InspectorSignature struct {
	ImageData   string      `json:"image_data"`
	SignerName  string      `json:"signer_name"`
	SignerTitle string      `json:"signer_title,omitempty"`
	SignerEmail string      `json:"signer_email,omitempty"`
	Location    GPSLocation `json:"location"`
	SignedAt    time.Time   `json:"signed_at"`
}

// DisputeEvidenceItem is one piece of dispute evidence. The list on the
// ticket is append-only; resolution never truncates it.
type DisputeEvidenceItem struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	AddedBy     string    `json:"added_by"`
	AddedAt     time.Time `json:"added_at"`
}

// LaborEntry is one worker's billed time on a ticket.
//
// TotalAmount is derived; see internal/domain/billing. Omitted overtime and
// double-time rates fall back to 1.5x and 2x the regular rate.
type LaborEntry struct {
	ID              string   `json:"id"`
	WorkerName      string   `json:"worker_name"`
	WorkerRole      string   `json:"worker_role,omitempty"`
	RegularHours    float64  `json:"regular_hours"`
	OvertimeHours   float64  `json:"overtime_hours"`
	DoubleTimeHours float64  `json:"double_time_hours"`
	RegularRate     float64  `json:"regular_rate"`
	OvertimeRate    *float64 `json:"overtime_rate,omitempty"`
	DoubleTimeRate  *float64 `json:"double_time_rate,omitempty"`
	TotalAmount     float64  `json:"total_amount"`
}

// EquipmentEntry is one machine's billed time. An omitted standby rate falls
// back to half the hourly rate.
type EquipmentEntry struct {
	ID           string        `json:"id"`
	Type         EquipmentType `json:"type"`
	Description  string        `json:"description,omitempty"`
	Hours        float64       `json:"hours"`
	HourlyRate   float64       `json:"hourly_rate"`
	StandbyHours float64       `json:"standby_hours"`
	StandbyRate  *float64      `json:"standby_rate,omitempty"`
	TotalAmount  float64       `json:"total_amount"`
}

// MaterialEntry is one line of consumed material with an optional per-line
// markup percentage.
type MaterialEntry struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Quantity    float64        `json:"quantity"`
	Unit        string         `json:"unit"`
	UnitCost    float64        `json:"unit_cost"`
	Markup      float64        `json:"markup"`
	Source      MaterialSource `json:"source"`
	TotalAmount float64        `json:"total_amount"`
}

// FieldTicket is the change-order aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: ticket_number
//
// Monetary representation:
//   - LaborTotal/EquipmentTotal/MaterialTotal/Subtotal/Markup/TotalAmount are
//     derived from the entry lists and MarkupRate on every save and are never
//     accepted from callers.
type FieldTicket struct {
	ID           string       `json:"id"`
	TenantID     string       `json:"tenant_id"`
	JobID        string       `json:"job_id"`
	TicketNumber string       `json:"ticket_number"`
	ChangeReason ChangeReason `json:"change_reason"`
	Description  string       `json:"description,omitempty"`

	WorkDate  time.Time `json:"work_date"`
	WorkStart time.Time `json:"work_start"`
	WorkEnd   time.Time `json:"work_end"`

	Location GPSLocation `json:"location"`

	LaborEntries     []LaborEntry     `json:"labor_entries"`
	EquipmentEntries []EquipmentEntry `json:"equipment_entries"`
	MaterialEntries  []MaterialEntry  `json:"material_entries"`
	Photos           []Photo          `json:"photos"`

	Signature *InspectorSignature `json:"signature,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	SubmittedBy string     `json:"submitted_by,omitempty"`

	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovalNotes string     `json:"approval_notes,omitempty"`

	// IsDisputed is true only while a dispute is open; resolution clears it.
	IsDisputed      bool                  `json:"is_disputed"`
	DisputedAt      *time.Time            `json:"disputed_at,omitempty"`
	DisputedBy      string                `json:"disputed_by,omitempty"`
	DisputeReason   string                `json:"dispute_reason,omitempty"`
	DisputeCategory string                `json:"dispute_category,omitempty"`
	DisputeEvidence []DisputeEvidenceItem `json:"dispute_evidence,omitempty"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	Resolution string     `json:"resolution,omitempty"`

	MarkupRate float64 `json:"markup_rate"`

	LaborTotal     float64 `json:"labor_total"`
	EquipmentTotal float64 `json:"equipment_total"`
	MaterialTotal  float64 `json:"material_total"`
	Subtotal       float64 `json:"subtotal"`
	Markup         float64 `json:"markup"`
	TotalAmount    float64 `json:"total_amount"`

	Status TicketStatus `json:"status"`

	BilledAt   *time.Time `json:"billed_at,omitempty"`
	InvoiceRef string     `json:"invoice_ref,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	VoidedAt   *time.Time `json:"voided_at,omitempty"`
	VoidedBy   string     `json:"voided_by,omitempty"`
	VoidReason string     `json:"void_reason,omitempty"`

	IsDeleted    bool       `json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	DeletedBy    string     `json:"deleted_by,omitempty"`
	DeleteReason string     `json:"delete_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
