package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type GPSLocationResponse struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  float64  `json:"accuracy"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

type PhotoResponse struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
	TakenAt time.Time `json:"taken_at"`
}

// SignatureResponse never echoes the signature image back; clients that
// captured it already have it and listings should stay small.
type SignatureResponse struct {
	SignerName  string              `json:"signer_name"`
	SignerTitle string              `json:"signer_title,omitempty"`
	SignerEmail string              `json:"signer_email,omitempty"`
	Location    GPSLocationResponse `json:"location"`
	SignedAt    time.Time           `json:"signed_at"`
}

type DisputeEvidenceResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	AddedBy     string    `json:"added_by"`
	AddedAt     time.Time `json:"added_at"`
}

type LaborEntryResponse struct {
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

type EquipmentEntryResponse struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Description  string   `json:"description,omitempty"`
	Hours        float64  `json:"hours"`
	HourlyRate   float64  `json:"hourly_rate"`
	StandbyHours float64  `json:"standby_hours"`
	StandbyRate  *float64 `json:"standby_rate,omitempty"`
	TotalAmount  float64  `json:"total_amount"`
}

type MaterialEntryResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	UnitCost    float64 `json:"unit_cost"`
	Markup      float64 `json:"markup"`
	Source      string  `json:"source"`
	TotalAmount float64 `json:"total_amount"`
}

type FieldTicketResponse struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	JobID        string `json:"job_id"`
	TicketNumber string `json:"ticket_number"`
	ChangeReason string `json:"change_reason"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`

	WorkDate  time.Time  `json:"work_date"`
	WorkStart *time.Time `json:"work_start,omitempty"`
	WorkEnd   *time.Time `json:"work_end,omitempty"`

	Location GPSLocationResponse `json:"location"`

	LaborEntries     []LaborEntryResponse     `json:"labor_entries"`
	EquipmentEntries []EquipmentEntryResponse `json:"equipment_entries"`
	MaterialEntries  []MaterialEntryResponse  `json:"material_entries"`
	Photos           []PhotoResponse          `json:"photos"`

	Signature *SignatureResponse `json:"signature,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	SubmittedBy string     `json:"submitted_by,omitempty"`

	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovalNotes string     `json:"approval_notes,omitempty"`

	IsDisputed      bool                      `json:"is_disputed"`
	DisputedAt      *time.Time                `json:"disputed_at,omitempty"`
	DisputedBy      string                    `json:"disputed_by,omitempty"`
	DisputeReason   string                    `json:"dispute_reason,omitempty"`
	DisputeCategory string                    `json:"dispute_category,omitempty"`
	DisputeEvidence []DisputeEvidenceResponse `json:"dispute_evidence,omitempty"`

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

	BilledAt   *time.Time `json:"billed_at,omitempty"`
	InvoiceRef string     `json:"invoice_ref,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	VoidedAt   *time.Time `json:"voided_at,omitempty"`
	VoidedBy   string     `json:"voided_by,omitempty"`
	VoidReason string     `json:"void_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFieldTicket(t entities.FieldTicket) FieldTicketResponse {
	resp := FieldTicketResponse{
		ID:           t.ID,
		TenantID:     t.TenantID,
		JobID:        t.JobID,
		TicketNumber: t.TicketNumber,
		ChangeReason: string(t.ChangeReason),
		Description:  t.Description,
		Status:       string(t.Status),

		WorkDate:  t.WorkDate,
		WorkStart: optionalTime(t.WorkStart),
		WorkEnd:   optionalTime(t.WorkEnd),

		Location: fromGPSLocation(t.Location),

		LaborEntries:     make([]LaborEntryResponse, 0, len(t.LaborEntries)),
		EquipmentEntries: make([]EquipmentEntryResponse, 0, len(t.EquipmentEntries)),
		MaterialEntries:  make([]MaterialEntryResponse, 0, len(t.MaterialEntries)),
		Photos:           make([]PhotoResponse, 0, len(t.Photos)),

		SubmittedAt: t.SubmittedAt,
		SubmittedBy: t.SubmittedBy,

		ApprovedAt:    t.ApprovedAt,
		ApprovedBy:    t.ApprovedBy,
		ApprovalNotes: t.ApprovalNotes,

		IsDisputed:      t.IsDisputed,
		DisputedAt:      t.DisputedAt,
		DisputedBy:      t.DisputedBy,
		DisputeReason:   t.DisputeReason,
		DisputeCategory: t.DisputeCategory,

		ResolvedAt: t.ResolvedAt,
		ResolvedBy: t.ResolvedBy,
		Resolution: t.Resolution,

		MarkupRate: t.MarkupRate,

		LaborTotal:     t.LaborTotal,
		EquipmentTotal: t.EquipmentTotal,
		MaterialTotal:  t.MaterialTotal,
		Subtotal:       t.Subtotal,
		Markup:         t.Markup,
		TotalAmount:    t.TotalAmount,

		BilledAt:   t.BilledAt,
		InvoiceRef: t.InvoiceRef,
		PaidAt:     t.PaidAt,

		VoidedAt:   t.VoidedAt,
		VoidedBy:   t.VoidedBy,
		VoidReason: t.VoidReason,

		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	for _, e := range t.LaborEntries {
		resp.LaborEntries = append(resp.LaborEntries, LaborEntryResponse{
			ID:              e.ID,
			WorkerName:      e.WorkerName,
			WorkerRole:      e.WorkerRole,
			RegularHours:    e.RegularHours,
			OvertimeHours:   e.OvertimeHours,
			DoubleTimeHours: e.DoubleTimeHours,
			RegularRate:     e.RegularRate,
			OvertimeRate:    e.OvertimeRate,
			DoubleTimeRate:  e.DoubleTimeRate,
			TotalAmount:     e.TotalAmount,
		})
	}
	for _, e := range t.EquipmentEntries {
		resp.EquipmentEntries = append(resp.EquipmentEntries, EquipmentEntryResponse{
			ID:           e.ID,
			Type:         string(e.Type),
			Description:  e.Description,
			Hours:        e.Hours,
			HourlyRate:   e.HourlyRate,
			StandbyHours: e.StandbyHours,
			StandbyRate:  e.StandbyRate,
			TotalAmount:  e.TotalAmount,
		})
	}
	for _, e := range t.MaterialEntries {
		resp.MaterialEntries = append(resp.MaterialEntries, MaterialEntryResponse{
			ID:          e.ID,
			Description: e.Description,
			Quantity:    e.Quantity,
			Unit:        e.Unit,
			UnitCost:    e.UnitCost,
			Markup:      e.Markup,
			Source:      string(e.Source),
			TotalAmount: e.TotalAmount,
		})
	}
	for _, p := range t.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{
			ID:      p.ID,
			URL:     p.URL,
			Caption: p.Caption,
			TakenAt: p.TakenAt,
		})
	}
	for _, e := range t.DisputeEvidence {
		resp.DisputeEvidence = append(resp.DisputeEvidence, DisputeEvidenceResponse{
			ID:          e.ID,
			URL:         e.URL,
			Type:        e.Type,
			Description: e.Description,
			AddedBy:     e.AddedBy,
			AddedAt:     e.AddedAt,
		})
	}
	if t.Signature != nil {
		resp.Signature = &SignatureResponse{
			SignerName:  t.Signature.SignerName,
			SignerTitle: t.Signature.SignerTitle,
			SignerEmail: t.Signature.SignerEmail,
			Location:    fromGPSLocation(t.Signature.Location),
			SignedAt:    t.Signature.SignedAt,
		}
	}
	return resp
}

// FromFieldTickets maps a batch result preserving order.
func FromFieldTickets(tickets []entities.FieldTicket) []FieldTicketResponse {
	out := make([]FieldTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromFieldTicket(t))
	}
	return out
}

func fromGPSLocation(l entities.GPSLocation) GPSLocationResponse {
	return GPSLocationResponse{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		Altitude:  l.Altitude,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
