package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTicketsTableName = "field_tickets"

	// transactLimit is the DynamoDB TransactWriteItems hard cap.
	transactLimit = 100
)

type gpsLocationItem struct {
	Latitude  float64  `dynamodbav:"latitude"`
	Longitude float64  `dynamodbav:"longitude"`
	Accuracy  float64  `dynamodbav:"accuracy"`
	Altitude  *float64 `dynamodbav:"altitude,omitempty"`
}

type photoItem struct {
	ID      string `dynamodbav:"id"`
	URL     string `dynamodbav:"url"`
	Caption string `dynamodbav:"caption,omitempty"`
	TakenAt string `dynamodbav:"taken_at"`
}

type signatureItem struct {
	ImageData   string          `dynamodbav:"image_data"`
	SignerName  string          `dynamodbav:"signer_name"`
	SignerTitle string          `dynamodbav:"signer_title,omitempty"`
	SignerEmail string          `dynamodbav:"signer_email,omitempty"`
	Location    gpsLocationItem `dynamodbav:"location"`
	SignedAt    string          `dynamodbav:"signed_at"`
}

type evidenceItem struct {
	ID          string `dynamodbav:"id"`
	URL         string `dynamodbav:"url"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description,omitempty"`
	AddedBy     string `dynamodbav:"added_by"`
	AddedAt     string `dynamodbav:"added_at"`
}

type laborEntryItem struct {
	ID              string  `dynamodbav:"id"`
	WorkerName      string  `dynamodbav:"worker_name"`
	WorkerRole      string  `dynamodbav:"worker_role,omitempty"`
	RegularHours    string  `dynamodbav:"regular_hours"`
	OvertimeHours   string  `dynamodbav:"overtime_hours"`
	DoubleTimeHours string  `dynamodbav:"double_time_hours"`
	RegularRate     string  `dynamodbav:"regular_rate"`
	OvertimeRate    *string `dynamodbav:"overtime_rate,omitempty"`
	DoubleTimeRate  *string `dynamodbav:"double_time_rate,omitempty"`
	TotalAmount     string  `dynamodbav:"total_amount"`
}

type equipmentEntryItem struct {
	ID           string  `dynamodbav:"id"`
	Type         string  `dynamodbav:"type"`
	Description  string  `dynamodbav:"description,omitempty"`
	Hours        string  `dynamodbav:"hours"`
	HourlyRate   string  `dynamodbav:"hourly_rate"`
	StandbyHours string  `dynamodbav:"standby_hours"`
	StandbyRate  *string `dynamodbav:"standby_rate,omitempty"`
	TotalAmount  string  `dynamodbav:"total_amount"`
}

type materialEntryItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	Unit        string `dynamodbav:"unit,omitempty"`
	UnitCost    string `dynamodbav:"unit_cost"`
	Markup      string `dynamodbav:"markup"`
	Source      string `dynamodbav:"source"`
	TotalAmount string `dynamodbav:"total_amount"`
}

type fieldTicketItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id"`
	JobID        string `dynamodbav:"job_id"`
	TicketNumber string `dynamodbav:"ticket_number"`
	ChangeReason string `dynamodbav:"change_reason"`
	Description  string `dynamodbav:"description,omitempty"`

	WorkDate  string `dynamodbav:"work_date"`
	WorkStart string `dynamodbav:"work_start,omitempty"`
	WorkEnd   string `dynamodbav:"work_end,omitempty"`

	Location gpsLocationItem `dynamodbav:"location"`

	LaborEntries     []laborEntryItem     `dynamodbav:"labor_entries,omitempty"`
	EquipmentEntries []equipmentEntryItem `dynamodbav:"equipment_entries,omitempty"`
	MaterialEntries  []materialEntryItem  `dynamodbav:"material_entries,omitempty"`
	Photos           []photoItem          `dynamodbav:"photos,omitempty"`

	Signature *signatureItem `dynamodbav:"signature,omitempty"`

	SubmittedAt string `dynamodbav:"submitted_at,omitempty"`
	SubmittedBy string `dynamodbav:"submitted_by,omitempty"`

	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	ApprovalNotes string `dynamodbav:"approval_notes,omitempty"`

	IsDisputed      bool           `dynamodbav:"is_disputed"`
	DisputedAt      string         `dynamodbav:"disputed_at,omitempty"`
	DisputedBy      string         `dynamodbav:"disputed_by,omitempty"`
	DisputeReason   string         `dynamodbav:"dispute_reason,omitempty"`
	DisputeCategory string         `dynamodbav:"dispute_category,omitempty"`
	DisputeEvidence []evidenceItem `dynamodbav:"dispute_evidence,omitempty"`

	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
	ResolvedBy string `dynamodbav:"resolved_by,omitempty"`
	Resolution string `dynamodbav:"resolution,omitempty"`

	MarkupRate string `dynamodbav:"markup_rate"`

	LaborTotal     string `dynamodbav:"labor_total"`
	EquipmentTotal string `dynamodbav:"equipment_total"`
	MaterialTotal  string `dynamodbav:"material_total"`
	Subtotal       string `dynamodbav:"subtotal"`
	Markup         string `dynamodbav:"markup"`
	TotalAmount    string `dynamodbav:"total_amount"`

	Status string `dynamodbav:"status"`

	BilledAt   string `dynamodbav:"billed_at,omitempty"`
	InvoiceRef string `dynamodbav:"invoice_ref,omitempty"`
	PaidAt     string `dynamodbav:"paid_at,omitempty"`

	VoidedAt   string `dynamodbav:"voided_at,omitempty"`
	VoidedBy   string `dynamodbav:"voided_by,omitempty"`
	VoidReason string `dynamodbav:"void_reason,omitempty"`

	IsDeleted    bool   `dynamodbav:"is_deleted"`
	DeletedAt    string `dynamodbav:"deleted_at,omitempty"`
	DeletedBy    string `dynamodbav:"deleted_by,omitempty"`
	DeleteReason string `dynamodbav:"delete_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FieldTicketDynamoRepository persists FieldTicket aggregates in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: ticket_number (string)
//
// The composite key gives tenant-scoped uniqueness of ticket numbers for
// free: a conditional put on (tenant_id, ticket_number) is the uniqueness
// constraint the sequence allocator retries against.

type FieldTicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFieldTicketRepository = (*FieldTicketDynamoRepository)(nil)

func NewFieldTicketDynamoRepository(ddb *dynamodb.Client) *FieldTicketDynamoRepository {
	return &FieldTicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *FieldTicketDynamoRepository) Create(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error) {
	it := toFieldTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FieldTicket{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tn)"),
		ExpressionAttributeNames: map[string]string{
			"#tn": "ticket_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FieldTicket{}, fmt.Errorf("%w: %s", interfaces.ErrTicketNumberExists, t.TicketNumber)
		}
		return entities.FieldTicket{}, err
	}
	return t, nil
}

func (r *FieldTicketDynamoRepository) GetByNumber(ctx context.Context, tenantID, ticketNumber string) (entities.FieldTicket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id":     &types.AttributeValueMemberS{Value: tenantID},
			"ticket_number": &types.AttributeValueMemberS{Value: ticketNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if len(out.Item) == 0 {
		return entities.FieldTicket{}, nil
	}

	var it fieldTicketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FieldTicket{}, err
	}
	return fromFieldTicketItem(it), nil
}

// Update replaces the whole aggregate. Totals are derived upstream and the
// whole-document write keeps them consistent with the entry lists.
func (r *FieldTicketDynamoRepository) Update(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error) {
	it := toFieldTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FieldTicket{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#tn)"),
		ExpressionAttributeNames: map[string]string{
			"#tn": "ticket_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FieldTicket{}, nil
		}
		return entities.FieldTicket{}, err
	}
	return t, nil
}

// ListByTenant reads the tenant partition in one paginated query. All pages
// come from the same partition, which is the consistency the dashboard
// aggregation needs.
func (r *FieldTicketDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.FieldTicket, error) {
	var tickets []entities.FieldTicket
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("tenant_id = :tid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid": &types.AttributeValueMemberS{Value: tenantID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it fieldTicketItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tickets = append(tickets, fromFieldTicketItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return tickets, nil
}

// SignBatch applies one signature to every ticket in a single
// TransactWriteItems call. Each update is conditioned on the ticket still
// being pending_signature and not deleted; one failed condition cancels the
// whole transaction with nothing written.
func (r *FieldTicketDynamoRepository) SignBatch(ctx context.Context, tenantID string, ticketNumbers []string, sig entities.InspectorSignature, now time.Time) error {
	if len(ticketNumbers) == 0 {
		return nil
	}
	if len(ticketNumbers) > transactLimit {
		return fmt.Errorf("batch of %d exceeds the transaction limit of %d", len(ticketNumbers), transactLimit)
	}

	sigAV, err := attributevalue.MarshalMap(toSignatureItem(sig))
	if err != nil {
		return err
	}
	nowStr := now.UTC().Format(time.RFC3339Nano)

	items := make([]types.TransactWriteItem, 0, len(ticketNumbers))
	for _, number := range ticketNumbers {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"tenant_id":     &types.AttributeValueMemberS{Value: tenantID},
					"ticket_number": &types.AttributeValueMemberS{Value: number},
				},
				UpdateExpression:    aws.String("SET #status = :signed, #sig = :sig, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#tn) AND #status = :pending AND #deleted = :false"),
				ExpressionAttributeNames: map[string]string{
					"#status":     "status",
					"#sig":        "signature",
					"#updated_at": "updated_at",
					"#tn":         "ticket_number",
					"#deleted":    "is_deleted",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":signed":  &types.AttributeValueMemberS{Value: string(entities.TicketStatusSigned)},
					":pending": &types.AttributeValueMemberS{Value: string(entities.TicketStatusPendingSignature)},
					":sig":     &types.AttributeValueMemberM{Value: sigAV},
					":now":     &types.AttributeValueMemberS{Value: nowStr},
					":false":   &types.AttributeValueMemberBOOL{Value: false},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("%w: %v", interfaces.ErrBatchPrecondition, err)
				}
			}
		}
		return err
	}
	return nil
}

func toFieldTicketItem(t entities.FieldTicket) fieldTicketItem {
	it := fieldTicketItem{
		ID:           t.ID,
		TenantID:     t.TenantID,
		JobID:        t.JobID,
		TicketNumber: t.TicketNumber,
		ChangeReason: string(t.ChangeReason),
		Description:  t.Description,

		WorkDate:  t.WorkDate.UTC().Format(time.RFC3339Nano),
		WorkStart: formatOptionalTime(t.WorkStart),
		WorkEnd:   formatOptionalTime(t.WorkEnd),

		Location: toGPSLocationItem(t.Location),

		SubmittedAt: formatTimePtr(t.SubmittedAt),
		SubmittedBy: t.SubmittedBy,

		ApprovedAt:    formatTimePtr(t.ApprovedAt),
		ApprovedBy:    t.ApprovedBy,
		ApprovalNotes: t.ApprovalNotes,

		IsDisputed:      t.IsDisputed,
		DisputedAt:      formatTimePtr(t.DisputedAt),
		DisputedBy:      t.DisputedBy,
		DisputeReason:   t.DisputeReason,
		DisputeCategory: t.DisputeCategory,

		ResolvedAt: formatTimePtr(t.ResolvedAt),
		ResolvedBy: t.ResolvedBy,
		Resolution: t.Resolution,

		MarkupRate: floatToString(t.MarkupRate),

		LaborTotal:     floatToString(t.LaborTotal),
		EquipmentTotal: floatToString(t.EquipmentTotal),
		MaterialTotal:  floatToString(t.MaterialTotal),
		Subtotal:       floatToString(t.Subtotal),
		Markup:         floatToString(t.Markup),
		TotalAmount:    floatToString(t.TotalAmount),

		Status: string(t.Status),

		BilledAt:   formatTimePtr(t.BilledAt),
		InvoiceRef: t.InvoiceRef,
		PaidAt:     formatTimePtr(t.PaidAt),

		VoidedAt:   formatTimePtr(t.VoidedAt),
		VoidedBy:   t.VoidedBy,
		VoidReason: t.VoidReason,

		IsDeleted:    t.IsDeleted,
		DeletedAt:    formatTimePtr(t.DeletedAt),
		DeletedBy:    t.DeletedBy,
		DeleteReason: t.DeleteReason,

		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	for _, e := range t.LaborEntries {
		it.LaborEntries = append(it.LaborEntries, laborEntryItem{
			ID:              e.ID,
			WorkerName:      e.WorkerName,
			WorkerRole:      e.WorkerRole,
			RegularHours:    floatToString(e.RegularHours),
			OvertimeHours:   floatToString(e.OvertimeHours),
			DoubleTimeHours: floatToString(e.DoubleTimeHours),
			RegularRate:     floatToString(e.RegularRate),
			OvertimeRate:    floatPtrToString(e.OvertimeRate),
			DoubleTimeRate:  floatPtrToString(e.DoubleTimeRate),
			TotalAmount:     floatToString(e.TotalAmount),
		})
	}
	for _, e := range t.EquipmentEntries {
		it.EquipmentEntries = append(it.EquipmentEntries, equipmentEntryItem{
			ID:           e.ID,
			Type:         string(e.Type),
			Description:  e.Description,
			Hours:        floatToString(e.Hours),
			HourlyRate:   floatToString(e.HourlyRate),
			StandbyHours: floatToString(e.StandbyHours),
			StandbyRate:  floatPtrToString(e.StandbyRate),
			TotalAmount:  floatToString(e.TotalAmount),
		})
	}
	for _, e := range t.MaterialEntries {
		it.MaterialEntries = append(it.MaterialEntries, materialEntryItem{
			ID:          e.ID,
			Description: e.Description,
			Quantity:    floatToString(e.Quantity),
			Unit:        e.Unit,
			UnitCost:    floatToString(e.UnitCost),
			Markup:      floatToString(e.Markup),
			Source:      string(e.Source),
			TotalAmount: floatToString(e.TotalAmount),
		})
	}
	for _, p := range t.Photos {
		it.Photos = append(it.Photos, photoItem{
			ID:      p.ID,
			URL:     p.URL,
			Caption: p.Caption,
			TakenAt: p.TakenAt.UTC().Format(time.RFC3339Nano),
		})
	}
	for _, e := range t.DisputeEvidence {
		it.DisputeEvidence = append(it.DisputeEvidence, evidenceItem{
			ID:          e.ID,
			URL:         e.URL,
			Type:        e.Type,
			Description: e.Description,
			AddedBy:     e.AddedBy,
			AddedAt:     e.AddedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	if t.Signature != nil {
		sig := toSignatureItem(*t.Signature)
		it.Signature = &sig
	}
	return it
}

func fromFieldTicketItem(it fieldTicketItem) entities.FieldTicket {
	t := entities.FieldTicket{
		ID:           it.ID,
		TenantID:     it.TenantID,
		JobID:        it.JobID,
		TicketNumber: it.TicketNumber,
		ChangeReason: entities.ChangeReason(it.ChangeReason),
		Description:  it.Description,

		WorkDate:  parseTime(it.WorkDate),
		WorkStart: parseTime(it.WorkStart),
		WorkEnd:   parseTime(it.WorkEnd),

		Location: fromGPSLocationItem(it.Location),

		SubmittedAt: parseTimePtr(it.SubmittedAt),
		SubmittedBy: it.SubmittedBy,

		ApprovedAt:    parseTimePtr(it.ApprovedAt),
		ApprovedBy:    it.ApprovedBy,
		ApprovalNotes: it.ApprovalNotes,

		IsDisputed:      it.IsDisputed,
		DisputedAt:      parseTimePtr(it.DisputedAt),
		DisputedBy:      it.DisputedBy,
		DisputeReason:   it.DisputeReason,
		DisputeCategory: it.DisputeCategory,

		ResolvedAt: parseTimePtr(it.ResolvedAt),
		ResolvedBy: it.ResolvedBy,
		Resolution: it.Resolution,

		MarkupRate: stringToFloat(it.MarkupRate),

		LaborTotal:     stringToFloat(it.LaborTotal),
		EquipmentTotal: stringToFloat(it.EquipmentTotal),
		MaterialTotal:  stringToFloat(it.MaterialTotal),
		Subtotal:       stringToFloat(it.Subtotal),
		Markup:         stringToFloat(it.Markup),
		TotalAmount:    stringToFloat(it.TotalAmount),

		Status: entities.TicketStatus(it.Status),

		BilledAt:   parseTimePtr(it.BilledAt),
		InvoiceRef: it.InvoiceRef,
		PaidAt:     parseTimePtr(it.PaidAt),

		VoidedAt:   parseTimePtr(it.VoidedAt),
		VoidedBy:   it.VoidedBy,
		VoidReason: it.VoidReason,

		IsDeleted:    it.IsDeleted,
		DeletedAt:    parseTimePtr(it.DeletedAt),
		DeletedBy:    it.DeletedBy,
		DeleteReason: it.DeleteReason,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}

	for _, e := range it.LaborEntries {
		t.LaborEntries = append(t.LaborEntries, entities.LaborEntry{
			ID:              e.ID,
			WorkerName:      e.WorkerName,
			WorkerRole:      e.WorkerRole,
			RegularHours:    stringToFloat(e.RegularHours),
			OvertimeHours:   stringToFloat(e.OvertimeHours),
			DoubleTimeHours: stringToFloat(e.DoubleTimeHours),
			RegularRate:     stringToFloat(e.RegularRate),
			OvertimeRate:    stringToFloatPtr(e.OvertimeRate),
			DoubleTimeRate:  stringToFloatPtr(e.DoubleTimeRate),
			TotalAmount:     stringToFloat(e.TotalAmount),
		})
	}
	for _, e := range it.EquipmentEntries {
		t.EquipmentEntries = append(t.EquipmentEntries, entities.EquipmentEntry{
			ID:           e.ID,
			Type:         entities.EquipmentType(e.Type),
			Description:  e.Description,
			Hours:        stringToFloat(e.Hours),
			HourlyRate:   stringToFloat(e.HourlyRate),
			StandbyHours: stringToFloat(e.StandbyHours),
			StandbyRate:  stringToFloatPtr(e.StandbyRate),
			TotalAmount:  stringToFloat(e.TotalAmount),
		})
	}
	for _, e := range it.MaterialEntries {
		t.MaterialEntries = append(t.MaterialEntries, entities.MaterialEntry{
			ID:          e.ID,
			Description: e.Description,
			Quantity:    stringToFloat(e.Quantity),
			Unit:        e.Unit,
			UnitCost:    stringToFloat(e.UnitCost),
			Markup:      stringToFloat(e.Markup),
			Source:      entities.MaterialSource(e.Source),
			TotalAmount: stringToFloat(e.TotalAmount),
		})
	}
	for _, p := range it.Photos {
		t.Photos = append(t.Photos, entities.Photo{
			ID:      p.ID,
			URL:     p.URL,
			Caption: p.Caption,
			TakenAt: parseTime(p.TakenAt),
		})
	}
	for _, e := range it.DisputeEvidence {
		t.DisputeEvidence = append(t.DisputeEvidence, entities.DisputeEvidenceItem{
			ID:          e.ID,
			URL:         e.URL,
			Type:        e.Type,
			Description: e.Description,
			AddedBy:     e.AddedBy,
			AddedAt:     parseTime(e.AddedAt),
		})
	}
	if it.Signature != nil {
		sig := fromSignatureItem(*it.Signature)
		t.Signature = &sig
	}
	return t
}

func toSignatureItem(s entities.InspectorSignature) signatureItem {
	return signatureItem{
		ImageData:   s.ImageData,
		SignerName:  s.SignerName,
		SignerTitle: s.SignerTitle,
		SignerEmail: s.SignerEmail,
		Location:    toGPSLocationItem(s.Location),
		SignedAt:    s.SignedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSignatureItem(it signatureItem) entities.InspectorSignature {
	return entities.InspectorSignature{
		ImageData:   it.ImageData,
		SignerName:  it.SignerName,
		SignerTitle: it.SignerTitle,
		SignerEmail: it.SignerEmail,
		Location:    fromGPSLocationItem(it.Location),
		SignedAt:    parseTime(it.SignedAt),
	}
}

func toGPSLocationItem(l entities.GPSLocation) gpsLocationItem {
	return gpsLocationItem{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Accuracy:  l.Accuracy,
		Altitude:  l.Altitude,
	}
}

func fromGPSLocationItem(it gpsLocationItem) entities.GPSLocation {
	return entities.GPSLocation{
		Latitude:  it.Latitude,
		Longitude: it.Longitude,
		Accuracy:  it.Accuracy,
		Altitude:  it.Altitude,
	}
}

func floatPtrToString(v *float64) *string {
	if v == nil {
		return nil
	}
	s := floatToString(*v)
	return &s
}

func stringToFloatPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	v := stringToFloat(*s)
	return &v
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
