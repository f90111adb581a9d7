package repository

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName  = "ticket_payments"
	paymentsTicketNumberIndex = "ticket_number-index"
)

type ticketPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	TenantID           string                 `dynamodbav:"tenant_id"`
	TicketNumber       string                 `dynamodbav:"ticket_number"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// TicketPaymentDynamoRepository persists TicketPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ticket_number-index (PK: ticket_number)

type TicketPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketPaymentRepository = (*TicketPaymentDynamoRepository)(nil)

func NewTicketPaymentDynamoRepository(ddb *dynamodb.Client) *TicketPaymentDynamoRepository {
	return &TicketPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *TicketPaymentDynamoRepository) Create(ctx context.Context, p entities.TicketPayment) (entities.TicketPayment, error) {
	it := toTicketPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TicketPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TicketPayment{}, err
	}
	return p, nil
}

func (r *TicketPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.TicketPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TicketPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.TicketPayment{}, nil
	}

	var it ticketPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TicketPayment{}, err
	}
	return fromTicketPaymentItem(it), nil
}

// ListByTicketNumber queries the ticket_number-index GSI. Ticket numbers are
// unique only per tenant and year, so the query filters on tenant_id as well;
// without it a lookup would return another tenant's payments.
func (r *TicketPaymentDynamoRepository) ListByTicketNumber(ctx context.Context, tenantID, ticketNumber string) ([]entities.TicketPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsTicketNumberIndex),
		KeyConditionExpression: aws.String("ticket_number = :tn"),
		FilterExpression:       aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tn":  &types.AttributeValueMemberS{Value: ticketNumber},
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TicketPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ticketPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTicketPaymentItem(it))
	}
	return items, nil
}

func toTicketPaymentItem(p entities.TicketPayment) ticketPaymentItem {
	return ticketPaymentItem{
		ID:                 p.ID,
		TenantID:           p.TenantID,
		TicketNumber:       p.TicketNumber,
		Amount:             floatToString(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromTicketPaymentItem(it ticketPaymentItem) entities.TicketPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.TicketPayment{
		ID:                 it.ID,
		TenantID:           it.TenantID,
		TicketNumber:       it.TicketNumber,
		Amount:             stringToFloat(it.Amount),
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
