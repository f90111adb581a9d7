package repository

import (
	"context"
	"fmt"
	"strconv"

	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "ticket_sequences"

// TicketSequenceDynamoRepository allocates per-tenant per-year ticket
// sequence numbers with an atomic counter.
//
// Table requirements:
//   - PK: scope (string), formatted "<tenant_id>#<year>"
//
// Next uses an ADD update, which DynamoDB applies atomically and creates
// the counter item on first use. Two concurrent callers always observe
// distinct values; gaps only appear when a caller fails after allocating.

type TicketSequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketSequenceRepository = (*TicketSequenceDynamoRepository)(nil)

func NewTicketSequenceDynamoRepository(ddb *dynamodb.Client) *TicketSequenceDynamoRepository {
	return &TicketSequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *TicketSequenceDynamoRepository) Next(ctx context.Context, tenantID string, year int) (int64, error) {
	scope := fmt.Sprintf("%s#%d", tenantID, year)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"scope": &types.AttributeValueMemberS{Value: scope},
		},
		UpdateExpression: aws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("sequence counter %s missing seq attribute", scope)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence counter %s has non-numeric seq attribute", scope)
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
