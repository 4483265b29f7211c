package repository

import (
	"context"
	"strconv"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposit_payments"
	depositsDraftIDIndex     = "draft_id-index"
)

type depositPaymentItem struct {
	ID                string                 `dynamodbav:"id"`
	DraftID           string                 `dynamodbav:"draft_id"`
	Amount            string                 `dynamodbav:"amount"`
	Date              string                 `dynamodbav:"date"`
	Status            string                 `dynamodbav:"status"`
	GatewayPayload    map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `dynamodbav:"gateway_payload_raw,omitempty"`
}

// DepositPaymentDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: draft_id-index (PK: draft_id)

type DepositPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb *dynamodb.Client) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	it := toDepositPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DepositPayment{}, err
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
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositPaymentItem(it), nil
}

func (r *DepositPaymentDynamoRepository) ListByDraftID(ctx context.Context, draftID string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsDraftIDIndex),
		KeyConditionExpression: aws.String("draft_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: draftID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromDepositPaymentItem(it))
	}
	return payments, nil
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:                p.ID,
		DraftID:           p.DraftID,
		Amount:            floatToString(p.Amount),
		Date:              formatTime(p.Date),
		Status:            string(p.Status),
		GatewayPayload:    p.GatewayPayload,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	p := entities.DepositPayment{
		ID:             it.ID,
		DraftID:        it.DraftID,
		Amount:         amount,
		Date:           parseTime(it.Date),
		Status:         entities.PaymentStatus(it.Status),
		GatewayPayload: it.GatewayPayload,
	}
	if it.GatewayPayloadRaw != "" {
		p.GatewayPayloadRaw = []byte(it.GatewayPayloadRaw)
	}
	return p
}
