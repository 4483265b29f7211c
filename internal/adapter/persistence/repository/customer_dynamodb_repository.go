package repository

import (
	"context"
	"strings"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Surname       string `dynamodbav:"surname"`
	SecondSurname string `dynamodbav:"second_surname,omitempty"`
	NationalID    string `dynamodbav:"national_id,omitempty"`
	Phone         string `dynamodbav:"phone"`
	Email         string `dynamodbav:"email,omitempty"`
	Address       string `dynamodbav:"address,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	// SearchBlob is the lowercased concatenation of the searchable fields;
	// DynamoDB contains() is case-sensitive, so matching happens against this.
	SearchBlob string `dynamodbav:"search_blob"`
}

// CustomerDynamoRepository is the DynamoDB-backed customer directory.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerDirectory = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(search_blob, :term)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":term": &types.AttributeValueMemberS{Value: strings.ToLower(term)},
		},
	})
	if err != nil {
		return nil, err
	}

	customers := make([]entities.Customer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it customerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		customers = append(customers, fromCustomerItem(it))
	}
	return customers, nil
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it := toCustomerItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	blob := strings.ToLower(strings.Join([]string{c.Name, c.Surname, c.SecondSurname, c.NationalID, c.Phone, c.Email}, " "))
	return customerItem{
		ID:            c.ID,
		Name:          c.Name,
		Surname:       c.Surname,
		SecondSurname: c.SecondSurname,
		NationalID:    c.NationalID,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     formatTime(c.CreatedAt),
		SearchBlob:    blob,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:            it.ID,
		Name:          it.Name,
		Surname:       it.Surname,
		SecondSurname: it.SecondSurname,
		NationalID:    it.NationalID,
		Phone:         it.Phone,
		Email:         it.Email,
		Address:       it.Address,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
