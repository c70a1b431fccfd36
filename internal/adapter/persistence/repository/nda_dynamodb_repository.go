package repository

import (
	"context"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNdasTableName = "ndas"
	ndasEmailIndex       = "email-index"
)

type ndaItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	Company         string `dynamodbav:"company"`
	AcceptedVersion string `dynamodbav:"accepted_version"`
	SourceAddress   string `dynamodbav:"source_address,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// NdaDynamoRepository persists NDA acceptance records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type NdaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INdaRepository = (*NdaDynamoRepository)(nil)

func NewNdaDynamoRepository(ddb *dynamodb.Client) *NdaDynamoRepository {
	return &NdaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NDAS_TABLE", defaultNdasTableName),
	}
}

func (r *NdaDynamoRepository) Create(ctx context.Context, n entities.Nda) (entities.Nda, error) {
	av, err := attributevalue.MarshalMap(toNdaItem(n))
	if err != nil {
		return entities.Nda{}, err
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
		return entities.Nda{}, err
	}
	return n, nil
}

func (r *NdaDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Nda, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ndasEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Nda, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ndaItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNdaItem(it))
	}
	return items, nil
}

func toNdaItem(n entities.Nda) ndaItem {
	return ndaItem{
		ID:              n.ID,
		Name:            n.Name,
		Email:           n.Email,
		Company:         n.Company,
		AcceptedVersion: n.AcceptedVersion,
		SourceAddress:   n.SourceAddress,
		CreatedAt:       n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNdaItem(it ndaItem) entities.Nda {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Nda{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		Company:         it.Company,
		AcceptedVersion: it.AcceptedVersion,
		SourceAddress:   it.SourceAddress,
		CreatedAt:       createdAt,
	}
}
