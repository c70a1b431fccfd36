package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRfqsTableName = "rfqs"
	casMaxAttempts       = 5
)

type rfqItem struct {
	ID              string `dynamodbav:"id"`
	Status          string `dynamodbav:"status"`
	ProjectName     string `dynamodbav:"project_name,omitempty"`
	Company         string `dynamodbav:"company,omitempty"`
	ContactName     string `dynamodbav:"contact_name,omitempty"`
	ContactEmail    string `dynamodbav:"contact_email"`
	Country         string `dynamodbav:"country,omitempty"`
	Quantity        int    `dynamodbav:"quantity"`
	Material        string `dynamodbav:"material,omitempty"`
	Stage           string `dynamodbav:"stage,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	VendorUnitPrice string `dynamodbav:"vendor_unit_price,omitempty"`
	Currency        string `dynamodbav:"currency"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	Version         int64  `dynamodbav:"version"`
}

// RfqDynamoRepository persists Rfq records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update serializes read-modify-write per id with an optimistic CAS on the
// version attribute: the full mutated record is written back behind a
// ConditionExpression pinning the version that was read, and a conditional
// check failure triggers a re-read and retry. Concurrent mutators on the
// same id therefore never overwrite each other's committed state.

type RfqDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRfqRepository = (*RfqDynamoRepository)(nil)

func NewRfqDynamoRepository(ddb *dynamodb.Client) *RfqDynamoRepository {
	return &RfqDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RFQS_TABLE", defaultRfqsTableName),
	}
}

func (r *RfqDynamoRepository) Create(ctx context.Context, rec entities.Rfq) (entities.Rfq, error) {
	it := toRfqItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Rfq{}, err
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
		return entities.Rfq{}, err
	}
	return rec, nil
}

func (r *RfqDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rfq, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rfq{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rfq{}, nil
	}

	var it rfqItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rfq{}, err
	}
	return fromRfqItem(it), nil
}

func (r *RfqDynamoRepository) List(ctx context.Context) ([]entities.Rfq, error) {
	records := make([]entities.Rfq, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it rfqItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromRfqItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (r *RfqDynamoRepository) Update(ctx context.Context, id string, mutate func(rec *entities.Rfq) error) (entities.Rfq, error) {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Rfq{}, err
		}
		if current.ID == "" {
			return entities.Rfq{}, nil
		}

		expectedVersion := current.Version
		if err := mutate(&current); err != nil {
			return entities.Rfq{}, err
		}
		current.Version = expectedVersion + 1
		current.UpdatedAt = time.Now().UTC()

		av, err := attributevalue.MarshalMap(toRfqItem(current))
		if err != nil {
			return entities.Rfq{}, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				// Lost the race; re-read and reapply the mutator.
				continue
			}
			return entities.Rfq{}, err
		}
		return current, nil
	}
	return entities.Rfq{}, fmt.Errorf("update contention on rfq %s after %d attempts", id, casMaxAttempts)
}

func toRfqItem(rec entities.Rfq) rfqItem {
	vendor := ""
	if rec.VendorUnitPrice != nil {
		vendor = floatToString(*rec.VendorUnitPrice)
	}
	return rfqItem{
		ID:              rec.ID,
		Status:          string(rec.Status),
		ProjectName:     rec.ProjectName,
		Company:         rec.Company,
		ContactName:     rec.ContactName,
		ContactEmail:    rec.ContactEmail,
		Country:         rec.Country,
		Quantity:        rec.Quantity,
		Material:        rec.Material,
		Stage:           rec.Stage,
		Notes:           rec.Notes,
		VendorUnitPrice: vendor,
		Currency:        rec.Currency,
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:         rec.Version,
	}
}

func fromRfqItem(it rfqItem) entities.Rfq {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var vendor *float64
	if it.VendorUnitPrice != "" {
		if v, err := strconv.ParseFloat(it.VendorUnitPrice, 64); err == nil {
			vendor = &v
		}
	}

	return entities.Rfq{
		ID:              it.ID,
		Status:          entities.RfqStatus(it.Status),
		ProjectName:     it.ProjectName,
		Company:         it.Company,
		ContactName:     it.ContactName,
		ContactEmail:    it.ContactEmail,
		Country:         it.Country,
		Quantity:        it.Quantity,
		Material:        it.Material,
		Stage:           it.Stage,
		Notes:           it.Notes,
		VendorUnitPrice: vendor,
		Currency:        it.Currency,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		Version:         it.Version,
	}
}
