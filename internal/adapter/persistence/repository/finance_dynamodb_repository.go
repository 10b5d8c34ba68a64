package repository

import (
	"context"
	"errors"
	"time"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFinanceTableName = "finance_entries"
	financeProjectIDIndex   = "project_id-index"

	// DynamoDB caps BatchWriteItem at 25 requests.
	batchWriteLimit = 25
)

type financeEntryItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	BudgetID  string `dynamodbav:"budget_id"`

	Value       float64 `dynamodbav:"value"`
	DueDate     string  `dynamodbav:"due_date"`
	Status      string  `dynamodbav:"status"`
	Installment string  `dynamodbav:"installment"`

	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FinanceDynamoRepository persists FinanceEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type FinanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinanceRepository = (*FinanceDynamoRepository)(nil)

func NewFinanceDynamoRepository(ddb *dynamodb.Client) *FinanceDynamoRepository {
	return &FinanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINANCE_TABLE", defaultFinanceTableName),
	}
}

func (r *FinanceDynamoRepository) CreateBatch(ctx context.Context, entries []entities.FinanceEntry) ([]entities.FinanceEntry, error) {
	for start := 0; start < len(entries); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(entries) {
			end = len(entries)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, e := range entries[start:end] {
			av, err := attributevalue.MarshalMap(toFinanceEntryItem(e))
			if err != nil {
				return nil, err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: requests},
		})
		if err != nil {
			return nil, err
		}
		// Retry unprocessed items once; installments are few, so a single
		// retry covers transient throttling.
		if pending := out.UnprocessedItems[r.tableName]; len(pending) > 0 {
			if _, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
			}); err != nil {
				return nil, err
			}
		}
	}
	return entries, nil
}

func (r *FinanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinanceEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinanceEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinanceEntry{}, nil
	}

	var it financeEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinanceEntry{}, err
	}
	return fromFinanceEntryItem(it), nil
}

func (r *FinanceDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.FinanceEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(financeProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FinanceEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it financeEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFinanceEntryItem(it))
	}
	return items, nil
}

func (r *FinanceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EntryStatus, providerPaymentID string) (entities.FinanceEntry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if providerPaymentID != "" {
		expr += ", #provider_payment_id = :provider_payment_id"
		values[":provider_payment_id"] = &types.AttributeValueMemberS{Value: providerPaymentID}
		names["#provider_payment_id"] = "provider_payment_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinanceEntry{}, nil
		}
		return entities.FinanceEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FinanceEntry{}, nil
	}

	var it financeEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FinanceEntry{}, err
	}
	return fromFinanceEntryItem(it), nil
}

func toFinanceEntryItem(e entities.FinanceEntry) financeEntryItem {
	return financeEntryItem{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		BudgetID:  e.BudgetID,

		Value:       e.Value,
		DueDate:     e.DueDate.UTC().Format(time.RFC3339Nano),
		Status:      string(e.Status),
		Installment: e.Installment,

		ProviderPaymentID: e.ProviderPaymentID,

		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFinanceEntryItem(it financeEntryItem) entities.FinanceEntry {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FinanceEntry{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		BudgetID:  it.BudgetID,

		Value:       it.Value,
		DueDate:     dueDate,
		Status:      entities.EntryStatus(it.Status),
		Installment: it.Installment,

		ProviderPaymentID: it.ProviderPaymentID,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
