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
	defaultBudgetsTableName = "budgets"
	budgetsOfficeIDIndex    = "office_id-index"
)

type budgetClientItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type budgetRoomItem struct {
	Name string `dynamodbav:"name,omitempty"`
	Type string `dynamodbav:"type,omitempty"`
	Size string `dynamodbav:"size"`
}

type budgetHistoryItem struct {
	Date   string `dynamodbav:"date"`
	Action string `dynamodbav:"action"`
	Note   string `dynamodbav:"note,omitempty"`
}

type budgetItem struct {
	ID       string           `dynamodbav:"id"`
	OfficeID string           `dynamodbav:"office_id"`
	Client   budgetClientItem `dynamodbav:"client"`

	ServiceID    string           `dynamodbav:"service_id"`
	CalcMode     string           `dynamodbav:"calc_mode"`
	Area         float64          `dynamodbav:"area,omitempty"`
	Rooms        []budgetRoomItem `dynamodbav:"rooms,omitempty"`
	ComplexityID string           `dynamodbav:"complexity_id"`
	FinishID     string           `dynamodbav:"finish_id"`

	EstimatedHours int     `dynamodbav:"estimated_hours"`
	CostValue      float64 `dynamodbav:"cost_value"`
	Value          float64 `dynamodbav:"value"`
	Profit         float64 `dynamodbav:"profit"`

	Scope        []string `dynamodbav:"scope"`
	PaymentTerms string   `dynamodbav:"payment_terms"`

	Status          string              `dynamodbav:"status"`
	RejectionReason string              `dynamodbav:"rejection_reason,omitempty"`
	ProjectID       string              `dynamodbav:"project_id,omitempty"`
	History         []budgetHistoryItem `dynamodbav:"history"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: office_id-index (PK: office_id)

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// Save replaces the full item. Lifecycle transitions always rewrite status,
// history and linkage together, so a whole-item put is the simplest
// consistent write.
func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) ListByOfficeID(ctx context.Context, officeID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsOfficeIDIndex),
		KeyConditionExpression: aws.String("office_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: officeID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetItem(it))
	}
	return items, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	rooms := make([]budgetRoomItem, 0, len(b.Rooms))
	for _, room := range b.Rooms {
		rooms = append(rooms, budgetRoomItem{Name: room.Name, Type: room.Type, Size: string(room.Size)})
	}
	history := make([]budgetHistoryItem, 0, len(b.History))
	for _, h := range b.History {
		history = append(history, budgetHistoryItem{
			Date:   h.Date.UTC().Format(time.RFC3339Nano),
			Action: h.Action,
			Note:   h.Note,
		})
	}
	return budgetItem{
		ID:       b.ID,
		OfficeID: b.OfficeID,
		Client:   budgetClientItem{Name: b.Client.Name, Email: b.Client.Email, Phone: b.Client.Phone},

		ServiceID:    b.ServiceID,
		CalcMode:     string(b.CalcMode),
		Area:         b.Area,
		Rooms:        rooms,
		ComplexityID: b.ComplexityID,
		FinishID:     b.FinishID,

		EstimatedHours: b.EstimatedHours,
		CostValue:      b.CostValue,
		Value:          b.Value,
		Profit:         b.Profit,

		Scope:        b.Scope,
		PaymentTerms: string(b.PaymentTerms),

		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		ProjectID:       b.ProjectID,
		History:         history,

		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	rooms := make([]entities.Room, 0, len(it.Rooms))
	for _, room := range it.Rooms {
		rooms = append(rooms, entities.Room{Name: room.Name, Type: room.Type, Size: entities.RoomSize(room.Size)})
	}
	history := make([]entities.HistoryEvent, 0, len(it.History))
	for _, h := range it.History {
		date, _ := time.Parse(time.RFC3339Nano, h.Date)
		history = append(history, entities.HistoryEvent{Date: date, Action: h.Action, Note: h.Note})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:       it.ID,
		OfficeID: it.OfficeID,
		Client:   entities.Client{Name: it.Client.Name, Email: it.Client.Email, Phone: it.Client.Phone},

		ServiceID:    it.ServiceID,
		CalcMode:     entities.CalcMode(it.CalcMode),
		Area:         it.Area,
		Rooms:        rooms,
		ComplexityID: it.ComplexityID,
		FinishID:     it.FinishID,

		EstimatedHours: it.EstimatedHours,
		CostValue:      it.CostValue,
		Value:          it.Value,
		Profit:         it.Profit,

		Scope:        it.Scope,
		PaymentTerms: entities.PaymentTerms(it.PaymentTerms),

		Status:          entities.BudgetStatus(it.Status),
		RejectionReason: it.RejectionReason,
		ProjectID:       it.ProjectID,
		History:         history,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
