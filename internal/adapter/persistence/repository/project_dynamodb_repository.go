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
	defaultProjectsTableName = "projects"
	projectsOfficeIDIndex    = "office_id-index"
)

type milestoneItem struct {
	Date    string `dynamodbav:"date"`
	Type    string `dynamodbav:"type"`
	PhaseID string `dynamodbav:"phase,omitempty"`
}

type timeEntryItem struct {
	Date  string  `dynamodbav:"date"`
	Hours float64 `dynamodbav:"hours"`
	Note  string  `dynamodbav:"note,omitempty"`
}

type projectItem struct {
	ID         string `dynamodbav:"id"`
	BudgetID   string `dynamodbav:"budget_id"`
	OfficeID   string `dynamodbav:"office_id"`
	ClientName string `dynamodbav:"client_name"`
	ServiceID  string `dynamodbav:"service_id"`

	Stage    string          `dynamodbav:"stage"`
	Scope    []string        `dynamodbav:"scope"`
	Schedule []milestoneItem `dynamodbav:"schedule"`

	EstimatedHours int             `dynamodbav:"estimated_hours"`
	HoursUsed      float64         `dynamodbav:"hours_used"`
	Entries        []timeEntryItem `dynamodbav:"entries,omitempty"`

	StartDate string `dynamodbav:"start_date"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: office_id-index (PK: office_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) ListByOfficeID(ctx context.Context, officeID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsOfficeIDIndex),
		KeyConditionExpression: aws.String("office_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: officeID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func toProjectItem(p entities.Project) projectItem {
	schedule := make([]milestoneItem, 0, len(p.Schedule))
	for _, m := range p.Schedule {
		schedule = append(schedule, milestoneItem{
			Date:    m.Date.UTC().Format(time.RFC3339Nano),
			Type:    string(m.Type),
			PhaseID: m.PhaseID,
		})
	}
	entries := make([]timeEntryItem, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, timeEntryItem{
			Date:  e.Date.UTC().Format(time.RFC3339Nano),
			Hours: e.Hours,
			Note:  e.Note,
		})
	}
	return projectItem{
		ID:         p.ID,
		BudgetID:   p.BudgetID,
		OfficeID:   p.OfficeID,
		ClientName: p.ClientName,
		ServiceID:  p.ServiceID,

		Stage:    p.Stage,
		Scope:    p.Scope,
		Schedule: schedule,

		EstimatedHours: p.EstimatedHours,
		HoursUsed:      p.HoursUsed,
		Entries:        entries,

		StartDate: p.StartDate.UTC().Format(time.RFC3339Nano),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	schedule := make([]entities.Milestone, 0, len(it.Schedule))
	for _, m := range it.Schedule {
		date, _ := time.Parse(time.RFC3339Nano, m.Date)
		schedule = append(schedule, entities.Milestone{
			Date:    date,
			Type:    entities.MilestoneType(m.Type),
			PhaseID: m.PhaseID,
		})
	}
	entries := make([]entities.TimeEntry, 0, len(it.Entries))
	for _, e := range it.Entries {
		date, _ := time.Parse(time.RFC3339Nano, e.Date)
		entries = append(entries, entities.TimeEntry{Date: date, Hours: e.Hours, Note: e.Note})
	}
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Project{
		ID:         it.ID,
		BudgetID:   it.BudgetID,
		OfficeID:   it.OfficeID,
		ClientName: it.ClientName,
		ServiceID:  it.ServiceID,

		Stage:    it.Stage,
		Scope:    it.Scope,
		Schedule: schedule,

		EstimatedHours: it.EstimatedHours,
		HoursUsed:      it.HoursUsed,
		Entries:        entries,

		StartDate: startDate,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
