package repository

import (
	"context"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOfficesTableName = "offices"

type teamMemberItem struct {
	Name         string  `dynamodbav:"name"`
	Salary       float64 `dynamodbav:"salary"`
	MonthlyHours float64 `dynamodbav:"monthly_hours"`
}

type fixedCostItem struct {
	Name  string  `dynamodbav:"name"`
	Value float64 `dynamodbav:"value"`
}

type officeItem struct {
	ID            string           `dynamodbav:"id"`
	Name          string           `dynamodbav:"name"`
	Team          []teamMemberItem `dynamodbav:"team"`
	FixedCosts    []fixedCostItem  `dynamodbav:"fixed_costs"`
	MarginPercent float64          `dynamodbav:"margin_percent"`
}

// OfficeDynamoRepository reads OfficeProfile entities from DynamoDB.
// The pricing engine never writes office settings.
//
// Table requirements:
//   - PK: id (string)

type OfficeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOfficeRepository = (*OfficeDynamoRepository)(nil)

func NewOfficeDynamoRepository(ddb *dynamodb.Client) *OfficeDynamoRepository {
	return &OfficeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFICES_TABLE", defaultOfficesTableName),
	}
}

func (r *OfficeDynamoRepository) GetByID(ctx context.Context, id string) (entities.OfficeProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OfficeProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.OfficeProfile{}, nil
	}

	var it officeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OfficeProfile{}, err
	}

	team := make([]entities.TeamMember, 0, len(it.Team))
	for _, m := range it.Team {
		team = append(team, entities.TeamMember{Name: m.Name, Salary: m.Salary, MonthlyHours: m.MonthlyHours})
	}
	costs := make([]entities.FixedCost, 0, len(it.FixedCosts))
	for _, c := range it.FixedCosts {
		costs = append(costs, entities.FixedCost{Name: c.Name, Value: c.Value})
	}
	return entities.OfficeProfile{
		ID:            it.ID,
		Name:          it.Name,
		Team:          team,
		FixedCosts:    costs,
		MarginPercent: it.MarginPercent,
	}, nil
}
