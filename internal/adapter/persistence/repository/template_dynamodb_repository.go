package repository

import (
	"context"
	"encoding/json"
	"time"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTemplateOverridesTableName = "template_overrides"

type templateOverrideItem struct {
	OfficeID  string `dynamodbav:"office_id"`
	ServiceID string `dynamodbav:"service_id"`
	// The template body is stored as an opaque JSON document. Overrides
	// replace the default wholesale, so there is nothing to query inside.
	Template  string `dynamodbav:"template"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TemplateDynamoRepository persists per-office template overrides.
//
// Table requirements:
//   - PK: office_id (string)
//   - SK: service_id (string)

type TemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb *dynamodb.Client) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEMPLATE_OVERRIDES_TABLE", defaultTemplateOverridesTableName),
	}
}

func (r *TemplateDynamoRepository) GetOverride(ctx context.Context, officeID, serviceID string) (entities.ServiceTemplate, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"office_id":  &types.AttributeValueMemberS{Value: officeID},
			"service_id": &types.AttributeValueMemberS{Value: serviceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceTemplate{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceTemplate{}, false, nil
	}

	var it templateOverrideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceTemplate{}, false, err
	}

	var tpl entities.ServiceTemplate
	if err := json.Unmarshal([]byte(it.Template), &tpl); err != nil {
		return entities.ServiceTemplate{}, false, err
	}
	return tpl, true, nil
}

func (r *TemplateDynamoRepository) PutOverride(ctx context.Context, officeID string, tpl entities.ServiceTemplate) error {
	body, err := json.Marshal(tpl)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(templateOverrideItem{
		OfficeID:  officeID,
		ServiceID: tpl.ServiceID,
		Template:  string(body),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
