package repository

import (
	"context"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID            string                 `dynamodbav:"id"`
	Reason        string                 `dynamodbav:"reason"`
	AutoRecurring entities.AutoRecurring `dynamodbav:"auto_recurring"`
	Status        string                 `dynamodbav:"status"`
	DateCreated   string                 `dynamodbav:"date_created"`
}

// PlanDynamoRepository persists preapproval plan templates in DynamoDB (PK: id).

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
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
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) List(ctx context.Context) ([]entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Plan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanItem(it))
	}
	return items, nil
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:            p.ID,
		Reason:        p.Reason,
		AutoRecurring: p.AutoRecurring,
		Status:        p.Status,
		DateCreated:   formatTime(p.DateCreated),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		ID:            it.ID,
		Reason:        it.Reason,
		AutoRecurring: it.AutoRecurring,
		Status:        it.Status,
		DateCreated:   parseTime(it.DateCreated),
	}
}
