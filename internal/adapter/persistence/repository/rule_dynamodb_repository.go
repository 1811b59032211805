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

const defaultRulesTableName = "simulation_rules"

type ruleItem struct {
	ID           string                 `dynamodbav:"id"`
	Name         string                 `dynamodbav:"name,omitempty"`
	Conditions   map[string]interface{} `dynamodbav:"conditions"`
	Status       string                 `dynamodbav:"status"`
	StatusDetail string                 `dynamodbav:"status_detail,omitempty"`
	Priority     int                    `dynamodbav:"priority"`
	Active       bool                   `dynamodbav:"active"`
	DateCreated  string                 `dynamodbav:"date_created"`
}

// RuleDynamoRepository persists simulation rules in DynamoDB (PK: id).

type RuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRuleRepository = (*RuleDynamoRepository)(nil)

func NewRuleDynamoRepository(ddb *dynamodb.Client) *RuleDynamoRepository {
	return &RuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RULES_TABLE", defaultRulesTableName),
	}
}

func (r *RuleDynamoRepository) Create(ctx context.Context, rule entities.SimulationRule) (entities.SimulationRule, error) {
	av, err := attributevalue.MarshalMap(toRuleItem(rule))
	if err != nil {
		return entities.SimulationRule{}, err
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
		return entities.SimulationRule{}, err
	}
	return rule, nil
}

func (r *RuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.SimulationRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SimulationRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.SimulationRule{}, nil
	}

	var it ruleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SimulationRule{}, err
	}
	return fromRuleItem(it), nil
}

func (r *RuleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *RuleDynamoRepository) List(ctx context.Context) ([]entities.SimulationRule, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SimulationRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ruleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRuleItem(it))
	}
	return items, nil
}

func toRuleItem(rule entities.SimulationRule) ruleItem {
	return ruleItem{
		ID:           rule.ID,
		Name:         rule.Name,
		Conditions:   rule.Conditions,
		Status:       rule.Status,
		StatusDetail: rule.StatusDetail,
		Priority:     rule.Priority,
		Active:       rule.Active,
		DateCreated:  formatTime(rule.DateCreated),
	}
}

func fromRuleItem(it ruleItem) entities.SimulationRule {
	return entities.SimulationRule{
		ID:           it.ID,
		Name:         it.Name,
		Conditions:   it.Conditions,
		Status:       it.Status,
		StatusDetail: it.StatusDetail,
		Priority:     it.Priority,
		Active:       it.Active,
		DateCreated:  parseTime(it.DateCreated),
	}
}
