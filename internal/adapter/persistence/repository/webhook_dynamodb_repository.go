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

const defaultWebhooksTableName = "webhooks"

type webhookItem struct {
	ID          string   `dynamodbav:"id"`
	URL         string   `dynamodbav:"url"`
	Events      []string `dynamodbav:"events"`
	Active      bool     `dynamodbav:"active"`
	DateCreated string   `dynamodbav:"date_created"`
}

// WebhookDynamoRepository persists webhook registrations in DynamoDB (PK: id).

type WebhookDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookRepository = (*WebhookDynamoRepository)(nil)

func NewWebhookDynamoRepository(ddb *dynamodb.Client) *WebhookDynamoRepository {
	return &WebhookDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOKS_TABLE", defaultWebhooksTableName),
	}
}

func (r *WebhookDynamoRepository) Create(ctx context.Context, registration entities.WebhookRegistration) (entities.WebhookRegistration, error) {
	av, err := attributevalue.MarshalMap(toWebhookItem(registration))
	if err != nil {
		return entities.WebhookRegistration{}, err
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
		return entities.WebhookRegistration{}, err
	}
	return registration, nil
}

func (r *WebhookDynamoRepository) GetByID(ctx context.Context, id string) (entities.WebhookRegistration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookRegistration{}, err
	}
	if len(out.Item) == 0 {
		return entities.WebhookRegistration{}, nil
	}

	var it webhookItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookRegistration{}, err
	}
	return fromWebhookItem(it), nil
}

func (r *WebhookDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *WebhookDynamoRepository) List(ctx context.Context) ([]entities.WebhookRegistration, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WebhookRegistration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it webhookItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWebhookItem(it))
	}
	return items, nil
}

func toWebhookItem(registration entities.WebhookRegistration) webhookItem {
	return webhookItem{
		ID:          registration.ID,
		URL:         registration.URL,
		Events:      registration.Events,
		Active:      registration.Active,
		DateCreated: formatTime(registration.DateCreated),
	}
}

func fromWebhookItem(it webhookItem) entities.WebhookRegistration {
	return entities.WebhookRegistration{
		ID:          it.ID,
		URL:         it.URL,
		Events:      it.Events,
		Active:      it.Active,
		DateCreated: parseTime(it.DateCreated),
	}
}
