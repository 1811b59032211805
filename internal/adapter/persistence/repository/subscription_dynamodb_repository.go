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

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsExternalRefIndex = "external_reference-index"
)

type subscriptionItem struct {
	ID                string                 `dynamodbav:"id"`
	PlanID            string                 `dynamodbav:"plan_id,omitempty"`
	Status            string                 `dynamodbav:"status"`
	PayerEmail        string                 `dynamodbav:"payer_email"`
	Reason            string                 `dynamodbav:"reason,omitempty"`
	ExternalReference string                 `dynamodbav:"external_reference,omitempty"`
	AutoRecurring     entities.AutoRecurring `dynamodbav:"auto_recurring"`
	NextPaymentDate   string                 `dynamodbav:"next_payment_date,omitempty"`
	Summarized        entities.Summarized    `dynamodbav:"summarized"`
	DateCreated       string                 `dynamodbav:"date_created"`
	LastModified      string                 `dynamodbav:"last_modified"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_reference-index (PK: external_reference)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
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
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Update(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) List(ctx context.Context) ([]entities.Subscription, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Subscription, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubscriptionItem(it))
	}
	return items, nil
}

func (r *SubscriptionDynamoRepository) GetByExternalReference(ctx context.Context, externalReference string) (entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsExternalRefIndex),
		KeyConditionExpression: aws.String("external_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalReference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Items) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:                s.ID,
		PlanID:            s.PlanID,
		Status:            string(s.Status),
		PayerEmail:        s.PayerEmail,
		Reason:            s.Reason,
		ExternalReference: s.ExternalReference,
		AutoRecurring:     s.AutoRecurring,
		NextPaymentDate:   formatTimePtr(s.NextPaymentDate),
		Summarized:        s.Summarized,
		DateCreated:       formatTime(s.DateCreated),
		LastModified:      formatTime(s.LastModified),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		ID:                it.ID,
		PlanID:            it.PlanID,
		Status:            entities.SubscriptionStatus(it.Status),
		PayerEmail:        it.PayerEmail,
		Reason:            it.Reason,
		ExternalReference: it.ExternalReference,
		AutoRecurring:     it.AutoRecurring,
		NextPaymentDate:   parseTimePtr(it.NextPaymentDate),
		Summarized:        it.Summarized,
		DateCreated:       parseTime(it.DateCreated),
		LastModified:      parseTime(it.LastModified),
	}
}
