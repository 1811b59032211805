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
	defaultPaymentsTableName    = "payments"
	paymentsSubscriptionIDIndex = "subscription_id-index"
	paymentsExternalRefIndex    = "external_reference-index"
)

type paymentItem struct {
	ID                          string                 `dynamodbav:"id"`
	PreferenceID                string                 `dynamodbav:"preference_id,omitempty"`
	Status                      string                 `dynamodbav:"status"`
	StatusDetail                string                 `dynamodbav:"status_detail"`
	TransactionAmount           float64                `dynamodbav:"transaction_amount"`
	CurrencyID                  string                 `dynamodbav:"currency_id"`
	Description                 string                 `dynamodbav:"description,omitempty"`
	PaymentMethodID             string                 `dynamodbav:"payment_method_id,omitempty"`
	Installments                int                    `dynamodbav:"installments"`
	Card                        *entities.CardInfo     `dynamodbav:"card,omitempty"`
	Payer                       entities.Payer         `dynamodbav:"payer"`
	ExternalReference           string                 `dynamodbav:"external_reference,omitempty"`
	Metadata                    map[string]interface{} `dynamodbav:"metadata,omitempty"`
	SubscriptionID              string                 `dynamodbav:"subscription_id,omitempty"`
	Captured                    bool                   `dynamodbav:"captured"`
	Refunded                    bool                   `dynamodbav:"refunded"`
	RefundAmount                float64                `dynamodbav:"refund_amount"`
	NetReceivedAmount           float64                `dynamodbav:"net_received_amount"`
	TotalPaidAmount             float64                `dynamodbav:"total_paid_amount"`
	InstallmentAmount           float64                `dynamodbav:"installment_amount"`
	NotificationURL             string                 `dynamodbav:"notification_url,omitempty"`
	BackURLs                    entities.BackURLs      `dynamodbav:"back_urls"`
	CreateSubscriptionOnConfirm bool                   `dynamodbav:"create_subscription_on_confirm"`
	DateCreated                 string                 `dynamodbav:"date_created"`
	DateApproved                string                 `dynamodbav:"date_approved,omitempty"`
	DateLastUpdated             string                 `dynamodbav:"date_last_updated"`
	MoneyReleaseDate            string                 `dynamodbav:"money_release_date,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: subscription_id-index (PK: subscription_id)
//   - GSI: external_reference-index (PK: external_reference)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsSubscriptionIDIndex),
		KeyConditionExpression: aws.String("subscription_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: subscriptionID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListByExternalReference(ctx context.Context, externalReference string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalRefIndex),
		KeyConditionExpression: aws.String("external_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalReference},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raw))
	for _, m := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                          p.ID,
		PreferenceID:                p.PreferenceID,
		Status:                      string(p.Status),
		StatusDetail:                p.StatusDetail,
		TransactionAmount:           p.TransactionAmount,
		CurrencyID:                  p.CurrencyID,
		Description:                 p.Description,
		PaymentMethodID:             p.PaymentMethodID,
		Installments:                p.Installments,
		Card:                        p.Card,
		Payer:                       p.Payer,
		ExternalReference:           p.ExternalReference,
		Metadata:                    p.Metadata,
		SubscriptionID:              p.SubscriptionID,
		Captured:                    p.Captured,
		Refunded:                    p.Refunded,
		RefundAmount:                p.RefundAmount,
		NetReceivedAmount:           p.TransactionDetails.NetReceivedAmount,
		TotalPaidAmount:             p.TransactionDetails.TotalPaidAmount,
		InstallmentAmount:           p.TransactionDetails.InstallmentAmount,
		NotificationURL:             p.NotificationURL,
		BackURLs:                    p.BackURLs,
		CreateSubscriptionOnConfirm: p.CreateSubscriptionOnConfirm,
		DateCreated:                 formatTime(p.DateCreated),
		DateApproved:                formatTimePtr(p.DateApproved),
		DateLastUpdated:             formatTime(p.DateLastUpdated),
		MoneyReleaseDate:            formatTimePtr(p.MoneyReleaseDate),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		PreferenceID:      it.PreferenceID,
		Status:            entities.PaymentStatus(it.Status),
		StatusDetail:      it.StatusDetail,
		TransactionAmount: it.TransactionAmount,
		CurrencyID:        it.CurrencyID,
		Description:       it.Description,
		PaymentMethodID:   it.PaymentMethodID,
		Installments:      it.Installments,
		Card:              it.Card,
		Payer:             it.Payer,
		ExternalReference: it.ExternalReference,
		Metadata:          it.Metadata,
		SubscriptionID:    it.SubscriptionID,
		Captured:          it.Captured,
		Refunded:          it.Refunded,
		RefundAmount:      it.RefundAmount,
		TransactionDetails: entities.TransactionDetails{
			NetReceivedAmount: it.NetReceivedAmount,
			TotalPaidAmount:   it.TotalPaidAmount,
			InstallmentAmount: it.InstallmentAmount,
		},
		NotificationURL:             it.NotificationURL,
		BackURLs:                    it.BackURLs,
		CreateSubscriptionOnConfirm: it.CreateSubscriptionOnConfirm,
		DateCreated:                 parseTime(it.DateCreated),
		DateApproved:                parseTimePtr(it.DateApproved),
		DateLastUpdated:             parseTime(it.DateLastUpdated),
		MoneyReleaseDate:            parseTimePtr(it.MoneyReleaseDate),
	}
}
