package repository

import (
	"context"
	"log"
	"sort"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookLogsTableName = "webhook_logs"
	defaultWebhookLogCap        = 200
)

type webhookLogItem struct {
	ID           string `dynamodbav:"id"`
	URL          string `dynamodbav:"url"`
	Event        string `dynamodbav:"event"`
	ResourceID   string `dynamodbav:"resource_id"`
	StatusCode   int    `dynamodbav:"status_code"`
	Success      bool   `dynamodbav:"success"`
	Error        string `dynamodbav:"error,omitempty"`
	ResponseBody string `dynamodbav:"response_body,omitempty"`
	DateCreated  string `dynamodbav:"date_created"`
}

// WebhookLogDynamoRepository keeps a capped journal of delivery attempts.
// Entries beyond WEBHOOK_LOG_CAP are trimmed oldest-first on append.

type WebhookLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	cap       int
}

var _ interfaces.IWebhookLogRepository = (*WebhookLogDynamoRepository)(nil)

func NewWebhookLogDynamoRepository(ddb *dynamodb.Client) *WebhookLogDynamoRepository {
	return &WebhookLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_LOGS_TABLE", defaultWebhookLogsTableName),
		cap:       getenvIntDefault("WEBHOOK_LOG_CAP", defaultWebhookLogCap),
	}
}

func (r *WebhookLogDynamoRepository) Append(ctx context.Context, entry entities.WebhookDeliveryLog) error {
	av, err := attributevalue.MarshalMap(toWebhookLogItem(entry))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return err
	}

	// Trimming is best effort: losing old journal entries to a race is
	// acceptable, losing the append is not.
	if err := r.trim(ctx); err != nil {
		log.Printf("[webhook-log][repository] trim failed: %v", err)
	}
	return nil
}

func (r *WebhookLogDynamoRepository) List(ctx context.Context) ([]entities.WebhookDeliveryLog, error) {
	entries, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DateCreated.After(entries[j].DateCreated)
	})
	if len(entries) > r.cap {
		entries = entries[:r.cap]
	}
	return entries, nil
}

func (r *WebhookLogDynamoRepository) trim(ctx context.Context) error {
	entries, err := r.scanAll(ctx)
	if err != nil {
		return err
	}
	if len(entries) <= r.cap {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DateCreated.After(entries[j].DateCreated)
	})
	for _, stale := range entries[r.cap:] {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: stale.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *WebhookLogDynamoRepository) scanAll(ctx context.Context) ([]entities.WebhookDeliveryLog, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.WebhookDeliveryLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it webhookLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromWebhookLogItem(it))
	}
	return entries, nil
}

func toWebhookLogItem(entry entities.WebhookDeliveryLog) webhookLogItem {
	return webhookLogItem{
		ID:           entry.ID,
		URL:          entry.URL,
		Event:        entry.Event,
		ResourceID:   entry.ResourceID,
		StatusCode:   entry.StatusCode,
		Success:      entry.Success,
		Error:        entry.Error,
		ResponseBody: entry.ResponseBody,
		DateCreated:  formatTime(entry.DateCreated),
	}
}

func fromWebhookLogItem(it webhookLogItem) entities.WebhookDeliveryLog {
	return entities.WebhookDeliveryLog{
		ID:           it.ID,
		URL:          it.URL,
		Event:        it.Event,
		ResourceID:   it.ResourceID,
		StatusCode:   it.StatusCode,
		Success:      it.Success,
		Error:        it.Error,
		ResponseBody: it.ResponseBody,
		DateCreated:  parseTime(it.DateCreated),
	}
}
