package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"time"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWebhookNotFound   = errors.New("webhook registration not found")
	ErrInvalidWebhookURL = errors.New("invalid webhook url")
)

type WebhookInput struct {
	URL    string
	Events []string
	Active *bool
}

// IWebhookUseCase manages webhook registrations and exposes the delivery journal.
type IWebhookUseCase interface {
	Register(ctx context.Context, in WebhookInput) (entities.WebhookRegistration, error)
	List(ctx context.Context) ([]entities.WebhookRegistration, error)
	Delete(ctx context.Context, id string) error
	Logs(ctx context.Context) ([]entities.WebhookDeliveryLog, error)
}

type WebhookUseCase struct {
	repo    interfaces.IWebhookRepository
	logRepo interfaces.IWebhookLogRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IWebhookRepository, logRepo interfaces.IWebhookLogRepository) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, logRepo: logRepo}
}

func (u *WebhookUseCase) Register(ctx context.Context, in WebhookInput) (entities.WebhookRegistration, error) {
	parsed, err := url.Parse(in.URL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return entities.WebhookRegistration{}, ErrInvalidWebhookURL
	}

	events := in.Events
	if len(events) == 0 {
		events = []string{entities.EventWildcard}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	reg := entities.WebhookRegistration{
		ID:          uuid.NewString(),
		URL:         in.URL,
		Events:      events,
		Active:      active,
		DateCreated: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, reg)
	if err != nil {
		log.Printf("[webhook][usecase] register failed url=%s err=%v", in.URL, err)
		return entities.WebhookRegistration{}, err
	}
	log.Printf("[webhook][usecase] register success webhook_id=%s url=%s events=%v", created.ID, created.URL, created.Events)
	return created, nil
}

func (u *WebhookUseCase) List(ctx context.Context) ([]entities.WebhookRegistration, error) {
	return u.repo.List(ctx)
}

func (u *WebhookUseCase) Delete(ctx context.Context, id string) error {
	reg, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reg.ID == "" {
		return ErrWebhookNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[webhook][usecase] delete failed webhook_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[webhook][usecase] delete success webhook_id=%s", id)
	return nil
}

func (u *WebhookUseCase) Logs(ctx context.Context) ([]entities.WebhookDeliveryLog, error) {
	return u.logRepo.List(ctx)
}
