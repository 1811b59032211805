package usecase

import (
	"context"
	"errors"
	"testing"

	"gatewaysim/internal/domain/entities"
	mock_interfaces "gatewaysim/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWebhookUseCaseForTest(ctrl *gomock.Controller) (*WebhookUseCase, *mock_interfaces.MockIWebhookRepository, *mock_interfaces.MockIWebhookLogRepository) {
	repo := mock_interfaces.NewMockIWebhookRepository(ctrl)
	logRepo := mock_interfaces.NewMockIWebhookLogRepository(ctrl)
	return NewWebhookUseCase(repo, logRepo), repo, logRepo
}

func TestWebhookUseCase_Register(t *testing.T) {
	t.Run("rejects bad urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newWebhookUseCaseForTest(ctrl)

		for _, raw := range []string{"", "not-a-url", "ftp://host/hook", "http://"} {
			if _, err := uc.Register(context.Background(), WebhookInput{URL: raw}); !errors.Is(err, ErrInvalidWebhookURL) {
				t.Fatalf("url %q: expected ErrInvalidWebhookURL, got %v", raw, err)
			}
		}
	})

	t.Run("defaults to wildcard events and active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newWebhookUseCaseForTest(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WebhookRegistration{})).DoAndReturn(
			func(_ context.Context, r entities.WebhookRegistration) (entities.WebhookRegistration, error) {
				if r.ID == "" {
					t.Fatalf("expected generated webhook id")
				}
				return r, nil
			},
		)

		reg, err := uc.Register(context.Background(), WebhookInput{URL: "https://merchant.test/hooks"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reg.Events) != 1 || reg.Events[0] != entities.EventWildcard {
			t.Fatalf("expected wildcard default, got %v", reg.Events)
		}
		if !reg.Active {
			t.Fatalf("expected registration active by default")
		}
	})

	t.Run("explicit events and inactive preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newWebhookUseCaseForTest(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.WebhookRegistration) (entities.WebhookRegistration, error) { return r, nil },
		)

		inactive := false
		reg, err := uc.Register(context.Background(), WebhookInput{
			URL:    "http://merchant.test/hooks",
			Events: []string{entities.EventPaymentCreated},
			Active: &inactive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reg.Events) != 1 || reg.Events[0] != entities.EventPaymentCreated {
			t.Fatalf("unexpected events %v", reg.Events)
		}
		if reg.Active {
			t.Fatalf("expected inactive registration")
		}
	})
}

func TestWebhookUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newWebhookUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "hook-404").Return(entities.WebhookRegistration{}, nil)

		if err := uc.Delete(context.Background(), "hook-404"); !errors.Is(err, ErrWebhookNotFound) {
			t.Fatalf("expected ErrWebhookNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newWebhookUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "hook-1").Return(entities.WebhookRegistration{ID: "hook-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "hook-1").Return(nil)

		if err := uc.Delete(context.Background(), "hook-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_Logs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, logRepo := newWebhookUseCaseForTest(ctrl)

	logRepo.EXPECT().List(gomock.Any()).Return([]entities.WebhookDeliveryLog{{ID: "d-1", Success: true}}, nil)

	logs, err := uc.Logs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != "d-1" {
		t.Fatalf("unexpected logs %+v", logs)
	}
}
