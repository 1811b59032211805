package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatewaysim/internal/domain/entities"
	mock_interfaces "gatewaysim/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type subscriptionMocks struct {
	repo        *mock_interfaces.MockISubscriptionRepository
	planRepo    *mock_interfaces.MockIPlanRepository
	paymentRepo *mock_interfaces.MockIPaymentRepository
	ruleRepo    *mock_interfaces.MockIRuleRepository
	notifier    *mock_interfaces.MockIEventNotifier
}

func newSubscriptionUseCaseForTest(ctrl *gomock.Controller) (*SubscriptionUseCase, subscriptionMocks) {
	m := subscriptionMocks{
		repo:        mock_interfaces.NewMockISubscriptionRepository(ctrl),
		planRepo:    mock_interfaces.NewMockIPlanRepository(ctrl),
		paymentRepo: mock_interfaces.NewMockIPaymentRepository(ctrl),
		ruleRepo:    mock_interfaces.NewMockIRuleRepository(ctrl),
		notifier:    mock_interfaces.NewMockIEventNotifier(ctrl),
	}
	uc := NewSubscriptionUseCase(m.repo, m.planRepo, m.paymentRepo, NewStatusResolver(m.ruleRepo), m.notifier)
	return uc, m
}

func echoSubscriptionUpdate(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
	return s, nil
}

func TestSubscriptionUseCase_CreatePlan(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.CreatePlan(context.Background(), PlanInput{Reason: "  "})
		if !errors.Is(err, ErrMissingPlanReason) {
			t.Fatalf("expected ErrMissingPlanReason, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.planRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Plan{})).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) {
				if p.ID == "" {
					t.Fatalf("expected generated plan id")
				}
				if p.Status != entities.PlanStatusActive {
					t.Fatalf("expected active plan, got %s", p.Status)
				}
				if p.AutoRecurring.Frequency != 1 || p.AutoRecurring.FrequencyType != entities.FrequencyTypeMonths {
					t.Fatalf("expected monthly default cadence, got %+v", p.AutoRecurring)
				}
				if p.AutoRecurring.CurrencyID == "" {
					t.Fatalf("expected default currency")
				}
				return p, nil
			},
		)

		plan, err := uc.CreatePlan(context.Background(), PlanInput{
			Reason:        "  Gold tier  ",
			AutoRecurring: entities.AutoRecurring{TransactionAmount: 30},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Reason != "Gold tier" {
			t.Fatalf("expected trimmed reason, got %q", plan.Reason)
		}
	})
}

func TestSubscriptionUseCase_Create(t *testing.T) {
	t.Run("missing payer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), SubscriptionInput{
			AutoRecurring: &entities.AutoRecurring{TransactionAmount: 30},
		})
		if !errors.Is(err, ErrMissingPayerEmail) {
			t.Fatalf("expected ErrMissingPayerEmail, got %v", err)
		}
	})

	t.Run("missing amount without plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), SubscriptionInput{PayerEmail: "payer@test.com"})
		if !errors.Is(err, ErrMissingRecurringAmount) {
			t.Fatalf("expected ErrMissingRecurringAmount, got %v", err)
		}
	})

	t.Run("plan supplies defaults, inline overrides win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		reps := 12
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(entities.Plan{
			ID:     "plan-1",
			Reason: "Gold tier",
			AutoRecurring: entities.AutoRecurring{
				Frequency:         1,
				FrequencyType:     entities.FrequencyTypeMonths,
				TransactionAmount: 30,
				CurrencyID:        "BRL",
				Repetitions:       &reps,
			},
		}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				return s, nil
			},
		)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPreapproval, "created", gomock.Any(), "")

		sub, err := uc.Create(context.Background(), SubscriptionInput{
			PlanID:     "plan-1",
			PayerEmail: "payer@test.com",
			AutoRecurring: &entities.AutoRecurring{
				TransactionAmount: 45, // inline beats the plan amount
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Reason != "Gold tier" {
			t.Fatalf("expected reason inherited from plan, got %q", sub.Reason)
		}
		if sub.AutoRecurring.TransactionAmount != 45 {
			t.Fatalf("expected inline amount 45, got %.2f", sub.AutoRecurring.TransactionAmount)
		}
		if sub.AutoRecurring.Frequency != 1 || sub.AutoRecurring.FrequencyType != entities.FrequencyTypeMonths {
			t.Fatalf("expected cadence from plan, got %+v", sub.AutoRecurring)
		}
		if sub.Status != entities.SubscriptionStatusAuthorized {
			t.Fatalf("expected authorized default, got %s", sub.Status)
		}
		if sub.Summarized.PendingChargeQuantity == nil || *sub.Summarized.PendingChargeQuantity != 12 {
			t.Fatalf("expected pending charges seeded from repetitions, got %+v", sub.Summarized.PendingChargeQuantity)
		}
		if sub.NextPaymentDate == nil {
			t.Fatalf("expected next_payment_date to be scheduled")
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-missing").Return(entities.Plan{}, nil)

		_, err := uc.Create(context.Background(), SubscriptionInput{
			PlanID:     "plan-missing",
			PayerEmail: "payer@test.com",
		})
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("invalid requested status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), SubscriptionInput{
			PayerEmail:    "payer@test.com",
			Status:        "frozen",
			AutoRecurring: &entities.AutoRecurring{TransactionAmount: 30},
		})
		if !errors.Is(err, ErrInvalidSubscriptionStatus) {
			t.Fatalf("expected ErrInvalidSubscriptionStatus, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_Update(t *testing.T) {
	baseSub := func() entities.Subscription {
		return entities.Subscription{
			ID:         "sub-1",
			Status:     entities.SubscriptionStatusAuthorized,
			PayerEmail: "payer@test.com",
			AutoRecurring: entities.AutoRecurring{
				Frequency:         1,
				FrequencyType:     entities.FrequencyTypeMonths,
				TransactionAmount: 30,
				CurrencyID:        "BRL",
			},
		}
	}

	t.Run("illegal transition denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		sub := baseSub()
		sub.Status = entities.SubscriptionStatusCancelled
		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)

		next := string(entities.SubscriptionStatusAuthorized)
		_, err := uc.Update(context.Background(), "sub-1", SubscriptionPatch{Status: &next})
		if !errors.Is(err, ErrSubscriptionTransitionDenied) {
			t.Fatalf("expected ErrSubscriptionTransitionDenied, got %v", err)
		}
	})

	t.Run("merges recurring patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(baseSub(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPreapproval, "updated", "sub-1", "")

		updated, err := uc.Update(context.Background(), "sub-1", SubscriptionPatch{
			AutoRecurring: &entities.AutoRecurring{TransactionAmount: 50},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.AutoRecurring.TransactionAmount != 50 {
			t.Fatalf("expected amount patched to 50, got %.2f", updated.AutoRecurring.TransactionAmount)
		}
		if updated.AutoRecurring.Frequency != 1 || updated.AutoRecurring.CurrencyID != "BRL" {
			t.Fatalf("expected untouched fields preserved, got %+v", updated.AutoRecurring)
		}
	})

	t.Run("pause and reactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(baseSub(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPreapproval, "updated", "sub-1", "")

		paused, err := uc.Pause(context.Background(), "sub-1")
		if err != nil {
			t.Fatalf("pause: unexpected error: %v", err)
		}
		if paused.Status != entities.SubscriptionStatusPaused {
			t.Fatalf("expected paused, got %s", paused.Status)
		}

		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(paused, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPreapproval, "updated", "sub-1", "")

		active, err := uc.Reactivate(context.Background(), "sub-1")
		if err != nil {
			t.Fatalf("reactivate: unexpected error: %v", err)
		}
		if active.Status != entities.SubscriptionStatusAuthorized {
			t.Fatalf("expected authorized, got %s", active.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Subscription{}, nil)

		reason := "changed"
		_, err := uc.Update(context.Background(), "nope", SubscriptionPatch{Reason: &reason})
		if !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GeneratePayment(t *testing.T) {
	authorizedSub := func() entities.Subscription {
		reps := 3
		return entities.Subscription{
			ID:                "sub-1",
			Status:            entities.SubscriptionStatusAuthorized,
			PayerEmail:        "payer@test.com",
			Reason:            "Gold tier",
			ExternalReference: "order-9",
			AutoRecurring: entities.AutoRecurring{
				Frequency:         1,
				FrequencyType:     entities.FrequencyTypeMonths,
				TransactionAmount: 30,
				CurrencyID:        "BRL",
				Repetitions:       &reps,
			},
			Summarized: entities.Summarized{PendingChargeQuantity: &reps},
		}
	}

	t.Run("approved charge updates counters and schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		sub := authorizedSub()
		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		m.ruleRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.SubscriptionID != "sub-1" {
					t.Fatalf("expected payment linked to subscription, got %q", p.SubscriptionID)
				}
				if p.TransactionAmount != 30 || p.Description != "Gold tier" {
					t.Fatalf("unexpected payment %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved || !p.Captured {
					t.Fatalf("expected captured approval, got %s captured=%v", p.Status, p.Captured)
				}
				return p, nil
			},
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "")

		before := time.Now().UTC()
		result, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := result.Subscription.Summarized
		if sum.ChargedQuantity != 1 || sum.ChargedAmount != 30 || sum.LastChargedAmount != 30 {
			t.Fatalf("unexpected summary %+v", sum)
		}
		if sum.PendingChargeQuantity == nil || *sum.PendingChargeQuantity != 2 {
			t.Fatalf("expected pending charges decremented to 2, got %+v", sum.PendingChargeQuantity)
		}
		if sum.LastChargedDate == nil || sum.LastChargedDate.Before(before) {
			t.Fatalf("expected last_charged_date set, got %+v", sum.LastChargedDate)
		}
		if result.Subscription.NextPaymentDate == nil {
			t.Fatalf("expected next_payment_date advanced")
		}
		wantNext := before.AddDate(0, 1, 0)
		if diff := result.Subscription.NextPaymentDate.Sub(wantNext); diff < -time.Minute || diff > time.Minute {
			t.Fatalf("expected next payment ~1 month out, got %v", result.Subscription.NextPaymentDate)
		}
		if result.Payment.ID == "" || result.Payment.DateApproved == nil {
			t.Fatalf("expected approved payment, got %+v", result.Payment)
		}
	})

	t.Run("rejected charge leaves counters untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(authorizedSub(), nil)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusRejected || p.Captured {
					t.Fatalf("expected uncaptured rejection, got %s captured=%v", p.Status, p.Captured)
				}
				return p, nil
			},
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "")

		result, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{
			SimulateStatus: string(entities.PaymentStatusRejected),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := result.Subscription.Summarized
		if sum.ChargedQuantity != 0 || sum.ChargedAmount != 0 {
			t.Fatalf("rejected charge must not count, got %+v", sum)
		}
		if sum.PendingChargeQuantity == nil || *sum.PendingChargeQuantity != 3 {
			t.Fatalf("expected pending charges unchanged, got %+v", sum.PendingChargeQuantity)
		}
		if result.Subscription.NextPaymentDate == nil {
			t.Fatalf("schedule still advances after a rejection")
		}
	})

	t.Run("three approved charges accumulate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		sub := authorizedSub()
		m.ruleRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(3)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		).Times(3)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "").Times(3)

		for i := 0; i < 3; i++ {
			m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
			m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
					sub = s
					return s, nil
				},
			)
			if _, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{}); err != nil {
				t.Fatalf("charge %d: unexpected error: %v", i+1, err)
			}
		}

		if sub.Summarized.ChargedQuantity != 3 {
			t.Fatalf("expected 3 charges, got %d", sub.Summarized.ChargedQuantity)
		}
		if sub.Summarized.ChargedAmount != 90 {
			t.Fatalf("expected 90 charged, got %.2f", sub.Summarized.ChargedAmount)
		}
		if sub.Summarized.PendingChargeQuantity == nil || *sub.Summarized.PendingChargeQuantity != 0 {
			t.Fatalf("expected pending charges exhausted, got %+v", sub.Summarized.PendingChargeQuantity)
		}
	})

	t.Run("pending subscription is authorized on first charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		sub := authorizedSub()
		sub.Status = entities.SubscriptionStatusPending
		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		m.ruleRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "")

		result, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Subscription.Status != entities.SubscriptionStatusAuthorized {
			t.Fatalf("expected authorized after first charge, got %s", result.Subscription.Status)
		}
	})

	t.Run("cancelled and paused cannot be charged", func(t *testing.T) {
		for _, status := range []entities.SubscriptionStatus{
			entities.SubscriptionStatusCancelled,
			entities.SubscriptionStatusPaused,
		} {
			ctrl := gomock.NewController(t)
			uc, m := newSubscriptionUseCaseForTest(ctrl)

			sub := authorizedSub()
			sub.Status = status
			m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)

			_, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{})
			if !errors.Is(err, ErrSubscriptionChargeNotAllowed) {
				t.Fatalf("status %s: expected ErrSubscriptionChargeNotAllowed, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("amount override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(authorizedSub(), nil)
		m.ruleRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.TransactionAmount != 99.9 {
					t.Fatalf("expected overridden amount 99.9, got %.2f", p.TransactionAmount)
				}
				return p, nil
			},
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "")

		if _, err := uc.GeneratePayment(context.Background(), "sub-1", RecurringChargeInput{TransactionAmount: 99.9}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubscriptionUseCase_ChargeRecurring(t *testing.T) {
	t.Run("requires id or external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.ChargeRecurring(context.Background(), RecurringChargeInput{})
		if !errors.Is(err, ErrMissingSubscriptionReference) {
			t.Fatalf("expected ErrMissingSubscriptionReference, got %v", err)
		}
	})

	t.Run("resolves by external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		sub := entities.Subscription{
			ID:                "sub-7",
			Status:            entities.SubscriptionStatusAuthorized,
			PayerEmail:        "payer@test.com",
			ExternalReference: "order-9",
			AutoRecurring: entities.AutoRecurring{
				Frequency:         1,
				FrequencyType:     entities.FrequencyTypeMonths,
				TransactionAmount: 30,
				CurrencyID:        "BRL",
			},
		}
		m.repo.EXPECT().GetByExternalReference(gomock.Any(), "order-9").Return(sub, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "sub-7").Return(sub, nil)
		m.ruleRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoSubscriptionUpdate)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.EventPayment, "created", gomock.Any(), "")

		result, err := uc.ChargeRecurring(context.Background(), RecurringChargeInput{ExternalReference: "order-9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Payment.SubscriptionID != "sub-7" {
			t.Fatalf("expected payment on sub-7, got %q", result.Payment.SubscriptionID)
		}
	})

	t.Run("unknown external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByExternalReference(gomock.Any(), "order-404").Return(entities.Subscription{}, nil)

		_, err := uc.ChargeRecurring(context.Background(), RecurringChargeInput{ExternalReference: "order-404"})
		if !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_Search(t *testing.T) {
	t.Run("by external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubscriptionUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByExternalReference(gomock.Any(), "order-9").Return(entities.Subscription{ID: "sub-7"}, nil)

		sub, err := uc.GetByExternalReference(context.Background(), " order-9 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.ID != "sub-7" {
			t.Fatalf("unexpected subscription %+v", sub)
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSubscriptionUseCaseForTest(ctrl)

		_, err := uc.GetByExternalReference(context.Background(), "  ")
		if !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}
