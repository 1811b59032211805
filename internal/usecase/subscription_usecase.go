package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound                 = errors.New("plan not found")
	ErrMissingPlanReason            = errors.New("reason is required")
	ErrSubscriptionNotFound         = errors.New("subscription not found")
	ErrMissingPayerEmail            = errors.New("payer_email is required")
	ErrMissingRecurringAmount       = errors.New("auto_recurring.transaction_amount is required")
	ErrInvalidSubscriptionStatus    = errors.New("invalid subscription status")
	ErrSubscriptionTransitionDenied = errors.New("subscription status transition not allowed")
	ErrSubscriptionChargeNotAllowed = errors.New("cannot charge subscription")
	ErrMissingSubscriptionReference = errors.New("subscription id or external_reference is required")
)

type PlanInput struct {
	Reason        string
	AutoRecurring entities.AutoRecurring
}

type SubscriptionInput struct {
	PlanID            string
	Reason            string
	PayerEmail        string
	ExternalReference string
	Status            string
	AutoRecurring     *entities.AutoRecurring
}

type SubscriptionPatch struct {
	Status            *string
	Reason            *string
	ExternalReference *string
	AutoRecurring     *entities.AutoRecurring
}

type RecurringChargeInput struct {
	SubscriptionID    string
	ExternalReference string
	TransactionAmount float64
	PaymentMethodID   string
	SimulateStatus    string
	Raw               map[string]any
}

type RecurringChargeResult struct {
	Subscription entities.Subscription
	Payment      entities.Payment
}

// ISubscriptionUseCase owns plans, preapprovals and recurring charge
// generation.
type ISubscriptionUseCase interface {
	CreatePlan(ctx context.Context, in PlanInput) (entities.Plan, error)
	GetPlanByID(ctx context.Context, id string) (entities.Plan, error)
	ListPlans(ctx context.Context) ([]entities.Plan, error)
	Create(ctx context.Context, in SubscriptionInput) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	List(ctx context.Context) ([]entities.Subscription, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.Subscription, error)
	Update(ctx context.Context, id string, patch SubscriptionPatch) (entities.Subscription, error)
	GeneratePayment(ctx context.Context, id string, in RecurringChargeInput) (RecurringChargeResult, error)
	ChargeRecurring(ctx context.Context, in RecurringChargeInput) (RecurringChargeResult, error)
	Pause(ctx context.Context, id string) (entities.Subscription, error)
	Reactivate(ctx context.Context, id string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo        interfaces.ISubscriptionRepository
	planRepo    interfaces.IPlanRepository
	paymentRepo interfaces.IPaymentRepository
	resolver    *StatusResolver
	notifier    interfaces.IEventNotifier
	locks       *keyedMutex
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(
	repo interfaces.ISubscriptionRepository,
	planRepo interfaces.IPlanRepository,
	paymentRepo interfaces.IPaymentRepository,
	resolver *StatusResolver,
	notifier interfaces.IEventNotifier,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		repo:        repo,
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		resolver:    resolver,
		notifier:    notifier,
		locks:       newKeyedMutex(),
	}
}

// CreatePlan stores an immutable preapproval template.
func (u *SubscriptionUseCase) CreatePlan(ctx context.Context, in PlanInput) (entities.Plan, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return entities.Plan{}, ErrMissingPlanReason
	}
	recurring := in.AutoRecurring
	if recurring.Frequency <= 0 {
		recurring.Frequency = 1
	}
	if recurring.FrequencyType == "" {
		recurring.FrequencyType = entities.FrequencyTypeMonths
	}
	if recurring.CurrencyID == "" {
		recurring.CurrencyID = defaultCurrency()
	}

	plan := entities.Plan{
		ID:            uuid.NewString(),
		Reason:        strings.TrimSpace(in.Reason),
		AutoRecurring: recurring,
		Status:        entities.PlanStatusActive,
		DateCreated:   time.Now().UTC(),
	}
	created, err := u.planRepo.Create(ctx, plan)
	if err != nil {
		log.Printf("[subscription][usecase] plan create failed err=%v", err)
		return entities.Plan{}, err
	}
	log.Printf("[subscription][usecase] plan created plan_id=%s reason=%q", created.ID, created.Reason)
	return created, nil
}

func (u *SubscriptionUseCase) GetPlanByID(ctx context.Context, id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	plan, err := u.planRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if plan.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

func (u *SubscriptionUseCase) ListPlans(ctx context.Context) ([]entities.Plan, error) {
	return u.planRepo.List(ctx)
}

// Create registers a preapproval. Inline auto_recurring/reason take
// precedence; a referenced plan supplies defaults for whatever is missing.
func (u *SubscriptionUseCase) Create(ctx context.Context, in SubscriptionInput) (entities.Subscription, error) {
	if strings.TrimSpace(in.PayerEmail) == "" {
		return entities.Subscription{}, ErrMissingPayerEmail
	}

	reason := strings.TrimSpace(in.Reason)
	var recurring entities.AutoRecurring
	if in.AutoRecurring != nil {
		recurring = *in.AutoRecurring
	}

	if in.PlanID != "" {
		plan, err := u.planRepo.GetByID(ctx, in.PlanID)
		if err != nil {
			return entities.Subscription{}, err
		}
		if plan.ID == "" {
			return entities.Subscription{}, ErrPlanNotFound
		}
		if reason == "" {
			reason = plan.Reason
		}
		if recurring.TransactionAmount <= 0 {
			recurring.TransactionAmount = plan.AutoRecurring.TransactionAmount
		}
		if recurring.Frequency <= 0 {
			recurring.Frequency = plan.AutoRecurring.Frequency
		}
		if recurring.FrequencyType == "" {
			recurring.FrequencyType = plan.AutoRecurring.FrequencyType
		}
		if recurring.CurrencyID == "" {
			recurring.CurrencyID = plan.AutoRecurring.CurrencyID
		}
		if recurring.Repetitions == nil {
			recurring.Repetitions = plan.AutoRecurring.Repetitions
		}
		if recurring.FreeTrial == nil {
			recurring.FreeTrial = plan.AutoRecurring.FreeTrial
		}
	}

	if recurring.TransactionAmount <= 0 {
		return entities.Subscription{}, ErrMissingRecurringAmount
	}
	if recurring.Frequency <= 0 {
		recurring.Frequency = 1
	}
	if recurring.FrequencyType == "" {
		recurring.FrequencyType = entities.FrequencyTypeMonths
	}
	if recurring.CurrencyID == "" {
		recurring.CurrencyID = defaultCurrency()
	}

	status := entities.SubscriptionStatusAuthorized
	if in.Status != "" {
		requested := entities.SubscriptionStatus(in.Status)
		if !requested.Valid() {
			return entities.Subscription{}, ErrInvalidSubscriptionStatus
		}
		status = requested
	}

	now := time.Now().UTC()
	sub := entities.Subscription{
		ID:                uuid.NewString(),
		PlanID:            in.PlanID,
		Status:            status,
		PayerEmail:        strings.TrimSpace(in.PayerEmail),
		Reason:            reason,
		ExternalReference: in.ExternalReference,
		AutoRecurring:     recurring,
		DateCreated:       now,
		LastModified:      now,
	}
	if recurring.Repetitions != nil {
		pending := *recurring.Repetitions
		sub.Summarized.PendingChargeQuantity = &pending
	}
	sub.AdvanceNextPaymentDate(startDateOr(recurring.StartDate, now))

	created, err := u.repo.Create(ctx, sub)
	if err != nil {
		log.Printf("[subscription][usecase] create failed err=%v", err)
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] create success subscription_id=%s status=%s", created.ID, created.Status)

	u.notifier.Notify(ctx, entities.EventPreapproval, "created", created.ID, "")
	return created, nil
}

func (u *SubscriptionUseCase) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

func (u *SubscriptionUseCase) List(ctx context.Context) ([]entities.Subscription, error) {
	return u.repo.List(ctx)
}

// GetByExternalReference is the search operation for callers that only know
// their own business reference.
func (u *SubscriptionUseCase) GetByExternalReference(ctx context.Context, externalReference string) (entities.Subscription, error) {
	externalReference = strings.TrimSpace(externalReference)
	if externalReference == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	sub, err := u.repo.GetByExternalReference(ctx, externalReference)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

// Update merges a partial patch into the subscription.
func (u *SubscriptionUseCase) Update(ctx context.Context, id string, patch SubscriptionPatch) (entities.Subscription, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}

	if patch.Status != nil {
		next := entities.SubscriptionStatus(*patch.Status)
		if !next.Valid() {
			return entities.Subscription{}, ErrInvalidSubscriptionStatus
		}
		if !sub.Status.CanTransitionTo(next) {
			return entities.Subscription{}, fmt.Errorf("%w: %s -> %s", ErrSubscriptionTransitionDenied, sub.Status, next)
		}
		sub.Status = next
	}
	if patch.Reason != nil {
		sub.Reason = *patch.Reason
	}
	if patch.ExternalReference != nil {
		sub.ExternalReference = *patch.ExternalReference
	}
	if patch.AutoRecurring != nil {
		merged := sub.AutoRecurring
		if patch.AutoRecurring.TransactionAmount > 0 {
			merged.TransactionAmount = patch.AutoRecurring.TransactionAmount
		}
		if patch.AutoRecurring.Frequency > 0 {
			merged.Frequency = patch.AutoRecurring.Frequency
		}
		if patch.AutoRecurring.FrequencyType != "" {
			merged.FrequencyType = patch.AutoRecurring.FrequencyType
		}
		if patch.AutoRecurring.CurrencyID != "" {
			merged.CurrencyID = patch.AutoRecurring.CurrencyID
		}
		if patch.AutoRecurring.Repetitions != nil {
			merged.Repetitions = patch.AutoRecurring.Repetitions
		}
		if patch.AutoRecurring.EndDate != nil {
			merged.EndDate = patch.AutoRecurring.EndDate
		}
		sub.AutoRecurring = merged
	}
	sub.LastModified = time.Now().UTC()

	updated, err := u.repo.Update(ctx, sub)
	if err != nil {
		log.Printf("[subscription][usecase] update failed subscription_id=%s err=%v", id, err)
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] update success subscription_id=%s status=%s", updated.ID, updated.Status)

	u.notifier.Notify(ctx, entities.EventPreapproval, "updated", updated.ID, "")
	return updated, nil
}

// GeneratePayment simulates one recurring billing cycle against the
// subscription: resolves an outcome, creates the linked Payment, updates the
// summarized counters on approval and advances next_payment_date.
func (u *SubscriptionUseCase) GeneratePayment(ctx context.Context, id string, in RecurringChargeInput) (RecurringChargeResult, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return RecurringChargeResult{}, err
	}
	if sub.ID == "" {
		return RecurringChargeResult{}, ErrSubscriptionNotFound
	}
	if sub.Status == entities.SubscriptionStatusCancelled || sub.Status == entities.SubscriptionStatusPaused {
		return RecurringChargeResult{}, fmt.Errorf("%w: current status %s", ErrSubscriptionChargeNotAllowed, sub.Status)
	}
	if sub.Status == entities.SubscriptionStatusPending {
		sub.Status = entities.SubscriptionStatusAuthorized
	}

	amount := in.TransactionAmount
	if amount <= 0 {
		amount = sub.AutoRecurring.TransactionAmount
	}
	method := in.PaymentMethodID
	if method == "" {
		method = entities.PaymentMethodCreditCard
	}

	status, detail, err := u.resolver.Resolve(ctx, ResolutionInput{
		Raw:               in.Raw,
		SimulateStatus:    in.SimulateStatus,
		PaymentMethodID:   method,
		PayerEmail:        sub.PayerEmail,
		ExternalReference: sub.ExternalReference,
	})
	if err != nil {
		return RecurringChargeResult{}, err
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:                 newPaymentID(),
		Status:             status,
		StatusDetail:       detail,
		TransactionAmount:  round2(amount),
		CurrencyID:         sub.AutoRecurring.CurrencyID,
		Description:        sub.Reason,
		PaymentMethodID:    method,
		Installments:       1,
		Payer:              entities.Payer{Email: sub.PayerEmail},
		ExternalReference:  sub.ExternalReference,
		SubscriptionID:     sub.ID,
		Captured:           status == entities.PaymentStatusApproved,
		TransactionDetails: computeTransactionDetails(round2(amount), 1, status),
		DateCreated:        now,
		DateLastUpdated:    now,
	}
	if status == entities.PaymentStatusApproved {
		payment.DateApproved = &now
	}

	createdPayment, err := u.paymentRepo.Create(ctx, payment)
	if err != nil {
		log.Printf("[subscription][usecase] recurring payment create failed subscription_id=%s err=%v", id, err)
		return RecurringChargeResult{}, err
	}

	if status == entities.PaymentStatusApproved {
		sub.Summarized.ChargedQuantity++
		sub.Summarized.ChargedAmount = round2(sub.Summarized.ChargedAmount + createdPayment.TransactionAmount)
		sub.Summarized.LastChargedDate = &now
		sub.Summarized.LastChargedAmount = createdPayment.TransactionAmount
		if q := sub.Summarized.PendingChargeQuantity; q != nil && *q > 0 {
			remaining := *q - 1
			sub.Summarized.PendingChargeQuantity = &remaining
		}
	}
	sub.AdvanceNextPaymentDate(now)
	sub.LastModified = now

	updatedSub, err := u.repo.Update(ctx, sub)
	if err != nil {
		log.Printf("[subscription][usecase] recurring summary update failed subscription_id=%s err=%v", id, err)
		return RecurringChargeResult{}, err
	}
	log.Printf("[subscription][usecase] recurring charge subscription_id=%s payment_id=%s status=%s charged=%d",
		updatedSub.ID, createdPayment.ID, createdPayment.Status, updatedSub.Summarized.ChargedQuantity)

	// Recurring charges use the bare payment event name, per provider convention.
	u.notifier.Notify(ctx, entities.EventPayment, "created", createdPayment.ID, createdPayment.NotificationURL)

	return RecurringChargeResult{Subscription: updatedSub, Payment: createdPayment}, nil
}

// ChargeRecurring triggers a billing cycle for a subscription addressed by id
// or by the caller's own external_reference.
func (u *SubscriptionUseCase) ChargeRecurring(ctx context.Context, in RecurringChargeInput) (RecurringChargeResult, error) {
	id := strings.TrimSpace(in.SubscriptionID)
	if id == "" {
		ref := strings.TrimSpace(in.ExternalReference)
		if ref == "" {
			return RecurringChargeResult{}, ErrMissingSubscriptionReference
		}
		sub, err := u.repo.GetByExternalReference(ctx, ref)
		if err != nil {
			return RecurringChargeResult{}, err
		}
		if sub.ID == "" {
			return RecurringChargeResult{}, ErrSubscriptionNotFound
		}
		id = sub.ID
	}
	return u.GeneratePayment(ctx, id, in)
}

func (u *SubscriptionUseCase) Pause(ctx context.Context, id string) (entities.Subscription, error) {
	status := string(entities.SubscriptionStatusPaused)
	return u.Update(ctx, id, SubscriptionPatch{Status: &status})
}

func (u *SubscriptionUseCase) Reactivate(ctx context.Context, id string) (entities.Subscription, error) {
	status := string(entities.SubscriptionStatusAuthorized)
	return u.Update(ctx, id, SubscriptionPatch{Status: &status})
}

func startDateOr(start *time.Time, fallback time.Time) time.Time {
	if start != nil {
		return *start
	}
	return fallback
}
