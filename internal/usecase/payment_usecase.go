package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidAmount            = errors.New("transaction_amount must be greater than zero")
	ErrInvalidPaymentMethod     = errors.New("invalid payment_method_id")
	ErrCheckoutAlreadyProcessed = errors.New("checkout already processed")
	ErrCaptureNotAllowed        = errors.New("capture not allowed")
	ErrCancelNotAllowed         = errors.New("cancel not allowed")
	ErrRefundNotAllowed         = errors.New("refund not allowed")
	ErrRefundExceedsAvailable   = errors.New("refund amount exceeds available amount")
	ErrNotPixPayment            = errors.New("payment method is not pix")
	ErrPixConfirmNotAllowed     = errors.New("pix confirmation not allowed")
)

// providerFeeRate is the simulated provider fee applied to approved charges.
const providerFeeRate = 0.045

// pixSettlementDelay is how far out a confirmed PIX transfer settles.
const pixSettlementDelay = 14 * 24 * time.Hour

// subscriptionReferencePrefix is the legacy correlation convention: PIX
// payments whose external_reference carries it seed a Subscription on
// confirmation. The explicit create_subscription_on_confirm flag is the
// preferred trigger; the prefix is kept so existing callers keep working.
const subscriptionReferencePrefix = "matricula"

type PreferenceItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

type PreferenceInput struct {
	Items             []PreferenceItem
	TransactionAmount float64
	Description       string
	PayerEmail        string
	ExternalReference string
	NotificationURL   string
	BackURLs          entities.BackURLs
	Metadata          map[string]any
}

type CardInput struct {
	Number          string
	HolderName      string
	ExpirationMonth int
	ExpirationYear  int
}

type PayerInput struct {
	Email    string
	Name     string
	Document string
}

type PaymentInput struct {
	TransactionAmount           float64
	CurrencyID                  string
	Description                 string
	PaymentMethodID             string
	Installments                int
	Card                        *CardInput
	Payer                       PayerInput
	ExternalReference           string
	Metadata                    map[string]any
	NotificationURL             string
	SimulateStatus              string
	CreateSubscriptionOnConfirm bool
	Raw                         map[string]any
}

type CheckoutInput struct {
	PaymentMethodID string
	Installments    int
	Card            *CardInput
	Payer           PayerInput
	SimulateStatus  string
	BackURLs        entities.BackURLs
	Raw             map[string]any
}

type PaymentFilter struct {
	ExternalReference string
	SubscriptionID    string
	Status            string
}

type CheckoutResult struct {
	Payment     entities.Payment
	RedirectURL string
}

// IPaymentUseCase owns the payment lifecycle: checkout intents, direct
// creation, capture/cancel/refund and PIX confirmation.
type IPaymentUseCase interface {
	CreatePreference(ctx context.Context, in PreferenceInput) (entities.Payment, error)
	ProcessCheckout(ctx context.Context, paymentID string, in CheckoutInput) (CheckoutResult, error)
	Create(ctx context.Context, in PaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error)
	Capture(ctx context.Context, id string) (entities.Payment, error)
	Cancel(ctx context.Context, id string) (entities.Payment, error)
	Refund(ctx context.Context, id string, amount *float64) (entities.Payment, error)
	ConfirmPix(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	subRepo  interfaces.ISubscriptionRepository
	resolver *StatusResolver
	notifier interfaces.IEventNotifier
	gateway  interfaces.IPaymentGateway
	locks    *keyedMutex
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	subRepo interfaces.ISubscriptionRepository,
	resolver *StatusResolver,
	notifier interfaces.IEventNotifier,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:     repo,
		subRepo:  subRepo,
		resolver: resolver,
		notifier: notifier,
		gateway:  gateway,
		locks:    newKeyedMutex(),
	}
}

// CreatePreference stores a payment in the awaiting-checkout sub-state and
// returns it with the checkout URL material (preference id). No webhook is
// fired: no outcome exists yet.
func (u *PaymentUseCase) CreatePreference(ctx context.Context, in PreferenceInput) (entities.Payment, error) {
	amount := in.TransactionAmount
	description := in.Description
	if len(in.Items) > 0 {
		amount = 0
		titles := make([]string, 0, len(in.Items))
		for _, it := range in.Items {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			amount += it.UnitPrice * float64(qty)
			titles = append(titles, it.Title)
		}
		if description == "" {
			description = strings.Join(titles, ", ")
		}
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                newPaymentID(),
		PreferenceID:      uuid.NewString(),
		Status:            entities.PaymentStatusPending,
		StatusDetail:      entities.StatusDetailAwaitingCheckout,
		TransactionAmount: round2(amount),
		CurrencyID:        defaultCurrency(),
		Description:       description,
		Installments:      1,
		Payer:             entities.Payer{Email: in.PayerEmail},
		ExternalReference: in.ExternalReference,
		Metadata:          in.Metadata,
		NotificationURL:   in.NotificationURL,
		BackURLs:          in.BackURLs,
		DateCreated:       now,
		DateLastUpdated:   now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] preference create failed preference_id=%s err=%v", p.PreferenceID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] preference created preference_id=%s payment_id=%s amount=%.2f", created.PreferenceID, created.ID, created.TransactionAmount)
	return created, nil
}

// ProcessCheckout resolves the outcome of an awaiting-checkout payment and
// picks the redirect back-url matching the resolved status.
func (u *PaymentUseCase) ProcessCheckout(ctx context.Context, paymentID string, in CheckoutInput) (CheckoutResult, error) {
	unlock := u.locks.Lock(paymentID)
	defer unlock()

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if p.ID == "" {
		return CheckoutResult{}, ErrPaymentNotFound
	}
	if !p.AwaitingCheckout() {
		return CheckoutResult{}, fmt.Errorf("%w: current status %s", ErrCheckoutAlreadyProcessed, p.Status)
	}

	method := in.PaymentMethodID
	if method == "" {
		method = entities.PaymentMethodCreditCard
	}
	if !entities.ValidPaymentMethod(method) {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}

	payerEmail := p.Payer.Email
	if in.Payer.Email != "" {
		payerEmail = in.Payer.Email
	}
	cardNumber := ""
	if in.Card != nil {
		cardNumber = in.Card.Number
	}
	status, detail, err := u.resolver.Resolve(ctx, ResolutionInput{
		Raw:               in.Raw,
		SimulateStatus:    in.SimulateStatus,
		CardNumber:        cardNumber,
		PaymentMethodID:   method,
		PayerEmail:        payerEmail,
		ExternalReference: p.ExternalReference,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now().UTC()
	p.Status = status
	p.StatusDetail = detail
	p.PaymentMethodID = method
	p.Payer = mergePayer(p.Payer, in.Payer)
	p.Card = maskCard(in.Card)
	if in.Installments > 0 {
		p.Installments = in.Installments
	}
	p.TransactionDetails = computeTransactionDetails(p.TransactionAmount, p.Installments, status)
	p.Captured = status == entities.PaymentStatusApproved
	if status == entities.PaymentStatusApproved {
		p.DateApproved = &now
	}
	p.BackURLs = mergeBackURLs(p.BackURLs, in.BackURLs)
	p.DateLastUpdated = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] checkout update failed payment_id=%s err=%v", p.ID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[payment][usecase] checkout processed payment_id=%s status=%s detail=%s", updated.ID, updated.Status, updated.StatusDetail)

	u.notifier.Notify(ctx, entities.EventPaymentCreated, "created", updated.ID, updated.NotificationURL)

	return CheckoutResult{Payment: updated, RedirectURL: redirectFor(updated.Status, updated.BackURLs)}, nil
}

// Create performs direct (non-checkout) payment creation.
func (u *PaymentUseCase) Create(ctx context.Context, in PaymentInput) (entities.Payment, error) {
	if in.TransactionAmount <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	method := in.PaymentMethodID
	if method == "" {
		method = entities.PaymentMethodCreditCard
	}
	if !entities.ValidPaymentMethod(method) {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	installments := in.Installments
	if installments <= 0 {
		installments = 1
	}

	id := newPaymentID()
	var status entities.PaymentStatus
	var detail string
	var err error

	if u.gateway != nil && isPassthroughEnabled() && in.SimulateStatus == "" {
		status, detail, id, err = u.passthroughCreate(ctx, in, id)
		if err != nil {
			log.Printf("[payment][usecase] passthrough create failed err=%v", err)
			return entities.Payment{}, err
		}
	} else {
		cardNumber := ""
		if in.Card != nil {
			cardNumber = in.Card.Number
		}
		status, detail, err = u.resolver.Resolve(ctx, ResolutionInput{
			Raw:               in.Raw,
			SimulateStatus:    in.SimulateStatus,
			CardNumber:        cardNumber,
			PaymentMethodID:   method,
			PayerEmail:        in.Payer.Email,
			ExternalReference: in.ExternalReference,
		})
		if err != nil {
			return entities.Payment{}, err
		}
	}

	now := time.Now().UTC()
	currency := in.CurrencyID
	if currency == "" {
		currency = defaultCurrency()
	}
	p := entities.Payment{
		ID:                          id,
		Status:                      status,
		StatusDetail:                detail,
		TransactionAmount:           round2(in.TransactionAmount),
		CurrencyID:                  currency,
		Description:                 in.Description,
		PaymentMethodID:             method,
		Installments:                installments,
		Card:                        maskCard(in.Card),
		Payer:                       entities.Payer{Email: in.Payer.Email, Name: in.Payer.Name, Document: in.Payer.Document},
		ExternalReference:           in.ExternalReference,
		Metadata:                    in.Metadata,
		Captured:                    status == entities.PaymentStatusApproved,
		TransactionDetails:          computeTransactionDetails(round2(in.TransactionAmount), installments, status),
		NotificationURL:             in.NotificationURL,
		CreateSubscriptionOnConfirm: in.CreateSubscriptionOnConfirm,
		DateCreated:                 now,
		DateLastUpdated:             now,
	}
	if status == entities.PaymentStatusApproved {
		p.DateApproved = &now
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success payment_id=%s method=%s status=%s detail=%s", created.ID, created.PaymentMethodID, created.Status, created.StatusDetail)

	u.notifier.Notify(ctx, entities.EventPaymentCreated, "created", created.ID, created.NotificationURL)
	return created, nil
}

// passthroughCreate forwards the raw request to the configured upstream
// provider and adopts its verdict.
func (u *PaymentUseCase) passthroughCreate(ctx context.Context, in PaymentInput, fallbackID string) (entities.PaymentStatus, string, string, error) {
	payload, err := json.Marshal(in.Raw)
	if err != nil {
		return "", "", "", err
	}
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", "", "", err
	}
	id := providerID
	if id == "" {
		id = fallbackID
	}
	detail := ""
	var parsed map[string]any
	if json.Unmarshal(providerResp, &parsed) == nil {
		if v, ok := parsed["status_detail"].(string); ok {
			detail = v
		}
	}
	status := entities.PaymentStatus(providerStatus)
	if !status.Valid() {
		status = entities.PaymentStatusPending
	}
	if detail == "" {
		detail = deriveStatusDetail(status, in.PaymentMethodID, in.ExternalReference)
	}
	log.Printf("[payment][usecase] passthrough verdict payment_id=%s status=%s", id, status)
	return status, detail, id, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error) {
	var (
		payments []entities.Payment
		err      error
	)
	switch {
	case filter.SubscriptionID != "":
		payments, err = u.repo.ListBySubscriptionID(ctx, filter.SubscriptionID)
	case filter.ExternalReference != "":
		payments, err = u.repo.ListByExternalReference(ctx, filter.ExternalReference)
	default:
		payments, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if filter.Status == "" {
		return payments, nil
	}
	filtered := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if string(p.Status) == filter.Status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Capture approves a pending or in-process payment.
func (u *PaymentUseCase) Capture(ctx context.Context, id string) (entities.Payment, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !p.CanCapture() {
		return entities.Payment{}, fmt.Errorf("%w: current status %s", ErrCaptureNotAllowed, p.Status)
	}

	now := time.Now().UTC()
	p.Status = entities.PaymentStatusApproved
	p.StatusDetail = "accredited"
	p.Captured = true
	p.DateApproved = &now
	p.TransactionDetails = computeTransactionDetails(p.TransactionAmount, p.Installments, p.Status)
	p.DateLastUpdated = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] capture update failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] capture success payment_id=%s", id)

	u.notifier.Notify(ctx, entities.EventPaymentUpdated, "updated", updated.ID, updated.NotificationURL)
	return updated, nil
}

// Cancel voids a payment that has not moved money yet.
func (u *PaymentUseCase) Cancel(ctx context.Context, id string) (entities.Payment, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !p.CanCancel() {
		return entities.Payment{}, fmt.Errorf("%w: current status %s", ErrCancelNotAllowed, p.Status)
	}

	now := time.Now().UTC()
	p.Status = entities.PaymentStatusCancelled
	p.StatusDetail = "by_collector"
	p.Captured = false
	p.DateLastUpdated = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] cancel update failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] cancel success payment_id=%s", id)

	u.notifier.Notify(ctx, entities.EventPaymentUpdated, "updated", updated.ID, updated.NotificationURL)
	return updated, nil
}

// Refund returns part or all of an approved payment. A nil amount refunds
// everything still available.
func (u *PaymentUseCase) Refund(ctx context.Context, id string, amount *float64) (entities.Payment, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !p.CanRefund() {
		return entities.Payment{}, fmt.Errorf("%w: current status %s", ErrRefundNotAllowed, p.Status)
	}

	remaining := round2(p.RemainingRefundable())
	requested := remaining
	if amount != nil {
		requested = round2(*amount)
	}
	if requested <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	if requested > remaining {
		return entities.Payment{}, fmt.Errorf("%w: requested %.2f, available %.2f", ErrRefundExceedsAvailable, requested, remaining)
	}

	now := time.Now().UTC()
	p.RefundAmount = round2(p.RefundAmount + requested)
	p.Refunded = true
	if p.RefundAmount >= p.TransactionAmount {
		p.Status = entities.PaymentStatusRefunded
		p.StatusDetail = "refunded"
		p.Captured = false
	} else {
		p.StatusDetail = "partially_refunded"
	}
	p.DateLastUpdated = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] refund update failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] refund success payment_id=%s refunded=%.2f of %.2f", id, updated.RefundAmount, updated.TransactionAmount)

	u.notifier.Notify(ctx, entities.EventPaymentRefunded, "refunded", updated.ID, updated.NotificationURL)
	return updated, nil
}

// ConfirmPix settles a pending PIX transfer. Calling it again on an already
// approved payment returns the record unchanged.
func (u *PaymentUseCase) ConfirmPix(ctx context.Context, id string) (entities.Payment, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.PaymentMethodID != entities.PaymentMethodPix {
		return entities.Payment{}, ErrNotPixPayment
	}
	if p.Status == entities.PaymentStatusApproved {
		log.Printf("[payment][usecase] pix confirm idempotent payment_id=%s", id)
		return p, nil
	}
	if p.Status != entities.PaymentStatusPending && p.Status != entities.PaymentStatusInProcess {
		return entities.Payment{}, fmt.Errorf("%w: current status %s", ErrPixConfirmNotAllowed, p.Status)
	}

	now := time.Now().UTC()
	release := now.Add(pixSettlementDelay)
	p.Status = entities.PaymentStatusApproved
	p.StatusDetail = "accredited"
	p.Captured = true
	p.DateApproved = &now
	p.MoneyReleaseDate = &release
	p.TransactionDetails = computeTransactionDetails(p.TransactionAmount, p.Installments, p.Status)
	p.DateLastUpdated = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] pix confirm update failed payment_id=%s err=%v", id, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] pix confirm success payment_id=%s", id)

	if err := u.ensureSubscriptionForPix(ctx, updated); err != nil {
		// Cross-entity seeding is best-effort; the confirmed payment stands.
		log.Printf("[payment][usecase] pix subscription seed failed payment_id=%s err=%v", id, err)
	}

	u.notifier.Notify(ctx, entities.EventPaymentUpdated, "updated", updated.ID, updated.NotificationURL)
	return updated, nil
}

// ensureSubscriptionForPix auto-creates at most one authorized Subscription
// per external_reference when the confirmed payment asked for it, either via
// the explicit flag or the legacy reference-prefix convention.
func (u *PaymentUseCase) ensureSubscriptionForPix(ctx context.Context, p entities.Payment) error {
	ref := strings.TrimSpace(p.ExternalReference)
	if ref == "" {
		return nil
	}
	if !p.CreateSubscriptionOnConfirm && !strings.HasPrefix(strings.ToLower(ref), subscriptionReferencePrefix) {
		return nil
	}

	existing, err := u.subRepo.GetByExternalReference(ctx, ref)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return nil
	}

	reason := p.Description
	if v, ok := p.Metadata["reason"].(string); ok && v != "" {
		reason = v
	}
	now := time.Now().UTC()
	next := now.AddDate(0, 1, 0)
	sub := entities.Subscription{
		ID:                uuid.NewString(),
		Status:            entities.SubscriptionStatusAuthorized,
		PayerEmail:        p.Payer.Email,
		Reason:            reason,
		ExternalReference: ref,
		AutoRecurring: entities.AutoRecurring{
			Frequency:         1,
			FrequencyType:     entities.FrequencyTypeMonths,
			TransactionAmount: p.TransactionAmount,
			CurrencyID:        p.CurrencyID,
		},
		NextPaymentDate: &next,
		DateCreated:     now,
		LastModified:    now,
	}
	created, err := u.subRepo.Create(ctx, sub)
	if err != nil {
		return err
	}
	log.Printf("[payment][usecase] pix subscription seeded subscription_id=%s external_reference=%s", created.ID, ref)

	u.notifier.Notify(ctx, entities.EventPreapproval, "created", created.ID, "")
	return nil
}

func mergePayer(base entities.Payer, in PayerInput) entities.Payer {
	if in.Email != "" {
		base.Email = in.Email
	}
	if in.Name != "" {
		base.Name = in.Name
	}
	if in.Document != "" {
		base.Document = in.Document
	}
	return base
}

func mergeBackURLs(base, override entities.BackURLs) entities.BackURLs {
	if override.Success != "" {
		base.Success = override.Success
	}
	if override.Failure != "" {
		base.Failure = override.Failure
	}
	if override.Pending != "" {
		base.Pending = override.Pending
	}
	return base
}

// redirectFor maps a resolved status to the caller-supplied back-urls.
func redirectFor(status entities.PaymentStatus, urls entities.BackURLs) string {
	switch status {
	case entities.PaymentStatusApproved:
		return urls.Success
	case entities.PaymentStatusRejected, entities.PaymentStatusError, entities.PaymentStatusCancelled:
		return urls.Failure
	default:
		return urls.Pending
	}
}

// maskCard keeps only what the provider would echo back about a card.
func maskCard(in *CardInput) *entities.CardInfo {
	if in == nil || in.Number == "" {
		return nil
	}
	digits := make([]rune, 0, len(in.Number))
	for _, r := range in.Number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	info := &entities.CardInfo{
		Brand:           cardBrand(string(digits)),
		HolderName:      in.HolderName,
		ExpirationMonth: in.ExpirationMonth,
		ExpirationYear:  in.ExpirationYear,
	}
	if len(digits) >= 6 {
		info.FirstSixDigits = string(digits[:6])
	}
	if len(digits) >= 4 {
		info.LastFourDigits = string(digits[len(digits)-4:])
	}
	return info
}

func cardBrand(digits string) string {
	if digits == "" {
		return ""
	}
	switch digits[0] {
	case '4':
		return "visa"
	case '5':
		return "master"
	case '3':
		return "amex"
	}
	return "credit"
}

func computeTransactionDetails(amount float64, installments int, status entities.PaymentStatus) entities.TransactionDetails {
	if installments <= 0 {
		installments = 1
	}
	d := entities.TransactionDetails{
		TotalPaidAmount:   amount,
		InstallmentAmount: round2(amount / float64(installments)),
	}
	if status == entities.PaymentStatusApproved {
		d.NetReceivedAmount = round2(amount * (1 - providerFeeRate))
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// newPaymentID produces a 12-digit provider-style numeric id.
func newPaymentID() string {
	return fmt.Sprintf("%012d", 100000000000+rand.Int63n(900000000000))
}

func defaultCurrency() string {
	if v := os.Getenv("GATEWAY_CURRENCY"); v != "" {
		return v
	}
	return "BRL"
}

func isPassthroughEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("GATEWAY_PASSTHROUGH")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
