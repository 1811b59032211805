package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRuleNotFound      = errors.New("simulation rule not found")
	ErrMissingRuleStatus = errors.New("status is required")
	ErrInvalidRuleStatus = errors.New("invalid rule status")
)

type RuleInput struct {
	Name         string
	Conditions   map[string]any
	Status       string
	StatusDetail string
	Priority     int
	Active       *bool
}

// IRuleUseCase is CRUD over the declarative simulation rules consumed by the
// status resolver, plus a dry-run resolution endpoint.
type IRuleUseCase interface {
	Create(ctx context.Context, in RuleInput) (entities.SimulationRule, error)
	List(ctx context.Context) ([]entities.SimulationRule, error)
	Delete(ctx context.Context, id string) error
	Simulate(ctx context.Context, raw map[string]any) (entities.PaymentStatus, string, error)
}

type RuleUseCase struct {
	repo     interfaces.IRuleRepository
	resolver *StatusResolver
}

var _ IRuleUseCase = (*RuleUseCase)(nil)

func NewRuleUseCase(repo interfaces.IRuleRepository, resolver *StatusResolver) *RuleUseCase {
	return &RuleUseCase{repo: repo, resolver: resolver}
}

func (u *RuleUseCase) Create(ctx context.Context, in RuleInput) (entities.SimulationRule, error) {
	if in.Status == "" {
		return entities.SimulationRule{}, ErrMissingRuleStatus
	}
	if !entities.PaymentStatus(in.Status).Valid() {
		return entities.SimulationRule{}, ErrInvalidRuleStatus
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	conditions := in.Conditions
	if conditions == nil {
		conditions = map[string]any{}
	}
	rule := entities.SimulationRule{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Conditions:   conditions,
		Status:       in.Status,
		StatusDetail: in.StatusDetail,
		Priority:     in.Priority,
		Active:       active,
		DateCreated:  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, rule)
	if err != nil {
		log.Printf("[rule][usecase] create failed err=%v", err)
		return entities.SimulationRule{}, err
	}
	log.Printf("[rule][usecase] create success rule_id=%s status=%s priority=%d", created.ID, created.Status, created.Priority)
	return created, nil
}

// List returns rules in evaluation order: priority desc, newest first.
func (u *RuleUseCase) List(ctx context.Context) ([]entities.SimulationRule, error) {
	rules, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortRulesForEvaluation(rules), nil
}

func (u *RuleUseCase) Delete(ctx context.Context, id string) error {
	rule, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rule.ID == "" {
		return ErrRuleNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[rule][usecase] delete failed rule_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[rule][usecase] delete success rule_id=%s", id)
	return nil
}

// Simulate resolves a hypothetical request without persisting anything.
func (u *RuleUseCase) Simulate(ctx context.Context, raw map[string]any) (entities.PaymentStatus, string, error) {
	in := ResolutionInput{Raw: raw}
	if v, ok := raw["_simulate_status"].(string); ok {
		in.SimulateStatus = v
	}
	if v, ok := raw["payment_method_id"].(string); ok {
		in.PaymentMethodID = v
	}
	if v, ok := lookupPath(raw, "card.number"); ok {
		if number, isString := v.(string); isString {
			in.CardNumber = number
		}
	}
	if v, ok := lookupPath(raw, "payer.email"); ok {
		if email, isString := v.(string); isString {
			in.PayerEmail = email
		}
	}
	if v, ok := raw["external_reference"].(string); ok {
		in.ExternalReference = v
	}
	return u.resolver.Resolve(ctx, in)
}
