package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"
)

// StatusResolver decides the outcome of a charge request. Resolution order:
//
//  1. explicit `_simulate_status` field, when valid
//  2. first active SimulationRule fully matching the request (priority desc,
//     ties newest first)
//  3. card-number convention: last four digits 0001..0007
//  4. default: approved (PIX defaults to pending, awaiting transfer)
//
// The same input always yields the same (status, status_detail) pair.
type StatusResolver struct {
	ruleRepo interfaces.IRuleRepository
}

func NewStatusResolver(ruleRepo interfaces.IRuleRepository) *StatusResolver {
	return &StatusResolver{ruleRepo: ruleRepo}
}

// ResolutionInput is everything the resolver may look at. Raw is the request
// document as decoded JSON, used for rule condition matching.
type ResolutionInput struct {
	Raw               map[string]any
	SimulateStatus    string
	CardNumber        string
	PaymentMethodID   string
	PayerEmail        string
	ExternalReference string
}

func (r *StatusResolver) Resolve(ctx context.Context, in ResolutionInput) (entities.PaymentStatus, string, error) {
	seed := in.CardNumber + in.PayerEmail + in.ExternalReference

	if s := entities.PaymentStatus(in.SimulateStatus); in.SimulateStatus != "" && s.Valid() {
		return s, deriveStatusDetail(s, in.PaymentMethodID, seed), nil
	}

	rules, err := r.ruleRepo.List(ctx)
	if err != nil {
		return "", "", err
	}
	if rule, ok := firstMatchingRule(rules, in.Raw); ok {
		s := entities.PaymentStatus(rule.Status)
		if rule.StatusDetail != "" {
			return s, rule.StatusDetail, nil
		}
		return s, deriveStatusDetail(s, in.PaymentMethodID, seed), nil
	}

	if s, ok := statusFromCardNumber(in.CardNumber); ok {
		return s, deriveStatusDetail(s, in.PaymentMethodID, seed), nil
	}

	if in.PaymentMethodID == entities.PaymentMethodPix {
		return entities.PaymentStatusPending, deriveStatusDetail(entities.PaymentStatusPending, in.PaymentMethodID, seed), nil
	}
	return entities.PaymentStatusApproved, deriveStatusDetail(entities.PaymentStatusApproved, in.PaymentMethodID, seed), nil
}

func firstMatchingRule(rules []entities.SimulationRule, raw map[string]any) (entities.SimulationRule, bool) {
	active := make([]entities.SimulationRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Active && entities.PaymentStatus(rule.Status).Valid() {
			active = append(active, rule)
		}
	}
	for _, rule := range sortRulesForEvaluation(active) {
		if matchConditions(rule.Conditions, raw) {
			return rule, true
		}
	}
	return entities.SimulationRule{}, false
}

// sortRulesForEvaluation orders rules priority desc, ties newest first.
func sortRulesForEvaluation(rules []entities.SimulationRule) []entities.SimulationRule {
	ordered := make([]entities.SimulationRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].DateCreated.After(ordered[j].DateCreated)
	})
	return ordered
}

func matchConditions(conditions map[string]any, raw map[string]any) bool {
	for path, expected := range conditions {
		got, ok := lookupPath(raw, path)
		if !ok || !valuesEqual(got, expected) {
			return false
		}
	}
	return true
}

// lookupPath walks a dot-path ("payer.email", "items.0.title") through the
// decoded request document. Numeric segments index into arrays.
func lookupPath(doc any, path string) (any, bool) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// valuesEqual compares scalars loosely: JSON numbers arrive as float64, so
// "30" and 30 and 30.0 all match each other.
func valuesEqual(got, expected any) bool {
	gf, gok := toFloat(got)
	ef, eok := toFloat(expected)
	if gok && eok {
		return gf == ef
	}
	return fmt.Sprintf("%v", got) == fmt.Sprintf("%v", expected)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// cardStatusByLastFour maps the test-card convention to forced outcomes.
var cardStatusByLastFour = map[string]entities.PaymentStatus{
	"0001": entities.PaymentStatusApproved,
	"0002": entities.PaymentStatusRejected,
	"0003": entities.PaymentStatusPending,
	"0004": entities.PaymentStatusInProcess,
	"0005": entities.PaymentStatusCancelled,
	"0006": entities.PaymentStatusError,
	"0007": entities.PaymentStatusChargedBack,
}

func statusFromCardNumber(number string) (entities.PaymentStatus, bool) {
	last4 := lastFourDigits(number)
	s, ok := cardStatusByLastFour[last4]
	return s, ok
}

func lastFourDigits(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

// cardRejectionReasons are the realistic rejection codes a card payment can
// pick from; the choice is a stable hash over the request identity so the
// same request always resolves identically.
var cardRejectionReasons = []string{
	"cc_rejected_insufficient_amount",
	"cc_rejected_bad_filled_security_code",
	"cc_rejected_bad_filled_date",
	"cc_rejected_high_risk",
	"cc_rejected_call_for_authorize",
}

func deriveStatusDetail(status entities.PaymentStatus, method, seed string) string {
	switch status {
	case entities.PaymentStatusApproved:
		return "accredited"
	case entities.PaymentStatusRejected:
		if method == entities.PaymentMethodCreditCard || method == entities.PaymentMethodDebitCard || method == "" {
			return cardRejectionReasons[hashSeed(seed)%uint32(len(cardRejectionReasons))]
		}
		return "rejected_by_bank"
	case entities.PaymentStatusPending:
		if method == entities.PaymentMethodPix || method == entities.PaymentMethodBankTransfer {
			return "pending_waiting_transfer"
		}
		if method == entities.PaymentMethodBoleto {
			return "pending_waiting_payment"
		}
		return "pending_contingency"
	case entities.PaymentStatusInProcess:
		return "pending_review_manual"
	case entities.PaymentStatusCancelled:
		return "by_collector"
	case entities.PaymentStatusRefunded:
		return "refunded"
	case entities.PaymentStatusChargedBack:
		return "in_dispute"
	case entities.PaymentStatusError:
		return "processing_error"
	}
	return string(status)
}

func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return h.Sum32()
}
