package response

import (
	"time"

	"gatewaysim/internal/domain/entities"
)

type RuleResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name,omitempty"`
	Conditions   map[string]interface{} `json:"conditions"`
	Status       string                 `json:"status"`
	StatusDetail string                 `json:"status_detail,omitempty"`
	Priority     int                    `json:"priority"`
	Active       bool                   `json:"active"`
	DateCreated  time.Time              `json:"date_created"`
}

func FromRule(r entities.SimulationRule) RuleResponse {
	return RuleResponse{
		ID:           r.ID,
		Name:         r.Name,
		Conditions:   r.Conditions,
		Status:       r.Status,
		StatusDetail: r.StatusDetail,
		Priority:     r.Priority,
		Active:       r.Active,
		DateCreated:  r.DateCreated,
	}
}

func FromRules(rules []entities.SimulationRule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromRule(r))
	}
	return out
}

// SimulateResponse is the dry-run outcome: what a payment with the given
// payload would resolve to, without persisting anything.
type SimulateResponse struct {
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}
