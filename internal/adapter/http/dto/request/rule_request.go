package request

// RuleCreateRequest registers a declarative simulation rule. Conditions are
// dot-path keys matched against the raw payment payload.
type RuleCreateRequest struct {
	Name         string                 `json:"name"`
	Conditions   map[string]interface{} `json:"conditions"`
	Status       string                 `json:"status"`
	StatusDetail string                 `json:"status_detail"`
	Priority     int                    `json:"priority"`
	Active       *bool                  `json:"active"`
}
