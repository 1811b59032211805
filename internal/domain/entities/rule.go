package entities

import "time"

// SimulationRule forces a status on any incoming charge request whose fields
// match all conditions. Conditions are a flat map of dot-path -> expected
// value, evaluated against the raw request document.
//
// Rules are checked in priority order (higher first); ties resolve
// most-recently-created first. The first full match wins.
//
// Storage model (DynamoDB): PK id.
type SimulationRule struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Conditions   map[string]any `json:"conditions"`
	Status       string         `json:"status"`
	StatusDetail string         `json:"status_detail,omitempty"`
	Priority     int            `json:"priority"`
	Active       bool           `json:"active"`
	DateCreated  time.Time      `json:"date_created"`
}
