package entities

import "time"

// Plan is a static preapproval template. It only participates at
// subscription-creation time, where its fields act as overridable defaults.
//
// Storage model (DynamoDB): PK id.
type Plan struct {
	ID            string        `json:"id"`
	Reason        string        `json:"reason"`
	AutoRecurring AutoRecurring `json:"auto_recurring"`
	Status        string        `json:"status"`
	DateCreated   time.Time     `json:"date_created"`
}

const PlanStatusActive = "active"
