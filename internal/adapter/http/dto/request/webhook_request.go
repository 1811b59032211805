package request

// WebhookCreateRequest registers a delivery target. Empty events defaults to
// the wildcard subscription.
type WebhookCreateRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Active *bool    `json:"active"`
}
