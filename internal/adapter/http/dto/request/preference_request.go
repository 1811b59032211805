package request

type PreferenceItemRequest struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type BackURLsRequest struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceCreateRequest opens a checkout intent. The amount may come either
// from `transaction_amount` or from the item list; items win when present.
type PreferenceCreateRequest struct {
	Items             []PreferenceItemRequest `json:"items"`
	TransactionAmount float64                 `json:"transaction_amount"`
	Description       string                  `json:"description"`
	Payer             PayerRequest            `json:"payer"`
	ExternalReference string                  `json:"external_reference"`
	NotificationURL   string                  `json:"notification_url"`
	BackURLs          BackURLsRequest         `json:"back_urls"`
	Metadata          map[string]interface{}  `json:"metadata"`
}
