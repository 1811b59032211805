package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts a real upstream provider (e.g. Mercado Pago).
//
// The simulator resolves outcomes locally by default; when a passthrough
// gateway is configured, direct payment creation is forwarded upstream and
// the provider's verdict is recorded instead of a simulated one.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
