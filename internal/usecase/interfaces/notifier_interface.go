package interfaces

import "context"

// IEventNotifier fans a gateway event out to every interested webhook
// endpoint. Delivery is best-effort: implementations journal failures but
// never report them back, so a notification can never fail the operation
// that triggered it.
type IEventNotifier interface {
	Notify(ctx context.Context, event, action, resourceID, notificationURL string)
}
