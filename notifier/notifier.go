package notifier

import (
	"context"

	"bakery-api/models"
)

// Notifier delivers an accepted order to the business. The gatekeeper calls
// it exactly once per accepted submission, with the sanitized order.
type Notifier interface {
	Send(ctx context.Context, order models.Order) error
}
