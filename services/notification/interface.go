package notification

import (
	"context"
	"errors"

	"markhamtaxi/models"
)

// ErrNotConfigured is returned when SMS credentials are absent. This is an
// expected deployment state, not a fault: bookings proceed with
// sms_sent=false.
var ErrNotConfigured = errors.New("sms gateway not configured")

// Notifier delivers a human-readable booking summary to the dispatch
// line. Delivery is best-effort: callers convert any error to a boolean
// outcome and never fail the booking on it.
type Notifier interface {
	Notify(ctx context.Context, req models.BookingRequest) error
}
