package booking

import (
	"context"

	"markhamtaxi/models"
)

// BookingService accepts booking submissions and lists stored records.
type BookingService interface {
	// Submit persists a booking built from req and attempts a dispatch
	// notification. Notification failure never aborts the booking; a
	// non-nil error means the booking itself was not stored.
	Submit(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)

	// List returns all stored bookings.
	List(ctx context.Context) ([]models.Booking, error)
}
