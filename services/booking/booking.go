// File: markhamtaxi/services/booking/booking.go
package booking

import (
	"context"
	"fmt"

	bookingRepo "markhamtaxi/database/repository/booking"
	"markhamtaxi/models"
	"markhamtaxi/services/notification"
	"markhamtaxi/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Notifier
}

// Submit builds the booking record, attempts the dispatch SMS, records
// the outcome on the record, and persists it. The notification result is
// captured as data, never as control flow: a failed SMS still yields a
// stored booking with sms_sent=false.
func (svc *DefaultBookingService) Submit(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	rec := models.NewBooking(req)

	if err := svc.Notifier.Notify(ctx, req); err != nil {
		logger.Warn("Booking notification not delivered",
			zap.String("bookingId", rec.ID), zap.Error(err))
		rec.SMSSent = false
	} else {
		rec.SMSSent = true
	}

	if err := svc.Repo.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	logger.Info("Booking created",
		zap.String("name", rec.Name), zap.String("bookingId", rec.ID))

	return &models.BookingResponse{
		Success:   true,
		BookingID: rec.ID,
		SMSSent:   rec.SMSSent,
		Message:   "Booking request processed successfully.",
	}, nil
}

// List returns all stored bookings.
func (svc *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return svc.Repo.List(ctx)
}
