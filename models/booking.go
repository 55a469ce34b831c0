// File: markhamtaxi/models/booking.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatusPending is the initial (and only) booking status; no
// transitions are applied elsewhere in the system.
const BookingStatusPending = "pending"

// BookingRequest is the client-submitted booking payload. All fields are
// opaque strings; passengers is free text end to end.
type BookingRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Passengers string `json:"passengers" binding:"required"`
	Pickup     string `json:"pickup" binding:"required"`
	Dropoff    string `json:"dropoff" binding:"required"`
	Notes      string `json:"notes"`
}

// Booking is the persisted booking record. Records are append-only:
// the id and created_at are assigned once at construction and never
// updated afterwards.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Phone      string `bson:"phone" json:"phone"`
	Date       string `bson:"date" json:"date"`
	Time       string `bson:"time" json:"time"`
	Passengers string `bson:"passengers" json:"passengers"`
	Pickup     string `bson:"pickup" json:"pickup"`
	Dropoff    string `bson:"dropoff" json:"dropoff"`
	Notes      string `bson:"notes" json:"notes"`
	Status     string `bson:"status" json:"status"`
	CreatedAt  string `bson:"created_at" json:"created_at"` // ISO-8601, UTC
	SMSSent    bool   `bson:"sms_sent" json:"sms_sent"`
}

// BookingResponse is returned to the client after a successful submission.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
	SMSSent   bool   `json:"sms_sent"`
	Message   string `json:"message"`
}

// NewBooking builds a fully-populated booking record from a request:
// fresh uuid, UTC creation timestamp, pending status, request fields
// copied verbatim.
func NewBooking(req BookingRequest) Booking {
	return Booking{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Phone:      req.Phone,
		Date:       req.Date,
		Time:       req.Time,
		Passengers: req.Passengers,
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
		Notes:      req.Notes,
		Status:     BookingStatusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
}
