package bookingRepo

import (
	"context"

	"markhamtaxi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists booking records. Records are append-only;
// no update or delete operation exists.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
