package bookingRepo

import (
	"context"

	"markhamtaxi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert stores a new booking record.
func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

// List returns all stored bookings. No sort is applied; reads are capped
// at 1000 documents and the Mongo _id is projected out.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(1000)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
