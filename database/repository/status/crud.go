package statusRepo

import (
	"context"

	"markhamtaxi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert stores a new status check record.
func (r *mongoStatusRepo) Insert(ctx context.Context, check models.StatusCheck) error {
	_, err := r.coll.InsertOne(ctx, check)
	return err
}

// List returns all stored status checks, capped at 1000 documents.
func (r *mongoStatusRepo) List(ctx context.Context) ([]models.StatusCheck, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(1000)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
