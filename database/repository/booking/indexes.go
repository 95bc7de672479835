// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the analytics queries.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Windowed daily stats and recent sessions
		{
			Keys:    bson.D{{Key: "mentor", Value: 1}, {Key: "status", Value: 1}, {Key: "sessionDate", Value: -1}},
			Options: options.Index().SetName("mentor_status_session_date_idx"),
		},
		// Retention grouping
		{
			Keys:    bson.D{{Key: "mentor", Value: 1}, {Key: "status", Value: 1}, {Key: "student", Value: 1}},
			Options: options.Index().SetName("mentor_status_student_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
