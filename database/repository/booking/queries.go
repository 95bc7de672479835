package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"mentorlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecentCompleted returns up to limit completed bookings, newest session first,
// with the student's name resolved from the users collection.
func (r *mongoBookingRepo) RecentCompleted(ctx context.Context, mentorID string, limit int) ([]models.RecentSession, error) {
	mentor, ok := mentorObjectID(mentorID)
	if !ok || limit <= 0 {
		return []models.RecentSession{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: completedFor(mentor)}},
		{{Key: "$sort", Value: bson.D{{Key: "sessionDate", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "student",
			"foreignField": "_id",
			"as":           "studentInfo",
		}}},
		{{Key: "$project", Value: bson.M{
			"sessionDate": 1,
			"amount":      1,
			"studentName": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$studentInfo.name", 0}},
				"",
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SessionDate time.Time    `bson:"sessionDate"`
		Amount      models.Money `bson:"amount"`
		StudentName string       `bson:"studentName"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding recent sessions: %w", err)
	}

	sessions := make([]models.RecentSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, models.RecentSession{
			StudentName: row.StudentName,
			SessionDate: row.SessionDate.UTC(),
			Amount:      row.Amount.Decimal,
		})
	}
	return sessions, nil
}
