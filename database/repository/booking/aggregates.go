package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"mentorlink/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// dayFormat keys daily buckets by UTC calendar day.
const dayFormat = "%Y-%m-%d"

// completedFor matches the completed bookings of a mentor.
func completedFor(mentor primitive.ObjectID) bson.M {
	return bson.M{
		"mentor": mentor,
		"status": models.BookingCompleted,
	}
}

// DailyStats groups completed bookings with sessionDate >= since by UTC day.
// Days without completed bookings are not returned.
func (r *mongoBookingRepo) DailyStats(ctx context.Context, mentorID string, since time.Time) ([]models.DailyBucket, error) {
	mentor, ok := mentorObjectID(mentorID)
	if !ok {
		return []models.DailyBucket{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	match := completedFor(mentor)
	match["sessionDate"] = bson.M{"$gte": since.UTC()}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   dayFormat,
				"date":     "$sessionDate",
				"timezone": "UTC",
			}},
			"earnings":     bson.M{"$sum": "$amount"},
			"sessionCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date         string       `bson:"_id"`
		Earnings     models.Money `bson:"earnings"`
		SessionCount int          `bson:"sessionCount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding daily stats: %w", err)
	}

	buckets := make([]models.DailyBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, models.DailyBucket{
			Date:     row.Date,
			Earnings: row.Earnings.Decimal,
			Sessions: row.SessionCount,
		})
	}
	return buckets, nil
}

// StudentBookingCounts groups every completed booking of the mentor by student.
func (r *mongoBookingRepo) StudentBookingCounts(ctx context.Context, mentorID string) ([]models.StudentBookingCount, error) {
	mentor, ok := mentorObjectID(mentorID)
	if !ok {
		return []models.StudentBookingCount{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Bookings without a student cannot count toward retention.
	match := completedFor(mentor)
	match["student"] = bson.M{"$ne": nil}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$student",
			"bookingCount": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate student bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Student      bson.RawValue `bson:"_id"`
		BookingCount int           `bson:"bookingCount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding student bookings: %w", err)
	}

	counts := make([]models.StudentBookingCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, models.StudentBookingCount{
			StudentID: idString(row.Student),
			Bookings:  row.BookingCount,
		})
	}
	return counts, nil
}

// LifetimeTotals sums every completed booking of the mentor.
func (r *mongoBookingRepo) LifetimeTotals(ctx context.Context, mentorID string) (*models.LifetimeTotals, error) {
	totals := &models.LifetimeTotals{TotalEarnings: decimal.Zero}
	mentor, ok := mentorObjectID(mentorID)
	if !ok {
		return totals, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: completedFor(mentor)}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalEarnings": bson.M{"$sum": "$amount"},
			"totalSessions": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lifetime totals: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalEarnings models.Money `bson:"totalEarnings"`
		TotalSessions int          `bson:"totalSessions"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding lifetime totals: %w", err)
	}
	if len(rows) == 0 {
		return totals, nil
	}
	totals.TotalEarnings = rows[0].TotalEarnings.Decimal
	totals.TotalSessions = rows[0].TotalSessions
	return totals, nil
}

// mentorObjectID parses a mentor id. Ids that are not ObjectIDs cannot own any
// booking, so callers treat them as an empty result rather than a fault.
func mentorObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func idString(rv bson.RawValue) string {
	switch rv.Type {
	case bsontype.ObjectID:
		return rv.ObjectID().Hex()
	case bsontype.String:
		return rv.StringValue()
	case bsontype.Null, bsontype.Undefined, 0:
		return ""
	default:
		return rv.String()
	}
}
