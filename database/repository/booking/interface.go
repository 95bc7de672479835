// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"mentorlink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=interface.go -destination=../mocks/booking_repository.go -package=mocks

// BookingRepository exposes the read-only booking queries used by analytics.
// Every query only considers completed bookings.
type BookingRepository interface {
	DailyStats(ctx context.Context, mentorID string, since time.Time) ([]models.DailyBucket, error)
	StudentBookingCounts(ctx context.Context, mentorID string) ([]models.StudentBookingCount, error)
	LifetimeTotals(ctx context.Context, mentorID string) (*models.LifetimeTotals, error)
	RecentCompleted(ctx context.Context, mentorID string, limit int) ([]models.RecentSession, error)
	EnsureIndexes(ctx context.Context) error
}

const (
	bookingsCollection = "bookings"
	usersCollection    = "users"
	queryTimeout       = 5 * time.Second
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository backed by the bookings collection of db.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection(bookingsCollection),
	}
}
