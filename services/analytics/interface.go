package analytics

import (
	"context"
	"time"

	bookingRepo "mentorlink/database/repository/booking"
	mentorRepo "mentorlink/database/repository/mentor"
	"mentorlink/models"
)

// AnalyticsService computes mentor performance figures.
type AnalyticsService interface {
	// ComputeSummary returns the trend for the requested timeframe plus lifetime
	// totals, retention and skills. Unknown timeframes fall back to last30days.
	ComputeSummary(ctx context.Context, mentorID, timeframe string) (*models.AnalyticsSummary, error)
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	Bookings bookingRepo.BookingRepository
	Mentors  mentorRepo.MentorRepository
	// Now is the clock used for the window start; time.Now when nil.
	Now func() time.Time
}

// NewDefaultAnalyticsService wires the service over its repositories.
func NewDefaultAnalyticsService(bookings bookingRepo.BookingRepository, mentors mentorRepo.MentorRepository) *DefaultAnalyticsService {
	return &DefaultAnalyticsService{
		Bookings: bookings,
		Mentors:  mentors,
		Now:      time.Now,
	}
}

func (s *DefaultAnalyticsService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
