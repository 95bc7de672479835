package analytics

import (
	"context"

	"mentorlink/models"
)

// ComputeSummary runs four independent reads: the windowed daily buckets, the
// lifetime per-student counts, the lifetime totals and the skills list. Any
// failure aborts the whole summary.
func (s *DefaultAnalyticsService) ComputeSummary(ctx context.Context, mentorID, timeframe string) (*models.AnalyticsSummary, error) {
	tf := ResolveTimeframe(timeframe)
	since := s.now().AddDate(0, 0, -LookbackDays(tf))

	daily, err := s.Bookings.DailyStats(ctx, mentorID, since)
	if err != nil {
		return nil, aggregationError("daily stats", err)
	}
	if daily == nil {
		daily = []models.DailyBucket{}
	}

	counts, err := s.Bookings.StudentBookingCounts(ctx, mentorID)
	if err != nil {
		return nil, aggregationError("student retention", err)
	}
	studentCount, _, retentionRate := Retention(counts)

	totals, err := s.Bookings.LifetimeTotals(ctx, mentorID)
	if err != nil {
		return nil, aggregationError("lifetime totals", err)
	}
	if totals == nil {
		totals = &models.LifetimeTotals{}
	}

	skills, err := s.Mentors.GetSkills(ctx, mentorID)
	if err != nil {
		return nil, aggregationError("skills", err)
	}
	if skills == nil {
		skills = []string{}
	}

	return &models.AnalyticsSummary{
		TimeframeStats: daily,
		Summary: models.SummaryStats{
			TotalEarnings: totals.TotalEarnings,
			TotalSessions: totals.TotalSessions,
			RetentionRate: retentionRate,
			StudentCount:  studentCount,
		},
		Skills: skills,
	}, nil
}

// Retention counts distinct students and those with more than one completed
// booking. The rate is 100*recurring/students rounded half up, or 0 without
// students.
func Retention(counts []models.StudentBookingCount) (students, recurring, rate int) {
	for _, c := range counts {
		if c.Bookings <= 0 {
			continue
		}
		students++
		if c.Bookings > 1 {
			recurring++
		}
	}
	if students == 0 {
		return 0, 0, 0
	}
	// floor(100r/s + 1/2) in integer arithmetic
	rate = (200*recurring + students) / (2 * students)
	return students, recurring, rate
}
