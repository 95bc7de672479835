package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	mentorRepo "mentorlink/database/repository/mentor"
	"mentorlink/models"
)

func (s *DefaultExportService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Export gathers lifetime totals, the most recent completed sessions and the
// mentor's name, then compiles the report. A mentor without a user record is
// rendered as "Unknown".
func (s *DefaultExportService) Export(ctx context.Context, mentorID string) (*models.ReportFile, error) {
	generatedAt := s.now()

	totals, err := s.Bookings.LifetimeTotals(ctx, mentorID)
	if err != nil {
		return nil, &ExportError{Step: "lifetime totals", Err: err}
	}
	if totals == nil {
		totals = &models.LifetimeTotals{}
	}

	sessions, err := s.Bookings.RecentCompleted(ctx, mentorID, RecentSessionLimit)
	if err != nil {
		return nil, &ExportError{Step: "recent sessions", Err: err}
	}

	var mentorName string
	user, err := s.Mentors.GetUser(ctx, mentorID)
	switch {
	case errors.Is(err, mentorRepo.ErrUserNotFound):
		// compiled with the placeholder name
	case err != nil:
		return nil, &ExportError{Step: "mentor profile", Err: err}
	default:
		mentorName = user.Name
	}

	content, err := s.Compiler.Compile(models.ReportData{
		MentorName:     mentorName,
		Period:         models.ReportPeriodAllTime,
		TotalEarnings:  totals.TotalEarnings,
		TotalSessions:  totals.TotalSessions,
		RecentSessions: sessions,
		GeneratedAt:    generatedAt,
	})
	if err != nil {
		if errors.Is(err, ErrRenderFailed) {
			return nil, err
		}
		return nil, &RenderError{Err: err}
	}

	return &models.ReportFile{
		FileName:    fmt.Sprintf("MentorLink_Report_%d.pdf", generatedAt.UnixMilli()),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
