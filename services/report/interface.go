package report

import (
	"context"
	"time"

	bookingRepo "mentorlink/database/repository/booking"
	mentorRepo "mentorlink/database/repository/mentor"
	"mentorlink/models"
)

// RecentSessionLimit caps the sessions listed on an exported report.
const RecentSessionLimit = 10

// Compiler renders report data into a document.
type Compiler interface {
	Compile(data models.ReportData) ([]byte, error)
}

// ExportService builds the downloadable performance report of a mentor.
type ExportService interface {
	Export(ctx context.Context, mentorID string) (*models.ReportFile, error)
}

// DefaultExportService is the production implementation.
type DefaultExportService struct {
	Bookings bookingRepo.BookingRepository
	Mentors  mentorRepo.MentorRepository
	Compiler Compiler
	// Now stamps the report and its file name; time.Now when nil.
	Now func() time.Time
}

// NewDefaultExportService wires the export path.
func NewDefaultExportService(
	bookings bookingRepo.BookingRepository,
	mentors mentorRepo.MentorRepository,
	compiler Compiler,
) *DefaultExportService {
	return &DefaultExportService{
		Bookings: bookings,
		Mentors:  mentors,
		Compiler: compiler,
		Now:      time.Now,
	}
}
