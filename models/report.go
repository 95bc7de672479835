package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriodAllTime is the only period the exported report covers.
const ReportPeriodAllTime = "All Time Summary"

// RecentSession is one completed booking as listed on the exported report.
type RecentSession struct {
	StudentName string          `json:"studentName"`
	SessionDate time.Time       `json:"sessionDate"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReportData is everything the report compiler renders.
type ReportData struct {
	MentorName     string
	Period         string
	TotalEarnings  decimal.Decimal
	TotalSessions  int
	RecentSessions []RecentSession
	GeneratedAt    time.Time
}

// ReportFile is a rendered report ready to be downloaded.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
