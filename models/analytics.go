// File: models/analytics.go
package models

import "github.com/shopspring/decimal"

// Timeframe is the lookback window used for the earnings trend.
type Timeframe string

const (
	Last7Days  Timeframe = "last7days"
	Last30Days Timeframe = "last30days"
	Last90Days Timeframe = "last90days"
)

// DailyBucket aggregates the completed sessions of one UTC calendar day.
type DailyBucket struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Earnings decimal.Decimal `json:"earnings"`
	Sessions int             `json:"sessions"`
}

// StudentBookingCount is the number of completed bookings a student holds with a mentor.
type StudentBookingCount struct {
	StudentID string `json:"studentId"`
	Bookings  int    `json:"bookings"`
}

// LifetimeTotals covers every completed booking of a mentor, regardless of timeframe.
type LifetimeTotals struct {
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	TotalSessions int             `json:"totalSessions"`
}

// SummaryStats is the lifetime block of the analytics response.
type SummaryStats struct {
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	TotalSessions int             `json:"totalSessions"`
	RetentionRate int             `json:"retentionRate"`
	StudentCount  int             `json:"studentCount"`
}

// AnalyticsSummary is returned by the summary endpoint.
type AnalyticsSummary struct {
	TimeframeStats []DailyBucket `json:"timeframeStats"`
	Summary        SummaryStats  `json:"summary"`
	Skills         []string      `json:"skills"`
}
