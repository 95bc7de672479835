package analytics

import "mentorlink/models"

// ResolveTimeframe maps a raw query value onto a supported timeframe.
// Anything unrecognised, including the empty string, is last30days.
func ResolveTimeframe(raw string) models.Timeframe {
	switch tf := models.Timeframe(raw); tf {
	case models.Last7Days, models.Last30Days, models.Last90Days:
		return tf
	default:
		return models.Last30Days
	}
}

// LookbackDays is the window length of a resolved timeframe.
func LookbackDays(tf models.Timeframe) int {
	switch tf {
	case models.Last7Days:
		return 7
	case models.Last90Days:
		return 90
	default:
		return 30
	}
}
