// File: mentorlink/handlers/bundle.go
package handlers

import (
	mentorRepoPkg "mentorlink/database/repository/mentor"
	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers and the dependencies routes need.
type HandlerBundle struct {
	MentorRepo mentorRepoPkg.MentorRepository
	AuthCache  *redis.Client
	Health     *utils.HealthMonitor

	// Analytics endpoints
	GetAnalyticsSummary gin.HandlerFunc
	ExportReport        gin.HandlerFunc
}
