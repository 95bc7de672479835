// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "authToken:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// Gin context keys shared by middleware and handlers.
const (
	CtxMentorID      = "mentorID"
	CtxLogger        = "logger"
	CtxCorrelationID = "correlationID"
)

// CorrelationHeader carries the request correlation id in and out.
const CorrelationHeader = "X-Request-ID"
