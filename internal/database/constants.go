package database

import "time"

// Connection pool settings for the saves store. The workload is a single
// writer goroutine plus health checks, so the pool stays small.
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10

	// ConnectTimeout bounds the startup connectivity check.
	ConnectTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnected = "Connected to the saves database"
)
