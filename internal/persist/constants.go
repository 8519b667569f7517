package persist

import "time"

// Debounce windows per namespace. Catalog edits are bursty admin actions,
// progress changes are gameplay-critical, so progress flushes faster.
const (
	DebounceConfig   = 1000 * time.Millisecond
	DebounceProgress = 500 * time.Millisecond
)

// WriteQueueSize is the buffer size of the serialized write queue.
const WriteQueueSize = 64

// Log message constants
const (
	LogMsgWriteFailed      = "Durable write failed, in-memory state stays authoritative"
	LogMsgClearFailed      = "Failed to clear namespace"
	LogMsgShutdownComplete = "Persistence synchronizer shutdown complete"
	LogMsgShutdownTimeout  = "Persistence synchronizer shutdown timed out"
)
