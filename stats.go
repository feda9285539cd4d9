package rift0

import "time"

// Stats mirrors the original tokenizer's TokenizerStats: running
// counters updated by every Scan call, under the same lock that
// protects the rest of the context's mutable state.
type Stats struct {
	TokensProcessed   uint64
	BytesScanned      uint64
	Elapsed           time.Duration
	PeakTokenCapacity int
	ErrorCount        uint64
}
