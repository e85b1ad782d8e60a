package domain

import (
	"encoding/json"
	"time"
)

// LogEntry is an append-only audit record. Details round-trips arbitrary
// JSON (stored as jsonb).
type LogEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"createdAt"`
}
