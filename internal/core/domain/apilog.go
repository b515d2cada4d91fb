package domain

import "time"

// APILogEntry is an append-only usage record written after each
// authenticated request completes. Entries are never mutated or deleted.
type APILogEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	StatusCode int       `json:"status_code"`
	CreatedAt  time.Time `json:"created_at"`
}
