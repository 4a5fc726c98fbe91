package domain

import "time"

// Setting is a per-user preference key/value pair, unique per (user, key).
type Setting struct {
	ID        string
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
}
