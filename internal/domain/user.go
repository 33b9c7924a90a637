package domain

import "time"

// User represents a bot user
type User struct {
	ID          int64     `db:"id"`
	ChatID      int64     `db:"chat_id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// DefaultDisplayName is stored when the transport knows nothing about the sender
const DefaultDisplayName = "Unknown"
