package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session keyed by an opaque bearer token.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
