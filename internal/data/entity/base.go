package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseNoDelete is embedded by mutable entities. Rows are hard-deleted, so
// there is no deleted_at column.
type BaseNoDelete struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Touch stamps the entity as modified.
func (b *BaseNoDelete) Touch() {
	b.UpdatedAt = time.Now()
}

// BaseSimple is embedded by append-only rows (bookings, sessions) that are
// never updated in place.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
