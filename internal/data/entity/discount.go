package entity

import "time"

// DiscountScheme grants a percentage reduction once a user's booking count
// reaches Threshold. Qualifying schemes apply sequentially in id order.
type DiscountScheme struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Threshold int       `db:"threshold"`
	Value     int       `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}
