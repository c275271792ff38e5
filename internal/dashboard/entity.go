// AngelaMos | 2026
// entity.go

package dashboard

import (
	"database/sql"
	"time"
)

type UserCount struct {
	UserType string `db:"user_type"`
	Count    int    `db:"count"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// Revenue covers paid bookings only.
type Revenue struct {
	Total    float64 `db:"total_revenue"`
	Bookings int     `db:"total_bookings"`
	Average  float64 `db:"avg_booking_value"`
}

type Activity struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	TalentName  sql.NullString `db:"talent_name"`
	CompanyName sql.NullString `db:"company_name"`
}
