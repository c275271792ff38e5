// AngelaMos | 2026
// entity.go

package booking

import (
	"database/sql"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

const (
	EventWedding   = "wedding"
	EventCorporate = "corporate"
	EventBirthday  = "birthday"
	EventClub      = "club"
	EventRadio     = "radio"
	EventTV        = "tv"
	EventPodcast   = "podcast"
	EventFestival  = "festival"
	EventPrivate   = "private"
	EventOther     = "other"
)

type Booking struct {
	ID            int64          `db:"id"`
	TalentID      int64          `db:"talent_id"`
	MediaOwnerID  int64          `db:"media_owner_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	EventType     sql.NullString `db:"event_type"`
	StartDatetime time.Time      `db:"start_datetime"`
	EndDatetime   time.Time      `db:"end_datetime"`
	Location      sql.NullString `db:"location"`
	Budget        float64        `db:"budget"`
	IsRemote      bool           `db:"is_remote"`
	Status        string         `db:"status"`
	PaymentStatus string         `db:"payment_status"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Detail is a booking joined with both parties' names and profiles.
type Detail struct {
	Booking
	TalentFirstName     string         `db:"talent_first_name"`
	TalentLastName      string         `db:"talent_last_name"`
	TalentEmail         string         `db:"talent_email"`
	StageName           sql.NullString `db:"stage_name"`
	TalentType          sql.NullString `db:"talent_type"`
	MediaOwnerFirstName string         `db:"media_owner_first_name"`
	MediaOwnerLastName  string         `db:"media_owner_last_name"`
	MediaOwnerEmail     string         `db:"media_owner_email"`
	CompanyName         sql.NullString `db:"company_name"`
	MediaType           sql.NullString `db:"media_type"`
}
