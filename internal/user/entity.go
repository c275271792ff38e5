// AngelaMos | 2026
// entity.go

package user

import (
	"database/sql"
	"time"
)

const (
	TypeTalent     = "talent"
	TypeMediaOwner = "media_owner"
	TypeAdmin      = "admin"
)

type User struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	UserType     string         `db:"user_type"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Phone        sql.NullString `db:"phone"`
	Bio          sql.NullString `db:"bio"`
	Location     sql.NullString `db:"location"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (u *User) IsTalent() bool {
	return u.UserType == TypeTalent
}

// Profile is a user row with its optional talent and media owner profile
// columns left-joined in.
type Profile struct {
	User
	DisplayName sql.NullString  `db:"display_name"`
	StageName   sql.NullString  `db:"stage_name"`
	TalentType  sql.NullString  `db:"talent_type"`
	HourlyRate  sql.NullFloat64 `db:"hourly_rate"`
	CompanyName sql.NullString  `db:"company_name"`
	MediaType   sql.NullString  `db:"media_type"`
}

type TalentProfile struct {
	UserID     int64   `db:"user_id"`
	StageName  string  `db:"stage_name"`
	TalentType string  `db:"talent_type"`
	HourlyRate float64 `db:"hourly_rate"`
}

type MediaOwnerProfile struct {
	UserID      int64  `db:"user_id"`
	CompanyName string `db:"company_name"`
	MediaType   string `db:"media_type"`
}

// Talent is the subset of a talent's profile the booking calculator needs.
type Talent struct {
	ID         int64
	StageName  string
	HourlyRate float64
	Location   string
}
