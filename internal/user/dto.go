// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/carterperez-dev/talentbook/internal/core"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	FilterAll    = "all"
)

type CreateUserRequest struct {
	Email     string `json:"email"     validate:"required,email,max=255"`
	Password  string `json:"password"  validate:"required,min=8,max=128"`
	UserType  string `json:"userType"  validate:"required,oneof=talent media_owner admin"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName"  validate:"required,min=1,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=32"`
	Bio       string `json:"bio"       validate:"omitempty,max=2000"`
	Location  string `json:"location"  validate:"omitempty,max=255"`

	StageName  string  `json:"stageName"  validate:"omitempty,max=100"`
	TalentType string  `json:"talentType" validate:"omitempty,max=50"`
	HourlyRate float64 `json:"hourlyRate" validate:"gte=0"`

	CompanyName string `json:"companyName" validate:"omitempty,max=150"`
	MediaType   string `json:"mediaType"   validate:"omitempty,max=50"`
}

func (r *CreateUserRequest) hasTalentProfile() bool {
	return r.UserType == TypeTalent &&
		(r.StageName != "" || r.TalentType != "" || r.HourlyRate > 0)
}

func (r *CreateUserRequest) hasMediaOwnerProfile() bool {
	return r.UserType == TypeMediaOwner &&
		(r.CompanyName != "" || r.MediaType != "")
}

type CreatedUserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	UserType    string    `json:"user_type"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       *string   `json:"phone"`
	Bio         *string   `json:"bio"`
	Location    *string   `json:"location"`
	DisplayName *string   `json:"display_name"`
	TalentType  *string   `json:"talent_type"`
	HourlyRate  *float64  `json:"hourly_rate"`
	CompanyName *string   `json:"company_name"`
	MediaType   *string   `json:"media_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListUsersResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination core.Pagination `json:"pagination"`
}

type ListUsersParams struct {
	Page  int
	Limit int
	Type  string
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Type == FilterAll {
		p.Type = ""
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToCreatedUserResponse(u *User) CreatedUserResponse {
	return CreatedUserResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  u.UserType,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponse(p *Profile) UserResponse {
	return UserResponse{
		ID:          p.ID,
		Email:       p.Email,
		UserType:    p.UserType,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       nullString(p.Phone.String, p.Phone.Valid),
		Bio:         nullString(p.Bio.String, p.Bio.Valid),
		Location:    nullString(p.Location.String, p.Location.Valid),
		DisplayName: nullString(p.DisplayName.String, p.DisplayName.Valid),
		TalentType:  nullString(p.TalentType.String, p.TalentType.Valid),
		HourlyRate:  nullFloat(p.HourlyRate.Float64, p.HourlyRate.Valid),
		CompanyName: nullString(p.CompanyName.String, p.CompanyName.Valid),
		MediaType:   nullString(p.MediaType.String, p.MediaType.Valid),
		CreatedAt:   p.CreatedAt,
	}
}

func ToUserResponseList(profiles []Profile) []UserResponse {
	responses := make([]UserResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToUserResponse(&profiles[i]))
	}
	return responses
}

func nullString(s string, valid bool) *string {
	if !valid {
		return nil
	}
	return &s
}

func nullFloat(f float64, valid bool) *float64 {
	if !valid {
		return nil
	}
	return &f
}
