// AngelaMos | 2026
// dto.go

package booking

import (
	"database/sql"
	"time"

	"github.com/carterperez-dev/talentbook/internal/core"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	FilterAll    = "all"
)

type CreateBookingRequest struct {
	TalentID      int64     `json:"talentId"      validate:"required,gt=0"`
	MediaOwnerID  int64     `json:"mediaOwnerId"  validate:"required,gt=0"`
	Title         string    `json:"title"         validate:"required,min=1,max=200"`
	Description   string    `json:"description"   validate:"omitempty,max=5000"`
	EventType     string    `json:"eventType"     validate:"omitempty,max=50"`
	StartDatetime time.Time `json:"startDatetime" validate:"required"`
	EndDatetime   time.Time `json:"endDatetime"   validate:"required,gtfield=StartDatetime"`
	Location      string    `json:"location"      validate:"omitempty,max=255"`
	Budget        float64   `json:"budget"        validate:"gte=0"`
	IsRemote      bool      `json:"isRemote"`
}

type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"        validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus,omitempty" validate:"omitempty,oneof=unpaid paid refunded"`
}

type QuoteRequest struct {
	TimeSlot  string `json:"timeSlot"  validate:"omitempty"`
	Duration  int    `json:"duration"  validate:"required,gt=0"`
	EventType string `json:"eventType" validate:"omitempty,max=50"`
	IsRemote  bool   `json:"isRemote"`
	Location  string `json:"location"  validate:"omitempty,max=255"`
}

type ContactRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=200"`
	Email   string `json:"email"   validate:"omitempty,email,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=32"`
	Company string `json:"company" validate:"omitempty,max=150"`
	Role    string `json:"role"    validate:"omitempty,max=100"`
}

// SubmitRequest is the full four-step booking form for one talent.
type SubmitRequest struct {
	MediaOwnerID int64  `json:"mediaOwnerId" validate:"required,gt=0"`
	Date         string `json:"date"         validate:"omitempty,datetime=2006-01-02"`
	TimeSlot     string `json:"timeSlot"`
	Duration     int    `json:"duration"     validate:"gte=0"`
	EventType    string `json:"eventType"    validate:"omitempty,oneof=wedding corporate birthday club radio tv podcast festival private other"`
	Title        string `json:"title"        validate:"omitempty,max=200"`

	Description         string `json:"description"         validate:"omitempty,max=5000"`
	Location            string `json:"location"            validate:"omitempty,max=255"`
	IsRemote            bool   `json:"isRemote"`
	SpecialRequirements string `json:"specialRequirements" validate:"omitempty,max=2000"`
	GuestCount          int    `json:"guestCount"          validate:"gte=0"`

	Contact       ContactRequest `json:"contact"`
	PaymentMethod string         `json:"paymentMethod" validate:"omitempty,oneof=card bank"`
}

type BookingResponse struct {
	ID            int64     `json:"id"`
	TalentID      int64     `json:"talent_id"`
	MediaOwnerID  int64     `json:"media_owner_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	EventType     *string   `json:"event_type"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Location      *string   `json:"location"`
	Budget        float64   `json:"budget"`
	IsRemote      bool      `json:"is_remote"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DetailResponse struct {
	BookingResponse
	TalentFirstName     string  `json:"talent_first_name"`
	TalentLastName      string  `json:"talent_last_name"`
	TalentEmail         string  `json:"talent_email"`
	StageName           *string `json:"stage_name"`
	TalentType          *string `json:"talent_type"`
	MediaOwnerFirstName string  `json:"media_owner_first_name"`
	MediaOwnerLastName  string  `json:"media_owner_last_name"`
	MediaOwnerEmail     string  `json:"media_owner_email"`
	CompanyName         *string `json:"company_name"`
	MediaType           *string `json:"media_type"`
}

type ListBookingsResponse struct {
	Bookings   []DetailResponse `json:"bookings"`
	Pagination core.Pagination  `json:"pagination"`
}

type SlotsResponse struct {
	TalentID int64  `json:"talentId"`
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
}

type SubmitResponse struct {
	Booking BookingResponse `json:"booking"`
	Quote   Quote           `json:"quote"`
}

type ListBookingsParams struct {
	Page   int
	Limit  int
	Status string
}

func (p *ListBookingsParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Status == FilterAll {
		p.Status = ""
	}
}

func (p *ListBookingsParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		TalentID:      b.TalentID,
		MediaOwnerID:  b.MediaOwnerID,
		Title:         b.Title,
		Description:   nullable(b.Description),
		EventType:     nullable(b.EventType),
		StartDatetime: b.StartDatetime,
		EndDatetime:   b.EndDatetime,
		Location:      nullable(b.Location),
		Budget:        b.Budget,
		IsRemote:      b.IsRemote,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func ToDetailResponse(d *Detail) DetailResponse {
	return DetailResponse{
		BookingResponse:     ToBookingResponse(&d.Booking),
		TalentFirstName:     d.TalentFirstName,
		TalentLastName:      d.TalentLastName,
		TalentEmail:         d.TalentEmail,
		StageName:           nullable(d.StageName),
		TalentType:          nullable(d.TalentType),
		MediaOwnerFirstName: d.MediaOwnerFirstName,
		MediaOwnerLastName:  d.MediaOwnerLastName,
		MediaOwnerEmail:     d.MediaOwnerEmail,
		CompanyName:         nullable(d.CompanyName),
		MediaType:           nullable(d.MediaType),
	}
}

func ToDetailResponseList(details []Detail) []DetailResponse {
	responses := make([]DetailResponse, 0, len(details))
	for i := range details {
		responses = append(responses, ToDetailResponse(&details[i]))
	}
	return responses
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
