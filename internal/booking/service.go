// AngelaMos | 2026
// service.go

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/carterperez-dev/talentbook/internal/config"
	"github.com/carterperez-dev/talentbook/internal/core"
	"github.com/carterperez-dev/talentbook/internal/user"
)

const tracerName = "talentbook/booking"

var eventTitle = cases.Title(language.English)

type TalentProvider interface {
	GetTalent(ctx context.Context, id int64) (*user.Talent, error)
}

type Service struct {
	repo     Repository
	talents  TalentProvider
	calendar Calendar
	now      func() time.Time
	onChange []func(context.Context)
}

func NewService(
	repo Repository,
	talents TalentProvider,
	calendar Calendar,
) *Service {
	return &Service{
		repo:     repo,
		talents:  talents,
		calendar: calendar,
		now:      time.Now,
	}
}

// OnChange registers fn to run after every successful create or update.
func (s *Service) OnChange(fn func(context.Context)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Service) notify(ctx context.Context) {
	for _, fn := range s.onChange {
		fn(ctx)
	}
}

func (s *Service) ListBookings(
	ctx context.Context,
	params ListBookingsParams,
) ([]Detail, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*Detail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
) (*Booking, error) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, ErrInvalidRange
	}

	b := &Booking{
		TalentID:      req.TalentID,
		MediaOwnerID:  req.MediaOwnerID,
		Title:         strings.TrimSpace(req.Title),
		Description:   optional(req.Description),
		EventType:     optional(req.EventType),
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      optional(req.Location),
		Budget:        req.Budget,
		IsRemote:      req.IsRemote,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
	}

	if err := s.create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) create(ctx context.Context, b *Booking) error {
	ctx, span := core.StartSpan(ctx, tracerName, "booking.Create",
		attribute.Int64("booking.talent_id", b.TalentID),
		attribute.Int64("booking.media_owner_id", b.MediaOwnerID),
	)
	defer span.End()

	if err := s.repo.Create(ctx, b); err != nil {
		if isConflict(err) {
			core.AddSpanEvent(ctx, "booking.conflict")
		}
		core.SetSpanError(ctx, err)
		return err
	}

	core.AddSpanEvent(ctx, "booking.created",
		attribute.Int64("booking.id", b.ID),
		attribute.Float64("booking.budget", b.Budget),
	)
	s.notify(ctx)
	return nil
}

func (s *Service) UpdateBooking(
	ctx context.Context,
	id int64,
	req UpdateBookingRequest,
) (*Booking, error) {
	ctx, span := core.StartSpan(ctx, tracerName, "booking.Update",
		attribute.Int64("booking.id", id),
	)
	defer span.End()

	b, err := s.repo.UpdateStatus(ctx, id, req.Status, req.PaymentStatus)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	core.AddSpanEvent(ctx, "booking.updated",
		attribute.String("booking.status", b.Status),
		attribute.String("booking.payment_status", b.PaymentStatus),
	)
	s.notify(ctx)
	return b, nil
}

// Slots lists the priced slots of one day for a talent, with availability
// taken from that talent's existing bookings.
func (s *Service) Slots(
	ctx context.Context,
	talentID int64,
	date string,
) ([]Slot, error) {
	day, err := s.bookableDay(date)
	if err != nil {
		return nil, err
	}

	talent, err := s.talents.GetTalent(ctx, talentID)
	if err != nil {
		return nil, err
	}

	busy, err := s.repo.BusyIntervals(ctx, talentID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return GenerateSlots(day, talent.HourlyRate, busy), nil
}

func (s *Service) Quote(
	ctx context.Context,
	talentID int64,
	req QuoteRequest,
) (Quote, error) {
	talent, err := s.talents.GetTalent(ctx, talentID)
	if err != nil {
		return Quote{}, err
	}

	in := QuoteInput{
		HourlyRate:     talent.HourlyRate,
		TalentLocation: talent.Location,
		Duration:       req.Duration,
		EventType:      req.EventType,
		IsRemote:       req.IsRemote,
		Location:       req.Location,
	}

	if notBlank(req.TimeSlot) {
		hour, err := ParseSlot(req.TimeSlot)
		if err != nil {
			return Quote{}, err
		}
		in.SlotHour = &hour
	}

	return CalculateQuote(in)
}

// Submit runs the four-step form through the wizard, prices it and stores
// the result as a pending, unpaid booking whose budget is the quoted total.
func (s *Service) Submit(
	ctx context.Context,
	talentID int64,
	req SubmitRequest,
) (*Booking, Quote, error) {
	wizard := NewWizard()
	wizard.Form = formFromRequest(req)

	if notBlank(req.Date) {
		day, err := s.parseDay(req.Date)
		if err != nil {
			return nil, Quote{}, err
		}
		wizard.Form.Schedule.Date = &day
	}

	if err := wizard.Complete(); err != nil {
		return nil, Quote{}, err
	}

	day := *wizard.Form.Schedule.Date
	if !s.calendar.IsBookable(day, s.now()) {
		return nil, Quote{}, fmt.Errorf("%s: %w", req.Date, ErrDateUnavailable)
	}

	hour, err := ParseSlot(req.TimeSlot)
	if err != nil {
		return nil, Quote{}, err
	}

	talent, err := s.talents.GetTalent(ctx, talentID)
	if err != nil {
		return nil, Quote{}, err
	}

	quote, err := CalculateQuote(QuoteInput{
		HourlyRate:     talent.HourlyRate,
		TalentLocation: talent.Location,
		SlotHour:       &hour,
		Duration:       req.Duration,
		EventType:      req.EventType,
		IsRemote:       req.IsRemote,
		Location:       req.Location,
	})
	if err != nil {
		return nil, Quote{}, err
	}

	start := SlotStart(day, hour)
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = fmt.Sprintf("%s booking: %s", eventLabel(req.EventType), talent.StageName)
	}

	location := req.Location
	if req.IsRemote {
		location = ""
	}

	b := &Booking{
		TalentID:      talentID,
		MediaOwnerID:  req.MediaOwnerID,
		Title:         title,
		Description:   optional(describe(req)),
		EventType:     optional(req.EventType),
		StartDatetime: start,
		EndDatetime:   start.Add(time.Duration(req.Duration) * time.Hour),
		Location:      optional(location),
		Budget:        quote.Total,
		IsRemote:      req.IsRemote,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
	}

	if err := s.create(ctx, b); err != nil {
		return nil, Quote{}, err
	}

	return b, quote, nil
}

func (s *Service) parseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(config.DateLayout, date, s.calendar.loc())
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", date, core.ErrInvalidInput)
	}
	return day, nil
}

func (s *Service) bookableDay(date string) (time.Time, error) {
	day, err := s.parseDay(date)
	if err != nil {
		return time.Time{}, err
	}
	if !s.calendar.IsBookable(day, s.now()) {
		return time.Time{}, fmt.Errorf("%s: %w", date, ErrDateUnavailable)
	}
	return day, nil
}

func formFromRequest(req SubmitRequest) Form {
	return Form{
		Schedule: ScheduleForm{
			SlotTime:  req.TimeSlot,
			Duration:  req.Duration,
			EventType: req.EventType,
		},
		Details: DetailsForm{
			Description:         req.Description,
			Location:            req.Location,
			IsRemote:            req.IsRemote,
			SpecialRequirements: req.SpecialRequirements,
			GuestCount:          req.GuestCount,
		},
		Contact: ContactForm{
			Name:    req.Contact.Name,
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Company: req.Contact.Company,
			Role:    req.Contact.Role,
		},
		Payment: PaymentForm{Method: req.PaymentMethod},
	}
}

func describe(req SubmitRequest) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(req.Description))

	if notBlank(req.SpecialRequirements) {
		sb.WriteString("\n\nSpecial requirements: ")
		sb.WriteString(strings.TrimSpace(req.SpecialRequirements))
	}

	if req.GuestCount > 0 {
		fmt.Fprintf(&sb, "\nGuests: %d", req.GuestCount)
	}

	return sb.String()
}

func eventLabel(eventType string) string {
	switch eventType {
	case EventCorporate:
		return "Corporate event"
	case EventClub:
		return "Club night"
	case EventTV:
		return "TV/Streaming"
	case EventPrivate:
		return "Private party"
	case "":
		return "Event"
	default:
		return eventTitle.String(eventType)
	}
}

func isConflict(err error) bool {
	return errors.Is(err, core.ErrConflict)
}

func optional(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
