// AngelaMos | 2026
// pricing.go

package booking

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	EveningRateMultiplier = 1.2
	PremiumSurcharge      = 1.15
	TravelFee             = 100.0
	DepositShare          = 0.5

	slotLayout = "15:04"
)

type Band struct {
	Name      string
	FirstHour int
	LastHour  int
	Premium   bool
}

// Bands are the bookable hours of a day; LastHour is the last slot start.
var Bands = []Band{
	{Name: "morning", FirstHour: 9, LastHour: 11},
	{Name: "afternoon", FirstHour: 13, LastHour: 17},
	{Name: "evening", FirstHour: 18, LastHour: 23, Premium: true},
}

var durationMultipliers = map[int]float64{
	1: 1.0,
	2: 1.8,
	3: 2.5,
	4: 3.2,
	6: 4.5,
	8: 6.0,
}

const maxDurationTier = 8

var premiumEventTypes = map[string]struct{}{
	EventWedding:   {},
	EventCorporate: {},
	EventFestival:  {},
}

type Slot struct {
	Time      string  `json:"time"`
	Band      string  `json:"band"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// Interval is a half-open [Start, End) range already taken on a talent's calendar.
type Interval struct {
	Start time.Time `db:"start_datetime"`
	End   time.Time `db:"end_datetime"`
}

func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && i.End.After(start)
}

func bandFor(hour int) (Band, bool) {
	for _, b := range Bands {
		if hour >= b.FirstHour && hour <= b.LastHour {
			return b, true
		}
	}
	return Band{}, false
}

// SlotPrice is the hourly rate for a slot starting at hour; false when the
// hour is outside every band.
func SlotPrice(hourlyRate float64, hour int) (float64, bool) {
	band, ok := bandFor(hour)
	if !ok {
		return 0, false
	}
	if band.Premium {
		return math.Round(hourlyRate * EveningRateMultiplier), true
	}
	return hourlyRate, true
}

// GenerateSlots lists every slot of day with its price, marking the ones that
// overlap a busy interval as unavailable.
func GenerateSlots(day time.Time, hourlyRate float64, busy []Interval) []Slot {
	day = startOfDay(day)
	slots := make([]Slot, 0, 14)

	for _, band := range Bands {
		for hour := band.FirstHour; hour <= band.LastHour; hour++ {
			start := SlotStart(day, hour)
			end := start.Add(time.Hour)
			price, _ := SlotPrice(hourlyRate, hour)

			slots = append(slots, Slot{
				Time:      FormatSlot(hour),
				Band:      band.Name,
				Available: !overlapsAny(busy, start, end),
				Price:     price,
			})
		}
	}

	return slots
}

// SlotStart is hour o'clock on day's calendar date in day's location. The
// wall clock is kept on days where the zone's UTC offset changes.
func SlotStart(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}

func overlapsAny(busy []Interval, start, end time.Time) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func FormatSlot(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ParseSlot accepts "9:00" as well as "09:00" and returns the starting hour.
func ParseSlot(s string) (int, error) {
	t, err := time.Parse(slotLayout, strings.TrimSpace(s))
	if err != nil || t.Minute() != 0 {
		return 0, fmt.Errorf("slot %q: %w", s, ErrInvalidSlot)
	}
	if _, ok := bandFor(t.Hour()); !ok {
		return 0, fmt.Errorf("slot %q: %w", s, ErrInvalidSlot)
	}
	return t.Hour(), nil
}

// DurationMultiplier discounts longer bookings. 5 and 7 hours are not
// offered; anything from 8 hours up uses the top tier.
func DurationMultiplier(hours int) (float64, bool) {
	if hours >= maxDurationTier {
		return durationMultipliers[maxDurationTier], true
	}
	m, ok := durationMultipliers[hours]
	return m, ok
}

func IsPremiumEvent(eventType string) bool {
	_, ok := premiumEventTypes[eventType]
	return ok
}

// leadingComponent is the part of a location before the first comma,
// e.g. "Los Angeles" for "Los Angeles, CA".
func leadingComponent(location string) string {
	head, _, _ := strings.Cut(location, ",")
	return strings.ToLower(strings.TrimSpace(head))
}

// NeedsTravel reports whether an on-site booking at location lies outside
// the talent's home city.
func NeedsTravel(isRemote bool, location, talentLocation string) bool {
	if isRemote || strings.TrimSpace(location) == "" {
		return false
	}
	return leadingComponent(location) != leadingComponent(talentLocation)
}

type QuoteInput struct {
	HourlyRate     float64
	TalentLocation string
	// SlotHour is nil until a slot has been picked.
	SlotHour  *int
	Duration  int
	EventType string
	IsRemote  bool
	Location  string
}

type Quote struct {
	SlotPrice          float64 `json:"slotPrice"`
	DurationMultiplier float64 `json:"durationMultiplier"`
	Subtotal           float64 `json:"subtotal"`
	PremiumApplied     bool    `json:"premiumApplied"`
	TravelFee          float64 `json:"travelFee"`
	Total              float64 `json:"total"`
	Deposit            float64 `json:"deposit"`
}

func CalculateQuote(in QuoteInput) (Quote, error) {
	multiplier, ok := DurationMultiplier(in.Duration)
	if !ok {
		return Quote{}, fmt.Errorf("duration %d: %w", in.Duration, ErrInvalidDuration)
	}

	base := in.HourlyRate
	if in.SlotHour != nil {
		price, ok := SlotPrice(in.HourlyRate, *in.SlotHour)
		if !ok {
			return Quote{}, fmt.Errorf("slot hour %d: %w", *in.SlotHour, ErrInvalidSlot)
		}
		base = price
	}

	q := Quote{
		SlotPrice:          base,
		DurationMultiplier: multiplier,
		Subtotal:           base * multiplier,
	}

	cost := q.Subtotal
	if IsPremiumEvent(in.EventType) {
		q.PremiumApplied = true
		cost *= PremiumSurcharge
	}

	if NeedsTravel(in.IsRemote, in.Location, in.TalentLocation) {
		q.TravelFee = TravelFee
		cost += TravelFee
	}

	q.Total = math.Round(cost)
	q.Deposit = math.Round(q.Total * DepositShare)

	return q, nil
}
