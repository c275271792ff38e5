// AngelaMos | 2026
// pricing_test.go

package booking

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/talentbook/internal/core"
)

func intPtr(v int) *int { return &v }

func TestSlotPrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		hour  int
		want  float64
		valid bool
	}{
		{name: "morning is the base rate", rate: 85, hour: 9, want: 85, valid: true},
		{name: "afternoon is the base rate", rate: 85, hour: 17, want: 85, valid: true},
		{name: "evening is rounded 1.2x", rate: 85, hour: 18, want: 102, valid: true},
		{name: "late evening", rate: 99, hour: 23, want: 119, valid: true},
		{name: "lunch gap", rate: 85, hour: 12, valid: false},
		{name: "before opening", rate: 85, hour: 8, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SlotPrice(tt.rate, tt.hour)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestDurationMultiplier(t *testing.T) {
	tests := []struct {
		hours int
		want  float64
		ok    bool
	}{
		{1, 1.0, true},
		{2, 1.8, true},
		{3, 2.5, true},
		{4, 3.2, true},
		{6, 4.5, true},
		{8, 6.0, true},
		{12, 6.0, true},
		{5, 0, false},
		{7, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		got, ok := DurationMultiplier(tt.hours)
		assert.Equal(t, tt.ok, ok, "hours=%d", tt.hours)
		assert.InDelta(t, tt.want, got, 0.0001, "hours=%d", tt.hours)
	}
}

func TestCalculateQuote_DurationScalesBasePrice(t *testing.T) {
	q, err := CalculateQuote(QuoteInput{
		HourlyRate: 150,
		SlotHour:   intPtr(10),
		Duration:   3,
		IsRemote:   true,
	})
	require.NoError(t, err)

	assert.InDelta(t, 150, q.SlotPrice, 0.0001)
	assert.InDelta(t, 375, q.Subtotal, 0.0001)
	assert.InDelta(t, 375, q.Total, 0.0001)
	assert.False(t, q.PremiumApplied)
	assert.Zero(t, q.TravelFee)
}

func TestCalculateQuote_PremiumEvents(t *testing.T) {
	for _, eventType := range []string{EventWedding, EventCorporate, EventFestival} {
		t.Run(eventType, func(t *testing.T) {
			q, err := CalculateQuote(QuoteInput{
				HourlyRate: 100,
				Duration:   2,
				EventType:  eventType,
				IsRemote:   true,
			})
			require.NoError(t, err)
			assert.True(t, q.PremiumApplied)
			assert.InDelta(t, 207, q.Total, 0.0001)
		})
	}

	q, err := CalculateQuote(QuoteInput{
		HourlyRate: 100,
		Duration:   2,
		EventType:  EventBirthday,
		IsRemote:   true,
	})
	require.NoError(t, err)
	assert.False(t, q.PremiumApplied)
	assert.InDelta(t, 180, q.Total, 0.0001)
}

func TestCalculateQuote_TravelFeeIsExactlyOneHundred(t *testing.T) {
	base := QuoteInput{
		HourlyRate:     100,
		TalentLocation: "Accra, GH",
		Duration:       1,
		Location:       "Lagos, NG",
	}

	remote := base
	remote.IsRemote = true

	onSite, err := CalculateQuote(base)
	require.NoError(t, err)
	atHome, err := CalculateQuote(remote)
	require.NoError(t, err)

	assert.InDelta(t, TravelFee, onSite.TravelFee, 0.0001)
	assert.InDelta(t, 100, onSite.Total-atHome.Total, 0.0001)
}

func TestNeedsTravel(t *testing.T) {
	tests := []struct {
		name     string
		remote   bool
		location string
		home     string
		want     bool
	}{
		{"remote never travels", true, "Lagos, NG", "Accra, GH", false},
		{"no event location", false, "", "Accra, GH", false},
		{"same city ignores case and region", false, "los angeles, CA", "Los Angeles", false},
		{"different city", false, "San Diego, CA", "Los Angeles, CA", true},
		{"talent without location", false, "San Diego", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsTravel(tt.remote, tt.location, tt.home))
		})
	}
}

func TestCalculateQuote_EveningPremiumWithTravel(t *testing.T) {
	q, err := CalculateQuote(QuoteInput{
		HourlyRate:     100,
		TalentLocation: "Los Angeles, CA",
		SlotHour:       intPtr(20),
		Duration:       2,
		EventType:      EventWedding,
		Location:       "San Diego, CA",
	})
	require.NoError(t, err)

	assert.InDelta(t, 120, q.SlotPrice, 0.0001)
	assert.InDelta(t, 216, q.Subtotal, 0.0001)
	assert.InDelta(t, 348, q.Total, 0.0001)
	assert.InDelta(t, 174, q.Deposit, 0.0001)
}

func TestCalculateQuote_Errors(t *testing.T) {
	_, err := CalculateQuote(QuoteInput{HourlyRate: 100, Duration: 5})
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = CalculateQuote(QuoteInput{HourlyRate: 100, Duration: 1, SlotHour: intPtr(12)})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestParseSlot(t *testing.T) {
	for _, in := range []string{"9:00", "09:00", " 09:00 "} {
		hour, err := ParseSlot(in)
		require.NoError(t, err, in)
		assert.Equal(t, 9, hour)
	}

	for _, in := range []string{"12:00", "9:30", "noon", "", "24:00"} {
		_, err := ParseSlot(in)
		assert.True(t, errors.Is(err, ErrInvalidSlot), "input %q", in)
	}

	assert.Equal(t, "09:00", FormatSlot(9))
	assert.Equal(t, "18:00", FormatSlot(18))
}

func TestGenerateSlots_MarksBusyHours(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	busy := []Interval{{
		Start: day.Add(10 * time.Hour),
		End:   day.Add(12 * time.Hour),
	}}

	slots := GenerateSlots(day, 100, busy)
	require.Len(t, slots, 14)

	byTime := make(map[string]Slot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.True(t, byTime["09:00"].Available)
	assert.False(t, byTime["10:00"].Available)
	assert.False(t, byTime["11:00"].Available)
	assert.True(t, byTime["13:00"].Available)
	assert.NotContains(t, byTime, "12:00")

	assert.Equal(t, "morning", byTime["09:00"].Band)
	assert.Equal(t, "evening", byTime["21:00"].Band)
	assert.InDelta(t, 100, byTime["13:00"].Price, 0.0001)
	assert.InDelta(t, 120, byTime["21:00"].Price, 0.0001)
}

func TestGenerateSlots_KeepsWallClockOnDSTDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2026, 3, 8, 0, 0, 0, 0, ny)
	busy := []Interval{{
		Start: time.Date(2026, 3, 8, 9, 0, 0, 0, ny),
		End:   time.Date(2026, 3, 8, 10, 0, 0, 0, ny),
	}}

	slots := GenerateSlots(day, 100, busy)
	require.Len(t, slots, 14)

	byTime := make(map[string]Slot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.False(t, byTime["09:00"].Available)
	assert.True(t, byTime["10:00"].Available)

	start := SlotStart(day, 9)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, "2026-03-08T09:00:00-04:00", start.Format(time.RFC3339))
}

func TestInterval_OverlapsIsHalfOpen(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	iv := Interval{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}

	assert.False(t, iv.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)))
	assert.False(t, iv.Overlaps(day.Add(9*time.Hour), day.Add(10*time.Hour)))
	assert.True(t, iv.Overlaps(day.Add(10*time.Hour+30*time.Minute), day.Add(12*time.Hour)))
}
