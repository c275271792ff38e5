// AngelaMos | 2026
// mocks_test.go

package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carterperez-dev/talentbook/internal/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Detail), args.Error(1)
}

func (m *MockRepository) List(
	ctx context.Context,
	params ListBookingsParams,
) ([]Detail, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Detail), args.Int(1), args.Error(2)
}

func (m *MockRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status, paymentStatus *string,
) (*Booking, error) {
	args := m.Called(ctx, id, status, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) BusyIntervals(
	ctx context.Context,
	talentID int64,
	from, to time.Time,
) ([]Interval, error) {
	args := m.Called(ctx, talentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Interval), args.Error(1)
}

type MockTalents struct {
	mock.Mock
}

func (m *MockTalents) GetTalent(ctx context.Context, id int64) (*user.Talent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Talent), args.Error(1)
}

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestService() (*Service, *MockRepository, *MockTalents) {
	repo := new(MockRepository)
	talents := new(MockTalents)

	svc := NewService(repo, talents, NewCalendar(90, nil, time.UTC))
	svc.now = func() time.Time { return testNow }

	return svc, repo, talents
}

func laTalent() *user.Talent {
	return &user.Talent{
		ID:         5,
		StageName:  "DJ Nova",
		HourlyRate: 100,
		Location:   "Los Angeles, CA",
	}
}

func strPtr(s string) *string { return &s }
