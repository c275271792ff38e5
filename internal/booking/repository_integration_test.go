// AngelaMos | 2026
// repository_integration_test.go

//go:build integration

package booking

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carterperez-dev/talentbook/internal/core"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("talentbook"),
		postgres.WithUsername("talentbook"),
		postgres.WithPassword("talentbook"),
		postgres.WithInitScripts("../../migrations/0001_init.sql"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatal(err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatal(err)
	}

	testDB, err = sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal(err)
	}

	code := m.Run()

	_ = testDB.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedUser(t *testing.T, userType, email string) int64 {
	t.Helper()

	var id int64
	err := testDB.Get(&id, `
		INSERT INTO users (email, password_hash, user_type, first_name, last_name)
		VALUES ($1, 'x', $2, 'Test', 'User')
		RETURNING id`, email, userType)
	require.NoError(t, err)
	return id
}

func resetBookings(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(`TRUNCATE bookings RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestRepository_ListPagination(t *testing.T) {
	resetBookings(t)
	ctx := context.Background()
	repo := NewRepository(testDB)

	talent := seedUser(t, "talent", "pager-talent@example.com")
	owner := seedUser(t, "media_owner", "pager-owner@example.com")

	day := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := range 15 {
		start := day.AddDate(0, 0, i)
		require.NoError(t, repo.Create(ctx, &Booking{
			TalentID:      talent,
			MediaOwnerID:  owner,
			Title:         fmt.Sprintf("Gig %d", i),
			StartDatetime: start,
			EndDatetime:   start.Add(time.Hour),
			Status:        StatusPending,
			PaymentStatus: PaymentUnpaid,
		}))
	}

	details, total, err := repo.List(ctx, ListBookingsParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Len(t, details, 5)

	page := core.NewPagination(2, 10, total)
	assert.Equal(t, 2, page.TotalPages)

	// Newest event first, so page 2 ends with the earliest booking.
	assert.Equal(t, "Gig 0", details[len(details)-1].Title)
	assert.Equal(t, "Test", details[0].TalentFirstName)
}

func TestRepository_CreateRejectsOverlap(t *testing.T) {
	resetBookings(t)
	ctx := context.Background()
	repo := NewRepository(testDB)

	talent := seedUser(t, "talent", "overlap-talent@example.com")
	owner := seedUser(t, "media_owner", "overlap-owner@example.com")
	start := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

	first := &Booking{
		TalentID:      talent,
		MediaOwnerID:  owner,
		Title:         "First",
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		Budget:        300,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	assert.InDelta(t, 300, first.Budget, 0.0001)

	clash := *first
	clash.ID = 0
	clash.StartDatetime = start.Add(time.Hour)
	clash.EndDatetime = start.Add(3 * time.Hour)
	assert.ErrorIs(t, repo.Create(ctx, &clash), ErrSlotTaken)

	cancelled := StatusCancelled
	_, err := repo.UpdateStatus(ctx, first.ID, &cancelled, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &clash))

	busy, err := repo.BusyIntervals(ctx, talent, start.Truncate(24*time.Hour), start.Truncate(24*time.Hour).AddDate(0, 0, 1))
	require.NoError(t, err)
	want := []Interval{{Start: clash.StartDatetime, End: clash.EndDatetime}}
	if diff := cmp.Diff(want, busy, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("busy intervals diff: -want, +got:\n%s", diff)
	}

	_, err = repo.UpdateStatus(ctx, 999999, &cancelled, nil)
	assert.ErrorIs(t, err, core.ErrNotFound)

	missing := *first
	missing.ID = 0
	missing.TalentID = 999999
	assert.ErrorIs(t, repo.Create(ctx, &missing), core.ErrNotFound)
}
