// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/talentbook/internal/booking"
	"github.com/carterperez-dev/talentbook/internal/core"
	"github.com/carterperez-dev/talentbook/internal/user"
)

const (
	tracerName         = "talentbook/dashboard"
	RecentActivitySize = 5
	StatsCacheKey      = "dashboard:stats"
)

// Cache stores the computed summary between requests; *core.Redis
// implements it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithCache enables caching of Stats for ttl. A non-positive ttl leaves
// caching off.
func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	if cache != nil && ttl > 0 {
		s.cache = cache
		s.ttl = ttl
	}
	return s
}

// Invalidate drops the cached summary. Booking and user writes call it so
// the next read sees their change.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, StatsCacheKey); err != nil {
		slog.Warn("dashboard cache invalidation failed", "error", err)
	}
}

// Stats serves the cached summary when there is one, otherwise computes it.
// Cache failures only cost a recompute.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := core.StartSpan(ctx, tracerName, "dashboard.Stats")
	defer span.End()

	if s.cache != nil {
		var cached Stats
		hit, err := s.cache.GetJSON(ctx, StatsCacheKey, &cached)
		if err != nil {
			slog.Warn("dashboard cache read failed", "error", err)
		}
		if hit {
			core.AddSpanEvent(ctx, "dashboard.cache_hit")
			return &cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, StatsCacheKey, stats, s.ttl); err != nil {
			slog.Warn("dashboard cache write failed", "error", err)
		}
	}

	return stats, nil
}

// compute runs the four aggregate queries concurrently; any failure fails
// the whole summary.
func (s *Service) compute(ctx context.Context) (*Stats, error) {

	var (
		users    []UserCount
		statuses []StatusCount
		revenue  Revenue
		recent   []Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.repo.UserCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.repo.StatusCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = s.repo.Revenue(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.repo.RecentActivity(gctx, RecentActivitySize)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return buildStats(users, statuses, revenue, recent), nil
}

func buildStats(
	users []UserCount,
	statuses []StatusCount,
	revenue Revenue,
	recent []Activity,
) *Stats {
	stats := &Stats{
		Revenue: RevenueStats{
			Total:         revenue.Total,
			TotalBookings: revenue.Bookings,
			Average:       revenue.Average,
		},
		RecentActivity: make([]ActivityResponse, 0, len(recent)),
	}

	for _, u := range users {
		switch u.UserType {
		case user.TypeTalent:
			stats.Users.Talents = u.Count
		case user.TypeMediaOwner:
			stats.Users.MediaOwners = u.Count
		}
	}
	stats.Users.Total = stats.Users.Talents + stats.Users.MediaOwners

	// Statuses outside the four named buckets still count toward Total.
	for _, sc := range statuses {
		switch sc.Status {
		case booking.StatusPending:
			stats.Bookings.Pending = sc.Count
		case booking.StatusConfirmed:
			stats.Bookings.Confirmed = sc.Count
		case booking.StatusCompleted:
			stats.Bookings.Completed = sc.Count
		case booking.StatusCancelled:
			stats.Bookings.Cancelled = sc.Count
		}
		stats.Bookings.Total += sc.Count
	}

	for _, a := range recent {
		stats.RecentActivity = append(stats.RecentActivity, ToActivityResponse(a))
	}

	stats.CompletionRate = CompletionRate(stats.Bookings.Completed, stats.Bookings.Total)

	return stats
}

// CompletionRate is completed/total as a rounded whole percentage, 0 when
// there are no bookings.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
