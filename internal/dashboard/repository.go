// AngelaMos | 2026
// repository.go

package dashboard

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/talentbook/internal/booking"
	"github.com/carterperez-dev/talentbook/internal/user"
)

type Repository interface {
	UserCounts(ctx context.Context) ([]UserCount, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	Revenue(ctx context.Context) (Revenue, error)
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UserCounts(ctx context.Context) ([]UserCount, error) {
	query := `
		SELECT user_type, COUNT(*) AS count
		FROM users
		WHERE user_type <> $1
		GROUP BY user_type`

	counts := []UserCount{}
	if err := r.db.SelectContext(ctx, &counts, query, user.TypeAdmin); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return counts, nil
}

func (r *repository) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM bookings
		GROUP BY status`

	counts := []StatusCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return counts, nil
}

func (r *repository) Revenue(ctx context.Context) (Revenue, error) {
	query := `
		SELECT COALESCE(SUM(budget), 0)::float8 AS total_revenue,
		       COUNT(*) AS total_bookings,
		       COALESCE(AVG(budget), 0)::float8 AS avg_booking_value
		FROM bookings
		WHERE payment_status = $1`

	var rev Revenue
	if err := r.db.GetContext(ctx, &rev, query, booking.PaymentPaid); err != nil {
		return Revenue{}, fmt.Errorf("sum revenue: %w", err)
	}

	return rev, nil
}

func (r *repository) RecentActivity(
	ctx context.Context,
	limit int,
) ([]Activity, error) {
	query := `
		SELECT b.id, b.title, b.status, b.created_at,
		       tp.stage_name AS talent_name,
		       mop.company_name
		FROM bookings b
		JOIN users t ON b.talent_id = t.id
		JOIN users mo ON b.media_owner_id = mo.id
		LEFT JOIN talent_profiles tp ON t.id = tp.user_id
		LEFT JOIN media_owner_profiles mop ON mo.id = mop.user_id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1`

	activity := []Activity{}
	if err := r.db.SelectContext(ctx, &activity, query, limit); err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}

	return activity, nil
}
