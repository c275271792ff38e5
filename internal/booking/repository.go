// AngelaMos | 2026
// repository.go

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/talentbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, params ListBookingsParams) ([]Detail, int, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		status, paymentStatus *string,
	) (*Booking, error)
	BusyIntervals(
		ctx context.Context,
		talentID int64,
		from, to time.Time,
	) ([]Interval, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `
		id, talent_id, media_owner_id, title, description, event_type,
		start_datetime, end_datetime, location, budget, is_remote,
		status, payment_status, created_at, updated_at`

const detailSelect = `
		SELECT b.id, b.talent_id, b.media_owner_id, b.title, b.description,
		       b.event_type, b.start_datetime, b.end_datetime, b.location,
		       b.budget, b.is_remote, b.status, b.payment_status,
		       b.created_at, b.updated_at,
		       t.first_name AS talent_first_name,
		       t.last_name AS talent_last_name,
		       t.email AS talent_email,
		       tp.stage_name,
		       tp.talent_type,
		       mo.first_name AS media_owner_first_name,
		       mo.last_name AS media_owner_last_name,
		       mo.email AS media_owner_email,
		       mop.company_name,
		       mop.media_type
		FROM bookings b
		JOIN users t ON b.talent_id = t.id
		JOIN users mo ON b.media_owner_id = mo.id
		LEFT JOIN talent_profiles tp ON t.id = tp.user_id
		LEFT JOIN media_owner_profiles mop ON mo.id = mop.user_id`

// Create inserts b after locking the talent's user row, so two concurrent
// requests for overlapping times on one talent cannot both succeed.
func (r *repository) Create(ctx context.Context, b *Booking) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var talentID int64
		err := tx.GetContext(ctx, &talentID,
			`SELECT id FROM users WHERE id = $1 FOR UPDATE`, b.TalentID)
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		if err != nil {
			return err
		}

		var taken bool
		err = tx.GetContext(ctx, &taken, `
			SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE talent_id = $1
				  AND status <> $2
				  AND start_datetime < $4
				  AND end_datetime > $3
			)`,
			b.TalentID, StatusCancelled, b.StartDatetime, b.EndDatetime)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		query := `
			INSERT INTO bookings (
				talent_id, media_owner_id, title, description, event_type,
				start_datetime, end_datetime, location, budget, is_remote,
				status, payment_status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING` + bookingColumns

		return tx.GetContext(ctx, b, query,
			b.TalentID,
			b.MediaOwnerID,
			b.Title,
			b.Description,
			b.EventType,
			b.StartDatetime,
			b.EndDatetime,
			b.Location,
			b.Budget,
			b.IsRemote,
			b.Status,
			b.PaymentStatus,
		)
	})
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	query := detailSelect + `
		WHERE b.id = $1`

	var d Detail
	err := r.db.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get booking: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &d, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListBookingsParams,
) ([]Detail, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM bookings b " + whereClause
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query := fmt.Sprintf(`%s
		%s
		ORDER BY b.start_datetime DESC, b.id DESC
		LIMIT $%d OFFSET $%d`,
		detailSelect, whereClause, argIdx, argIdx+1)

	args = append(args, params.Limit, params.Offset())

	details := []Detail{}
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	return details, total, nil
}

// UpdateStatus sets whichever of status and paymentStatus is non-nil and
// always bumps updated_at.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status, paymentStatus *string,
) (*Booking, error) {
	var updates []string
	var args []any
	argIdx := 1

	if status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *status)
		argIdx++
	}

	if paymentStatus != nil {
		updates = append(updates, fmt.Sprintf("payment_status = $%d", argIdx))
		args = append(args, *paymentStatus)
		argIdx++
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE bookings
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(updates, ", "), argIdx, bookingColumns)

	var b Booking
	err := r.db.GetContext(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update booking: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return &b, nil
}

func (r *repository) BusyIntervals(
	ctx context.Context,
	talentID int64,
	from, to time.Time,
) ([]Interval, error) {
	query := `
		SELECT start_datetime, end_datetime
		FROM bookings
		WHERE talent_id = $1
		  AND status <> $2
		  AND start_datetime < $4
		  AND end_datetime > $3
		ORDER BY start_datetime`

	intervals := []Interval{}
	err := r.db.SelectContext(ctx, &intervals, query,
		talentID, StatusCancelled, from, to)
	if err != nil {
		return nil, fmt.Errorf("busy intervals: %w", err)
	}

	return intervals, nil
}
